// Package store keeps recently produced health reports in memory so they can
// be fetched again by id.
package store

import (
	"container/list"
	"sync"

	"github.com/google/uuid"

	"github.com/foodlens/foodlens/internal/models"
)

// DefaultCacheSize bounds the report cache when no size is configured.
const DefaultCacheSize = 128

// ReportCache is a bounded LRU of analysis reports keyed by generated id.
// When full, storing a new report evicts the least recently used one.
type ReportCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*list.Element
	order    *list.List // front = most recently used
	latest   string
}

type cacheEntry struct {
	id     string
	report *models.HealthReport
}

// NewReportCache creates a cache holding at most capacity reports.
// Non-positive capacities fall back to DefaultCacheSize.
func NewReportCache(capacity int) *ReportCache {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	return &ReportCache{
		capacity: capacity,
		entries:  make(map[string]*list.Element),
		order:    list.New(),
	}
}

// Put stores a report and returns its generated id. The stored report also
// becomes the latest result.
func (c *ReportCache) Put(report *models.HealthReport) string {
	id := uuid.NewString()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem := c.order.PushFront(&cacheEntry{id: id, report: report})
	c.entries[id] = elem
	c.latest = id

	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			evicted := oldest.Value.(*cacheEntry)
			delete(c.entries, evicted.id)
			if c.latest == evicted.id {
				c.latest = ""
			}
		}
	}
	return id
}

// Get returns the report stored under id and marks it recently used.
func (c *ReportCache) Get(id string) (*models.HealthReport, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[id]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*cacheEntry).report, true
}

// Latest returns the most recently stored report, if any survives in the
// cache.
func (c *ReportCache) Latest() (*models.HealthReport, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.latest == "" {
		return nil, false
	}
	elem, ok := c.entries[c.latest]
	if !ok {
		return nil, false
	}
	return elem.Value.(*cacheEntry).report, true
}

// Len reports how many reports are cached.
func (c *ReportCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
