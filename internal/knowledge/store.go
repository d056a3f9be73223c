package knowledge

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/foodlens/foodlens/pkg/utils"
)

const reloadDebounce = 400 * time.Millisecond

// Store holds the active rule set and supports atomic replacement, so a
// rules-file reload never mutates a Base a request is reading.
type Store struct {
	base   atomic.Pointer[Base]
	logger *zap.Logger
}

// NewStore creates a store serving base. logger may be nil.
func NewStore(base *Base, logger *zap.Logger) *Store {
	s := &Store{logger: utils.LoggerOrNop(logger)}
	s.base.Store(base)
	return s
}

// Current returns the active rule set snapshot.
func (s *Store) Current() *Base {
	return s.base.Load()
}

// Replace swaps in a new rule set.
func (s *Store) Replace(base *Base) {
	s.base.Store(base)
}

// Watch reloads the rules file at path whenever it changes, until ctx is
// done. A reload that fails to parse keeps the previous rule set. Editors
// that replace files emit several events in a burst, so reloads are
// debounced.
func (s *Store) Watch(ctx context.Context, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create rules watcher: %w", err)
	}
	// Watch the directory: rename-and-replace saves drop the watch on the
	// file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch rules dir: %w", err)
	}

	go func() {
		defer watcher.Close()
		var timer *time.Timer
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(reloadDebounce, func() { s.reload(path) })
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.logger.Warn("rules watcher error", zap.Error(err))
			}
		}
	}()
	return nil
}

func (s *Store) reload(path string) {
	base, err := LoadFile(path)
	if err != nil {
		s.logger.Warn("rules reload failed, keeping previous rule set",
			zap.String("path", path), zap.Error(err))
		return
	}
	s.Replace(base)
	s.logger.Info("rules reloaded",
		zap.String("path", path), zap.Int("entries", base.Len()))
}
