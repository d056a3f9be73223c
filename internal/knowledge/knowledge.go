// Package knowledge classifies ingredients against a static risk table with
// a keyword-bucket fallback for names the table does not know.
package knowledge

import "strings"

// Level is the risk classification of an ingredient.
type Level string

const (
	LevelHealthy  Level = "healthy"
	LevelModerate Level = "moderate"
	LevelRisky    Level = "risky"
	LevelUnknown  Level = "unknown"
)

// Display strings derived from a level. Unknown-level guidance is a
// placeholder; callers exclude unknown items from advice output.
const (
	freqRisky    = "Occasional (≤1 per week)"
	freqModerate = "1–3 servings/week"
	freqHealthy  = "Daily"
	freqUnknown  = "Unknown"

	amountRisky    = "Max 1 serving when consumed"
	amountModerate = "1 serving"
	amountHealthy  = "1 serving (e.g., 1 cup/1 piece)"
	amountUnknown  = "Unknown"
)

// Entry is one knowledge-base record, keyed by a canonical ingredient
// substring. Entry order in the base is match priority.
type Entry struct {
	Key            string   `yaml:"key"`
	Level          Level    `yaml:"level"`
	Effects        []string `yaml:"effects"`
	Recommendation string   `yaml:"recommendation"`
}

// Buckets are the fallback keyword lists for ingredients no entry matches.
type Buckets struct {
	Risky    []string `yaml:"risky"`
	Moderate []string `yaml:"moderate"`
	Healthy  []string `yaml:"healthy"`
}

// Advice is the classification result for one ingredient.
type Advice struct {
	Level          Level
	Effects        []string
	Recommendation string
	Frequency      string
	Amount         string
}

// Base is an immutable rule-set snapshot: entries plus fallback buckets.
// A Base is never mutated after construction, so it is safe to share across
// requests without synchronization.
type Base struct {
	entries []Entry
	buckets Buckets
}

// NewBase builds a Base from entries and buckets. The slices are not copied;
// callers hand over ownership.
func NewBase(entries []Entry, buckets Buckets) *Base {
	return &Base{entries: entries, buckets: buckets}
}

// Classify returns consumption guidance for an ingredient name. The first
// entry whose key is a substring of the lowercased name wins; otherwise the
// fallback buckets apply; otherwise the level is unknown.
func (b *Base) Classify(name string) Advice {
	lower := strings.ToLower(name)

	for _, e := range b.entries {
		if strings.Contains(lower, e.Key) {
			return Advice{
				Level:          e.Level,
				Effects:        e.Effects,
				Recommendation: e.Recommendation,
				Frequency:      frequencyFor(e.Level),
				Amount:         amountFor(e.Level),
			}
		}
	}

	switch {
	case containsAny(lower, b.buckets.Risky):
		return Advice{
			Level:          LevelRisky,
			Effects:        []string{"Potential health risks with overconsumption"},
			Recommendation: "Limit consumption and check for healthier alternatives",
			Frequency:      freqRisky,
			Amount:         amountRisky,
		}
	case containsAny(lower, b.buckets.Moderate):
		return Advice{
			Level:          LevelModerate,
			Effects:        []string{"Provides nutrients but should be consumed in moderation"},
			Recommendation: "Consume as part of a balanced diet",
			Frequency:      freqModerate,
			Amount:         amountModerate,
		}
	case containsAny(lower, b.buckets.Healthy):
		return Advice{
			Level:          LevelHealthy,
			Effects:        []string{"Provides essential nutrients and health benefits"},
			Recommendation: "Regular consumption recommended",
			Frequency:      freqHealthy,
			Amount:         amountHealthy,
		}
	}

	return Advice{
		Level:          LevelUnknown,
		Effects:        []string{"Insufficient data for specific recommendations"},
		Recommendation: "Consume mindfully and check for allergens",
		Frequency:      freqUnknown,
		Amount:         amountUnknown,
	}
}

// Keys returns the entry keys in priority order.
func (b *Base) Keys() []string {
	keys := make([]string, len(b.entries))
	for i, e := range b.entries {
		keys[i] = e.Key
	}
	return keys
}

// Len returns the number of entries.
func (b *Base) Len() int { return len(b.entries) }

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

func frequencyFor(level Level) string {
	switch level {
	case LevelRisky:
		return freqRisky
	case LevelModerate:
		return freqModerate
	case LevelHealthy:
		return freqHealthy
	}
	return freqUnknown
}

func amountFor(level Level) string {
	switch level {
	case LevelRisky:
		return amountRisky
	case LevelModerate:
		return amountModerate
	case LevelHealthy:
		return amountHealthy
	}
	return amountUnknown
}
