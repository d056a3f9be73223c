package knowledge

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// rulesFile is the YAML shape of an external rules file. Sections left empty
// fall back to the built-in defaults.
type rulesFile struct {
	Entries []Entry `yaml:"entries"`
	Buckets Buckets `yaml:"buckets"`
}

// LoadFile builds a Base from a YAML rules file. Entry keys are lowercased
// and blank entries rejected; entry order in the file is match priority,
// mirroring the built-in table.
func LoadFile(path string) (*Base, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	var rf rulesFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parse rules file: %w", err)
	}

	entries := rf.Entries
	if len(entries) == 0 {
		entries = defaultEntries()
	} else {
		for i := range entries {
			entries[i].Key = strings.ToLower(strings.TrimSpace(entries[i].Key))
			if entries[i].Key == "" {
				return nil, fmt.Errorf("rules file: entry %d has an empty key", i)
			}
			switch entries[i].Level {
			case LevelHealthy, LevelModerate, LevelRisky:
			default:
				return nil, fmt.Errorf("rules file: entry %q has invalid level %q", entries[i].Key, entries[i].Level)
			}
		}
	}

	buckets := rf.Buckets
	if len(buckets.Risky) == 0 && len(buckets.Moderate) == 0 && len(buckets.Healthy) == 0 {
		buckets = defaultBuckets()
	}

	return NewBase(entries, buckets), nil
}
