package config

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/agnivade/levenshtein"
	"github.com/spf13/viper"
)

// KeyWarning reports a config key canvasclip does not recognise.
type KeyWarning struct {
	Key string
	// Suggestion is the closest known key, empty when nothing is close.
	Suggestion string
}

func (w KeyWarning) String() string {
	if w.Suggestion == "" {
		return fmt.Sprintf("unknown config key %q", w.Key)
	}
	return fmt.Sprintf("unknown config key %q (did you mean %q?)", w.Key, w.Suggestion)
}

// UnknownKeys lists keys set in the config file that no setting reads,
// sorted by key.
func (m *Manager) UnknownKeys() []KeyWarning {
	m.mu.RLock()
	defer m.mu.RUnlock()

	known := knownKeys()
	var warnings []KeyWarning
	for _, key := range m.viper.AllKeys() {
		if slices.Contains(known, key) {
			continue
		}
		warnings = append(warnings, KeyWarning{Key: key, Suggestion: closestKey(key, known)})
	}
	slices.SortFunc(warnings, func(a, b KeyWarning) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return warnings
}

func knownKeys() []string {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()
	return mgr.viper.AllKeys()
}

// closestKey returns the known key nearest to key by edit distance, if it
// is within a third of the key's length (at least two edits).
func closestKey(key string, known []string) string {
	limit := max(2, len(key)/3)
	best, bestDist := "", limit+1
	for _, candidate := range known {
		if d := levenshtein.ComputeDistance(key, candidate); d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}
