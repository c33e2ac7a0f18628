package engine

import (
	"sort"

	"github.com/KirkDiggler/pathfinder-stats/internal/entities/pathfinder"
)

// processClassFeatures drops repeated ids, keeping the first, and orders
// the rest by level obtained then name
func processClassFeatures(features []pathfinder.ClassFeature) []pathfinder.ClassFeature {
	seen := make(map[int]struct{}, len(features))
	processed := make([]pathfinder.ClassFeature, 0, len(features))
	for _, feature := range features {
		if _, dup := seen[feature.ID]; dup {
			continue
		}
		seen[feature.ID] = struct{}{}
		processed = append(processed, feature)
	}

	sort.SliceStable(processed, func(i, j int) bool {
		if processed[i].LevelObtained != processed[j].LevelObtained {
			return processed[i].LevelObtained < processed[j].LevelObtained
		}
		return processed[i].Name < processed[j].Name
	})
	return processed
}
