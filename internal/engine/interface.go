// Package engine resolves derived Pathfinder statistics from raw character records
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/pathfinder-stats/internal/engine Engine

import (
	"context"
)

// Engine provides statistics resolution for characters
type Engine interface {
	// EnrichCharacter derives every statistic of a character in one pass.
	// Reference data fetch failures are returned unchanged.
	EnrichCharacter(ctx context.Context, input *EnrichCharacterInput) (*EnrichCharacterOutput, error)

	// ResolveAbpBonus resolves one ABP bonus kind straight from the reference catalogs
	ResolveAbpBonus(ctx context.Context, input *ResolveAbpBonusInput) (*ResolveAbpBonusOutput, error)
}
