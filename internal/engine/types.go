package engine

import (
	"github.com/KirkDiggler/pathfinder-stats/internal/entities/pathfinder"
)

// EnrichCharacterInput contains the character to enrich
type EnrichCharacterInput struct {
	Character *pathfinder.RawCharacter
}

// EnrichCharacterOutput contains the enriched snapshot
type EnrichCharacterOutput struct {
	Character *pathfinder.EnrichedCharacter
}

// ResolveAbpBonusInput names the character and the ABP kind to resolve
type ResolveAbpBonusInput struct {
	Character *pathfinder.RawCharacter
	Kind      pathfinder.BonusKind
}

// ResolveAbpBonusOutput contains the stacked ABP bonus
type ResolveAbpBonusOutput struct {
	Total     int
	Modifiers []pathfinder.BonusEntry
}
