package character

import (
	"github.com/KirkDiggler/pathfinder-stats/internal/entities/pathfinder"
)

// GetEnrichedCharacterInput defines the request for enriching a stored character
type GetEnrichedCharacterInput struct {
	CharacterID string
}

// GetEnrichedCharacterOutput defines the response for enriching a stored character
type GetEnrichedCharacterOutput struct {
	Character *pathfinder.EnrichedCharacter
}

// EnrichCharacterInput defines the request for enriching a caller supplied record
type EnrichCharacterInput struct {
	Character *pathfinder.RawCharacter
}

// EnrichCharacterOutput defines the response for enriching a caller supplied record
type EnrichCharacterOutput struct {
	Character *pathfinder.EnrichedCharacter
}

// RollCheckInput defines the request for rolling a d20 check
type RollCheckInput struct {
	CharacterID string
	// Check names the statistic, e.g. "skill:14", "will", "initiative"
	Check string
}

// RollCheckOutput defines the response for rolling a d20 check
type RollCheckOutput struct {
	Roll *CheckRoll
}

// CheckRoll is one d20 roll against a resolved statistic
type CheckRoll struct {
	RollID      string                         `json:"roll_id"`
	CharacterID string                         `json:"character_id"`
	Check       string                         `json:"check"`
	Natural     int                            `json:"natural"`
	Modifier    int                            `json:"modifier"`
	Total       int                            `json:"total"`
	Breakdown   *pathfinder.ValueWithBreakdown `json:"breakdown"`
}
