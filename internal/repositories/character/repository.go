// Package character provides the interface for raw character persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/pathfinder-stats/internal/repositories/character Repository

import (
	"context"

	"github.com/KirkDiggler/pathfinder-stats/internal/entities/pathfinder"
)

// Repository stores raw character records. Enriched views are never
// persisted; they are recomputed from these records on read.
//
// Missing ids are InvalidArgument, absent records NotFound and duplicate
// creates AlreadyExists. Storage failures surface as Internal.
type Repository interface {
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	// Update replaces the stored record, keeping its CreatedAt
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
	// ListByPlayerID returns the player's records ordered by id
	ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error)
}

// CreateInput carries the record to store. The stored copy is returned
// with its timestamps set.
type CreateInput struct {
	Character *pathfinder.RawCharacter
}

// CreateOutput holds the stored copy
type CreateOutput struct {
	Character *pathfinder.RawCharacter
}

// GetInput names the record to load
type GetInput struct {
	ID string
}

// GetOutput holds the loaded record
type GetOutput struct {
	Character *pathfinder.RawCharacter
}

// UpdateInput carries the replacement record
type UpdateInput struct {
	Character *pathfinder.RawCharacter
}

// UpdateOutput holds the stored copy
type UpdateOutput struct {
	Character *pathfinder.RawCharacter
}

// DeleteInput names the record to remove
type DeleteInput struct {
	ID string
}

// DeleteOutput is empty
type DeleteOutput struct{}

// ListByPlayerIDInput names the owning player
type ListByPlayerIDInput struct {
	PlayerID string
}

// ListByPlayerIDOutput holds the player's records
type ListByPlayerIDOutput struct {
	Characters []*pathfinder.RawCharacter
}
