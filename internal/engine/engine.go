package engine

import (
	"context"

	"github.com/KirkDiggler/pathfinder-stats/internal/clients/refdata"
	"github.com/KirkDiggler/pathfinder-stats/internal/entities/pathfinder"
	"github.com/KirkDiggler/pathfinder-stats/internal/errors"
)

type engine struct {
	refData refdata.Client
}

// Config holds the engine dependencies
type Config struct {
	RefData refdata.Client
}

// Validate validates the config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.RefData == nil {
		vb.RequiredField("RefData")
	}
	return vb.Build()
}

// New creates a statistics engine
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &engine{refData: cfg.RefData}, nil
}

// resolution is the state of one enrichment pass
type resolution struct {
	ctx       context.Context
	character *pathfinder.RawCharacter
	cache     *CharacterCache
	abilities map[pathfinder.AbilityKind]pathfinder.ValueWithBreakdown
	bab       int
}

// modifier is always derived from the resolved ability total
func (r *resolution) modifier(ability pathfinder.AbilityKind) int {
	value, ok := r.abilities[ability]
	if !ok {
		return 0
	}
	return pathfinder.Modifier(value.Total)
}
