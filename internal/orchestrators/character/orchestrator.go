// Package character orchestrates loading stored characters, enriching them
// and rolling checks against the resolved statistics
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/KirkDiggler/pathfinder-stats/internal/orchestrators/character Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/pathfinder-stats/internal/engine"
	"github.com/KirkDiggler/pathfinder-stats/internal/errors"
	"github.com/KirkDiggler/pathfinder-stats/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/pathfinder-stats/internal/repositories/character"
)

const checkDieSize = 20

// Service defines the character statistics operations exposed to transports
type Service interface {
	// GetEnrichedCharacter loads a stored character and resolves its statistics
	GetEnrichedCharacter(ctx context.Context, input *GetEnrichedCharacterInput) (*GetEnrichedCharacterOutput, error)

	// EnrichCharacter resolves statistics for a caller supplied record without storing it
	EnrichCharacter(ctx context.Context, input *EnrichCharacterInput) (*EnrichCharacterOutput, error)

	// RollCheck rolls a d20 against one resolved statistic of a stored character
	RollCheck(ctx context.Context, input *RollCheckInput) (*RollCheckOutput, error)
}

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	Engine        engine.Engine
	IDGenerator   idgen.Generator
	// DiceRoller defaults to dice.DefaultRoller
	DiceRoller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

type orchestrator struct {
	characterRepo characterrepo.Repository
	engine        engine.Engine
	idGen         idgen.Generator
	roller        dice.Roller
}

// New creates a new character orchestrator with the provided dependencies
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.DiceRoller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	return &orchestrator{
		characterRepo: cfg.CharacterRepo,
		engine:        cfg.Engine,
		idGen:         cfg.IDGenerator,
		roller:        roller,
	}, nil
}

func (o *orchestrator) GetEnrichedCharacter(
	ctx context.Context,
	input *GetEnrichedCharacterInput,
) (*GetEnrichedCharacterOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	enriched, err := o.enrichStored(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	return &GetEnrichedCharacterOutput{Character: enriched.Character}, nil
}

func (o *orchestrator) EnrichCharacter(
	ctx context.Context,
	input *EnrichCharacterInput,
) (*EnrichCharacterOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	output, err := o.engine.EnrichCharacter(ctx, &engine.EnrichCharacterInput{Character: input.Character})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to enrich character %s", input.Character.ID)
	}

	return &EnrichCharacterOutput{Character: output.Character}, nil
}

func (o *orchestrator) RollCheck(ctx context.Context, input *RollCheckInput) (*RollCheckOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	if input.Check == "" {
		return nil, errors.InvalidArgument("check is required")
	}

	enriched, err := o.enrichStored(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	value, err := selectCheck(enriched.Character, input.Check)
	if err != nil {
		return nil, err
	}

	natural, err := o.roller.Roll(checkDieSize)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll d%d", checkDieSize)
	}

	roll := &CheckRoll{
		RollID:      o.idGen.Generate(),
		CharacterID: input.CharacterID,
		Check:       input.Check,
		Natural:     natural,
		Modifier:    value.Total,
		Total:       natural + value.Total,
		Breakdown:   value,
	}

	slog.InfoContext(ctx, "rolled check",
		"character_id", input.CharacterID,
		"check", input.Check,
		"natural", roll.Natural,
		"total", roll.Total)

	return &RollCheckOutput{Roll: roll}, nil
}

func (o *orchestrator) enrichStored(ctx context.Context, characterID string) (*engine.EnrichCharacterOutput, error) {
	stored, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: characterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", characterID)
	}

	output, err := o.engine.EnrichCharacter(ctx, &engine.EnrichCharacterInput{Character: stored.Character})
	if err != nil {
		slog.ErrorContext(ctx, "failed to enrich character",
			"character_id", characterID,
			"error", err.Error())
		return nil, errors.Wrapf(err, "failed to enrich character %s", characterID)
	}

	return output, nil
}
