// Package v1alpha1 handles the pathfinder stats grpc service interface
package v1alpha1

import (
	"context"
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/pathfinder-stats/internal/entities/pathfinder"
	"github.com/KirkDiggler/pathfinder-stats/internal/errors"
	"github.com/KirkDiggler/pathfinder-stats/internal/orchestrators/character"
)

// Request and response document fields
const (
	FieldCharacterID = "character_id"
	FieldCheck       = "check"
	FieldCharacter   = "character"
	FieldRoll        = "roll"
)

// HandlerConfig holds dependencies for the stats handler
type HandlerConfig struct {
	CharacterService character.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.CharacterService == nil {
		vb.RequiredField("CharacterService")
	}
	return vb.Build()
}

// Handler implements StatsServiceServer
type Handler struct {
	characterService character.Service
}

var _ StatsServiceServer = (*Handler)(nil)

// NewHandler creates a new stats handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		characterService: cfg.CharacterService,
	}, nil
}

// GetEnrichedCharacter resolves the statistics of a stored character
func (h *Handler) GetEnrichedCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	characterID := req.GetFields()[FieldCharacterID].GetStringValue()
	if characterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	output, err := h.characterService.GetEnrichedCharacter(ctx, &character.GetEnrichedCharacterInput{
		CharacterID: characterID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(FieldCharacter, output.Character)
}

// EnrichCharacter resolves the statistics of a character sent in the request
func (h *Handler) EnrichCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	document := req.GetFields()[FieldCharacter].GetStructValue()
	if document == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character is required"))
	}

	raw, err := toRawCharacter(document)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.characterService.EnrichCharacter(ctx, &character.EnrichCharacterInput{Character: raw})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(FieldCharacter, output.Character)
}

// RollCheck rolls a d20 check for a stored character
func (h *Handler) RollCheck(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields := req.GetFields()
	characterID := fields[FieldCharacterID].GetStringValue()
	if characterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}
	check := fields[FieldCheck].GetStringValue()
	if check == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("check is required"))
	}

	output, err := h.characterService.RollCheck(ctx, &character.RollCheckInput{
		CharacterID: characterID,
		Check:       check,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(FieldRoll, output.Roll)
}

func toRawCharacter(document *structpb.Struct) (*pathfinder.RawCharacter, error) {
	data, err := protojson.Marshal(document)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid character document")
	}

	var raw pathfinder.RawCharacter
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid character document")
	}
	return &raw, nil
}

// respond wraps a JSON encodable value under a single field
func respond(field string, value any) (*structpb.Struct, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to encode response"))
	}

	body := new(structpb.Struct)
	if err := protojson.Unmarshal(data, body); err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to encode response"))
	}

	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			field: structpb.NewStructValue(body),
		},
	}, nil
}
