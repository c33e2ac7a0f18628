package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/pathfinder-stats/internal/entities/pathfinder"
	"github.com/KirkDiggler/pathfinder-stats/internal/errors"
	v1alpha1 "github.com/KirkDiggler/pathfinder-stats/internal/handlers/stats/v1alpha1"
	"github.com/KirkDiggler/pathfinder-stats/internal/orchestrators/character"
	charactermock "github.com/KirkDiggler/pathfinder-stats/internal/orchestrators/character/mock"
)

type HandlerTestSuite struct {
	suite.Suite
	ctx         context.Context
	ctrl        *gomock.Controller
	mockService *charactermock.MockService
	handler     *v1alpha1.Handler
	enriched    *pathfinder.EnrichedCharacter
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockService = charactermock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{CharacterService: s.mockService})
	s.Require().NoError(err)
	s.handler = handler

	s.enriched = &pathfinder.EnrichedCharacter{
		RawCharacter: pathfinder.RawCharacter{ID: "char_1", Name: "Kyra"},
		Will: pathfinder.ValueWithBreakdown{
			Label: "Will",
			Modifiers: []pathfinder.BonusEntry{
				{Source: "Base Save", Value: 4, Type: pathfinder.BonusTypeBase},
				{Source: "Wisdom", Value: 3},
			},
			Total: 7,
		},
	}
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func mustStruct(s *suite.Suite, fields map[string]any) *structpb.Struct {
	req, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return req
}

func (s *HandlerTestSuite) TestNewHandlerRequiresService() {
	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Nil(handler)
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestGetEnrichedCharacter() {
	s.Run("returns the enriched document", func() {
		s.mockService.EXPECT().
			GetEnrichedCharacter(s.ctx, &character.GetEnrichedCharacterInput{CharacterID: "char_1"}).
			Return(&character.GetEnrichedCharacterOutput{Character: s.enriched}, nil)

		resp, err := s.handler.GetEnrichedCharacter(s.ctx, mustStruct(&s.Suite, map[string]any{
			"character_id": "char_1",
		}))
		s.Require().NoError(err)

		doc := resp.GetFields()["character"].GetStructValue().AsMap()
		s.Equal("Kyra", doc["name"])
		will := doc["will"].(map[string]any)
		s.Equal(float64(7), will["total"])
		s.Len(will["modifiers"], 2)
	})

	s.Run("requires character_id", func() {
		_, err := s.handler.GetEnrichedCharacter(s.ctx, &structpb.Struct{})
		s.Equal(codes.InvalidArgument, status.Code(err))
	})

	s.Run("maps service errors to status codes", func() {
		s.mockService.EXPECT().
			GetEnrichedCharacter(s.ctx, gomock.Any()).
			Return(nil, errors.NotFound("character with ID missing not found"))

		_, err := s.handler.GetEnrichedCharacter(s.ctx, mustStruct(&s.Suite, map[string]any{
			"character_id": "missing",
		}))
		s.Equal(codes.NotFound, status.Code(err))
	})
}

func (s *HandlerTestSuite) TestEnrichCharacter() {
	s.Run("decodes the character document", func() {
		s.mockService.EXPECT().
			EnrichCharacter(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input *character.EnrichCharacterInput) (*character.EnrichCharacterOutput, error) {
				s.Equal("char_2", input.Character.ID)
				s.Equal(16, input.Character.AbilityScores[pathfinder.AbilityStrength])
				s.Require().Len(input.Character.Classes, 1)
				s.Equal(4, input.Character.Classes[0].Level)
				return &character.EnrichCharacterOutput{Character: s.enriched}, nil
			})

		_, err := s.handler.EnrichCharacter(s.ctx, mustStruct(&s.Suite, map[string]any{
			"character": map[string]any{
				"id":             "char_2",
				"ability_scores": map[string]any{"strength": 16},
				"classes": []any{
					map[string]any{"class_id": 1, "name": "Fighter", "level": 4},
				},
			},
		}))
		s.Require().NoError(err)
	})

	s.Run("rejects malformed documents", func() {
		_, err := s.handler.EnrichCharacter(s.ctx, mustStruct(&s.Suite, map[string]any{
			"character": map[string]any{"classes": "fighter"},
		}))
		s.Equal(codes.InvalidArgument, status.Code(err))
	})

	s.Run("requires a character", func() {
		_, err := s.handler.EnrichCharacter(s.ctx, &structpb.Struct{})
		s.Equal(codes.InvalidArgument, status.Code(err))
	})
}

func (s *HandlerTestSuite) TestRollCheck() {
	s.Run("returns the roll", func() {
		s.mockService.EXPECT().
			RollCheck(s.ctx, &character.RollCheckInput{CharacterID: "char_1", Check: "will"}).
			Return(&character.RollCheckOutput{Roll: &character.CheckRoll{
				RollID:      "roll_1",
				CharacterID: "char_1",
				Check:       "will",
				Natural:     15,
				Modifier:    7,
				Total:       22,
				Breakdown:   &s.enriched.Will,
			}}, nil)

		resp, err := s.handler.RollCheck(s.ctx, mustStruct(&s.Suite, map[string]any{
			"character_id": "char_1",
			"check":        "will",
		}))
		s.Require().NoError(err)

		roll := resp.GetFields()["roll"].GetStructValue().AsMap()
		s.Equal("roll_1", roll["roll_id"])
		s.Equal(float64(22), roll["total"])
	})

	s.Run("requires a check", func() {
		_, err := s.handler.RollCheck(s.ctx, mustStruct(&s.Suite, map[string]any{"character_id": "char_1"}))
		s.Equal(codes.InvalidArgument, status.Code(err))
	})
}

func (s *HandlerTestSuite) TestServiceDescOverGRPC() {
	listener := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	v1alpha1.RegisterStatsServiceServer(server, s.handler)
	go func() { _ = server.Serve(listener) }()
	defer server.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	defer func() { _ = conn.Close() }()

	client := v1alpha1.NewStatsServiceClient(conn)

	s.mockService.EXPECT().
		GetEnrichedCharacter(gomock.Any(), &character.GetEnrichedCharacterInput{CharacterID: "char_1"}).
		Return(&character.GetEnrichedCharacterOutput{Character: s.enriched}, nil)

	resp, err := client.GetEnrichedCharacter(s.ctx, mustStruct(&s.Suite, map[string]any{"character_id": "char_1"}))
	s.Require().NoError(err)
	s.Equal("char_1", resp.GetFields()["character"].GetStructValue().GetFields()["id"].GetStringValue())

	s.mockService.EXPECT().
		RollCheck(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("skill 99 not found"))

	_, err = client.RollCheck(s.ctx, mustStruct(&s.Suite, map[string]any{"character_id": "char_1", "check": "skill:99"}))
	s.Equal(codes.NotFound, status.Code(err))
	s.True(errors.IsNotFound(errors.FromGRPCError(err)))
}
