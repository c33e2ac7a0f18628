package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"

	v1alpha1 "github.com/KirkDiggler/pathfinder-stats/internal/handlers/stats/v1alpha1"
)

var getCharacterCmd = &cobra.Command{
	Use:   "get [character-id]",
	Short: "Get a stored character with resolved statistics",
	Args:  cobra.ExactArgs(1),
	RunE:  getCharacter,
}

func getCharacter(_ *cobra.Command, args []string) error {
	client, cleanup, err := createStatsClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := structpb.NewStruct(map[string]any{v1alpha1.FieldCharacterID: args[0]})
	if err != nil {
		return err
	}

	resp, err := client.GetEnrichedCharacter(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to get character: %w", err)
	}

	return printDocument(resp, v1alpha1.FieldCharacter)
}
