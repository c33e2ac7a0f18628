package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	v1alpha1 "github.com/KirkDiggler/pathfinder-stats/internal/handlers/stats/v1alpha1"
)

var enrichCharacterCmd = &cobra.Command{
	Use:   "enrich [character.json]",
	Short: "Resolve statistics for a character file without storing it",
	Args:  cobra.ExactArgs(1),
	RunE:  enrichCharacter,
}

func enrichCharacter(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	document := new(structpb.Struct)
	if err := protojson.Unmarshal(data, document); err != nil {
		return fmt.Errorf("failed to parse %s: %w", args[0], err)
	}

	client, cleanup, err := createStatsClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.EnrichCharacter(ctx, &structpb.Struct{
		Fields: map[string]*structpb.Value{
			v1alpha1.FieldCharacter: structpb.NewStructValue(document),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to enrich character: %w", err)
	}

	return printDocument(resp, v1alpha1.FieldCharacter)
}
