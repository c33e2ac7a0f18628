package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"

	v1alpha1 "github.com/KirkDiggler/pathfinder-stats/internal/handlers/stats/v1alpha1"
)

var rollCheckCmd = &cobra.Command{
	Use:   "roll [character-id] [check]",
	Short: "Roll a d20 check for a stored character",
	Long: `Roll a d20 against one resolved statistic. Examples:

  roll char_ezren skill:14
  roll char_ezren will
  roll char_ezren initiative`,
	Args: cobra.ExactArgs(2),
	RunE: rollCheck,
}

func rollCheck(_ *cobra.Command, args []string) error {
	client, cleanup, err := createStatsClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := structpb.NewStruct(map[string]any{
		v1alpha1.FieldCharacterID: args[0],
		v1alpha1.FieldCheck:       args[1],
	})
	if err != nil {
		return err
	}

	resp, err := client.RollCheck(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to roll check: %w", err)
	}

	roll := resp.GetFields()[v1alpha1.FieldRoll].GetStructValue().GetFields()
	fmt.Printf("%s: d20 %v %+d = %v\n",
		args[1],
		roll["natural"].GetNumberValue(),
		int(roll["modifier"].GetNumberValue()),
		roll["total"].GetNumberValue())

	return printDocument(resp, v1alpha1.FieldRoll)
}
