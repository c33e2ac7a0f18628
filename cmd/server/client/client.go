// Package client provides commands that call a running stats server
package client

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	v1alpha1 "github.com/KirkDiggler/pathfinder-stats/internal/handlers/stats/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Call a running stats server",
	Long:  `Client commands make real gRPC requests against a stats server.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(getCharacterCmd)
	ClientCmd.AddCommand(enrichCharacterCmd)
	ClientCmd.AddCommand(rollCheckCmd)
}

// createStatsClient creates a stats service client
func createStatsClient() (v1alpha1.StatsServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewStatsServiceClient(conn), cleanup, nil
}

// printDocument writes one response field as indented JSON
func printDocument(resp *structpb.Struct, field string) error {
	value := resp.GetFields()[field]
	if value == nil {
		return fmt.Errorf("response has no %s field", field)
	}

	out, err := json.MarshalIndent(value.AsInterface(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}

	_, err = fmt.Fprintln(os.Stdout, string(out))
	return err
}
