// Package main is the entry point for the pathfinder stats server and tools
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pathfinder-stats/cmd/server/client"
	"github.com/KirkDiggler/pathfinder-stats/internal/config"
)

var (
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "pathfinder-stats",
	Short: "Pathfinder character statistics server",
	Long:  `Resolves saves, armor class, skills, attacks and automatic bonus progression for Pathfinder characters.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		slog.SetDefault(cfg.Logging.NewLogger(os.Stderr))
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "TOML config file")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(enrichCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
