package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pathfinder-stats/internal/clients/refdata"
	"github.com/KirkDiggler/pathfinder-stats/internal/engine"
	"github.com/KirkDiggler/pathfinder-stats/internal/entities/pathfinder"
)

var (
	enrichCharacterPath string
	enrichCatalogPath   string
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Resolve a character file offline",
	Long:  `Resolve a character JSON file against a YAML catalog and print the enriched character.`,
	RunE:  runEnrich,
}

func init() {
	enrichCmd.Flags().StringVar(&enrichCharacterPath, "character", "", "character JSON file")
	enrichCmd.Flags().StringVar(&enrichCatalogPath, "catalog", "data/catalog.yaml", "reference catalog YAML")
	_ = enrichCmd.MarkFlagRequired("character")
}

func runEnrich(cmd *cobra.Command, _ []string) error {
	raw, err := readCharacter(enrichCharacterPath)
	if err != nil {
		return err
	}

	catalog, err := refdata.LoadYAML(enrichCatalogPath)
	if err != nil {
		return err
	}

	refData, err := refdata.NewStatic(catalog)
	if err != nil {
		return err
	}

	eng, err := engine.New(&engine.Config{RefData: refData})
	if err != nil {
		return err
	}

	output, err := eng.EnrichCharacter(cmd.Context(), &engine.EnrichCharacterInput{Character: raw})
	if err != nil {
		return fmt.Errorf("failed to enrich character: %w", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output.Character)
}

func readCharacter(path string) (*pathfinder.RawCharacter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var raw pathfinder.RawCharacter
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &raw, nil
}
