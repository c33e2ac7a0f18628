package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pathfinder-stats/internal/clients/refdata"
	"github.com/KirkDiggler/pathfinder-stats/internal/errors"
	"github.com/KirkDiggler/pathfinder-stats/internal/pkg/clock"
	characterrepo "github.com/KirkDiggler/pathfinder-stats/internal/repositories/character"
)

var (
	seedCatalogPath    string
	seedCharacterPaths []string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the reference catalog and characters into redis",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedCatalogPath, "catalog", "data/catalog.yaml", "reference catalog YAML")
	seedCmd.Flags().StringSliceVar(&seedCharacterPaths, "character", nil, "character JSON files to store")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	redisClient, err := openRedis(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = redisClient.Close() }()

	catalog, err := refdata.LoadYAML(seedCatalogPath)
	if err != nil {
		return err
	}

	store, err := refdata.NewRedis(&refdata.RedisConfig{Client: redisClient})
	if err != nil {
		return err
	}
	if err := store.Store(ctx, catalog); err != nil {
		return err
	}

	repo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{
		Client: redisClient,
		Clock:  clock.New(),
	})
	if err != nil {
		return err
	}

	for _, path := range seedCharacterPaths {
		raw, err := readCharacter(path)
		if err != nil {
			return err
		}

		_, err = repo.Create(ctx, characterrepo.CreateInput{Character: raw})
		if errors.IsAlreadyExists(err) {
			_, err = repo.Update(ctx, characterrepo.UpdateInput{Character: raw})
		}
		if err != nil {
			return fmt.Errorf("failed to store %s: %w", path, err)
		}

		slog.InfoContext(ctx, "stored character", "character_id", raw.ID, "path", path)
	}

	return nil
}
