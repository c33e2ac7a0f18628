package main

import (
	"context"

	"github.com/KirkDiggler/pathfinder-stats/internal/clients/refdata"
	"github.com/KirkDiggler/pathfinder-stats/internal/config"
	"github.com/KirkDiggler/pathfinder-stats/internal/engine"
	"github.com/KirkDiggler/pathfinder-stats/internal/errors"
	"github.com/KirkDiggler/pathfinder-stats/internal/orchestrators/character"
	"github.com/KirkDiggler/pathfinder-stats/internal/pkg/clock"
	"github.com/KirkDiggler/pathfinder-stats/internal/pkg/idgen"
	"github.com/KirkDiggler/pathfinder-stats/internal/redis"
	characterrepo "github.com/KirkDiggler/pathfinder-stats/internal/repositories/character"
)

// openRedis connects and pings the configured redis
func openRedis(ctx context.Context, cfg *config.Config) (redis.Client, error) {
	client, err := redis.Open(cfg.Redis.RedisTarget(), cfg.Redis.RedisOptions())
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid redis config")
	}

	if err := redis.Ping(ctx, client, cfg.Redis.PingTimeout); err != nil {
		_ = client.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis unavailable")
	}
	return client, nil
}

// newRefData builds the reference catalog client for the configured source
func newRefData(cfg *config.CatalogConfig, redisClient redis.Client) (refdata.Client, error) {
	switch cfg.Source {
	case config.CatalogSourceYAML:
		catalog, err := refdata.LoadYAML(cfg.Path)
		if err != nil {
			return nil, err
		}
		return refdata.NewStatic(catalog)
	default:
		client, err := refdata.NewRedis(&refdata.RedisConfig{Client: redisClient})
		if err != nil {
			return nil, err
		}
		return client, nil
	}
}

// newCharacterService wires the repository, engine and orchestrator
func newCharacterService(cfg *config.Config, redisClient redis.Client) (character.Service, error) {
	refData, err := newRefData(&cfg.Catalog, redisClient)
	if err != nil {
		return nil, err
	}

	eng, err := engine.New(&engine.Config{RefData: refData})
	if err != nil {
		return nil, err
	}

	repo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{
		Client: redisClient,
		Clock:  clock.New(),
	})
	if err != nil {
		return nil, err
	}

	return character.New(&character.Config{
		CharacterRepo: repo,
		Engine:        eng,
		IDGenerator:   idgen.NewUUID("roll"),
	})
}
