package refdata

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/pathfinder-stats/internal/entities/pathfinder"
	"github.com/KirkDiggler/pathfinder-stats/internal/errors"
	redisclient "github.com/KirkDiggler/pathfinder-stats/internal/redis"
)

const (
	keyPrefix        = "refdata:"
	skillsKey        = keyPrefix + "skills"
	classSkillsKey   = keyPrefix + "class_skills"
	abilitiesKey     = keyPrefix + "abilities"
	abpNodeGroupsKey = keyPrefix + "abp_node_groups"
	abpNodesKey      = keyPrefix + "abp_nodes"
	abpNodeBonusKey  = keyPrefix + "abp_node_bonuses"
	abpBonusTypesKey = keyPrefix + "abp_bonus_types"
)

// RedisConfig contains configuration for the Redis backed catalog
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	return vb.Build()
}

var _ Client = (*RedisClient)(nil)

// RedisClient serves reference data stored in Redis.
// List tables are JSON arrays under one key each; abilities are a hash by id.
type RedisClient struct {
	client redisclient.Client
}

// NewRedis creates a Redis backed reference data client
func NewRedis(cfg *RedisConfig) (*RedisClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &RedisClient{client: cfg.Client}, nil
}

// Store replaces every catalog table in one transaction
func (r *RedisClient) Store(ctx context.Context, catalog *Catalog) error {
	if catalog == nil {
		return errors.InvalidArgument("catalog cannot be nil")
	}
	if err := catalog.Validate(); err != nil {
		return err
	}

	tables := map[string]any{
		skillsKey:        catalog.Skills,
		classSkillsKey:   catalog.ClassSkills,
		abpNodeGroupsKey: catalog.AbpNodeGroups,
		abpNodesKey:      catalog.AbpNodes,
		abpNodeBonusKey:  catalog.AbpNodeBonus,
		abpBonusTypesKey: catalog.AbpBonusTypes,
	}

	pipe := r.client.TxPipeline()
	for key, rows := range tables {
		data, err := json.Marshal(rows)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal %s", key)
		}
		pipe.Set(ctx, key, data, 0)
	}

	pipe.Del(ctx, abilitiesKey)
	if len(catalog.Abilities) > 0 {
		fields := make(map[string]any, len(catalog.Abilities))
		for _, ability := range catalog.Abilities {
			data, err := json.Marshal(ability)
			if err != nil {
				return errors.Wrapf(err, "failed to marshal ability %d", ability.ID)
			}
			fields[strconv.Itoa(ability.ID)] = data
		}
		pipe.HSet(ctx, abilitiesKey, fields)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "failed to store catalog")
	}

	slog.InfoContext(ctx, "stored reference catalog",
		"skills", len(catalog.Skills),
		"abilities", len(catalog.Abilities),
		"abp_nodes", len(catalog.AbpNodes))

	return nil
}

// GetAllSkills returns every catalog skill
func (r *RedisClient) GetAllSkills(ctx context.Context) ([]pathfinder.Skill, error) {
	var rows []pathfinder.Skill
	if err := r.loadTable(ctx, skillsKey, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// GetAllClassSkills returns every class to skill relation
func (r *RedisClient) GetAllClassSkills(ctx context.Context) ([]pathfinder.ClassSkill, error) {
	var rows []pathfinder.ClassSkill
	if err := r.loadTable(ctx, classSkillsKey, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// GetAbilityByID returns the ability, or nil when it is not stored
func (r *RedisClient) GetAbilityByID(ctx context.Context, id int) (*pathfinder.Ability, error) {
	result, err := r.client.HGet(ctx, abilitiesKey, strconv.Itoa(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to get ability %d", id)
	}

	var ability pathfinder.Ability
	if err := json.Unmarshal([]byte(result), &ability); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal ability %d", id)
	}
	return &ability, nil
}

// GetAllAbpNodes returns every ABP node
func (r *RedisClient) GetAllAbpNodes(ctx context.Context) ([]pathfinder.AbpNode, error) {
	var rows []pathfinder.AbpNode
	if err := r.loadTable(ctx, abpNodesKey, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// GetAllAbpNodeGroups returns every ABP node group
func (r *RedisClient) GetAllAbpNodeGroups(ctx context.Context) ([]pathfinder.AbpNodeGroup, error) {
	var rows []pathfinder.AbpNodeGroup
	if err := r.loadTable(ctx, abpNodeGroupsKey, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// GetAllAbpNodeBonuses returns every ABP node bonus
func (r *RedisClient) GetAllAbpNodeBonuses(ctx context.Context) ([]pathfinder.AbpNodeBonus, error) {
	var rows []pathfinder.AbpNodeBonus
	if err := r.loadTable(ctx, abpNodeBonusKey, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// GetAllAbpBonusTypes returns every ABP bonus type
func (r *RedisClient) GetAllAbpBonusTypes(ctx context.Context) ([]pathfinder.AbpBonusType, error) {
	var rows []pathfinder.AbpBonusType
	if err := r.loadTable(ctx, abpBonusTypesKey, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// GetAbpCacheData reads the four ABP tables in one round trip and joins them
func (r *RedisClient) GetAbpCacheData(
	ctx context.Context,
	effectiveLevel int,
	chosenNodeIDs []int,
) (*pathfinder.AbpCacheData, error) {
	keys := []string{abpNodeGroupsKey, abpNodesKey, abpNodeBonusKey, abpBonusTypesKey}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get abp tables")
	}

	catalog := &Catalog{}
	targets := []any{&catalog.AbpNodeGroups, &catalog.AbpNodes, &catalog.AbpNodeBonus, &catalog.AbpBonusTypes}
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}
		if err := json.Unmarshal([]byte(raw), targets[i]); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal %s", keys[i])
		}
	}

	return catalog.AbpCacheData(effectiveLevel, chosenNodeIDs), nil
}

// loadTable leaves rows empty when the key does not exist
func (r *RedisClient) loadTable(ctx context.Context, key string, rows any) error {
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			slog.DebugContext(ctx, "reference table not stored", "key", key)
			return nil
		}
		return errors.Wrapf(err, "failed to get %s", key)
	}

	if err := json.Unmarshal([]byte(result), rows); err != nil {
		return errors.Wrapf(err, "failed to unmarshal %s", key)
	}
	return nil
}
