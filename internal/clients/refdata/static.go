package refdata

import (
	"context"
	"slices"

	"github.com/KirkDiggler/pathfinder-stats/internal/entities/pathfinder"
	"github.com/KirkDiggler/pathfinder-stats/internal/errors"
)

type staticClient struct {
	catalog   *Catalog
	abilities map[int]pathfinder.Ability
}

// NewStatic serves reference data from an in-memory catalog
func NewStatic(catalog *Catalog) (Client, error) {
	if catalog == nil {
		return nil, errors.InvalidArgument("catalog cannot be nil")
	}

	abilities := make(map[int]pathfinder.Ability, len(catalog.Abilities))
	for _, ability := range catalog.Abilities {
		abilities[ability.ID] = ability
	}

	return &staticClient{
		catalog:   catalog,
		abilities: abilities,
	}, nil
}

func (c *staticClient) GetAllSkills(_ context.Context) ([]pathfinder.Skill, error) {
	return slices.Clone(c.catalog.Skills), nil
}

func (c *staticClient) GetAllClassSkills(_ context.Context) ([]pathfinder.ClassSkill, error) {
	return slices.Clone(c.catalog.ClassSkills), nil
}

func (c *staticClient) GetAbilityByID(_ context.Context, id int) (*pathfinder.Ability, error) {
	ability, ok := c.abilities[id]
	if !ok {
		return nil, nil
	}
	return &ability, nil
}

func (c *staticClient) GetAllAbpNodes(_ context.Context) ([]pathfinder.AbpNode, error) {
	return slices.Clone(c.catalog.AbpNodes), nil
}

func (c *staticClient) GetAllAbpNodeGroups(_ context.Context) ([]pathfinder.AbpNodeGroup, error) {
	return slices.Clone(c.catalog.AbpNodeGroups), nil
}

func (c *staticClient) GetAllAbpNodeBonuses(_ context.Context) ([]pathfinder.AbpNodeBonus, error) {
	return slices.Clone(c.catalog.AbpNodeBonus), nil
}

func (c *staticClient) GetAllAbpBonusTypes(_ context.Context) ([]pathfinder.AbpBonusType, error) {
	return slices.Clone(c.catalog.AbpBonusTypes), nil
}

func (c *staticClient) GetAbpCacheData(
	_ context.Context,
	effectiveLevel int,
	chosenNodeIDs []int,
) (*pathfinder.AbpCacheData, error) {
	return c.catalog.AbpCacheData(effectiveLevel, chosenNodeIDs), nil
}
