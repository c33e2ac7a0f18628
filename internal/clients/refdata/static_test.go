package refdata_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pathfinder-stats/internal/clients/refdata"
	"github.com/KirkDiggler/pathfinder-stats/internal/entities/pathfinder"
	"github.com/KirkDiggler/pathfinder-stats/internal/errors"
)

func smallCatalog() *refdata.Catalog {
	return &refdata.Catalog{
		Abilities: []pathfinder.Ability{{ID: 4, Name: "Intelligence"}},
		Skills:    []pathfinder.Skill{{ID: 1, Name: "Knowledge (Arcana)", AbilityID: 4, TrainedOnly: true}},
		ClassSkills: []pathfinder.ClassSkill{
			{ClassID: 3, SkillID: 1},
		},
		AbpNodeGroups: []pathfinder.AbpNodeGroup{
			{ID: 1, Name: "Resistance", Level: 3},
			{ID: 2, Name: "Prowess", Level: 4, RequiresChoice: true},
			{ID: 3, Name: "Protection", Level: 10},
		},
		AbpNodes: []pathfinder.AbpNode{
			{ID: 10, GroupID: 1, Name: "Resistance +1"},
			{ID: 20, GroupID: 2, Name: "Mental Prowess (Int) +2"},
			{ID: 30, GroupID: 3, Name: "Toughening +1"},
		},
		AbpNodeBonus: []pathfinder.AbpNodeBonus{
			{ID: 1, NodeID: 10, BonusTypeID: 1, Value: 1},
			{ID: 2, NodeID: 20, BonusTypeID: 2, Value: 2},
			{ID: 3, NodeID: 30, BonusTypeID: 3, Value: 1},
		},
		AbpBonusTypes: []pathfinder.AbpBonusType{
			{ID: 1, Name: "resistance"},
			{ID: 2, Name: "mental_prowess_int"},
		},
	}
}

func TestNewStatic(t *testing.T) {
	client, err := refdata.NewStatic(nil)
	assert.Nil(t, client)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestStaticClient(t *testing.T) {
	ctx := context.Background()
	client, err := refdata.NewStatic(smallCatalog())
	require.NoError(t, err)

	t.Run("ability lookup", func(t *testing.T) {
		ability, err := client.GetAbilityByID(ctx, 4)
		require.NoError(t, err)
		require.NotNil(t, ability)
		assert.Equal(t, "Intelligence", ability.Name)
	})

	t.Run("absent ability is nil without error", func(t *testing.T) {
		ability, err := client.GetAbilityByID(ctx, 99)
		assert.NoError(t, err)
		assert.Nil(t, ability)
	})

	t.Run("tables are copies", func(t *testing.T) {
		skills, err := client.GetAllSkills(ctx)
		require.NoError(t, err)
		skills[0].Name = "changed"

		again, err := client.GetAllSkills(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Knowledge (Arcana)", again[0].Name)
	})

	t.Run("abp cache data gates on level and keeps choices", func(t *testing.T) {
		data, err := client.GetAbpCacheData(ctx, 5, []int{20})
		require.NoError(t, err)

		assert.Equal(t, []pathfinder.AbpNode{
			{ID: 10, GroupID: 1, Name: "Resistance +1"},
			{ID: 20, GroupID: 2, Name: "Mental Prowess (Int) +2"},
		}, data.Nodes)
		assert.Equal(t, []pathfinder.AbpCacheBonus{
			{NodeID: 10, NodeName: "Resistance +1", TypeName: "resistance", Value: 1},
			{NodeID: 20, NodeName: "Mental Prowess (Int) +2", TypeName: "mental_prowess_int", Value: 2},
		}, data.Bonuses)
	})

	t.Run("missing bonus type joins with an empty name", func(t *testing.T) {
		data, err := client.GetAbpCacheData(ctx, 12, nil)
		require.NoError(t, err)

		require.Len(t, data.Bonuses, 2)
		assert.Equal(t, 30, data.Bonuses[1].NodeID)
		assert.Empty(t, data.Bonuses[1].TypeName)
	})
}
