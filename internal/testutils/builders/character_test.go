package builders_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pathfinder-stats/internal/entities/pathfinder"
	"github.com/KirkDiggler/pathfinder-stats/internal/testutils/builders"
)

func TestCharacterBuilder(t *testing.T) {
	builder := builders.NewCharacterBuilder().
		WithID("char_1").
		WithAbilityScore(pathfinder.AbilityDexterity, 16).
		WithArmor("Chain Shirt", 4, 4, -2).
		WithTrait("Pragmatic Activator").
		WithSkillRanks(5, 1, 2, 3)

	first := builder.Build()
	assert.Equal(t, "char_1", first.ID)
	require.NotNil(t, first.Armor.MaxDexBonus)
	assert.Equal(t, 4, *first.Armor.MaxDexBonus)
	assert.True(t, first.HasTrait(pathfinder.FeaturePragmaticActivator))
	assert.Len(t, first.SkillRanks, 3)

	first.AbilityScores[pathfinder.AbilityDexterity] = 8
	first.Armor.ArmorBonus = 0

	second := builder.Build()
	assert.Equal(t, 16, second.AbilityScores[pathfinder.AbilityDexterity])
	assert.Equal(t, 4, second.Armor.ArmorBonus)
}

func TestCharacterBuilderUncappedArmor(t *testing.T) {
	character := builders.NewCharacterBuilder().WithArmor("Robes", 0, -1, 0).Build()
	assert.Nil(t, character.Armor.MaxDexBonus)
}
