package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/pathfinder-stats/internal/engine"
	"github.com/KirkDiggler/pathfinder-stats/internal/entities/pathfinder"
)

func entry(source string, value int, bonusType pathfinder.BonusType) pathfinder.BonusEntry {
	return pathfinder.BonusEntry{Source: source, Value: value, Type: bonusType}
}

func TestStack(t *testing.T) {
	tests := []struct {
		name      string
		bonuses   []pathfinder.BonusEntry
		wantTotal int
	}{
		{
			name:      "empty list",
			bonuses:   nil,
			wantTotal: 0,
		},
		{
			name: "untyped bonuses stack",
			bonuses: []pathfinder.BonusEntry{
				entry("Ranks", 4, pathfinder.BonusTypeUntyped),
				entry("Class Skill", 3, pathfinder.BonusTypeUntyped),
			},
			wantTotal: 7,
		},
		{
			name: "same typed bonuses take the best",
			bonuses: []pathfinder.BonusEntry{
				entry("Bull's Strength", 4, pathfinder.BonusTypeEnhancement),
				entry("Belt", 2, pathfinder.BonusTypeEnhancement),
			},
			wantTotal: 4,
		},
		{
			name: "different types stack",
			bonuses: []pathfinder.BonusEntry{
				entry("Heroism", 2, pathfinder.BonusTypeMorale),
				entry("Guidance", 1, pathfinder.BonusTypeCompetence),
			},
			wantTotal: 3,
		},
		{
			name: "dodge and circumstance always stack",
			bonuses: []pathfinder.BonusEntry{
				entry("Dodge", 1, pathfinder.BonusTypeDodge),
				entry("Haste", 1, pathfinder.BonusTypeDodge),
				entry("Higher Ground", 1, pathfinder.BonusTypeCircumstance),
				entry("Flanking", 2, pathfinder.BonusTypeCircumstance),
			},
			wantTotal: 5,
		},
		{
			name: "typed penalties stack",
			bonuses: []pathfinder.BonusEntry{
				entry("Shaken", -2, pathfinder.BonusTypeMorale),
				entry("Sickened", -2, pathfinder.BonusTypeMorale),
				entry("Heroism", 2, pathfinder.BonusTypeMorale),
			},
			wantTotal: -2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.Stack(tt.bonuses)
			assert.Equal(t, tt.wantTotal, result.Total)
		})
	}
}

func TestStackDuplicateTypedBonusNeverIncreasesTotal(t *testing.T) {
	lists := [][]int{
		{1},
		{2, 2},
		{1, 5, 3},
		{0, 4, 4, 4},
		{6, 1, 2, 3, 5},
	}

	for _, values := range lists {
		bonuses := make([]pathfinder.BonusEntry, 0, len(values))
		best := 0
		for _, v := range values {
			bonuses = append(bonuses, entry("Source", v, pathfinder.BonusTypeEnhancement))
			best = max(best, v)
		}

		all := engine.Stack(bonuses)
		single := engine.Stack([]pathfinder.BonusEntry{entry("Source", best, pathfinder.BonusTypeEnhancement)})
		assert.Equal(t, single.Total, all.Total, "values %v", values)
	}
}

func TestStackPenaltiesAreAdditive(t *testing.T) {
	bonuses := []pathfinder.BonusEntry{
		entry("Armor", 4, pathfinder.BonusTypeArmor),
		entry("Fatigued", -1, pathfinder.BonusTypeUntyped),
		entry("Curse", -3, pathfinder.BonusTypeArmor),
		entry("Dodge", 1, pathfinder.BonusTypeDodge),
		entry("Entangled", -2, pathfinder.BonusTypeDodge),
	}

	withoutPenalties := engine.Stack([]pathfinder.BonusEntry{bonuses[0], bonuses[3]})
	result := engine.Stack(bonuses)

	assert.Equal(t, withoutPenalties.Total-6, result.Total)
}

func TestStackModifiersKeepDominatedEntries(t *testing.T) {
	bonuses := []pathfinder.BonusEntry{
		entry("Ring", 2, pathfinder.BonusTypeDeflection),
		entry("Nothing", 0, pathfinder.BonusTypeUntyped),
		entry("Shield of Faith", 3, pathfinder.BonusTypeDeflection),
		entry("Other Ring", 3, pathfinder.BonusTypeDeflection),
	}

	result := engine.Stack(bonuses)

	assert.Equal(t, 3, result.Total)
	assert.Equal(t, []pathfinder.BonusEntry{bonuses[0], bonuses[2], bonuses[3]}, result.Modifiers)
}
