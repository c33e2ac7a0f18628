package engine

import (
	"github.com/KirkDiggler/pathfinder-stats/internal/entities/pathfinder"
)

const improvedInitiativeBonus = 4

func (r *resolution) resolveCMB() pathfinder.ValueWithBreakdown {
	return breakdown("CMB", []pathfinder.BonusEntry{
		{Source: "Strength", Value: r.modifier(pathfinder.AbilityStrength)},
		{Source: "Base Attack Bonus", Value: r.bab},
	})
}

func (r *resolution) resolveCMD() pathfinder.ValueWithBreakdown {
	return breakdown("CMD", []pathfinder.BonusEntry{
		{Source: "Base", Value: 10, Type: pathfinder.BonusTypeBase},
		{Source: "Strength", Value: r.modifier(pathfinder.AbilityStrength)},
		{Source: "Dexterity", Value: r.effectiveDex()},
		{Source: "Base Attack Bonus", Value: r.bab},
	})
}

func (r *resolution) resolveInitiative() pathfinder.ValueWithBreakdown {
	entries := []pathfinder.BonusEntry{
		{Source: "Dexterity", Value: r.modifier(pathfinder.AbilityDexterity)},
	}
	if r.character.HasFeat(pathfinder.FeatureImprovedInitiative) {
		entries = append(entries, pathfinder.BonusEntry{Source: "Improved Initiative", Value: improvedInitiativeBonus})
	}
	return breakdown("Initiative", entries)
}
