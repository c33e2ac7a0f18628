package engine

import (
	"github.com/KirkDiggler/pathfinder-stats/internal/entities/pathfinder"
)

// baseSave sums the class progressions for one save across multiclassing
func baseSave(character *pathfinder.RawCharacter, save pathfinder.SaveKind) int {
	total := 0
	for _, class := range character.Classes {
		if class.Saves.For(save).IsGood() {
			total += 2 + class.Level/2
		} else {
			total += class.Level / 3
		}
	}
	return total
}

func (r *resolution) resolveSave(save pathfinder.SaveKind) pathfinder.ValueWithBreakdown {
	ability := save.Ability()
	entries := []pathfinder.BonusEntry{
		{Source: "Base Save", Value: baseSave(r.character, save), Type: pathfinder.BonusTypeBase},
		{Source: ability.Label(), Value: r.modifier(ability)},
		{
			Source: "ABP Resistance",
			Value:  AbpBonusFromCache(r.cache, pathfinder.BonusKindResistance),
			Type:   pathfinder.BonusTypeResistance,
		},
	}
	return breakdown(save.Label(), entries)
}
