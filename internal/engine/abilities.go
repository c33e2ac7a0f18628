package engine

import (
	"github.com/KirkDiggler/pathfinder-stats/internal/entities/pathfinder"
)

// resolveAbility adds the best applicable ABP prowess enhancement to the base score.
// The specific and generic prowess kinds never sum.
func resolveAbility(
	character *pathfinder.RawCharacter,
	cache *CharacterCache,
	ability pathfinder.AbilityKind,
) pathfinder.ValueWithBreakdown {
	entries := []pathfinder.BonusEntry{
		{Source: "Base", Value: character.AbilityScore(ability), Type: pathfinder.BonusTypeBase},
	}

	enhancement := 0
	for _, kind := range pathfinder.AbpKindsFor(ability) {
		enhancement = max(enhancement, AbpBonusFromCache(cache, kind))
	}
	if enhancement > 0 {
		entries = append(entries, pathfinder.BonusEntry{
			Source: "ABP Enhancement",
			Value:  enhancement,
			Type:   pathfinder.BonusTypeEnhancement,
		})
	}

	return breakdown(ability.Label(), entries)
}

// resolveAbilities resolves all six abilities
func resolveAbilities(
	character *pathfinder.RawCharacter,
	cache *CharacterCache,
) map[pathfinder.AbilityKind]pathfinder.ValueWithBreakdown {
	abilities := make(map[pathfinder.AbilityKind]pathfinder.ValueWithBreakdown, len(pathfinder.AllAbilities))
	for _, ability := range pathfinder.AllAbilities {
		abilities[ability] = resolveAbility(character, cache, ability)
	}
	return abilities
}
