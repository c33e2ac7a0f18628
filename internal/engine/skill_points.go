package engine

import (
	"github.com/KirkDiggler/pathfinder-stats/internal/entities/pathfinder"
)

// resolveSkillPoints builds the per level ledger. Character levels are handed
// out to classes in list order.
func (r *resolution) resolveSkillPoints() pathfinder.SkillPointLedger {
	ledger := pathfinder.SkillPointLedger{
		Total:     make(map[int]int),
		Remaining: make(map[int]int),
	}

	spent := make(map[int]int)
	for _, rank := range r.character.SkillRanks {
		spent[rank.Level]++
	}

	favored := make(map[int]bool)
	for _, fcb := range r.character.FavoredClassBonuses {
		if pathfinder.NormalizeName(fcb.Choice) == pathfinder.FavoredClassChoiceSkill {
			favored[fcb.Level] = true
		}
	}

	intMod := r.modifier(pathfinder.AbilityIntelligence)
	level := 0
	for _, class := range r.character.Classes {
		for i := 0; i < class.Level; i++ {
			level++
			points := max(1, class.SkillRanksPerLevel+intMod)
			if favored[level] {
				points++
			}
			ledger.Total[level] = points
			ledger.Remaining[level] = points - spent[level]
		}
	}

	return ledger
}
