package engine

import (
	"log/slog"

	"github.com/KirkDiggler/pathfinder-stats/internal/entities/pathfinder"
)

const (
	classSkillBonus           = 3
	generallyEducatedBonus    = 2
	vampiricGraceBonus        = 2
	allureBonus               = 2
	allureEmpoweredBonus      = 4
	allureEmpoweredLevel      = 3
	childrenOfTheNightPenalty = -3
)

// abilityOverrideRule re-keys a skill to another ability when the character has a trait
type abilityOverrideRule struct {
	skill  string
	from   pathfinder.AbilityKind
	to     pathfinder.AbilityKind
	trait  pathfinder.FeatureFlag
	source string
}

// abilityOverrideRules are evaluated in order and the first match wins
var abilityOverrideRules = []abilityOverrideRule{
	{
		skill:  pathfinder.SkillUseMagicDevice,
		from:   pathfinder.AbilityCharisma,
		to:     pathfinder.AbilityIntelligence,
		trait:  pathfinder.FeaturePragmaticActivator,
		source: "Pragmatic Activator",
	},
	{
		skill:  pathfinder.SkillDiplomacy,
		from:   pathfinder.AbilityCharisma,
		to:     pathfinder.AbilityIntelligence,
		trait:  pathfinder.FeatureCleverWordplayDiplomacy,
		source: "Clever Wordplay (Diplomacy)",
	},
}

func (r *resolution) resolveSkills() map[int]pathfinder.ValueWithBreakdown {
	ranks := make(map[int]int)
	for _, rank := range r.character.SkillRanks {
		ranks[rank.SkillID]++
	}

	skills := make(map[int]pathfinder.ValueWithBreakdown, len(r.cache.Skills))
	for _, skill := range r.cache.Skills {
		skills[skill.ID] = r.resolveSkill(skill, ranks[skill.ID])
	}
	return skills
}

// governingAbility returns the skill's catalog ability, false when the
// relation is absent or names no known ability
func (r *resolution) governingAbility(skill pathfinder.Skill) (pathfinder.AbilityKind, bool) {
	row, ok := r.cache.Abilities[skill.AbilityID]
	if !ok {
		return "", false
	}
	ability, ok := pathfinder.ParseAbilityKind(row.Name)
	if !ok {
		slog.WarnContext(r.ctx, "unknown ability name",
			"skill_id", skill.ID,
			"ability_id", row.ID,
			"ability_name", row.Name)
		return "", false
	}
	return ability, true
}

func (r *resolution) abilityOverride(skill pathfinder.Skill, original pathfinder.AbilityKind) *pathfinder.AbilityOverride {
	name := pathfinder.NormalizeName(skill.Name)
	for _, rule := range abilityOverrideRules {
		if name != rule.skill || original != rule.from {
			continue
		}
		if !r.character.HasTrait(rule.trait) {
			continue
		}
		return &pathfinder.AbilityOverride{
			Original: original,
			Override: rule.to,
			Source:   rule.source,
		}
	}
	return nil
}

func (r *resolution) resolveSkill(skill pathfinder.Skill, ranks int) pathfinder.ValueWithBreakdown {
	c := r.character
	name := pathfinder.NormalizeName(skill.Name)
	knowledge := pathfinder.IsKnowledgeSkill(skill.Name)
	overrides := &pathfinder.Overrides{}

	entries := []pathfinder.BonusEntry{
		{Source: "Ranks", Value: ranks},
	}

	if ability, ok := r.governingAbility(skill); ok {
		if override := r.abilityOverride(skill, ability); override != nil {
			overrides.Ability = override
			ability = override.Override
		}
		entries = append(entries, pathfinder.BonusEntry{Source: ability.Label(), Value: r.modifier(ability)})
	}

	if r.cache.IsClassSkill(skill.ID) && ranks > 0 {
		entries = append(entries, pathfinder.BonusEntry{Source: "Class Skill", Value: classSkillBonus})
	}

	if knowledge && c.HasFeat(pathfinder.FeatureGenerallyEducated) {
		entries = append(entries, pathfinder.BonusEntry{Source: "Generally Educated", Value: generallyEducatedBonus})
		overrides.TrainedOnly = &pathfinder.TrainedOnlyOverride{
			TrainedOnly: false,
			Source:      "Generally Educated",
		}
	}

	if knowledge {
		if feature, ok := c.ClassFeature(pathfinder.FeaturePerfectRecall); ok && feature.LevelObtained <= c.TotalLevel() {
			entries = append(entries, pathfinder.BonusEntry{
				Source: "Perfect Recall",
				Value:  r.modifier(pathfinder.AbilityIntelligence),
			})
		}
	}

	entries = append(entries, r.corruptionModifiers(name)...)

	if skill.ArmorCheckPenalty {
		if penalty := r.armorCheckPenalty(); penalty < 0 {
			entries = append(entries, pathfinder.BonusEntry{Source: "Armor Check Penalty", Value: penalty})
		}
	}

	value := breakdown(skill.Name, entries)
	if !overrides.IsEmpty() {
		value.Overrides = overrides
	}
	return value
}

// corruptionModifiers applies active manifestation effects. Children of the
// Night applies to every Handle Animal and Ride check.
func (r *resolution) corruptionModifiers(skill string) []pathfinder.BonusEntry {
	entries := make([]pathfinder.BonusEntry, 0)

	if skill == pathfinder.SkillStealth {
		if _, ok := r.character.ActiveCorruption(pathfinder.FeatureVampiricGrace); ok {
			entries = append(entries, pathfinder.BonusEntry{Source: "Vampiric Grace", Value: vampiricGraceBonus})
		}
	}

	switch skill {
	case pathfinder.SkillBluff, pathfinder.SkillDiplomacy, pathfinder.SkillIntimidate:
		if m, ok := r.character.ActiveCorruption(pathfinder.FeatureAllure); ok {
			bonus := allureBonus
			if m.Corruption.ManifestationLevel >= allureEmpoweredLevel {
				bonus = allureEmpoweredBonus
			}
			entries = append(entries, pathfinder.BonusEntry{Source: "Allure", Value: bonus})
		}
	case pathfinder.SkillHandleAnimal, pathfinder.SkillRide:
		if _, ok := r.character.ActiveCorruption(pathfinder.FeatureChildrenOfTheNight); ok {
			entries = append(entries, pathfinder.BonusEntry{Source: "Children of the Night", Value: childrenOfTheNightPenalty})
		}
	}

	return entries
}

// armorCheckPenalty sums armor and shield penalties as a negative value
func (r *resolution) armorCheckPenalty() int {
	penalty := 0
	if r.character.Armor != nil {
		penalty -= abs(r.character.Armor.ArmorCheckPenalty)
	}
	if r.character.Shield != nil {
		penalty -= abs(r.character.Shield.ArmorCheckPenalty)
	}
	return penalty
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
