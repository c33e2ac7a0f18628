package engine

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/pathfinder-stats/internal/entities/pathfinder"
)

const (
	iterativeStep = 5
	alchemistName = "alchemist"
)

// classBab is one class's base attack bonus; unknown progressions contribute 0
func (r *resolution) classBab(class pathfinder.ClassLevel) int {
	progression, ok := pathfinder.ParseBabProgression(class.BabProgressionID)
	if !ok {
		slog.WarnContext(r.ctx, "unknown bab progression",
			"character_id", r.character.ID,
			"class_id", class.ClassID,
			"bab_progression_id", class.BabProgressionID)
		return 0
	}

	switch progression {
	case pathfinder.BabFull:
		return class.Level
	case pathfinder.BabThreeQuarters:
		return class.Level * 3 / 4
	case pathfinder.BabHalf:
		return class.Level / 2
	default:
		return 0
	}
}

func (r *resolution) resolveBab() pathfinder.ValueWithBreakdown {
	entries := make([]pathfinder.BonusEntry, 0, len(r.character.Classes))
	for _, class := range r.character.Classes {
		entries = append(entries, pathfinder.BonusEntry{
			Source: fmt.Sprintf("%s %d", class.Name, class.Level),
			Value:  r.classBab(class),
		})
	}
	return breakdown("Base Attack Bonus", entries)
}

// iteratives returns the attack sequence, stepping down by 5 while the
// remaining value is above 5
func iteratives(bab int) []int {
	sequence := []int{bab}
	for value := bab; value > iterativeStep; {
		value -= iterativeStep
		sequence = append(sequence, value)
	}
	return sequence
}

func formatIteratives(sequence []int, extra int) string {
	parts := make([]string, 0, len(sequence))
	for _, value := range sequence {
		parts = append(parts, fmt.Sprintf("%+d", value+extra))
	}
	return strings.Join(parts, "/")
}

func (r *resolution) resolveAttacks(babValue pathfinder.ValueWithBreakdown) pathfinder.AttackBlock {
	sequence := iteratives(r.bab)
	attunement := AbpBonusFromCache(r.cache, pathfinder.BonusKindWeaponAttunement)

	weaponAttack := func(name string, ability pathfinder.AbilityKind) pathfinder.ValueWithBreakdown {
		entries := []pathfinder.BonusEntry{
			{Source: "Base Attack Bonus", Value: r.bab},
			{Source: ability.Label(), Value: r.modifier(ability)},
			{Source: "ABP Weapon Attunement", Value: attunement, Type: pathfinder.BonusTypeEnhancement},
		}
		value := breakdown(name, entries)
		value.Label = fmt.Sprintf("%s %s", name, formatIteratives(sequence, value.Total-r.bab))
		return value
	}

	bombAttack := breakdown("Bomb Attack", []pathfinder.BonusEntry{
		{Source: "Base Attack Bonus", Value: r.bab},
		{Source: "Dexterity", Value: r.modifier(pathfinder.AbilityDexterity)},
	})
	bombAttack.Label = fmt.Sprintf("Bomb Attack %s", formatIteratives(sequence, bombAttack.Total-r.bab))

	return pathfinder.AttackBlock{
		BaseAttackBonus: babValue,
		Iteratives:      sequence,
		Melee:           weaponAttack("Melee", pathfinder.AbilityStrength),
		Ranged:          weaponAttack("Ranged", pathfinder.AbilityDexterity),
		BombAttack:      bombAttack,
		BombDamage:      r.resolveBombDamage(),
	}
}

// resolveBombDamage adds the intelligence modifier to the bomb dice of the
// character's alchemist levels
func (r *resolution) resolveBombDamage() pathfinder.ValueWithBreakdown {
	value := breakdown("Bomb Damage", []pathfinder.BonusEntry{
		{Source: "Intelligence", Value: r.modifier(pathfinder.AbilityIntelligence)},
	})

	alchemistLevel := 0
	for _, class := range r.character.Classes {
		if pathfinder.NormalizeName(class.Name) == alchemistName {
			alchemistLevel += class.Level
		}
	}
	if alchemistLevel > 0 {
		value.Label = fmt.Sprintf("Bomb Damage %dd6%+d", (alchemistLevel+1)/2, value.Total)
	}
	return value
}
