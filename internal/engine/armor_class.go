package engine

import (
	"log/slog"

	"github.com/KirkDiggler/pathfinder-stats/internal/entities/pathfinder"
)

type acRole int

const (
	acRoleCommon acRole = iota
	// armor, shield and natural armor, which touch attacks ignore
	acRoleProtection
	acRoleDex
	acRoleDodge
)

type acComponent struct {
	entry pathfinder.BonusEntry
	role  acRole
}

type armorClasses struct {
	ac         pathfinder.ValueWithBreakdown
	touch      pathfinder.ValueWithBreakdown
	flatFooted pathfinder.ValueWithBreakdown
}

// effectiveDex is the dexterity modifier capped by the armor's max dex bonus
func (r *resolution) effectiveDex() int {
	dex := r.modifier(pathfinder.AbilityDexterity)
	if r.character.Armor != nil && r.character.Armor.MaxDexBonus != nil {
		dex = min(dex, *r.character.Armor.MaxDexBonus)
	}
	return dex
}

func (r *resolution) size() pathfinder.SizeCategory {
	if r.character.Ancestry == nil || r.character.Ancestry.Size == "" {
		return pathfinder.SizeMedium
	}
	size, ok := pathfinder.ParseSizeCategory(r.character.Ancestry.Size)
	if !ok {
		slog.WarnContext(r.ctx, "unknown size category",
			"character_id", r.character.ID,
			"size", r.character.Ancestry.Size)
		return pathfinder.SizeMedium
	}
	return size
}

// naturalArmor comes from the ancestry record; ancestries without a value give 0
func (r *resolution) naturalArmor() int {
	if r.character.Ancestry == nil {
		return 0
	}
	return r.character.Ancestry.NaturalArmor
}

func (r *resolution) acComponents() []acComponent {
	c := r.character
	components := []acComponent{
		{entry: pathfinder.BonusEntry{Source: "Base", Value: 10, Type: pathfinder.BonusTypeBase}},
	}

	armorAttunement := AbpBonusFromCache(r.cache, pathfinder.BonusKindArmorAttunement)
	if c.Armor != nil {
		components = append(components, acComponent{
			entry: pathfinder.BonusEntry{
				Source: c.Armor.Name,
				Value:  c.Armor.ArmorBonus + armorAttunement,
				Type:   pathfinder.BonusTypeArmor,
			},
			role: acRoleProtection,
		})
	} else if armorAttunement > 0 {
		components = append(components, acComponent{
			entry: pathfinder.BonusEntry{Source: "Armor Attunement", Value: armorAttunement, Type: pathfinder.BonusTypeArmor},
			role:  acRoleProtection,
		})
	}

	if c.Shield != nil {
		components = append(components, acComponent{
			entry: pathfinder.BonusEntry{
				Source: c.Shield.Name,
				Value:  c.Shield.ShieldBonus + AbpBonusFromCache(r.cache, pathfinder.BonusKindShieldAttunement),
				Type:   pathfinder.BonusTypeShield,
			},
			role: acRoleProtection,
		})
	}

	size := r.size()
	components = append(components,
		acComponent{
			entry: pathfinder.BonusEntry{Source: "Dexterity", Value: r.effectiveDex()},
			role:  acRoleDex,
		},
		acComponent{
			entry: pathfinder.BonusEntry{Source: "Size (" + string(size) + ")", Value: size.ACModifier(), Type: pathfinder.BonusTypeSize},
		},
		acComponent{
			entry: pathfinder.BonusEntry{Source: "Natural Armor", Value: r.naturalArmor(), Type: pathfinder.BonusTypeNatural},
			role:  acRoleProtection,
		},
		acComponent{
			entry: pathfinder.BonusEntry{
				Source: "ABP Toughening",
				Value:  AbpBonusFromCache(r.cache, pathfinder.BonusKindToughening),
				Type:   pathfinder.BonusTypeEnhancement,
			},
			role: acRoleProtection,
		},
		acComponent{
			entry: pathfinder.BonusEntry{
				Source: "ABP Deflection",
				Value:  AbpBonusFromCache(r.cache, pathfinder.BonusKindDeflection),
				Type:   pathfinder.BonusTypeDeflection,
			},
		},
	)

	if c.HasFeat(pathfinder.FeatureDodge) {
		components = append(components, acComponent{
			entry: pathfinder.BonusEntry{Source: "Dodge", Value: 1, Type: pathfinder.BonusTypeDodge},
			role:  acRoleDodge,
		})
	}

	return components
}

func (r *resolution) resolveArmorClasses() armorClasses {
	components := r.acComponents()

	all := make([]pathfinder.BonusEntry, 0, len(components))
	touch := make([]pathfinder.BonusEntry, 0, len(components))
	flatFooted := make([]pathfinder.BonusEntry, 0, len(components))
	for _, comp := range components {
		all = append(all, comp.entry)
		if comp.role != acRoleProtection {
			touch = append(touch, comp.entry)
		}
		if comp.role != acRoleDex && comp.role != acRoleDodge {
			flatFooted = append(flatFooted, comp.entry)
		}
	}

	return armorClasses{
		ac:         breakdown("AC", all),
		touch:      breakdown("Touch AC", touch),
		flatFooted: breakdown("Flat-Footed AC", flatFooted),
	}
}
