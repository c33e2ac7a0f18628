package engine

import (
	"context"

	"github.com/KirkDiggler/pathfinder-stats/internal/clients/refdata"
	"github.com/KirkDiggler/pathfinder-stats/internal/entities/pathfinder"
)

// LoadCache exposes the per pass cache loader to the external tests
func LoadCache(ctx context.Context, e Engine, character *pathfinder.RawCharacter) (*CharacterCache, error) {
	return e.(*engine).loadCache(ctx, character)
}

// Skill ids of the fixture catalog
const (
	SkillAcrobatics      = 1
	SkillUseMagicDevice  = 2
	SkillDiplomacy       = 3
	SkillKnowledgeArcana = 4
	SkillStealth         = 5
	SkillBluff           = 6
	SkillIntimidate      = 7
	SkillHandleAnimal    = 8
	SkillRide            = 9
	SkillPerception      = 10
	SkillMystery         = 11
)

// Class ids of the fixture catalog
const (
	ClassFighter   = 1
	ClassRogue     = 2
	ClassAlchemist = 3
)

// FixtureCatalog is a small reference catalog shared by the engine tests
func FixtureCatalog() *refdata.Catalog {
	return &refdata.Catalog{
		Abilities: []pathfinder.Ability{
			{ID: 1, Name: "Strength"},
			{ID: 2, Name: "Dexterity"},
			{ID: 3, Name: "Constitution"},
			{ID: 4, Name: "Intelligence"},
			{ID: 5, Name: "Wisdom"},
			{ID: 6, Name: "Charisma"},
		},
		Skills: []pathfinder.Skill{
			{ID: SkillAcrobatics, Name: "Acrobatics", AbilityID: 2, ArmorCheckPenalty: true},
			{ID: SkillUseMagicDevice, Name: "Use Magic Device", AbilityID: 6, TrainedOnly: true},
			{ID: SkillDiplomacy, Name: "Diplomacy", AbilityID: 6},
			{ID: SkillKnowledgeArcana, Name: "Knowledge (Arcana)", AbilityID: 4, TrainedOnly: true},
			{ID: SkillStealth, Name: "Stealth", AbilityID: 2, ArmorCheckPenalty: true},
			{ID: SkillBluff, Name: "Bluff", AbilityID: 6},
			{ID: SkillIntimidate, Name: "Intimidate", AbilityID: 6},
			{ID: SkillHandleAnimal, Name: "Handle Animal", AbilityID: 6, TrainedOnly: true},
			{ID: SkillRide, Name: "Ride", AbilityID: 2, ArmorCheckPenalty: true},
			{ID: SkillPerception, Name: "Perception", AbilityID: 5},
			{ID: SkillMystery, Name: "Mystery", AbilityID: 99},
		},
		ClassSkills: []pathfinder.ClassSkill{
			{ClassID: ClassFighter, SkillID: SkillAcrobatics},
			{ClassID: ClassFighter, SkillID: SkillRide},
			{ClassID: ClassRogue, SkillID: SkillAcrobatics},
			{ClassID: ClassRogue, SkillID: SkillStealth},
			{ClassID: ClassRogue, SkillID: SkillBluff},
			{ClassID: ClassRogue, SkillID: SkillDiplomacy},
			{ClassID: ClassRogue, SkillID: SkillPerception},
			{ClassID: ClassAlchemist, SkillID: SkillKnowledgeArcana},
			{ClassID: ClassAlchemist, SkillID: SkillUseMagicDevice},
		},
		AbpNodeGroups: []pathfinder.AbpNodeGroup{
			{ID: 1, Name: "Resistance", Level: 3},
			{ID: 2, Name: "Prowess", Level: 4, RequiresChoice: true},
			{ID: 3, Name: "Attunement", Level: 5},
			{ID: 4, Name: "Protection", Level: 10},
			{ID: 5, Name: "Legendary", Level: 30},
		},
		AbpNodes: []pathfinder.AbpNode{
			{ID: 10, GroupID: 1, Name: "Resistance +1"},
			{ID: 11, GroupID: 1, Name: "Legendary Gift"},
			{ID: 20, GroupID: 2, Name: "Physical Prowess (Str) +2"},
			{ID: 21, GroupID: 2, Name: "Physical Prowess (All) +4"},
			{ID: 22, GroupID: 2, Name: "Mental Prowess (Int) +2"},
			{ID: 30, GroupID: 3, Name: "Armor Attunement +1"},
			{ID: 31, GroupID: 3, Name: "Weapon Attunement +1"},
			{ID: 40, GroupID: 4, Name: "Resistance +2"},
			{ID: 41, GroupID: 4, Name: "Deflection +1"},
			{ID: 42, GroupID: 4, Name: "Toughening +1"},
			{ID: 50, GroupID: 5, Name: "Resistance +5"},
		},
		AbpNodeBonus: []pathfinder.AbpNodeBonus{
			{ID: 1, NodeID: 10, BonusTypeID: 1, Value: 1},
			{ID: 2, NodeID: 11, BonusTypeID: 6, Value: 1},
			{ID: 3, NodeID: 20, BonusTypeID: 2, Value: 2},
			{ID: 4, NodeID: 21, BonusTypeID: 3, Value: 4},
			{ID: 5, NodeID: 22, BonusTypeID: 9, Value: 2},
			{ID: 6, NodeID: 30, BonusTypeID: 4, Value: 1},
			{ID: 7, NodeID: 31, BonusTypeID: 5, Value: 1},
			{ID: 8, NodeID: 40, BonusTypeID: 1, Value: 2},
			{ID: 9, NodeID: 41, BonusTypeID: 7, Value: 1},
			{ID: 10, NodeID: 42, BonusTypeID: 8, Value: 1},
			{ID: 11, NodeID: 50, BonusTypeID: 1, Value: 5},
			{ID: 12, NodeID: 10, BonusTypeID: 99, Value: 3},
		},
		AbpBonusTypes: []pathfinder.AbpBonusType{
			{ID: 1, Name: "resistance"},
			{ID: 2, Name: "physical_prowess_str"},
			{ID: 3, Name: "physical_prowess_all"},
			{ID: 4, Name: "armor_attunement"},
			{ID: 5, Name: "weapon_attunement"},
			{ID: 6, Name: "legendary_gifts"},
			{ID: 7, Name: "deflection"},
			{ID: 8, Name: "toughening"},
			{ID: 9, Name: "mental_prowess_int"},
		},
	}
}

// Fighter returns a class level with full BAB and good fortitude
func Fighter(level int) pathfinder.ClassLevel {
	return pathfinder.ClassLevel{
		ClassID: ClassFighter,
		Name:    "Fighter",
		Level:   level,
		Saves: pathfinder.SaveProgressions{
			Fortitude: pathfinder.SaveProgressionGood,
			Reflex:    pathfinder.SaveProgressionPoor,
			Will:      pathfinder.SaveProgressionPoor,
		},
		BabProgressionID:   "full",
		SkillRanksPerLevel: 2,
	}
}

// Rogue returns a class level with 3/4 BAB and good reflex
func Rogue(level int) pathfinder.ClassLevel {
	return pathfinder.ClassLevel{
		ClassID: ClassRogue,
		Name:    "Rogue",
		Level:   level,
		Saves: pathfinder.SaveProgressions{
			Fortitude: pathfinder.SaveProgressionPoor,
			Reflex:    pathfinder.SaveProgressionGood,
			Will:      pathfinder.SaveProgressionPoor,
		},
		BabProgressionID:   "3/4",
		SkillRanksPerLevel: 8,
	}
}

// Alchemist returns a class level with 3/4 BAB and good fortitude and reflex
func Alchemist(level int) pathfinder.ClassLevel {
	return pathfinder.ClassLevel{
		ClassID: ClassAlchemist,
		Name:    "Alchemist",
		Level:   level,
		Saves: pathfinder.SaveProgressions{
			Fortitude: pathfinder.SaveProgressionGood,
			Reflex:    pathfinder.SaveProgressionGood,
			Will:      pathfinder.SaveProgressionPoor,
		},
		BabProgressionID:   "three_quarters",
		SkillRanksPerLevel: 4,
	}
}
