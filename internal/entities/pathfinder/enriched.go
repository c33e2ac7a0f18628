package pathfinder

import "github.com/KirkDiggler/rpg-toolkit/core"

// EntityTypeCharacter is the rpg-toolkit entity type of an enriched character
const EntityTypeCharacter = "pathfinder_character"

var _ core.Entity = (*EnrichedCharacter)(nil)

// EnrichedCharacter is a raw character plus every derived statistic.
// It is a snapshot; recomputation produces a new value.
type EnrichedCharacter struct {
	RawCharacter

	Abilities              map[AbilityKind]ValueWithBreakdown `json:"abilities"`
	AbilityModifiers       map[AbilityKind]int                `json:"ability_modifiers"`
	Fortitude              ValueWithBreakdown                 `json:"fortitude"`
	Reflex                 ValueWithBreakdown                 `json:"reflex"`
	Will                   ValueWithBreakdown                 `json:"will"`
	AC                     ValueWithBreakdown                 `json:"ac"`
	TouchAC                ValueWithBreakdown                 `json:"touch_ac"`
	FlatFootedAC           ValueWithBreakdown                 `json:"flat_footed_ac"`
	CMB                    ValueWithBreakdown                 `json:"cmb"`
	CMD                    ValueWithBreakdown                 `json:"cmd"`
	Initiative             ValueWithBreakdown                 `json:"initiative"`
	Skills                 map[int]ValueWithBreakdown         `json:"skills"`
	Attacks                AttackBlock                        `json:"attacks"`
	SkillPoints            SkillPointLedger                   `json:"skill_points"`
	ProcessedClassFeatures []ClassFeature                     `json:"processed_class_features"`
}

// AttackBlock holds base attack bonus and the derived attacks
type AttackBlock struct {
	BaseAttackBonus ValueWithBreakdown `json:"base_attack_bonus"`
	Iteratives      []int              `json:"iteratives"`
	Melee           ValueWithBreakdown `json:"melee"`
	Ranged          ValueWithBreakdown `json:"ranged"`
	BombAttack      ValueWithBreakdown `json:"bomb_attack"`
	BombDamage      ValueWithBreakdown `json:"bomb_damage"`
}

// SkillPointLedger maps each character level to the skill points gained and left
type SkillPointLedger struct {
	Total     map[int]int `json:"total"`
	Remaining map[int]int `json:"remaining"`
}

// GetID returns the character's ID
func (c *EnrichedCharacter) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *EnrichedCharacter) GetType() string {
	return EntityTypeCharacter
}

// Skill returns the resolved skill, if the catalog had it
func (c *EnrichedCharacter) Skill(skillID int) (ValueWithBreakdown, bool) {
	v, ok := c.Skills[skillID]
	return v, ok
}

// Save returns the resolved save
func (c *EnrichedCharacter) Save(save SaveKind) ValueWithBreakdown {
	switch save {
	case SaveFortitude:
		return c.Fortitude
	case SaveReflex:
		return c.Reflex
	default:
		return c.Will
	}
}
