// Package pathfinder holds the character, reference data and derived
// statistics types shared by the engine and its adapters
package pathfinder

import "time"

// RawCharacter is a fully joined character record as stored by the caller
type RawCharacter struct {
	ID                  string                    `json:"id"`
	PlayerID            string                    `json:"player_id,omitempty"`
	Name                string                    `json:"name"`
	AbilityScores       map[AbilityKind]int       `json:"ability_scores,omitempty"`
	Classes             []ClassLevel              `json:"classes,omitempty"`
	Ancestry            *Ancestry                 `json:"ancestry,omitempty"`
	AbpChoices          []int                     `json:"abp_choices,omitempty"`
	Armor               *Armor                    `json:"armor,omitempty"`
	Shield              *Shield                   `json:"shield,omitempty"`
	Weapons             []Weapon                  `json:"weapons,omitempty"`
	Feats               []Feature                 `json:"feats,omitempty"`
	Traits              []Feature                 `json:"traits,omitempty"`
	ClassFeatures       []ClassFeature            `json:"class_features,omitempty"`
	Corruptions         []CorruptionManifestation `json:"corruptions,omitempty"`
	SkillRanks          []SkillRank               `json:"skill_ranks,omitempty"`
	FavoredClassBonuses []FavoredClassBonus       `json:"favored_class_bonuses,omitempty"`
	CreatedAt           time.Time                 `json:"created_at,omitzero"`
	UpdatedAt           time.Time                 `json:"updated_at,omitzero"`
}

// ClassLevel is the character's levels in one class
type ClassLevel struct {
	ClassID            int              `json:"class_id"`
	Name               string           `json:"name"`
	Level              int              `json:"level"`
	Saves              SaveProgressions `json:"saves"`
	BabProgressionID   string           `json:"bab_progression_id"`
	SkillRanksPerLevel int              `json:"skill_ranks_per_level"`
}

// SaveProgressions holds a class's progression for each save
type SaveProgressions struct {
	Fortitude SaveProgression `json:"fortitude"`
	Reflex    SaveProgression `json:"reflex"`
	Will      SaveProgression `json:"will"`
}

// For returns the progression of one save
func (s SaveProgressions) For(save SaveKind) SaveProgression {
	switch save {
	case SaveFortitude:
		return s.Fortitude
	case SaveReflex:
		return s.Reflex
	default:
		return s.Will
	}
}

// Ancestry is the character's race or heritage
type Ancestry struct {
	Name         string `json:"name"`
	Size         string `json:"size,omitempty"`
	NaturalArmor int    `json:"natural_armor,omitempty"`
}

// Armor is the equipped body armor
type Armor struct {
	Name              string `json:"name"`
	ArmorBonus        int    `json:"armor_bonus"`
	MaxDexBonus       *int   `json:"max_dex_bonus,omitempty"`
	ArmorCheckPenalty int    `json:"armor_check_penalty,omitempty"`
}

// Shield is the equipped shield
type Shield struct {
	Name              string `json:"name"`
	ShieldBonus       int    `json:"shield_bonus"`
	ArmorCheckPenalty int    `json:"armor_check_penalty,omitempty"`
}

// Weapon is a carried weapon
type Weapon struct {
	Name   string `json:"name"`
	Ranged bool   `json:"ranged,omitempty"`
	Damage string `json:"damage,omitempty"`
}

// Feature is a feat or trait record
type Feature struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ClassFeature is a class feature with the level it was obtained at
type ClassFeature struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	LevelObtained int    `json:"level_obtained"`
}

// CorruptionManifestation is one manifestation of a corruption
type CorruptionManifestation struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	IsActive   bool       `json:"is_active"`
	Corruption Corruption `json:"corruption"`
}

// Corruption is the corruption a manifestation belongs to
type Corruption struct {
	ID                 int    `json:"id"`
	Name               string `json:"name"`
	ManifestationLevel int    `json:"manifestation_level"`
}

// SkillRank is one rank purchase, stamped with the character level it was bought at
type SkillRank struct {
	SkillID int `json:"skill_id"`
	Level   int `json:"level"`
}

// FavoredClassBonus is the favored class bonus choice made at a level
type FavoredClassBonus struct {
	Level  int    `json:"level"`
	Choice string `json:"choice"`
}

// TotalLevel sums the levels of every class
func (c *RawCharacter) TotalLevel() int {
	total := 0
	for _, class := range c.Classes {
		total += class.Level
	}
	return total
}

// EffectiveAbpLevel is the level used to gate automatic bonus progression nodes
func (c *RawCharacter) EffectiveAbpLevel() int {
	return c.TotalLevel() + AbpLevelOffset
}

// AbpLevelOffset is added to the character level when gating ABP nodes
const AbpLevelOffset = 2

// HasFeat reports whether a feat carries the flag
func (c *RawCharacter) HasFeat(flag FeatureFlag) bool {
	return hasFeature(c.Feats, flag)
}

// HasTrait reports whether a trait carries the flag
func (c *RawCharacter) HasTrait(flag FeatureFlag) bool {
	return hasFeature(c.Traits, flag)
}

// ClassFeature returns the first class feature carrying the flag
func (c *RawCharacter) ClassFeature(flag FeatureFlag) (ClassFeature, bool) {
	for _, feature := range c.ClassFeatures {
		if f, ok := ParseFeatureFlag(feature.Name); ok && f == flag {
			return feature, true
		}
	}
	return ClassFeature{}, false
}

// ActiveCorruption returns the first active manifestation carrying the flag
func (c *RawCharacter) ActiveCorruption(flag FeatureFlag) (CorruptionManifestation, bool) {
	for _, m := range c.Corruptions {
		if !m.IsActive {
			continue
		}
		if f, ok := ParseFeatureFlag(m.Name); ok && f == flag {
			return m, true
		}
	}
	return CorruptionManifestation{}, false
}

// AbilityScore returns the stored base score, 10 when absent
func (c *RawCharacter) AbilityScore(ability AbilityKind) int {
	if score, ok := c.AbilityScores[ability]; ok {
		return score
	}
	return DefaultAbilityScore
}

// DefaultAbilityScore is used for abilities without a stored score
const DefaultAbilityScore = 10

func hasFeature(features []Feature, flag FeatureFlag) bool {
	for _, feature := range features {
		if f, ok := ParseFeatureFlag(feature.Name); ok && f == flag {
			return true
		}
	}
	return false
}
