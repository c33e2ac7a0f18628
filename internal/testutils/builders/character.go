// Package builders provides test data builders for creating test fixtures
package builders

import (
	"slices"
	"time"

	"github.com/KirkDiggler/pathfinder-stats/internal/entities/pathfinder"
)

// CharacterBuilder provides a fluent interface for building test RawCharacter instances
type CharacterBuilder struct {
	character *pathfinder.RawCharacter
	nextID    int
}

// NewCharacterBuilder creates a new builder with minimal defaults
func NewCharacterBuilder() *CharacterBuilder {
	return &CharacterBuilder{
		character: &pathfinder.RawCharacter{
			ID:            "char-test-123",
			PlayerID:      "player-test-123",
			Name:          "Test Character",
			AbilityScores: map[pathfinder.AbilityKind]int{},
		},
		nextID: 1,
	}
}

// WithID sets the character ID
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.character.ID = id
	return b
}

// WithPlayerID sets the player ID
func (b *CharacterBuilder) WithPlayerID(playerID string) *CharacterBuilder {
	b.character.PlayerID = playerID
	return b
}

// WithName sets the character name
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.character.Name = name
	return b
}

// WithAbilityScore sets one ability score
func (b *CharacterBuilder) WithAbilityScore(ability pathfinder.AbilityKind, score int) *CharacterBuilder {
	b.character.AbilityScores[ability] = score
	return b
}

// WithClass appends a class entry
func (b *CharacterBuilder) WithClass(class pathfinder.ClassLevel) *CharacterBuilder {
	b.character.Classes = append(b.character.Classes, class)
	return b
}

// WithAncestry sets the ancestry
func (b *CharacterBuilder) WithAncestry(name, size string, naturalArmor int) *CharacterBuilder {
	b.character.Ancestry = &pathfinder.Ancestry{Name: name, Size: size, NaturalArmor: naturalArmor}
	return b
}

// WithAbpChoices sets the chosen automatic bonus progression nodes
func (b *CharacterBuilder) WithAbpChoices(nodeIDs ...int) *CharacterBuilder {
	b.character.AbpChoices = append(b.character.AbpChoices, nodeIDs...)
	return b
}

// WithArmor equips body armor. A negative maxDex means no cap.
func (b *CharacterBuilder) WithArmor(name string, bonus, maxDex, checkPenalty int) *CharacterBuilder {
	armor := &pathfinder.Armor{Name: name, ArmorBonus: bonus, ArmorCheckPenalty: checkPenalty}
	if maxDex >= 0 {
		armor.MaxDexBonus = &maxDex
	}
	b.character.Armor = armor
	return b
}

// WithShield equips a shield
func (b *CharacterBuilder) WithShield(name string, bonus, checkPenalty int) *CharacterBuilder {
	b.character.Shield = &pathfinder.Shield{Name: name, ShieldBonus: bonus, ArmorCheckPenalty: checkPenalty}
	return b
}

// WithWeapon appends a weapon
func (b *CharacterBuilder) WithWeapon(name string, ranged bool) *CharacterBuilder {
	b.character.Weapons = append(b.character.Weapons, pathfinder.Weapon{Name: name, Ranged: ranged})
	return b
}

// WithFeat appends a feat
func (b *CharacterBuilder) WithFeat(name string) *CharacterBuilder {
	b.character.Feats = append(b.character.Feats, pathfinder.Feature{ID: b.id(), Name: name})
	return b
}

// WithTrait appends a trait
func (b *CharacterBuilder) WithTrait(name string) *CharacterBuilder {
	b.character.Traits = append(b.character.Traits, pathfinder.Feature{ID: b.id(), Name: name})
	return b
}

// WithClassFeature appends a class feature obtained at level
func (b *CharacterBuilder) WithClassFeature(name string, level int) *CharacterBuilder {
	b.character.ClassFeatures = append(b.character.ClassFeatures, pathfinder.ClassFeature{
		ID:            b.id(),
		Name:          name,
		LevelObtained: level,
	})
	return b
}

// WithCorruption appends a corruption manifestation
func (b *CharacterBuilder) WithCorruption(name string, manifestationLevel int, active bool) *CharacterBuilder {
	b.character.Corruptions = append(b.character.Corruptions, pathfinder.CorruptionManifestation{
		ID:       b.id(),
		Name:     name,
		IsActive: active,
		Corruption: pathfinder.Corruption{
			ID:                 b.id(),
			Name:               "Vampirism",
			ManifestationLevel: manifestationLevel,
		},
	})
	return b
}

// WithSkillRanks buys one rank in the skill at each of the given levels
func (b *CharacterBuilder) WithSkillRanks(skillID int, levels ...int) *CharacterBuilder {
	for _, level := range levels {
		b.character.SkillRanks = append(b.character.SkillRanks, pathfinder.SkillRank{SkillID: skillID, Level: level})
	}
	return b
}

// WithFavoredClassBonus records the favored class bonus choice at a level
func (b *CharacterBuilder) WithFavoredClassBonus(level int, choice string) *CharacterBuilder {
	b.character.FavoredClassBonuses = append(b.character.FavoredClassBonuses, pathfinder.FavoredClassBonus{
		Level:  level,
		Choice: choice,
	})
	return b
}

// WithTimestamps sets created and updated timestamps
func (b *CharacterBuilder) WithTimestamps(created, updated time.Time) *CharacterBuilder {
	b.character.CreatedAt = created
	b.character.UpdatedAt = updated
	return b
}

// Build returns an independent copy of the character
func (b *CharacterBuilder) Build() *pathfinder.RawCharacter {
	c := *b.character

	c.AbilityScores = make(map[pathfinder.AbilityKind]int, len(b.character.AbilityScores))
	for ability, score := range b.character.AbilityScores {
		c.AbilityScores[ability] = score
	}
	c.Classes = slices.Clone(c.Classes)
	c.AbpChoices = slices.Clone(c.AbpChoices)
	c.Weapons = slices.Clone(c.Weapons)
	c.Feats = slices.Clone(c.Feats)
	c.Traits = slices.Clone(c.Traits)
	c.ClassFeatures = slices.Clone(c.ClassFeatures)
	c.Corruptions = slices.Clone(c.Corruptions)
	c.SkillRanks = slices.Clone(c.SkillRanks)
	c.FavoredClassBonuses = slices.Clone(c.FavoredClassBonuses)
	if c.Ancestry != nil {
		ancestry := *c.Ancestry
		c.Ancestry = &ancestry
	}
	if c.Armor != nil {
		armor := *c.Armor
		if armor.MaxDexBonus != nil {
			maxDex := *armor.MaxDexBonus
			armor.MaxDexBonus = &maxDex
		}
		c.Armor = &armor
	}
	if c.Shield != nil {
		shield := *c.Shield
		c.Shield = &shield
	}

	return &c
}

func (b *CharacterBuilder) id() int {
	id := b.nextID
	b.nextID++
	return id
}
