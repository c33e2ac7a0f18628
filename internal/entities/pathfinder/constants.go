package pathfinder

import "strings"

// AbilityKind identifies one of the six ability scores
type AbilityKind string

// Ability kinds
const (
	AbilityStrength     AbilityKind = "strength"
	AbilityDexterity    AbilityKind = "dexterity"
	AbilityConstitution AbilityKind = "constitution"
	AbilityIntelligence AbilityKind = "intelligence"
	AbilityWisdom       AbilityKind = "wisdom"
	AbilityCharisma     AbilityKind = "charisma"
)

// AllAbilities lists the abilities in sheet order
var AllAbilities = []AbilityKind{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

var abilityAliases = map[string]AbilityKind{
	"strength":     AbilityStrength,
	"str":          AbilityStrength,
	"dexterity":    AbilityDexterity,
	"dex":          AbilityDexterity,
	"constitution": AbilityConstitution,
	"con":          AbilityConstitution,
	"intelligence": AbilityIntelligence,
	"int":          AbilityIntelligence,
	"wisdom":       AbilityWisdom,
	"wis":          AbilityWisdom,
	"charisma":     AbilityCharisma,
	"cha":          AbilityCharisma,
}

// ParseAbilityKind accepts full names and three letter abbreviations in any case
func ParseAbilityKind(name string) (AbilityKind, bool) {
	kind, ok := abilityAliases[NormalizeName(name)]
	return kind, ok
}

// Label returns the display name of the ability
func (a AbilityKind) Label() string {
	switch a {
	case AbilityStrength:
		return "Strength"
	case AbilityDexterity:
		return "Dexterity"
	case AbilityConstitution:
		return "Constitution"
	case AbilityIntelligence:
		return "Intelligence"
	case AbilityWisdom:
		return "Wisdom"
	case AbilityCharisma:
		return "Charisma"
	default:
		return string(a)
	}
}

// BonusType is the stacking category of a bonus entry.
// The empty type is untyped and always stacks.
type BonusType string

// Bonus types
const (
	BonusTypeUntyped      BonusType = ""
	BonusTypeBase         BonusType = "base"
	BonusTypeDodge        BonusType = "dodge"
	BonusTypeCircumstance BonusType = "circumstance"
	BonusTypeEnhancement  BonusType = "enhancement"
	BonusTypeArmor        BonusType = "armor"
	BonusTypeShield       BonusType = "shield"
	BonusTypeNatural      BonusType = "natural"
	BonusTypeResistance   BonusType = "resistance"
	BonusTypeDeflection   BonusType = "deflection"
	BonusTypeSize         BonusType = "size"
	BonusTypeCompetence   BonusType = "competence"
	BonusTypeMorale       BonusType = "morale"
	BonusTypeInsight      BonusType = "insight"
	BonusTypeLuck         BonusType = "luck"
	BonusTypeSacred       BonusType = "sacred"
	BonusTypeProfane      BonusType = "profane"
	BonusTypeTrait        BonusType = "trait"
	BonusTypeRacial       BonusType = "racial"
)

// AlwaysStacks reports whether bonuses of this type sum instead of taking the best
func (t BonusType) AlwaysStacks() bool {
	return t == BonusTypeUntyped || t == BonusTypeDodge || t == BonusTypeCircumstance
}

// BonusKind names an automatic bonus progression bonus type
type BonusKind string

// ABP bonus kinds
const (
	BonusKindPhysicalProwessStr BonusKind = "physical_prowess_str"
	BonusKindPhysicalProwessDex BonusKind = "physical_prowess_dex"
	BonusKindPhysicalProwessCon BonusKind = "physical_prowess_con"
	BonusKindPhysicalProwessAll BonusKind = "physical_prowess_all"
	BonusKindMentalProwessInt   BonusKind = "mental_prowess_int"
	BonusKindMentalProwessWis   BonusKind = "mental_prowess_wis"
	BonusKindMentalProwessCha   BonusKind = "mental_prowess_cha"
	BonusKindMentalProwessAll   BonusKind = "mental_prowess_all"
	BonusKindResistance         BonusKind = "resistance"
	BonusKindArmorAttunement    BonusKind = "armor_attunement"
	BonusKindShieldAttunement   BonusKind = "shield_attunement"
	BonusKindWeaponAttunement   BonusKind = "weapon_attunement"
	BonusKindToughening         BonusKind = "toughening"
	BonusKindDeflection         BonusKind = "deflection"
)

var bonusKinds = map[string]BonusKind{
	string(BonusKindPhysicalProwessStr): BonusKindPhysicalProwessStr,
	string(BonusKindPhysicalProwessDex): BonusKindPhysicalProwessDex,
	string(BonusKindPhysicalProwessCon): BonusKindPhysicalProwessCon,
	string(BonusKindPhysicalProwessAll): BonusKindPhysicalProwessAll,
	string(BonusKindMentalProwessInt):   BonusKindMentalProwessInt,
	string(BonusKindMentalProwessWis):   BonusKindMentalProwessWis,
	string(BonusKindMentalProwessCha):   BonusKindMentalProwessCha,
	string(BonusKindMentalProwessAll):   BonusKindMentalProwessAll,
	string(BonusKindResistance):         BonusKindResistance,
	string(BonusKindArmorAttunement):    BonusKindArmorAttunement,
	string(BonusKindShieldAttunement):   BonusKindShieldAttunement,
	string(BonusKindWeaponAttunement):   BonusKindWeaponAttunement,
	string(BonusKindToughening):         BonusKindToughening,
	string(BonusKindDeflection):         BonusKindDeflection,
}

// ParseBonusKind maps a catalog bonus type name to a known kind
func ParseBonusKind(name string) (BonusKind, bool) {
	kind, ok := bonusKinds[strings.ToLower(strings.TrimSpace(name))]
	return kind, ok
}

// StackingType is the bonus type used when ABP tiers of this kind are stacked.
// Tiers of the same kind replace each other, so the kind itself is the type.
func (k BonusKind) StackingType() BonusType {
	return BonusType(k)
}

// AbpKindsFor returns the specific and generic prowess kinds of an ability
func AbpKindsFor(ability AbilityKind) []BonusKind {
	switch ability {
	case AbilityStrength:
		return []BonusKind{BonusKindPhysicalProwessStr, BonusKindPhysicalProwessAll}
	case AbilityDexterity:
		return []BonusKind{BonusKindPhysicalProwessDex, BonusKindPhysicalProwessAll}
	case AbilityConstitution:
		return []BonusKind{BonusKindPhysicalProwessCon, BonusKindPhysicalProwessAll}
	case AbilityIntelligence:
		return []BonusKind{BonusKindMentalProwessInt, BonusKindMentalProwessAll}
	case AbilityWisdom:
		return []BonusKind{BonusKindMentalProwessWis, BonusKindMentalProwessAll}
	case AbilityCharisma:
		return []BonusKind{BonusKindMentalProwessCha, BonusKindMentalProwessAll}
	default:
		return nil
	}
}

// FeatureFlag identifies a feat, trait, class feature or corruption
// manifestation that changes how statistics are resolved
type FeatureFlag string

// Feature flags
const (
	FeatureUnknown                 FeatureFlag = ""
	FeaturePragmaticActivator      FeatureFlag = "pragmatic_activator"
	FeatureCleverWordplayDiplomacy FeatureFlag = "clever_wordplay_diplomacy"
	FeatureGenerallyEducated       FeatureFlag = "generally_educated"
	FeaturePerfectRecall           FeatureFlag = "perfect_recall"
	FeatureVampiricGrace           FeatureFlag = "vampiric_grace"
	FeatureAllure                  FeatureFlag = "allure"
	FeatureChildrenOfTheNight      FeatureFlag = "children_of_the_night"
	FeatureDodge                   FeatureFlag = "dodge"
	FeatureImprovedInitiative      FeatureFlag = "improved_initiative"
)

var featureNames = map[string]FeatureFlag{
	"pragmatic activator":         FeaturePragmaticActivator,
	"clever wordplay (diplomacy)": FeatureCleverWordplayDiplomacy,
	"generally educated":          FeatureGenerallyEducated,
	"perfect recall":              FeaturePerfectRecall,
	"vampiric grace":              FeatureVampiricGrace,
	"allure":                      FeatureAllure,
	"children of the night":       FeatureChildrenOfTheNight,
	"dodge":                       FeatureDodge,
	"improved initiative":         FeatureImprovedInitiative,
}

// ParseFeatureFlag maps a record name to a flag. Names that carry no rules
// effect return FeatureUnknown and false.
func ParseFeatureFlag(name string) (FeatureFlag, bool) {
	flag, ok := featureNames[NormalizeName(name)]
	if !ok {
		return FeatureUnknown, false
	}
	return flag, true
}

// SaveProgression is the base save progression of a class for one save
type SaveProgression string

// Save progressions
const (
	SaveProgressionGood SaveProgression = "good"
	SaveProgressionPoor SaveProgression = "poor"
)

// IsGood reports whether the progression uses the good save table
func (p SaveProgression) IsGood() bool {
	switch NormalizeName(string(p)) {
	case "good", "high":
		return true
	default:
		return false
	}
}

// SaveKind identifies a saving throw
type SaveKind string

// Save kinds
const (
	SaveFortitude SaveKind = "fortitude"
	SaveReflex    SaveKind = "reflex"
	SaveWill      SaveKind = "will"
)

// Ability returns the ability that modifies the save
func (s SaveKind) Ability() AbilityKind {
	switch s {
	case SaveFortitude:
		return AbilityConstitution
	case SaveReflex:
		return AbilityDexterity
	default:
		return AbilityWisdom
	}
}

// Label returns the display name of the save
func (s SaveKind) Label() string {
	switch s {
	case SaveFortitude:
		return "Fortitude"
	case SaveReflex:
		return "Reflex"
	default:
		return "Will"
	}
}

// BabProgression is the base attack bonus rate of a class
type BabProgression string

// BAB progressions
const (
	BabFull          BabProgression = "full"
	BabThreeQuarters BabProgression = "three_quarters"
	BabHalf          BabProgression = "half"
)

var babProgressions = map[string]BabProgression{
	"full":           BabFull,
	"3/4":            BabThreeQuarters,
	"three_quarters": BabThreeQuarters,
	"1/2":            BabHalf,
	"half":           BabHalf,
}

// ParseBabProgression maps a stored progression id to a known progression
func ParseBabProgression(id string) (BabProgression, bool) {
	p, ok := babProgressions[strings.ToLower(strings.TrimSpace(id))]
	return p, ok
}

// SizeCategory is a creature size
type SizeCategory string

// Size categories
const (
	SizeFine       SizeCategory = "fine"
	SizeDiminutive SizeCategory = "diminutive"
	SizeTiny       SizeCategory = "tiny"
	SizeSmall      SizeCategory = "small"
	SizeMedium     SizeCategory = "medium"
	SizeLarge      SizeCategory = "large"
	SizeHuge       SizeCategory = "huge"
	SizeGargantuan SizeCategory = "gargantuan"
	SizeColossal   SizeCategory = "colossal"
)

var sizeModifiers = map[SizeCategory]int{
	SizeFine:       8,
	SizeDiminutive: 4,
	SizeTiny:       2,
	SizeSmall:      1,
	SizeMedium:     0,
	SizeLarge:      -1,
	SizeHuge:       -2,
	SizeGargantuan: -4,
	SizeColossal:   -8,
}

// ParseSizeCategory maps a stored size name to a category
func ParseSizeCategory(name string) (SizeCategory, bool) {
	size := SizeCategory(NormalizeName(name))
	_, ok := sizeModifiers[size]
	return size, ok
}

// ACModifier returns the size modifier to armor class
func (s SizeCategory) ACModifier() int {
	return sizeModifiers[s]
}

// Skill names with special handling
const (
	SkillUseMagicDevice = "use magic device"
	SkillDiplomacy      = "diplomacy"
	SkillStealth        = "stealth"
	SkillBluff          = "bluff"
	SkillIntimidate     = "intimidate"
	SkillHandleAnimal   = "handle animal"
	SkillRide           = "ride"

	knowledgePrefix = "knowledge"
)

// IsKnowledgeSkill reports whether a skill name is one of the Knowledge skills
func IsKnowledgeSkill(name string) bool {
	return strings.HasPrefix(NormalizeName(name), knowledgePrefix)
}

// FavoredClassChoiceSkill is the favored class bonus choice granting a skill rank
const FavoredClassChoiceSkill = "skill"

// NormalizeName lowercases a name and collapses internal whitespace
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
