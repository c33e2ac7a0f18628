package pathfinder

// BonusEntry is one named contribution to a derived value
type BonusEntry struct {
	Source string    `json:"source"`
	Value  int       `json:"value"`
	Type   BonusType `json:"type,omitempty"`
}

// ValueWithBreakdown is a derived statistic with the entries that produced it
type ValueWithBreakdown struct {
	Label     string       `json:"label"`
	Modifiers []BonusEntry `json:"modifiers"`
	Total     int          `json:"total"`
	Overrides *Overrides   `json:"overrides,omitempty"`
}

// Overrides records which normal rules were superseded for a value.
// Each variant is optional; nil means the rule was not overridden.
type Overrides struct {
	Ability     *AbilityOverride     `json:"ability,omitempty"`
	TrainedOnly *TrainedOnlyOverride `json:"trained_only,omitempty"`
}

// AbilityOverride records a skill using a different governing ability
type AbilityOverride struct {
	Original AbilityKind `json:"original"`
	Override AbilityKind `json:"override"`
	Source   string      `json:"source"`
}

// TrainedOnlyOverride records a change to a skill's trained-only rule
type TrainedOnlyOverride struct {
	TrainedOnly bool   `json:"trained_only"`
	Source      string `json:"source"`
}

// IsEmpty reports whether no override variant is set
func (o *Overrides) IsEmpty() bool {
	return o == nil || (o.Ability == nil && o.TrainedOnly == nil)
}

// Modifier returns the ability modifier of a score, rounding toward negative infinity
func Modifier(score int) int {
	diff := score - 10
	if diff < 0 {
		return -((-diff + 1) / 2)
	}
	return diff / 2
}
