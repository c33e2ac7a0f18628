package engine

import (
	"github.com/KirkDiggler/pathfinder-stats/internal/entities/pathfinder"
)

// StackResult is the stacked total of a bonus list and the entries shown for it
type StackResult struct {
	Total     int
	Modifiers []pathfinder.BonusEntry
}

// stackingAccumulator keeps the best bonus per type and running sums for
// the categories that always stack
type stackingAccumulator struct {
	typed        map[pathfinder.BonusType]int
	dodge        int
	circumstance int
	untyped      int
	penalties    int
}

func (a *stackingAccumulator) add(entry pathfinder.BonusEntry) {
	if entry.Value < 0 {
		a.penalties += entry.Value
		return
	}

	switch entry.Type {
	case pathfinder.BonusTypeUntyped:
		a.untyped += entry.Value
	case pathfinder.BonusTypeDodge:
		a.dodge += entry.Value
	case pathfinder.BonusTypeCircumstance:
		a.circumstance += entry.Value
	default:
		if best, ok := a.typed[entry.Type]; !ok || entry.Value > best {
			a.typed[entry.Type] = entry.Value
		}
	}
}

func (a *stackingAccumulator) total() int {
	total := a.dodge + a.circumstance + a.untyped + a.penalties
	for _, best := range a.typed {
		total += best
	}
	return total
}

// Stack applies the bonus stacking rules. Penalties always stack, untyped,
// dodge and circumstance bonuses sum, any other type only counts its best
// entry. Modifiers lists every non-zero input entry, including dominated ones.
func Stack(bonuses []pathfinder.BonusEntry) StackResult {
	acc := &stackingAccumulator{typed: make(map[pathfinder.BonusType]int)}
	modifiers := make([]pathfinder.BonusEntry, 0, len(bonuses))

	for _, entry := range bonuses {
		acc.add(entry)
		if entry.Value != 0 {
			modifiers = append(modifiers, entry)
		}
	}

	return StackResult{
		Total:     acc.total(),
		Modifiers: modifiers,
	}
}

// breakdown stacks entries into a labelled value
func breakdown(label string, entries []pathfinder.BonusEntry) pathfinder.ValueWithBreakdown {
	result := Stack(entries)
	return pathfinder.ValueWithBreakdown{
		Label:     label,
		Modifiers: result.Modifiers,
		Total:     result.Total,
	}
}
