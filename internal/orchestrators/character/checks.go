package character

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/pathfinder-stats/internal/entities/pathfinder"
	"github.com/KirkDiggler/pathfinder-stats/internal/errors"
)

// Check names accepted by RollCheck besides "skill:<id>"
const (
	CheckFortitude  = "fortitude"
	CheckReflex     = "reflex"
	CheckWill       = "will"
	CheckInitiative = "initiative"
	CheckCMB        = "cmb"
	CheckMelee      = "melee"
	CheckRanged     = "ranged"

	skillCheckPrefix = "skill:"
)

// selectCheck returns the breakdown a check rolls against
func selectCheck(character *pathfinder.EnrichedCharacter, check string) (*pathfinder.ValueWithBreakdown, error) {
	name := strings.ToLower(strings.TrimSpace(check))

	if rest, ok := strings.CutPrefix(name, skillCheckPrefix); ok {
		id, err := strconv.Atoi(rest)
		if err != nil {
			return nil, errors.InvalidArgumentf("invalid skill check: %s", check)
		}
		skill, ok := character.Skill(id)
		if !ok {
			return nil, errors.NotFoundf("skill %d not found", id)
		}
		return &skill, nil
	}

	var value pathfinder.ValueWithBreakdown
	switch name {
	case CheckFortitude:
		value = character.Save(pathfinder.SaveFortitude)
	case CheckReflex:
		value = character.Save(pathfinder.SaveReflex)
	case CheckWill:
		value = character.Save(pathfinder.SaveWill)
	case CheckInitiative:
		value = character.Initiative
	case CheckCMB:
		value = character.CMB
	case CheckMelee:
		value = character.Attacks.Melee
	case CheckRanged:
		value = character.Attacks.Ranged
	default:
		return nil, errors.InvalidArgumentf("unknown check: %s", check)
	}
	return &value, nil
}
