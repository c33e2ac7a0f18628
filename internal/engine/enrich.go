package engine

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/pathfinder-stats/internal/entities/pathfinder"
	"github.com/KirkDiggler/pathfinder-stats/internal/errors"
)

// EnrichCharacter loads the reference cache once, then resolves abilities,
// saves, attacks, armor class, maneuvers, initiative, skills, the skill point
// ledger and class features in that order
func (e *engine) EnrichCharacter(ctx context.Context, input *EnrichCharacterInput) (*EnrichCharacterOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	character := input.Character

	slog.DebugContext(ctx, "enriching character",
		"character_id", character.ID,
		"total_level", character.TotalLevel())

	cache, err := e.loadCache(ctx, character)
	if err != nil {
		return nil, err
	}

	r := &resolution{
		ctx:       ctx,
		character: character,
		cache:     cache,
		abilities: resolveAbilities(character, cache),
	}

	modifiers := make(map[pathfinder.AbilityKind]int, len(r.abilities))
	for ability := range r.abilities {
		modifiers[ability] = r.modifier(ability)
	}

	babValue := r.resolveBab()
	r.bab = babValue.Total

	armor := r.resolveArmorClasses()

	enriched := &pathfinder.EnrichedCharacter{
		RawCharacter:           *character,
		Abilities:              r.abilities,
		AbilityModifiers:       modifiers,
		Fortitude:              r.resolveSave(pathfinder.SaveFortitude),
		Reflex:                 r.resolveSave(pathfinder.SaveReflex),
		Will:                   r.resolveSave(pathfinder.SaveWill),
		Attacks:                r.resolveAttacks(babValue),
		AC:                     armor.ac,
		TouchAC:                armor.touch,
		FlatFootedAC:           armor.flatFooted,
		CMB:                    r.resolveCMB(),
		CMD:                    r.resolveCMD(),
		Initiative:             r.resolveInitiative(),
		Skills:                 r.resolveSkills(),
		SkillPoints:            r.resolveSkillPoints(),
		ProcessedClassFeatures: processClassFeatures(character.ClassFeatures),
	}

	slog.DebugContext(ctx, "enriched character",
		"character_id", character.ID,
		"ac", enriched.AC.Total,
		"bab", r.bab,
		"skills", len(enriched.Skills))

	return &EnrichCharacterOutput{Character: enriched}, nil
}
