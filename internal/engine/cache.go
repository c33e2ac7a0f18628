package engine

import (
	"context"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/pathfinder-stats/internal/entities/pathfinder"
)

// CharacterCache is the reference data one enrichment pass needs.
// It is built per call and never shared between characters.
type CharacterCache struct {
	Abp           *pathfinder.AbpCacheData
	ClassSkillIDs map[int]struct{}
	Skills        []pathfinder.Skill
	Abilities     map[int]pathfinder.Ability
}

// IsClassSkill reports whether any of the character's classes lists the skill
func (c *CharacterCache) IsClassSkill(skillID int) bool {
	_, ok := c.ClassSkillIDs[skillID]
	return ok
}

// loadCache fetches the ABP slice, class skills and skills in parallel, then
// the abilities those skills reference. The first fetch error is returned as is.
func (e *engine) loadCache(ctx context.Context, character *pathfinder.RawCharacter) (*CharacterCache, error) {
	var (
		abp         *pathfinder.AbpCacheData
		classSkills []pathfinder.ClassSkill
		skills      []pathfinder.Skill
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		abp, err = e.refData.GetAbpCacheData(gctx, character.EffectiveAbpLevel(), character.AbpChoices)
		return err
	})
	g.Go(func() error {
		var err error
		classSkills, err = e.refData.GetAllClassSkills(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		skills, err = e.refData.GetAllSkills(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	abilities, err := e.loadAbilities(ctx, skills)
	if err != nil {
		return nil, err
	}

	if abp == nil {
		abp = &pathfinder.AbpCacheData{}
	}
	warnUnknownAbpTypes(ctx, abp.Bonuses)

	sort.SliceStable(skills, func(i, j int) bool {
		return skills[i].ID < skills[j].ID
	})

	cache := &CharacterCache{
		Abp:           abp,
		ClassSkillIDs: classSkillIDs(character, classSkills),
		Skills:        skills,
		Abilities:     abilities,
	}

	slog.DebugContext(ctx, "loaded character cache",
		"character_id", character.ID,
		"abp_nodes", len(abp.Nodes),
		"abp_bonuses", len(abp.Bonuses),
		"class_skills", len(cache.ClassSkillIDs),
		"skills", len(skills))

	return cache, nil
}

func (e *engine) loadAbilities(ctx context.Context, skills []pathfinder.Skill) (map[int]pathfinder.Ability, error) {
	ids := make([]int, 0)
	seen := make(map[int]struct{})
	for _, skill := range skills {
		if _, ok := seen[skill.AbilityID]; ok {
			continue
		}
		seen[skill.AbilityID] = struct{}{}
		ids = append(ids, skill.AbilityID)
	}

	found := make([]*pathfinder.Ability, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			ability, err := e.refData.GetAbilityByID(gctx, id)
			if err != nil {
				return err
			}
			found[i] = ability
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	abilities := make(map[int]pathfinder.Ability, len(ids))
	for i, ability := range found {
		if ability == nil {
			slog.DebugContext(ctx, "skill ability not in catalog", "ability_id", ids[i])
			continue
		}
		abilities[ids[i]] = *ability
	}
	return abilities, nil
}

func classSkillIDs(character *pathfinder.RawCharacter, relations []pathfinder.ClassSkill) map[int]struct{} {
	classes := make(map[int]struct{}, len(character.Classes))
	for _, class := range character.Classes {
		classes[class.ClassID] = struct{}{}
	}

	ids := make(map[int]struct{})
	for _, rel := range relations {
		if _, ok := classes[rel.ClassID]; ok {
			ids[rel.SkillID] = struct{}{}
		}
	}
	return ids
}

func warnUnknownAbpTypes(ctx context.Context, bonuses []pathfinder.AbpCacheBonus) {
	warned := make(map[string]struct{})
	for _, bonus := range bonuses {
		if _, ok := pathfinder.ParseBonusKind(bonus.TypeName); ok {
			continue
		}
		if _, done := warned[bonus.TypeName]; done {
			continue
		}
		warned[bonus.TypeName] = struct{}{}
		slog.WarnContext(ctx, "unknown abp bonus type",
			"type_name", bonus.TypeName,
			"node_id", bonus.NodeID,
			"node_name", bonus.NodeName)
	}
}
