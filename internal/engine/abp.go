package engine

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/pathfinder-stats/internal/entities/pathfinder"
	"github.com/KirkDiggler/pathfinder-stats/internal/errors"
)

// AbpBonusFromCache stacks the cached ABP bonuses of one kind
func AbpBonusFromCache(cache *CharacterCache, kind pathfinder.BonusKind) int {
	if cache == nil || cache.Abp == nil {
		return 0
	}
	return stackAbp(cache.Abp.Bonuses, kind).Total
}

// ResolveAbpBonus fetches the ABP catalogs and stacks the bonuses of one kind
func (e *engine) ResolveAbpBonus(ctx context.Context, input *ResolveAbpBonusInput) (*ResolveAbpBonusOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	var (
		nodes   []pathfinder.AbpNode
		groups  []pathfinder.AbpNodeGroup
		bonuses []pathfinder.AbpNodeBonus
		types   []pathfinder.AbpBonusType
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		nodes, err = e.refData.GetAllAbpNodes(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		groups, err = e.refData.GetAllAbpNodeGroups(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		bonuses, err = e.refData.GetAllAbpNodeBonuses(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		types, err = e.refData.GetAllAbpBonusTypes(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	selected := pathfinder.SelectAbpNodes(groups, nodes, input.Character.EffectiveAbpLevel(), input.Character.AbpChoices)
	joined := pathfinder.JoinAbpBonuses(selected, bonuses, types)
	warnUnknownAbpTypes(ctx, joined)

	result := stackAbp(joined, input.Kind)
	return &ResolveAbpBonusOutput{
		Total:     result.Total,
		Modifiers: result.Modifiers,
	}, nil
}

// stackAbp stacks every bonus named for the kind. Tiers of a kind share one
// stacking type so only the best tier counts.
func stackAbp(bonuses []pathfinder.AbpCacheBonus, kind pathfinder.BonusKind) StackResult {
	entries := make([]pathfinder.BonusEntry, 0)
	for _, bonus := range bonuses {
		if !strings.EqualFold(strings.TrimSpace(bonus.TypeName), string(kind)) {
			continue
		}
		entries = append(entries, pathfinder.BonusEntry{
			Source: bonus.NodeName,
			Value:  bonus.Value,
			Type:   kind.StackingType(),
		})
	}
	return Stack(entries)
}
