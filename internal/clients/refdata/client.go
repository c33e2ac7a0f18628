// Package refdata is the read-only reference data catalog consumed by the engine
package refdata

//go:generate mockgen -destination=mock/mock_client.go -package=refdatamock github.com/KirkDiggler/pathfinder-stats/internal/clients/refdata Client

import (
	"context"

	"github.com/KirkDiggler/pathfinder-stats/internal/entities/pathfinder"
)

// Client defines the reference data lookups the engine needs
type Client interface {
	// GetAllSkills returns every catalog skill
	GetAllSkills(ctx context.Context) ([]pathfinder.Skill, error)

	// GetAllClassSkills returns every class to skill relation
	GetAllClassSkills(ctx context.Context) ([]pathfinder.ClassSkill, error)

	// GetAbilityByID returns the ability row, or nil without error when absent
	GetAbilityByID(ctx context.Context, id int) (*pathfinder.Ability, error)

	// GetAllAbpNodes returns every ABP node
	GetAllAbpNodes(ctx context.Context) ([]pathfinder.AbpNode, error)

	// GetAllAbpNodeGroups returns every ABP node group
	GetAllAbpNodeGroups(ctx context.Context) ([]pathfinder.AbpNodeGroup, error)

	// GetAllAbpNodeBonuses returns every ABP node bonus
	GetAllAbpNodeBonuses(ctx context.Context) ([]pathfinder.AbpNodeBonus, error)

	// GetAllAbpBonusTypes returns every ABP bonus type
	GetAllAbpBonusTypes(ctx context.Context) ([]pathfinder.AbpBonusType, error)

	// GetAbpCacheData returns the nodes available at the effective level plus
	// the chosen nodes, with their bonuses joined to type names
	GetAbpCacheData(ctx context.Context, effectiveLevel int, chosenNodeIDs []int) (*pathfinder.AbpCacheData, error)
}

// Catalog is a complete set of reference tables
type Catalog struct {
	Abilities     []pathfinder.Ability      `json:"abilities" yaml:"abilities"`
	Skills        []pathfinder.Skill        `json:"skills" yaml:"skills"`
	ClassSkills   []pathfinder.ClassSkill   `json:"class_skills" yaml:"class_skills"`
	AbpNodeGroups []pathfinder.AbpNodeGroup `json:"abp_node_groups" yaml:"abp_node_groups"`
	AbpNodes      []pathfinder.AbpNode      `json:"abp_nodes" yaml:"abp_nodes"`
	AbpNodeBonus  []pathfinder.AbpNodeBonus `json:"abp_node_bonuses" yaml:"abp_node_bonuses"`
	AbpBonusTypes []pathfinder.AbpBonusType `json:"abp_bonus_types" yaml:"abp_bonus_types"`
}

// AbpCacheData selects and joins ABP rows the same way for every implementation
func (c *Catalog) AbpCacheData(effectiveLevel int, chosenNodeIDs []int) *pathfinder.AbpCacheData {
	nodes := pathfinder.SelectAbpNodes(c.AbpNodeGroups, c.AbpNodes, effectiveLevel, chosenNodeIDs)
	return &pathfinder.AbpCacheData{
		Nodes:   nodes,
		Bonuses: pathfinder.JoinAbpBonuses(nodes, c.AbpNodeBonus, c.AbpBonusTypes),
	}
}
