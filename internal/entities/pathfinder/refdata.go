package pathfinder

import "sort"

// Skill is a catalog skill
type Skill struct {
	ID                int    `json:"id" yaml:"id"`
	Name              string `json:"name" yaml:"name"`
	AbilityID         int    `json:"ability_id" yaml:"ability_id"`
	TrainedOnly       bool   `json:"trained_only" yaml:"trained_only"`
	ArmorCheckPenalty bool   `json:"armor_check_penalty" yaml:"armor_check_penalty"`
}

// ClassSkill links a class to one of its class skills
type ClassSkill struct {
	ClassID int `json:"class_id" yaml:"class_id"`
	SkillID int `json:"skill_id" yaml:"skill_id"`
}

// Ability is a catalog ability row
type Ability struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// AbpNodeGroup is a level gated tier of ABP nodes
type AbpNodeGroup struct {
	ID             int    `json:"id" yaml:"id"`
	Name           string `json:"name" yaml:"name"`
	Level          int    `json:"level" yaml:"level"`
	RequiresChoice bool   `json:"requires_choice" yaml:"requires_choice"`
}

// AbpNode is one node of a group
type AbpNode struct {
	ID      int    `json:"id" yaml:"id"`
	GroupID int    `json:"group_id" yaml:"group_id"`
	Name    string `json:"name" yaml:"name"`
}

// AbpNodeBonus is a bonus granted by a node
type AbpNodeBonus struct {
	ID          int `json:"id" yaml:"id"`
	NodeID      int `json:"node_id" yaml:"node_id"`
	BonusTypeID int `json:"bonus_type_id" yaml:"bonus_type_id"`
	Value       int `json:"value" yaml:"value"`
}

// AbpBonusType names the kind of an ABP bonus
type AbpBonusType struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// AbpCacheData is the ABP slice of the catalog a character can use,
// with bonus type names already joined
type AbpCacheData struct {
	Nodes   []AbpNode       `json:"nodes"`
	Bonuses []AbpCacheBonus `json:"bonuses"`
}

// AbpCacheBonus is a node bonus joined with its node and type names
type AbpCacheBonus struct {
	NodeID   int    `json:"node_id"`
	NodeName string `json:"node_name"`
	TypeName string `json:"type_name"`
	Value    int    `json:"value"`
}

// SelectAbpNodes returns the nodes granted automatically at the effective level
// plus the chosen nodes, deduplicated and ordered by id. Chosen ids are trusted
// and are not checked against their group's level.
func SelectAbpNodes(groups []AbpNodeGroup, nodes []AbpNode, effectiveLevel int, chosen []int) []AbpNode {
	autoGroups := make(map[int]struct{}, len(groups))
	for _, group := range groups {
		if !group.RequiresChoice && group.Level <= effectiveLevel {
			autoGroups[group.ID] = struct{}{}
		}
	}

	chosenIDs := make(map[int]struct{}, len(chosen))
	for _, id := range chosen {
		chosenIDs[id] = struct{}{}
	}

	seen := make(map[int]struct{}, len(nodes))
	selected := make([]AbpNode, 0)
	for _, node := range nodes {
		if _, dup := seen[node.ID]; dup {
			continue
		}
		_, auto := autoGroups[node.GroupID]
		_, picked := chosenIDs[node.ID]
		if !auto && !picked {
			continue
		}
		seen[node.ID] = struct{}{}
		selected = append(selected, node)
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].ID < selected[j].ID
	})
	return selected
}

// JoinAbpBonuses attaches node and type names to the bonuses of the given nodes.
// Bonuses whose type id has no catalog row keep an empty type name.
func JoinAbpBonuses(nodes []AbpNode, bonuses []AbpNodeBonus, types []AbpBonusType) []AbpCacheBonus {
	nodeNames := make(map[int]string, len(nodes))
	for _, node := range nodes {
		nodeNames[node.ID] = node.Name
	}
	typeNames := make(map[int]string, len(types))
	for _, t := range types {
		typeNames[t.ID] = t.Name
	}

	joined := make([]AbpCacheBonus, 0)
	for _, bonus := range bonuses {
		name, ok := nodeNames[bonus.NodeID]
		if !ok {
			continue
		}
		joined = append(joined, AbpCacheBonus{
			NodeID:   bonus.NodeID,
			NodeName: name,
			TypeName: typeNames[bonus.BonusTypeID],
			Value:    bonus.Value,
		})
	}

	sort.SliceStable(joined, func(i, j int) bool {
		return joined[i].NodeID < joined[j].NodeID
	})
	return joined
}
