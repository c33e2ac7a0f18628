package refdata

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/pathfinder-stats/internal/errors"
)

// LoadYAML reads a catalog file
func LoadYAML(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read catalog %s", path)
	}

	catalog, err := ParseYAML(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "parse catalog %s", path)
	}
	return catalog, nil
}

// ParseYAML decodes a catalog document and checks its tables for duplicate ids
func ParseYAML(raw []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid catalog yaml")
	}

	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// Validate rejects tables with repeated ids
func (c *Catalog) Validate() error {
	vb := errors.NewValidationBuilder()

	checkUnique(vb, "abilities", len(c.Abilities), func(i int) int { return c.Abilities[i].ID })
	checkUnique(vb, "skills", len(c.Skills), func(i int) int { return c.Skills[i].ID })
	checkUnique(vb, "abp_node_groups", len(c.AbpNodeGroups), func(i int) int { return c.AbpNodeGroups[i].ID })
	checkUnique(vb, "abp_nodes", len(c.AbpNodes), func(i int) int { return c.AbpNodes[i].ID })
	checkUnique(vb, "abp_node_bonuses", len(c.AbpNodeBonus), func(i int) int { return c.AbpNodeBonus[i].ID })
	checkUnique(vb, "abp_bonus_types", len(c.AbpBonusTypes), func(i int) int { return c.AbpBonusTypes[i].ID })

	return vb.Build()
}

func checkUnique(vb *errors.ValidationBuilder, table string, n int, id func(int) int) {
	seen := make(map[int]struct{}, n)
	for i := 0; i < n; i++ {
		if _, dup := seen[id(i)]; dup {
			vb.Fieldf(table, "duplicate id %d", id(i))
			return
		}
		seen[id(i)] = struct{}{}
	}
}
