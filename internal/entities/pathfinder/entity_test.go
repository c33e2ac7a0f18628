package pathfinder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/pathfinder-stats/internal/entities/pathfinder"
)

func TestEnrichedCharacterEntity(t *testing.T) {
	c := &pathfinder.EnrichedCharacter{
		RawCharacter: pathfinder.RawCharacter{ID: "char_1"},
	}

	assert.Equal(t, "char_1", c.GetID())
	assert.Equal(t, pathfinder.EntityTypeCharacter, c.GetType())
}

func TestModifier(t *testing.T) {
	cases := map[int]int{
		1:  -5,
		7:  -2,
		8:  -1,
		9:  -1,
		10: 0,
		11: 0,
		12: 1,
		18: 4,
		19: 4,
	}
	for score, want := range cases {
		assert.Equal(t, want, pathfinder.Modifier(score), "score %d", score)
	}
}

func TestParseAbilityKind(t *testing.T) {
	tests := []struct {
		in   string
		want pathfinder.AbilityKind
		ok   bool
	}{
		{"Strength", pathfinder.AbilityStrength, true},
		{"DEX", pathfinder.AbilityDexterity, true},
		{" int ", pathfinder.AbilityIntelligence, true},
		{"charisma", pathfinder.AbilityCharisma, true},
		{"luck", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := pathfinder.ParseAbilityKind(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFeatureFlag(t *testing.T) {
	flag, ok := pathfinder.ParseFeatureFlag("Clever  Wordplay (Diplomacy)")
	assert.True(t, ok)
	assert.Equal(t, pathfinder.FeatureCleverWordplayDiplomacy, flag)

	flag, ok = pathfinder.ParseFeatureFlag("Power Attack")
	assert.False(t, ok)
	assert.Equal(t, pathfinder.FeatureUnknown, flag)
}

func TestParseBabProgression(t *testing.T) {
	for in, want := range map[string]pathfinder.BabProgression{
		"full":           pathfinder.BabFull,
		"3/4":            pathfinder.BabThreeQuarters,
		"three_quarters": pathfinder.BabThreeQuarters,
		"1/2":            pathfinder.BabHalf,
		"HALF":           pathfinder.BabHalf,
	} {
		got, ok := pathfinder.ParseBabProgression(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := pathfinder.ParseBabProgression("2/3")
	assert.False(t, ok)
}

func TestSizeCategoryACModifier(t *testing.T) {
	size, ok := pathfinder.ParseSizeCategory("Small")
	assert.True(t, ok)
	assert.Equal(t, 1, size.ACModifier())

	size, ok = pathfinder.ParseSizeCategory("colossal")
	assert.True(t, ok)
	assert.Equal(t, -8, size.ACModifier())

	_, ok = pathfinder.ParseSizeCategory("enormous")
	assert.False(t, ok)
}

func TestSelectAbpNodes(t *testing.T) {
	groups := []pathfinder.AbpNodeGroup{
		{ID: 1, Level: 3},
		{ID: 2, Level: 8},
		{ID: 3, Level: 4, RequiresChoice: true},
	}
	nodes := []pathfinder.AbpNode{
		{ID: 10, GroupID: 1, Name: "Resistance +1"},
		{ID: 20, GroupID: 2, Name: "Resistance +2"},
		{ID: 30, GroupID: 3, Name: "Prowess +2"},
		{ID: 31, GroupID: 3, Name: "Deflection +1"},
	}

	t.Run("auto nodes gated by level", func(t *testing.T) {
		got := pathfinder.SelectAbpNodes(groups, nodes, 5, nil)
		assert.Equal(t, []pathfinder.AbpNode{nodes[0]}, got)
	})

	t.Run("chosen nodes ignore level gates", func(t *testing.T) {
		got := pathfinder.SelectAbpNodes(groups, nodes, 3, []int{31, 31})
		assert.Equal(t, []pathfinder.AbpNode{nodes[0], nodes[3]}, got)
	})

	t.Run("choice groups are not auto granted", func(t *testing.T) {
		got := pathfinder.SelectAbpNodes(groups, nodes, 20, nil)
		assert.Equal(t, []pathfinder.AbpNode{nodes[0], nodes[1]}, got)
	})
}
