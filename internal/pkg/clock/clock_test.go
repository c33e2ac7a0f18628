package clock_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pathfinder-stats/internal/pkg/clock"
)

func TestNowIsUTC(t *testing.T) {
	before := time.Now().Add(-time.Second)
	now := clock.New().Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.True(t, now.After(before))
}

func TestNowSurvivesJSON(t *testing.T) {
	now := clock.New().Now()

	data, err := json.Marshal(now)
	require.NoError(t, err)

	var decoded time.Time
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, now.Equal(decoded))
}
