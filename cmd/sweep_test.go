package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/paging-sim/sim/experiment"
)

var smallSweep = []string{"sweep", "-P", "60", "-e", "6", "-m", "20", "-t", "0.2", "--length", "3000", "--log", "error"}

func TestSweep_TextTable_OneRowPerFrameCount(t *testing.T) {
	out, err := execute(t, append(smallSweep, "--min-frames", "2", "--max-frames", "5", "--policies", "lru")...)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.True(t, strings.HasPrefix(lines[0], "Frames"))
	assert.Contains(t, lines[0], "LRU")
	for i, frames := range []string{"2", "3", "4", "5"} {
		assert.Equal(t, frames, strings.Fields(lines[i+1])[0])
	}
	// LRU obeys the inclusion property, so no anomaly line follows
	assert.Len(t, lines, 5)
}

func TestSweep_JSON(t *testing.T) {
	out, err := execute(t, append(smallSweep, "--min-frames", "1", "--max-frames", "3", "--output", "json")...)
	require.NoError(t, err)

	var res experiment.SweepResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Points, 3)
	for i, p := range res.Points {
		assert.Equal(t, i+1, p.Frames)
		assert.Equal(t, i+1, p.Metrics.Frames)
		assert.Len(t, p.Metrics.Results, 4)
	}
}

func TestSweep_BadRange_Fails(t *testing.T) {
	out, err := execute(t, append(smallSweep, "--min-frames", "6", "--max-frames", "2")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frame range")
	assert.NotContains(t, out, "Frames ")
	assert.Contains(t, out, "Usage:")
}
