package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/paging-sim/sim/experiment"
	"github.com/inference-sim/paging-sim/sim/locality"
)

// TestExampleConfigs_Run verifies that examples/run.yaml loads and produces
// the built-in reference configuration.
func TestExampleConfigs_Run(t *testing.T) {
	// GIVEN the run.yaml example config
	rc, err := LoadRunConfig(filepath.Join("..", "examples", "run.yaml"))
	require.NoError(t, err, "failed to load run.yaml")

	// WHEN applied over a fresh config
	cfg := experiment.NewConfig(locality.Params{})
	rc.Apply(&cfg)

	// THEN validation passes and the derived lookahead is e*m
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1000, cfg.EffectiveLookahead())
	assert.Equal(t, experiment.DefaultFrames, cfg.Frames)
	assert.Equal(t, experiment.DefaultLength, cfg.Length)
	assert.Equal(t, "text", rc.Output)
}
