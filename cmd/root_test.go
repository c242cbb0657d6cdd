package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/paging-sim/sim"
)

// execute runs a fresh command tree with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

var smallRun = []string{"run", "-P", "100", "-e", "5", "-m", "10", "-t", "0.1", "--length", "2000", "--log", "error"}

func TestRun_TextReport_AllPoliciesInOrder(t *testing.T) {
	// WHEN run with the four locality parameters
	out, err := execute(t, smallRun...)
	require.NoError(t, err)

	// THEN the report lists the four policies in order
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Page faults:", lines[0])
	for i, prefix := range []string{"Optimal: ", "FIFO: ", "LRU: ", "Second Chance: "} {
		assert.True(t, strings.HasPrefix(lines[i+1], prefix), "line %d = %q", i+1, lines[i+1])
	}
}

func TestRun_SameSeed_IdenticalReport(t *testing.T) {
	a, err := execute(t, append(smallRun, "--seed", "7")...)
	require.NoError(t, err)
	b, err := execute(t, append(smallRun, "--seed", "7", "--parallel")...)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestRun_JSONReport(t *testing.T) {
	out, err := execute(t, append(smallRun, "--output", "json", "--frames", "4")...)
	require.NoError(t, err)

	var m sim.Metrics
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, 4, m.Frames)
	assert.Equal(t, 2000, m.Length)
	assert.Equal(t, 50, m.Lookahead, "lookahead derives from e*m")
	assert.Len(t, m.Results, 4)
	assert.NotEmpty(t, m.RunID)
}

func TestRun_PolicySubset(t *testing.T) {
	out, err := execute(t, append(smallRun, "--policies", "lru,optimal")...)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "LRU: "))
	assert.True(t, strings.HasPrefix(lines[2], "Optimal: "))
}

func TestRun_TracingDoesNotChangeReport(t *testing.T) {
	plain, err := execute(t, smallRun...)
	require.NoError(t, err)
	traced, err := execute(t, append(smallRun, "--trace", "faults", "--trace-limit", "3")...)
	require.NoError(t, err)

	assert.Equal(t, plain, traced)
}

func TestRun_MissingLocalityFlag_Fails(t *testing.T) {
	_, err := execute(t, "run", "-P", "100", "-e", "5", "-m", "10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--jump-prob is required")
}

func TestRun_InvalidParameters_Fail(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"width above pages", []string{"run", "-P", "4", "-e", "5", "-m", "1", "-t", "0"}},
		{"zero dwell", []string{"run", "-P", "10", "-e", "5", "-m", "0", "-t", "0"}},
		{"zero frames", append(smallRun, "--frames", "0")},
		{"unknown policy", append(smallRun, "--policies", "mru")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			assert.True(t, errors.Is(err, sim.ErrInvalidParameter), "got %v", err)
			assert.NotContains(t, out, "Page faults:", "no partial report")
			assert.Contains(t, out, "Usage:")
		})
	}
}

func TestRun_UnknownOutputFormat_FailsBeforeRunning(t *testing.T) {
	out, err := execute(t, append(smallRun, "--output", "xml")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
	assert.NotContains(t, out, "Page faults:")
	assert.Contains(t, out, "Usage:")
}

func TestRun_DuplicatePolicy_Fails(t *testing.T) {
	out, err := execute(t, append(smallRun, "--policies", "fifo,fifo")...)
	assert.True(t, errors.Is(err, sim.ErrInvalidParameter), "got %v", err)
	assert.NotContains(t, out, "FIFO:")
}

func TestRun_SinglePageWindowThatSlides_Runs(t *testing.T) {
	out, err := execute(t, "run", "-P", "10", "-e", "1", "-m", "1", "-t", "0", "--length", "100", "--log", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "Page faults:")
}

func TestRun_TraceLogReportsDroppedRecords(t *testing.T) {
	// GIVEN logrus writing into a buffer
	var logs bytes.Buffer
	logrus.SetOutput(&logs)
	t.Cleanup(func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(logrus.WarnLevel)
	})

	// WHEN tracing with a limit far below the fault count
	_, err := execute(t, append(smallRun, "--policies", "fifo", "--trace", "faults", "--trace-limit", "3", "--log", "info")...)
	require.NoError(t, err)

	// THEN the summary says 3 records were kept and how many were dropped
	assert.Contains(t, logs.String(), "3 records kept")
	assert.Regexp(t, `[1-9][0-9]* dropped by the trace limit`, logs.String())
}

func TestRun_InvalidLogLevel_Fails(t *testing.T) {
	_, err := execute(t, append(smallRun, "--log", "loud")...)
	require.Error(t, err)
}

func TestRun_UnexpectedArgument_Fails(t *testing.T) {
	_, err := execute(t, append(smallRun, "extra")...)
	require.Error(t, err)
}

func TestRun_ConfigFile_FlagsOverride(t *testing.T) {
	// GIVEN a config file fixing the locality model and 5 frames
	path := filepath.Join(t.TempDir(), "run.yaml")
	yaml := `
locality:
  pages: 120
  locus_width: 6
  dwell: 15
  jump_probability: 0.05
frames: 5
length: 3000
seed: 11
output: json
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	// WHEN run with the file and an explicit --frames
	out, err := execute(t, "run", "--config", path, "--frames", "3", "--log", "error")
	require.NoError(t, err)

	// THEN file values apply except the overridden frame count
	var m sim.Metrics
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, 3, m.Frames)
	assert.Equal(t, 120, m.Pages)
	assert.Equal(t, 3000, m.Length)
	assert.Equal(t, int64(11), m.Seed)
	assert.Equal(t, 90, m.Lookahead)
}
