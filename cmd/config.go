package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/paging-sim/sim/experiment"
	"github.com/inference-sim/paging-sim/sim/locality"
	"github.com/inference-sim/paging-sim/sim/trace"
)

// RunConfig is the YAML run configuration accepted by --config.
// Pointer fields mean "not set in YAML" and leave the built-in default alone.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type RunConfig struct {
	Locality  locality.Params `yaml:"locality"`
	Frames    *int            `yaml:"frames,omitempty"`
	Length    *int            `yaml:"length,omitempty"`
	Lookahead *int            `yaml:"lookahead,omitempty"` // omitted = derive e*m
	Seed      *int64          `yaml:"seed,omitempty"`
	Policies  []string        `yaml:"policies,omitempty"`
	Parallel  bool            `yaml:"parallel"`
	Output    string          `yaml:"output,omitempty"`
	Trace     TraceSection    `yaml:"trace"`
}

// TraceSection configures fault tracing in a RunConfig.
type TraceSection struct {
	Level string `yaml:"level,omitempty"`
	Limit *int   `yaml:"limit,omitempty"` // omitted = experiment.DefaultTraceLimit
}

// LoadRunConfig reads and parses a YAML run configuration file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadRunConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run config: %w", err)
	}
	var rc RunConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&rc); err != nil {
		return nil, fmt.Errorf("parsing run config %s: %w", path, err)
	}
	return &rc, nil
}

// Apply copies every value set in the file onto cfg.
func (rc *RunConfig) Apply(cfg *experiment.Config) {
	cfg.Locality = rc.Locality
	if rc.Frames != nil {
		cfg.Frames = *rc.Frames
	}
	if rc.Length != nil {
		cfg.Length = *rc.Length
	}
	if rc.Lookahead != nil {
		cfg.Lookahead = *rc.Lookahead
	}
	if rc.Seed != nil {
		cfg.Seed = *rc.Seed
	}
	if len(rc.Policies) > 0 {
		cfg.Policies = rc.Policies
	}
	cfg.Parallel = rc.Parallel
	if rc.Trace.Level != "" {
		cfg.Trace.Level = trace.TraceLevel(rc.Trace.Level)
	}
	if rc.Trace.Limit != nil {
		cfg.Trace.Limit = *rc.Trace.Limit
	}
}
