// Package experiment drives a full run: one reference string generated from
// the locality model, replayed independently by every configured policy.
package experiment

import (
	"fmt"

	"github.com/inference-sim/paging-sim/sim"
	"github.com/inference-sim/paging-sim/sim/locality"
	"github.com/inference-sim/paging-sim/sim/policy"
	"github.com/inference-sim/paging-sim/sim/trace"
)

const (
	// DefaultFrames is the reference frame count.
	DefaultFrames = 7
	// DefaultLength is the reference trace length.
	DefaultLength = 1_000_000
	// DeriveLookahead asks for the e*m horizon derived from the locality model.
	DeriveLookahead = -1
	// DefaultTraceLimit caps stored fault records per policy when tracing.
	DefaultTraceLimit = 20
)

// Config describes a single run.
type Config struct {
	Locality  locality.Params
	Length    int
	Frames    int
	Lookahead int // DeriveLookahead or an explicit horizon >= 0
	Seed      int64
	Policies  []string // empty = policy.DefaultPolicies
	Parallel  bool     // replay each policy in its own goroutine
	Trace     trace.TraceConfig
}

// NewConfig returns the reference configuration for the given locality model.
func NewConfig(params locality.Params) Config {
	return Config{
		Locality:  params,
		Length:    DefaultLength,
		Frames:    DefaultFrames,
		Lookahead: DeriveLookahead,
		Seed:      42,
		Trace:     trace.TraceConfig{Limit: DefaultTraceLimit},
	}
}

// Validate checks every run parameter before any generation begins.
func (c Config) Validate() error {
	if err := c.Locality.Validate(); err != nil {
		return err
	}
	if c.Length < 1 {
		return fmt.Errorf("%w: length must be >= 1, got %d", sim.ErrInvalidParameter, c.Length)
	}
	return c.validateReplay()
}

// validateReplay checks the parameters that apply when replaying an existing
// reference string. The locality model only matters for a derived lookahead.
func (c Config) validateReplay() error {
	if c.Frames < 1 {
		return fmt.Errorf("%w: frames must be >= 1, got %d", sim.ErrInvalidParameter, c.Frames)
	}
	if c.Lookahead < DeriveLookahead {
		return fmt.Errorf("%w: lookahead must be >= 0 or %d to derive e*m, got %d",
			sim.ErrInvalidParameter, DeriveLookahead, c.Lookahead)
	}
	if c.Lookahead == DeriveLookahead {
		if err := c.Locality.Validate(); err != nil {
			return fmt.Errorf("deriving lookahead: %w", err)
		}
	}
	seen := make(map[string]bool, len(c.Policies))
	for _, name := range c.Policies {
		if !policy.IsValidPolicy(name) {
			return fmt.Errorf("%w: unknown policy %q; valid: %v", sim.ErrInvalidParameter, name, policy.PolicyNames())
		}
		if seen[name] {
			return fmt.Errorf("%w: policy %q listed more than once", sim.ErrInvalidParameter, name)
		}
		seen[name] = true
	}
	if !trace.IsValidTraceLevel(string(c.Trace.Level)) {
		return fmt.Errorf("%w: unknown trace level %q; valid: none, faults", sim.ErrInvalidParameter, c.Trace.Level)
	}
	if c.Trace.Limit < 0 {
		return fmt.Errorf("%w: trace limit must be >= 0, got %d", sim.ErrInvalidParameter, c.Trace.Limit)
	}
	return nil
}

// EffectiveLookahead returns the Optimal horizon for this run. The e*m
// derivation is a tunable default, not a property of the algorithm.
func (c Config) EffectiveLookahead() int {
	if c.Lookahead >= 0 {
		return c.Lookahead
	}
	return c.Locality.DefaultLookahead()
}

// PolicyOrder returns the policies to run in reporting order.
func (c Config) PolicyOrder() []string {
	if len(c.Policies) == 0 {
		return policy.DefaultPolicies
	}
	return c.Policies
}
