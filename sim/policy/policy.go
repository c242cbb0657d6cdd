// Package policy implements page-replacement simulators. Each Simulate call
// owns a fresh frame table plus whatever auxiliary state its policy needs, so
// runs over the same reference string never share mutable state.
package policy

import (
	"fmt"
	"sort"

	"github.com/inference-sim/paging-sim/sim"
	"github.com/inference-sim/paging-sim/sim/trace"
)

// Policy replays a reference string against frameCount frames and returns
// the number of page faults. A nil trace disables fault recording.
// frameCount < 1 returns an error wrapping sim.ErrInvalidParameter.
type Policy interface {
	Name() string
	Simulate(refs sim.ReferenceString, frameCount int, st *trace.SimulationTrace) (int, error)
}

// Policy names.
const (
	NameOptimal      = "optimal"
	NameFIFO         = "fifo"
	NameLRU          = "lru"
	NameSecondChance = "second-chance"
)

// ValidPolicies is the set of recognized policy names.
// Shared by IsValidPolicy() and NewPolicy() to avoid duplication.
var ValidPolicies = map[string]bool{NameOptimal: true, NameFIFO: true, NameLRU: true, NameSecondChance: true}

// DefaultPolicies is the reporting order used when no policies are configured.
var DefaultPolicies = []string{NameOptimal, NameFIFO, NameLRU, NameSecondChance}

// IsValidPolicy returns true if name is a recognized policy.
func IsValidPolicy(name string) bool {
	return ValidPolicies[name]
}

// PolicyNames returns the recognized policy names, sorted.
func PolicyNames() []string {
	names := make([]string, 0, len(ValidPolicies))
	for name := range ValidPolicies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewPolicy creates a policy by name. lookahead is only used by optimal.
// Panics on unrecognized names; callers validate with IsValidPolicy first.
func NewPolicy(name string, lookahead int) Policy {
	switch name {
	case NameOptimal:
		return &Optimal{Lookahead: lookahead}
	case NameFIFO:
		return &FIFO{}
	case NameLRU:
		return &LRU{}
	case NameSecondChance:
		return &SecondChance{}
	default:
		panic(fmt.Sprintf("unknown replacement policy %q; valid policies: %v", name, PolicyNames()))
	}
}

func newFrames(frameCount int) (*sim.FrameTable, error) {
	frames, err := sim.NewFrameTable(frameCount)
	if err != nil {
		return nil, fmt.Errorf("invalid frame count: %w", err)
	}
	return frames, nil
}

// load places page into frame, counting the fault on st when tracing.
func load(frames *sim.FrameTable, st *trace.SimulationTrace, idx, frame, page int, warmUp bool) {
	evicted := frames.Load(frame, page)
	if st != nil {
		st.RecordFault(trace.FaultRecord{Index: idx, Page: page, Frame: frame, Evicted: evicted, WarmUp: warmUp})
	}
}
