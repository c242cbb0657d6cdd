package experiment

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/paging-sim/sim"
	"github.com/inference-sim/paging-sim/sim/locality"
	"github.com/inference-sim/paging-sim/sim/policy"
	"github.com/inference-sim/paging-sim/sim/trace"
)

// Result is the outcome of a run.
type Result struct {
	Metrics *sim.Metrics
	Traces  map[string]*trace.SimulationTrace // nil unless tracing is enabled
}

// Run generates one reference string and replays it under every policy.
func Run(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(cfg.Seed))
	refs, err := locality.Generate(cfg.Locality, cfg.Length, rng)
	if err != nil {
		return nil, err
	}
	return RunOnReferences(cfg, refs)
}

// RunOnReferences replays refs under every configured policy. refs is shared
// read-only by all policies, so cfg.Parallel changes timing, never results.
// cfg.Length is ignored; the report uses len(refs).
func RunOnReferences(cfg Config, refs sim.ReferenceString) (*Result, error) {
	if err := cfg.validateReplay(); err != nil {
		return nil, err
	}
	startTime := time.Now()

	m := sim.NewMetrics()
	m.Seed = cfg.Seed
	m.Pages = cfg.Locality.Pages
	m.LocusWidth = cfg.Locality.LocusWidth
	m.Dwell = cfg.Locality.Dwell
	m.JumpProbability = cfg.Locality.JumpProbability
	m.Length = refs.Len()
	m.Frames = cfg.Frames
	m.Lookahead = cfg.EffectiveLookahead()

	log := logrus.WithField("run", m.RunID)
	log.Infof("replaying %d references over %d frames (lookahead=%d, parallel=%v)",
		m.Length, m.Frames, m.Lookahead, cfg.Parallel)

	names := cfg.PolicyOrder()
	outcomes := make([]outcome, len(names))
	replay := func(i int) {
		outcomes[i] = replayOne(names[i], refs, cfg)
	}
	if cfg.Parallel {
		var wg sync.WaitGroup
		for i := range names {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				replay(i)
			}(i)
		}
		wg.Wait()
	} else {
		for i := range names {
			replay(i)
		}
	}

	res := &Result{Metrics: m}
	if cfg.Trace.Enabled() {
		res.Traces = make(map[string]*trace.SimulationTrace, len(names))
	}
	for i, o := range outcomes {
		if o.err != nil {
			return nil, fmt.Errorf("policy %s: %w", names[i], o.err)
		}
		m.Record(names[i], o.faults)
		if res.Traces != nil {
			res.Traces[names[i]] = o.trace
		}
		log.WithField("policy", names[i]).Debugf("%d faults in %v", o.faults, o.elapsed)
	}
	m.Finish(startTime)
	log.Infof("run complete in %.3fs", m.SimulationDurationS)
	return res, nil
}

type outcome struct {
	faults  int
	trace   *trace.SimulationTrace
	elapsed time.Duration
	err     error
}

// replayOne runs a single policy with its own frame state and trace.
func replayOne(name string, refs sim.ReferenceString, cfg Config) outcome {
	var st *trace.SimulationTrace
	if cfg.Trace.Enabled() {
		st = trace.NewSimulationTrace(cfg.Trace)
	}
	start := time.Now()
	faults, err := policy.NewPolicy(name, cfg.EffectiveLookahead()).Simulate(refs, cfg.Frames, st)
	return outcome{faults: faults, trace: st, elapsed: time.Since(start), err: err}
}
