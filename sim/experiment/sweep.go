package experiment

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/paging-sim/sim"
	"github.com/inference-sim/paging-sim/sim/locality"
)

// SweepPoint is the result of one frame count in a sweep.
type SweepPoint struct {
	Frames  int          `json:"frames"`
	Metrics *sim.Metrics `json:"metrics"`
}

// Anomaly records a frame count at which a policy faulted more than it did
// with one frame fewer (Belady's anomaly).
type Anomaly struct {
	Policy     string `json:"policy"`
	Frames     int    `json:"frames"`
	Faults     int    `json:"faults"`
	PrevFaults int    `json:"prev_faults"`
}

// SweepResult holds a frame-count sweep over a single reference string.
type SweepResult struct {
	Points    []SweepPoint `json:"points"`
	Anomalies []Anomaly    `json:"anomalies"`
}

// Sweep generates one reference string and replays it for every frame count
// in [minFrames, maxFrames]. cfg.Frames is ignored.
func Sweep(cfg Config, minFrames, maxFrames int) (*SweepResult, error) {
	if minFrames < 1 || maxFrames < minFrames {
		return nil, fmt.Errorf("%w: frame range must satisfy 1 <= min <= max, got [%d, %d]",
			sim.ErrInvalidParameter, minFrames, maxFrames)
	}
	cfg.Frames = minFrames
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	refs, err := locality.Generate(cfg.Locality, cfg.Length, sim.NewPartitionedRNG(sim.NewSimulationKey(cfg.Seed)))
	if err != nil {
		return nil, err
	}
	return SweepReferences(cfg, refs, minFrames, maxFrames)
}

// SweepReferences replays refs for every frame count in [minFrames, maxFrames].
func SweepReferences(cfg Config, refs sim.ReferenceString, minFrames, maxFrames int) (*SweepResult, error) {
	if minFrames < 1 || maxFrames < minFrames {
		return nil, fmt.Errorf("%w: frame range must satisfy 1 <= min <= max, got [%d, %d]",
			sim.ErrInvalidParameter, minFrames, maxFrames)
	}
	cfg.Trace.Level = ""

	names := cfg.PolicyOrder()
	result := &SweepResult{}
	prev := make(map[string]int, len(names))
	for frames := minFrames; frames <= maxFrames; frames++ {
		cfg.Frames = frames
		res, err := RunOnReferences(cfg, refs)
		if err != nil {
			return nil, err
		}
		result.Points = append(result.Points, SweepPoint{Frames: frames, Metrics: res.Metrics})

		for _, name := range names {
			faults, _ := res.Metrics.Faults(name)
			if before, ok := prev[name]; ok && faults > before {
				logrus.Warnf("Belady's anomaly: %s faults rose from %d to %d going from %d to %d frames",
					name, before, faults, frames-1, frames)
				result.Anomalies = append(result.Anomalies, Anomaly{
					Policy: name, Frames: frames, Faults: faults, PrevFaults: before,
				})
			}
			prev[name] = faults
		}
	}
	return result, nil
}
