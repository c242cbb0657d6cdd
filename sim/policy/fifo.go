package policy

import (
	"github.com/inference-sim/paging-sim/sim"
	"github.com/inference-sim/paging-sim/sim/trace"
)

// FIFO evicts in insertion order using a circular insertion pointer.
type FIFO struct{}

func (p *FIFO) Name() string { return NameFIFO }

type fifoState struct {
	frames *sim.FrameTable
	next   int // frame receiving the next inserted page
}

func (p *FIFO) Simulate(refs sim.ReferenceString, frameCount int, st *trace.SimulationTrace) (int, error) {
	frames, err := newFrames(frameCount)
	if err != nil {
		return 0, err
	}
	s := &fifoState{frames: frames}

	faults := 0
	for i, page := range refs {
		if s.frames.Locate(page) != sim.NotFound {
			continue
		}
		faults++
		load(s.frames, st, i, s.next, page, false)
		s.next = (s.next + 1) % frameCount
	}
	return faults, nil
}

// RunFIFO replays refs under FIFO replacement.
func RunFIFO(refs sim.ReferenceString, frameCount int) (int, error) {
	return (&FIFO{}).Simulate(refs, frameCount, nil)
}
