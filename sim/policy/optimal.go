package policy

import (
	"fmt"

	"github.com/inference-sim/paging-sim/sim"
	"github.com/inference-sim/paging-sim/sim/trace"
)

// Optimal approximates Belady's algorithm with a bounded horizon.
//
// On each steady-state fault it inspects at most Lookahead future references
// instead of the whole remaining string, so its fault counts are an upper
// bound on the true optimum, not the optimum itself. Victim selection:
//   - a frame whose page is not referenced within the horizon is evicted,
//     lowest frame index first;
//   - if every resident page is referenced within the horizon, the frame
//     marked last during the scan is evicted.
//
// Lookahead 0 disables the scan, so every fault replaces frame 0.
type Optimal struct {
	Lookahead int
}

func (p *Optimal) Name() string { return NameOptimal }

type optimalState struct {
	frames *sim.FrameTable
	needed []bool // frames whose page occurs within the horizon of the current fault
}

func (p *Optimal) Simulate(refs sim.ReferenceString, frameCount int, st *trace.SimulationTrace) (int, error) {
	if p.Lookahead < 0 {
		return 0, fmt.Errorf("%w: lookahead must be >= 0, got %d", sim.ErrInvalidParameter, p.Lookahead)
	}
	frames, err := newFrames(frameCount)
	if err != nil {
		return 0, err
	}
	s := &optimalState{frames: frames, needed: make([]bool, frameCount)}

	faults, cur := s.warmUp(refs, st)
	for ; cur < len(refs); cur++ {
		page := refs[cur]
		if s.frames.Locate(page) != sim.NotFound {
			continue
		}
		faults++
		load(s.frames, st, cur, s.victim(refs, cur, p.Lookahead), page, false)
	}
	return faults, nil
}

// warmUp fills frames in index order with the first distinct pages of refs.
// Each load is a fault; a reference to an already-loaded page is a hit and
// does not consume a frame. Returns the faults taken and the index of the
// first reference not consumed.
func (s *optimalState) warmUp(refs sim.ReferenceString, st *trace.SimulationTrace) (faults, cur int) {
	filled := 0
	for cur < len(refs) && filled < s.frames.Len() {
		page := refs[cur]
		if s.frames.Locate(page) == sim.NotFound {
			load(s.frames, st, cur, filled, page, true)
			filled++
			faults++
		}
		cur++
	}
	return faults, cur
}

// victim picks the frame to replace for a fault at refs[cur].
func (s *optimalState) victim(refs sim.ReferenceString, cur, lookahead int) int {
	for i := range s.needed {
		s.needed[i] = false
	}
	unmarked := len(s.needed)
	lastMarked := sim.NotFound

	for k := 1; k <= lookahead && unmarked > 0 && cur+k < len(refs); k++ {
		frame := s.frames.Locate(refs[cur+k])
		if frame == sim.NotFound {
			continue
		}
		lastMarked = frame
		if !s.needed[frame] {
			s.needed[frame] = true
			unmarked--
		}
	}

	if unmarked == 0 {
		return lastMarked
	}
	for i, needed := range s.needed {
		if !needed {
			return i
		}
	}
	return 0
}

// RunOptimal replays refs under bounded-lookahead Optimal replacement.
func RunOptimal(refs sim.ReferenceString, frameCount, lookahead int) (int, error) {
	return (&Optimal{Lookahead: lookahead}).Simulate(refs, frameCount, nil)
}
