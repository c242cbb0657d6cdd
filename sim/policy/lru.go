package policy

import (
	"github.com/inference-sim/paging-sim/sim"
	"github.com/inference-sim/paging-sim/sim/trace"
)

// LRU evicts the frame whose page was referenced least recently.
type LRU struct{}

func (p *LRU) Name() string { return NameLRU }

type lruState struct {
	frames   *sim.FrameTable
	lastUsed []int // reference index of each frame's last access; -1 while empty
}

func (p *LRU) Simulate(refs sim.ReferenceString, frameCount int, st *trace.SimulationTrace) (int, error) {
	frames, err := newFrames(frameCount)
	if err != nil {
		return 0, err
	}
	s := &lruState{frames: frames, lastUsed: make([]int, frameCount)}
	for i := range s.lastUsed {
		s.lastUsed[i] = -1
	}

	faults := 0
	for i, page := range refs {
		if frame := s.frames.Locate(page); frame != sim.NotFound {
			s.lastUsed[frame] = i
			continue
		}
		faults++
		victim := s.leastRecent()
		load(s.frames, st, i, victim, page, false)
		s.lastUsed[victim] = i
	}
	return faults, nil
}

// leastRecent returns the frame with the smallest last-used index,
// the lowest frame index among ties.
func (s *lruState) leastRecent() int {
	victim := 0
	for j := 1; j < len(s.lastUsed); j++ {
		if s.lastUsed[j] < s.lastUsed[victim] {
			victim = j
		}
	}
	return victim
}

// RunLRU replays refs under LRU replacement.
func RunLRU(refs sim.ReferenceString, frameCount int) (int, error) {
	return (&LRU{}).Simulate(refs, frameCount, nil)
}
