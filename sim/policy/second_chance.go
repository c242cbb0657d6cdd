package policy

import (
	"github.com/inference-sim/paging-sim/sim"
	"github.com/inference-sim/paging-sim/sim/trace"
)

// SecondChance is the clock algorithm: a hit sets the frame's reference bit,
// and on a fault the hand clears set bits until it finds a clear one.
type SecondChance struct{}

func (p *SecondChance) Name() string { return NameSecondChance }

type clockState struct {
	frames     *sim.FrameTable
	referenced []bool
	hand       int
}

func (p *SecondChance) Simulate(refs sim.ReferenceString, frameCount int, st *trace.SimulationTrace) (int, error) {
	frames, err := newFrames(frameCount)
	if err != nil {
		return 0, err
	}
	s := &clockState{frames: frames, referenced: make([]bool, frameCount)}

	faults := 0
	for i, page := range refs {
		if frame := s.frames.Locate(page); frame != sim.NotFound {
			s.referenced[frame] = true
			continue
		}
		faults++
		victim := s.sweep()
		load(s.frames, st, i, victim, page, false)
		s.referenced[victim] = true
		s.advance()
	}
	return faults, nil
}

// sweep clears reference bits under the hand until it rests on a clear one.
// Terminates within one revolution: every bit passed over is cleared.
func (s *clockState) sweep() int {
	for s.referenced[s.hand] {
		s.referenced[s.hand] = false
		s.advance()
	}
	return s.hand
}

func (s *clockState) advance() {
	s.hand = (s.hand + 1) % len(s.referenced)
}

// RunSecondChance replays refs under Second Chance (clock) replacement.
func RunSecondChance(refs sim.ReferenceString, frameCount int) (int, error) {
	return (&SecondChance{}).Simulate(refs, frameCount, nil)
}
