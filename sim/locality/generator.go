package locality

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/paging-sim/sim"
)

// Generate produces a reference string of the given length.
// Deterministic given the same params, length and RNG key.
//
// The locus starts at 0. Each candidate is locus + U[0, e); a candidate equal
// to the previous reference is redrawn. After every m-th accepted reference
// the locus moves: with probability t it jumps to U[0, P-e], otherwise it
// slides one position to the right, wrapping modulo P-e+1.
func Generate(params Params, length int, rng *sim.PartitionedRNG) (sim.ReferenceString, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid locality parameters: %w", err)
	}
	if length < 1 {
		return nil, fmt.Errorf("%w: reference string length must be >= 1, got %d", sim.ErrInvalidParameter, length)
	}
	params.warnOutOfRange()

	pageRNG := rng.ForSubsystem(sim.SubsystemReference)
	locusRNG := rng.ForSubsystem(sim.SubsystemLocus)

	width := int64(params.LocusWidth)
	positions := params.Positions()

	refs := make(sim.ReferenceString, 0, length)
	locus := 0
	moves, jumps, rejected := 0, 0, 0
	for len(refs) < length {
		next := locus + int(pageRNG.Int63n(width))
		if len(refs) > 0 && next == refs[len(refs)-1] {
			rejected++
			continue
		}
		refs = append(refs, next)

		if len(refs)%params.Dwell == 0 {
			moves++
			if locusRNG.Float64() < params.JumpProbability {
				locus = int(locusRNG.Int63n(int64(positions)))
				jumps++
			} else {
				locus = (locus + 1) % positions
			}
		}
	}

	logrus.Debugf("generated %d references: %d locus moves (%d jumps), %d repeats redrawn",
		len(refs), moves, jumps, rejected)
	return refs, nil
}
