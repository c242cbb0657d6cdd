// Package locality generates synthetic page reference strings from a
// working-set locality model: references are drawn from a sliding window
// (the locus) that occasionally jumps to a random position.
package locality

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/paging-sim/sim"
)

// Params configures the locality model.
type Params struct {
	Pages           int     `yaml:"pages"`            // P: page identifiers are drawn from [0, P)
	LocusWidth      int     `yaml:"locus_width"`      // e: window [locus, locus+e)
	Dwell           int     `yaml:"dwell"`            // m: references between locus moves
	JumpProbability float64 `yaml:"jump_probability"` // t: chance a move is a random jump instead of a slide
}

// Validate checks the generator preconditions.
// Every failure wraps sim.ErrInvalidParameter.
func (p Params) Validate() error {
	if p.Pages < 1 {
		return fmt.Errorf("%w: pages (P) must be >= 1, got %d", sim.ErrInvalidParameter, p.Pages)
	}
	if p.LocusWidth <= 0 || p.LocusWidth > p.Pages {
		return fmt.Errorf("%w: locus width (e) must be in (0, %d], got %d", sim.ErrInvalidParameter, p.Pages, p.LocusWidth)
	}
	if p.Dwell <= 0 {
		return fmt.Errorf("%w: dwell (m) must be >= 1, got %d", sim.ErrInvalidParameter, p.Dwell)
	}
	if p.LocusWidth == 1 && !p.singlePageTerminates() {
		return fmt.Errorf("%w: locus width (e) of 1 needs dwell (m) 1, jump probability (t) <= 0 and pages (P) >= 2 "+
			"so consecutive references can differ", sim.ErrInvalidParameter)
	}
	return nil
}

// singlePageTerminates reports whether a one-page window can still produce a
// reference string. Its only candidate equals the previous reference unless
// the locus moved to a new position in between, which is guaranteed only when
// it slides after every reference over at least two positions. A jump may
// land on the current position and stall generation forever.
func (p Params) singlePageTerminates() bool {
	return p.Dwell == 1 && p.JumpProbability <= 0 && p.Positions() >= 2
}

// Positions returns the number of valid locus positions, P-e+1.
func (p Params) Positions() int {
	return p.Pages - p.LocusWidth + 1
}

// DefaultLookahead is the Optimal policy horizon derived from the model:
// one full dwell period over the whole window, e*m.
func (p Params) DefaultLookahead() int {
	return p.LocusWidth * p.Dwell
}

// warnOutOfRange logs when t falls outside [0, 1]. Such values are accepted:
// the jump coin then always (t >= 1) or never (t <= 0) comes up jump.
func (p Params) warnOutOfRange() {
	switch {
	case p.JumpProbability > 1:
		logrus.Warnf("jump probability %v above 1; locus will always jump", p.JumpProbability)
	case p.JumpProbability < 0:
		logrus.Warnf("jump probability %v below 0; locus will never jump", p.JumpProbability)
	}
}
