package crop

import (
	"fmt"
	"image"
	"math/rand/v2"
)

// Strategy computes the crop offset for a target size inside a scaled image.
type Strategy interface {
	// Offset returns the top-left corner of the width x height window to keep.
	// Coordinates are relative to img.Bounds().Min.
	Offset(img image.Image, width, height int) (image.Point, error)
}

// Rand is the random source used by the Balanced strategy.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// Option configures a strategy created by New.
type Option func(*options)

type options struct {
	rand Rand
}

// WithRand sets the random source for Balanced.
func WithRand(r Rand) Option {
	return func(o *options) {
		o.rand = r
	}
}

// WithSeed makes Balanced deterministic by seeding a private PCG source.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rand = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// New returns the strategy for m. Options that do not apply to m are ignored.
func New(m Method, opts ...Option) (Strategy, error) {
	o := options{rand: globalRand{}}
	for _, opt := range opts {
		opt(&o)
	}

	switch m {
	case Center:
		return CenterStrategy{}, nil
	case Balanced:
		return &BalancedStrategy{rand: o.rand}, nil
	case Entropy:
		return EntropyStrategy{}, nil
	}
	return nil, fmt.Errorf("unsupported crop method %d", int(m))
}

// globalRand draws from the process-wide math/rand/v2 generator, which is
// safe for concurrent use.
type globalRand struct{}

func (globalRand) IntN(n int) int {
	return rand.IntN(n)
}

// clampOffset keeps a crop start inside [0, size-target].
func clampOffset(v, size, target int) int {
	if v > size-target {
		v = size - target
	}
	if v < 0 {
		v = 0
	}
	return v
}
