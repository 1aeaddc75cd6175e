// Package generate produces reproducible streams of rectangle sizes for
// feeding the cloud layouter.
//
// Sizes are drawn uniformly per axis between an inclusive minimum and
// maximum using a PCG generator, so the same seed always yields the same
// cloud.
//
//	sizes, err := generate.Sizes(100, generate.Range{Min: geometry.Sz(1, 1), Max: geometry.Sz(99, 99)}, 42)
package generate

import (
	"math/rand/v2"

	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geometry"
)

// Range bounds generated sizes, inclusive on both ends.
type Range struct {
	Min geometry.Size
	Max geometry.Size
}

// Validate checks that both bounds are valid sizes and Min <= Max per axis.
func (r Range) Validate() error {
	return errors.ValidateSizeRange(r.Min.Width, r.Min.Height, r.Max.Width, r.Max.Height)
}

// Sizes returns n sizes drawn from r using a generator seeded with seed.
func Sizes(n int, r Range, seed uint64) ([]geometry.Size, error) {
	if n < 0 {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "size count must be non-negative, got %d", n)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	rng := newRand(seed)
	sizes := make([]geometry.Size, n)
	for i := range sizes {
		sizes[i] = geometry.Sz(
			between(rng, r.Min.Width, r.Max.Width),
			between(rng, r.Min.Height, r.Max.Height),
		)
	}
	return sizes, nil
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}
