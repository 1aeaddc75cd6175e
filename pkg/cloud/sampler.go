package cloud

import (
	"iter"
	"math"

	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geometry"
)

const fullTurn = 2 * math.Pi

// sampler yields lattice points on circles around center. The angular cursor
// survives between passes so consecutive radii and calls continue from where
// the previous pass stopped.
type sampler struct {
	center geometry.Point
	cursor float64 // radians in [0, 2π)
}

// points returns the samples for radius r: the center itself for r == 0,
// otherwise one full turn starting at the cursor with a step of 1/r radians.
// Repeated lattice points within a turn are yielded once.
//
// Iterating advances the cursor. Stopping early leaves it just past the last
// yielded sample.
func (s *sampler) points(r int) (iter.Seq[geometry.Point], error) {
	if r < 0 {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "negative search radius %d", r)
	}
	if r == 0 {
		return func(yield func(geometry.Point) bool) { yield(s.center) }, nil
	}

	radius := float64(r)
	step := 1 / radius
	return func(yield func(geometry.Point) bool) {
		seen := make(map[geometry.Point]struct{}, int(math.Ceil(fullTurn*radius)))
		for travelled := 0.0; travelled < fullTurn; travelled += step {
			theta := s.cursor
			s.cursor = math.Mod(theta+step, fullTurn)

			p := geometry.Pt(
				s.center.X+int(math.Round(radius*math.Cos(theta))),
				s.center.Y+int(math.Round(radius*math.Sin(theta))),
			)
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			if !yield(p) {
				return
			}
		}
	}, nil
}
