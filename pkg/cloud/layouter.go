package cloud

import (
	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geometry"
)

// Layouter places rectangles around a fixed center without overlaps.
type Layouter struct {
	cloud     *Cloud
	sampler   sampler
	radius    int
	maxRadius int
}

// Option configures a Layouter.
type Option func(*Layouter)

// WithMaxRadius bounds the search radius. PlaceNext fails with
// PLACEMENT_EXHAUSTED when a rectangle does not fit within it.
// Zero or a negative value leaves the search unbounded.
func WithMaxRadius(r int) Option {
	return func(l *Layouter) { l.maxRadius = max(r, 0) }
}

// New returns a layouter with an empty cloud around center.
func New(center geometry.Point, opts ...Option) *Layouter {
	l := &Layouter{
		cloud:   NewCloud(center),
		sampler: sampler{center: center},
		radius:  1,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Cloud returns the placed rectangles. The cloud is owned by the layouter.
func (l *Layouter) Cloud() *Cloud { return l.cloud }

// Center returns the fixed center point.
func (l *Layouter) Center() geometry.Point { return l.cloud.center }

// Radius returns the current search radius. It never decreases.
func (l *Layouter) Radius() int { return l.radius }

// PlaceNext places a rectangle of the given size, appends it to the cloud and
// returns it.
//
// Negative sizes fail with INVALID_ARGUMENT. With a radius bound set, a
// rectangle that does not fit fails with PLACEMENT_EXHAUSTED. On error the
// layouter is left exactly as it was.
func (l *Layouter) PlaceNext(size geometry.Size) (geometry.Rectangle, error) {
	if size.Width < 0 || size.Height < 0 {
		return geometry.Rectangle{}, errors.New(errors.ErrCodeInvalidArgument,
			"rectangle size must be non-negative, got %v", size)
	}

	if l.cloud.Len() == 0 {
		r := geometry.CenteredAt(l.cloud.center, size)
		l.cloud.add(r)
		return r, nil
	}

	cursor := l.sampler.cursor
	for r := l.radius; l.maxRadius == 0 || r <= l.maxRadius; r++ {
		points, err := l.sampler.points(r)
		if err != nil {
			l.sampler.cursor = cursor
			return geometry.Rectangle{}, errors.Wrap(errors.ErrCodeInternal, err, "sample radius %d", r)
		}
		for p := range points {
			candidate := geometry.Anchor(p, l.cloud.center, size)
			if l.cloud.Fits(candidate) {
				l.radius = r
				l.cloud.add(candidate)
				return candidate, nil
			}
		}
	}

	l.sampler.cursor = cursor
	return geometry.Rectangle{}, errors.New(errors.ErrCodePlacementExhausted,
		"no room for %v within radius %d", size, l.maxRadius)
}
