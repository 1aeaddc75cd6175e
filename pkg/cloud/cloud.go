package cloud

import (
	"iter"
	"slices"

	"github.com/matzehuels/tagcloud/pkg/geometry"
)

// Cloud is the ordered set of placed rectangles around a fixed center.
// Rectangles never overlap and are kept in placement order.
type Cloud struct {
	center geometry.Point
	rects  []geometry.Rectangle
}

// NewCloud returns an empty cloud around center.
func NewCloud(center geometry.Point) *Cloud {
	return &Cloud{center: center}
}

// Center returns the point the cloud grows around.
func (c *Cloud) Center() geometry.Point { return c.center }

// Len returns the number of placed rectangles.
func (c *Cloud) Len() int { return len(c.rects) }

// Rectangles returns a copy of the placed rectangles in placement order.
func (c *Cloud) Rectangles() []geometry.Rectangle { return slices.Clone(c.rects) }

// All iterates over the placed rectangles in placement order.
func (c *Cloud) All() iter.Seq2[int, geometry.Rectangle] {
	return func(yield func(int, geometry.Rectangle) bool) {
		for i, r := range c.rects {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Bounds returns the smallest rectangle enclosing every placed rectangle.
// It reports false for an empty cloud.
func (c *Cloud) Bounds() (geometry.Rectangle, bool) {
	return geometry.BoundsOf(c.rects)
}

// Fits reports whether r intersects none of the placed rectangles.
func (c *Cloud) Fits(r geometry.Rectangle) bool {
	for _, placed := range c.rects {
		if geometry.Intersects(r, placed) {
			return false
		}
	}
	return true
}

func (c *Cloud) add(r geometry.Rectangle) {
	c.rects = append(c.rects, r)
}
