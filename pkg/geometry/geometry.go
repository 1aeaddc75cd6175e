package geometry

import "fmt"

// Point is an integer coordinate on the plane.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point { return Point{X: p.X + dx, Y: p.Y + dy} }

// DistSq returns the squared euclidean distance between p and q.
func (p Point) DistSq(q Point) int {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Size is a rectangle extent. Both sides are expected to be non-negative.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h int) Size { return Size{Width: w, Height: h} }

// Empty reports whether the size has no area.
func (s Size) Empty() bool { return s.Width <= 0 || s.Height <= 0 }

// Area returns Width*Height.
func (s Size) Area() int { return s.Width * s.Height }

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.Width, s.Height) }

// Rectangle is an axis-aligned rectangle anchored at its low corner.
type Rectangle struct {
	Min  Point `json:"min"`
	Size Size  `json:"size"`
}

// Rect builds a rectangle from origin coordinates and a size.
func Rect(x, y, w, h int) Rectangle {
	return Rectangle{Min: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// Max returns the corner opposite Min.
func (r Rectangle) Max() Point { return r.Min.Add(r.Size.Width, r.Size.Height) }

// Corners returns the four corners in the order Min, (max.x, min.y), Max, (min.x, max.y).
func (r Rectangle) Corners() [4]Point {
	mx := r.Max()
	return [4]Point{r.Min, {mx.X, r.Min.Y}, mx, {r.Min.X, mx.Y}}
}

// Center returns the rectangle center truncated to the lattice.
func (r Rectangle) Center() Point {
	return r.Min.Add(r.Size.Width/2, r.Size.Height/2)
}

// Union returns the smallest rectangle containing both r and o.
func (r Rectangle) Union(o Rectangle) Rectangle {
	rm, om := r.Max(), o.Max()
	minX, minY := min(r.Min.X, o.Min.X), min(r.Min.Y, o.Min.Y)
	maxX, maxY := max(rm.X, om.X), max(rm.Y, om.Y)
	return Rect(minX, minY, maxX-minX, maxY-minY)
}

// BoundsOf returns the smallest rectangle enclosing all of rs. It reports
// false when rs is empty.
func BoundsOf(rs []Rectangle) (Rectangle, bool) {
	if len(rs) == 0 {
		return Rectangle{}, false
	}
	b := rs[0]
	for _, r := range rs[1:] {
		b = b.Union(r)
	}
	return b, true
}

func (r Rectangle) String() string {
	return fmt.Sprintf("%s+%s", r.Min, r.Size)
}

// Intersects reports whether a and b share a region of positive area.
// Touching edges or corners is not an intersection.
func Intersects(a, b Rectangle) bool {
	am, bm := a.Max(), b.Max()
	w := min(am.X, bm.X) - max(a.Min.X, b.Min.X)
	h := min(am.Y, bm.Y) - max(a.Min.Y, b.Min.Y)
	return w > 0 && h > 0
}

// CenteredAt returns the rectangle of size s whose center is c.
// Odd sides put the extra unit on the low side, so a 1x1 rectangle centered
// at (1,1) is anchored at (0,0).
func CenteredAt(c Point, s Size) Rectangle {
	return Rectangle{Min: c.Add(-halfUp(s.Width), -halfUp(s.Height)), Size: s}
}

// halfUp is n/2 rounded half away from zero, for n >= 0.
func halfUp(n int) int { return (n + 1) / 2 }
