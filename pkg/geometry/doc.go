// Package geometry provides the integer plane primitives used by the cloud
// layouter.
//
// # Coordinates
//
// All values live on the integer lattice. A [Rectangle] is anchored at its
// low corner ([Rectangle.Min]) and extends in +x and +y by its [Size]. The
// y-axis grows "upward" in the naming used here ([Q1] is upper-right); the
// renderers flip it as needed.
//
// # Overlap
//
// [Intersects] only reports overlaps with strictly positive area. Rectangles
// that share an edge or a corner do not intersect, and degenerate rectangles
// (zero width or height) never intersect anything.
//
// # Quadrants and corner shift
//
// [QuadrantOf] classifies every lattice point relative to a center into
// exactly one of four quadrants, with points on the axes (and the center
// itself) falling to the non-positive side. [Shift] turns a sampled point into
// the origin of a rectangle whose corner nearest the center is that point, so
// the rectangle body always grows away from the center.
package geometry
