package geometry

// Quadrant partitions the plane around a center point.
type Quadrant uint8

// Quadrants, counter-clockwise from upper-right.
const (
	Q1 Quadrant = iota + 1 // x > cx, y > cy
	Q2                     // x <= cx, y > cy
	Q3                     // x <= cx, y <= cy
	Q4                     // x > cx, y <= cy
)

var quadrantNames = [...]string{Q1: "Q1", Q2: "Q2", Q3: "Q3", Q4: "Q4"}

func (q Quadrant) String() string {
	if q < Q1 || q > Q4 {
		return "Quadrant(?)"
	}
	return quadrantNames[q]
}

// QuadrantOf classifies p relative to center. Every point maps to exactly one
// quadrant; ties on either axis resolve to the non-positive side, so center
// itself is Q3.
func QuadrantOf(p, center Point) Quadrant {
	if p.X > center.X {
		if p.Y > center.Y {
			return Q1
		}
		return Q4
	}
	if p.Y > center.Y {
		return Q2
	}
	return Q3
}

// Shift returns the origin of a rectangle of size s whose corner nearest the
// center is p, given that p lies in quadrant q.
//
//	Q1: (p.x,     p.y)
//	Q2: (p.x - w, p.y)
//	Q3: (p.x - w, p.y - h)
//	Q4: (p.x,     p.y - h)
func Shift(p Point, s Size, q Quadrant) Point {
	switch q {
	case Q1:
		return p
	case Q2:
		return p.Add(-s.Width, 0)
	case Q3:
		return p.Add(-s.Width, -s.Height)
	case Q4:
		return p.Add(0, -s.Height)
	}
	panic("geometry: invalid quadrant " + q.String())
}

// Anchor builds the candidate rectangle of size s that touches p with its
// corner nearest center.
func Anchor(p, center Point, s Size) Rectangle {
	return Rectangle{Min: Shift(p, s, QuadrantOf(p, center)), Size: s}
}
