package cloud

import (
	"math"
	"slices"
	"testing"

	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geometry"
)

func TestSamplerRadiusZero(t *testing.T) {
	s := sampler{center: geometry.Pt(3, -4)}
	pts, err := s.points(0)
	if err != nil {
		t.Fatalf("points(0) error: %v", err)
	}
	got := slices.Collect(pts)
	if want := []geometry.Point{geometry.Pt(3, -4)}; !slices.Equal(got, want) {
		t.Errorf("points(0) = %v, want %v", got, want)
	}
	if s.cursor != 0 {
		t.Errorf("cursor = %v, want 0", s.cursor)
	}
}

func TestSamplerNegativeRadius(t *testing.T) {
	s := sampler{}
	if _, err := s.points(-1); !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("points(-1) error = %v, want %s", err, errors.ErrCodeInvalidArgument)
	}
}

func TestSamplerUnitCircle(t *testing.T) {
	s := sampler{center: geometry.Pt(0, 0)}
	pts, err := s.points(1)
	if err != nil {
		t.Fatalf("points(1) error: %v", err)
	}

	got := slices.Collect(pts)
	want := []geometry.Point{
		geometry.Pt(1, 0),
		geometry.Pt(1, 1),
		geometry.Pt(0, 1),
		geometry.Pt(-1, 0),
		geometry.Pt(-1, -1),
		geometry.Pt(0, -1),
	}
	if !slices.Equal(got, want) {
		t.Errorf("points(1) = %v, want %v", got, want)
	}

	// Seven unit steps, wrapped once.
	if wantCursor := 7 - 2*math.Pi; math.Abs(s.cursor-wantCursor) > 1e-9 {
		t.Errorf("cursor = %v, want %v", s.cursor, wantCursor)
	}
}

func TestSamplerPointsLieOnCircle(t *testing.T) {
	center := geometry.Pt(10, -20)
	s := sampler{center: center, cursor: 1.3}

	for _, r := range []int{1, 2, 5, 17, 60} {
		pts, err := s.points(r)
		if err != nil {
			t.Fatalf("points(%d) error: %v", r, err)
		}
		seen := map[geometry.Point]bool{}
		n := 0
		for p := range pts {
			n++
			if seen[p] {
				t.Errorf("r=%d: point %v yielded twice", r, p)
			}
			seen[p] = true
			d := math.Sqrt(float64(p.DistSq(center)))
			if math.Abs(d-float64(r)) > 1 {
				t.Errorf("r=%d: point %v at distance %.2f", r, p, d)
			}
		}
		if limit := int(math.Ceil(2 * math.Pi * float64(r))); n > limit {
			t.Errorf("r=%d: %d samples, want at most %d", r, n, limit)
		}
		if s.cursor < 0 || s.cursor >= 2*math.Pi {
			t.Errorf("r=%d: cursor %v out of [0, 2π)", r, s.cursor)
		}
	}
}

func TestSamplerEarlyStopKeepsCursor(t *testing.T) {
	s := sampler{center: geometry.Pt(0, 0)}
	pts, _ := s.points(4)
	for range pts {
		break
	}
	if want := 0.25; math.Abs(s.cursor-want) > 1e-12 {
		t.Errorf("cursor = %v, want %v", s.cursor, want)
	}

	// The next pass resumes from the cursor instead of angle zero.
	pts, _ = s.points(4)
	var first geometry.Point
	for p := range pts {
		first = p
		break
	}
	want := geometry.Pt(int(math.Round(4*math.Cos(0.25))), int(math.Round(4*math.Sin(0.25))))
	if first != want {
		t.Errorf("first point = %v, want %v", first, want)
	}
}
