package geometry

import "testing"

func TestIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rectangle
		want bool
	}{
		{"touch on edge", Rect(0, 0, 1, 1), Rect(1, 0, 1, 1), false},
		{"touch on vertex", Rect(0, 0, 1, 1), Rect(1, 1, 1, 1), false},
		{"contained", Rect(0, 0, 2, 2), Rect(1, 1, 1, 1), true},
		{"disjoint", Rect(0, 0, 1, 1), Rect(2, 2, 1, 1), false},
		{"partial overlap", Rect(0, 0, 4, 4), Rect(3, 3, 4, 4), true},
		{"identical", Rect(-5, -5, 3, 7), Rect(-5, -5, 3, 7), true},
		{"cross shape", Rect(0, 2, 6, 2), Rect(2, 0, 2, 6), true},
		{"zero width inside", Rect(1, 1, 0, 2), Rect(0, 0, 4, 4), false},
		{"zero height inside", Rect(0, 0, 4, 4), Rect(1, 1, 2, 0), false},
		{"point inside", Rect(2, 2, 0, 0), Rect(0, 0, 4, 4), false},
		{"negative coordinates", Rect(-10, -10, 5, 5), Rect(-6, -6, 5, 5), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersects(tt.a, tt.b); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := Intersects(tt.b, tt.a); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v (symmetry)", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestCenteredAt(t *testing.T) {
	tests := []struct {
		name   string
		center Point
		size   Size
		want   Rectangle
	}{
		{"unit at (1,1)", Pt(1, 1), Sz(1, 1), Rect(0, 0, 1, 1)},
		{"even at origin", Pt(0, 0), Sz(6, 4), Rect(-3, -2, 6, 4)},
		{"odd at origin", Pt(0, 0), Sz(5, 5), Rect(-3, -3, 5, 5)},
		{"zero size", Pt(7, -2), Sz(0, 0), Rect(7, -2, 0, 0)},
		{"canvas center", Pt(512, 512), Sz(99, 40), Rect(462, 492, 99, 40)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CenteredAt(tt.center, tt.size); got != tt.want {
				t.Errorf("CenteredAt(%v, %v) = %v, want %v", tt.center, tt.size, got, tt.want)
			}
		})
	}
}

func TestRectangleUnion(t *testing.T) {
	got := Rect(0, 0, 2, 2).Union(Rect(-3, 1, 1, 5))
	want := Rect(-3, 0, 5, 6)
	if got != want {
		t.Errorf("Union() = %v, want %v", got, want)
	}
}

func TestBoundsOf(t *testing.T) {
	tests := []struct {
		name   string
		rs     []Rectangle
		want   Rectangle
		wantOK bool
	}{
		{"empty", nil, Rectangle{}, false},
		{"single", []Rectangle{Rect(1, 2, 3, 4)}, Rect(1, 2, 3, 4), true},
		{"spread", []Rectangle{Rect(0, 0, 2, 2), Rect(-3, 1, 1, 5), Rect(4, -1, 1, 1)}, Rect(-3, -1, 8, 7), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BoundsOf(tt.rs)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("BoundsOf() = %v, %v, want %v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRectangleCorners(t *testing.T) {
	got := Rect(1, 2, 3, 4).Corners()
	want := [4]Point{{1, 2}, {4, 2}, {4, 6}, {1, 6}}
	if got != want {
		t.Errorf("Corners() = %v, want %v", got, want)
	}
}

func TestSizeEmpty(t *testing.T) {
	tests := []struct {
		size Size
		want bool
	}{
		{Sz(1, 1), false},
		{Sz(0, 5), true},
		{Sz(5, 0), true},
		{Sz(0, 0), true},
	}
	for _, tt := range tests {
		if got := tt.size.Empty(); got != tt.want {
			t.Errorf("%v.Empty() = %v, want %v", tt.size, got, tt.want)
		}
	}
}
