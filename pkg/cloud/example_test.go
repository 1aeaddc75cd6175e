package cloud_test

import (
	"fmt"

	"github.com/matzehuels/tagcloud/pkg/cloud"
	"github.com/matzehuels/tagcloud/pkg/geometry"
)

func ExampleLayouter_PlaceNext() {
	l := cloud.New(geometry.Pt(0, 0))

	// The first rectangle is centered on the center point.
	first, _ := l.PlaceNext(geometry.Sz(5, 5))
	fmt.Println(first)

	// Later rectangles hug the cloud from the outside.
	second, _ := l.PlaceNext(geometry.Sz(1, 1))
	fmt.Println(second)
	fmt.Println(l.Cloud().Len(), "rectangles")
	// Output:
	// (-3,-3)+5x5
	// (2,1)+1x1
	// 2 rectangles
}

func ExampleWithMaxRadius() {
	l := cloud.New(geometry.Pt(0, 0), cloud.WithMaxRadius(2))
	_, _ = l.PlaceNext(geometry.Sz(10, 10))

	_, err := l.PlaceNext(geometry.Sz(10, 10))
	fmt.Println(err)
	// Output:
	// PLACEMENT_EXHAUSTED: no room for 10x10 within radius 2
}
