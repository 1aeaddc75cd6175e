package sink

import "github.com/matzehuels/tagcloud/pkg/layout"

// RenderJSON serializes the layout. Empty rectangles are included.
func RenderJSON(l layout.Layout) ([]byte, error) {
	return layout.MarshalLayout(l)
}
