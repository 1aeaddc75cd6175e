package sink

import (
	"context"

	"github.com/matzehuels/tagcloud/pkg/layout"
	"github.com/matzehuels/tagcloud/pkg/render"
)

// RenderPDF renders the layout as SVG and converts it with rsvg-convert.
func RenderPDF(ctx context.Context, l layout.Layout, opts ...Option) ([]byte, error) {
	svg, err := RenderSVG(l, opts...)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}
