package sink

import (
	"bytes"
	"fmt"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/tagcloud/pkg/layout"
	"github.com/matzehuels/tagcloud/pkg/render"
)

// RenderPNG rasterizes the layout. Without a background the image is transparent.
func RenderPNG(l layout.Layout, opts ...Option) ([]byte, error) {
	r := newRenderer(opts...)
	f, err := r.frame(l)
	if err != nil {
		return nil, err
	}

	if err := render.CheckPixels(f.canvas.Width, f.canvas.Height, r.scale, render.MaxPixels); err != nil {
		return nil, err
	}
	w := int(math.Round(float64(f.canvas.Width) * r.scale))
	h := int(math.Round(float64(f.canvas.Height) * r.scale))
	dc := gg.NewContext(w, h)
	dc.Scale(r.scale, r.scale)

	if f.hasBG {
		dc.SetColor(f.bg)
		dc.Clear()
	}

	for i, rect := range l.Rectangles {
		if rect.Size.Empty() || !f.canvas.Visible(rect) {
			continue
		}
		m := f.canvas.Map(rect)
		p := r.style.Paint(i, rect)

		dc.DrawRectangle(float64(m.Min.X), float64(m.Min.Y), float64(m.Size.Width), float64(m.Size.Height))
		dc.SetColor(p.Fill)
		if p.StrokeWidth > 0 {
			dc.FillPreserve()
			dc.SetColor(p.Stroke)
			dc.SetLineWidth(p.StrokeWidth)
			dc.Stroke()
		} else {
			dc.Fill()
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
