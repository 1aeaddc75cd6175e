package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/tagcloud/pkg/layout"
)

// RenderSVG renders the layout as a standalone SVG document.
func RenderSVG(l layout.Layout, opts ...Option) ([]byte, error) {
	r := newRenderer(opts...)
	f, err := r.frame(l)
	if err != nil {
		return nil, err
	}

	w, h := f.canvas.Width, f.canvas.Height
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n", w, h, w, h)
	if f.hasBG {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", f.bg.Hex())
	}

	fmt.Fprintf(&buf, `  <g class="cloud" data-style="%s">`+"\n", r.style.Name())
	for i, rect := range l.Rectangles {
		if rect.Size.Empty() {
			continue
		}
		m := f.canvas.Map(rect)
		p := r.style.Paint(i, rect)
		fmt.Fprintf(&buf, `    <rect id="r%d" x="%d" y="%d" width="%d" height="%d" fill="%s"`,
			i, m.Min.X, m.Min.Y, m.Size.Width, m.Size.Height, p.Fill.Hex())
		if p.StrokeWidth > 0 {
			fmt.Fprintf(&buf, ` stroke="%s" stroke-width="%g"`, p.Stroke.Hex(), p.StrokeWidth)
		}
		buf.WriteString("/>\n")
	}
	buf.WriteString("  </g>\n</svg>\n")
	return buf.Bytes(), nil
}
