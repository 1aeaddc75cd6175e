package sink

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/tagcloud/pkg/layout"
)

const pointsPerInch = 72.0

// RenderDOT emits an undirected Graphviz graph with one box node per
// rectangle, pinned at its canvas position. Graphviz's y axis points up, so
// y coordinates are flipped against the frame height.
func RenderDOT(l layout.Layout, opts ...Option) ([]byte, error) {
	r := newRenderer(opts...)
	f, err := r.frame(l)
	if err != nil {
		return nil, err
	}

	bg := "transparent"
	if f.hasBG {
		bg = f.bg.Hex()
	}

	var buf bytes.Buffer
	buf.WriteString("graph cloud {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  notranslate=true;\n")
	fmt.Fprintf(&buf, "  bgcolor=%q;\n", bg)
	fmt.Fprintf(&buf, "  bb=\"0,0,%d,%d\";\n", f.canvas.Width, f.canvas.Height)
	buf.WriteString("  node [shape=box, style=filled, fixedsize=true, label=\"\", margin=0];\n\n")

	for i, rect := range l.Rectangles {
		if rect.Size.Empty() {
			continue
		}
		m := f.canvas.Map(rect)
		p := r.style.Paint(i, rect)
		cx := float64(m.Min.X) + float64(m.Size.Width)/2
		cy := float64(f.canvas.Height) - (float64(m.Min.Y) + float64(m.Size.Height)/2)

		fmt.Fprintf(&buf, "  r%d [pos=\"%.1f,%.1f!\", width=%.4f, height=%.4f, fillcolor=%q",
			i, cx, cy, float64(m.Size.Width)/pointsPerInch, float64(m.Size.Height)/pointsPerInch, p.Fill.Hex())
		if p.StrokeWidth > 0 {
			fmt.Fprintf(&buf, ", color=%q, penwidth=%g", p.Stroke.Hex(), p.StrokeWidth)
		} else {
			buf.WriteString(", penwidth=0")
		}
		buf.WriteString("];\n")
	}

	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

// RenderGraphvizSVG renders the layout's DOT source to SVG with Graphviz's
// neato engine, which honors the pinned positions.
func RenderGraphvizSVG(ctx context.Context, l layout.Layout, opts ...Option) ([]byte, error) {
	dot, err := RenderDOT(l, opts...)
	if err != nil {
		return nil, err
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes(dot)
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
