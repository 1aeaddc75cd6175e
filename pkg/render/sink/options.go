package sink

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/tagcloud/pkg/layout"
	"github.com/matzehuels/tagcloud/pkg/render"
	"github.com/matzehuels/tagcloud/pkg/render/styles"
)

// Option configures an image sink.
type Option func(*renderer)

type renderer struct {
	width, height int
	style         styles.Style
	background    string
	scale         float64
}

// WithSize sets the frame size in pixels (default 1024x1024).
func WithSize(width, height int) Option {
	return func(r *renderer) { r.width, r.height = width, height }
}

// WithStyle sets the paint style (default [styles.Solid]).
func WithStyle(s styles.Style) Option {
	return func(r *renderer) {
		if s != nil {
			r.style = s
		}
	}
}

// WithBackground sets the background color. Empty means transparent.
func WithBackground(color string) Option {
	return func(r *renderer) { r.background = color }
}

// WithScale sets the PNG scale factor (default 1).
func WithScale(s float64) Option {
	return func(r *renderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

func newRenderer(opts ...Option) renderer {
	r := renderer{
		width:  render.DefaultWidth,
		height: render.DefaultHeight,
		style:  styles.Solid{},
		scale:  1,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// frame resolves the canvas and background shared by every image sink.
type frame struct {
	canvas render.Canvas
	bg     colorful.Color
	hasBG  bool
}

func (r renderer) frame(l layout.Layout) (frame, error) {
	c, err := render.NewCanvas(l.Center, r.width, r.height)
	if err != nil {
		return frame{}, err
	}
	bg, ok, err := styles.ParseBackground(r.background)
	if err != nil {
		return frame{}, err
	}
	return frame{canvas: c, bg: bg, hasBG: ok}, nil
}
