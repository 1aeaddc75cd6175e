// Package styles defines how tag cloud rectangles are painted.
package styles

import (
	"math/rand/v2"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geometry"
)

// Style names accepted by [Parse].
const (
	NameSolid   = "solid"
	NamePalette = "palette"
)

// Names lists the available styles.
var Names = []string{NameSolid, NamePalette}

// Paint describes how a single rectangle is drawn.
type Paint struct {
	Fill        colorful.Color
	Stroke      colorful.Color
	StrokeWidth float64 // zero disables the outline
}

// Style chooses the paint for each rectangle in placement order.
type Style interface {
	Name() string
	Paint(index int, r geometry.Rectangle) Paint
}

// DarkRed is the fill used by [Solid].
var DarkRed = colorful.Color{R: 139.0 / 255, G: 0, B: 0}

// Solid paints every rectangle dark red without an outline.
type Solid struct{}

func (Solid) Name() string { return NameSolid }

func (Solid) Paint(int, geometry.Rectangle) Paint { return Paint{Fill: DarkRed} }

// Palette gives each rectangle its own hue, stepping around the color wheel
// by the golden angle from a seeded starting hue.
type Palette struct {
	base float64
}

const goldenAngle = 137.50776405003785

// NewPalette returns a palette whose starting hue is derived from seed.
func NewPalette(seed uint64) Palette {
	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
	return Palette{base: rng.Float64() * 360}
}

func (Palette) Name() string { return NamePalette }

func (p Palette) Paint(index int, _ geometry.Rectangle) Paint {
	h := hue(p.base + float64(index)*goldenAngle)
	return Paint{
		Fill:        colorful.Hsv(h, 0.55, 0.9),
		Stroke:      colorful.Hsv(h, 0.7, 0.45),
		StrokeWidth: 1,
	}
}

func hue(h float64) float64 {
	for h >= 360 {
		h -= 360
	}
	return h
}

// Parse returns the style with the given name. The seed only affects palette.
func Parse(name string, seed uint64) (Style, error) {
	switch name {
	case NameSolid:
		return Solid{}, nil
	case NamePalette:
		return NewPalette(seed), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidStyle, "invalid style: %q (must be one of: %s)", name, strings.Join(Names, ", "))
}

var namedColors = map[string]string{
	"white":   "#ffffff",
	"black":   "#000000",
	"darkred": "#8b0000",
}

// ParseBackground parses a "#rrggbb", "#rgb" or named color. An empty string
// or "transparent" yields ok == false.
func ParseBackground(s string) (c colorful.Color, ok bool, err error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "transparent" || s == "none" {
		return colorful.Color{}, false, nil
	}
	if hex, found := namedColors[s]; found {
		s = hex
	}
	c, err = colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, false, errors.Wrap(errors.ErrCodeInvalidArgument, err, "invalid background color %q", s)
	}
	return c, true, nil
}
