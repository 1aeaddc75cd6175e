package render

import (
	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geometry"
)

// Default frame size, matching a 1024x1024 bitmap.
const (
	DefaultWidth  = 1024
	DefaultHeight = 1024
)

// MaxPixels bounds the rasterized output, width*height*scale², so a PNG
// buffer stays under 256 MiB.
const MaxPixels = 64 << 20

// CheckPixels rejects frames whose rasterized size exceeds limit pixels.
func CheckPixels(width, height int, scale float64, limit int) error {
	if px := float64(width) * float64(height) * scale * scale; px > float64(limit) {
		return errors.New(errors.ErrCodeInvalidSize,
			"output too large: %dx%d at scale %g is %.0f pixels (max %d)", width, height, scale, px, limit)
	}
	return nil
}

// Canvas maps cloud coordinates onto a frame whose middle is the cloud center.
// Rectangles outside the frame are clipped by the output format.
type Canvas struct {
	Width, Height int
	offset        geometry.Point
}

// NewCanvas returns a canvas of the given size centered on center.
func NewCanvas(center geometry.Point, width, height int) (Canvas, error) {
	if width <= 0 || height <= 0 {
		return Canvas{}, errors.New(errors.ErrCodeInvalidSize, "canvas size must be positive, got %dx%d", width, height)
	}
	if err := errors.ValidateSize(width, height); err != nil {
		return Canvas{}, err
	}
	return Canvas{
		Width:  width,
		Height: height,
		offset: geometry.Pt(width/2-center.X, height/2-center.Y),
	}, nil
}

// Map translates a cloud rectangle into canvas coordinates.
func (c Canvas) Map(r geometry.Rectangle) geometry.Rectangle {
	return geometry.Rectangle{Min: r.Min.Add(c.offset.X, c.offset.Y), Size: r.Size}
}

// Visible reports whether the mapped rectangle overlaps the frame.
func (c Canvas) Visible(r geometry.Rectangle) bool {
	frame := geometry.Rect(0, 0, c.Width, c.Height)
	return geometry.Intersects(frame, c.Map(r))
}
