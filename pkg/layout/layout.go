package layout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/tagcloud/pkg/cloud"
	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geometry"
)

// Layout is the serialized form of a tag cloud.
type Layout struct {
	ID         string               `json:"id,omitempty" bson:"id,omitempty"`
	Center     geometry.Point       `json:"center" bson:"center"`
	Radius     int                  `json:"radius" bson:"radius"`
	Rectangles []geometry.Rectangle `json:"rectangles" bson:"rectangles"`

	// Generation parameters, kept so a layout can be reproduced.
	Seed      uint64 `json:"seed,omitempty" bson:"seed,omitempty"`
	MaxRadius int    `json:"max_radius,omitempty" bson:"max_radius,omitempty"`
}

// FromLayouter snapshots the layouter's cloud.
func FromLayouter(l *cloud.Layouter) Layout {
	return Layout{
		Center:     l.Center(),
		Radius:     l.Radius(),
		Rectangles: l.Cloud().Rectangles(),
	}
}

// Bounds returns the bounding box of all rectangles, or a zero-size rectangle
// at the center when the layout is empty.
func (l Layout) Bounds() geometry.Rectangle {
	if b, ok := geometry.BoundsOf(l.Rectangles); ok {
		return b
	}
	return geometry.Rectangle{Min: l.Center}
}

// Validate checks the cloud invariants: non-negative sizes and no two
// rectangles overlapping.
func (l Layout) Validate() error {
	for i, r := range l.Rectangles {
		if r.Size.Width < 0 || r.Size.Height < 0 {
			return errors.New(errors.ErrCodeInvalidSize, "rectangle %d has negative size %v", i, r.Size)
		}
	}
	for i := range l.Rectangles {
		for j := i + 1; j < len(l.Rectangles); j++ {
			if geometry.Intersects(l.Rectangles[i], l.Rectangles[j]) {
				return errors.New(errors.ErrCodeInvalidArgument, "rectangles %d and %d overlap", i, j)
			}
		}
	}
	return nil
}

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	if l.Rectangles == nil {
		l.Rectangles = []geometry.Rectangle{}
	}
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout and validates it.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// WriteLayout encodes l as indented JSON to w.
func WriteLayout(l Layout, w io.Writer) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}
	return nil
}

// ReadLayout decodes and validates a Layout from r. It does not close r.
func ReadLayout(r io.Reader) (Layout, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Layout{}, fmt.Errorf("read layout: %w", err)
	}
	return UnmarshalLayout(data)
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}
