package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/matzehuels/tagcloud/pkg/cache"
	"github.com/matzehuels/tagcloud/pkg/cloud"
	"github.com/matzehuels/tagcloud/pkg/generate"
	"github.com/matzehuels/tagcloud/pkg/geometry"
	"github.com/matzehuels/tagcloud/pkg/layout"
)

// =============================================================================
// Layout Generation
// =============================================================================

// GenerateLayout computes a layout from options, without caching.
// Explicit Sizes win over generated ones.
func GenerateLayout(ctx context.Context, opts Options) (layout.Layout, error) {
	sizes := opts.Sizes
	if sizes == nil {
		var err error
		sizes, err = generate.Sizes(opts.Count, opts.SizeRange(), opts.Seed)
		if err != nil {
			return layout.Layout{}, err
		}
	}

	l, err := LayoutFromSizes(ctx, opts.CenterPoint(), sizes, opts.MaxRadius)
	if err != nil {
		return layout.Layout{}, err
	}
	if opts.Sizes == nil {
		l.Seed = opts.Seed
	}
	return l, nil
}

// LayoutFromSizes places sizes in order around center and returns the
// resulting layout with a fresh ID. A positive maxRadius bounds the search.
// Placement stops at the first failure; the error names the failing index.
func LayoutFromSizes(ctx context.Context, center geometry.Point, sizes []geometry.Size, maxRadius int) (layout.Layout, error) {
	lay := cloud.New(center, cloud.WithMaxRadius(maxRadius))
	for i, s := range sizes {
		if err := ctx.Err(); err != nil {
			return layout.Layout{}, err
		}
		if _, err := lay.PlaceNext(s); err != nil {
			return layout.Layout{}, fmt.Errorf("place rectangle %d: %w", i, err)
		}
	}

	l := layout.FromLayouter(lay)
	l.ID = uuid.NewString()
	l.MaxRadius = maxRadius
	return l, nil
}

// LayoutHash hashes the layout content, ignoring its ID, so equal clouds
// share rendered artifacts.
func LayoutHash(l layout.Layout) (string, error) {
	l.ID = ""
	data, err := layout.MarshalLayout(l)
	if err != nil {
		return "", err
	}
	return cache.Hash(data), nil
}

func hashSizes(sizes []geometry.Size) string {
	data, _ := json.Marshal(sizes)
	return cache.Hash(data)
}
