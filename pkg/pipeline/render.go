package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/tagcloud/pkg/layout"
	"github.com/matzehuels/tagcloud/pkg/render/sink"
	"github.com/matzehuels/tagcloud/pkg/render/styles"
)

// Render generates output artifacts in the requested formats, without caching.
func Render(ctx context.Context, l layout.Layout, opts Options) (map[string][]byte, error) {
	style, err := styles.Parse(opts.Style, opts.Seed)
	if err != nil {
		return nil, err
	}
	sinkOpts := []sink.Option{
		sink.WithSize(opts.Width, opts.Height),
		sink.WithStyle(style),
		sink.WithBackground(opts.Background),
		sink.WithScale(opts.Scale),
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte

		switch format {
		case FormatSVG:
			if opts.Engine == EngineGraphviz {
				data, err = sink.RenderGraphvizSVG(ctx, l, sinkOpts...)
			} else {
				data, err = sink.RenderSVG(l, sinkOpts...)
			}
		case FormatPNG:
			data, err = sink.RenderPNG(l, sinkOpts...)
		case FormatPDF:
			data, err = sink.RenderPDF(ctx, l, sinkOpts...)
		case FormatJSON:
			data, err = sink.RenderJSON(l)
		case FormatDOT:
			data, err = sink.RenderDOT(l, sinkOpts...)
		default:
			err = ValidateFormat(format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
