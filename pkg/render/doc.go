// Package render turns tag cloud layouts into images.
//
// # Overview
//
// Rendering is split into three parts:
//
//   - Canvas mapping: [Canvas] places the cloud center at the middle of a
//     fixed-size frame, so rectangles keep their relative positions.
//   - Styles (in [styles] subpackage): how each rectangle is painted.
//   - Sinks (in [sink] subpackage): output formats (SVG, PNG, PDF, JSON, DOT).
//
// # Format Conversion
//
// [ToPDF] converts any SVG using the external rsvg-convert tool (from
// librsvg). PNG output does not need it; the sink rasterizes natively.
//
//	svg, _ := sink.RenderSVG(l, sink.WithSize(1024, 1024))
//	pdf, err := render.ToPDF(ctx, svg)
//
// [styles]: github.com/matzehuels/tagcloud/pkg/render/styles
// [sink]: github.com/matzehuels/tagcloud/pkg/render/sink
package render
