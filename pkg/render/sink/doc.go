// Package sink writes tag cloud layouts in various output formats.
//
// # Formats
//
//   - SVG: one <rect> per rectangle, painted by a [styles.Style]
//   - PNG: native rasterization with fogleman/gg
//   - PDF: SVG converted by rsvg-convert
//   - JSON: the serialized layout
//   - DOT: Graphviz source with every rectangle pinned in place
//
// All image sinks share the same [Option] set and map the cloud center to
// the middle of the frame (see [render.Canvas]).
//
//	svg, err := sink.RenderSVG(l, sink.WithSize(1024, 1024), sink.WithStyle(styles.Solid{}))
//
// Empty rectangles are kept in JSON output but never drawn.
//
// [styles.Style]: github.com/matzehuels/tagcloud/pkg/render/styles#Style
// [render.Canvas]: github.com/matzehuels/tagcloud/pkg/render#Canvas
package sink
