// Package pkg provides the core libraries for tagcloud.
//
// # Overview
//
// Tagcloud packs rectangles into a roughly circular cloud around a fixed
// center. Each rectangle is tried at points of a growing circle until it fits
// without overlapping anything placed before it. The pkg directory is
// organized into three areas:
//
//  1. Geometry and placement: [geometry], [cloud], [generate]
//  2. Output: [layout], [render], [render/sink], [render/styles]
//  3. Infrastructure: [pipeline], [cache], [config], [server], [observability]
//
// # Architecture
//
// The typical data flow:
//
//	sizes (generated or read from a file)
//	         ↓
//	    [cloud] package (place one rectangle at a time)
//	         ↓
//	    [layout] package (serializable snapshot)
//	         ↓
//	    [render/sink] package (SVG, PNG, PDF, JSON, DOT)
//
// # Quick Start
//
//	l := cloud.New(geometry.Pt(512, 512))
//	sizes, _ := generate.Sizes(100, generate.Range{Max: geometry.Sz(99, 99)}, 42)
//	for _, s := range sizes {
//	    if _, err := l.PlaceNext(s); err != nil {
//	        return err
//	    }
//	}
//	svg, _ := sink.RenderSVG(layout.FromLayouter(l))
//
// Or through the pipeline, which adds defaults, validation and caching:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	result, _ := runner.Execute(ctx, pipeline.Options{Formats: []string{"png"}})
//
// [geometry]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/geometry
// [cloud]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/cloud
// [generate]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/generate
// [layout]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/layout
// [render]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/render/sink
// [render/styles]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/render/styles
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/config
// [server]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/server
// [observability]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/observability
package pkg
