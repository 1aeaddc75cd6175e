// Package pipeline provides the layout → render pipeline for tag clouds.
//
// This package implements the complete generate → layout → render flow used
// by the CLI and the HTTP API. By centralizing this logic, both entry points
// apply the same defaults, validation and caching.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Layout: generate rectangle sizes (or take an explicit list) and place
//     them with a [cloud.Layouter]
//  2. Render: produce output in various formats (SVG, PNG, PDF, JSON, DOT)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Count:   100,
//	    Formats: []string{"svg", "png"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	l, err := runner.GenerateLayout(ctx, opts)
//	artifacts, err := runner.Render(ctx, l, opts)
//
// [cloud.Layouter]: github.com/matzehuels/tagcloud/pkg/cloud#Layouter
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tagcloud/pkg/cache"
	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/generate"
	"github.com/matzehuels/tagcloud/pkg/geometry"
	"github.com/matzehuels/tagcloud/pkg/layout"
	"github.com/matzehuels/tagcloud/pkg/render"
	"github.com/matzehuels/tagcloud/pkg/render/styles"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultCount is the number of generated rectangles.
	DefaultCount = 100

	// DefaultMaxSide bounds generated sides: sizes fall in [0, 99].
	DefaultMaxSide = 99

	// DefaultWidth is the default frame width in pixels.
	DefaultWidth = render.DefaultWidth

	// DefaultHeight is the default frame height in pixels.
	DefaultHeight = render.DefaultHeight

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = uint64(42)

	// DefaultStyle is the default visual style.
	DefaultStyle = styles.NameSolid

	// DefaultEngine is the default SVG engine.
	DefaultEngine = EngineNative
)

// DefaultCenter places the cloud in the middle of the default frame.
var DefaultCenter = geometry.Pt(DefaultWidth/2, DefaultHeight/2)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// Engine constants select how SVG output is produced.
const (
	EngineNative   = "native"
	EngineGraphviz = "graphviz"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// ValidEngines is the set of supported SVG engines.
var ValidEngines = map[string]bool{
	EngineNative:   true,
	EngineGraphviz: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Layout options. A nil Center means DefaultCenter.
	Center    *geometry.Point `json:"center,omitempty"`
	Count     int             `json:"count,omitempty"`
	MinWidth  int             `json:"min_width,omitempty"`
	MinHeight int             `json:"min_height,omitempty"`
	MaxWidth  int             `json:"max_width,omitempty"`
	MaxHeight int             `json:"max_height,omitempty"`
	Seed      uint64          `json:"seed,omitempty"`
	MaxRadius int             `json:"max_radius,omitempty"`

	// Sizes, when set, replaces generated sizes.
	Sizes []geometry.Size `json:"sizes,omitempty"`

	// Render options
	Width      int      `json:"width,omitempty"`
	Height     int      `json:"height,omitempty"`
	Style      string   `json:"style,omitempty"`
	Formats    []string `json:"formats,omitempty"`
	Background string   `json:"background,omitempty"`
	Engine     string   `json:"engine,omitempty"`
	Scale      float64  `json:"scale,omitempty"`

	// Refresh bypasses cache reads.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the placed cloud.
	Layout layout.Layout

	// LayoutHash is the content hash of the layout, excluding its ID.
	LayoutHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RectCount  int
	Radius     int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether layout result came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !slices.Contains(styles.Names, style) {
		return errors.New(errors.ErrCodeInvalidStyle, "invalid style: %q (must be one of: %s)", style, strings.Join(styles.Names, ", "))
	}
	return nil
}

// ValidateEngine checks that an SVG engine is valid.
func ValidateEngine(engine string) error {
	if !ValidEngines[engine] {
		return errors.New(errors.ErrCodeInvalidArgument, "invalid engine: %q (must be one of: native, graphviz)", engine)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks all fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Center == nil {
		c := DefaultCenter
		o.Center = &c
	}
	if o.Count == 0 {
		o.Count = DefaultCount
	}
	if o.MaxWidth == 0 && o.MaxHeight == 0 {
		o.MaxWidth, o.MaxHeight = DefaultMaxSide, DefaultMaxSide
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if o.Count < 0 {
		return errors.New(errors.ErrCodeInvalidArgument, "count must be non-negative, got %d", o.Count)
	}
	if o.MaxRadius < 0 {
		return errors.New(errors.ErrCodeInvalidArgument, "max_radius must be non-negative, got %d", o.MaxRadius)
	}
	for i, s := range o.Sizes {
		if err := errors.ValidateSize(s.Width, s.Height); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidSize, err, "size %d", i)
		}
	}
	return o.SizeRange().Validate()
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Engine == "" {
		o.Engine = DefaultEngine
	}
	if o.Scale == 0 {
		o.Scale = 1
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidSize, "canvas size must be positive, got %dx%d", o.Width, o.Height)
	}
	if err := errors.ValidateSize(o.Width, o.Height); err != nil {
		return err
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidArgument, "scale must be positive, got %g", o.Scale)
	}
	if err := render.CheckPixels(o.Width, o.Height, o.Scale, render.MaxPixels); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateEngine(o.Engine); err != nil {
		return err
	}
	if _, _, err := styles.ParseBackground(o.Background); err != nil {
		return err
	}
	return ValidateStyle(o.Style)
}

// CenterPoint returns the cloud center, or DefaultCenter when unset.
func (o *Options) CenterPoint() geometry.Point {
	if o.Center == nil {
		return DefaultCenter
	}
	return *o.Center
}

// SizeRange returns the bounds for generated sizes.
func (o *Options) SizeRange() generate.Range {
	return generate.Range{
		Min: geometry.Sz(o.MinWidth, o.MinHeight),
		Max: geometry.Sz(o.MaxWidth, o.MaxHeight),
	}
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	c := o.CenterPoint()
	opts := cache.LayoutKeyOpts{
		CenterX:   c.X,
		CenterY:   c.Y,
		Count:     o.Count,
		MinWidth:  o.MinWidth,
		MinHeight: o.MinHeight,
		MaxWidth:  o.MaxWidth,
		MaxHeight: o.MaxHeight,
		Seed:      o.Seed,
		MaxRadius: o.MaxRadius,
	}
	if o.Sizes != nil {
		opts.SizesHash = hashSizes(o.Sizes)
		opts.Count, opts.MinWidth, opts.MinHeight, opts.MaxWidth, opts.MaxHeight, opts.Seed = 0, 0, 0, 0, 0, 0
	}
	return opts
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{
		Format:     format,
		Style:      o.Style,
		Width:      o.Width,
		Height:     o.Height,
		Background: o.Background,
	}
	switch format {
	case FormatSVG:
		opts.Engine = o.Engine
	case FormatPNG:
		opts.Scale = o.Scale
	}
	if o.Style == styles.NamePalette {
		opts.Seed = o.Seed
	}
	return opts
}
