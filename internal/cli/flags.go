package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geometry"
	"github.com/matzehuels/tagcloud/pkg/layout"
	"github.com/matzehuels/tagcloud/pkg/pipeline"
)

// parsePoint parses "x,y" into a point.
func parsePoint(s string) (geometry.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return geometry.Point{}, errors.New(errors.ErrCodeInvalidArgument, "point %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return geometry.Point{}, errors.Wrap(errors.ErrCodeInvalidArgument, err, "point %q", s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return geometry.Point{}, errors.Wrap(errors.ErrCodeInvalidArgument, err, "point %q", s)
	}
	return geometry.Pt(x, y), nil
}

// parseSize parses "WxH" into a validated size.
func parseSize(s string) (geometry.Size, error) {
	size, err := layout.ParseSize(s)
	if err != nil {
		return geometry.Size{}, err
	}
	if err := errors.ValidateSize(size.Width, size.Height); err != nil {
		return geometry.Size{}, err
	}
	return size, nil
}

// parseFormats splits a comma-separated format list.
func parseFormats(s string) []string {
	if s == "" {
		return nil
	}
	var formats []string
	for f := range strings.SplitSeq(s, ",") {
		if f = strings.TrimSpace(strings.ToLower(f)); f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}

// layoutFlags are the flags shared by commands that place a cloud.
type layoutFlags struct {
	count     int
	center    string
	minSize   string
	maxSize   string
	seed      uint64
	maxRadius int
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.count, "count", "n", 0, "number of rectangles to generate")
	cmd.Flags().StringVar(&f.center, "center", "", "cloud center as x,y")
	cmd.Flags().StringVar(&f.minSize, "min-size", "", "smallest generated size as WxH")
	cmd.Flags().StringVar(&f.maxSize, "max-size", "", "largest generated size as WxH")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "random seed for generated sizes")
	cmd.Flags().IntVar(&f.maxRadius, "max-radius", 0, "give up beyond this search radius (0: unbounded)")
}

// apply overlays changed flags onto opts.
func (f *layoutFlags) apply(cmd *cobra.Command, opts *pipeline.Options) error {
	flags := cmd.Flags()
	if flags.Changed("count") {
		opts.Count = f.count
	}
	if flags.Changed("center") {
		p, err := parsePoint(f.center)
		if err != nil {
			return err
		}
		opts.Center = &p
	}
	if flags.Changed("min-size") {
		s, err := parseSize(f.minSize)
		if err != nil {
			return err
		}
		opts.MinWidth, opts.MinHeight = s.Width, s.Height
	}
	if flags.Changed("max-size") {
		s, err := parseSize(f.maxSize)
		if err != nil {
			return err
		}
		opts.MaxWidth, opts.MaxHeight = s.Width, s.Height
	}
	if flags.Changed("seed") {
		opts.Seed = f.seed
	}
	if flags.Changed("max-radius") {
		opts.MaxRadius = f.maxRadius
	}
	return nil
}

// renderFlags are the flags shared by commands that produce artifacts.
type renderFlags struct {
	formats    string
	width      int
	height     int
	style      string
	background string
	engine     string
	scale      float64
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output formats: svg,png,pdf,json,dot")
	cmd.Flags().IntVar(&f.width, "width", 0, "frame width in pixels")
	cmd.Flags().IntVar(&f.height, "height", 0, "frame height in pixels")
	cmd.Flags().StringVar(&f.style, "style", "", "visual style: solid, palette")
	cmd.Flags().StringVar(&f.background, "background", "", "background color (name or #hex)")
	cmd.Flags().StringVar(&f.engine, "engine", "", "SVG engine: native, graphviz")
	cmd.Flags().Float64Var(&f.scale, "scale", 0, "PNG pixel scale factor")
}

func (f *renderFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	flags := cmd.Flags()
	if flags.Changed("format") {
		opts.Formats = parseFormats(f.formats)
	}
	if flags.Changed("width") {
		opts.Width = f.width
	}
	if flags.Changed("height") {
		opts.Height = f.height
	}
	if flags.Changed("style") {
		opts.Style = f.style
	}
	if flags.Changed("background") {
		opts.Background = f.background
	}
	if flags.Changed("engine") {
		opts.Engine = f.engine
	}
	if flags.Changed("scale") {
		opts.Scale = f.scale
	}
}

// outputPath joins an output base with a format extension.
func outputPath(base, format string) string {
	return fmt.Sprintf("%s.%s", base, format)
}
