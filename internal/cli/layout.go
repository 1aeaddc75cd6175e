package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/layout"
)

type layoutOpts struct {
	output  string
	sizes   string
	noCache bool
	refresh bool
	layout  layoutFlags
}

// layoutCommand creates the layout command, which places a cloud and writes
// its JSON form without rendering.
func (c *CLI) layoutCommand() *cobra.Command {
	var opts layoutOpts

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Place a cloud and write it as JSON",
		Example: `  tagcloud layout -n 50 > cloud.json
  tagcloud layout --sizes words.txt -o words.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.sizes, "sizes", "", "file of WxH sizes to place instead of generated ones")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even when cached")
	opts.layout.register(cmd)

	return cmd
}

func (c *CLI) runLayout(cmd *cobra.Command, opts layoutOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	popts, err := c.pipelineOptions(cmd, opts.sizes, &opts.layout, nil)
	if err != nil {
		return err
	}
	popts.Refresh = opts.refresh
	popts.Logger = logger

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	l, hit, err := runner.GenerateLayoutWithCacheInfo(ctx, popts)
	if err != nil {
		return err
	}
	prog.done("placed cloud", "rects", len(l.Rectangles), "radius", l.Radius)

	if opts.output == "" {
		return layout.WriteLayout(l, cmd.OutOrStdout())
	}
	if err := errors.ValidateOutputPath(opts.output); err != nil {
		return err
	}
	if err := layout.WriteLayoutFile(l, opts.output); err != nil {
		return err
	}
	printSuccess("Cloud %s", l.ID)
	printStats(len(l.Rectangles), l.Radius, hit)
	printFile(opts.output)
	return nil
}

// drawOpts holds the flags of the draw command.
type drawOpts struct {
	output  string
	noCache bool
	refresh bool
	render  renderFlags
}

// drawCommand creates the draw command, which renders a previously saved
// layout file.
func (c *CLI) drawCommand() *cobra.Command {
	var opts drawOpts

	cmd := &cobra.Command{
		Use:   "draw <layout.json>",
		Short: "Render a saved layout",
		Example: `  tagcloud draw cloud.json -f png --scale 2
  tagcloud draw cloud.json -f svg --engine graphviz`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDraw(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "cloud", "output path without extension")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even when cached")
	opts.render.register(cmd)

	return cmd
}

func (c *CLI) runDraw(cmd *cobra.Command, path string, opts drawOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if err := errors.ValidateOutputPath(opts.output); err != nil {
		return err
	}
	l, err := layout.ReadLayoutFile(path)
	if err != nil {
		return err
	}

	popts := c.cfg.PipelineOptions()
	opts.render.apply(cmd, &popts)
	popts.Refresh = opts.refresh
	popts.Logger = logger
	popts.SetRenderDefaults()
	if err := popts.ValidateForRender(); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	artifacts, hit, err := runner.RenderWithCacheInfo(ctx, l, popts)
	if err != nil {
		return err
	}
	prog.done("rendered cloud", "rects", len(l.Rectangles), "formats", popts.Formats)

	printSuccess("Cloud %s", l.ID)
	printStats(len(l.Rectangles), l.Radius, hit)
	for _, format := range popts.Formats {
		out := outputPath(opts.output, format)
		if err := os.WriteFile(out, artifacts[format], 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write %s", out)
		}
		printFile(out)
	}
	return nil
}
