package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/layout"
	"github.com/matzehuels/tagcloud/pkg/pipeline"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	output  string
	sizes   string
	noCache bool
	refresh bool
	layout  layoutFlags
	render  renderFlags
}

// renderCommand creates the render command, which places a cloud and
// writes one file per requested format.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Place a cloud and render it to files",
		Long: `Place a cloud of rectangles and render it.

Sizes are generated from --seed unless --sizes names a file with one WxH
pair per line. Each format is written to <output>.<format>.`,
		Example: `  tagcloud render
  tagcloud render -n 300 --max-size 60x20 -f svg,png --style palette
  tagcloud render --sizes words.txt -o words -f pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "cloud", "output path without extension")
	cmd.Flags().StringVar(&opts.sizes, "sizes", "", "file of WxH sizes to place instead of generated ones")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even when cached")
	opts.layout.register(cmd)
	opts.render.register(cmd)

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, opts renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if err := errors.ValidateOutputPath(opts.output); err != nil {
		return err
	}

	popts, err := c.pipelineOptions(cmd, opts.sizes, &opts.layout, &opts.render)
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

	spinner := newSpinner(ctx, "Placing rectangles...")
	spinner.Start()
	prog := newProgress(logger)
	result, err := runner.Execute(ctx, popts)
	spinner.Stop()
	if err != nil {
		return err
	}
	prog.done("rendered cloud", "rects", result.Stats.RectCount, "formats", popts.Formats)

	printSuccess("Cloud %s", result.Layout.ID)
	printStats(result.Stats.RectCount, result.Stats.Radius, result.CacheInfo.LayoutHit)
	for _, format := range popts.Formats {
		path := outputPath(opts.output, format)
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
		}
		printFile(path)
	}
	return nil
}

// pipelineOptions layers flags over the loaded config. A non-empty sizesPath
// replaces generated sizes with the file's contents.
func (c *CLI) pipelineOptions(cmd *cobra.Command, sizesPath string, lf *layoutFlags, rf *renderFlags) (pipeline.Options, error) {
	opts := c.cfg.PipelineOptions()
	if err := lf.apply(cmd, &opts); err != nil {
		return opts, err
	}
	if rf != nil {
		rf.apply(cmd, &opts)
	}
	if sizesPath != "" {
		sizes, err := layout.ReadSizesFile(sizesPath)
		if err != nil {
			return opts, err
		}
		opts.Sizes = sizes
	}
	return opts, opts.ValidateAndSetDefaults()
}
