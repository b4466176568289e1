package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/algoviz/pkg/pipeline"
	"github.com/matzehuels/algoviz/pkg/render"
	"github.com/matzehuels/algoviz/pkg/search"
	"github.com/matzehuels/algoviz/pkg/tree"
)

// defaultBase names generated output when there is no input file.
const defaultBase = "tree"

// renderOpts holds the command-line flags for the render command that are
// not shared with other commands.
type renderOpts struct {
	output   string  // output file (single format) or base path (multiple)
	formats  string  // comma-separated formats
	step     int     // frame to draw; 0 draws the finished search
	width    float64 // SVG width in pixels
	detailed bool    // level and path cost in Graphviz labels
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		tf   treeFlags
		sf   searchFlags
		opts renderOpts
	)

	cmd := &cobra.Command{
		Use:   "render [tree.json]",
		Short: "Draw a tree or one frame of a search",
		Long: `Draw a tree, optionally with the state of a search after a given number of
steps: visited nodes, the node being visited and the target once found.

Formats:
  svg       nodes at their generated positions (default)
  graphviz  SVG laid out by Graphviz
  dot       Graphviz source
  json      tree and frame state
  png, pdf  converted from SVG (requires rsvg-convert)`,
		Example: `  algoviz render --target F --algorithm bfs --step 3
  algoviz render tree.json -t K -a astar -f svg,png -o astar`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeTreeFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			popts := c.options(cmd, &tf, &sf)
			if cmd.Flags().Changed("format") || len(popts.Formats) == 0 {
				popts.Formats = parseFormats(opts.formats)
			}
			if cmd.Flags().Changed("width") {
				popts.Width = opts.width
			}
			if cmd.Flags().Changed("detailed") {
				popts.Detailed = opts.detailed
			}
			popts.Step = opts.step
			if err := pipeline.ValidateFormats(popts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), cmd.ErrOrStderr(), treeArg(args), opts.output, popts)
		},
	}

	tf.register(cmd)
	sf.register(cmd, false)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), graphviz, dot, json, png, pdf (comma-separated)")
	cmd.Flags().IntVar(&opts.step, "step", 0, "number of visits to show (default: the whole search)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "SVG width in pixels (default: natural size)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show level and path cost in Graphviz labels")
	cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return sortedFormats(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// runRender loads or generates the tree, runs the search when a target is
// given and writes one file per format.
func (c *CLI) runRender(ctx context.Context, w io.Writer, input, output string, opts pipeline.Options) error {
	logger := loggerFromContext(ctx)

	for _, f := range opts.Formats {
		if (f == pipeline.FormatPNG || f == pipeline.FormatPDF) && !render.CanConvert() {
			return fmt.Errorf("%s output requires rsvg-convert (install librsvg)", f)
		}
	}

	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	t, treeCached, err := loadTree(ctx, runner, opts, input)
	if err != nil {
		return err
	}
	logger.Infof("Loaded tree: %d nodes, %d edges", t.Len(), t.EdgeCount())

	var l search.Log
	if opts.Target != "" {
		if l, _, err = runner.SearchWithCacheInfo(ctx, t, opts); err != nil {
			return err
		}
		logger.Infof("Searched %s for %s: %d visits", l.Algorithm, l.Target, l.Len())
	}
	frame := render.NewFrame(l, opts.FrameStep(l))

	var spinner *Spinner
	if slowFormats(opts.Formats) {
		spinner = newSpinner(ctx, w, "Rendering "+strings.Join(opts.Formats, ", "))
		spinner.Start()
	}
	artifacts, renderCached, err := runner.RenderWithCacheInfo(ctx, t, frame, opts)
	if spinner != nil {
		if err != nil {
			spinner.StopWithError("Render failed")
		} else {
			spinner.Stop()
		}
	}
	if err != nil {
		return err
	}

	base := basePath(output, input)
	var written []string
	for _, format := range opts.Formats {
		path := base + "." + format
		if len(opts.Formats) == 1 && output != "" && filepath.Ext(output) != "" {
			path = output
		}
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}

	st := statusTo(w)
	st.success("%s", frameSummary(t, frame))
	st.stats(t.Len(), t.EdgeCount(), treeCached && renderCached)
	for _, p := range written {
		st.file(p)
	}
	return nil
}

// frameSummary describes what the rendered frame shows.
func frameSummary(t *tree.Tree, f render.Frame) string {
	if f.Algorithm == "" {
		return fmt.Sprintf("Rendered %s tree", t.Mode)
	}
	return fmt.Sprintf("Rendered %s toward %s, step %d of %d", f.Algorithm, f.Target, f.Step, f.Total)
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		if input == "" || input == "-" {
			return defaultBase
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// slowFormats reports whether any format shells out or runs Graphviz.
func slowFormats(formats []string) bool {
	for _, f := range formats {
		switch f {
		case pipeline.FormatGraphviz, pipeline.FormatPNG, pipeline.FormatPDF:
			return true
		}
	}
	return false
}

func sortedFormats() []string {
	out := make([]string, 0, len(pipeline.ValidFormats))
	for f := range pipeline.ValidFormats {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}
