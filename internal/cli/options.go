package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/algoviz/pkg/graph"
	"github.com/matzehuels/algoviz/pkg/pipeline"
	"github.com/matzehuels/algoviz/pkg/tree"
)

// treeFlags are the generation flags shared by every command that needs a
// tree. They are ignored when a tree file is given.
type treeFlags struct {
	levels      int
	nodes       int
	maxChildren int
	mode        string
	seed        uint64
}

func (f *treeFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.IntVarP(&f.levels, "levels", "l", tree.DefaultLevels, "number of tree levels (2-10)")
	flags.IntVarP(&f.nodes, "nodes", "n", tree.DefaultNodes, "number of nodes (3-50)")
	flags.IntVar(&f.maxChildren, "max-children", tree.DefaultMaxChildren, "maximum children per node (2-5)")
	flags.StringVarP(&f.mode, "mode", "m", string(tree.DefaultMode), "tree shape: flexible or random")
	flags.Uint64Var(&f.seed, "seed", 0, "random seed (0 picks a fresh one)")
}

// searchFlags select the strategy and target.
type searchFlags struct {
	target            string
	algorithm         string
	depthLimit        int
	maxIterativeDepth int
	allowMissing      bool
}

func (f *searchFlags) register(cmd *cobra.Command, targetRequired bool) {
	flags := cmd.Flags()
	flags.StringVarP(&f.target, "target", "t", "", "label of the node to search for")
	flags.StringVarP(&f.algorithm, "algorithm", "a", "", "search strategy (see 'algoviz algorithms')")
	flags.IntVar(&f.depthLimit, "depth-limit", 0, "depth limit for dls")
	flags.IntVar(&f.maxIterativeDepth, "max-depth", 0, "maximum depth for iddfs")
	flags.BoolVar(&f.allowMissing, "allow-missing", false, "search even if the target is not in the tree")
	if targetRequired {
		cmd.MarkFlagRequired("target")
	}
	cmd.RegisterFlagCompletionFunc("algorithm", completeAlgorithms)
}

// options builds pipeline options from the config file, then overrides
// every flag the user actually set.
func (c *CLI) options(cmd *cobra.Command, tf *treeFlags, sf *searchFlags) pipeline.Options {
	cfg := c.Config
	opts := pipeline.Options{
		Levels:            cfg.Tree.Levels,
		Nodes:             cfg.Tree.Nodes,
		MaxChildren:       cfg.Tree.MaxChildren,
		Mode:              cfg.Tree.Mode,
		Seed:              cfg.Tree.Seed,
		Algorithm:         cfg.Search.Algorithm,
		DepthLimit:        cfg.Search.DepthLimit,
		MaxIterativeDepth: cfg.Search.MaxIterativeDepth,
		Width:             cfg.Render.Width,
		Detailed:          cfg.Render.Detailed,
		Logger:            c.Logger,
	}
	if cfg.Render.Format != "" {
		opts.Formats = []string{cfg.Render.Format}
	}

	changed := cmd.Flags().Changed
	if tf != nil {
		if changed("levels") {
			opts.Levels = tf.levels
		}
		if changed("nodes") {
			opts.Nodes = tf.nodes
		}
		if changed("max-children") {
			opts.MaxChildren = tf.maxChildren
		}
		if changed("mode") {
			opts.Mode = tf.mode
		}
		if changed("seed") {
			opts.Seed = tf.seed
		}
	}
	if sf != nil {
		opts.Target = sf.target
		opts.AllowMissing = sf.allowMissing
		if changed("algorithm") {
			opts.Algorithm = sf.algorithm
		}
		if changed("depth-limit") {
			opts.DepthLimit = sf.depthLimit
		}
		if changed("max-depth") {
			opts.MaxIterativeDepth = sf.maxIterativeDepth
		}
	}
	return opts
}

// loadTree reads the tree from path ("-" for stdin) or generates one.
func loadTree(ctx context.Context, r *pipeline.Runner, opts pipeline.Options, path string) (*tree.Tree, bool, error) {
	switch path {
	case "":
		return r.GenerateWithCacheInfo(ctx, opts)
	case "-":
		t, err := graph.ReadTree(os.Stdin)
		return t, false, err
	}
	t, err := graph.ReadTreeFile(path)
	return t, false, err
}

// treeArg returns the optional tree file argument.
func treeArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
