package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/algoviz/pkg/graph"
)

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		tf     treeFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a tree and write it as JSON",
		Long: `Generate a labelled tree with random edge costs.

Flexible mode spreads nodes level by level so every level is as full as the
node count allows. Random mode gives each parent between one and
max-children children. The same seed always yields the same tree.`,
		Example: `  algoviz generate --nodes 12 --levels 4 --seed 7 -o tree.json
  algoviz generate --mode random | algoviz search - --target F`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			prog := newProgress(logger)
			opts := c.options(cmd, &tf, nil)
			t, cached, err := runner.GenerateWithCacheInfo(ctx, opts)
			if err != nil {
				return err
			}
			if t.Len() < opts.Nodes {
				logger.Warn("tree is full, extra nodes dropped", "requested", opts.Nodes, "placed", t.Len())
			}
			prog.done(fmt.Sprintf("Generated %d nodes (seed %d)", t.Len(), t.Seed))

			if output == "" {
				return graph.WriteTree(t, cmd.OutOrStdout())
			}
			if err := graph.WriteTreeFile(t, output); err != nil {
				return err
			}
			st := statusTo(cmd.ErrOrStderr())
			st.success("Generated tree")
			st.stats(t.Len(), t.EdgeCount(), cached)
			st.file(output)
			st.nextStep("Search it", fmt.Sprintf("algoviz search %s --target %s", output, t.Labels()[t.Len()-1]))
			return nil
		},
	}

	tf.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
