package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/algoviz/pkg/session"
)

// playCommand creates the play command.
func (c *CLI) playCommand() *cobra.Command {
	var (
		tf treeFlags
		sf searchFlags
	)

	cmd := &cobra.Command{
		Use:   "play [tree.json]",
		Short: "Step through a search in the terminal",
		Long: `Run a search and replay it one visit at a time. Press → to visit the next
node and ← to undo the last visit.`,
		Example: `  algoviz play --target F --algorithm dfs
  algoviz play tree.json -t K -a astar`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeTreeFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			opts := c.options(cmd, &tf, &sf)
			t, _, err := loadTree(ctx, runner, opts, treeArg(args))
			if err != nil {
				return err
			}
			l, err := runner.Search(ctx, t, opts)
			if err != nil {
				return err
			}

			p := tea.NewProgram(NewPlayModel(session.New(t, l)), tea.WithContext(ctx), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	tf.register(cmd)
	sf.register(cmd, true)
	return cmd
}
