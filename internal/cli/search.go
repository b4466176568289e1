package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/algoviz/pkg/graph"
	"github.com/matzehuels/algoviz/pkg/heuristic"
	"github.com/matzehuels/algoviz/pkg/search"
)

const formatTable = "table"

// headerRow is the row index lipgloss tables pass for the header.
const headerRow = -1

var headerStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)

// newTable returns a table in the CLI's house style.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...)
}

// searchCommand creates the search command.
func (c *CLI) searchCommand() *cobra.Command {
	var (
		tf     treeFlags
		sf     searchFlags
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "search [tree.json]",
		Short: "Run a search strategy and print the visit log",
		Long: `Run one search strategy toward a target and print every node it visits,
in order. The tree is read from a file ("-" for stdin) or generated from the
tree flags.

Output formats:
  table  one row per visit with the strategy's costs (default)
  json   tree, log, path and heuristics
  yaml   same as json`,
		Example: `  algoviz search --target F
  algoviz search tree.json --target K --algorithm astar
  algoviz search --target G -a dls --depth-limit 2 --format json`,
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
			l, cached, err := runner.SearchWithCacheInfo(ctx, t, opts)
			if err != nil {
				return err
			}
			loggerFromContext(ctx).Debug("search", "algorithm", l.Algorithm, "visited", l.Len(), "cached", cached)

			h := heuristic.NewTable(t, l.Target)
			snap := graph.NewSnapshot(graph.FromTree(t), l, &h)

			if format == formatTable && output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), logTable(l).Render())
				printSearchSummary(statusTo(cmd.ErrOrStderr()), l)
				return nil
			}
			if format == formatTable {
				format = graph.FormatJSON
			}
			format, err = graph.ParseFormat(format)
			if err != nil {
				return err
			}
			if output != "" {
				if err := graph.WriteSnapshotFile(snap, output, format); err != nil {
					return err
				}
				st := statusTo(cmd.ErrOrStderr())
				st.success("Searched %s for %s", l.Algorithm, l.Target)
				st.file(output)
				return nil
			}
			data, err := graph.MarshalSnapshot(snap, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	tf.register(cmd)
	sf.register(cmd, true)
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, json or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the result to a file (json unless --format yaml)")
	return cmd
}

// logTable lays out a visit log. Cost columns depend on the strategy.
func logTable(l search.Log) *table.Table {
	headers := []string{"#", "Node", "Depth"}
	switch l.Algorithm {
	case search.UCS:
		headers = append(headers, "Cost")
	case search.AStar:
		headers = append(headers, "g", "h", "f")
	case search.Greedy:
		headers = append(headers, "h")
	}

	rows := make([][]string, 0, l.Len())
	for i, e := range l.Entries {
		row := []string{strconv.Itoa(i + 1), e.Node, strconv.Itoa(e.Depth)}
		for _, v := range []*int{e.Cost, e.G, e.H, e.F} {
			if v != nil {
				row = append(row, strconv.Itoa(*v))
			}
		}
		rows = append(rows, row)
	}

	return newTable(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == headerRow {
				return headerStyle
			}
			if row < len(l.Entries) && l.Entries[row].Found {
				return StyleSuccess.Bold(true)
			}
			return lipgloss.NewStyle()
		})
}

func printSearchSummary(st status, l search.Log) {
	st.keyValue("Path", l.Path())
	if l.Found() {
		st.success("Found target: %s!", l.Target)
		return
	}
	st.warning("Completed traversal - %s not found", l.Target)
}

// heuristicsCommand creates the heuristics command.
func (c *CLI) heuristicsCommand() *cobra.Command {
	var (
		tf     treeFlags
		target string
	)

	cmd := &cobra.Command{
		Use:   "heuristics [tree.json]",
		Short: "Show h(n) toward a target and check admissibility",
		Long: `Show the heuristic estimate of every node toward a target, as used by A*
and greedy best-first search, and compare each estimate against the true
cheapest path cost to the target.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeTreeFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			opts := c.options(cmd, &tf, &searchFlags{target: target})
			if err := opts.ValidateForSearch(); err != nil {
				return err
			}
			t, _, err := loadTree(ctx, runner, opts, treeArg(args))
			if err != nil {
				return err
			}
			if !t.Contains(opts.Target) {
				statusTo(cmd.ErrOrStderr()).warning("Target %s not in tree, every estimate is 0", opts.Target)
			}

			tbl := heuristic.NewTable(t, opts.Target)
			rows := make([][]string, 0, len(tbl.Rows))
			for _, r := range tbl.Rows {
				rows = append(rows, []string{r.Label, strconv.Itoa(r.H)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), newTable("Node", "h").Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == headerRow {
						return headerStyle
					}
					return lipgloss.NewStyle()
				}).Render())

			st := statusTo(cmd.ErrOrStderr())
			report := heuristic.Audit(t, opts.Target)
			if report.Admissible {
				st.success("Admissible over %d reachable nodes", report.Reachable)
				return nil
			}
			st.warning("Not admissible: %d overestimates", len(report.Overestimates))
			for _, o := range report.Overestimates {
				st.detail("%s: estimate %d > true cost %d", o.Label, o.Estimate, o.TrueCost)
			}
			return nil
		},
	}

	tf.register(cmd)
	cmd.Flags().StringVarP(&target, "target", "t", "", "label of the target node")
	cmd.MarkFlagRequired("target")
	return cmd
}

// algorithmsCommand creates the algorithms command.
func (c *CLI) algorithmsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the available search strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := search.Catalog()
			rows := make([][]string, 0, len(catalog))
			for _, info := range catalog {
				rows = append(rows, []string{string(info.Name), info.Title, info.Category, info.DataStructure, info.Time, info.Space})
			}
			fmt.Fprintln(cmd.OutOrStdout(), newTable("Name", "Title", "Category", "Structure", "Time", "Space").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					switch {
					case row == headerRow:
						return headerStyle
					case col == 0:
						return StyleHighlight
					case col >= 4:
						return StyleDim
					}
					return lipgloss.NewStyle()
				}).Render())
			return nil
		},
	}
}

// completeAlgorithms offers strategy names for --algorithm.
func completeAlgorithms(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var names []string
	for _, info := range search.Catalog() {
		names = append(names, string(info.Name)+"\t"+info.Title)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// completeTreeFiles restricts file completion to JSON trees.
func completeTreeFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"json"}, cobra.ShellCompDirectiveFilterFileExt
}
