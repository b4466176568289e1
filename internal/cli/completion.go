package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command. Flag values complete
// too: algorithm names for --algorithm, output formats for --format and
// cipher names for the cipher subcommands.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for algoviz.

Bash:
  $ source <(algoviz completion bash)

Zsh:
  $ algoviz completion zsh > "${fpath[1]}/_algoviz"

Fish:
  $ algoviz completion fish > ~/.config/fish/completions/algoviz.fish

PowerShell:
  PS> algoviz completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, out := cmd.Root(), cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			}
			return root.GenPowerShellCompletionWithDesc(out)
		},
	}
}
