package cli

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/algoviz/pkg/cipher"
	"github.com/matzehuels/algoviz/pkg/errors"
	"github.com/matzehuels/algoviz/pkg/graph"
	"github.com/matzehuels/algoviz/pkg/observability"
)

const formatText = "text"

// cipherCommand creates the cipher command and its subcommands.
func (c *CLI) cipherCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cipher",
		Short: "Encrypt and decrypt text with classical ciphers",
		Long: `Run a classical cipher and show every step of the transformation: one
row per character, digram or block depending on the cipher.`,
		Example: `  algoviz cipher list
  algoviz cipher encrypt caesar "HELLO" --key 3
  algoviz cipher decrypt vigenere RIJVS --key KEY --steps`,
	}

	cmd.AddCommand(c.cipherListCommand())
	cmd.AddCommand(c.cipherRunCommand(cipher.Encrypt))
	cmd.AddCommand(c.cipherRunCommand(cipher.Decrypt))

	return cmd
}

func (c *CLI) cipherListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available ciphers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := newTable("Name", "Cipher", "Key", "Example", "Strength")
			for _, ci := range cipher.All() {
				info := ci.Info()
				key := info.KeyFormat
				if !info.RequiresKey {
					key = StyleDim.Render("none")
				}
				t.Row(info.Name, info.Title, key, info.Example, info.Strength)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		},
	}
}

func (c *CLI) cipherRunCommand(mode cipher.Mode) *cobra.Command {
	var (
		key    string
		steps  bool
		format string
	)

	cmd := &cobra.Command{
		Use:               fmt.Sprintf("%s <cipher> <text>", mode),
		Short:             fmt.Sprintf("%s text", titleCase(string(mode))),
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeCiphers,
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := parseTraceFormat(format)
			if err != nil {
				return err
			}
			ci, err := cipher.Lookup(args[0])
			if err != nil {
				return err
			}

			start := time.Now()
			tr, err := cipher.Apply(ci.Name(), mode, args[1], key)
			observability.Cipher().OnCipher(cmd.Context(), ci.Name(), string(mode), len(tr.Steps), time.Since(start), err)
			if err != nil {
				return err
			}
			c.Logger.Debug("cipher applied", "cipher", tr.Cipher, "mode", tr.Mode, "steps", len(tr.Steps))

			out := cmd.OutOrStdout()
			switch outFormat {
			case graph.FormatJSON:
				data, err := json.MarshalIndent(tr, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			case graph.FormatYAML:
				data, err := yaml.Marshal(tr)
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			}

			if steps {
				fmt.Fprintln(out, traceTable(tr))
			}
			fmt.Fprintln(out, tr.Output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "cipher key")
	cmd.Flags().BoolVarP(&steps, "steps", "s", false, "print every step before the output")
	cmd.Flags().StringVar(&format, "format", formatText, "output format: text, json, yaml")
	return cmd
}

// parseTraceFormat normalizes the --format flag of the cipher commands.
func parseTraceFormat(s string) (string, error) {
	switch s {
	case "", formatText:
		return formatText, nil
	case graph.FormatJSON, graph.FormatYAML:
		return s, nil
	case "yml":
		return graph.FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be text, json or yaml)", s)
}

// traceTable lists the steps of a trace.
func traceTable(tr cipher.Trace) fmt.Stringer {
	t := newTable("#", "In", "Key", "Out", "Note")
	for _, s := range tr.Steps {
		t.Row(fmt.Sprint(s.Index), s.In, s.Key, s.Out, s.Note)
	}
	return t
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

func completeCiphers(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return cipher.Names(), cobra.ShellCompDirectiveNoFileComp
}
