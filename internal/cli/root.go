package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/algoviz/pkg/config"
)

// loadConfig reads the config file before any command runs. --config
// overrides the XDG location; a missing default file yields the defaults.
func (c *CLI) loadConfig(cmd *cobra.Command, args []string) error {
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))

	var (
		cfg config.Config
		err error
	)
	if c.configPath != "" {
		cfg, err = config.LoadFrom(c.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}
	c.Config = cfg
	c.Logger.Debug("config loaded", "path", c.configFile())
	return nil
}

func (c *CLI) configFile() string {
	if c.configPath != "" {
		return c.configPath
	}
	return config.Path()
}
