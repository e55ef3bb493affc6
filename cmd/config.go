package cmd

import (
	"fmt"

	"static-host/core/config"

	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v3"
)

// configCmd prints the effective configuration.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configDir(cmd))
		if err != nil {
			return err
		}
		out, err := renderConfig(cfg)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

// renderConfig marshals cfg to YAML with the API key masked.
func renderConfig(cfg *config.Config) (string, error) {
	masked := *cfg
	if masked.Server.ApiKey != "" {
		masked.Server.ApiKey = "********"
	}
	b, err := yaml.Marshal(masked)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func init() {
	RootCmd.AddCommand(configCmd)
}
