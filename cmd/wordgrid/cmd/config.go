package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configYAML bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: "Shows the configuration after applying the config file, WORDGRID_* environment\n" +
		"variables and flags. --yaml prints it in config-file form.",
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configYAML, "yaml", false, "Print as YAML")
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, path, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return usageError(err)
	}

	out := cmd.OutOrStdout()
	if configYAML {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}
	fmt.Fprint(out, formatConfig(cfg, path))
	return nil
}
