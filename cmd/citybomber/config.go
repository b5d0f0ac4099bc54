package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/citybomber/internal/config"
)

var (
	flagShowConfig string
	flagDefaults   bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration",
	Long: `Print the configuration a run would use, as YAML.

The file is looked up in this order: --config, ~/.citybomber/config.yaml,
./configs/citybomber.yaml, then the built-in defaults. Keys left out of a
file keep their default values.

Examples:
  citybomber config
  citybomber config --defaults > ~/.citybomber/config.yaml
  citybomber config --config ./my-city.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagShowConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	logger := newLogger("config")
	cfg, err := loadGameConfig(cmd, flagShowConfig)
	if err != nil {
		fatal(logger, "invalid configuration", err)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fatal(logger, "cannot encode configuration", err)
	}
	fmt.Print(string(out))
}
