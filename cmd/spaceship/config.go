package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-spaceship/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML. Save it to
~/.spaceship/configs/spaceship.yaml or ./configs/spaceship.yaml and edit
it to change the game.

With --resolved the configuration that would actually be used is printed,
after --config and --difficulty are applied.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective configuration")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagResolved {
		_, err := os.Stdout.Write(config.DefaultYAML())
		exitOnError(err)
		return
	}

	cfg, err := loadGameConfig()
	exitOnError(err)

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	exitOnError(enc.Encode(cfg))
	exitOnError(enc.Close())
}
