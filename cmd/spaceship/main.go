// spaceship is an arcade shooter: steer a ship with the mouse, shoot the
// descending enemies and dodge their fire.
//
// Usage:
//
//	spaceship play     - Play in the terminal
//	spaceship window   - Play in a desktop window
//	spaceship config   - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write the session log to a file
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-spaceship/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spaceship",
	Short: "Spaceship - shoot down the invaders",
	Long: `Spaceship is an arcade shooter. Your ship follows the mouse along the
bottom of the screen while enemies descend and fire back. Every enemy
destroyed scores points; touching an enemy or its fire ends the game.

Available commands:
  play     - Play in the terminal (mouse reporting recommended)
  window   - Play in a desktop window
  config   - Print the default configuration

Examples:
  spaceship play
  spaceship play --difficulty hard
  spaceship window --width 1024 --height 768
  spaceship config > configs/spaceship.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write the session log to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig resolves the configuration from --config and applies the
// --difficulty preset.
func loadGameConfig() (config.SpaceshipConfig, error) {
	if err := validateFPS(flagFPS); err != nil {
		return config.SpaceshipConfig{}, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.SpaceshipConfig{}, err
	}

	cfg, err := config.LoadSpaceship(flagConfig)
	if err != nil {
		return config.SpaceshipConfig{}, err
	}
	config.ApplySpaceshipPreset(&cfg, preset)
	return cfg, nil
}

// validateFPS rejects tick rates the frontends cannot run at.
func validateFPS(fps int) error {
	if fps <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", fps)
	}
	return nil
}

// exitOnError prints err in the CLI format and exits.
func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
