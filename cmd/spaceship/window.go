package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-spaceship/internal/core"
	"github.com/vovakirdan/tui-spaceship/internal/games/spaceship"
	"github.com/vovakirdan/tui-spaceship/internal/platform/eventlog"
	"github.com/vovakirdan/tui-spaceship/internal/platform/window"
)

var (
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start the game in a desktop window. The canvas is --width x --height
pixels and does not change when the window is resized.

Controls:
  Mouse          - Steer the ship
  Click/Space    - Fire
  Left/A Right/D - Nudge the ship
  P              - Pause
  Q/Esc          - Quit

Examples:
  spaceship window
  spaceship window --width 1024 --height 768 --difficulty normal`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", 800, "Canvas width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", 600, "Canvas height in pixels")
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	exitOnError(err)

	var logOut io.Writer = os.Stderr
	if flagLogFile != "" {
		f, err := eventlog.OpenFile(flagLogFile)
		exitOnError(err)
		defer f.Close()
		logOut = f
	}
	logger := eventlog.New(logOut, flagLogLevel)

	rc := core.RuntimeConfig{
		CanvasW:  core.Max(flagWidth, 1),
		CanvasH:  core.Max(flagHeight, 1),
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := window.Run(spaceship.New(cfg), rc, logger); err != nil {
		logger.Error("window session failed", "error", err)
		exitOnError(err)
	}
}
