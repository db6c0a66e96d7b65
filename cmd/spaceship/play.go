package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-spaceship/internal/core"
	"github.com/vovakirdan/tui-spaceship/internal/games/spaceship"
	"github.com/vovakirdan/tui-spaceship/internal/platform/eventlog"
	"github.com/vovakirdan/tui-spaceship/internal/platform/tui"
)

var (
	flagCellWidth  int
	flagCellHeight int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal's alternate screen.

The canvas is sized once from the terminal: every column covers
--cell-width canvas pixels and every row --cell-height. The last row
shows the key help.

Controls:
  Mouse          - Steer the ship
  Click/Space    - Fire
  Left/A Right/D - Nudge the ship
  P              - Pause
  Ctrl+S         - Save a text screenshot
  Q/Esc/Ctrl+C   - Quit

Examples:
  spaceship play
  spaceship play --seed 42 --log-file spaceship.log --log-level debug
  spaceship play --cell-width 8 --cell-height 16`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagCellWidth, "cell-width", 0, "Canvas pixels per terminal column (0 = from config)")
	playCmd.Flags().IntVar(&flagCellHeight, "cell-height", 0, "Canvas pixels per terminal row (0 = from config)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	exitOnError(err)

	if flagCellWidth > 0 {
		cfg.Canvas.CellWidth = flagCellWidth
	}
	if flagCellHeight > 0 {
		cfg.Canvas.CellHeight = flagCellHeight
	}
	exitOnError(cfg.Validate())

	// The alt-screen owns stdout, so logs only go to a file.
	logOut, err := eventlog.OpenFile(flagLogFile)
	exitOnError(err)
	defer logOut.Close()
	logger := eventlog.New(logOut, flagLogLevel)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	// One row is reserved for the help line.
	rows := core.Max(height-1, 1)

	rc := core.RuntimeConfig{
		CanvasW:  width * cfg.Canvas.CellWidth,
		CanvasH:  rows * cfg.Canvas.CellHeight,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := tui.Run(spaceship.New(cfg), rc, logger); err != nil {
		logger.Error("terminal session failed", "error", err)
		exitOnError(err)
	}
}
