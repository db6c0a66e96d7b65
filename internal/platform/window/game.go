// Package window runs the spaceship game in a desktop window with ebiten.
// The window's logical size is the canvas, fixed at startup.
package window

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-spaceship/internal/core"
	"github.com/vovakirdan/tui-spaceship/internal/games/spaceship"
	"github.com/vovakirdan/tui-spaceship/internal/platform/eventlog"
)

// Game adapts a spaceship session to ebiten.Game.
type Game struct {
	game   *spaceship.Game
	config core.RuntimeConfig
	logger *log.Logger
	input  inputReader
	frame  core.InputFrame
	state  core.GameState
}

// NewGame resets game for the canvas in cfg and wraps it for ebiten.
func NewGame(game *spaceship.Game, cfg core.RuntimeConfig, logger *log.Logger) *Game {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = eventlog.Discard()
	}

	game.Reset(cfg)
	eventlog.Session(logger, cfg)

	return &Game{
		game:   game,
		config: cfg,
		logger: logger,
		frame:  core.NewInputFrame(),
	}
}

// Update runs one simulation tick.
func (g *Game) Update() error {
	if g.input.read(&g.frame) {
		return ebiten.Termination
	}

	// The last frame stays on screen once the game is over.
	if g.state.GameOver {
		g.frame.Clear()
		return nil
	}

	res := g.game.Step(g.frame)
	g.state = res.State
	eventlog.Step(g.logger, res)
	g.frame.Clear()
	return nil
}

// Draw paints the latest snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot()
	p := NewImagePainter(screen)
	spaceship.Paint(snap, p)

	if snap.Paused {
		p.Text(snap.Width/2-21, snap.Height/2, "PAUSED", core.ColorBrightYellow)
	}
}

// Layout keeps the logical screen at the canvas size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.config.CanvasW, g.config.CanvasH
}

// Run opens the window and blocks until it is closed.
func Run(game *spaceship.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	g := NewGame(game, cfg, logger)

	ebiten.SetWindowSize(g.config.CanvasW, g.config.CanvasH)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(g.config.TickRate)

	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	return nil
}
