// Package spaceship implements the spaceship shooter: the player's ship
// follows the pointer along the bottom of the canvas, shoots descending
// enemies and dodges their fire while stars scroll past.
//
// Every system advances on its own interval against a simulated clock.
// Step moves the clock forward by one frame; each elapsed render interval
// checks for game over, moves enemies and shots, resolves hits and captures
// a Snapshot for the frontends to paint.
package spaceship

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-spaceship/internal/config"
	"github.com/vovakirdan/tui-spaceship/internal/core"
)

// Game implements one spaceship session.
type Game struct {
	cfg        config.SpaceshipConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	// Simulated clock
	now    time.Duration
	frame  time.Duration
	render core.Interval

	// Canvas dimensions in pixels
	width  float64
	height float64
	heroY  float64

	// Producers
	stars     *StarField
	ship      *ShipTracker
	fire      *FireCounter
	heroShots *HeroShots
	enemies   *EnemyManager
	score     ScoreAccumulator

	renderTicks int
	snapshot    Snapshot

	gameOver bool
	paused   bool
}

// New creates a game with the given configuration. Call Reset before Step.
func New(cfg config.SpaceshipConfig) *Game {
	return &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "spaceship"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Spaceship"
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.SpaceshipConfig {
	return g.cfg
}

// Reset starts a new session on a canvas of the given size.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.now = 0
	g.frame = rc.Frame()
	g.render = core.NewInterval(g.cfg.Timing.Render(), 0)

	g.width = float64(rc.CanvasW)
	g.height = float64(rc.CanvasH)
	g.heroY = g.height - g.cfg.Canvas.HeroOffset

	g.stars = NewStarField(g.rng, g.cfg.Stars, g.cfg.Timing.Star(), g.width, g.height)
	g.ship = NewShipTracker(g.width, g.heroY)
	g.fire = NewFireCounter(g.cfg.Timing.FireWindow())
	g.heroShots = NewHeroShots()
	g.enemies = NewEnemyManager(g.rng, g.cfg.Enemies, g.cfg.Timing, g.width, g.height, g.cfg.Canvas.Margin)
	g.score = ScoreAccumulator{}

	g.renderTicks = 0
	g.gameOver = false
	g.paused = false
	g.snapshot = g.capture()
}

// Step advances the session clock by one frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	// Game over is terminal: nothing moves and the last frame stays.
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
		g.snapshot.Paused = g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.handleInput(input)
	g.now += g.frame

	var events []core.Event

	g.stars.Update(g.now)

	if g.fire.Update(g.now) {
		events = append(events, core.Event{
			Kind:  core.EventFireAccepted,
			At:    g.now,
			Pos:   g.ship.Ship().Pos(),
			Value: g.fire.Index(),
		})
	}
	ship := g.ship.Ship()
	g.heroShots.Update(g.fire.Index(), ship.X, ship.Y)

	if g.difficulty.IsEnabled() {
		g.enemies.SetSpawnInterval(g.difficulty.SpawnInterval(
			g.cfg.Timing.EnemySpawnMs, g.cfg.Enemies.MinSpawnMs, g.score.Total(), g.renderTicks))
	}
	for _, p := range g.enemies.Update(g.now) {
		events = append(events, core.Event{Kind: core.EventEnemySpawned, At: g.now, Pos: p})
	}

	for !g.gameOver {
		at, ok := g.render.Take(g.now)
		if !ok {
			break
		}
		events = g.renderTick(at, events)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// handleInput applies pointer, keyboard and fire input for this frame.
func (g *Game) handleInput(input core.InputFrame) {
	if input.PointerMoved {
		g.ship.Track(input.Pointer.X)
	}
	if input.Has(core.ActionLeft) {
		g.ship.Nudge(-g.cfg.Hero.KeyStep)
	}
	if input.Has(core.ActionRight) {
		g.ship.Nudge(g.cfg.Hero.KeyStep)
	}
	if input.Has(core.ActionFire) {
		g.fire.Press()
	}
}

// renderTick samples every producer once. Game over is evaluated first, on
// the positions painted by the previous tick.
func (g *Game) renderTick(at time.Duration, events []core.Event) []core.Event {
	margin := g.cfg.Scoring.CollisionMargin
	ship := g.ship.Ship()

	if GameOver(ship.Pos(), g.enemies.Enemies(), margin) {
		g.gameOver = true
		return append(events, core.Event{
			Kind:  core.EventGameOver,
			At:    at,
			Pos:   ship.Pos(),
			Value: g.score.Total(),
		})
	}

	speed := g.cfg.Enemies.Speed
	if g.difficulty.IsEnabled() {
		speed = g.difficulty.Speed(speed, g.score.Total(), g.renderTicks)
	}
	g.enemies.Move(speed)

	for _, p := range g.heroShots.Advance(g.enemies.Enemies(), g.cfg.Hero.ShotSpeed, margin) {
		g.score.Add(g.cfg.Scoring.Increase)
		events = append(events, core.Event{
			Kind:  core.EventEnemyHit,
			At:    at,
			Pos:   p,
			Value: g.cfg.Scoring.Increase,
		})
	}

	if g.cfg.Hero.PruneOffscreen {
		g.heroShots.Prune(g.width, g.height, g.cfg.Canvas.Margin)
	}

	g.renderTicks++
	g.snapshot = g.capture()
	return events
}

// Snapshot returns the frame captured by the last render tick.
func (g *Game) Snapshot() Snapshot {
	return g.snapshot
}

// Now returns the session clock.
func (g *Game) Now() time.Duration {
	return g.now
}

// Render paints the last snapshot onto a character screen, scaling canvas
// pixels by the configured cell size.
func (g *Game) Render(dst *core.Screen) {
	Paint(g.snapshot, NewScreenPainter(dst, g.cfg.Canvas.CellWidth, g.cfg.Canvas.CellHeight))

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredMessage draws a boxed message in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorDefault)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score.Total(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
