package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-spaceship/internal/core"
	"github.com/vovakirdan/tui-spaceship/internal/games/spaceship"
	"github.com/vovakirdan/tui-spaceship/internal/platform/eventlog"
)

// Model is the Bubble Tea model for running the spaceship game.
type Model struct {
	game       *spaceship.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       *KeyMapper
	mouse      MouseMapper
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game. The screen
// covers the canvas at the game's configured cell size; the help line is
// drawn below it.
func NewModel(game *spaceship.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = eventlog.Discard()
	}

	canvas := game.Config().Canvas
	mouse := MouseMapper{CellW: core.Max(canvas.CellWidth, 1), CellH: core.Max(canvas.CellHeight, 1)}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.CanvasW/mouse.CellW, cfg.CanvasH/mouse.CellH),
		config:     cfg,
		keys:       NewKeyMapper(),
		mouse:      mouse,
		help:       help.New(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	eventlog.Session(m.logger, m.config)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.mouse.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		// The canvas is sized once; only the help line follows the terminal.
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	eventlog.Step(m.logger, result)

	// Clear input for next frame
	m.inputFrame.Clear()

	// Game over is final: stop ticking and leave the last frame on screen.
	if m.gameState.GameOver {
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".spaceship", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(screenshotText(m.screen)), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// screenshotText returns the screen as plain text with trailing spaces
// trimmed from every row.
func screenshotText(s *core.Screen) string {
	var sb strings.Builder
	for y := range s.Height() {
		sb.WriteString(strings.TrimRight(s.Row(y), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Keys())
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for the given game.
func Run(game *spaceship.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer motion steers the ship
	)

	_, err := p.Run()
	return err
}
