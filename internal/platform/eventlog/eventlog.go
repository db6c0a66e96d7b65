// Package eventlog writes game step events to a structured logger.
// Both frontends share it so a session logs the same lines in either.
package eventlog

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-spaceship/internal/core"
)

// New creates the session logger. Output goes to w with timestamps and the
// "spaceship" prefix; an unknown level falls back to info.
func New(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "spaceship",
	})
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// OpenFile opens path for appending log lines. An empty path discards.
func OpenFile(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// Session logs the start of a session.
func Session(logger *log.Logger, cfg core.RuntimeConfig) {
	logger.Info("session started",
		"width", cfg.CanvasW, "height", cfg.CanvasH,
		"tps", cfg.TickRate, "seed", cfg.Seed)
}

// Step logs the events of one step.
func Step(logger *log.Logger, res core.StepResult) {
	for _, ev := range res.Events {
		switch ev.Kind {
		case core.EventEnemySpawned:
			logger.Debug("enemy spawned", "x", ev.Pos.X, "at", ev.At)
		case core.EventFireAccepted:
			logger.Debug("fire accepted", "index", ev.Value, "x", ev.Pos.X)
		case core.EventEnemyHit:
			logger.Info("enemy destroyed",
				"x", ev.Pos.X, "y", ev.Pos.Y,
				"points", ev.Value, "score", res.State.Score)
		case core.EventGameOver:
			logger.Info("game over", "score", ev.Value, "at", ev.At)
		}
	}
}
