package core

import "time"

// RuntimeConfig is the session context handed to a game at initialization.
// The canvas is sized once from it; later resizes are ignored.
type RuntimeConfig struct {
	CanvasW  int   // Canvas width in pixels
	CanvasH  int   // Canvas height in pixels
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		CanvasW:  800,
		CanvasH:  600,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Frame returns the simulated time covered by one tick.
func (c RuntimeConfig) Frame() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventEnemySpawned EventKind = iota
	EventFireAccepted
	EventEnemyHit
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventEnemySpawned:
		return "enemy_spawned"
	case EventFireAccepted:
		return "fire_accepted"
	case EventEnemyHit:
		return "enemy_hit"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a notable occurrence reported to the platform for logging.
// Value carries the fire index, score increment or final score.
type Event struct {
	Kind  EventKind
	At    time.Duration // Session clock when it happened
	Pos   Point
	Value int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
