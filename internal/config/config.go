// Package config provides YAML-based game configuration loading and
// difficulty management for the spaceship game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// SpaceshipConfig contains all tunable constants of the game.
type SpaceshipConfig struct {
	Canvas     SpaceshipCanvas  `yaml:"canvas"`
	Timing     SpaceshipTiming  `yaml:"timing"`
	Stars      SpaceshipStars   `yaml:"stars"`
	Enemies    SpaceshipEnemies `yaml:"enemies"`
	Hero       SpaceshipHero    `yaml:"hero"`
	Scoring    SpaceshipScoring `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SpaceshipCanvas defines canvas geometry.
type SpaceshipCanvas struct {
	CellWidth  int     `yaml:"cell_width"`  // Canvas pixels per terminal column
	CellHeight int     `yaml:"cell_height"` // Canvas pixels per terminal row
	HeroOffset float64 `yaml:"hero_offset"` // Ship row is canvas height minus this
	Margin     float64 `yaml:"margin"`      // Off-screen margin around the canvas
}

// SpaceshipTiming defines producer intervals in milliseconds.
type SpaceshipTiming struct {
	RenderMs     int `yaml:"render_ms"`      // Render sample interval
	StarMs       int `yaml:"star_ms"`        // Star field tick
	EnemySpawnMs int `yaml:"enemy_spawn_ms"` // Time between enemy spawns
	EnemyShotMs  int `yaml:"enemy_shot_ms"`  // Time between shots of one enemy
	FireWindowMs int `yaml:"fire_window_ms"` // Fire sample window
}

// Render returns the render sample interval.
func (t SpaceshipTiming) Render() time.Duration { return ms(t.RenderMs) }

// Star returns the star field tick.
func (t SpaceshipTiming) Star() time.Duration { return ms(t.StarMs) }

// EnemySpawn returns the enemy spawn interval.
func (t SpaceshipTiming) EnemySpawn() time.Duration { return ms(t.EnemySpawnMs) }

// EnemyShot returns the per-enemy shot interval.
func (t SpaceshipTiming) EnemyShot() time.Duration { return ms(t.EnemyShotMs) }

// FireWindow returns the fire sample window.
func (t SpaceshipTiming) FireWindow() time.Duration { return ms(t.FireWindowMs) }

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// SpaceshipStars defines the star field.
type SpaceshipStars struct {
	Count   int     `yaml:"count"`
	Speed   float64 `yaml:"speed"`    // Pixels per star tick
	MinSize float64 `yaml:"min_size"` // Smallest star side in pixels
	MaxSize float64 `yaml:"max_size"` // Largest star side in pixels (exclusive)
}

// SpaceshipEnemies defines enemy spawning and motion.
type SpaceshipEnemies struct {
	SpawnY     float64 `yaml:"spawn_y"`      // Spawn row, above the canvas
	Speed      float64 `yaml:"speed"`        // Pixels down per render tick
	Drift      int     `yaml:"drift"`        // Max horizontal jitter per render tick
	ShotSpeed  float64 `yaml:"shot_speed"`   // Enemy shot pixels per render tick
	MinSpawnMs int     `yaml:"min_spawn_ms"` // Floor for difficulty-shortened spawn interval
}

// SpaceshipHero defines the player ship and its shots.
type SpaceshipHero struct {
	ShotSpeed      float64 `yaml:"shot_speed"`      // Hero shot pixels up per render tick
	KeyStep        float64 `yaml:"key_step"`        // Pixels per left/right key press
	PruneOffscreen bool    `yaml:"prune_offscreen"` // Drop off-screen hero shots instead of keeping them
}

// SpaceshipScoring defines collision and scoring.
type SpaceshipScoring struct {
	Increase        int     `yaml:"increase"`         // Points per destroyed enemy
	CollisionMargin float64 `yaml:"collision_margin"` // Half-width of the collision box
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/render ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to enemy speed at max difficulty
	SpawnReduction  int     `yaml:"spawn_reduction"`  // Spawn interval reduction in ms at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset.
// An empty string means "use the config as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Validate checks that every value the game divides by or loops on is sane.
func (c SpaceshipConfig) Validate() error {
	var errs []error
	check := func(ok bool, field string) {
		if !ok {
			errs = append(errs, fmt.Errorf("config: %s must be positive", field))
		}
	}

	check(c.Canvas.CellWidth > 0, "canvas.cell_width")
	check(c.Canvas.CellHeight > 0, "canvas.cell_height")
	check(c.Canvas.Margin > 0, "canvas.margin")
	check(c.Canvas.HeroOffset > 0, "canvas.hero_offset")
	check(c.Timing.RenderMs > 0, "timing.render_ms")
	check(c.Timing.StarMs > 0, "timing.star_ms")
	check(c.Timing.EnemySpawnMs > 0, "timing.enemy_spawn_ms")
	check(c.Timing.EnemyShotMs > 0, "timing.enemy_shot_ms")
	check(c.Timing.FireWindowMs > 0, "timing.fire_window_ms")
	check(c.Stars.MinSize > 0, "stars.min_size")
	check(c.Stars.Speed > 0, "stars.speed")
	check(c.Enemies.Speed > 0, "enemies.speed")
	check(c.Enemies.ShotSpeed > 0, "enemies.shot_speed")
	check(c.Hero.ShotSpeed > 0, "hero.shot_speed")
	check(c.Scoring.CollisionMargin > 0, "scoring.collision_margin")

	if c.Stars.MaxSize < c.Stars.MinSize {
		errs = append(errs, errors.New("config: stars.max_size must not be below stars.min_size"))
	}
	if c.Stars.Count < 0 {
		errs = append(errs, errors.New("config: stars.count must not be negative"))
	}
	if c.Enemies.Drift < 0 {
		errs = append(errs, errors.New("config: enemies.drift must not be negative"))
	}
	switch c.Difficulty.Progression.Type {
	case "", "none", "score", "time":
	default:
		errs = append(errs, fmt.Errorf("config: unknown difficulty.progression.type %q", c.Difficulty.Progression.Type))
	}

	return errors.Join(errs...)
}
