package config

import (
	_ "embed"
)

//go:embed defaults/spaceship.yaml
var defaultSpaceshipYAML []byte

// DefaultSpaceshipConfig returns the default Spaceship configuration.
// It mirrors defaults/spaceship.yaml and backs it up if the embed fails to parse.
func DefaultSpaceshipConfig() SpaceshipConfig {
	return SpaceshipConfig{
		Canvas: SpaceshipCanvas{
			CellWidth:  10,
			CellHeight: 20,
			HeroOffset: 30,
			Margin:     40,
		},
		Timing: SpaceshipTiming{
			RenderMs:     40,
			StarMs:       40,
			EnemySpawnMs: 1500,
			EnemyShotMs:  750,
			FireWindowMs: 200,
		},
		Stars: SpaceshipStars{
			Count:   250,
			Speed:   3,
			MinSize: 1,
			MaxSize: 4,
		},
		Enemies: SpaceshipEnemies{
			SpawnY:     -30,
			Speed:      5,
			Drift:      15,
			ShotSpeed:  15,
			MinSpawnMs: 500,
		},
		Hero: SpaceshipHero{
			ShotSpeed:      15,
			KeyStep:        20,
			PruneOffscreen: false,
		},
		Scoring: SpaceshipScoring{
			Increase:        10,
			CollisionMargin: 20,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "none",
				MaxAt: 300,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				SpawnReduction:  900,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSpaceshipYAML
}
