package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

//go:embed defaults/clicker.yaml
var defaultClickerYAML []byte

//go:embed defaults/flock.yaml
var defaultFlockYAML []byte

func defaultSession() SessionConfig {
	return SessionConfig{PauseCooldownMS: 200}
}

// DefaultRunnerConfig returns the default Cube Runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			CellWidth:    8,
			CellHeight:   16,
			GroundOffset: 50,
			Gravity:      0.2,
		},
		Player: RunnerPlayer{
			Size:          20,
			Speed:         3,
			JumpVelocity:  -6,
			RotationSpeed: 0.05,
		},
		Hazards: HazardsConfig{
			IntervalMS: 1500,
			RepeatCap:  3,
			SpeedBonus: 1,
			Kinds: []HazardKind{
				{Name: "wall", Kind: "blocking", Weight: 0.05, Width: 40, Height: 80},
				{Name: "lava", Kind: "lethal", Weight: 0.15, Width: 20, Height: 20},
				{Name: "spike", Kind: "lethal", Weight: 0.80, Width: 30, Height: 10},
			},
		},
		Session: defaultSession(),
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 120,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.5,
				IntervalReduction: 0.4,
				MinIntervalMS:     600,
			},
		},
	}
}

// DefaultClickerConfig returns the default Chicken Clicker configuration.
func DefaultClickerConfig() ClickerConfig {
	return ClickerConfig{
		World: WorldConfig{
			CellWidth:    8,
			CellHeight:   16,
			GroundOffset: 50,
		},
		Chicken: ChickenConfig{
			Radius:       20,
			MinFallSpeed: 2,
			MaxFallSpeed: 4,
			WrongChance:  0.3,
		},
		Spawn: BatchConfig{
			MinBatch:   2,
			MaxBatch:   4,
			MinDelayMS: 300,
			MaxDelayMS: 1000,
		},
		Scoring: ClickerScoring{
			Pop:         1,
			WrongLanded: 2,
		},
		Session: defaultSession(),
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				IntervalReduction: 0.5,
				MinIntervalMS:     150,
			},
		},
	}
}

// DefaultFlockConfig returns the default Chicken Flock configuration.
func DefaultFlockConfig() FlockConfig {
	return FlockConfig{
		World: WorldConfig{
			CellWidth:    8,
			CellHeight:   16,
			GroundOffset: 50,
			Gravity:      0.5,
		},
		Disc: DiscConfig{
			Radius:        20,
			Mass:          1,
			Restitution:   0.5,
			Friction:      0.99,
			MaxSpawnSpeed: 5,
		},
		Spawn: FlockSpawn{
			IntervalMS: 500,
			MaxBodies:  60,
		},
		Click: ClickImpulse{
			Horizontal:    20,
			MinLift:       10,
			MaxLift:       20,
			ExplodeChance: 0.1,
		},
		Session: defaultSession(),
	}
}
