// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/kinetic-arcade/internal/core"
	"github.com/vovakirdan/kinetic-arcade/internal/hazards"
)

// WorldConfig maps terminal cells to world units and sets the shared
// environment of a game.
type WorldConfig struct {
	CellWidth    float64 `yaml:"cell_width"`    // World units per terminal column
	CellHeight   float64 `yaml:"cell_height"`   // World units per terminal row
	GroundOffset float64 `yaml:"ground_offset"` // Ground line distance above the bottom edge
	Gravity      float64 `yaml:"gravity"`       // Added to vertical velocity per frame
}

// Viewport returns the cell/world mapping.
func (w WorldConfig) Viewport() core.Viewport {
	return core.Viewport{CellW: w.CellWidth, CellH: w.CellHeight}
}

// Ground returns the ground line y for a world of the given height.
func (w WorldConfig) Ground(worldH float64) float64 {
	return worldH - w.GroundOffset
}

func (w WorldConfig) validate() error {
	if w.CellWidth <= 0 || w.CellHeight <= 0 {
		return errors.New("world: cell_width and cell_height must be positive")
	}
	return nil
}

// SessionConfig defines lifecycle parameters shared by every game.
type SessionConfig struct {
	PauseCooldownMS int `yaml:"pause_cooldown_ms"`
}

// PauseCooldown returns the pause debounce as a duration.
func (s SessionConfig) PauseCooldown() time.Duration {
	return core.Millis(s.PauseCooldownMS)
}

// RunnerConfig contains all configuration for the Cube Runner game.
type RunnerConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     RunnerPlayer     `yaml:"player"`
	Hazards    HazardsConfig    `yaml:"hazards"`
	Session    SessionConfig    `yaml:"session"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RunnerPlayer defines the cube's movement.
type RunnerPlayer struct {
	Size          float64 `yaml:"size"`
	Speed         float64 `yaml:"speed"`          // Horizontal units per frame while A/D is held
	JumpVelocity  float64 `yaml:"jump_velocity"`  // Negative is up
	RotationSpeed float64 `yaml:"rotation_speed"` // Radians per unit of horizontal motion
}

// HazardsConfig defines the obstacle field.
type HazardsConfig struct {
	IntervalMS int          `yaml:"interval_ms"`
	RepeatCap  int          `yaml:"repeat_cap"`
	SpeedBonus float64      `yaml:"speed_bonus"` // Obstacle speed = player speed + bonus
	Kinds      []HazardKind `yaml:"kinds"`
}

// HazardKind is one entry of the obstacle catalog.
type HazardKind struct {
	Name   string  `yaml:"name"` // wall, lava or spike
	Kind   string  `yaml:"kind"` // blocking or lethal
	Weight float64 `yaml:"weight"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Interval returns the spawn interval as a duration.
func (h HazardsConfig) Interval() time.Duration {
	return core.Millis(h.IntervalMS)
}

// Catalog converts the configured kinds into spawn specs.
func (h HazardsConfig) Catalog() ([]hazards.Spec, error) {
	specs := make([]hazards.Spec, 0, len(h.Kinds))
	for _, k := range h.Kinds {
		sub, err := hazards.ParseSubKind(k.Name)
		if err != nil {
			return nil, err
		}
		kind, err := hazards.ParseKind(k.Kind)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k.Name, err)
		}
		specs = append(specs, hazards.Spec{Sub: sub, Kind: kind, Weight: k.Weight, W: k.Width, H: k.Height})
	}
	return specs, nil
}

// Validate checks the values the runner cannot play without.
func (c RunnerConfig) Validate() error {
	if err := c.World.validate(); err != nil {
		return err
	}
	if c.Player.Size <= 0 {
		return errors.New("player: size must be positive")
	}
	if c.Hazards.IntervalMS <= 0 {
		return errors.New("hazards: interval_ms must be positive")
	}
	if len(c.Hazards.Kinds) == 0 {
		return hazards.ErrEmptyCatalog
	}
	return nil
}

// ClickerConfig contains all configuration for the Chicken Clicker game.
type ClickerConfig struct {
	World      WorldConfig      `yaml:"world"`
	Chicken    ChickenConfig    `yaml:"chicken"`
	Spawn      BatchConfig      `yaml:"spawn"`
	Scoring    ClickerScoring   `yaml:"scoring"`
	Session    SessionConfig    `yaml:"session"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ChickenConfig defines falling chickens.
type ChickenConfig struct {
	Radius       float64 `yaml:"radius"`
	MinFallSpeed float64 `yaml:"min_fall_speed"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	WrongChance  float64 `yaml:"wrong_chance"` // Chance a spawn becomes the wrong chicken
}

// BatchConfig defines batch spawning with a random delay.
type BatchConfig struct {
	MinBatch   int `yaml:"min_batch"`
	MaxBatch   int `yaml:"max_batch"`
	MinDelayMS int `yaml:"min_delay_ms"`
	MaxDelayMS int `yaml:"max_delay_ms"`
}

// ClickerScoring defines point values.
type ClickerScoring struct {
	Pop         int `yaml:"pop"`          // Clicking a normal chicken
	WrongLanded int `yaml:"wrong_landed"` // Letting the wrong chicken land
}

// Validate checks the values the clicker cannot play without.
func (c ClickerConfig) Validate() error {
	if err := c.World.validate(); err != nil {
		return err
	}
	if c.Chicken.Radius <= 0 {
		return errors.New("chicken: radius must be positive")
	}
	if c.Chicken.MaxFallSpeed < c.Chicken.MinFallSpeed {
		return errors.New("chicken: max_fall_speed below min_fall_speed")
	}
	if c.Spawn.MinBatch <= 0 || c.Spawn.MaxBatch < c.Spawn.MinBatch {
		return errors.New("spawn: batch range is empty")
	}
	if c.Spawn.MinDelayMS <= 0 || c.Spawn.MaxDelayMS < c.Spawn.MinDelayMS {
		return errors.New("spawn: delay range is empty")
	}
	return nil
}

// FlockConfig contains all configuration for the Chicken Flock sandbox.
type FlockConfig struct {
	World   WorldConfig   `yaml:"world"`
	Disc    DiscConfig    `yaml:"disc"`
	Spawn   FlockSpawn    `yaml:"spawn"`
	Click   ClickImpulse  `yaml:"click"`
	Session SessionConfig `yaml:"session"`
}

// DiscConfig defines the material of sandbox discs.
type DiscConfig struct {
	Radius        float64 `yaml:"radius"`
	Mass          float64 `yaml:"mass"`
	Restitution   float64 `yaml:"restitution"`
	Friction      float64 `yaml:"friction"`
	MaxSpawnSpeed float64 `yaml:"max_spawn_speed"` // Horizontal speed drawn from [-max, max]
}

// FlockSpawn defines the disc spawner.
type FlockSpawn struct {
	IntervalMS int `yaml:"interval_ms"`
	MaxBodies  int `yaml:"max_bodies"` // 0 means unlimited
}

// Interval returns the spawn interval as a duration.
func (f FlockSpawn) Interval() time.Duration {
	return core.Millis(f.IntervalMS)
}

// ClickImpulse defines what a click does to a disc.
type ClickImpulse struct {
	Horizontal    float64 `yaml:"horizontal"`     // Impulse x drawn from [-h/2, h/2]
	MinLift       float64 `yaml:"min_lift"`       // Upward impulse lower bound
	MaxLift       float64 `yaml:"max_lift"`       // Upward impulse upper bound
	ExplodeChance float64 `yaml:"explode_chance"` // Probability the disc explodes instead
}

// Validate checks the values the sandbox cannot run without.
func (c FlockConfig) Validate() error {
	if err := c.World.validate(); err != nil {
		return err
	}
	if c.Disc.Radius <= 0 {
		return errors.New("disc: radius must be positive")
	}
	if !(c.Disc.Mass > 0) {
		return errors.New("disc: mass must be positive")
	}
	if c.Spawn.IntervalMS <= 0 {
		return errors.New("spawn: interval_ms must be positive")
	}
	return nil
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
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to speed at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Fraction cut from spawn intervals at max difficulty
	MinIntervalMS     int     `yaml:"min_interval_ms"`    // Spawn intervals never drop below this
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. The empty string keeps the
// config file's own difficulty section.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
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

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies a difficulty section based on a preset.
// The empty preset leaves it untouched.
func ApplyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		d.Enabled = false
		return
	}
	d.Enabled = true
	d.InitialLevel = InitialLevelForPreset(preset)
}
