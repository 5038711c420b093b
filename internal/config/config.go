// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
)

// GifteroidsConfig contains all configuration for a Gifteroids session.
// Distances are world units (pixels of the virtual viewport), times are
// seconds.
type GifteroidsConfig struct {
	Viewport    ViewportConfig   `yaml:"viewport"`
	Targets     TargetConfig     `yaml:"targets"`
	Agent       AgentConfig      `yaml:"agent"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
	Santa       SantaConfig      `yaml:"santa"`
	Score       ScoreConfig      `yaml:"score"`
	Round       RoundConfig      `yaml:"round"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
}

// ViewportConfig is the size of the virtual world, centred on the origin.
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// TargetConfig defines the gift boxes.
type TargetConfig struct {
	Count      int     `yaml:"count"`       // Targets at round start
	Seed       uint64  `yaml:"seed"`        // Fixed round layout seed
	Clearance  float64 `yaml:"clearance"`   // Free area around the spawn point
	BaseSpeed  float64 `yaml:"base_speed"`  // Speed of a large target
	HalfWidth  float64 `yaml:"half_width"`  // Half extent of a large target
	HalfHeight float64 `yaml:"half_height"` // Half extent of a large target
}

// AgentConfig defines the player's ship.
type AgentConfig struct {
	SpriteSize    float64 `yaml:"sprite_size"`
	Scale         float64 `yaml:"scale"`
	Acceleration  float64 `yaml:"acceleration"`
	RotationSpeed float64 `yaml:"rotation_speed"` // Radians per second
	Friction      float64 `yaml:"friction"`       // Velocity factor kept after one second
	Lives         int     `yaml:"lives"`          // Spare ships
	Grace         float64 `yaml:"grace"`          // Invincibility after spawning
	RespawnDelay  float64 `yaml:"respawn_delay"`
}

// ProjectileConfig defines snowballs.
type ProjectileConfig struct {
	Speed    float64 `yaml:"speed"`
	Radius   float64 `yaml:"radius"`
	Cooldown float64 `yaml:"cooldown"`
	Lifetime float64 `yaml:"lifetime"`
}

// SantaConfig defines the bonus carrier that crosses the screen.
type SantaConfig struct {
	Enabled      bool    `yaml:"enabled"`
	Interval     float64 `yaml:"interval"`
	Speed        float64 `yaml:"speed"`
	SpriteSize   float64 `yaml:"sprite_size"`
	HalfWidth    float64 `yaml:"half_width"`
	HalfHeight   float64 `yaml:"half_height"`
	DropInterval float64 `yaml:"drop_interval"`
	Seed         uint64  `yaml:"seed"`
}

// ScoreConfig defines how points are awarded.
type ScoreConfig struct {
	Initial        int `yaml:"initial"`
	DecayPerSecond int `yaml:"decay_per_second"`
	TargetPoints   int `yaml:"target_points"`
	TerminalBonus  int `yaml:"terminal_bonus"`
	SantaPoints    int `yaml:"santa_points"`
}

// RoundConfig defines endless mode progression.
type RoundConfig struct {
	WaveGrowth int `yaml:"wave_growth"` // Extra targets per wave
	MaxTargets int `yaml:"max_targets"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "wave", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Wave or tick at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to target speed at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Seconds cut from the santa interval at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. The empty string means
// no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
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
		return DefaultGifteroidsConfig().Difficulty.InitialLevel
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

// Validate reports the first setting that would make the simulation
// meaningless.
func (c GifteroidsConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Viewport.Width > 0 && c.Viewport.Height > 0,
		"viewport must be positive, got %vx%v", c.Viewport.Width, c.Viewport.Height)
	check(c.Targets.Count > 0, "targets.count must be positive, got %d", c.Targets.Count)
	check(c.Targets.BaseSpeed > 0, "targets.base_speed must be positive, got %v", c.Targets.BaseSpeed)
	check(c.Targets.HalfWidth > 0 && c.Targets.HalfHeight > 0, "targets half extents must be positive")
	check(c.Targets.Clearance >= 0 &&
		c.Targets.Clearance < c.Viewport.Width/2 && c.Targets.Clearance < c.Viewport.Height/2,
		"targets.clearance %v must fit inside half the viewport", c.Targets.Clearance)
	check(c.Agent.SpriteSize > 0 && c.Agent.Scale > 0, "agent sprite size and scale must be positive")
	check(c.Agent.Lives >= 0, "agent.lives must not be negative, got %d", c.Agent.Lives)
	check(c.Agent.Friction > 0 && c.Agent.Friction <= 1, "agent.friction must be in (0, 1], got %v", c.Agent.Friction)
	check(c.Projectiles.Speed > 0, "projectiles.speed must be positive, got %v", c.Projectiles.Speed)
	check(c.Projectiles.Lifetime > 0, "projectiles.lifetime must be positive, got %v", c.Projectiles.Lifetime)
	check(c.Projectiles.Cooldown >= 0, "projectiles.cooldown must not be negative, got %v", c.Projectiles.Cooldown)
	if c.Santa.Enabled {
		check(c.Santa.Interval > 0 && c.Santa.DropInterval > 0, "santa intervals must be positive")
		check(c.Santa.Speed > 0, "santa.speed must be positive, got %v", c.Santa.Speed)
	}
	check(c.Round.WaveGrowth >= 0, "round.wave_growth must not be negative, got %d", c.Round.WaveGrowth)

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid gifteroids config: %w", err)
	}
	return nil
}
