package config

import (
	_ "embed"
)

//go:embed defaults/gifteroids.yaml
var defaultGifteroidsYAML []byte

// DefaultGifteroidsConfig returns the default Gifteroids configuration.
func DefaultGifteroidsConfig() GifteroidsConfig {
	return GifteroidsConfig{
		Viewport: ViewportConfig{
			Width:  1280,
			Height: 720,
		},
		Targets: TargetConfig{
			Count:      8,
			Seed:       123,
			Clearance:  80,
			BaseSpeed:  50,
			HalfWidth:  46, // measured from the gift sprite
			HalfHeight: 64,
		},
		Agent: AgentConfig{
			SpriteSize:    128,
			Scale:         0.5,
			Acceleration:  400,
			RotationSpeed: 2,
			Friction:      0.5,
			Lives:         3,
			Grace:         3,
			RespawnDelay:  1.5,
		},
		Projectiles: ProjectileConfig{
			Speed:    500,
			Radius:   8,
			Cooldown: 0.25,
			Lifetime: 1.5,
		},
		Santa: SantaConfig{
			Enabled:      true,
			Interval:     8,
			Speed:        300,
			SpriteSize:   128,
			HalfWidth:    64,
			HalfHeight:   16,
			DropInterval: 0.8,
			Seed:         12345,
		},
		Score: ScoreConfig{
			Initial:        5000,
			DecayPerSecond: 50,
			TargetPoints:   100,
			TerminalBonus:  0,
			SantaPoints:    500,
		},
		Round: RoundConfig{
			WaveGrowth: 2,
			MaxTargets: 24,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "wave",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				IntervalReduction: 4,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "gifteroids", "gifteroids_endless":
		return defaultGifteroidsYAML
	default:
		return nil
	}
}
