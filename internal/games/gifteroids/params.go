package gifteroids

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/gifteroids/internal/config"
	"github.com/vovakirdan/gifteroids/internal/core"
)

// Params are the simulation constants of one world, converted from the
// YAML config into world units and durations.
type Params struct {
	ViewportW float64
	ViewportH float64

	Target      TargetParams
	TargetCount int
	RoundSeed   uint64
	Clearance   float64

	Agent      AgentParams
	Projectile ProjectileParams
	Santa      SantaParams
}

// TargetParams describe a Large target; smaller tiers derive from them.
type TargetParams struct {
	BaseSpeed  float64
	HalfExtent core.Vec2
}

// AgentParams control the ship.
type AgentParams struct {
	SpriteSize    float64
	Scale         float64
	Acceleration  float64
	RotationSpeed float64
	Friction      float64
	Grace         time.Duration
}

// ProjectileParams control snowballs.
type ProjectileParams struct {
	Speed    float64
	Radius   float64
	Cooldown time.Duration
	Lifetime time.Duration
}

// SantaParams control the bonus carrier.
type SantaParams struct {
	Enabled      bool
	Interval     time.Duration
	DropInterval time.Duration
	Speed        float64
	SpriteSize   float64
	HalfSize     core.Vec2
	Seed         uint64
}

// ParamsFromConfig converts a loaded config.
func ParamsFromConfig(cfg config.GifteroidsConfig) Params {
	return Params{
		ViewportW: cfg.Viewport.Width,
		ViewportH: cfg.Viewport.Height,
		Target: TargetParams{
			BaseSpeed:  cfg.Targets.BaseSpeed,
			HalfExtent: core.V(cfg.Targets.HalfWidth, cfg.Targets.HalfHeight),
		},
		TargetCount: cfg.Targets.Count,
		RoundSeed:   cfg.Targets.Seed,
		Clearance:   cfg.Targets.Clearance,
		Agent: AgentParams{
			SpriteSize:    cfg.Agent.SpriteSize,
			Scale:         cfg.Agent.Scale,
			Acceleration:  cfg.Agent.Acceleration,
			RotationSpeed: cfg.Agent.RotationSpeed,
			Friction:      cfg.Agent.Friction,
			Grace:         seconds(cfg.Agent.Grace),
		},
		Projectile: ProjectileParams{
			Speed:    cfg.Projectiles.Speed,
			Radius:   cfg.Projectiles.Radius,
			Cooldown: seconds(cfg.Projectiles.Cooldown),
			Lifetime: seconds(cfg.Projectiles.Lifetime),
		},
		Santa: SantaParams{
			Enabled:      cfg.Santa.Enabled,
			Interval:     seconds(cfg.Santa.Interval),
			DropInterval: seconds(cfg.Santa.DropInterval),
			Speed:        cfg.Santa.Speed,
			SpriteSize:   cfg.Santa.SpriteSize,
			HalfSize:     core.V(cfg.Santa.HalfWidth, cfg.Santa.HalfHeight),
			Seed:         cfg.Santa.Seed,
		},
	}
}

// DefaultParams returns the parameters of the built-in config.
func DefaultParams() Params {
	return ParamsFromConfig(config.DefaultGifteroidsConfig())
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// newRNG returns a generator whose sequence depends only on seed.
func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(int64(seed))) //#nosec G115,G404 -- deterministic gameplay RNG
}
