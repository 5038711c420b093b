// Package gifteroids implements an asteroids-style shooter: the player's
// ship throws snowballs at drifting gift boxes that split when hit.
package gifteroids

import (
	"fmt"
	"time"

	"github.com/vovakirdan/gifteroids/internal/config"
	"github.com/vovakirdan/gifteroids/internal/core"
	"github.com/vovakirdan/gifteroids/internal/registry"
)

// Phase is the round state.
type Phase int

const (
	PhasePlaying    Phase = iota // Agent on screen
	PhaseRespawning              // Agent lost, replacement pending
	PhaseGameOver                // No ships left
	PhaseWon                     // Every target cleared (campaign only)
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseRespawning:
		return "respawning"
	case PhaseGameOver:
		return "gameover"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // One round, win by clearing it
	ModeEndless                  // Waves grow until the ships run out
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Stats counts what happened during one game.
type Stats struct {
	TargetsDestroyed int
	SantasDestroyed  int
	ShipsLost        int
	ShotsFired       int
}

// Game implements registry.Game on top of a World.
type Game struct {
	mode GameMode

	world *World
	score *Score
	stats Stats

	phase     Phase
	paused    bool
	lives     int
	wave      int
	respawnIn time.Duration
	tickCount int
	dt        time.Duration

	runtime    core.RuntimeConfig
	cfg        config.GifteroidsConfig
	params     Params
	difficulty *config.DifficultyManager
	configErr  error

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new Gifteroids game instance (campaign mode).
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new Gifteroids game instance in endless mode.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "gifteroids_endless"
	}
	return "gifteroids"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Gifteroids (Endless)"
	}
	return "Gifteroids"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadGifteroids(configPath)
	if err != nil {
		cfg = config.DefaultGifteroidsConfig()
	}
	g.configErr = err
	config.ApplyGifteroidsPreset(&cfg, difficultyPreset)
	g.ResetWithConfig(runtime, cfg)
}

// ResetWithConfig restarts the game with an explicit config, bypassing the
// file search.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.GifteroidsConfig) {
	g.runtime = runtime
	g.cfg = cfg
	g.params = ParamsFromConfig(cfg)
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.dt = frameDuration(runtime.TickRate)

	g.minScreenW = 40
	g.minScreenH = 16
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.world = NewWorld(g.params)
	g.score = NewScore(cfg.Score)
	g.stats = Stats{}
	g.phase = PhasePlaying
	g.paused = false
	g.lives = cfg.Agent.Lives
	g.wave = 1
	g.respawnIn = 0
	g.tickCount = 0

	g.startWave()
	g.world.SpawnAgent(g.lives)
}

// Resize updates the screen size the game renders for. The simulation
// itself does not depend on it beyond the too-small check.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < g.minScreenW || h < g.minScreenH
}

// frameDuration is one tick at tickRate, rounded up to the next
// nanosecond so that N frames never fall short of N/tickRate seconds. A
// 0.25s cooldown at 60 fps then takes 15 frames, not 16.
func frameDuration(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	rate := time.Duration(tickRate)
	return (time.Second + rate - 1) / rate
}

// ConfigError returns the error from the last config load, if the game
// fell back to defaults because of it.
func (g *Game) ConfigError() error {
	return g.configErr
}

// startWave lays out the targets of the current wave.
func (g *Game) startWave() {
	count := g.params.TargetCount
	if g.mode == ModeEndless {
		count += (g.wave - 1) * g.cfg.Round.WaveGrowth
		if limit := g.cfg.Round.MaxTargets; limit > 0 && count > limit {
			count = limit
		}
	}

	g.world.SetTargetSpeed(g.difficulty.Speed(g.params.Target.BaseSpeed, g.wave, g.tickCount))
	g.world.SetSantaInterval(seconds(g.difficulty.Interval(g.cfg.Santa.Interval, g.wave, g.tickCount)))
	g.world.StartRound(count, g.waveSeed())
}

// waveSeed keeps the first wave on the configured layout. Later waves mix
// in the runtime seed so endless games differ from each other.
func (g *Game) waveSeed() uint64 {
	if g.wave <= 1 {
		return g.params.RoundSeed
	}
	return g.params.RoundSeed + uint64(g.runtime.Seed) + uint64(g.wave) //#nosec G115 -- seed mixing
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.ended() {
		g.ResetWithConfig(g.runtime, g.cfg)
		return core.StepResult{State: g.State(), Notes: []string{"game restarted"}}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.ended() {
		g.paused = !g.paused
	}

	if g.paused || g.ended() {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	var notes []string

	if g.phase == PhaseRespawning {
		g.respawnIn -= g.dt
		if g.respawnIn <= 0 {
			g.world.SpawnAgent(g.lives)
			g.phase = PhasePlaying
			notes = append(notes, fmt.Sprintf("agent respawned lives=%d", g.lives))
		}
	}

	ev := g.world.Step(g.dt, inputFrom(in))
	g.score.Tick(g.dt)
	g.score.Apply(ev)

	g.stats.ShotsFired += ev.ProjectilesFired
	g.stats.TargetsDestroyed += len(ev.TargetsDestroyed)
	g.stats.SantasDestroyed += ev.SantasDestroyed
	for _, td := range ev.TargetsDestroyed {
		notes = append(notes, fmt.Sprintf("target destroyed tier=%s terminal=%t", td.Tier, td.Terminal))
	}
	if ev.SantasDestroyed > 0 {
		notes = append(notes, fmt.Sprintf("santa destroyed count=%d", ev.SantasDestroyed))
	}

	if ad := ev.AgentDestroyed; ad != nil {
		g.stats.ShipsLost++
		if ad.LivesBefore == 0 {
			g.lives = 0
			g.phase = PhaseGameOver
			notes = append(notes, fmt.Sprintf("game over score=%d wave=%d", g.score.Points(), g.wave))
		} else {
			g.lives = ad.LivesBefore - 1
			g.respawnIn = seconds(g.cfg.Agent.RespawnDelay)
			g.phase = PhaseRespawning
			notes = append(notes, fmt.Sprintf("agent destroyed lives=%d", ad.LivesBefore))
		}
	}

	if ev.Cleared {
		notes = append(notes, fmt.Sprintf("wave %d cleared", g.wave))
		if g.mode == ModeEndless {
			g.wave++
			g.startWave()
		} else {
			g.phase = PhaseWon
		}
	}

	return core.StepResult{State: g.State(), Notes: notes}
}

func (g *Game) ended() bool {
	return g.phase == PhaseGameOver || g.phase == PhaseWon
}

func inputFrom(in core.InputFrame) Input {
	return Input{
		RotateLeft:  in.Has(core.ActionRotateLeft),
		RotateRight: in.Has(core.ActionRotateRight),
		Thrust:      in.Has(core.ActionThrust),
		Fire:        in.Has(core.ActionFire),
	}
}

// State returns the current game state. GameOver is also set after a win
// so the platform records the score either way.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score.Points(),
		Lives:    g.lives,
		Wave:     g.wave,
		GameOver: g.ended(),
		Won:      g.phase == PhaseWon,
		Paused:   g.paused,
	}
}

// Phase returns the round phase.
func (g *Game) Phase() Phase { return g.phase }

// World exposes the simulation, for rendering and tests.
func (g *Game) World() *World { return g.world }

// Stats returns counters for the current game.
func (g *Game) Stats() Stats { return g.stats }

// Register the game with the registry
func init() {
	registry.Register("gifteroids", func() registry.Game {
		return New()
	})
	registry.Register("gifteroids_endless", func() registry.Game {
		return NewEndless()
	})
}
