package gifteroids

import (
	"strings"
	"testing"

	"github.com/vovakirdan/gifteroids/internal/config"
	"github.com/vovakirdan/gifteroids/internal/core"
	"github.com/vovakirdan/gifteroids/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

func newTestGame(t *testing.T, mode GameMode, mutate func(*config.GifteroidsConfig)) *Game {
	t.Helper()
	cfg := config.DefaultGifteroidsConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	g := &Game{mode: mode}
	g.ResetWithConfig(testRuntime(), cfg)
	return g
}

// isolate replaces the round layout with a single static target.
func isolate(g *Game, tgt Target) {
	g.World().Targets.Clear()
	g.World().AddTarget(tgt)
}

func TestGameDeterminism(t *testing.T) {
	// Turn, thrust and fire in a fixed pattern for 20 seconds.
	inputSequence := make([]core.InputFrame, 1200)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		switch {
		case i%90 < 20:
			inputSequence[i].Set(core.ActionRotateLeft)
		case i%90 < 35:
			inputSequence[i].Set(core.ActionThrust)
		}
		if i%15 == 0 {
			inputSequence[i].Set(core.ActionFire)
		}
	}

	run := func() Snapshot {
		g := newTestGame(t, ModeEndless, nil)
		for _, in := range inputSequence {
			if result := g.Step(in); result.State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.String() != snap2.String() {
		t.Errorf("Determinism failed:\n%s\n%s", snap1, snap2)
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)

	state := g.State()
	if state.Score != 5000 || state.Lives != 3 || state.Wave != 1 {
		t.Errorf("State() = %+v, expected score 5000, 3 lives, wave 1", state)
	}
	if state.GameOver || state.Paused {
		t.Error("new game should be running")
	}
	if g.Phase() != PhasePlaying {
		t.Errorf("Phase() = %v, expected playing", g.Phase())
	}
	if g.World().Targets.Len() != 8 {
		t.Errorf("Targets.Len() = %d, expected 8", g.World().Targets.Len())
	}
	a := g.World().Agent
	if a == nil || a.State != AgentInvincible || a.Pos != (core.Vec2{}) {
		t.Errorf("Agent = %+v, expected invincible at origin", a)
	}
}

func TestGameSameLayoutEveryRound(t *testing.T) {
	g1 := newTestGame(t, ModeCampaign, nil)

	rt := testRuntime()
	rt.Seed = 999
	g2 := New()
	g2.ResetWithConfig(rt, config.DefaultGifteroidsConfig())

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if len(s1.TargetData) != len(s2.TargetData) {
		t.Fatalf("TargetData lengths differ: %d vs %d", len(s1.TargetData), len(s2.TargetData))
	}
	for i := range s1.TargetData {
		if s1.TargetData[i] != s2.TargetData[i] {
			t.Fatalf("round layout differs at %d: %v vs %v", i, s1.TargetData, s2.TargetData)
		}
	}
}

func TestGameRespawn(t *testing.T) {
	g := newTestGame(t, ModeCampaign, func(c *config.GifteroidsConfig) {
		c.Agent.Lives = 2
		c.Agent.Grace = 0
		c.Agent.RespawnDelay = 0.5
	})
	isolate(g, Target{Tier: TierLarge, Pos: core.V(40, 0), Box: core.NewOrientedBox(46, 64, 0)})

	result := g.Step(core.NewInputFrame())
	if g.Phase() != PhaseRespawning {
		t.Fatalf("Phase() = %v, expected respawning", g.Phase())
	}
	if result.State.Lives != 1 {
		t.Errorf("Lives = %d, expected 1", result.State.Lives)
	}
	if g.World().Agent != nil {
		t.Error("agent should be absent while respawning")
	}

	// Move the target out of the way before the replacement arrives.
	for _, tgt := range g.World().Targets.All() {
		tgt.Pos = core.V(400, 200)
	}

	for range 60 {
		g.Step(core.NewInputFrame())
		if g.Phase() == PhasePlaying {
			break
		}
	}
	if g.Phase() != PhasePlaying {
		t.Fatalf("Phase() = %v, expected playing after the respawn delay", g.Phase())
	}
	if a := g.World().Agent; a == nil || a.Lives != 1 {
		t.Errorf("respawned agent = %+v, expected 1 spare life", a)
	}
	if g.Stats().ShipsLost != 1 {
		t.Errorf("ShipsLost = %d, expected 1", g.Stats().ShipsLost)
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame(t, ModeCampaign, func(c *config.GifteroidsConfig) {
		c.Agent.Lives = 0
		c.Agent.Grace = 0
	})
	isolate(g, Target{Tier: TierLarge, Pos: core.V(40, 0), Box: core.NewOrientedBox(46, 64, 0)})

	result := g.Step(core.NewInputFrame())
	if !result.State.GameOver || result.State.Won {
		t.Fatalf("State() = %+v, expected game over", result.State)
	}
	if g.Phase() != PhaseGameOver {
		t.Errorf("Phase() = %v, expected gameover", g.Phase())
	}
	if len(result.Notes) == 0 || !strings.Contains(result.Notes[len(result.Notes)-1], "game over") {
		t.Errorf("Notes = %v, expected a game over note", result.Notes)
	}

	// Stepping after game over changes nothing.
	before := g.Snapshot()
	g.Step(core.NewInputFrame())
	if after := g.Snapshot(); after.Hash() != before.Hash() {
		t.Error("game should be frozen after game over")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)
	if g.Phase() != PhasePlaying || g.World().Targets.Len() != 8 {
		t.Errorf("after restart: Phase() = %v, targets = %d", g.Phase(), g.World().Targets.Len())
	}
}

func TestCampaignWin(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)
	isolate(g, Target{Tier: TierSmall, Pos: core.V(300, 200), Box: core.NewOrientedBox(11.5, 16, 0)})
	g.World().AddProjectile(Projectile{Pos: core.V(300, 200)})

	result := g.Step(core.NewInputFrame())

	if !result.State.Won || !result.State.GameOver {
		t.Errorf("State() = %+v, expected a win", result.State)
	}
	if result.State.Score != 5100 {
		t.Errorf("Score = %d, expected 5100", result.State.Score)
	}
}

func TestEndlessNextWave(t *testing.T) {
	g := newTestGame(t, ModeEndless, nil)
	isolate(g, Target{Tier: TierSmall, Pos: core.V(300, 200), Box: core.NewOrientedBox(11.5, 16, 0)})
	g.World().AddProjectile(Projectile{Pos: core.V(300, 200)})

	result := g.Step(core.NewInputFrame())

	if result.State.GameOver {
		t.Fatal("endless mode should not end when a wave is cleared")
	}
	if result.State.Wave != 2 {
		t.Errorf("Wave = %d, expected 2", result.State.Wave)
	}
	if g.World().Targets.Len() != 10 {
		t.Errorf("Targets.Len() = %d, expected 8 + 2", g.World().Targets.Len())
	}
	if g.World().Params().Target.BaseSpeed <= 50 {
		t.Errorf("wave 2 target speed = %v, expected faster than wave 1", g.World().Params().Target.BaseSpeed)
	}
}

func TestEndlessWaveCap(t *testing.T) {
	g := newTestGame(t, ModeEndless, func(c *config.GifteroidsConfig) {
		c.Round.MaxTargets = 9
	})
	g.wave = 5
	g.startWave()
	if g.World().Targets.Len() != 9 {
		t.Errorf("Targets.Len() = %d, expected the cap of 9", g.World().Targets.Len())
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}
	tick := g.World().Ticks()
	g.Step(core.NewInputFrame())
	if g.World().Ticks() != tick {
		t.Error("world should not advance while paused")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("game should resume")
	}
}

func TestScreenTooSmall(t *testing.T) {
	g := &Game{}
	rt := testRuntime()
	rt.ScreenW = 20
	g.ResetWithConfig(rt, config.DefaultGifteroidsConfig())

	g.Step(core.NewInputFrame())
	if g.World().Ticks() != 0 {
		t.Error("game should not run on a tiny screen")
	}

	s := core.NewScreen(20, 24)
	g.Render(s)
	if !strings.Contains(s.String(), "too small") {
		t.Error("expected a too-small message")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)
	s := core.NewScreen(80, 24)
	g.Render(s)

	if !strings.Contains(s.Row(0), "Score: 5000") {
		t.Errorf("HUD row = %q, expected the score", s.Row(0))
	}
	if !strings.Contains(s.Row(0), "Gifts: 8") {
		t.Errorf("HUD row = %q, expected the gift count", s.Row(0))
	}
	if !strings.ContainsRune(s.String(), '#') {
		t.Error("expected large target outlines")
	}
	if !strings.ContainsRune(s.String(), AgentTipChar) {
		t.Error("expected the agent to be drawn at the start of its grace period")
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"gifteroids", "gifteroids_endless"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) error = %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}

func TestResizeKeepsProgress(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)
	for range 30 {
		g.Step(core.NewInputFrame())
	}

	g.Resize(20, 10)
	g.Step(core.NewInputFrame())
	if g.World().Ticks() != 30 {
		t.Errorf("Ticks() = %d, expected the game to hold on a tiny screen", g.World().Ticks())
	}

	g.Resize(120, 40)
	g.Step(core.NewInputFrame())
	if g.World().Ticks() != 31 {
		t.Errorf("Ticks() = %d, expected 31 after growing the screen back", g.World().Ticks())
	}
}
