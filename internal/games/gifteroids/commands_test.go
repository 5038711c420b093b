package gifteroids

import (
	"testing"

	"github.com/vovakirdan/gifteroids/internal/core"
)

func TestCommandsDeferUntilApply(t *testing.T) {
	w := NewWorld(testParams())
	h := w.AddTarget(Target{Tier: TierLarge})

	var c Commands
	c.DestroyTarget(h)
	c.SpawnTarget(Target{Tier: TierMedium})

	if _, ok := w.Targets.Get(h); !ok {
		t.Fatal("target removed before Apply")
	}
	if c.Empty() {
		t.Fatal("Empty() = true with queued commands")
	}

	c.Apply(w)

	if _, ok := w.Targets.Get(h); ok {
		t.Error("target still present after Apply")
	}
	if w.Targets.Len() != 1 {
		t.Errorf("Targets.Len() = %d, expected 1", w.Targets.Len())
	}
	if !c.Empty() {
		t.Error("Apply should empty the buffer")
	}
}

func TestCommandsDestroyIsIdempotent(t *testing.T) {
	w := NewWorld(testParams())
	h := w.AddProjectile(Projectile{})
	other := w.AddProjectile(Projectile{Pos: core.V(1, 1)})

	var c Commands
	c.DestroyProjectile(h)
	c.DestroyProjectile(h)

	if !c.ProjectileDestroyed(h) {
		t.Error("ProjectileDestroyed(h) = false, expected true")
	}
	if c.ProjectileDestroyed(other) {
		t.Error("ProjectileDestroyed(other) = true, expected false")
	}

	c.Apply(w)
	if w.Projectiles.Len() != 1 {
		t.Errorf("Projectiles.Len() = %d, expected 1", w.Projectiles.Len())
	}
}

func TestCommandsRemovalsBeforeSpawns(t *testing.T) {
	w := NewWorld(testParams())
	h := w.AddTarget(Target{Tier: TierLarge})

	var c Commands
	c.SpawnTarget(Target{Tier: TierSmall})
	c.DestroyTarget(h)
	c.Apply(w)

	// The freed slot is reused by the spawn, under a new generation.
	var spawned Handle
	for sh := range w.Targets.All() {
		spawned = sh
	}
	if spawned.Index != h.Index || spawned.Generation == h.Generation {
		t.Errorf("spawned handle = %+v, expected reuse of slot %d with a new generation", spawned, h.Index)
	}
}

func TestCommandsDestroyAgent(t *testing.T) {
	w := NewWorld(testParams())
	w.SpawnAgent(3)

	var c Commands
	c.DestroyAgent()
	c.Apply(w)

	if w.Agent != nil {
		t.Error("Agent should be nil after DestroyAgent")
	}
}
