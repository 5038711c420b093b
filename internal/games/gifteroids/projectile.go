package gifteroids

import (
	"time"

	"github.com/vovakirdan/gifteroids/internal/core"
)

// Projectile is a snowball fired by the agent.
type Projectile struct {
	Pos       core.Vec2
	Velocity  core.Vec2
	SpawnedAt time.Duration // world clock at spawn
}

// Expired reports whether the projectile has lived longer than lifetime at
// world time now. A projectile exactly lifetime old is still alive.
func (p Projectile) Expired(now, lifetime time.Duration) bool {
	return now-p.SpawnedAt > lifetime
}

// fire spawns a projectile at the agent's tip if the fire edge is set and
// the cooldown has run out. The cooldown is ticked here, once per frame.
func fire(a *Agent, pressed bool, now, dt time.Duration, p ProjectileParams, ap AgentParams, cmds *Commands) bool {
	a.Cooldown = max(a.Cooldown-dt, 0)
	if !pressed || a.Cooldown > 0 {
		return false
	}

	tri := a.Triangle(ap.SpriteSize)
	cmds.SpawnProjectile(Projectile{
		Pos:       tri.A,
		Velocity:  a.Forward().Scale(p.Speed),
		SpawnedAt: now,
	})
	a.Cooldown = p.Cooldown
	return true
}
