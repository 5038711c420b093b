package gifteroids

import (
	"time"

	"github.com/vovakirdan/gifteroids/internal/core"
)

// Input is the agent's control state for one frame. Fire is an edge: set
// it only on the frame the button went down.
type Input struct {
	RotateLeft  bool
	RotateRight bool
	Thrust      bool
	Fire        bool
}

// TargetDestroyed is emitted once per target removed by a projectile.
type TargetDestroyed struct {
	Tier     Tier
	Terminal bool
	Pos      core.Vec2
}

// AgentDestroyedEvent is emitted when the agent hits a target. LivesBefore is
// the spare-ship count before the loss is taken into account.
type AgentDestroyedEvent struct {
	LivesBefore int
	Pos         core.Vec2
}

// Events is everything that happened during one Step.
type Events struct {
	TargetsDestroyed []TargetDestroyed
	AgentDestroyed   *AgentDestroyedEvent // at most one per frame
	SantasDestroyed  int
	ProjectilesFired int
	Cleared          bool // the last target went away this frame
}

// World owns every entity and advances them one frame at a time. It does
// no I/O and is not safe for concurrent use.
type World struct {
	Targets     Arena[Target]
	Projectiles Arena[Projectile]
	Santas      Arena[Santa]
	Agent       *Agent // nil between destruction and respawn

	params   Params
	viewport core.Viewport

	clock time.Duration
	ticks uint64

	spawner       santaSpawner
	santaInterval time.Duration

	cleared bool
	cmds    Commands
}

// NewWorld returns an empty world.
func NewWorld(p Params) *World {
	return &World{
		params:        p,
		viewport:      core.NewViewport(p.ViewportW, p.ViewportH),
		santaInterval: p.Santa.Interval,
	}
}

// Params returns the world's current parameters.
func (w *World) Params() Params { return w.params }

// Viewport returns the visible area in world units.
func (w *World) Viewport() core.Viewport { return w.viewport }

// Clock returns simulated time since the world was created.
func (w *World) Clock() time.Duration { return w.clock }

// Ticks returns the number of steps taken.
func (w *World) Ticks() uint64 { return w.ticks }

// SetTargetSpeed changes the Large-tier speed used for targets spawned from
// now on.
func (w *World) SetTargetSpeed(speed float64) {
	w.params.Target.BaseSpeed = speed
}

// SetSantaInterval changes the time between santa appearances.
func (w *World) SetSantaInterval(d time.Duration) {
	w.santaInterval = d
}

// StartRound removes every target, projectile and santa and lays out count
// fresh targets from seed. The agent is left alone.
func (w *World) StartRound(count int, seed uint64) {
	w.Targets.Clear()
	w.Projectiles.Clear()
	w.Santas.Clear()

	rng := newRNG(seed)
	for _, t := range SpawnRound(rng, w.viewport, count, w.params.Clearance, w.params.Target) {
		w.Targets.Insert(t)
	}
	w.cleared = false
	w.spawner.lastSpawn = w.clock
}

// SpawnAgent places a new agent at the origin, replacing any existing one.
func (w *World) SpawnAgent(lives int) *Agent {
	w.Agent = NewAgent(core.Vec2{}, lives, w.params.Agent)
	return w.Agent
}

// AddTarget inserts a target immediately.
func (w *World) AddTarget(t Target) Handle {
	w.cleared = false
	return w.Targets.Insert(t)
}

// AddProjectile inserts a projectile immediately.
func (w *World) AddProjectile(p Projectile) Handle {
	return w.Projectiles.Insert(p)
}

// Step advances the world by dt.
//
// Order: clock and grace timer, control and movement, screen wrap, firing
// and expiry, projectile hits, agent hits, santas, then the buffered
// removals and spawns. Collision passes only read the arenas; everything
// they decide lands in the command buffer.
func (w *World) Step(dt time.Duration, in Input) Events {
	var ev Events
	secs := dt.Seconds()

	w.clock += dt
	w.ticks++
	if w.Agent != nil {
		w.Agent.Tick(dt)
		w.Agent.Control(in, secs, w.params.Agent)
	}

	w.integrate(secs)
	w.wrap()

	if w.Agent != nil && fire(w.Agent, in.Fire, w.clock, dt, w.params.Projectile, w.params.Agent, &w.cmds) {
		ev.ProjectilesFired++
	}
	w.expireProjectiles()

	w.projectileHits(&ev)
	w.agentHits(&ev)
	w.stepSantas(&ev)

	w.cmds.Apply(w)

	if w.Targets.Len() == 0 && !w.cleared {
		w.cleared = true
		ev.Cleared = true
	}
	return ev
}

func (w *World) integrate(dt float64) {
	for _, t := range w.Targets.All() {
		t.Pos = t.Pos.Add(t.Velocity.Scale(dt))
	}
	for _, p := range w.Projectiles.All() {
		p.Pos = p.Pos.Add(p.Velocity.Scale(dt))
	}
	for _, s := range w.Santas.All() {
		s.Pos = s.Pos.Add(s.Velocity.Scale(dt))
	}
	if a := w.Agent; a != nil {
		a.Pos = a.Pos.Add(a.Velocity.Scale(dt))
	}
}

// wrap moves entities that left the screen to the opposite edge. Santas
// are not wrapped; they leave for good.
func (w *World) wrap() {
	vp := w.viewport
	for _, t := range w.Targets.All() {
		t.Pos = vp.WrapBox(t.Pos, t.Box.HalfExtent())
	}
	for _, p := range w.Projectiles.All() {
		p.Pos = vp.WrapPoint(p.Pos, w.params.Projectile.Radius)
	}
	if a := w.Agent; a != nil {
		a.Pos = vp.WrapTriangle(a.Pos, a.Triangle(w.params.Agent.SpriteSize))
	}
}

func (w *World) expireProjectiles() {
	for h, p := range w.Projectiles.All() {
		if p.Expired(w.clock, w.params.Projectile.Lifetime) {
			w.cmds.DestroyProjectile(h)
		}
	}
}

// projectileHits tests every live projectile against every target. A
// target takes at most one projectile per frame and a projectile hits at
// most one target. Children of every split in this frame draw in turn from
// one RNG seeded with the target population counted before the pass.
func (w *World) projectileHits(ev *Events) {
	rng := newRNG(uint64(w.Targets.Len())) //#nosec G115 -- Len is never negative

	for th, t := range w.Targets.All() {
		for ph, p := range w.Projectiles.All() {
			if w.cmds.ProjectileDestroyed(ph) {
				continue
			}
			if !core.PointInOrientedBox(t.Box, t.Pos, p.Pos) {
				continue
			}

			w.cmds.DestroyTarget(th)
			w.cmds.DestroyProjectile(ph)
			for _, child := range Split(rng, *t, w.params.Target) {
				w.cmds.SpawnTarget(child)
			}
			ev.TargetsDestroyed = append(ev.TargetsDestroyed, TargetDestroyed{
				Tier:     t.Tier,
				Terminal: t.Tier.Terminal(),
				Pos:      t.Pos,
			})
			break
		}
	}
}

// agentHits checks the agent's triangle against every target still alive
// this frame and stops at the first hit. The target survives.
func (w *World) agentHits(ev *Events) {
	a := w.Agent
	if a == nil || !a.Vulnerable() {
		return
	}

	tri := a.Triangle(w.params.Agent.SpriteSize)
	for th, t := range w.Targets.All() {
		if w.cmds.TargetDestroyed(th) {
			continue
		}
		if core.TriangleIntersectsBox(tri, t.Box, t.Pos) {
			a.State = AgentDestroyed
			ev.AgentDestroyed = &AgentDestroyedEvent{LivesBefore: a.Lives, Pos: a.Pos}
			w.cmds.DestroyAgent()
			return
		}
	}
}
