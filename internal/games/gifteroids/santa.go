package gifteroids

import (
	"math"
	"time"

	"github.com/vovakirdan/gifteroids/internal/core"
)

// Santa crosses the screen once, dropping Medium targets behind him.
// Shooting him is worth a bonus.
type Santa struct {
	Pos      core.Vec2
	Velocity core.Vec2

	LastDrop    time.Duration
	DropCounter uint64 // seeds each drop; incremented before use
}

// FacingRight reports the direction of travel.
func (s Santa) FacingRight() bool {
	return s.Velocity.X > 0
}

type santaSpawner struct {
	lastSpawn  time.Duration
	generation uint64
}

// newSanta places generation gen just outside the left or right edge at a
// random height.
func newSanta(gen uint64, now time.Duration, vp core.Viewport, p SantaParams) Santa {
	rng := newRNG(p.Seed + gen)
	fromLeft := rng.Intn(2) == 1

	x := (vp.Width() + p.SpriteSize) * 0.5
	vel := core.V(p.Speed, 0)
	if fromLeft {
		x = -x
	} else {
		vel = vel.Scale(-1)
	}
	h := vp.Height()
	y := randomRange(rng, -h+p.SpriteSize, h-p.SpriteSize) * 0.5

	return Santa{
		Pos:         core.V(x, y),
		Velocity:    vel,
		LastDrop:    now,
		DropCounter: gen * 10,
	}
}

// stepSantas spawns, despawns, drops and hit-tests santas. Runs after the
// target passes so a projectile consumed there cannot also score a santa.
func (w *World) stepSantas(ev *Events) {
	p := w.params.Santa
	if !p.Enabled {
		return
	}

	if w.clock-w.spawner.lastSpawn >= w.santaInterval {
		w.spawner.lastSpawn = w.clock
		w.spawner.generation++
		w.cmds.SpawnSanta(newSanta(w.spawner.generation, w.clock, w.viewport, p))
	}

	limit := w.viewport.Right + p.SpriteSize
	for sh, s := range w.Santas.All() {
		if math.Abs(s.Pos.X) > limit {
			w.cmds.DestroySanta(sh)
			continue
		}

		if w.santaHit(sh, s, p) {
			ev.SantasDestroyed++
			continue
		}

		if w.clock-s.LastDrop > p.DropInterval {
			s.LastDrop = w.clock
			s.DropCounter++
			w.cmds.SpawnTarget(NewTarget(newRNG(s.DropCounter), s.Pos, TierMedium, w.params.Target))
		}
	}
}

func (w *World) santaHit(sh Handle, s *Santa, p SantaParams) bool {
	for ph, proj := range w.Projectiles.All() {
		if w.cmds.ProjectileDestroyed(ph) {
			continue
		}
		if core.PointInAABB(s.Pos, p.HalfSize, proj.Pos) {
			w.cmds.DestroySanta(sh)
			w.cmds.DestroyProjectile(ph)
			return true
		}
	}
	return false
}
