package gifteroids

import "slices"

// Commands buffers entity mutations raised while the world is being
// iterated. Nothing is touched until Apply.
type Commands struct {
	destroyTargets     []Handle
	destroyProjectiles []Handle
	destroySantas      []Handle
	destroyAgent       bool

	spawnTargets     []Target
	spawnProjectiles []Projectile
	spawnSantas      []Santa
}

// DestroyTarget queues removal of a target. Repeated calls are ignored.
func (c *Commands) DestroyTarget(h Handle) {
	c.destroyTargets = appendUnique(c.destroyTargets, h)
}

// DestroyProjectile queues removal of a projectile.
func (c *Commands) DestroyProjectile(h Handle) {
	c.destroyProjectiles = appendUnique(c.destroyProjectiles, h)
}

// DestroySanta queues removal of a santa.
func (c *Commands) DestroySanta(h Handle) {
	c.destroySantas = appendUnique(c.destroySantas, h)
}

// DestroyAgent queues removal of the agent.
func (c *Commands) DestroyAgent() {
	c.destroyAgent = true
}

// SpawnTarget queues a new target.
func (c *Commands) SpawnTarget(t Target) {
	c.spawnTargets = append(c.spawnTargets, t)
}

// SpawnProjectile queues a new projectile.
func (c *Commands) SpawnProjectile(p Projectile) {
	c.spawnProjectiles = append(c.spawnProjectiles, p)
}

// SpawnSanta queues a new santa.
func (c *Commands) SpawnSanta(s Santa) {
	c.spawnSantas = append(c.spawnSantas, s)
}

// TargetDestroyed reports whether h is already queued for removal in this
// frame.
func (c *Commands) TargetDestroyed(h Handle) bool {
	return slices.Contains(c.destroyTargets, h)
}

// ProjectileDestroyed reports whether h is already queued for removal.
func (c *Commands) ProjectileDestroyed(h Handle) bool {
	return slices.Contains(c.destroyProjectiles, h)
}

// Empty reports whether nothing is queued.
func (c *Commands) Empty() bool {
	return len(c.destroyTargets) == 0 && len(c.destroyProjectiles) == 0 &&
		len(c.destroySantas) == 0 && !c.destroyAgent &&
		len(c.spawnTargets) == 0 && len(c.spawnProjectiles) == 0 && len(c.spawnSantas) == 0
}

// Apply performs the queued removals, then the queued spawns, in the order
// they were recorded, and empties the buffer.
func (c *Commands) Apply(w *World) {
	for _, h := range c.destroyTargets {
		w.Targets.Remove(h)
	}
	for _, h := range c.destroyProjectiles {
		w.Projectiles.Remove(h)
	}
	for _, h := range c.destroySantas {
		w.Santas.Remove(h)
	}
	if c.destroyAgent {
		w.Agent = nil
	}

	for _, t := range c.spawnTargets {
		w.Targets.Insert(t)
	}
	for _, p := range c.spawnProjectiles {
		w.Projectiles.Insert(p)
	}
	for _, s := range c.spawnSantas {
		w.Santas.Insert(s)
	}

	c.reset()
}

func (c *Commands) reset() {
	c.destroyTargets = c.destroyTargets[:0]
	c.destroyProjectiles = c.destroyProjectiles[:0]
	c.destroySantas = c.destroySantas[:0]
	c.destroyAgent = false
	c.spawnTargets = c.spawnTargets[:0]
	c.spawnProjectiles = c.spawnProjectiles[:0]
	c.spawnSantas = c.spawnSantas[:0]
}

func appendUnique(hs []Handle, h Handle) []Handle {
	if slices.Contains(hs, h) {
		return hs
	}
	return append(hs, h)
}
