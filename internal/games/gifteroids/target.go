package gifteroids

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/gifteroids/internal/core"
)

// Tier is the size class of a target. Larger values are smaller boxes.
type Tier int

const (
	TierLarge Tier = iota
	TierMedium
	TierSmall
)

// Next returns the tier of the children produced when a target of tier t
// is destroyed. ok is false for the terminal tier.
func (t Tier) Next() (next Tier, ok bool) {
	if t.Terminal() {
		return t, false
	}
	return t + 1, true
}

// Terminal reports whether destroying a target of this tier ends its line.
func (t Tier) Terminal() bool {
	return t >= TierSmall
}

// Scale is 0.5^tier.
func (t Tier) Scale() float64 {
	return math.Pow(0.5, float64(t))
}

// SpeedFactor is tier+1: medium targets move twice as fast as large ones.
func (t Tier) SpeedFactor() float64 {
	return float64(t + 1)
}

func (t Tier) String() string {
	switch t {
	case TierLarge:
		return "large"
	case TierMedium:
		return "medium"
	case TierSmall:
		return "small"
	default:
		return "unknown"
	}
}

// Target is a destructible gift box.
type Target struct {
	Pos      core.Vec2
	Velocity core.Vec2
	Heading  float64 // sprite rotation, fixed at spawn
	Tier     Tier
	Box      core.OrientedBox
}

// NewTarget creates a target at pos. Two values are drawn from rng, the
// sprite heading then the movement heading, both uniform in [0, 2π).
func NewTarget(rng *rand.Rand, pos core.Vec2, tier Tier, p TargetParams) Target {
	heading := rng.Float64() * 2 * math.Pi
	movement := rng.Float64() * 2 * math.Pi

	half := p.HalfExtent.Scale(tier.Scale())
	return Target{
		Pos:      pos,
		Velocity: core.FromAngle(movement).Scale(p.BaseSpeed * tier.SpeedFactor()),
		Heading:  heading,
		Tier:     tier,
		Box:      core.NewOrientedBox(half.X, half.Y, heading),
	}
}

// SpawnRound lays out count Large targets. Each coordinate is drawn from
// [clearance, half viewport) with a random sign, so the area around the
// origin where the agent spawns stays free.
func SpawnRound(rng *rand.Rand, vp core.Viewport, count int, clearance float64, p TargetParams) []Target {
	targets := make([]Target, 0, count)
	for range count {
		x := randomRange(rng, clearance, vp.Right) * randomSign(rng)
		y := randomRange(rng, clearance, vp.Top) * randomSign(rng)
		targets = append(targets, NewTarget(rng, core.V(x, y), TierLarge, p))
	}
	return targets
}

// Split returns the children of a destroyed target: two targets of the next
// tier at the parent position, or nothing for the terminal tier. Both
// children draw from the same rng.
func Split(rng *rand.Rand, parent Target, p TargetParams) []Target {
	next, ok := parent.Tier.Next()
	if !ok {
		return nil
	}
	return []Target{
		NewTarget(rng, parent.Pos, next, p),
		NewTarget(rng, parent.Pos, next, p),
	}
}

// randomRange returns a value in [lo, hi).
func randomRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func randomSign(rng *rand.Rand) float64 {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
