package gifteroids

import (
	"math"
	"time"

	"github.com/vovakirdan/gifteroids/internal/core"
)

// AgentState is the collision state of the player's ship.
type AgentState int

const (
	AgentNormal AgentState = iota
	AgentInvincible
	AgentDestroyed
)

func (s AgentState) String() string {
	switch s {
	case AgentNormal:
		return "normal"
	case AgentInvincible:
		return "invincible"
	case AgentDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Agent is the player's ship. A world holds at most one.
type Agent struct {
	Pos      core.Vec2
	Velocity core.Vec2
	Heading  float64 // radians, counter-clockwise; 0 points up
	Scale    float64
	Lives    int // spare ships

	State      AgentState
	Invincible time.Duration // remaining grace while State is AgentInvincible
	Cooldown   time.Duration // until the next shot is allowed
}

// NewAgent returns an agent at pos with the grace period running.
func NewAgent(pos core.Vec2, lives int, p AgentParams) *Agent {
	a := &Agent{
		Pos:   pos,
		Scale: p.Scale,
		Lives: lives,
		State: AgentNormal,
	}
	if p.Grace > 0 {
		a.State = AgentInvincible
		a.Invincible = p.Grace
	}
	return a
}

// Forward is +Y rotated by the heading.
func (a *Agent) Forward() core.Vec2 {
	sin, cos := math.Sincos(a.Heading)
	return core.V(-sin, cos)
}

// Right is +X rotated by the heading.
func (a *Agent) Right() core.Vec2 {
	sin, cos := math.Sincos(a.Heading)
	return core.V(cos, sin)
}

// Triangle returns the collision silhouette for a sprite of the given size.
// A is the tip.
func (a *Agent) Triangle(spriteSize float64) core.Triangle {
	fwd := a.Forward()
	right := a.Right()
	half := spriteSize * 0.5 * a.Scale

	return core.Triangle{
		A: a.Pos.Add(fwd.Scale(half)),
		B: a.Pos.Sub(fwd.Sub(right).Scale(half)),
		C: a.Pos.Sub(fwd.Add(right).Scale(half)),
	}
}

// Tick runs down the grace period.
func (a *Agent) Tick(dt time.Duration) {
	if a.State != AgentInvincible {
		return
	}
	a.Invincible -= dt
	if a.Invincible <= 0 {
		a.Invincible = 0
		a.State = AgentNormal
	}
}

// Vulnerable reports whether target collisions are checked this frame.
func (a *Agent) Vulnerable() bool {
	return a.State == AgentNormal
}

// Control applies rotation, thrust and friction for one frame of dt
// seconds. Position integration happens with the other entities.
func (a *Agent) Control(in Input, dt float64, p AgentParams) {
	if in.RotateLeft {
		a.Heading += p.RotationSpeed * dt
	}
	if in.RotateRight {
		a.Heading -= p.RotationSpeed * dt
	}
	a.Heading = math.Mod(a.Heading, 2*math.Pi)

	if in.Thrust {
		a.Velocity = a.Velocity.Add(a.Forward().Scale(p.Acceleration * dt))
	}
	a.Velocity = a.Velocity.Scale(math.Pow(p.Friction, dt))
}
