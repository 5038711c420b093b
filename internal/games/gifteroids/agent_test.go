package gifteroids

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/gifteroids/internal/core"
)

func TestAgentFrame(t *testing.T) {
	a := &Agent{}
	if got := a.Forward(); got != core.V(0, 1) {
		t.Errorf("Forward() = %v, expected (0, 1)", got)
	}
	if got := a.Right(); got != core.V(1, 0) {
		t.Errorf("Right() = %v, expected (1, 0)", got)
	}

	a.Heading = math.Pi / 2
	fwd := a.Forward()
	if !approx(fwd.X, -1) || !approx(fwd.Y, 0) {
		t.Errorf("Forward() at π/2 = %v, expected (-1, 0)", fwd)
	}
}

func TestAgentTriangle(t *testing.T) {
	a := &Agent{Pos: core.V(10, 20), Scale: 0.5}
	tri := a.Triangle(128)

	expected := core.Triangle{
		A: core.V(10, 52),
		B: core.V(42, -12),
		C: core.V(-22, -12),
	}
	if tri != expected {
		t.Errorf("Triangle() = %+v, expected %+v", tri, expected)
	}
}

func TestAgentTriangleFollowsTransform(t *testing.T) {
	a := &Agent{Scale: 0.5}
	before := a.Triangle(128)
	a.Heading = math.Pi
	a.Pos = core.V(5, 0)
	after := a.Triangle(128)

	if !approx(after.A.X, 5) || !approx(after.A.Y, -32) {
		t.Errorf("tip after turning = %v, expected (5, -32)", after.A)
	}
	if before == after {
		t.Error("triangle should be recomputed from the live transform")
	}
}

func TestAgentGrace(t *testing.T) {
	p := DefaultParams().Agent
	p.Grace = time.Second
	a := NewAgent(core.Vec2{}, 3, p)

	if a.State != AgentInvincible || a.Vulnerable() {
		t.Fatalf("new agent State = %v, expected invincible", a.State)
	}

	a.Tick(400 * time.Millisecond)
	if a.State != AgentInvincible || a.Invincible != 600*time.Millisecond {
		t.Errorf("after 400ms: State = %v, remaining = %v", a.State, a.Invincible)
	}

	a.Tick(600 * time.Millisecond)
	if a.State != AgentNormal || !a.Vulnerable() {
		t.Errorf("after grace: State = %v, expected normal", a.State)
	}

	a.Tick(time.Second)
	if a.State != AgentNormal {
		t.Errorf("Tick() should not change a normal agent, got %v", a.State)
	}
}

func TestAgentNoGrace(t *testing.T) {
	p := DefaultParams().Agent
	p.Grace = 0
	if a := NewAgent(core.Vec2{}, 0, p); a.State != AgentNormal {
		t.Errorf("State = %v, expected normal", a.State)
	}
}

func TestAgentControl(t *testing.T) {
	p := DefaultParams().Agent

	a := &Agent{}
	a.Control(Input{RotateLeft: true}, 1, p)
	if !approx(a.Heading, 2) {
		t.Errorf("Heading after 1s left = %v, expected 2", a.Heading)
	}
	a.Control(Input{RotateRight: true}, 1, p)
	if !approx(a.Heading, 0) {
		t.Errorf("Heading after turning back = %v, expected 0", a.Heading)
	}

	a.Control(Input{Thrust: true}, 1, p)
	// 400 px/s² for one second, then halved by friction.
	if !approx(a.Velocity.Y, 200) || !approx(a.Velocity.X, 0) {
		t.Errorf("Velocity = %v, expected (0, 200)", a.Velocity)
	}

	a.Control(Input{}, 1, p)
	if !approx(a.Velocity.Y, 100) {
		t.Errorf("Velocity after coasting = %v, expected (0, 100)", a.Velocity)
	}
}
