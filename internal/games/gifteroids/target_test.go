package gifteroids

import (
	"math"
	"testing"

	"github.com/vovakirdan/gifteroids/internal/core"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTierProgression(t *testing.T) {
	tests := []struct {
		tier     Tier
		next     Tier
		ok       bool
		scale    float64
		speed    float64
		terminal bool
	}{
		{TierLarge, TierMedium, true, 1, 1, false},
		{TierMedium, TierSmall, true, 0.5, 2, false},
		{TierSmall, TierSmall, false, 0.25, 3, true},
	}

	for _, tc := range tests {
		t.Run(tc.tier.String(), func(t *testing.T) {
			next, ok := tc.tier.Next()
			if next != tc.next || ok != tc.ok {
				t.Errorf("Next() = %v, %v, expected %v, %v", next, ok, tc.next, tc.ok)
			}
			if got := tc.tier.Scale(); got != tc.scale {
				t.Errorf("Scale() = %v, expected %v", got, tc.scale)
			}
			if got := tc.tier.SpeedFactor(); got != tc.speed {
				t.Errorf("SpeedFactor() = %v, expected %v", got, tc.speed)
			}
			if got := tc.tier.Terminal(); got != tc.terminal {
				t.Errorf("Terminal() = %v, expected %v", got, tc.terminal)
			}
		})
	}
}

func TestNewTargetDerivedFromTier(t *testing.T) {
	p := DefaultParams().Target

	for _, tier := range []Tier{TierLarge, TierMedium, TierSmall} {
		tgt := NewTarget(newRNG(7), core.V(5, 5), tier, p)

		if tgt.Pos != core.V(5, 5) {
			t.Errorf("%v: Pos = %v, expected (5, 5)", tier, tgt.Pos)
		}
		if want := p.BaseSpeed * float64(tier+1); !approx(tgt.Velocity.Length(), want) {
			t.Errorf("%v: speed = %v, expected %v", tier, tgt.Velocity.Length(), want)
		}
		if want := 46 * tier.Scale(); !approx(tgt.Box.Axis0.Length(), want) {
			t.Errorf("%v: |axis0| = %v, expected %v", tier, tgt.Box.Axis0.Length(), want)
		}
		if want := 64 * tier.Scale(); !approx(tgt.Box.Axis1.Length(), want) {
			t.Errorf("%v: |axis1| = %v, expected %v", tier, tgt.Box.Axis1.Length(), want)
		}
		if tgt.Heading < 0 || tgt.Heading >= 2*math.Pi {
			t.Errorf("%v: Heading = %v, expected [0, 2π)", tier, tgt.Heading)
		}
	}
}

func TestNewTargetSameSeedSameTarget(t *testing.T) {
	p := DefaultParams().Target
	a := NewTarget(newRNG(42), core.Vec2{}, TierMedium, p)
	b := NewTarget(newRNG(42), core.Vec2{}, TierMedium, p)
	if a != b {
		t.Errorf("same seed produced %+v and %+v", a, b)
	}
}

func TestSpawnRoundKeepsClearance(t *testing.T) {
	p := DefaultParams()
	vp := core.NewViewport(p.ViewportW, p.ViewportH)

	targets := SpawnRound(newRNG(p.RoundSeed), vp, p.TargetCount, p.Clearance, p.Target)
	if len(targets) != 8 {
		t.Fatalf("SpawnRound() returned %d targets, expected 8", len(targets))
	}
	for i, tgt := range targets {
		ax, ay := math.Abs(tgt.Pos.X), math.Abs(tgt.Pos.Y)
		if ax < 80 || ax >= 640 || ay < 80 || ay >= 360 {
			t.Errorf("target %d at %v outside the spawn band", i, tgt.Pos)
		}
		if tgt.Tier != TierLarge {
			t.Errorf("target %d tier = %v, expected large", i, tgt.Tier)
		}
	}
}

func TestSpawnRoundReproducible(t *testing.T) {
	p := DefaultParams()
	vp := core.NewViewport(p.ViewportW, p.ViewportH)

	a := SpawnRound(newRNG(123), vp, 8, 80, p.Target)
	b := SpawnRound(newRNG(123), vp, 8, 80, p.Target)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("target %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSplit(t *testing.T) {
	p := DefaultParams().Target
	parent := NewTarget(newRNG(1), core.V(100, -50), TierLarge, p)

	children := Split(newRNG(8), parent, p)
	if len(children) != 2 {
		t.Fatalf("Split(large) returned %d children, expected 2", len(children))
	}
	for i, c := range children {
		if c.Tier != TierMedium {
			t.Errorf("child %d tier = %v, expected medium", i, c.Tier)
		}
		if c.Pos != parent.Pos {
			t.Errorf("child %d Pos = %v, expected %v", i, c.Pos, parent.Pos)
		}
		if !approx(c.Box.Axis0.Length(), parent.Box.Axis0.Length()/2) {
			t.Errorf("child %d should have half the parent's linear size", i)
		}
		if !approx(c.Velocity.Length(), 2*parent.Velocity.Length()) {
			t.Errorf("child %d speed = %v, expected %v", i, c.Velocity.Length(), 2*parent.Velocity.Length())
		}
	}
	if children[0].Heading == children[1].Heading {
		t.Error("children should draw independent headings")
	}

	small := NewTarget(newRNG(1), core.Vec2{}, TierSmall, p)
	if got := Split(newRNG(8), small, p); len(got) != 0 {
		t.Errorf("Split(small) returned %d children, expected 0", len(got))
	}
}
