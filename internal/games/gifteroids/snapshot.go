package gifteroids

import (
	"fmt"
	"math"
	"strings"
)

// Snapshot is a comparable summary of a game. Positions are rounded to
// whole world units so snapshots from identical runs compare equal.
type Snapshot struct {
	Tick  uint64
	Phase string
	Wave  int
	Score int
	Lives int

	Targets     int
	Projectiles int
	Santas      int

	AgentState string // "absent" when there is no agent
	AgentX     int
	AgentY     int

	// Each target is 3 ints: X, Y, Tier
	TargetData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	snap := Snapshot{
		Tick:        w.Ticks(),
		Phase:       g.phase.String(),
		Wave:        g.wave,
		Score:       g.score.Points(),
		Lives:       g.lives,
		Targets:     w.Targets.Len(),
		Projectiles: w.Projectiles.Len(),
		Santas:      w.Santas.Len(),
		AgentState:  "absent",
	}

	if a := w.Agent; a != nil {
		snap.AgentState = a.State.String()
		snap.AgentX = round(a.Pos.X)
		snap.AgentY = round(a.Pos.Y)
	}

	snap.TargetData = make([]int, 0, w.Targets.Len()*3)
	for _, t := range w.Targets.All() {
		snap.TargetData = append(snap.TargetData, round(t.Pos.X), round(t.Pos.Y), int(t.Tier))
	}
	return snap
}

func round(v float64) int {
	return int(math.Round(v))
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Wave)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Targets)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Projectiles) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Santas)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AgentX)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AgentY)      //#nosec G115 -- hash computation

	for _, s := range []string{snap.Phase, snap.AgentState} {
		for _, b := range []byte(s) {
			h = h*31 + uint64(b)
		}
	}

	for _, v := range snap.TargetData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}

// String formats the snapshot on one line.
func (snap Snapshot) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "tick=%d phase=%s wave=%d score=%d lives=%d", snap.Tick, snap.Phase, snap.Wave, snap.Score, snap.Lives)
	fmt.Fprintf(&sb, " targets=%d projectiles=%d santas=%d", snap.Targets, snap.Projectiles, snap.Santas)
	fmt.Fprintf(&sb, " agent=%s", snap.AgentState)
	if snap.AgentState != "absent" {
		fmt.Fprintf(&sb, "@(%d,%d)", snap.AgentX, snap.AgentY)
	}
	return sb.String()
}
