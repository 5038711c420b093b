package gifteroids

import (
	"time"

	"github.com/vovakirdan/gifteroids/internal/config"
)

// Score starts high and bleeds points every second, so clearing quickly
// pays. Destroyed targets and santas add to it.
type Score struct {
	cfg     config.ScoreConfig
	points  int
	elapsed time.Duration
	decayed int // seconds already charged
}

// NewScore returns a score at its initial value.
func NewScore(cfg config.ScoreConfig) *Score {
	return &Score{cfg: cfg, points: cfg.Initial}
}

// Points returns the current score.
func (s *Score) Points() int {
	return s.points
}

// Tick charges the per-second decay for every full second of play. The
// score never goes below zero.
func (s *Score) Tick(dt time.Duration) {
	s.elapsed += dt
	for full := int(s.elapsed / time.Second); s.decayed < full; s.decayed++ {
		s.points = max(s.points-s.cfg.DecayPerSecond, 0)
	}
}

// Apply credits the events of one frame and returns the points gained.
func (s *Score) Apply(ev Events) int {
	gained := 0
	for _, td := range ev.TargetsDestroyed {
		gained += s.cfg.TargetPoints
		if td.Terminal {
			gained += s.cfg.TerminalBonus
		}
	}
	gained += ev.SantasDestroyed * s.cfg.SantaPoints
	s.points += gained
	return gained
}
