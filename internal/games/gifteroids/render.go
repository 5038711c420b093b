package gifteroids

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/vovakirdan/gifteroids/internal/core"
)

// Visual characters for rendering
const (
	AgentEdgeChar  = '·'
	AgentTipChar   = '▲'
	ProjectileChar = 'o'
	SantaEdgeChar  = '='
	LifeChar       = '♥'
	BorderHoriz    = '─'
)

// blinkPeriod is the on/off period of the agent while invincible.
const blinkPeriod = 150 * time.Millisecond

// tierStyle returns the outline glyph and color of a tier.
func tierStyle(t Tier) (rune, core.Color) {
	switch t {
	case TierLarge:
		return '#', core.ColorRed
	case TierMedium:
		return '+', core.ColorGreen
	default:
		return '*', core.ColorYellow
	}
}

// projection maps world coordinates (y up, origin centred) onto screen
// cells below the HUD rows.
type projection struct {
	vp     core.Viewport
	top    int
	cols   int
	rows   int
	scaleX float64
	scaleY float64
}

func newProjection(vp core.Viewport, dst *core.Screen, hudRows int) projection {
	cols := dst.Width()
	rows := dst.Height() - hudRows
	return projection{
		vp:     vp,
		top:    hudRows,
		cols:   cols,
		rows:   rows,
		scaleX: float64(cols-1) / vp.Width(),
		scaleY: float64(rows-1) / vp.Height(),
	}
}

func (p projection) cell(v core.Vec2) (int, int) {
	x := (v.X - p.vp.Left) * p.scaleX
	y := (p.vp.Top - v.Y) * p.scaleY
	return int(math.Round(x)), p.top + int(math.Round(y))
}

// visible reports whether a cell lies in the playfield, not on the HUD.
func (p projection) visible(x, y int) bool {
	return x >= 0 && x < p.cols && y >= p.top && y < p.top+p.rows
}

func (p projection) line(dst *core.Screen, s core.Segment, r rune, c core.Color) {
	x0, y0 := p.cell(s.A)
	x1, y1 := p.cell(s.B)
	// Keep the HUD clean: clip rows above the playfield.
	if y0 < p.top && y1 < p.top {
		return
	}
	if y0 < p.top || y1 < p.top {
		p.clippedLine(dst, x0, y0, x1, y1, r, c)
		return
	}
	dst.DrawLine(x0, y0, x1, y1, r, c)
}

// clippedLine plots a line cell by cell, skipping anything above the
// playfield. Only used for the rare segment crossing the HUD.
func (p projection) clippedLine(dst *core.Screen, x0, y0, x1, y1 int, r rune, c core.Color) {
	steps := max(core.Abs(x1-x0), core.Abs(y1-y0))
	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		x := int(math.Round(float64(x0) + t*float64(x1-x0)))
		y := int(math.Round(float64(y0) + t*float64(y1-y0)))
		if p.visible(x, y) {
			dst.SetColor(x, y, r, c)
		}
	}
}

func (p projection) point(dst *core.Screen, v core.Vec2, r rune, c core.Color) {
	x, y := p.cell(v)
	if p.visible(x, y) {
		dst.SetColor(x, y, r, c)
	}
}

// Render draws the current game state into the provided screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)

	proj := newProjection(g.world.Viewport(), dst, 2)
	renderWorld(dst, proj, g.world)

	g.renderOverlay(dst)
}

// renderHUD draws score, lives and wave on the first row and a separator
// below them.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", g.score.Points()), core.ColorBrightWhite)

	lives := "Lives: " + strings.Repeat(string(LifeChar), g.lives)
	if g.lives == 0 {
		lives = "Lives: -"
	}
	x := (dst.Width() - len([]rune(lives))) / 2
	dst.DrawTextColor(x, 0, lives, core.ColorBrightRed)

	var waveText string
	if g.mode == ModeEndless {
		waveText = fmt.Sprintf("Wave: %d", g.wave)
	} else {
		waveText = fmt.Sprintf("Gifts: %d", g.world.Targets.Len())
	}
	dst.DrawText(dst.Width()-len(waveText)-1, 0, waveText)

	for x := range dst.Width() {
		dst.SetColor(x, 1, BorderHoriz, core.ColorGray)
	}
}

// renderWorld draws every entity. Outlines follow the collision shapes, so
// what you see is what gets hit.
func renderWorld(dst *core.Screen, proj projection, w *World) {
	for _, t := range w.Targets.All() {
		glyph, color := tierStyle(t.Tier)
		for _, e := range t.Box.Edges(t.Pos) {
			proj.line(dst, e, glyph, color)
		}
	}

	for _, s := range w.Santas.All() {
		half := w.params.Santa.HalfSize
		box := core.OrientedBox{Axis0: core.V(half.X, 0), Axis1: core.V(0, half.Y)}
		for _, e := range box.Edges(s.Pos) {
			proj.line(dst, e, SantaEdgeChar, core.ColorBrightRed)
		}
		label := "SANTA>"
		if !s.FacingRight() {
			label = "<SANTA"
		}
		x, y := proj.cell(s.Pos)
		x -= len(label) / 2
		for i, r := range label {
			if proj.visible(x+i, y) {
				dst.SetColor(x+i, y, r, core.ColorBrightWhite)
			}
		}
	}

	for _, p := range w.Projectiles.All() {
		proj.point(dst, p.Pos, ProjectileChar, core.ColorBrightWhite)
	}

	if a := w.Agent; a != nil && agentVisible(a) {
		tri := a.Triangle(w.params.Agent.SpriteSize)
		for _, e := range tri.Edges() {
			proj.line(dst, e, AgentEdgeChar, core.ColorCyan)
		}
		proj.point(dst, tri.A, AgentTipChar, core.ColorBrightCyan)
	}
}

// agentVisible blinks the agent while the grace period runs.
func agentVisible(a *Agent) bool {
	if a.State != AgentInvincible {
		return true
	}
	return (a.Invincible/blinkPeriod)%2 == 0
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	midY := dst.Height() / 2

	switch {
	case g.phase == PhaseGameOver:
		dst.DrawTextCentered(midY-1, "GAME OVER")
		dst.DrawTextCentered(midY, fmt.Sprintf("Final Score: %d", g.score.Points()))
		dst.DrawTextCentered(midY+2, "Press R to restart, Q to quit")
	case g.phase == PhaseWon:
		dst.DrawTextCentered(midY-1, "ALL GIFTS CLEARED!")
		dst.DrawTextCentered(midY, fmt.Sprintf("Final Score: %d", g.score.Points()))
		dst.DrawTextCentered(midY+2, "Press R to play again, Q to quit")
	case g.paused:
		dst.DrawTextCentered(midY, "PAUSED")
		dst.DrawTextCentered(midY+2, "Press P to resume")
	case g.phase == PhaseRespawning:
		dst.DrawTextCentered(midY, "Get ready...")
	}
}
