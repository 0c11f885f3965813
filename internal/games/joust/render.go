package joust

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-joust/internal/core"
	"github.com/vovakirdan/tui-joust/internal/games/joust/sim"
)

// Glyphs
const (
	PlatformChar = '='
	LavaChar     = '~'
	EggChar      = 'o'
	MountChar    = 'Y'
	BorderHoriz  = '─'
	BorderVert   = '│'
)

// riderColors maps each variant to its colour on screen.
var riderColors = [...]core.Color{
	sim.Patrol:  core.ColorRed,
	sim.Pursuit: core.ColorBrightWhite,
	sim.Elite:   core.ColorBrightBlue,
}

func riderColor(k sim.Kind) core.Color {
	if !k.Valid() {
		return core.ColorDefault
	}
	return riderColors[k]
}

// viewport maps world coordinates to screen cells. Row 0 holds the HUD.
type viewport struct {
	w, h   int
	sx, sy float64
}

func (g *Game) viewport(dst *core.Screen) viewport {
	w, h := dst.Width(), dst.Height()-1
	return viewport{
		w:  w,
		h:  h,
		sx: float64(w) / g.env.Bounds.W,
		sy: float64(h) / g.env.Bounds.H,
	}
}

func (v viewport) cell(p core.Vec2) (int, int) {
	return int(p.X * v.sx), 1 + int(p.Y*v.sy)
}

// rect converts a world box to a cell box covering at least one cell.
func (v viewport) rect(r core.RectF) core.Rect {
	x0, y0 := v.cell(core.V(r.Left(), r.Top()))
	x1, y1 := v.cell(core.V(r.Right(), r.Bottom()))
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg, core.ColorDefault)
		dst.DrawTextCentered(dst.Height()/2+1, hint, core.ColorGray)
		return
	}

	v := g.viewport(dst)

	g.renderHUD(dst)
	g.renderPlatforms(dst, v)
	g.renderLava(dst, v)
	g.renderLifecycles(dst, v)
	g.renderAdversaries(dst, v)
	g.renderCharacter(dst, v)
	g.renderPopups(dst, v)
	g.renderOverlay(dst)
}

// renderHUD draws the score, lives and wave.
func (g *Game) renderHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf("Score: %d", g.score)
	dst.DrawTextColored(1, 0, scoreText, core.ColorBrightYellow)

	livesText := "Lives: " + strings.Repeat("♦", min(g.lives, 10))
	dst.DrawTextCentered(0, livesText, core.ColorBrightYellow)

	waveText := fmt.Sprintf("Wave: %d", g.wave)
	if g.mode == ModeCampaign {
		waveText = fmt.Sprintf("Wave: %d/%d", g.wave, len(g.cfg.Waves))
	}
	dst.DrawText(dst.Width()-len(waveText)-1, 0, waveText)
}

func (g *Game) renderPlatforms(dst *core.Screen, v viewport) {
	for _, p := range g.env.Platforms {
		r := v.rect(p.Box)
		dst.DrawRect(r, PlatformChar, core.ColorOrange)
	}
}

func (g *Game) renderLava(dst *core.Screen, v viewport) {
	if g.hazard.Height() <= 0 {
		return
	}
	r := v.rect(g.hazard.Zone())
	dst.DrawRect(r, LavaChar, core.ColorBrightRed)
}

func (g *Game) renderLifecycles(dst *core.Screen, v viewport) {
	for _, l := range g.lifecycles {
		for _, e := range l.VisibleEntities() {
			x, y := v.cell(e.Box.Center())
			switch e.Kind {
			case sim.EntityEgg:
				dst.SetColored(x, y, EggChar, riderColor(e.Rider))
			case sim.EntityMount:
				dst.SetColored(x, y, MountChar, riderColor(e.Rider))
			case sim.EntityCarrier:
				drawFlyer(dst, x, y, e.Facing, e.Anim, core.ColorGreen)
			}
		}
	}
}

func (g *Game) renderAdversaries(dst *core.Screen, v viewport) {
	for _, a := range g.adversaries {
		if !a.IsAlive() {
			continue
		}
		x, y := v.cell(a.Center())
		drawFlyer(dst, x, y, a.Facing(), a.Anim(), riderColor(a.Kind()))
	}
}

func (g *Game) renderCharacter(dst *core.Screen, v viewport) {
	// Blink while the respawn grace lasts
	if g.character.Invulnerable() && (g.tickCount/8)%2 == 1 {
		return
	}
	x, y := v.cell(g.character.Center())
	drawFlyer(dst, x, y, g.character.Facing(), g.character.Anim(), core.ColorBrightYellow)
}

// drawFlyer draws a two-cell rider: the mount's head points where it faces.
func drawFlyer(dst *core.Screen, x, y int, f sim.Facing, anim sim.AnimState, c core.Color) {
	body := 'o'
	switch anim {
	case sim.AnimFlap:
		body = '^'
	case sim.AnimAir:
		body = 'v'
	}
	if f == sim.FacingLeft {
		dst.SetColored(x-1, y, '<', c)
		dst.SetColored(x, y, body, c)
		return
	}
	dst.SetColored(x-1, y, body, c)
	dst.SetColored(x, y, '>', c)
}

func (g *Game) renderPopups(dst *core.Screen, v viewport) {
	for _, p := range g.popups {
		x, y := v.cell(p.pos)
		dst.DrawTextColored(x, y-1, p.text, core.ColorBrightGreen)
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateBanner:
		subtitle := g.waveKind.String()
		if g.wave == 1 {
			subtitle = "PREPARE TO JOUST"
		}
		if subtitle == "" {
			subtitle = "BUZZARD BAIT!"
		}
		g.drawCenteredBox(dst, fmt.Sprintf("WAVE %d", g.wave), subtitle)

	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateWin:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "YOU WIN!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background and border
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawHLine(boxX, boxY, boxW, BorderHoriz, core.ColorGray)
	dst.DrawHLine(boxX, boxY+boxH-1, boxW, BorderHoriz, core.ColorGray)
	for y := boxY + 1; y < boxY+boxH-1; y++ {
		dst.SetColored(boxX, y, BorderVert, core.ColorGray)
		dst.SetColored(boxX+boxW-1, y, BorderVert, core.ColorGray)
	}

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorBrightYellow)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
