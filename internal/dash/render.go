package dash

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-dash/internal/core"
)

// Display glyphs.
const (
	GroundChar   = '▔'
	TriangleChar = '▲'
	BlockChar    = '█'
	CoinChar     = '●'
)

const hudRows = 1

// paintColor maps obstacle paints onto terminal colors. Black would vanish
// on most terminal backgrounds, so it is drawn gray.
func paintColor(p Paint) core.Color {
	switch p {
	case PaintRed:
		return core.ColorRed
	case PaintBlue:
		return core.ColorBlue
	default:
		return core.ColorGray
	}
}

// viewport scales world coordinates onto the playfield below the HUD.
type viewport struct {
	sx, sy float64
	top    int
	w, h   int
}

func (l *RunLoop) viewport(dst *core.Screen) viewport {
	fieldH := dst.Height() - hudRows
	if fieldH < 1 {
		fieldH = 1
	}
	return viewport{
		sx:  float64(dst.Width()) / l.cfg.World.Width,
		sy:  float64(fieldH) / l.cfg.World.Height,
		top: hudRows,
		w:   dst.Width(),
		h:   fieldH,
	}
}

// cells converts a world box to a screen rect covering at least one cell.
func (v viewport) cells(b core.RectF) core.Rect {
	x0 := int(math.Floor(b.X * v.sx))
	y0 := int(math.Floor(b.Y * v.sy))
	x1 := int(math.Ceil(b.Right()*v.sx)) - 1
	y1 := int(math.Ceil(b.Bottom()*v.sy)) - 1
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	y0 = core.Clamp(y0, 0, v.h-1)
	y1 = core.Clamp(y1, 0, v.h-1)
	return core.NewRect(x0, y0+v.top, x1-x0+1, y1-y0+1)
}

// Render draws the current run to the screen.
func (l *RunLoop) Render(dst *core.Screen) {
	dst.Clear()
	vp := l.viewport(dst)

	ground := vp.cells(core.NewRectF(0, l.cfg.GroundY()+l.cfg.Player.Height, l.cfg.World.Width, 1))
	dst.DrawHLine(0, ground.Y, dst.Width(), GroundChar)

	for _, o := range l.obstacles {
		r := vp.cells(o.Box)
		glyph := BlockChar
		if o.Shape == ShapeTriangle {
			glyph = TriangleChar
		}
		dst.DrawRect(r, glyph, paintColor(o.Paint))
	}

	for _, c := range l.coins {
		r := vp.cells(c.Box)
		dst.SetColored(r.X, r.Y, CoinChar, core.ColorYellow)
	}

	p := vp.cells(l.player.Box)
	dst.DrawRect(p, l.skin.Glyph, l.skin.Color)

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d  Lives: %d  Coins: %d", l.score, l.player.Lives, l.record.Coins))
	speed := fmt.Sprintf("%s  Spd %.1f", l.tier.Title(), l.difficulty.Speed())
	dst.DrawText(dst.Width()-len(speed)-1, 0, speed)

	switch {
	case l.state == StatePaused:
		drawCenteredMessage(dst, "Game Paused", "Press P to Resume or ESC to Quit")
	case l.outcome == OutcomeDefeat:
		drawCenteredMessage(dst, "Game Over!", fmt.Sprintf("Score: %d", l.score))
	case l.outcome == OutcomeVictory:
		drawCenteredMessage(dst, "Ай молодчинка!", "Прям чувствовал, что выиграешь!")
	}
}

// drawCenteredMessage draws a two-line message box in the middle of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	tw := len([]rune(title))
	sw := len([]rune(subtitle))
	boxW := core.Max(tw, sw) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-tw)/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-sw)/2, box.Y+3, subtitle)
}
