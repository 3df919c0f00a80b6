package invaders

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// SpriteKind identifies what a sprite depicts.
type SpriteKind int

const (
	SpriteUnit SpriteKind = iota
	SpriteShip
	SpriteProjectile
	SpriteButton
)

// Sprite is a drawable rectangle in world pixels.
type Sprite struct {
	Kind SpriteKind
	Rect core.Rect
}

// Sprites lists everything visible in drawing order: units, projectiles, the
// ship, and the start button while inactive.
func (c *Controller) Sprites() []Sprite {
	units := c.fleet.Units()
	shots := c.arsenal.Projectiles()
	out := make([]Sprite, 0, len(units)+len(shots)+2)

	for _, u := range units {
		out = append(out, Sprite{Kind: SpriteUnit, Rect: u.Bounds()})
	}
	for _, p := range shots {
		out = append(out, Sprite{Kind: SpriteProjectile, Rect: p.Bounds()})
	}
	out = append(out, Sprite{Kind: SpriteShip, Rect: c.ship.Bounds()})
	if c.state == StateInactive {
		out = append(out, Sprite{Kind: SpriteButton, Rect: c.StartButton()})
	}
	return out
}

// Terminal rendering constants.
const (
	MinRenderWidth  = 40
	MinRenderHeight = 12

	hudRows = 1

	unitChar       = 'W'
	shipChar       = '▲'
	projectileChar = '|'
	lifeChar       = '▲'
)

// HUD formats the score line shown above the playfield.
func HUD(gs GameState) string {
	return fmt.Sprintf(" SCORE %s  HI %s  MAX %s  LEVEL %d  %s",
		humanize.Comma(int64(gs.Score)),
		humanize.Comma(int64(gs.HiScore)),
		humanize.Comma(int64(gs.MaxScore)),
		gs.Level,
		strings.Repeat(string(lifeChar), max(gs.ShipsLeft, 0)),
	)
}

// viewport maps world pixels to terminal cells below the HUD.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(dst *core.Screen, worldW, worldH int) viewport {
	return viewport{
		sx:  float64(dst.Width()) / float64(max(worldW, 1)),
		sy:  float64(dst.Height()-hudRows) / float64(max(worldH, 1)),
		top: hudRows,
	}
}

// cells converts a world rect to a cell rect at least one cell in each direction.
func (v viewport) cells(r core.Rect) core.Rect {
	x0 := int(float64(r.X) * v.sx)
	y0 := int(float64(r.Y) * v.sy)
	x1 := int(float64(r.Right()) * v.sx)
	y1 := int(float64(r.Bottom()) * v.sy)
	return core.NewRect(x0, y0+v.top, max(x1-x0, 1), max(y1-y0, 1))
}

// Render draws the game into a terminal screen. The world is scaled to fit
// the area below the HUD row.
func (c *Controller) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinRenderWidth || dst.Height() < MinRenderHeight {
		msg := fmt.Sprintf("Terminal too small (%dx%d)", dst.Width(), dst.Height())
		dst.DrawTextCentered(dst.Height()/2, msg)
		return
	}

	gs := c.GameState()
	dst.DrawTextColor(0, 0, HUD(gs), core.ColorBrightWhite)

	vp := newViewport(dst, c.cfg.Screen.Width, c.cfg.Screen.Height)

	for _, u := range c.fleet.Units() {
		r := vp.cells(u.Bounds())
		// Leave a gap column so neighbouring units stay distinguishable.
		if r.W > 1 {
			r.W--
		}
		dst.DrawRectColor(r, unitChar, core.ColorGreen)
	}

	for _, p := range c.arsenal.Projectiles() {
		r := vp.cells(p.Bounds())
		cx, _ := r.Center()
		dst.DrawRectColor(core.NewRect(cx, r.Y, 1, r.H), projectileChar, core.ColorMagenta)
	}

	dst.DrawRectColor(vp.cells(c.ship.Bounds()), shipChar, core.ColorCyan)

	switch {
	case c.state == StateInactive:
		c.renderStartScreen(dst)
	case gs.Paused:
		dst.DrawTextColor((dst.Width()-len("SHIP LOST"))/2, dst.Height()/2, "SHIP LOST", core.ColorRed)
	}
}

// ButtonCells returns where the start button is drawn on a terminal screen of
// the given size. The button is widened to fit its label and is at least
// three rows tall so its box is visible.
func (c *Controller) ButtonCells(dst *core.Screen) core.Rect {
	vp := newViewport(dst, c.cfg.Screen.Width, c.cfg.Screen.Height)
	btn := vp.cells(c.StartButton())
	w := max(btn.W, len(buttonLabel)+2)
	h := max(btn.H, 3)
	return core.NewRect(dst.Width()/2-w/2, btn.Y+btn.H/2-h/2, w, h)
}

const buttonLabel = " Play "

func (c *Controller) renderStartScreen(dst *core.Screen) {
	btn := c.ButtonCells(dst)

	dst.DrawRectColor(btn, ' ', core.ColorDefault)
	dst.DrawBox(btn)
	dst.DrawTextColor(btn.X+(btn.W-len(buttonLabel))/2, btn.Y+btn.H/2, buttonLabel, core.ColorGreen)

	title := "ALIEN INVASION"
	dst.DrawTextColor((dst.Width()-len(title))/2, max(btn.Y-3, hudRows+1), title, core.ColorYellow)

	hint := "ENTER or P to play  |  ←/→ move  |  SPACE fire  |  Q quit"
	dst.DrawTextColor((dst.Width()-len([]rune(hint)))/2, btn.Bottom()+1, hint, core.ColorGray)

	if score, ok := c.LastScore(); ok {
		over := "GAME OVER  final score " + humanize.Comma(int64(score))
		dst.DrawTextColor((dst.Width()-len(over))/2, btn.Bottom()+3, over, core.ColorRed)
	}
}
