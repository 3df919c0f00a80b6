package gui

import (
	"image/color"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

// Cell size of Ebiten's debug font.
const (
	debugGlyphW = 6
	debugGlyphH = 16
)

var (
	colBackground = color.RGBA{R: 8, G: 10, B: 24, A: 255}
	colUnit       = color.RGBA{R: 90, G: 220, B: 110, A: 255}
	colShip       = color.RGBA{R: 80, G: 200, B: 240, A: 255}
	colProjectile = color.RGBA{R: 245, G: 90, B: 200, A: 255}
	colButton     = color.RGBA{R: 167, G: 66, B: 245, A: 255}
	colBorder     = color.RGBA{R: 255, G: 255, B: 255, A: 200}
	colShade      = color.RGBA{R: 0, G: 0, B: 0, A: 140}
)

var spriteColors = map[invaders.SpriteKind]color.Color{
	invaders.SpriteUnit:       colUnit,
	invaders.SpriteShip:       colShip,
	invaders.SpriteProjectile: colProjectile,
	invaders.SpriteButton:     colButton,
}

func fillRect(dst *ebiten.Image, r core.Rect, c color.Color) {
	vector.FillRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// Draw renders the world, the HUD and, while no game runs, the start button.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)

	gs := g.ctrl.GameState()
	var button *core.Rect
	for _, s := range g.ctrl.Sprites() {
		if s.Kind == invaders.SpriteButton {
			r := s.Rect
			button = &r
			continue
		}
		fillRect(screen, s.Rect, spriteColors[s.Kind])
	}

	ebitenutil.DebugPrintAt(screen, invaders.HUD(gs), 8, 4)

	if gs.Paused {
		msg := "SHIP LOST"
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		ebitenutil.DebugPrintAt(screen, msg, (w-len(msg)*debugGlyphW)/2, h/2)
	}
	if button != nil {
		g.drawStartScreen(screen, *button)
	}
}

func (g *Game) drawStartScreen(screen *ebiten.Image, btn core.Rect) {
	w := screen.Bounds().Dx()
	vector.FillRect(screen, 0, 0, float32(w), float32(screen.Bounds().Dy()), colShade, false)

	fillRect(screen, btn, colButton)
	vector.StrokeRect(screen, float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), 2, colBorder, false)

	centered := func(text string, y int) {
		ebitenutil.DebugPrintAt(screen, text, (w-len(text)*debugGlyphW)/2, y)
	}

	centered("Play", btn.Y+(btn.H-debugGlyphH)/2)
	centered("ALIEN INVASION", btn.Y-3*debugGlyphH)
	centered("Click Play or press ENTER  |  arrows move  |  SPACE fire  |  Q quit", btn.Bottom()+debugGlyphH)

	if score, ok := g.ctrl.LastScore(); ok {
		centered("GAME OVER  final score "+humanize.Comma(int64(score)), btn.Bottom()+3*debugGlyphH)
	}
}
