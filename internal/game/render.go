package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/iburimskiy/perfect-circle/internal/config"
	"github.com/iburimskiy/perfect-circle/internal/scorer"
)

type textAlign int

const (
	alignStart textAlign = iota
	alignCenter
)

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.drawScores(screen)
	g.resetButton.draw(screen, g)
	g.drawCanvas(screen)

	g.hueSlider.draw(screen, g, g.hue, func(pos float64) color.Color {
		return hueColor(pos*360, 255)
	})
	g.widthSlider.draw(screen, g, g.strokeWidth, func(float64) color.Color {
		return hueColor(g.hue, 200)
	})

	status := "Draw a circle - R: reset best, S: save stroke, M: mute, Esc: quit"
	if g.muted {
		status = "Muted - " + status
	}
	if g.lastErr != nil {
		status = "Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, config.WindowHeight-20)
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	const band = 8
	for y := 0; y < config.WindowHeight; y += band {
		ratio := float64(y) / float64(config.WindowHeight)
		c := color.RGBA{
			R: uint8(14 + 10*ratio),
			G: uint8(16 + 12*ratio),
			B: uint8(26 + 22*ratio),
			A: 255,
		}
		vector.DrawFilledRect(screen, 0, float32(y), config.WindowWidth, band, c, false)
	}
}

func (g *Game) drawScores(screen *ebiten.Image) {
	current, ok := g.session.Current()
	scoreColor := color.RGBA{R: 200, G: 205, B: 215, A: 255}
	label := "Draw a circle"
	if ok {
		t := scoreTier(current)
		scoreColor = t.color()
		label = t.label()
	}

	shown := formatScore(g.shownScore, ok)
	if ok {
		shown += "%"
	}
	g.drawText(screen, shown, config.WindowWidth/2, 95, 56, true, scoreColor, alignCenter)
	g.drawText(screen, label, config.WindowWidth/2, 140, 18, false, scoreColor, alignCenter)

	high, hasHigh := g.session.High()
	g.drawText(screen, "Best: "+formatScore(high, hasHigh), 20, 60, 18, true, color.White, alignStart)
	g.drawText(screen, fmt.Sprintf("Attempts: %d", g.session.Attempts()), 20, 84, 14, false,
		color.RGBA{R: 160, G: 165, B: 180, A: 255}, alignStart)
}

func (g *Game) drawCanvas(screen *ebiten.Image) {
	x, y, size := float32(config.CanvasX), float32(config.CanvasY), float32(config.CanvasSize)

	vector.DrawFilledRect(screen, x, y, size, size, color.RGBA{R: 245, G: 245, B: 240, A: 255}, false)

	glow := clamp01(g.glow * 4)
	border := hueColor(g.hue, uint8(120+135*glow))
	vector.StrokeRect(screen, x, y, size, size, float32(2+6*glow), border, false)

	cx, cy := x+size/2, y+size/2
	vector.DrawFilledCircle(screen, cx, cy, config.CenterMarkerRadius, color.RGBA{R: 120, G: 120, B: 130, A: 255}, true)

	if len(g.ghost) > 0 && g.ghostAlpha > 0 {
		g.drawStroke(screen, g.ghost, hueColor(g.hue, uint8(200*g.ghostAlpha)))
	}
	if g.drawing {
		g.drawStroke(screen, g.path.Coordinates(), hueColor(g.hue, 255))
	}
}

// drawStroke draws pts as connected segments with round joints.
func (g *Game) drawStroke(screen *ebiten.Image, pts []scorer.Point, clr color.Color) {
	w := float32(g.strokeWidth)
	ox, oy := float32(config.CanvasX), float32(config.CanvasY)
	for i, p := range pts {
		px, py := ox+float32(p.X), oy+float32(p.Y)
		vector.DrawFilledCircle(screen, px, py, w/2, clr, true)
		if i == 0 {
			continue
		}
		q := pts[i-1]
		vector.StrokeLine(screen, ox+float32(q.X), oy+float32(q.Y), px, py, w, clr, true)
	}
}

// drawText draws s anchored at (x, y): vertically centred, horizontally per align.
// Without loaded fonts it falls back to the debug font.
func (g *Game) drawText(screen *ebiten.Image, s string, x, y, size float64, bold bool, clr color.Color, align textAlign) {
	if g.fonts == nil {
		dx := 0
		if align == alignCenter {
			dx = len(s) * 6 / 2 // debug glyphs are 6px wide
		}
		ebitenutil.DebugPrintAt(screen, s, int(x)-dx, int(y)-8)
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.SecondaryAlign = text.AlignCenter
	if align == alignCenter {
		op.PrimaryAlign = text.AlignCenter
	}
	text.Draw(screen, s, g.fonts.face(bold, size), op)
}
