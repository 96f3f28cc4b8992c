package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type button struct {
	x, y, w, h int
	label      string

	hovered bool
	pressed bool
}

func (b *button) contains(x, y int) bool {
	return x >= b.x && x <= b.x+b.w && y >= b.y && y <= b.y+b.h
}

func (b *button) draw(screen *ebiten.Image, g *Game) {
	var bgColor color.Color
	if b.pressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if b.hovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}

	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), bgColor, false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	g.drawText(screen, b.label, float64(b.x+b.w/2), float64(b.y+b.h/2), 16, false, color.White, alignCenter)
}

// slider maps a horizontal drag onto a value in [min, max].
type slider struct {
	x, y, w, h int
	label      string
	min, max   float64
	// fullTrack paints the whole track instead of only the filled part.
	fullTrack bool

	hovered  bool
	dragging bool
}

func (s *slider) contains(x, y int) bool {
	return x >= s.x && x <= s.x+s.w && y >= s.y && y <= s.y+s.h
}

// valueAt converts a screen x into a slider value, clamped to range.
func (s *slider) valueAt(x int) float64 {
	pos := clamp01(float64(x-s.x) / float64(s.w))
	return s.min + pos*(s.max-s.min)
}

func (s *slider) progress(v float64) float64 {
	if s.max == s.min {
		return 0
	}
	return clamp01((v - s.min) / (s.max - s.min))
}

// draw renders the track filled up to v. fill picks the colour for a position in [0,1].
func (s *slider) draw(screen *ebiten.Image, g *Game, v float64, fill func(pos float64) color.Color) {
	x, y, w, h := float32(s.x), float32(s.y), float32(s.w), float32(s.h)

	vector.DrawFilledRect(screen, x, y, w, h, color.RGBA{R: 25, G: 30, B: 40, A: 200}, false)

	const steps = 48
	progress := s.progress(v)
	stepW := w / steps
	for i := 0; i < steps; i++ {
		pos := float64(i) / steps
		if pos > progress && !s.fullTrack {
			break
		}
		vector.DrawFilledRect(screen, x+float32(i)*stepW, y, stepW+1, h, fill(pos), false)
	}

	borderColor := color.RGBA{R: 70, G: 80, B: 100, A: 255}
	if s.hovered || s.dragging {
		borderColor = color.RGBA{R: 150, G: 170, B: 200, A: 255}
	}
	vector.StrokeRect(screen, x, y, w, h, 2, borderColor, false)

	indicatorX := x + float32(progress)*w
	vector.DrawFilledCircle(screen, indicatorX, y+h/2, 9, color.White, false)
	vector.StrokeCircle(screen, indicatorX, y+h/2, 9, 2, color.RGBA{R: 100, G: 110, B: 130, A: 255}, false)

	g.drawText(screen, s.label, float64(s.x), float64(s.y-14), 14, false, color.RGBA{R: 200, G: 205, B: 215, A: 255}, alignStart)
}
