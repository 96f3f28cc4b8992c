package game

import (
	"fmt"
	"image/color"
	"math"
)

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}

func hueColor(h float64, alpha uint8) color.RGBA {
	r, g, b := hsvToRgb(h, 0.75, 0.95)
	return color.RGBA{R: r, G: g, B: b, A: alpha}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// formatScore formats a score with one decimal, or "--" when there is none.
func formatScore(s float64, ok bool) string {
	if !ok {
		return "--"
	}
	return fmt.Sprintf("%.1f", s)
}

type tier int

const (
	tierPoor tier = iota
	tierGood
	tierExcellent
)

func scoreTier(s float64) tier {
	switch {
	case s >= 90:
		return tierExcellent
	case s >= 70:
		return tierGood
	default:
		return tierPoor
	}
}

func (t tier) color() color.RGBA {
	switch t {
	case tierExcellent:
		return color.RGBA{R: 90, G: 220, B: 120, A: 255}
	case tierGood:
		return color.RGBA{R: 240, G: 190, B: 60, A: 255}
	default:
		return color.RGBA{R: 235, G: 90, B: 80, A: 255}
	}
}

func (t tier) label() string {
	switch t {
	case tierExcellent:
		return "Excellent!"
	case tierGood:
		return "Nice"
	default:
		return "Keep trying"
	}
}
