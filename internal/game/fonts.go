package game

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts holds the parsed font sources used for on-screen text.
type Fonts struct {
	Regular *text.GoTextFaceSource
	Bold    *text.GoTextFaceSource
}

// LoadFonts parses the bundled Go fonts. Call it once before the game starts.
func LoadFonts() (*Fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("game.LoadFonts: regular: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("game.LoadFonts: bold: %w", err)
	}
	return &Fonts{Regular: regular, Bold: bold}, nil
}

func (f *Fonts) face(bold bool, size float64) text.Face {
	src := f.Regular
	if bold {
		src = f.Bold
	}
	return &text.GoTextFace{Source: src, Size: size}
}
