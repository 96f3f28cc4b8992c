// Package trace reads recorded drawings from YAML so they can be scored headlessly.
//
// A trace lists either plain points, replayed as one MoveTo followed by LineTos:
//
//	points:
//	  - {x: 250, y: 150}
//	  - {x: 150, y: 250}
//
// or explicit elements, which may include curves:
//
//	elements:
//	  - {op: move, points: [{x: 0, y: 0}]}
//	  - {op: cubic, points: [{x: 10, y: 0}, {x: 20, y: 5}, {x: 20, y: 20}]}
//	  - {op: close}
package trace

import (
	"errors"
	"fmt"
	"os"

	"github.com/iburimskiy/perfect-circle/internal/scorer"
	"gopkg.in/yaml.v3"
)

// ErrInvalidTrace is returned for structurally invalid traces.
var ErrInvalidTrace = errors.New("invalid trace")

// Element operations.
const (
	OpMove  = "move"
	OpLine  = "line"
	OpQuad  = "quad"
	OpCubic = "cubic"
	OpClose = "close"
)

var opArity = map[string]int{
	OpMove:  1,
	OpLine:  1,
	OpQuad:  2,
	OpCubic: 3,
	OpClose: 0,
}

// Coord is a point in a trace file.
type Coord struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Element is one path command in a trace file.
type Element struct {
	Op     string  `yaml:"op"`
	Points []Coord `yaml:"points,omitempty"`
}

// File is a decoded trace.
type File struct {
	// SampleRate overrides the scorer default when non-zero.
	SampleRate float64   `yaml:"sample_rate,omitempty"`
	Points     []Coord   `yaml:"points,omitempty"`
	Elements   []Element `yaml:"elements,omitempty"`
}

// Load reads and decodes the trace at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("trace.Load: %w", err)
	}
	f, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("trace.Load: %s: %w", path, err)
	}
	return f, nil
}

// Decode parses YAML trace data.
func Decode(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTrace, err)
	}
	if len(f.Points) > 0 && len(f.Elements) > 0 {
		return nil, fmt.Errorf("%w: points and elements are mutually exclusive", ErrInvalidTrace)
	}
	for i, e := range f.Elements {
		n, ok := opArity[e.Op]
		if !ok {
			return nil, fmt.Errorf("%w: element %d: unknown op %q", ErrInvalidTrace, i, e.Op)
		}
		if len(e.Points) != n {
			return nil, fmt.Errorf("%w: element %d: %s takes %d points, got %d", ErrInvalidTrace, i, e.Op, n, len(e.Points))
		}
	}
	return &f, nil
}

// Encode renders f as YAML.
func Encode(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// FromPath converts a recorded path back into a trace.
func FromPath(p *scorer.Path) *File {
	f := &File{}
	for _, e := range p.Elements() {
		var op string
		switch e.(type) {
		case scorer.MoveTo:
			op = OpMove
		case scorer.LineTo:
			op = OpLine
		case scorer.QuadTo:
			op = OpQuad
		case scorer.CubicTo:
			op = OpCubic
		case scorer.Close:
			op = OpClose
		}
		el := Element{Op: op}
		for _, pt := range e.Points() {
			el.Points = append(el.Points, Coord{X: pt.X, Y: pt.Y})
		}
		f.Elements = append(f.Elements, el)
	}
	return f
}

// Path builds the drawing described by f, which must have come from Decode or FromPath.
func (f *File) Path() *scorer.Path {
	p := scorer.NewPath()
	for _, c := range f.Points {
		p.LineTo(c.X, c.Y)
	}
	for _, e := range f.Elements {
		switch e.Op {
		case OpMove:
			p.MoveTo(e.Points[0].X, e.Points[0].Y)
		case OpLine:
			p.LineTo(e.Points[0].X, e.Points[0].Y)
		case OpQuad:
			p.QuadraticTo(e.Points[0].X, e.Points[0].Y, e.Points[1].X, e.Points[1].Y)
		case OpCubic:
			p.CubicTo(e.Points[0].X, e.Points[0].Y, e.Points[1].X, e.Points[1].Y, e.Points[2].X, e.Points[2].Y)
		case OpClose:
			p.Close()
		}
	}
	return p
}
