package scorer

import "math"

// Point is a 2D coordinate in canvas units.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	d := p.Sub(q)
	return math.Hypot(d.X, d.Y)
}

// Element is a single path-construction command.
type Element interface {
	// Points returns the coordinates this element contributes, in order.
	Points() []Point
}

// MoveTo starts a subpath.
type MoveTo struct {
	Point Point
}

func (e MoveTo) Points() []Point { return []Point{e.Point} }

// LineTo draws a straight segment to Point.
type LineTo struct {
	Point Point
}

func (e LineTo) Points() []Point { return []Point{e.Point} }

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (e QuadTo) Points() []Point { return []Point{e.Control, e.Point} }

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (e CubicTo) Points() []Point { return []Point{e.Control1, e.Control2, e.Point} }

// Close closes the current subpath. It contributes no coordinates.
type Close struct{}

func (Close) Points() []Point { return nil }

// Path is an ordered, append-only list of elements recorded in drawing order.
type Path struct {
	elements []Element
	first    Point
	start    Point
	current  Point
}

// NewPath creates an empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]Element, 0, 64),
	}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.record(MoveTo{Point: pt}, pt)
	p.start = pt
}

// LineTo appends a segment to (x, y). On an empty path it acts as MoveTo.
func (p *Path) LineTo(x, y float64) {
	if p.Empty() {
		p.MoveTo(x, y)
		return
	}
	pt := Pt(x, y)
	p.record(LineTo{Point: pt}, pt)
}

// QuadraticTo appends a quadratic curve ending at (x, y). On an empty path the
// control point becomes the subpath start.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	if p.Empty() {
		p.start = Pt(cx, cy)
	}
	pt := Pt(x, y)
	p.record(QuadTo{Control: Pt(cx, cy), Point: pt}, pt)
}

// CubicTo appends a cubic curve ending at (x, y). On an empty path the first
// control point becomes the subpath start.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if p.Empty() {
		p.start = Pt(c1x, c1y)
	}
	pt := Pt(x, y)
	p.record(CubicTo{Control1: Pt(c1x, c1y), Control2: Pt(c2x, c2y), Point: pt}, pt)
}

// Close closes the current subpath; the current point returns to its start.
// Closing an empty path is a no-op.
func (p *Path) Close() {
	if p.Empty() {
		return
	}
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

func (p *Path) record(e Element, end Point) {
	if len(p.elements) == 0 {
		p.first = e.Points()[0]
	}
	p.elements = append(p.elements, e)
	p.current = end
}

// Clear removes all elements, keeping the allocated capacity.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.first = Point{}
	p.start = Point{}
	p.current = Point{}
}

// Empty reports whether nothing has been recorded.
func (p *Path) Empty() bool {
	return p == nil || len(p.elements) == 0
}

// Len returns the number of elements.
func (p *Path) Len() int {
	if p == nil {
		return 0
	}
	return len(p.elements)
}

// Elements returns the recorded elements. Callers must not modify the slice.
func (p *Path) Elements() []Element {
	if p == nil {
		return nil
	}
	return p.elements
}

// FirstPoint returns the first recorded coordinate.
func (p *Path) FirstPoint() Point {
	return p.first
}

// CurrentPoint returns the most recently recorded end point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Coordinates returns every coordinate of the path in order, control points included.
func (p *Path) Coordinates() []Point {
	if p.Empty() {
		return nil
	}
	out := make([]Point, 0, len(p.elements))
	for _, e := range p.elements {
		out = append(out, e.Points()...)
	}
	return out
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Min, Max Point
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the geometric center.
func (r Rect) Center() Point {
	return Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

// Bounds returns the smallest rectangle containing every recorded coordinate,
// including curve control points. An empty path has a zero Rect.
func (p *Path) Bounds() Rect {
	if p.Empty() {
		return Rect{}
	}
	r := Rect{
		Min: Pt(math.Inf(1), math.Inf(1)),
		Max: Pt(math.Inf(-1), math.Inf(-1)),
	}
	for _, e := range p.elements {
		for _, pt := range e.Points() {
			r.Min.X = math.Min(r.Min.X, pt.X)
			r.Min.Y = math.Min(r.Min.Y, pt.Y)
			r.Max.X = math.Max(r.Max.X, pt.X)
			r.Max.Y = math.Max(r.Max.Y, pt.Y)
		}
	}
	return r
}

// Clone returns an independent copy of the path.
func (p *Path) Clone() *Path {
	if p == nil {
		return NewPath()
	}
	c := *p
	c.elements = append(make([]Element, 0, len(p.elements)), p.elements...)
	return &c
}
