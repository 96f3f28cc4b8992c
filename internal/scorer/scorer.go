// Package scorer grades how closely a freehand path approximates a circle.
//
// The expected circle is fit to the path's bounding rectangle: its center is the
// rectangle center and its radius is half the shorter side. A subsample of the
// path's coordinates is compared against that circle and the mean deviation is
// mapped onto a 0-100 score. Paths whose first and last points do not nearly
// coincide score zero.
package scorer

import (
	"math"
)

// Default scoring parameters.
const (
	DefaultSampleRate      = 0.1
	DefaultClosedTolerance = 10.0
	MaxScore               = 100.0
)

// IsClosed reports whether the first and current points of p are within tolerance
// of each other on both axes independently. This is deliberately not a radial
// test, so it is more lenient along the diagonal.
func IsClosed(p *Path, tolerance float64) (bool, error) {
	if p.Empty() {
		return false, ErrEmptyPath
	}
	if !(tolerance > 0) {
		return false, ErrInvalidTolerance
	}
	d := p.CurrentPoint().Sub(p.FirstPoint())
	return math.Abs(d.X) < tolerance && math.Abs(d.Y) < tolerance, nil
}

// Score grades p with the default closedness tolerance.
func Score(p *Path, sampleRate float64) (float64, error) {
	return score(p, sampleRate, DefaultClosedTolerance)
}

// Sample returns every Nth coordinate of p, N = round(1/sampleRate), starting with
// the first. Curve elements contribute their control points to the count.
func Sample(p *Path, sampleRate float64) ([]Point, error) {
	if !(sampleRate > 0 && sampleRate <= 1) {
		return nil, ErrInvalidSampleRate
	}
	coords := 0
	for _, e := range p.Elements() {
		coords += len(e.Points())
	}
	if coords == 0 {
		return nil, nil
	}
	// Tiny rates keep only the first coordinate.
	every := coords
	if step := math.Round(1 / sampleRate); step < float64(coords) {
		every = int(step)
	}
	var (
		out []Point
		n   int
	)
	for _, e := range p.Elements() {
		for _, pt := range e.Points() {
			if n%every == 0 {
				out = append(out, pt)
			}
			n++
		}
	}
	return out, nil
}

func score(p *Path, sampleRate, tolerance float64) (float64, error) {
	if p.Empty() {
		return 0, ErrEmptyPath
	}
	sampled, err := Sample(p, sampleRate)
	if err != nil {
		return 0, err
	}
	closed, err := IsClosed(p, tolerance)
	if err != nil {
		return 0, err
	}
	if !closed {
		return 0, nil
	}

	bounds := p.Bounds()
	center := bounds.Center()
	radius := math.Min(bounds.Width(), bounds.Height()) / 2

	maxDeviation := radius * float64(len(sampled))
	if maxDeviation <= 0 {
		return 0, ErrDegeneratePath
	}

	var total float64
	for _, pt := range sampled {
		total += math.Abs(pt.Distance(center) - radius)
	}
	return math.Max(0, MaxScore*(1-total/maxDeviation)), nil
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithSampleRate sets the subsampling fraction. Values outside (0, 1] are ignored.
func WithSampleRate(rate float64) Option {
	return func(s *Scorer) {
		if rate > 0 && rate <= 1 {
			s.sampleRate = rate
		}
	}
}

// WithClosedTolerance sets the per-axis closedness threshold. Non-positive values are ignored.
func WithClosedTolerance(tolerance float64) Option {
	return func(s *Scorer) {
		if tolerance > 0 {
			s.tolerance = tolerance
		}
	}
}

// Scorer holds scoring parameters. The zero value is not usable; use New.
type Scorer struct {
	sampleRate float64
	tolerance  float64
}

// New creates a Scorer with defaults overridden by opts.
func New(opts ...Option) *Scorer {
	s := &Scorer{
		sampleRate: DefaultSampleRate,
		tolerance:  DefaultClosedTolerance,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SampleRate returns the configured subsampling fraction.
func (s *Scorer) SampleRate() float64 { return s.sampleRate }

// ClosedTolerance returns the configured closedness threshold.
func (s *Scorer) ClosedTolerance() float64 { return s.tolerance }

// IsClosed reports closedness using the configured tolerance.
func (s *Scorer) IsClosed(p *Path) (bool, error) {
	return IsClosed(p, s.tolerance)
}

// Score grades p using the configured parameters.
func (s *Scorer) Score(p *Path) (float64, error) {
	return score(p, s.sampleRate, s.tolerance)
}
