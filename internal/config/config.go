// Package config holds screen layout constants and runtime options.
package config

const (
	// Portrait logical screen
	WindowWidth  = 480
	WindowHeight = 800

	// Square drawing canvas
	CanvasSize = 440
	CanvasX    = 20
	CanvasY    = 180

	CenterMarkerRadius = 4

	// Button dimensions
	ButtonWidth  = 120
	ButtonHeight = 40
	ButtonX      = WindowWidth - ButtonWidth - 20
	ButtonY      = 50

	// Sliders under the canvas
	SliderX      = 20
	SliderWidth  = WindowWidth - 40
	SliderHeight = 24
	HueSliderY   = CanvasY + CanvasSize + 40
	WidthSliderY = HueSliderY + SliderHeight + 40

	MinStrokeWidth = 2
	MaxStrokeWidth = 16

	// Feedback animation
	ScoreEaseFactor = 0.2
	GhostFadeSpeed  = 0.02
	ChimeRingSize   = 2048
	SmoothingFactor = 0.6
)

// Config contains process configuration loaded by Load.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// SampleRate is the fraction of path coordinates kept when scoring.
	SampleRate float64 `koanf:"sample_rate"`

	// ClosedTolerance is the per-axis distance under which a path counts as closed.
	ClosedTolerance float64 `koanf:"closed_tolerance"`

	// Sound enables the chime played when a drawing is scored.
	Sound bool `koanf:"sound"`

	// Volume is the chime gain in beep's exponential volume units.
	Volume float64 `koanf:"volume"`

	// StrokeWidth and StrokeHue set the initial pen.
	StrokeWidth float64 `koanf:"stroke_width"`
	StrokeHue   float64 `koanf:"stroke_hue"`

	// MetricsAddr exposes /metrics when non-empty, e.g. "127.0.0.1:9090".
	MetricsAddr string `koanf:"metrics_addr"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		SampleRate:      0.1,
		ClosedTolerance: 10,
		Sound:           true,
		Volume:          -1,
		StrokeWidth:     6,
		StrokeHue:       200,
	}
}
