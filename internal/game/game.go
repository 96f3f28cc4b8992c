// Package game hosts the circle drawing game on ebiten.
package game

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/perfect-circle/internal/config"
	"github.com/iburimskiy/perfect-circle/internal/logger"
	"github.com/iburimskiy/perfect-circle/internal/metrics"
	"github.com/iburimskiy/perfect-circle/internal/scorer"
)

var errNoStroke = errors.New("nothing drawn yet")

// chimer plays score feedback and reports how loud it currently is.
type chimer interface {
	Play(score float64) error
	Level() float64
}

// Option configures a Game.
type Option func(*Game)

// WithMetrics records attempts in m.
func WithMetrics(m *metrics.Manager) Option {
	return func(g *Game) { g.metrics = m }
}

// WithDialogs replaces the native dialogs.
func WithDialogs(d Dialogs) Option {
	return func(g *Game) { g.dialogs = d }
}

// WithFonts draws text with f instead of the debug font.
func WithFonts(f *Fonts) Option {
	return func(g *Game) { g.fonts = f }
}

func withChimer(c chimer) Option {
	return func(g *Game) { g.chime = c }
}

// Game implements ebiten.Game.
type Game struct {
	cfg     *config.Config
	scorer  *scorer.Scorer
	session *Session
	log     logger.Logger
	metrics *metrics.Manager
	dialogs Dialogs
	fonts   *Fonts
	chime   chimer

	// gesture
	path       *scorer.Path
	drawing    bool
	attemptID  string
	lastStroke *scorer.Path

	// pointer
	touchIDs    []ebiten.TouchID
	touchID     ebiten.TouchID
	touchActive bool
	touchX      int
	touchY      int

	// finished stroke fading out
	ghost      []scorer.Point
	ghostAlpha float64

	// pen
	hue         float64
	strokeWidth float64

	// widgets
	resetButton button
	hueSlider   slider
	widthSlider slider

	// feedback
	shownScore float64
	glow       float64
	muted      bool

	// input edge detection
	prevKey map[ebiten.Key]bool

	lastErr error
}

// New creates a game configured by cfg.
func New(cfg *config.Config, opts ...Option) *Game {
	g := &Game{
		cfg: cfg,
		scorer: scorer.New(
			scorer.WithSampleRate(cfg.SampleRate),
			scorer.WithClosedTolerance(cfg.ClosedTolerance),
		),
		session:     NewSession(),
		log:         logger.Named("game"),
		dialogs:     NativeDialogs{},
		path:        scorer.NewPath(),
		hue:         cfg.StrokeHue,
		strokeWidth: cfg.StrokeWidth,
		muted:       !cfg.Sound,
		prevKey:     map[ebiten.Key]bool{},
		resetButton: button{
			x: config.ButtonX, y: config.ButtonY,
			w: config.ButtonWidth, h: config.ButtonHeight,
			label: "Reset best",
		},
		hueSlider: slider{
			x: config.SliderX, y: config.HueSliderY,
			w: config.SliderWidth, h: config.SliderHeight,
			label: "Colour", min: 0, max: 359, fullTrack: true,
		},
		widthSlider: slider{
			x: config.SliderX, y: config.WidthSliderY,
			w: config.SliderWidth, h: config.SliderHeight,
			label: "Width", min: config.MinStrokeWidth, max: config.MaxStrokeWidth,
		},
	}
	g.chime = newChimePlayer(cfg.Volume)
	for _, opt := range opts {
		opt(g)
	}
	g.log.Info(context.Background(), "session started", logger.String("session", g.session.ID()))
	return g
}

// Session exposes the score state.
func (g *Game) Session() *Session { return g.session }

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	g.handlePointer(g.readPointer())

	if justPressed(ebiten.KeyR) {
		g.requestReset()
	}
	if justPressed(ebiten.KeyC) {
		g.ghost, g.ghostAlpha = nil, 0
	}
	if justPressed(ebiten.KeyM) {
		g.muted = !g.muted
	}
	if justPressed(ebiten.KeyS) {
		g.exportStroke()
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.animate()
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// animate eases the displayed score, fades the ghost stroke and follows the chime.
func (g *Game) animate() {
	target, ok := g.session.Current()
	if !ok {
		target = 0
	}
	g.shownScore += (target - g.shownScore) * config.ScoreEaseFactor

	if g.ghostAlpha > 0 {
		g.ghostAlpha = clamp01(g.ghostAlpha - config.GhostFadeSpeed)
		if g.ghostAlpha == 0 {
			g.ghost = nil
		}
	}

	var level float64
	if g.chime != nil {
		level = g.chime.Level()
	}
	g.glow = config.SmoothingFactor*g.glow + (1-config.SmoothingFactor)*level
}
