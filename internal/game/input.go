package game

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/iburimskiy/perfect-circle/internal/config"
	"github.com/iburimskiy/perfect-circle/internal/logger"
	"github.com/iburimskiy/perfect-circle/internal/metrics"
	"github.com/iburimskiy/perfect-circle/internal/scorer"
	"github.com/iburimskiy/perfect-circle/internal/trace"
)

// pointer is the frame's primary pointer: the first active touch, else the mouse.
type pointer struct {
	x, y     int
	down     bool
	pressed  bool
	released bool
}

func (g *Game) readPointer() pointer {
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	if !g.touchActive && len(g.touchIDs) > 0 {
		g.touchActive = true
		g.touchID = g.touchIDs[0]
		p := g.touchMoved(ebiten.TouchPosition(g.touchID))
		p.pressed = true
		return p
	}
	if g.touchActive {
		if inpututil.IsTouchJustReleased(g.touchID) {
			return g.touchReleased()
		}
		return g.touchMoved(ebiten.TouchPosition(g.touchID))
	}

	x, y := ebiten.CursorPosition()
	return pointer{
		x:        x,
		y:        y,
		down:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
}

// touchMoved records the active touch position. A released touch reports no
// position, so the last one is replayed by touchReleased.
func (g *Game) touchMoved(x, y int) pointer {
	g.touchX, g.touchY = x, y
	return pointer{x: x, y: y, down: true}
}

func (g *Game) touchReleased() pointer {
	g.touchActive = false
	return pointer{x: g.touchX, y: g.touchY, released: true}
}

func (g *Game) handlePointer(p pointer) {
	g.resetButton.hovered = g.resetButton.contains(p.x, p.y)
	g.hueSlider.hovered = g.hueSlider.contains(p.x, p.y)
	g.widthSlider.hovered = g.widthSlider.contains(p.x, p.y)

	switch {
	case p.pressed:
		switch {
		case g.resetButton.hovered:
			g.resetButton.pressed = true
		case g.hueSlider.hovered:
			g.hueSlider.dragging = true
		case g.widthSlider.hovered:
			g.widthSlider.dragging = true
		case insideCanvas(p.x, p.y):
			g.beginStroke(toCanvas(p.x, p.y))
		}
		g.dragSliders(p.x)

	case p.down:
		if g.drawing {
			g.extendStroke(toCanvas(p.x, p.y))
		}
		g.dragSliders(p.x)

	case p.released:
		if g.drawing {
			g.endStroke()
		}
		if g.resetButton.pressed && g.resetButton.hovered {
			g.requestReset()
		}
		g.resetButton.pressed = false
		g.hueSlider.dragging = false
		g.widthSlider.dragging = false
	}
}

func (g *Game) dragSliders(x int) {
	if g.hueSlider.dragging {
		g.hue = g.hueSlider.valueAt(x)
	}
	if g.widthSlider.dragging {
		g.strokeWidth = g.widthSlider.valueAt(x)
	}
}

func insideCanvas(x, y int) bool {
	return x >= config.CanvasX && x <= config.CanvasX+config.CanvasSize &&
		y >= config.CanvasY && y <= config.CanvasY+config.CanvasSize
}

// toCanvas converts screen coordinates into canvas units, clamped to the canvas.
func toCanvas(x, y int) scorer.Point {
	return scorer.Pt(
		clamp(float64(x-config.CanvasX), 0, config.CanvasSize),
		clamp(float64(y-config.CanvasY), 0, config.CanvasSize),
	)
}

// beginStroke discards the previous path and starts a gesture at pt.
func (g *Game) beginStroke(pt scorer.Point) {
	g.path.Clear()
	g.path.MoveTo(pt.X, pt.Y)
	g.drawing = true
	g.attemptID = uuid.NewString()
	g.session.Live(g.scorer.Score(g.path))
}

// extendStroke appends pt and rescores the whole path.
func (g *Game) extendStroke(pt scorer.Point) {
	if pt == g.path.CurrentPoint() {
		return
	}
	g.path.LineTo(pt.X, pt.Y)
	g.session.Live(g.scorer.Score(g.path))
}

// endStroke scores the finished gesture, updates the best score and resets the path.
func (g *Game) endStroke() {
	ctx := context.Background()
	score, err := g.scorer.Score(g.path)
	newBest := g.session.Finish(score, err)

	outcome := metrics.OutcomeScored
	switch closed, _ := g.scorer.IsClosed(g.path); {
	case err != nil:
		outcome = metrics.OutcomeNotEvaluable
	case !closed:
		outcome = metrics.OutcomeOpen
	}

	fields := []logger.Field{
		logger.String("session", g.session.ID()),
		logger.String("attempt", g.attemptID),
		logger.String("outcome", outcome),
		logger.Int("elements", g.path.Len()),
	}
	if err != nil {
		g.log.Debug(ctx, "stroke not evaluable", append(fields, logger.Error(err))...)
	} else {
		g.log.Info(ctx, "stroke scored", append(fields, logger.Float64("score", score), logger.Bool("new_best", newBest))...)
	}

	if g.metrics != nil {
		g.metrics.RecordAttempt(outcome, score)
		if high, ok := g.session.High(); ok {
			g.metrics.SetHighScore(high)
		}
	}

	if err == nil && !g.muted && g.chime != nil {
		if playErr := g.chime.Play(score); playErr != nil {
			g.log.Warn(ctx, "audio disabled", logger.Error(playErr))
		}
	}

	g.ghost = g.path.Coordinates()
	g.ghostAlpha = 1
	g.lastStroke = g.path.Clone()
	g.path.Clear()
	g.drawing = false
}

// requestReset asks for confirmation and then starts a new session.
func (g *Game) requestReset() {
	ok, err := g.dialogs.ConfirmReset()
	if err != nil {
		g.lastErr = err
		return
	}
	if !ok {
		return
	}
	prev := g.session.ID()
	g.session.Reset()
	g.shownScore = 0
	if g.metrics != nil {
		g.metrics.SetHighScore(0)
	}
	g.log.Info(context.Background(), "best score reset",
		logger.String("previous_session", prev),
		logger.String("session", g.session.ID()),
	)
}

// exportStroke writes the last finished stroke as a YAML trace.
func (g *Game) exportStroke() {
	if g.lastStroke == nil {
		g.lastErr = errNoStroke
		return
	}
	path, err := g.dialogs.SaveTracePath()
	if err != nil {
		g.lastErr = err
		return
	}
	if path == "" {
		return
	}
	data, err := trace.Encode(trace.FromPath(g.lastStroke))
	if err != nil {
		g.lastErr = fmt.Errorf("encode stroke: %w", err)
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		g.lastErr = err
		return
	}
	g.lastErr = nil
	g.log.Info(context.Background(), "stroke saved", logger.String("path", path))
}
