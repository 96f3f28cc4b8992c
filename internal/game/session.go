package game

import (
	"github.com/google/uuid"
	"github.com/iburimskiy/perfect-circle/internal/scorer"
)

// Session tracks the latest score and the best one since the session started.
// The best score never decreases; Reset starts a new session instead.
type Session struct {
	id         string
	current    float64
	hasCurrent bool
	high       float64
	hasHigh    bool
	attempts   int
}

// NewSession starts a session with a fresh ID and no scores.
func NewSession() *Session {
	return &Session{id: uuid.NewString()}
}

// ID identifies the session in logs.
func (s *Session) ID() string { return s.id }

// Live records a score computed while the gesture is still in progress.
// A not-evaluable result clears the current score.
func (s *Session) Live(score float64, err error) {
	s.current, s.hasCurrent = accept(score, err)
}

// Finish records the final score of a gesture and reports whether it set a new best.
func (s *Session) Finish(score float64, err error) bool {
	s.attempts++
	s.current, s.hasCurrent = accept(score, err)
	if !s.hasCurrent {
		return false
	}
	if s.hasHigh && s.current <= s.high {
		return false
	}
	s.high, s.hasHigh = s.current, true
	return true
}

// Reset discards all scores and starts a new session.
func (s *Session) Reset() {
	*s = Session{id: uuid.NewString()}
}

// Current returns the latest score, if any.
func (s *Session) Current() (float64, bool) { return s.current, s.hasCurrent }

// High returns the best score of the session, if any.
func (s *Session) High() (float64, bool) { return s.high, s.hasHigh }

// Attempts returns how many gestures have finished in this session.
func (s *Session) Attempts() int { return s.attempts }

// accept maps a scorer result to a displayable score. Any error, not-evaluable
// included, means there is no score to show.
func accept(score float64, err error) (float64, bool) {
	if err != nil {
		return 0, false
	}
	return clamp(score, 0, scorer.MaxScore), true
}
