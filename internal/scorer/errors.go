package scorer

import (
	"errors"
	"fmt"
)

// Sentinel errors for this package. Callers test them with errors.Is.
var (
	// ErrNotEvaluable means the path carries no data that can be graded.
	// It is distinct from a score of zero.
	ErrNotEvaluable = errors.New("path not evaluable")

	ErrEmptyPath      = fmt.Errorf("empty path: %w", ErrNotEvaluable)
	ErrDegeneratePath = fmt.Errorf("degenerate path: %w", ErrNotEvaluable)

	ErrInvalidSampleRate = errors.New("sample rate must be in (0, 1]")
	ErrInvalidTolerance  = errors.New("closed tolerance must be positive")
)
