package logger

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestLoggerInit(t *testing.T) {
	var buf bytes.Buffer
	if err := InitWriter(&buf, "info"); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	Get().Info(context.Background(), "gesture scored", Float64("score", 97.5), String("session", "abc"))

	out := buf.String()
	for _, want := range []string{"gesture scored", "score=97.5", "session=abc", "source="} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	if err := InitWriter(&buf, "warn"); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	l := Named("game")
	l.Info(context.Background(), "hidden")
	l.Debug(context.Background(), "hidden too")
	l.Warn(context.Background(), "shown", Error(errors.New("boom")))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("records below warn were written: %q", out)
	}
	if !strings.Contains(out, "component=game") || !strings.Contains(out, "error=boom") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestLoggerBadLevel(t *testing.T) {
	if err := InitWriter(&bytes.Buffer{}, "loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
