package main

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/iburimskiy/perfect-circle/internal/config"
	"github.com/iburimskiy/perfect-circle/internal/scorer"
	"github.com/spf13/cobra"
)

func writeTrace(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trace.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func circleTrace(n int) string {
	var b strings.Builder
	b.WriteString("points:\n")
	for i := 0; i <= n; i++ {
		a := 2 * math.Pi * float64(i%n) / float64(n)
		fmt.Fprintf(&b, "  - {x: %g, y: %g}\n", 150+100*math.Cos(a), 150+100*math.Sin(a))
	}
	return b.String()
}

func runScore(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("PERFECTCIRCLE_CONFIG", "")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"score", "--log-level", "error"}, args...))
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestScoreCommand(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"open line", "points:\n  - {x: 0, y: 0}\n  - {x: 20, y: 0}\n", "0.00"},
		{"single point", "points:\n  - {x: 5, y: 5}\n", "not evaluable"},
		{"empty", "points: []\n", "not evaluable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runScore(t, writeTrace(t, tt.body))
			if err != nil {
				t.Fatalf("score: %v", err)
			}
			if got != tt.want {
				t.Errorf("score = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScoreCommandCircle(t *testing.T) {
	got, err := runScore(t, writeTrace(t, circleTrace(36)))
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	v, err := strconv.ParseFloat(got, 64)
	if err != nil {
		t.Fatalf("output %q is not a number", got)
	}
	if v < 99.9 {
		t.Errorf("circle scored %v, want >= 99.9", v)
	}
}

func TestScoreCommandSampleRate(t *testing.T) {
	path := writeTrace(t, "sample_rate: 0.5\n"+circleTrace(36))

	if _, err := runScore(t, path, "--sample-rate", "1"); err != nil {
		t.Fatalf("valid rate: %v", err)
	}
	_, err := runScore(t, path, "--sample-rate", "3")
	if !errors.Is(err, scorer.ErrInvalidSampleRate) {
		t.Errorf("err = %v, want ErrInvalidSampleRate", err)
	}
}

func TestScoreCommandBadTrace(t *testing.T) {
	if _, err := runScore(t, writeTrace(t, "elements:\n  - {op: spiral}\n")); err == nil {
		t.Error("expected error for unknown op")
	}
	if _, err := runScore(t, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFlagOverrides(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		cfgSound  bool
		wantSound bool
		wantLevel string
	}{
		{"sound off", []string{"--sound=false"}, true, false, "info"},
		{"sound on over config", []string{"--sound"}, false, true, "info"},
		{"unset keeps config", nil, false, false, "info"},
		{"log level", []string{"--log-level", "debug"}, true, true, "debug"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f flags
			cmd := &cobra.Command{Use: "perfectcircle"}
			bindFlags(cmd, &f)
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatalf("parse: %v", err)
			}
			cfg := config.New()
			cfg.Sound = tt.cfgSound
			f.override(cmd, cfg)
			if cfg.Sound != tt.wantSound {
				t.Errorf("Sound = %v, want %v", cfg.Sound, tt.wantSound)
			}
			if cfg.LogLevel != tt.wantLevel {
				t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, tt.wantLevel)
			}
		})
	}
}
