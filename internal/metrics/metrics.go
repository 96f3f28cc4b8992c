// Package metrics provides Prometheus metrics for drawing attempts.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Attempt outcomes used as the "outcome" label.
const (
	OutcomeScored       = "scored"
	OutcomeOpen         = "open"
	OutcomeNotEvaluable = "not_evaluable"
)

const shutdownTimeout = 2 * time.Second

// Option applies a configuration option to the Manager.
type Option func(*Manager)

// WithNamespace sets the namespace for all metrics.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithScoreBuckets sets the score histogram buckets.
func WithScoreBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if len(buckets) > 0 {
			m.scoreBuckets = buckets
		}
	}
}

// Manager owns a private registry and the game's collectors.
type Manager struct {
	namespace    string
	scoreBuckets []float64
	registry     *prometheus.Registry

	attempts  *prometheus.CounterVec
	scores    prometheus.Histogram
	highScore prometheus.Gauge
}

// NewManager creates a Manager with its own registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:    "perfectcircle",
		scoreBuckets: prometheus.LinearBuckets(10, 10, 10),
		registry:     prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}

	factory := promauto.With(m.registry)
	m.attempts = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "attempts_total",
		Help:      "Finished drawing gestures by outcome.",
	}, []string{"outcome"})
	m.scores = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "score",
		Help:      "Scores of closed drawings.",
		Buckets:   m.scoreBuckets,
	})
	m.highScore = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "high_score",
		Help:      "Best score of the current session.",
	})
	return m
}

// RecordAttempt counts a finished gesture. Score is observed only for OutcomeScored.
func (m *Manager) RecordAttempt(outcome string, score float64) {
	m.attempts.WithLabelValues(outcome).Inc()
	if outcome == OutcomeScored {
		m.scores.Observe(score)
	}
}

// SetHighScore publishes the session best.
func (m *Manager) SetHighScore(score float64) {
	m.highScore.Set(score)
}

// Attempts returns the counter for outcome.
func (m *Manager) Attempts(outcome string) prometheus.Counter {
	return m.attempts.WithLabelValues(outcome)
}

// HighScore returns the high score gauge.
func (m *Manager) HighScore() prometheus.Gauge {
	return m.highScore
}

// Registry returns the underlying registry.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (m *Manager) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics.Serve: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("metrics.Serve: shutdown: %w", err)
		}
		return nil
	}
}
