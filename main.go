package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/perfect-circle/internal/config"
	"github.com/iburimskiy/perfect-circle/internal/game"
	"github.com/iburimskiy/perfect-circle/internal/logger"
	"github.com/iburimskiy/perfect-circle/internal/metrics"
	"github.com/iburimskiy/perfect-circle/internal/scorer"
	"github.com/iburimskiy/perfect-circle/internal/trace"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

type flags struct {
	configPath  string
	logLevel    string
	metricsAddr string
	sound       bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags
	root := &cobra.Command{
		Use:           "perfectcircle",
		Short:         "Draw a circle freehand and see how perfect it is",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := runGame(cmd.Context(), cmd, f)
			if err != nil {
				game.ShowError(err)
			}
			return err
		},
	}
	bindFlags(root, &f)

	root.AddCommand(newScoreCmd(&f))
	return root
}

func bindFlags(root *cobra.Command, f *flags) {
	root.PersistentFlags().StringVar(&f.configPath, "config", "", "YAML config file (default $"+config.EnvConfigFile+")")
	root.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.Flags().StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	root.Flags().BoolVar(&f.sound, "sound", true, "play a chime after each scored stroke (--sound=false to mute)")
}

// override copies the flags set on cmd into cfg.
func (f flags) override(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if cmd.Flags().Changed("metrics-addr") {
		cfg.MetricsAddr = f.metricsAddr
	}
	if cmd.Flags().Changed("sound") {
		cfg.Sound = f.sound
	}
}

// loadConfig applies flag overrides on top of the layered config.
func loadConfig(ctx context.Context, cmd *cobra.Command, f flags) (*config.Config, error) {
	cfg, err := config.Load(ctx, f.configPath)
	if err != nil {
		return nil, err
	}
	f.override(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.LogLevel); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runGame(ctx context.Context, cmd *cobra.Command, f flags) error {
	cfg, err := loadConfig(ctx, cmd, f)
	if err != nil {
		return err
	}
	log := logger.Named("main")

	fonts, err := game.LoadFonts()
	if err != nil {
		return err
	}

	m := metrics.NewManager()
	if cfg.MetricsAddr != "" {
		go func() {
			if err := m.Serve(ctx, cfg.MetricsAddr); err != nil {
				log.Error(ctx, "metrics server stopped", logger.Error(err))
			}
		}()
		log.Info(ctx, "serving metrics", logger.String("addr", cfg.MetricsAddr))
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Perfect Circle - draw a circle, R: reset best, Esc/Q: quit")

	g := game.New(cfg, game.WithFonts(fonts), game.WithMetrics(m))
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	high, ok := g.Session().High()
	log.Info(ctx, "bye",
		logger.Int("attempts", g.Session().Attempts()),
		logger.Bool("scored", ok),
		logger.Float64("best", high),
	)
	return nil
}

func newScoreCmd(f *flags) *cobra.Command {
	var sampleRate float64
	cmd := &cobra.Command{
		Use:   "score TRACE.yaml",
		Short: "Score a recorded drawing without opening a window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Context(), cmd, *f)
			if err != nil {
				return err
			}
			tr, err := trace.Load(args[0])
			if err != nil {
				return err
			}

			rate := cfg.SampleRate
			if tr.SampleRate != 0 {
				rate = tr.SampleRate
			}
			if cmd.Flags().Changed("sample-rate") {
				rate = sampleRate
			}
			if !(rate > 0 && rate <= 1) {
				return fmt.Errorf("score: %w: %v", scorer.ErrInvalidSampleRate, rate)
			}

			s := scorer.New(scorer.WithSampleRate(rate), scorer.WithClosedTolerance(cfg.ClosedTolerance))
			score, err := s.Score(tr.Path())
			if errors.Is(err, scorer.ErrNotEvaluable) {
				fmt.Fprintln(cmd.OutOrStdout(), "not evaluable")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.2f\n", score)
			return nil
		},
	}
	cmd.Flags().Float64Var(&sampleRate, "sample-rate", scorer.DefaultSampleRate, "fraction of path coordinates to sample, in (0, 1]")
	return cmd
}
