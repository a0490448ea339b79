package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/san-kum/flipcalc/internal/config"
	"github.com/san-kum/flipcalc/internal/logging"
	"github.com/san-kum/flipcalc/internal/tui"
	"github.com/san-kum/flipcalc/internal/widget"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var (
	configFile string
	preset     string
	cfg        *config.Config
	logCloser  io.Closer
)

// main runs the root command and exits with status 1 on error.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "flipcalc",
		Short:   "terminal calculator with flipping digits",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(config.Options{File: configFile, Preset: preset, Flags: cmd.Flags()})
			if err != nil {
				return err
			}

			level, err := logging.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			logger, closer, err := logging.OpenFile(cfg.LogFile, level)
			if err != nil {
				return err
			}
			logCloser = closer
			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logCloser == nil {
				return nil
			}
			err := logCloser.Close()
			logCloser = nil
			return err
		},
		RunE:          runInteractive,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file (default: ./flipcalc.yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.String("precision", "rounded", "division precision (rounded|raw)")
	pf.String("spacing", "none", "digit grouping (none|2|3)")
	pf.String("operator", "add", "initial operator")
	pf.String("log-level", "info", "log level (debug|info|warn|error)")
	pf.String("log-file", "", "write logs to this file")

	rf := rootCmd.Flags()
	rf.String("theme", config.DefaultTheme, "color theme")
	rf.Int("fps", config.DefaultFPS, "frame rate")
	rf.Int("duration", config.DefaultDurationMs, "flip duration in milliseconds")
	rf.String("style", config.StyleFade, "flip style (fade|roll)")
	rf.Bool("history", true, "show the history graph")
	rf.Int("history-size", config.DefaultHistorySize, "number of results kept for the graph")

	rootCmd.AddCommand(newEvalCmd(), newThemesCmd(), newPresetsCmd(), newConfigCmd())
	return rootCmd
}

func newWidget(ctx context.Context, c *config.Config) *widget.Widget {
	return widget.New(widget.Options{
		Precision:   c.PrecisionPolicy(),
		Operator:    c.InitialOperator(),
		Spacing:     c.SpacingMode(),
		Duration:    c.Duration(),
		HistorySize: c.History.Size,
		Logger:      logging.FromContext(ctx),
	}, time.Now())
}

func runInteractive(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	w := newWidget(ctx, cfg)
	defer w.Close()

	log.Info("starting interactive ui", "theme", cfg.Theme, "style", cfg.Animation.Style, "fps", cfg.FPS)
	err := tui.Run(ctx, tui.Options{
		Widget:        w,
		Theme:         cfg.Theme,
		Style:         cfg.Animation.Style,
		ShowHistory:   cfg.History.Show,
		FrameInterval: cfg.FrameInterval(),
		Logger:        log,
	})
	if err != nil {
		return fmt.Errorf("interactive ui: %w", err)
	}
	return nil
}
