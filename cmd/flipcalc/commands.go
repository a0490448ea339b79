package main

import (
	"fmt"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/flipcalc/internal/calc"
	"github.com/san-kum/flipcalc/internal/config"
	"github.com/san-kum/flipcalc/internal/glyph"
	"github.com/san-kum/flipcalc/internal/logging"
	"github.com/san-kum/flipcalc/internal/tui"
	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval [a] [op] [b]",
		Short: "compute one result and print it",
		Long: `Compute a op b and print the rendered result row.

Operands must be digit-only. The operator accepts a name (add), a label
(plus, moins, fois, divisé) or a symbol (+ - x / ÷). Undefined results,
such as a division by zero, print an empty line.

With --plot, b is entered one digit at a time as it would be typed, and
the results seen along the way are drawn as a graph below the row.`,
		Args: cobra.ExactArgs(3),
		RunE: runEval,
	}
	cmd.Flags().Bool("plot", false, "graph the results seen while typing b")
	return cmd
}

func runEval(cmd *cobra.Command, args []string) error {
	op, err := calc.ParseOperator(args[1])
	if err != nil {
		return err
	}

	w := newWidget(cmd.Context(), cfg)
	defer w.Close()

	plot, _ := cmd.Flags().GetBool("plot")

	now := time.Now()
	w.SetOperator(op, now)
	w.SetOperand(0, args[0], now)
	if plot {
		b := []rune(args[2])
		for i := 1; i < len(b); i++ {
			w.SetOperand(1, string(b[:i]), now)
		}
	}
	w.SetOperand(1, args[2], now)
	w.Settle()

	if reason := w.Reason(); reason != nil {
		logging.FromContext(cmd.Context()).Debug("result absent", "err", reason)
	}

	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintln(out, glyph.Spaced(w.Sequence())); err != nil {
		return err
	}
	if !plot {
		return nil
	}

	values := w.History().Values()
	if len(values) < 2 {
		_, err = fmt.Fprintln(out, "not enough results to plot")
		return err
	}
	_, err = fmt.Fprintln(out, asciigraph.Plot(values,
		asciigraph.Height(8),
		asciigraph.Width(min(4*len(values), 60)),
		asciigraph.Caption("results while typing "+args[2]),
	))
	return err
}

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "list available color themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range tui.ThemeNames() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
			}
			return nil
		},
	}
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
			}
			return nil
		},
	}
}

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "inspect configuration",
	}

	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "print the effective configuration as yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	saveCmd := &cobra.Command{
		Use:   "save [path]",
		Short: "write the effective configuration to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], cfg); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}

	configCmd.AddCommand(dumpCmd, saveCmd)
	return configCmd
}
