// Package cli implements the command-line interface for cubesim.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim/internal/config"
)

const version = "0.1.0"

// app carries settings shared by every command.
type app struct {
	cfg     config.Config
	plain   bool
	verbose bool
}

func (a *app) logger(w io.Writer) *slog.Logger {
	level := a.cfg.Level()
	if a.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newRootCmd builds the command tree using cfg for flag defaults.
func newRootCmd(cfg config.Config) *cobra.Command {
	a := &app{cfg: cfg}

	cmd := &cobra.Command{
		Use:   "cubesim",
		Short: "3x3x3 cube simulator",
		Long: `cubesim - A simulator for the 3x3x3 twisty puzzle.

Apply face turns in standard notation (U D F B L R, with ' for
counter-clockwise), generate scrambles, and check the order of
move sequences against the rotation engine.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVar(&a.plain, "plain", cfg.Plain, "Disable colored output")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose output")

	cmd.AddCommand(newApplyCmd(a))
	cmd.AddCommand(newScrambleCmd(a))
	cmd.AddCommand(newVerifyCmd(a))

	return cmd
}

// Execute runs the root command.
func Execute() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
