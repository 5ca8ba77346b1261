// Package cli wires the ham commands together with cobra.
package cli

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/hamscan/ham/internal/config"
	"github.com/hamscan/ham/internal/errors"
	"github.com/hamscan/ham/internal/ui"
	"github.com/spf13/cobra"
)

// Global flags
var (
	configFlag string
	colorFlag  string
)

// rootCmd is the base command. Running ham with no subcommand starts a
// scan session, matching the primary use of the tool.
var rootCmd = &cobra.Command{
	Use:   "ham",
	Short: "HAM - Heuristic Adaptive Monitor",
	Long: `HAM watches your network connectivity in real time.

It probes a fixed set of protocols (TCP, HTTPS, DNS, ping, UDP) on a
steady cadence, scores each from 0 to 10, and renders a live dashboard.

Run with no arguments to start scanning, or use a subcommand:

  ham scan      Live connectivity dashboard (the default)
  ham analyze   One-shot network analysis report
  ham export    Print the effective configuration`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return scanCommand(cmd)
	},
}

// Execute runs the root command and handles errors consistently.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Structured errors already carry their own formatting.
		var hamErr *errors.Error
		if stderrors.As(err, &hamErr) {
			fmt.Fprintln(os.Stderr, hamErr.Error())
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (default: search for .ham.yaml)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "Color output: auto, always, or never (overrides config)")
}

// loadConfig resolves the effective configuration for a command run:
// explicit --config path, discovered .ham.yaml, or built-in defaults.
// The --color flag overrides the config's color mode, and the resolved
// mode is applied to the lipgloss color profile before returning.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return nil, err
	}

	if colorFlag != "" {
		cfg.Output.Color = colorFlag
		if err := config.Validate(cfg); err != nil {
			return nil, err
		}
	}
	ui.ApplyColorMode(cfg.Output.Color)

	return cfg, nil
}
