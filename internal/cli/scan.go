package cli

import (
	"github.com/hamscan/ham/internal/logger"
	"github.com/hamscan/ham/internal/scan"
	"github.com/spf13/cobra"
)

// scanCmd runs the live connectivity dashboard.
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Start the live connectivity dashboard",
	Long: `Probe connectivity continuously and render a live dashboard.

Each protocol is tested in order every probe interval and scored from
0 (blocked) to 10 (fully working). Press q to quit.

Examples:
  ham
  ham scan
  ham scan --config ./custom.ham.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return scanCommand(cmd)
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

// scanCommand loads config and runs one scan session to completion.
func scanCommand(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The dashboard owns the terminal while the session runs, so the
	// prober logs through the noop logger unless debugging to stderr
	// is explicitly requested.
	log := logger.Noop()
	if logger.DebugEnabled() {
		log = logger.NewEnvLogger("[scan]")
	}

	sup := scan.NewSupervisor(cfg, log)
	return sup.Run(cmd.Context())
}
