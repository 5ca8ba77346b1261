package cli

import (
	"os"

	"github.com/hamscan/ham/internal/report"
	"github.com/spf13/cobra"
)

// analyzeCmd runs the one-shot network analysis.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a one-shot network analysis",
	Long: `Analyze current network conditions without the live dashboard.

Checks the default route, probes well-known public DNS servers over
TCP, and tests DNS resolution of common domains to detect censorship
patterns.

Examples:
  ham analyze
  ham analyze --color never`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return report.NewAnalyzer(cfg, os.Stdout).Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
