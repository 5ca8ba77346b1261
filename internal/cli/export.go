package cli

import (
	"os"

	"github.com/hamscan/ham/internal/report"
	"github.com/spf13/cobra"
)

var exportFormatFlag string

// exportCmd prints the effective configuration.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the effective configuration",
	Long: `Print the configuration ham would use, after defaults and any
.ham.yaml file are merged.

Examples:
  ham export
  ham export --format yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return report.Export(os.Stdout, cfg, exportFormatFlag)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportFormatFlag, "format", report.FormatJSON, "Output format: json, yaml, or qr")
}
