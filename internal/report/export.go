package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hamscan/ham/internal/config"
	"github.com/hamscan/ham/internal/errors"
	"gopkg.in/yaml.v3"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatQR   = "qr"
)

// exportEnvelope wraps the exported configuration in a consistent
// structure for machine parsing.
type exportEnvelope struct {
	HamConfig *config.Config `json:"ham_config" yaml:"ham_config"`
}

// Export writes the effective configuration to w in the given format.
func Export(w io.Writer, cfg *config.Config, format string) error {
	fmt.Fprintln(w, titleStyle.Render("HAM Configuration Export"))
	fmt.Fprintf(w, "Export format: %s\n\n", format)

	env := exportEnvelope{HamConfig: cfg}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(env); err != nil {
			return errors.WrapWithCode(err, errors.ErrExec,
				"Can't encode configuration JSON",
				"This is unexpected - check the configuration data.")
		}
		return nil

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		if err := enc.Encode(env); err != nil {
			return errors.WrapWithCode(err, errors.ErrExec,
				"Can't encode configuration YAML",
				"This is unexpected - check the configuration data.")
		}
		return nil

	case FormatQR:
		return errors.NewNotImplemented("QR code export")

	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unsupported export format %q", format),
			"Supported formats: json, yaml, qr.")
	}
}
