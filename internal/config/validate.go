package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/hamscan/ham/internal/errors"
)

// Interval floors. The intervals are independent knobs, but a redraw faster
// than 100ms or a probe cycle faster than 500ms just burns CPU without
// making the dashboard more live.
const (
	MinRefreshInterval = 100 * time.Millisecond
	MinProbeInterval   = 500 * time.Millisecond
	MinProbeTimeout    = 100 * time.Millisecond
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but ham only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest ham release")
	}

	if err := validateScan(cfg.Scan); err != nil {
		return err
	}

	if err := validateEndpoints(cfg.Endpoints); err != nil {
		return err
	}

	return validateOutput(cfg.Output)
}

func validateScan(scan ScanConfig) error {
	if scan.ProbeInterval < MinProbeInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Probe interval %s is too short", scan.ProbeInterval),
			fmt.Sprintf("Use at least %s to avoid hammering the endpoints.", MinProbeInterval))
	}

	if scan.RefreshInterval < MinRefreshInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Refresh interval %s is too short", scan.RefreshInterval),
			fmt.Sprintf("Use at least %s; faster redraws don't make probes faster.", MinRefreshInterval))
	}

	if scan.ProbeTimeout < MinProbeTimeout {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Probe timeout %s is too short", scan.ProbeTimeout),
			"Probes need at least 100ms to distinguish slow from blocked.")
	}

	// Keep the qualitative property: redraw cadence under the probe cadence,
	// so the dashboard stays visibly live between probe cycles.
	if scan.RefreshInterval > scan.ProbeInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Refresh interval %s is slower than the probe interval %s", scan.RefreshInterval, scan.ProbeInterval),
			"The dashboard should redraw at least as often as probes complete.")
	}

	return nil
}

func validateEndpoints(ep EndpointConfig) error {
	if ep.TCP == "" || ep.DNS == "" || ep.Ping == "" || ep.UDP == "" {
		return errors.New(errors.ErrConfig,
			"Endpoint config is missing a target",
			"Set endpoints.tcp, endpoints.dns, endpoints.ping, and endpoints.udp (or delete the section to use defaults).")
	}

	if ep.HTTP != "" {
		u, err := url.Parse(ep.HTTP)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("'%s' doesn't look like a URL", ep.HTTP),
				"endpoints.http needs a full URL like https://www.google.com")
		}
	}

	return nil
}

func validateOutput(out OutputConfig) error {
	switch out.Color {
	case "", "auto", "always", "never":
		return nil
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown color mode '%s'", out.Color),
			"Use 'auto', 'always', or 'never'.")
	}
}
