package config

import (
	"encoding/json"
	"time"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .ham.yaml configuration file.
type Config struct {
	Version int `yaml:"version" json:"version" mapstructure:"version"`

	// Scan controls the live probe-and-display loop.
	Scan ScanConfig `yaml:"scan" json:"scan" mapstructure:"scan"`

	// Endpoints are the targets each probe tests against.
	Endpoints EndpointConfig `yaml:"endpoints" json:"endpoints" mapstructure:"endpoints"`

	// Domains is the list used by the DNS censorship-pattern check.
	Domains []string `yaml:"domains" json:"domains" mapstructure:"domains"`

	// Output controls terminal output formatting.
	Output OutputConfig `yaml:"output" json:"output" mapstructure:"output"`
}

// ScanConfig holds the timing knobs for the live scan. The three intervals
// are independent, but validation preserves the qualitative ordering:
// input latency is bounded by the TUI event loop, redraw should be faster
// than the probe cadence.
type ScanConfig struct {
	// ProbeInterval is the pause between full probe cycles.
	ProbeInterval time.Duration `yaml:"probe_interval" json:"probe_interval" mapstructure:"probe_interval"`

	// RefreshInterval is the dashboard redraw cadence.
	RefreshInterval time.Duration `yaml:"refresh_interval" json:"refresh_interval" mapstructure:"refresh_interval"`

	// ProbeTimeout bounds each individual probe attempt.
	ProbeTimeout time.Duration `yaml:"probe_timeout" json:"probe_timeout" mapstructure:"probe_timeout"`
}

// scanConfigOut mirrors ScanConfig with durations as strings, so written
// files say "2s" instead of raw nanoseconds and round-trip through the
// loader's duration parsing.
type scanConfigOut struct {
	ProbeInterval   string `yaml:"probe_interval" json:"probe_interval"`
	RefreshInterval string `yaml:"refresh_interval" json:"refresh_interval"`
	ProbeTimeout    string `yaml:"probe_timeout" json:"probe_timeout"`
}

func (s ScanConfig) out() scanConfigOut {
	return scanConfigOut{
		ProbeInterval:   s.ProbeInterval.String(),
		RefreshInterval: s.RefreshInterval.String(),
		ProbeTimeout:    s.ProbeTimeout.String(),
	}
}

// MarshalYAML emits durations in "2s" form.
func (s ScanConfig) MarshalYAML() (interface{}, error) {
	return s.out(), nil
}

// MarshalJSON emits durations in "2s" form.
func (s ScanConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.out())
}

// UnmarshalYAML accepts the "2s" form written by MarshalYAML.
func (s *ScanConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw scanConfigOut
	if err := value.Decode(&raw); err != nil {
		return err
	}
	var err error
	if s.ProbeInterval, err = time.ParseDuration(raw.ProbeInterval); err != nil {
		return err
	}
	if s.RefreshInterval, err = time.ParseDuration(raw.RefreshInterval); err != nil {
		return err
	}
	s.ProbeTimeout, err = time.ParseDuration(raw.ProbeTimeout)
	return err
}

// UnmarshalJSON accepts the "2s" form written by MarshalJSON.
func (s *ScanConfig) UnmarshalJSON(data []byte) error {
	var raw scanConfigOut
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var err error
	if s.ProbeInterval, err = time.ParseDuration(raw.ProbeInterval); err != nil {
		return err
	}
	if s.RefreshInterval, err = time.ParseDuration(raw.RefreshInterval); err != nil {
		return err
	}
	s.ProbeTimeout, err = time.ParseDuration(raw.ProbeTimeout)
	return err
}

// EndpointConfig defines where each protocol probe points.
type EndpointConfig struct {
	// TCP is the host:port used for the raw TCP connect probes.
	TCP string `yaml:"tcp" json:"tcp" mapstructure:"tcp"`

	// HTTP is the URL fetched by the HTTPS request probe.
	HTTP string `yaml:"http" json:"http" mapstructure:"http"`

	// DNS is the hostname resolved by the DNS probe.
	DNS string `yaml:"dns" json:"dns" mapstructure:"dns"`

	// Ping is the address passed to the ping subprocess.
	Ping string `yaml:"ping" json:"ping" mapstructure:"ping"`

	// UDP is the host:port for the UDP reachability probe.
	UDP string `yaml:"udp" json:"udp" mapstructure:"udp"`

	// SSH is the SSH endpoint (host:port, user@host, or an alias from
	// ~/.ssh/config) used by the SSH handshake probe. Empty disables it.
	SSH string `yaml:"ssh" json:"ssh" mapstructure:"ssh"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" json:"color" mapstructure:"color"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Scan: ScanConfig{
			ProbeInterval:   2 * time.Second,
			RefreshInterval: 500 * time.Millisecond,
			ProbeTimeout:    3 * time.Second,
		},
		Endpoints: EndpointConfig{
			TCP:  "8.8.8.8:53",
			HTTP: "https://www.google.com",
			DNS:  "google.com",
			Ping: "8.8.8.8",
			UDP:  "8.8.8.8:53",
			SSH:  "",
		},
		Domains: []string{
			"google.com",
			"facebook.com",
			"twitter.com",
			"youtube.com",
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}
