package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, CurrentConfigVersion, cfg.Version)
	assert.Equal(t, 2*time.Second, cfg.Scan.ProbeInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.Scan.RefreshInterval)
	assert.Equal(t, 3*time.Second, cfg.Scan.ProbeTimeout)
	assert.NotEmpty(t, cfg.Endpoints.TCP)
	assert.NotEmpty(t, cfg.Domains)

	// Defaults must pass their own validation.
	require.NoError(t, Validate(cfg))
}

func TestLoad_ValidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)

	content := `version: 1
scan:
  probe_interval: 5s
  refresh_interval: 250ms
  probe_timeout: 2s
endpoints:
  tcp: "1.1.1.1:53"
  http: "https://example.com"
  dns: "example.com"
  ping: "1.1.1.1"
  udp: "1.1.1.1:53"
domains:
  - example.com
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Scan.ProbeInterval)
	assert.Equal(t, 250*time.Millisecond, cfg.Scan.RefreshInterval)
	assert.Equal(t, "1.1.1.1:53", cfg.Endpoints.TCP)
	assert.Equal(t, []string{"example.com"}, cfg.Domains)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_PartialConfigMergesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)

	content := `version: 1
endpoints:
  tcp: "9.9.9.9:53"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	// Explicit value kept, everything else from defaults.
	assert.Equal(t, "9.9.9.9:53", cfg.Endpoints.TCP)
	assert.Equal(t, 2*time.Second, cfg.Scan.ProbeInterval)
	assert.Equal(t, "google.com", cfg.Endpoints.DNS)
}

func TestValidate_Intervals(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults ok", func(c *Config) {}, false},
		{"probe interval too short", func(c *Config) { c.Scan.ProbeInterval = 10 * time.Millisecond }, true},
		{"refresh interval too short", func(c *Config) { c.Scan.RefreshInterval = time.Millisecond }, true},
		{"timeout too short", func(c *Config) { c.Scan.ProbeTimeout = time.Millisecond }, true},
		{"refresh slower than probe", func(c *Config) {
			c.Scan.ProbeInterval = time.Second
			c.Scan.RefreshInterval = 2 * time.Second
		}, true},
		{"future version", func(c *Config) { c.Version = CurrentConfigVersion + 1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_Endpoints(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Endpoints.HTTP = "not a url"
	assert.Error(t, Validate(cfg))

	cfg = DefaultConfig()
	cfg.Endpoints.TCP = ""
	assert.Error(t, Validate(cfg))

	// HTTP probe is optional.
	cfg = DefaultConfig()
	cfg.Endpoints.HTTP = ""
	assert.NoError(t, Validate(cfg))
}

func TestValidate_OutputColor(t *testing.T) {
	cfg := DefaultConfig()
	for _, mode := range []string{"auto", "always", "never", ""} {
		cfg.Output.Color = mode
		assert.NoError(t, Validate(cfg), mode)
	}

	cfg.Output.Color = "rainbow"
	assert.Error(t, Validate(cfg))
}

func TestFind_ExplicitPathMissing(t *testing.T) {
	_, err := Find(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFind_CurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0o644))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	found, err := Find("")
	require.NoError(t, err)
	// macOS tempdirs resolve through symlinks; compare the base name.
	assert.Equal(t, ConfigFileName, filepath.Base(found))
}
