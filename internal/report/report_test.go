package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/hamscan/ham/internal/config"
	hamerrors "github.com/hamscan/ham/internal/errors"
	"github.com/hamscan/ham/internal/probe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newTestAnalyzer(t *testing.T, out *bytes.Buffer) *Analyzer {
	t.Helper()
	a := NewAnalyzer(config.DefaultConfig(), out)

	// Deterministic stubs: no network, no subprocess.
	a.routeCmd = func(ctx context.Context) ([]byte, error) {
		return []byte("default via 192.168.1.1 dev eth0\n"), nil
	}
	a.tcpProbe = func(addr string, timeout time.Duration) probe.Func {
		return func(ctx context.Context) int { return probe.ScoreGood }
	}
	a.lookupHost = func(ctx context.Context, host string) ([]string, error) {
		return []string{"203.0.113.7"}, nil
	}
	return a
}

func TestAnalyzeHealthyNetwork(t *testing.T) {
	var buf bytes.Buffer
	a := newTestAnalyzer(t, &buf)

	err := a.Run(context.Background())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "HAM Network Analysis")
	assert.Contains(t, out, "Default route found")
	assert.Contains(t, out, "Google DNS")
	assert.Contains(t, out, "Cloudflare DNS")
	assert.Contains(t, out, "OpenDNS")
	assert.Contains(t, out, "Reachable")
	assert.Contains(t, out, "Network appears uncensored")
}

func TestAnalyzeNoDefaultRoute(t *testing.T) {
	var buf bytes.Buffer
	a := newTestAnalyzer(t, &buf)
	a.routeCmd = func(ctx context.Context) ([]byte, error) {
		return []byte("  \n"), nil
	}

	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, buf.String(), "No default route")
}

func TestAnalyzeRouteCommandMissing(t *testing.T) {
	var buf bytes.Buffer
	a := newTestAnalyzer(t, &buf)
	a.routeCmd = func(ctx context.Context) ([]byte, error) {
		return nil, fmt.Errorf("exec: %q: executable file not found", "ip")
	}

	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, buf.String(), "Could not check routing table")
}

func TestAnalyzeConnectivityBands(t *testing.T) {
	scores := map[string]int{
		"8.8.8.8:53":        10,
		"1.1.1.1:53":        5,
		"208.67.222.222:53": 0,
	}

	var buf bytes.Buffer
	a := newTestAnalyzer(t, &buf)
	a.tcpProbe = func(addr string, timeout time.Duration) probe.Func {
		return func(ctx context.Context) int { return scores[addr] }
	}

	require.NoError(t, a.Run(context.Background()))
	out := buf.String()
	assert.Contains(t, out, "Google DNS")
	assert.Contains(t, out, "Reachable")
	assert.Contains(t, out, "Limited")
	assert.Contains(t, out, "Blocked")
}

func TestCensorshipVerdicts(t *testing.T) {
	tests := []struct {
		name       string
		accessible int
		total      int
		want       string
	}{
		{"all resolve", 4, 4, "Network appears uncensored"},
		{"most resolve", 3, 4, "Partial censorship detected"},
		{"half resolve", 2, 4, "Heavy censorship likely"},
		{"none resolve", 0, 4, "Heavy censorship likely"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, verdict(tt.accessible, tt.total), tt.want)
		})
	}
}

func TestCensorshipBlockedDomains(t *testing.T) {
	var buf bytes.Buffer
	a := newTestAnalyzer(t, &buf)
	a.lookupHost = func(ctx context.Context, host string) ([]string, error) {
		if host == "facebook.com" {
			return nil, fmt.Errorf("lookup %s: no such host", host)
		}
		return []string{"203.0.113.7"}, nil
	}

	require.NoError(t, a.Run(context.Background()))
	out := buf.String()
	assert.Contains(t, out, "facebook.com")
	assert.Contains(t, out, "DNS blocked")
	assert.Contains(t, out, "Partial censorship detected")
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.DefaultConfig()

	require.NoError(t, Export(&buf, cfg, FormatJSON))

	out := buf.String()
	start := bytes.IndexByte(buf.Bytes(), '{')
	require.GreaterOrEqual(t, start, 0, "no JSON object in output: %s", out)

	var env struct {
		HamConfig config.Config `json:"ham_config"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes()[start:], &env))
	assert.Equal(t, cfg.Version, env.HamConfig.Version)
	assert.Equal(t, cfg.Endpoints.TCP, env.HamConfig.Endpoints.TCP)
}

func TestExportYAML(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.DefaultConfig()

	require.NoError(t, Export(&buf, cfg, FormatYAML))

	out := buf.String()
	idx := bytes.Index(buf.Bytes(), []byte("ham_config:"))
	require.GreaterOrEqual(t, idx, 0, "no YAML document in output: %s", out)

	var env struct {
		HamConfig config.Config `yaml:"ham_config"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes()[idx:], &env))
	assert.Equal(t, cfg.Endpoints.DNS, env.HamConfig.Endpoints.DNS)
}

func TestExportQRNotImplemented(t *testing.T) {
	var buf bytes.Buffer
	err := Export(&buf, config.DefaultConfig(), FormatQR)

	require.Error(t, err)
	assert.True(t, hamerrors.IsCode(err, hamerrors.ErrExec))
	assert.Contains(t, err.Error(), "not implemented")
}

func TestExportUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Export(&buf, config.DefaultConfig(), "toml")

	require.Error(t, err)
	assert.True(t, hamerrors.IsCode(err, hamerrors.ErrConfig))
}
