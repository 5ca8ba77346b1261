package probe

import (
	"github.com/hamscan/ham/internal/config"
)

// Catalog builds the fixed, ordered probe list for one scan session from
// the endpoint config. The order here is the display order and the
// execution order of every prober cycle; it never changes mid-session.
func Catalog(cfg *config.Config) []Entry {
	ep := cfg.Endpoints
	timeout := cfg.Scan.ProbeTimeout

	entries := []Entry{
		{
			Name:   "TCP:80",
			Detail: "HTTP connectivity",
			Run:    TCP(ep.TCP, timeout),
		},
		{
			Name:   "TCP:443",
			Detail: "HTTPS connectivity",
			Run:    HTTP(ep.HTTP, timeout),
		},
		{
			Name:   "DNS",
			Detail: "Domain resolution",
			Run:    DNS(ep.DNS, timeout),
		},
		{
			Name:   "PING",
			Detail: "ICMP connectivity",
			Run:    Ping(ep.Ping, timeout),
		},
		{
			Name:   "UDP",
			Detail: "UDP connectivity",
			Run:    UDP(ep.UDP, timeout),
		},
	}

	if ep.SSH != "" {
		entries = append(entries, Entry{
			Name:   "SSH:22",
			Detail: "SSH handshake",
			Run:    SSH(ep.SSH, timeout),
		})
	}

	return entries
}

// Names returns the catalog's row keys in order.
func Names(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// Details returns the catalog's row descriptions in order.
func Details(entries []Entry) []string {
	details := make([]string, len(entries))
	for i, e := range entries {
		details[i] = e.Detail
	}
	return details
}
