// Package report implements the one-shot diagnostic commands: a network
// analysis report and a configuration export. Unlike the scan session,
// nothing here shares state or runs in the background.
package report

import (
	"context"
	"fmt"
	"io"
	"net"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/hamscan/ham/internal/config"
	"github.com/hamscan/ham/internal/probe"
	"github.com/hamscan/ham/internal/status"
	"github.com/hamscan/ham/internal/ui"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(ui.ColorInfo)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(ui.ColorLimited)
	goodStyle    = lipgloss.NewStyle().Foreground(ui.ColorGood)
	warnStyle    = lipgloss.NewStyle().Foreground(ui.ColorLimited)
	badStyle     = lipgloss.NewStyle().Foreground(ui.ColorBlocked)
)

// connectivityTarget is a well-known public resolver probed over TCP.
type connectivityTarget struct {
	Name string
	Addr string
}

var connectivityTargets = []connectivityTarget{
	{Name: "Google DNS", Addr: "8.8.8.8:53"},
	{Name: "Cloudflare DNS", Addr: "1.1.1.1:53"},
	{Name: "OpenDNS", Addr: "208.67.222.222:53"},
}

// Analyzer runs the one-shot network analysis report.
type Analyzer struct {
	cfg *config.Config
	out io.Writer

	// overridable in tests
	lookupHost func(ctx context.Context, host string) ([]string, error)
	routeCmd   func(ctx context.Context) ([]byte, error)
	tcpProbe   func(addr string, timeout time.Duration) probe.Func
}

// NewAnalyzer creates an analyzer writing its report to out.
func NewAnalyzer(cfg *config.Config, out io.Writer) *Analyzer {
	r := &net.Resolver{}
	return &Analyzer{
		cfg:        cfg,
		out:        out,
		lookupHost: r.LookupHost,
		routeCmd: func(ctx context.Context) ([]byte, error) {
			return exec.CommandContext(ctx, "ip", "route", "show", "default").Output()
		},
		tcpProbe: probe.TCP,
	}
}

// Run prints the full analysis report: routing, connectivity, and DNS
// reachability over the configured domain list.
func (a *Analyzer) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, titleStyle.Render("HAM Network Analysis"))
	fmt.Fprintln(a.out, "Analyzing network conditions...")
	fmt.Fprintln(a.out)

	fmt.Fprintln(a.out, sectionStyle.Render("Network Interface Status:"))
	a.checkDefaultRoute(ctx)

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, sectionStyle.Render("Connectivity Tests:"))
	a.checkConnectivity(ctx)

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, sectionStyle.Render("Censorship Detection:"))
	a.checkCensorship(ctx)

	return ctx.Err()
}

// checkDefaultRoute reports whether the host has a default route.
func (a *Analyzer) checkDefaultRoute(ctx context.Context) {
	out, err := a.routeCmd(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "   %s %s\n", ui.SymbolUnknown, warnStyle.Render("Could not check routing table"))
		return
	}
	if strings.TrimSpace(string(out)) != "" {
		fmt.Fprintf(a.out, "   %s %s\n", ui.SymbolPass, goodStyle.Render("Default route found"))
	} else {
		fmt.Fprintf(a.out, "   %s %s\n", ui.SymbolFail, badStyle.Render("No default route"))
	}
}

// checkConnectivity probes well-known public resolvers over TCP and
// reports each target by score band.
func (a *Analyzer) checkConnectivity(ctx context.Context) {
	for _, target := range connectivityTargets {
		score := a.tcpProbe(target.Addr, a.cfg.Scan.ProbeTimeout)(ctx)
		switch status.BandFor(score) {
		case status.BandGood:
			fmt.Fprintf(a.out, "   %s %s - Reachable\n", ui.SymbolPass, goodStyle.Render(target.Name))
		case status.BandLimited:
			fmt.Fprintf(a.out, "   %s %s - Limited\n", ui.SymbolWarn, warnStyle.Render(target.Name))
		default:
			fmt.Fprintf(a.out, "   %s %s - Blocked\n", ui.SymbolFail, badStyle.Render(target.Name))
		}
	}
}

// checkCensorship resolves the configured domain list and prints a
// verdict from the share of domains that resolved.
func (a *Analyzer) checkCensorship(ctx context.Context) {
	domains := a.cfg.Domains
	if len(domains) == 0 {
		fmt.Fprintf(a.out, "   %s %s\n", ui.SymbolUnknown, warnStyle.Render("No domains configured"))
		return
	}

	fmt.Fprintln(a.out, "   Testing for common censorship patterns...")

	accessible := 0
	for _, domain := range domains {
		if _, err := a.lookupHost(ctx, domain); err == nil {
			accessible++
			fmt.Fprintf(a.out, "   %s %s - DNS resolves\n", ui.SymbolPass, goodStyle.Render(domain))
		} else {
			fmt.Fprintf(a.out, "   %s %s - DNS blocked\n", ui.SymbolFail, badStyle.Render(domain))
		}
	}

	fmt.Fprintf(a.out, "   %s\n", verdict(accessible, len(domains)))
}

// verdict maps the accessibility ratio to a styled summary line.
func verdict(accessible, total int) string {
	ratio := float64(accessible) / float64(total)
	switch {
	case ratio > 0.8:
		return goodStyle.Render("Network appears uncensored")
	case ratio > 0.5:
		return warnStyle.Render("Partial censorship detected")
	default:
		return badStyle.Render("Heavy censorship likely")
	}
}
