package scan

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hamscan/ham/internal/config"
	"github.com/hamscan/ham/internal/dashboard"
	"github.com/hamscan/ham/internal/errors"
	"github.com/hamscan/ham/internal/logger"
	"github.com/hamscan/ham/internal/probe"
	"github.com/hamscan/ham/internal/status"
	"github.com/hamscan/ham/internal/ui"
)

// stopGrace bounds how long shutdown waits for the prober to notice the
// dropped run flag before the context is cancelled underneath it.
const stopGrace = 2 * time.Second

// Supervisor owns a full scan session: it wires the probe catalog, the
// shared status table and the run flag together, runs the prober in the
// background and the dashboard in the foreground, and tears both down
// in order when the dashboard exits.
type Supervisor struct {
	cfg *config.Config
	log logger.Logger
}

// NewSupervisor creates a supervisor for the given configuration.
func NewSupervisor(cfg *config.Config, log logger.Logger) *Supervisor {
	if log == nil {
		log = logger.Noop()
	}
	return &Supervisor{cfg: cfg, log: log}
}

// Run executes one scan session and blocks until it ends. The dashboard
// runs on the calling goroutine so Bubble Tea restores the terminal
// before Run returns, whatever the exit path.
func (s *Supervisor) Run(ctx context.Context) error {
	if !ui.IsTerminal() {
		return errors.New(errors.ErrTerm,
			"Scan dashboard requires an interactive terminal",
			"Run ham from a terminal, or use 'ham analyze' for non-interactive output.")
	}

	catalog := probe.Catalog(s.cfg)
	table := status.NewTable(probe.Names(catalog), probe.Details(catalog))
	run := status.NewRunState()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	prober := NewProber(catalog, table, run, s.cfg.Scan.ProbeInterval, s.log)
	prober.Start(ctx)

	s.log.Info("scan session started with %d probes", table.Len())

	model := dashboard.NewModel(table, run, s.cfg.Scan.RefreshInterval)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, runErr := p.Run()

	// The dashboard is gone. Drop the flag ourselves in case the
	// program ended on an error rather than quit input.
	run.Stop()
	s.waitForProber(prober, cancel)

	if runErr != nil {
		return errors.WrapWithCode(runErr, errors.ErrTerm,
			"Scan dashboard failed",
			"Check that your terminal supports alternate screen mode.")
	}

	// Printed only after Bubble Tea has restored the terminal.
	fmt.Println("Scan stopped.")
	return nil
}

// waitForProber blocks until the prober goroutine exits. If it does not
// notice the dropped flag within the grace period, the context is
// cancelled to force any in-flight probe or sleep to return.
func (s *Supervisor) waitForProber(p *Prober, cancel context.CancelFunc) {
	select {
	case <-p.Done():
		return
	case <-time.After(stopGrace):
		s.log.Warn("prober slow to stop, cancelling context")
		cancel()
	}
	<-p.Done()
}
