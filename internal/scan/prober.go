// Package scan owns the live scan session: the background prober that
// drives the probe catalog against the shared status table, and the
// supervisor that ties prober, dashboard, and terminal lifecycle together.
package scan

import (
	"context"
	"time"

	"github.com/hamscan/ham/internal/logger"
	"github.com/hamscan/ham/internal/probe"
	"github.com/hamscan/ham/internal/status"
)

// Prober runs the probe catalog in a loop, writing each result into the
// status table. It is the table's only writer. Cancellation is
// cooperative: the run flag is checked at the top of every cycle, and a
// cycle already in flight finishes before the loop exits.
type Prober struct {
	catalog  []probe.Entry
	table    *status.Table
	run      *status.RunState
	interval time.Duration
	log      logger.Logger
	done     chan struct{}
}

// NewProber wires a prober to its catalog, table, and run flag.
func NewProber(catalog []probe.Entry, table *status.Table, run *status.RunState, interval time.Duration, log logger.Logger) *Prober {
	if log == nil {
		log = logger.Noop()
	}
	return &Prober{
		catalog:  catalog,
		table:    table,
		run:      run,
		interval: interval,
		log:      log,
		done:     make(chan struct{}),
	}
}

// Start launches the probe loop in the background. Call once.
func (p *Prober) Start(ctx context.Context) {
	go p.Run(ctx)
}

// Done is closed when the probe loop has fully exited. The table handle
// stays valid until then, so late writes are always safe.
func (p *Prober) Done() <-chan struct{} {
	return p.done
}

// Run executes the probe loop on the calling goroutine until the run flag
// drops or the context is cancelled. Exposed for tests; Start is the
// normal entry point.
func (p *Prober) Run(ctx context.Context) {
	defer close(p.done)

	for p.run.Running() {
		p.cycle(ctx)

		select {
		case <-time.After(p.interval):
		case <-ctx.Done():
			return
		}
	}
	p.log.Debug("prober: run flag dropped, exiting")
}

// cycle runs every probe in catalog order, sequentially. One hung probe
// delays the rest of the cycle but can never corrupt their rows; the
// table is only touched in a short critical section after each probe
// returns.
func (p *Prober) cycle(ctx context.Context) {
	for _, entry := range p.catalog {
		score := status.Clamp(entry.Run(ctx))
		p.table.Update(entry.Name, score, entry.Detail)
		p.log.Debug("prober: %s scored %d", entry.Name, score)
	}
}
