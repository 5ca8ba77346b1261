package status

import "sync"

// RunState is the shared cancellation flag for one scan session. It starts
// running and transitions to stopped exactly once; there is no way back.
// The dashboard is the sole writer, both loops read it.
type RunState struct {
	mu      sync.Mutex
	stopped bool
}

// NewRunState returns a flag in the running state.
func NewRunState() *RunState {
	return &RunState{}
}

// Running reports whether the session should keep going.
func (r *RunState) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.stopped
}

// Stop marks the session as cancelled. Safe to call more than once;
// later calls are no-ops.
func (r *RunState) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopped = true
}
