// Package probe implements the bounded protocol tests behind the live scan.
// Each probe is a black-box function that tests one protocol/endpoint and
// reports a normalized 0-10 health score. Probes bound their own latency
// and convert every failure into a score; they never return errors.
package probe

import (
	"context"
	"errors"
	"strings"
)

// Health scores on the normalized 0-10 scale. Timeouts score low but
// nonzero: "no answer" and "active refusal" are different signals, and
// censorship heuristics depend on telling them apart.
const (
	ScoreGood        = 10 // fast, clean success
	ScoreDegraded    = 5  // answered, but not the expected answer
	ScoreConnTimeout = 2  // connection-style probe timed out
	ScoreReqTimeout  = 1  // request-style probe timed out
	ScoreBlocked     = 0  // explicit failure: refused, unresolvable, non-zero exit
)

// Func is a single bounded probe. It must return within its own configured
// timeout and always yields an in-range score, even on total failure.
type Func func(ctx context.Context) int

// Entry is one named probe in the catalog.
type Entry struct {
	// Name is the row key in the status table, e.g. "TCP:443".
	Name string

	// Detail is the human-readable description of what is being tested.
	Detail string

	// Run executes the probe.
	Run Func
}

// FailReason categorizes why a probe's network operation failed.
type FailReason int

const (
	FailUnknown FailReason = iota
	FailTimeout
	FailRefused
	FailUnreachable
	FailResolution
)

// String returns a human-readable description of the failure reason.
func (r FailReason) String() string {
	switch r {
	case FailTimeout:
		return "timed out"
	case FailRefused:
		return "connection refused"
	case FailUnreachable:
		return "host unreachable"
	case FailResolution:
		return "resolution failed"
	default:
		return "unknown error"
	}
}

// Categorize converts a network error into a FailReason. Go's net errors
// don't expose a stable taxonomy, so this matches on the error text the
// same way a human reading the message would.
func Categorize(err error) FailReason {
	if err == nil {
		return FailUnknown
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return FailTimeout
	}

	errStr := strings.ToLower(err.Error())

	if strings.Contains(errStr, "timeout") || strings.Contains(errStr, "i/o timeout") ||
		strings.Contains(errStr, "deadline exceeded") {
		return FailTimeout
	}

	if strings.Contains(errStr, "connection refused") {
		return FailRefused
	}

	if strings.Contains(errStr, "no route to host") ||
		strings.Contains(errStr, "network is unreachable") ||
		strings.Contains(errStr, "host is down") {
		return FailUnreachable
	}

	if strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "server misbehaving") {
		return FailResolution
	}

	return FailUnknown
}

// connScore maps a connection-style probe error to its score.
func connScore(err error) int {
	if Categorize(err) == FailTimeout {
		return ScoreConnTimeout
	}
	return ScoreBlocked
}

// reqScore maps a request-style probe error to its score.
func reqScore(err error) int {
	if Categorize(err) == FailTimeout {
		return ScoreReqTimeout
	}
	return ScoreBlocked
}
