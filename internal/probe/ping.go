package probe

import (
	"context"
	"errors"
	"os/exec"
	"strconv"
	"time"
)

// Ping returns a probe that shells out to the system ping for a single
// ICMP echo. Raw ICMP sockets need elevated privileges, so delegating to
// the setuid ping binary is the portable way to test ICMP reachability.
// A clean exit is full health, a non-zero exit is an explicit failure,
// and a context kill is a timeout.
func Ping(addr string, timeout time.Duration) Func {
	// -W takes whole seconds; keep at least one.
	waitSecs := int(timeout / time.Second)
	if waitSecs < 1 {
		waitSecs = 1
	}

	return func(ctx context.Context) int {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		cmd := exec.CommandContext(ctx, "ping", "-c", "1", "-W", strconv.Itoa(waitSecs), addr)
		err := cmd.Run()
		if err == nil {
			return ScoreGood
		}
		if ctx.Err() != nil {
			return ScoreConnTimeout
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// ping ran and reported the host unreachable
			return ScoreBlocked
		}
		// ping binary missing or unspawnable
		return ScoreBlocked
	}
}
