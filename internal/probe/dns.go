package probe

import (
	"context"
	"net"
	"time"
)

// DNS returns a probe that resolves host through the system resolver.
// A non-empty answer is full health; NXDOMAIN or a resolver error is an
// explicit block; silence before either is a timeout.
func DNS(host string, timeout time.Duration) Func {
	var resolver net.Resolver

	return func(ctx context.Context) int {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		addrs, err := resolver.LookupHost(ctx, host)
		if err != nil {
			return connScore(err)
		}
		if len(addrs) == 0 {
			return ScoreBlocked
		}
		return ScoreGood
	}
}
