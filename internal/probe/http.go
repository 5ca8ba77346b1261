package probe

import (
	"context"
	"net/http"
	"time"
)

// HTTP returns a probe that performs a GET against url. A 2xx answer is
// full health; any other status still proves the transport works and
// scores degraded. This is a request-style probe, so timeouts score
// ScoreReqTimeout rather than ScoreConnTimeout.
func HTTP(url string, timeout time.Duration) Func {
	client := &http.Client{Timeout: timeout}

	return func(ctx context.Context) int {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return ScoreBlocked
		}

		resp, err := client.Do(req)
		if err != nil {
			return reqScore(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return ScoreGood
		}
		return ScoreDegraded
	}
}
