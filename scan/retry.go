package scan

import (
	"context"
	"time"
)

// FetchFunc is the signature for a byte fetch function.
type FetchFunc func(ctx context.Context, url string) ([]byte, error)

// DefaultRetryDelays returns backoff delays of 1s, 2s, 4s for callers
// that opt in to retrying. The runner itself retries nothing: a failed
// fetch is that document's failure, and retry is a policy layered on
// top.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// fetchWithDelays attempts a fetch with one retry per delay. A nil or
// empty delays slice means a single attempt.
func fetchWithDelays(ctx context.Context, url string, fetch FetchFunc, delays []time.Duration) ([]byte, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		data, err := fetch(ctx, url)
		if err == nil {
			return data, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}
