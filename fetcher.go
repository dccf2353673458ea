package namescan

import "context"

// Fetcher retrieves raw bytes from URLs. It is used both for the index
// page (HTML) and for the documents themselves (PDF).
type Fetcher interface {
	// Fetch retrieves the resource at the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) ([]byte, error)

	// Close releases transport resources.
	Close() error
}

// HostLimiter provides per-host rate limiting for outbound fetches.
type HostLimiter interface {
	// Wait blocks until the rate limit allows a request to the host.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, host string) error
}
