// Package mock provides function-field mock implementations of the
// namescan interfaces for testing.
package mock

import (
	"context"

	"github.com/jarvis322/namescan"
)

var _ namescan.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of namescan.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) ([]byte, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
