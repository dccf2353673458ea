package mock

import (
	"context"

	"github.com/jarvis322/namescan"
)

var _ namescan.IndexResolver = (*IndexResolver)(nil)

// IndexResolver is a mock implementation of namescan.IndexResolver.
type IndexResolver struct {
	ResolveFn func(ctx context.Context) ([]namescan.Document, namescan.IndexStatus)
	RefreshFn func(ctx context.Context) ([]namescan.Document, namescan.IndexStatus)
}

func (r *IndexResolver) Resolve(ctx context.Context) ([]namescan.Document, namescan.IndexStatus) {
	return r.ResolveFn(ctx)
}

func (r *IndexResolver) Refresh(ctx context.Context) ([]namescan.Document, namescan.IndexStatus) {
	return r.RefreshFn(ctx)
}

var _ namescan.IndexCache = (*IndexCache)(nil)

// IndexCache is a mock implementation of namescan.IndexCache.
type IndexCache struct {
	GetFn func(ctx context.Context) (*namescan.CachedIndex, error)
	PutFn func(ctx context.Context, index namescan.CachedIndex) error
}

func (c *IndexCache) Get(ctx context.Context) (*namescan.CachedIndex, error) {
	return c.GetFn(ctx)
}

func (c *IndexCache) Put(ctx context.Context, index namescan.CachedIndex) error {
	return c.PutFn(ctx, index)
}
