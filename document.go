package namescan

import (
	"context"
	"time"
)

// Document is a lightweight descriptor for a retrievable PDF document,
// distinct from its content. Descriptors are produced by an IndexResolver
// and are read-only downstream.
type Document struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Validate returns an error if the document contains invalid fields.
func (d Document) Validate() error {
	if d.Title == "" {
		return Errorf(EINVALID, "document title required")
	}
	if d.URL == "" {
		return Errorf(EINVALID, "document URL required")
	}
	return nil
}

// IndexStatus describes how a resolution result was obtained.
type IndexStatus struct {
	// Live is true when the result came from the live index
	// (possibly via the cache), false when the static fallback
	// list was used.
	Live bool

	// Cached is true when the result was served from the cache
	// without a network request.
	Cached bool

	// Reason explains a fallback (network error, bad status, empty
	// index). Empty for live results.
	Reason string
}

// String returns a human-readable status line.
func (s IndexStatus) String() string {
	switch {
	case s.Live && s.Cached:
		return "live index (cached)"
	case s.Live:
		return "live index"
	default:
		return "fallback list: " + s.Reason
	}
}

// IndexResolver obtains the list of scannable documents.
//
// Resolution never fails: on any transport error, bad status, or empty
// result the resolver returns its static fallback list with a status
// explaining why. The status is informational only.
type IndexResolver interface {
	// Resolve returns the document list, preferring a fresh cache
	// entry over a live fetch.
	Resolve(ctx context.Context) ([]Document, IndexStatus)

	// Refresh bypasses the cache and forces a live fetch.
	Refresh(ctx context.Context) ([]Document, IndexStatus)
}

// CachedIndex is a resolution result held by an IndexCache.
type CachedIndex struct {
	Documents []Document
	FetchedAt time.Time
}

// IndexCache stores a resolution result between runs so repeated
// resolutions avoid network cost. Expiry is decided by the resolver,
// not the cache; the cache only records when the entry was fetched.
type IndexCache interface {
	// Get returns the cached index. Returns ENOTFOUND if the cache
	// is empty.
	Get(ctx context.Context) (*CachedIndex, error)

	// Put replaces the cached index.
	Put(ctx context.Context, index CachedIndex) error
}
