// Package index resolves the remote document index into a list of
// fetchable document descriptors, with a deterministic fallback when
// live resolution fails.
package index

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/jarvis322/namescan"
)

// DefaultTTL is how long a cached resolution stays fresh.
const DefaultTTL = 24 * time.Hour

// untitled is the placeholder title for links with blank display text.
const untitled = "(untitled document)"

// Ensure Resolver implements namescan.IndexResolver at compile time.
var _ namescan.IndexResolver = (*Resolver)(nil)

// Resolver resolves the live document index, caching the result and
// falling back to a static descriptor list on any failure or empty
// result. The zero value is not usable; populate the fields.
type Resolver struct {
	// Fetcher retrieves the index page.
	Fetcher namescan.Fetcher

	// Links discovers anchors in the index HTML.
	Links namescan.LinkExtractor

	// Sitemap, if set, is tried when the HTML index yields no
	// usable documents.
	Sitemap namescan.SitemapSource

	// Cache, if set, stores resolution results between runs.
	Cache namescan.IndexCache

	// IndexURL is the live index page.
	IndexURL string

	// Suffix filters discovered links; entries whose URL path does
	// not end with it are dropped. Defaults to ".pdf".
	Suffix string

	// Fallback is the static descriptor list returned when live
	// resolution fails.
	Fallback []namescan.Document

	// TTL bounds cache freshness. Defaults to DefaultTTL.
	TTL time.Duration

	// Now is the clock, injectable for tests. Defaults to time.Now.
	Now func() time.Time
}

// Resolve returns the document list, preferring a fresh cache entry
// over a live fetch. Resolution never fails; any error is recovered by
// the fallback list and explained in the status.
func (r *Resolver) Resolve(ctx context.Context) ([]namescan.Document, namescan.IndexStatus) {
	if cached := r.fromCache(ctx); cached != nil {
		return cached.Documents, namescan.IndexStatus{Live: true, Cached: true}
	}
	return r.Refresh(ctx)
}

// Refresh bypasses the cache and forces a live fetch. A successful
// result replaces the cache entry.
func (r *Resolver) Refresh(ctx context.Context) ([]namescan.Document, namescan.IndexStatus) {
	docs, err := r.liveIndex(ctx)

	if (err != nil || len(docs) == 0) && r.Sitemap != nil {
		if smDocs, smErr := r.sitemapIndex(ctx); smErr == nil && len(smDocs) > 0 {
			docs, err = smDocs, nil
		}
	}

	switch {
	case err != nil:
		return r.fallback(), namescan.IndexStatus{Reason: namescan.ErrorMessage(err)}
	case len(docs) == 0:
		return r.fallback(), namescan.IndexStatus{Reason: "empty index"}
	}

	if r.Cache != nil {
		// A failed cache write is not a resolution failure.
		_ = r.Cache.Put(ctx, namescan.CachedIndex{
			Documents: docs,
			FetchedAt: r.now(),
		})
	}

	return docs, namescan.IndexStatus{Live: true}
}

// liveIndex fetches the index page and discovers document links in it.
func (r *Resolver) liveIndex(ctx context.Context) ([]namescan.Document, error) {
	data, err := r.Fetcher.Fetch(ctx, r.IndexURL)
	if err != nil {
		return nil, err
	}

	links, err := r.Links.ExtractLinks(string(data), r.IndexURL)
	if err != nil {
		return nil, err
	}

	return r.filter(links), nil
}

// sitemapIndex discovers document links from the site's sitemap.
func (r *Resolver) sitemapIndex(ctx context.Context) ([]namescan.Document, error) {
	links, err := r.Sitemap.DiscoverLinks(ctx, r.IndexURL)
	if err != nil {
		return nil, err
	}
	return r.filter(links), nil
}

// filter keeps links whose URL path ends with the document suffix and
// converts them to descriptors, substituting a placeholder title for
// blank display text.
func (r *Resolver) filter(links []namescan.Link) []namescan.Document {
	suffix := r.Suffix
	if suffix == "" {
		suffix = ".pdf"
	}

	var docs []namescan.Document
	for _, link := range links {
		u, err := url.Parse(link.URL)
		if err != nil {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(u.Path), suffix) {
			continue
		}

		title := strings.TrimSpace(link.Text)
		if title == "" {
			title = untitled
		}

		docs = append(docs, namescan.Document{Title: title, URL: link.URL})
	}
	return docs
}

// fromCache returns the cached index if present and fresh.
func (r *Resolver) fromCache(ctx context.Context) *namescan.CachedIndex {
	if r.Cache == nil {
		return nil
	}

	cached, err := r.Cache.Get(ctx)
	if err != nil || cached == nil || len(cached.Documents) == 0 {
		return nil
	}

	ttl := r.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if r.now().Sub(cached.FetchedAt) > ttl {
		return nil
	}

	return cached
}

// fallback returns a copy of the static descriptor list so callers
// cannot mutate it.
func (r *Resolver) fallback() []namescan.Document {
	docs := make([]namescan.Document, len(r.Fallback))
	copy(docs, r.Fallback)
	return docs
}

func (r *Resolver) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}
