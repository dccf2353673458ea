package scan

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/jarvis322/namescan"
	"golang.org/x/sync/errgroup"
)

// Runner executes one analysis run: for each selected document, fetch
// bytes, extract per-page text, and match against the dictionary. A
// document failure is isolated to that document; the batch always
// completes.
type Runner struct {
	Fetcher   namescan.Fetcher
	Extractor namescan.Extractor
	Matcher   *Matcher

	// Limiter, if set, paces fetches per host.
	Limiter namescan.HostLimiter

	// RetryDelays enables fetch retry with the given backoff. Nil
	// means a single attempt per document.
	RetryDelays []time.Duration

	// Concurrency bounds parallel documents. Values <= 1 process
	// documents sequentially.
	Concurrency int

	// Dedupe skips documents whose content hash matched an earlier
	// document in the same run.
	Dedupe bool
}

// Run scans the selected documents and aggregates the results. Output
// order is always the selection order regardless of completion order.
// Cancellation is cooperative at document granularity: once the
// context is done, remaining documents are recorded as failures
// without being fetched.
func (r *Runner) Run(ctx context.Context, docs []namescan.Document) *namescan.Report {
	results := make([]namescan.DocumentResult, len(docs))

	if r.Concurrency > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(r.Concurrency)
		for i, doc := range docs {
			i, doc := i, doc
			g.Go(func() error {
				results[i] = r.scanDocument(gctx, doc)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i, doc := range docs {
			if err := ctx.Err(); err != nil {
				results[i] = namescan.DocumentResult{
					Document: doc,
					Err:      namescan.Errorf(namescan.EUNAVAILABLE, "scan canceled: %v", err),
				}
				continue
			}
			results[i] = r.scanDocument(ctx, doc)
		}
	}

	if r.Dedupe {
		markDuplicates(results)
	}

	return namescan.BuildReport(results)
}

// scanDocument runs the fetch-extract-match pipeline for one document.
func (r *Runner) scanDocument(ctx context.Context, doc namescan.Document) namescan.DocumentResult {
	result := namescan.DocumentResult{Document: doc}

	if r.Limiter != nil {
		if u, err := url.Parse(doc.URL); err == nil {
			if err := r.Limiter.Wait(ctx, u.Host); err != nil {
				result.Err = namescan.Errorf(namescan.EUNAVAILABLE, "scan canceled: %v", err)
				return result
			}
		}
	}

	fetch := func(ctx context.Context, url string) ([]byte, error) {
		return r.Fetcher.Fetch(ctx, url)
	}
	data, err := fetchWithDelays(ctx, doc.URL, fetch, r.RetryDelays)
	if err != nil {
		result.Err = err
		return result
	}
	result.ContentHash = fmt.Sprintf("%x", xxhash.Sum64(data))

	pages, err := r.Extractor.Extract(data)
	if err != nil {
		result.Err = err
		return result
	}

	for _, page := range pages {
		for _, m := range r.Matcher.MatchPage(page) {
			result.Matches = append(result.Matches, namescan.MatchRecord{
				Name:          m.Name,
				DocumentTitle: doc.Title,
				DocumentURL:   doc.URL,
				Page:          m.Page,
				Context:       m.Context,
			})
		}
	}

	return result
}

// markDuplicates flags documents whose content hash was already seen
// earlier in selection order. Deduplication runs after all documents
// complete so the outcome does not depend on completion order.
func markDuplicates(results []namescan.DocumentResult) {
	seen := make(map[string]bool)
	for i := range results {
		r := &results[i]
		if r.Failed() || r.ContentHash == "" {
			continue
		}
		if seen[r.ContentHash] {
			r.Duplicate = true
			r.Matches = nil
			continue
		}
		seen[r.ContentHash] = true
	}
}
