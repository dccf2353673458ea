package scan_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/jarvis322/namescan"
	"github.com/jarvis322/namescan/mock"
	"github.com/jarvis322/namescan/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pageExtractor treats the fetched bytes as a single page of text.
func pageExtractor() *mock.Extractor {
	return &mock.Extractor{
		ExtractFn: func(data []byte) ([]namescan.PageText, error) {
			return []namescan.PageText{{Number: 1, Text: string(data)}}, nil
		},
	}
}

func testDocs() []namescan.Document {
	return []namescan.Document{
		{Title: "Doc One", URL: "https://example.gov/files/1.pdf"},
		{Title: "Doc Two", URL: "https://example.gov/files/2.pdf"},
		{Title: "Doc Three", URL: "https://example.gov/files/3.pdf"},
	}
}

func TestRunner_Run(t *testing.T) {
	t.Parallel()

	t.Run("attaches document identity to records", func(t *testing.T) {
		t.Parallel()

		runner := &scan.Runner{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) ([]byte, error) {
					return []byte("Sayın Banu Hanım"), nil
				},
			},
			Extractor: pageExtractor(),
			Matcher:   newMatcher(t, []string{"Banu"}),
		}

		report := runner.Run(context.Background(), testDocs()[:1])

		require.Equal(t, 1, report.Total())
		rec := report.Records[0]
		assert.Equal(t, "BANU", rec.Name)
		assert.Equal(t, "Doc One", rec.DocumentTitle)
		assert.Equal(t, "https://example.gov/files/1.pdf", rec.DocumentURL)
		assert.Equal(t, 1, rec.Page)
	})

	t.Run("tolerates partial failure", func(t *testing.T) {
		t.Parallel()

		runner := &scan.Runner{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) ([]byte, error) {
					if url == "https://example.gov/files/2.pdf" {
						return nil, namescan.Errorf(namescan.EUNAVAILABLE, "timeout")
					}
					return []byte("Banu"), nil
				},
			},
			Extractor: pageExtractor(),
			Matcher:   newMatcher(t, []string{"Banu"}),
		}

		report := runner.Run(context.Background(), testDocs())

		require.Len(t, report.Results, 3)
		assert.False(t, report.Results[0].Failed())
		assert.True(t, report.Results[1].Failed())
		assert.False(t, report.Results[2].Failed())
		assert.Equal(t, namescan.EUNAVAILABLE, namescan.ErrorCode(report.Results[1].Err))

		// Count includes successful documents only.
		assert.Equal(t, 2, report.Total())
		assert.Equal(t, 1, report.FailedCount())
	})

	t.Run("isolates parse errors to the offending document", func(t *testing.T) {
		t.Parallel()

		calls := 0
		runner := &scan.Runner{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) ([]byte, error) {
					return []byte("Banu"), nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(data []byte) ([]namescan.PageText, error) {
					calls++
					if calls == 1 {
						return nil, namescan.Errorf(namescan.EINVALID, "malformed PDF")
					}
					return []namescan.PageText{{Number: 1, Text: string(data)}}, nil
				},
			},
			Matcher: newMatcher(t, []string{"Banu"}),
		}

		report := runner.Run(context.Background(), testDocs()[:2])

		assert.True(t, report.Results[0].Failed())
		assert.Equal(t, namescan.EINVALID, namescan.ErrorCode(report.Results[0].Err))
		assert.Equal(t, 1, report.Total())
	})

	t.Run("output order is selection order under concurrency", func(t *testing.T) {
		t.Parallel()

		runner := &scan.Runner{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) ([]byte, error) {
					return []byte("Banu at " + url), nil
				},
			},
			Extractor:   pageExtractor(),
			Matcher:     newMatcher(t, []string{"Banu"}),
			Concurrency: 3,
		}

		docs := testDocs()
		report := runner.Run(context.Background(), docs)

		require.Len(t, report.Results, 3)
		for i, res := range report.Results {
			assert.Equal(t, docs[i], res.Document)
		}
		require.Equal(t, 3, report.Total())
		assert.Equal(t, "Doc One", report.Records[0].DocumentTitle)
		assert.Equal(t, "Doc Two", report.Records[1].DocumentTitle)
		assert.Equal(t, "Doc Three", report.Records[2].DocumentTitle)
	})

	t.Run("cancellation takes effect before the next document", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())

		var fetches atomic.Int32
		runner := &scan.Runner{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) ([]byte, error) {
					fetches.Add(1)
					cancel() // cancel mid-batch, after the first fetch
					return []byte("Banu"), nil
				},
			},
			Extractor: pageExtractor(),
			Matcher:   newMatcher(t, []string{"Banu"}),
		}

		report := runner.Run(ctx, testDocs())

		assert.Equal(t, int32(1), fetches.Load())
		assert.False(t, report.Results[0].Failed())
		assert.True(t, report.Results[1].Failed())
		assert.True(t, report.Results[2].Failed())
		assert.Equal(t, 1, report.Total())
	})

	t.Run("dedupe skips identical content under a different URL", func(t *testing.T) {
		t.Parallel()

		runner := &scan.Runner{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) ([]byte, error) {
					if url == "https://example.gov/files/3.pdf" {
						return []byte("different Banu"), nil
					}
					return []byte("same Banu"), nil
				},
			},
			Extractor: pageExtractor(),
			Matcher:   newMatcher(t, []string{"Banu"}),
			Dedupe:    true,
		}

		report := runner.Run(context.Background(), testDocs())

		assert.False(t, report.Results[0].Duplicate)
		assert.True(t, report.Results[1].Duplicate)
		assert.False(t, report.Results[2].Duplicate)
		assert.Equal(t, 2, report.Total())
	})

	t.Run("records content hash for successful documents", func(t *testing.T) {
		t.Parallel()

		runner := &scan.Runner{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) ([]byte, error) {
					return []byte("no names"), nil
				},
			},
			Extractor: pageExtractor(),
			Matcher:   newMatcher(t, []string{"Banu"}),
		}

		report := runner.Run(context.Background(), testDocs()[:2])

		require.Len(t, report.Results, 2)
		assert.NotEmpty(t, report.Results[0].ContentHash)
		assert.Equal(t, report.Results[0].ContentHash, report.Results[1].ContentHash)
	})
}
