package mock

import (
	"context"

	"github.com/jarvis322/namescan"
)

var _ namescan.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of namescan.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, baseURL string) ([]namescan.Link, error)
}

func (e *LinkExtractor) ExtractLinks(html string, baseURL string) ([]namescan.Link, error) {
	return e.ExtractLinksFn(html, baseURL)
}

var _ namescan.SitemapSource = (*SitemapSource)(nil)

// SitemapSource is a mock implementation of namescan.SitemapSource.
type SitemapSource struct {
	DiscoverLinksFn func(ctx context.Context, baseURL string) ([]namescan.Link, error)
}

func (s *SitemapSource) DiscoverLinks(ctx context.Context, baseURL string) ([]namescan.Link, error) {
	return s.DiscoverLinksFn(ctx, baseURL)
}
