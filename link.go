package namescan

import "context"

// Link is a discovered hyperlink: its display text and resolved URL.
type Link struct {
	Text string
	URL  string
}

// LinkExtractor discovers links in an HTML page.
type LinkExtractor interface {
	// ExtractLinks parses HTML and returns the anchors in document
	// order. Relative hrefs are resolved against baseURL.
	ExtractLinks(html string, baseURL string) ([]Link, error)
}

// SitemapSource discovers document links from a site's XML sitemap.
// It is used as a secondary live index source when the HTML index
// yields nothing.
type SitemapSource interface {
	// DiscoverLinks fetches and parses the sitemap reachable from
	// baseURL and returns its locations. Sitemap entries carry no
	// display text.
	DiscoverLinks(ctx context.Context, baseURL string) ([]Link, error)
}
