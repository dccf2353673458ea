package http

import (
	"context"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/jarvis322/namescan"
)

// maxSitemaps bounds how many child sitemaps of a sitemap index are
// followed.
const maxSitemaps = 10

// Ensure SitemapSource implements namescan.SitemapSource at compile time.
var _ namescan.SitemapSource = (*SitemapSource)(nil)

// SitemapSource discovers document links from a site's XML sitemap.
// It is the resolver's second live source when the HTML index yields
// no usable links.
type SitemapSource struct {
	fetcher namescan.Fetcher
}

// NewSitemapSource creates a SitemapSource using the given fetcher.
func NewSitemapSource(fetcher namescan.Fetcher) *SitemapSource {
	return &SitemapSource{fetcher: fetcher}
}

// DiscoverLinks fetches /sitemap.xml from the base URL's host and
// returns its locations. A sitemap index is followed one level deep.
// Sitemap entries carry no display text.
func (s *SitemapSource) DiscoverLinks(ctx context.Context, baseURL string) ([]namescan.Link, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, namescan.Errorf(namescan.EINVALID, "invalid base URL: %v", err)
	}

	sitemapURL := base.Scheme + "://" + base.Host + "/sitemap.xml"
	locs, children, err := s.readSitemap(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}

	// Sitemap index: gather locations from child sitemaps.
	if len(children) > maxSitemaps {
		children = children[:maxSitemaps]
	}
	for _, child := range children {
		childLocs, _, err := s.readSitemap(ctx, child)
		if err != nil {
			continue
		}
		locs = append(locs, childLocs...)
	}

	seen := make(map[string]bool)
	var links []namescan.Link
	for _, loc := range locs {
		if seen[loc] {
			continue
		}
		seen[loc] = true
		links = append(links, namescan.Link{URL: loc})
	}

	return links, nil
}

// readSitemap fetches one sitemap document and returns its URL
// locations and, for sitemap indexes, the child sitemap URLs.
func (s *SitemapSource) readSitemap(ctx context.Context, sitemapURL string) (locs, children []string, err error) {
	data, err := s.fetcher.Fetch(ctx, sitemapURL)
	if err != nil {
		return nil, nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, nil, namescan.Errorf(namescan.EINVALID, "parse sitemap %s: %v", sitemapURL, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, nil, namescan.Errorf(namescan.EINVALID, "empty sitemap %s", sitemapURL)
	}

	switch root.Tag {
	case "urlset":
		for _, el := range root.FindElements("//url/loc") {
			if loc := strings.TrimSpace(el.Text()); loc != "" {
				locs = append(locs, loc)
			}
		}
	case "sitemapindex":
		for _, el := range root.FindElements("//sitemap/loc") {
			if loc := strings.TrimSpace(el.Text()); loc != "" {
				children = append(children, loc)
			}
		}
	default:
		return nil, nil, namescan.Errorf(namescan.EINVALID, "unexpected sitemap root <%s> in %s", root.Tag, sitemapURL)
	}

	return locs, children, nil
}
