// Package goquery provides a CSS-selector implementation of
// namescan.LinkExtractor for discovering document links in index pages.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jarvis322/namescan"
)

// Ensure LinkExtractor implements namescan.LinkExtractor at compile time.
var _ namescan.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor extracts anchors from HTML. Filtering to document
// suffixes is the resolver's concern; this type only discovers.
type LinkExtractor struct{}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// ExtractLinks parses HTML and returns the anchors in document order.
// Relative hrefs are resolved against baseURL; duplicate URLs keep the
// first occurrence.
func (e *LinkExtractor) ExtractLinks(html string, baseURL string) ([]namescan.Link, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, namescan.Errorf(namescan.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, namescan.Errorf(namescan.EINVALID, "failed to parse HTML: %v", err)
	}

	var links []namescan.Link
	seen := make(map[string]bool)

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" || seen[resolved] {
			return
		}
		seen[resolved] = true

		links = append(links, namescan.Link{
			Text: strings.TrimSpace(sel.Text()),
			URL:  resolved,
		})
	})

	return links, nil
}

// resolveURL resolves a relative URL against a base URL.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
