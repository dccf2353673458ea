package namescan

import "net/url"

// searchBase restricts the query to PDF files in the justice.gov
// Epstein library.
const searchBase = "https://www.google.com/search?q=site:justice.gov/epstein+filetype:pdf+"

// SearchURL builds a quoted, site-restricted web search link for a
// name. The name is folded with the given normalizer so the query hits
// the ASCII spellings used in the documents.
func SearchURL(name string, fold Normalizer) string {
	q := name
	if fold != nil {
		if folded := fold(name); folded != "" {
			q = folded
		}
	}
	return searchBase + "%22" + url.QueryEscape(q) + "%22"
}
