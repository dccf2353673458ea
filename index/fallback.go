package index

import "github.com/jarvis322/namescan"

// DefaultIndexURL is the live document index page.
const DefaultIndexURL = "https://www.justice.gov/epstein"

// defaultFallback is the static descriptor list used when the live
// index is unreachable or empty. It mirrors the first public release
// batch; titles follow the index page's link text.
var defaultFallback = []namescan.Document{
	{Title: "Epstein Files Part 1", URL: "https://www.justice.gov/epstein/files/DOJ-OGR-00000001.pdf"},
	{Title: "Epstein Files Part 2", URL: "https://www.justice.gov/epstein/files/DOJ-OGR-00000002.pdf"},
	{Title: "Epstein Files Part 3", URL: "https://www.justice.gov/epstein/files/DOJ-OGR-00000003.pdf"},
	{Title: "Epstein Files Part 4", URL: "https://www.justice.gov/epstein/files/DOJ-OGR-00000004.pdf"},
	{Title: "Epstein Files Part 5", URL: "https://www.justice.gov/epstein/files/DOJ-OGR-00000005.pdf"},
	{Title: "Epstein Files Part 6", URL: "https://www.justice.gov/epstein/files/DOJ-OGR-00000006.pdf"},
	{Title: "Epstein Files Part 7", URL: "https://www.justice.gov/epstein/files/DOJ-OGR-00000007.pdf"},
	{Title: "Epstein Files Part 8", URL: "https://www.justice.gov/epstein/files/DOJ-OGR-00000008.pdf"},
}

// DefaultFallback returns a copy of the built-in fallback list.
func DefaultFallback() []namescan.Document {
	docs := make([]namescan.Document, len(defaultFallback))
	copy(docs, defaultFallback)
	return docs
}
