package namescan

// Match is a single name occurrence within one page, before document
// identity is attached. Name is the canonical raw spelling upper-cased
// for display; Context is a window of the original, un-normalized page
// text with line breaks collapsed.
type Match struct {
	Name    string
	Page    int
	Context string
}

// MatchRecord ties a match to its source document. Immutable once
// created; the unit of output.
type MatchRecord struct {
	Name          string `json:"name"`
	DocumentTitle string `json:"documentTitle"`
	DocumentURL   string `json:"documentUrl"`
	Page          int    `json:"page"`
	Context       string `json:"context"`
}

// DocumentResult is the outcome of scanning one document. Exactly one
// of Matches or Err is meaningful: a failed document contributes zero
// records but does not abort the batch.
type DocumentResult struct {
	Document Document

	// Matches in page order then occurrence order. Nil when the
	// document failed or was skipped as a duplicate.
	Matches []MatchRecord

	// ContentHash is the xxhash of the fetched bytes, empty when
	// the fetch failed.
	ContentHash string

	// Duplicate is true when the document's content hash matched an
	// earlier document in the same run and deduplication was on.
	Duplicate bool

	// Err is the typed failure (fetch, parse, cancellation), nil on
	// success.
	Err error
}

// Failed reports whether the document could not be scanned.
func (r *DocumentResult) Failed() bool {
	return r.Err != nil
}
