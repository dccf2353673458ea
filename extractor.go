package namescan

// PageText is the extracted text of a single document page.
// Page numbers are 1-based and reflect physical page order.
type PageText struct {
	Number int
	Text   string
}

// Extractor extracts per-page text from raw document bytes.
type Extractor interface {
	// Extract parses the bytes as a PDF and returns the text of each
	// page in document order. A page with no extractable text (e.g.,
	// an image-only scan) yields a PageText with an empty string
	// rather than an error. Returns EINVALID if the bytes do not
	// form a valid PDF.
	Extract(data []byte) ([]PageText, error)
}
