// Package pdf provides a PDF implementation of namescan.Extractor.
// It uses ledongthuc/pdf (pure Go, no CGO), which decodes font-encoded
// glyphs into valid UTF-8.
package pdf

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/jarvis322/namescan"
	"github.com/ledongthuc/pdf"
)

// Ensure Extractor implements namescan.Extractor at compile time.
var _ namescan.Extractor = (*Extractor)(nil)

// Extractor extracts per-page text from PDF bytes.
type Extractor struct{}

// NewExtractor creates a PDF extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the bytes as a PDF and returns one PageText per
// physical page, 1-based, in document order. Pages with no extractable
// text yield an empty string; only malformed documents return an error.
func (e *Extractor) Extract(data []byte) (pages []namescan.PageText, err error) {
	if len(data) == 0 {
		return nil, namescan.Errorf(namescan.EINVALID, "empty PDF content")
	}

	// ledongthuc/pdf panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = namescan.Errorf(namescan.EINVALID, "malformed PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, namescan.Errorf(namescan.EINVALID, "malformed PDF: %v", err)
	}

	pages = make([]namescan.PageText, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			pages = append(pages, namescan.PageText{Number: i})
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Unreadable page, not a malformed document.
			pages = append(pages, namescan.PageText{Number: i})
			continue
		}

		pages = append(pages, namescan.PageText{
			Number: i,
			Text:   sanitize(text),
		})
	}

	return pages, nil
}

// sanitize strips invalid UTF-8 sequences so downstream matching never
// sees malformed text.
func sanitize(text string) string {
	text = strings.TrimSpace(text)
	if utf8.ValidString(text) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r == utf8.RuneError {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
