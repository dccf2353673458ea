// Package scan implements the document-to-match pipeline: candidate
// extraction, dictionary intersection, context-window extraction, and
// the per-document batch runner.
package scan

import (
	"strings"
	"unicode"

	"github.com/jarvis322/namescan"
	"github.com/jarvis322/namescan/bloom"
)

// DefaultWindow is the context radius, in runes, on each side of a hit.
const DefaultWindow = 80

// matcherFPRate is the Bloom pre-filter false positive rate. A false
// positive only costs one extra map lookup.
const matcherFPRate = 0.01

// Matcher finds dictionary names in page text. The normalized key
// index is precomputed once per analysis run, not per page, and is
// safe for concurrent reads.
type Matcher struct {
	normalize namescan.Normalizer
	window    int

	// keys maps each normalized form to one canonical raw spelling.
	// When two raw spellings collide on the same normalized form,
	// the first-encountered spelling in dictionary order wins.
	keys   map[string]string
	filter *bloom.Filter
}

// MatcherOption configures a Matcher.
type MatcherOption func(*Matcher)

// WithWindow sets the context radius in runes.
// Defaults to DefaultWindow (80) if not specified or non-positive.
func WithWindow(n int) MatcherOption {
	return func(m *Matcher) {
		if n > 0 {
			m.window = n
		}
	}
}

// NewMatcher builds a matcher for the dictionary. Dictionary entries
// that normalize to the empty string are ignored.
func NewMatcher(dict *namescan.Dictionary, normalize namescan.Normalizer, opts ...MatcherOption) *Matcher {
	m := &Matcher{
		normalize: normalize,
		window:    DefaultWindow,
		keys:      make(map[string]string, dict.Len()),
	}
	for _, opt := range opts {
		opt(m)
	}

	names := dict.Names()
	m.filter = bloom.NewFilter(uint(max(len(names), 1)), matcherFPRate)
	for _, name := range names {
		key := normalize(name)
		if key == "" {
			continue
		}
		if _, ok := m.keys[key]; ok {
			continue
		}
		m.keys[key] = name
		m.filter.Add(key)
	}

	return m
}

// Keys returns the number of distinct normalized keys.
func (m *Matcher) Keys() int {
	return len(m.keys)
}

// MatchPage returns every dictionary hit on the page in occurrence
// order. Candidates are maximal runs of Latin-script letters, so a key
// never matches as a substring of a longer word. Pages with no
// extractable text yield nil without further work.
func (m *Matcher) MatchPage(page namescan.PageText) []namescan.Match {
	if page.Text == "" {
		return nil
	}

	text := []rune(page.Text)
	var matches []namescan.Match
	for _, tok := range tokenize(text) {
		key := m.normalize(string(text[tok.start:tok.end]))
		if key == "" || !m.filter.Test(key) {
			continue
		}
		raw, ok := m.keys[key]
		if !ok {
			continue
		}

		matches = append(matches, namescan.Match{
			Name:    strings.ToUpper(raw),
			Page:    page.Number,
			Context: m.context(text, tok),
		})
	}
	return matches
}

// context extracts the window around a token from the original text,
// clipped at the page boundaries, with line breaks collapsed to spaces.
func (m *Matcher) context(text []rune, tok span) string {
	start := tok.start - m.window
	if start < 0 {
		start = 0
	}
	end := tok.end + m.window
	if end > len(text) {
		end = len(text)
	}

	window := strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', '\t':
			return ' '
		}
		return r
	}, string(text[start:end]))

	return strings.TrimSpace(window)
}

// span is a token's rune offsets within a page, end exclusive.
type span struct {
	start, end int
}

// tokenize returns the maximal runs of Latin-script letters. Digits,
// punctuation and non-Latin scripts terminate a run and are never part
// of a candidate.
func tokenize(text []rune) []span {
	var spans []span
	start := -1
	for i, r := range text {
		if unicode.Is(unicode.Latin, r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			spans = append(spans, span{start, i})
			start = -1
		}
	}
	if start >= 0 {
		spans = append(spans, span{start, len(text)})
	}
	return spans
}
