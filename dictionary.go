package namescan

import "strings"

// Normalizer folds locale-specific text to a canonical ASCII-folded,
// lower-cased form used for comparison. It must be deterministic,
// side-effect-free and idempotent; malformed input degrades to "".
// The original spelling is preserved separately for display.
type Normalizer func(string) string

// Dictionary is the set of names to search for. Uniqueness is on the
// raw spelling; two distinct raw spellings may collide after
// normalization, which the matcher resolves deterministically
// (first-encountered spelling wins).
//
// A Dictionary is built once per session and must not be mutated while
// an analysis run is in progress.
type Dictionary struct {
	names []string
	seen  map[string]struct{}
}

// NewDictionary creates a dictionary from the given names, preserving
// insertion order and dropping empty or duplicate raw spellings.
func NewDictionary(names ...string) *Dictionary {
	d := &Dictionary{seen: make(map[string]struct{})}
	for _, name := range names {
		d.Add(name)
	}
	return d
}

// Add inserts a name. It reports whether the name was added; empty
// strings and raw-spelling duplicates are rejected.
func (d *Dictionary) Add(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	if _, ok := d.seen[name]; ok {
		return false
	}
	d.seen[name] = struct{}{}
	d.names = append(d.names, name)
	return true
}

// Names returns the raw spellings in insertion order.
func (d *Dictionary) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	return len(d.names)
}
