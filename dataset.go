package namescan

// baseNames is the built-in dataset: Turkish names and organisations
// searched by default. Entries are single words because matching is
// token-based; a person is found via surname or given name. Extended
// per session via flags or a names file, never removed at runtime.
var baseNames = []string{
	// Business and venues.
	"Özyeğin",
	"Rixos",
	"Sanko",
	"Sembol",

	// Politics and bureaucracy.
	"Erdoğan",
	"Davutoğlu",
	"Çavuşoğlu",
	"Bağış",
	"Çiller",

	// Most common Turkish surnames.
	"Yılmaz",
	"Kaya",
	"Demir",
	"Şahin",
	"Çelik",
}

// BaseNames returns a copy of the built-in name dataset.
func BaseNames() []string {
	out := make([]string, len(baseNames))
	copy(out, baseNames)
	return out
}
