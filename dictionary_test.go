package namescan_test

import (
	"testing"

	"github.com/jarvis322/namescan"
	"github.com/stretchr/testify/assert"
)

func TestDictionary(t *testing.T) {
	t.Parallel()

	t.Run("preserves insertion order", func(t *testing.T) {
		t.Parallel()

		d := namescan.NewDictionary("Banu", "Gökçe", "Ali")

		assert.Equal(t, []string{"Banu", "Gökçe", "Ali"}, d.Names())
		assert.Equal(t, 3, d.Len())
	})

	t.Run("rejects raw-spelling duplicates", func(t *testing.T) {
		t.Parallel()

		d := namescan.NewDictionary("Banu")

		assert.False(t, d.Add("Banu"))
		assert.Equal(t, 1, d.Len())
	})

	t.Run("keeps distinct raw spellings that collide after normalization", func(t *testing.T) {
		t.Parallel()

		// Uniqueness is on the raw spelling; the matcher resolves
		// the collision, not the dictionary.
		d := namescan.NewDictionary("Gökçe", "Gokce")

		assert.Equal(t, 2, d.Len())
	})

	t.Run("rejects empty and whitespace names", func(t *testing.T) {
		t.Parallel()

		d := namescan.NewDictionary()

		assert.False(t, d.Add(""))
		assert.False(t, d.Add("   "))
		assert.Equal(t, 0, d.Len())
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		d := namescan.NewDictionary()

		assert.True(t, d.Add("  Banu\n"))
		assert.Equal(t, []string{"Banu"}, d.Names())
	})

	t.Run("names returns a copy", func(t *testing.T) {
		t.Parallel()

		d := namescan.NewDictionary("Banu")
		names := d.Names()
		names[0] = "mutated"

		assert.Equal(t, []string{"Banu"}, d.Names())
	})
}

func TestBaseNames(t *testing.T) {
	t.Parallel()

	names := namescan.BaseNames()

	assert.NotEmpty(t, names)
	assert.Contains(t, names, "Yılmaz")

	// Returned slice is a copy.
	names[0] = "mutated"
	assert.NotContains(t, namescan.BaseNames(), "mutated")
}
