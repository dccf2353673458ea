package pdf_test

import (
	"testing"

	"github.com/jarvis322/namescan"
	"github.com/jarvis322/namescan/pdf"
	"github.com/stretchr/testify/assert"
)

func TestExtract_EmptyBytes(t *testing.T) {
	t.Parallel()

	e := pdf.NewExtractor()

	pages, err := e.Extract(nil)

	assert.Nil(t, pages)
	assert.Equal(t, namescan.EINVALID, namescan.ErrorCode(err))
}

func TestExtract_MalformedBytes(t *testing.T) {
	t.Parallel()

	e := pdf.NewExtractor()

	pages, err := e.Extract([]byte("this is not a PDF document"))

	assert.Nil(t, pages)
	assert.Equal(t, namescan.EINVALID, namescan.ErrorCode(err))
}

func TestExtract_TruncatedHeader(t *testing.T) {
	t.Parallel()

	e := pdf.NewExtractor()

	// A valid magic number with no body must not be treated as a
	// parseable document.
	pages, err := e.Extract([]byte("%PDF-1.7\n"))

	assert.Nil(t, pages)
	assert.Equal(t, namescan.EINVALID, namescan.ErrorCode(err))
}
