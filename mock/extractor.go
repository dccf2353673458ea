package mock

import "github.com/jarvis322/namescan"

var _ namescan.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of namescan.Extractor.
type Extractor struct {
	ExtractFn func(data []byte) ([]namescan.PageText, error)
}

func (e *Extractor) Extract(data []byte) ([]namescan.PageText, error) {
	return e.ExtractFn(data)
}
