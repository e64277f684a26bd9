package mock

import "github.com/fwojciec/schemagen"

var _ schemagen.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of schemagen.Extractor.
type Extractor struct {
	ExtractFn func(html, sourceURL string) (*schemagen.ExtractedData, error)
}

func (e *Extractor) Extract(html, sourceURL string) (*schemagen.ExtractedData, error) {
	return e.ExtractFn(html, sourceURL)
}
