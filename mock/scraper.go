package mock

import (
	"context"

	"github.com/fwojciec/schemagen"
)

var _ schemagen.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of schemagen.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, url string) (*schemagen.ExtractedData, error)
}

func (s *Scraper) Scrape(ctx context.Context, url string) (*schemagen.ExtractedData, error) {
	return s.ScrapeFn(ctx, url)
}
