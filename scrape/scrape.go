// Package scrape provides the scrape pipeline: fetching a page, extracting
// its metadata and generating the requested schema.org objects from it.
package scrape

import (
	"context"
	"fmt"

	"github.com/fwojciec/schemagen"
)

// Ensure Scraper implements schemagen.Scraper at compile time.
var _ schemagen.Scraper = (*Scraper)(nil)

// Scraper fetches pages and extracts their metadata.
type Scraper struct {
	Fetcher   schemagen.Fetcher
	Extractor schemagen.Extractor
}

// Scrape fetches url once and extracts metadata from the returned markup.
// Any failure is reported as "failed to scrape URL: <cause>".
func (s *Scraper) Scrape(ctx context.Context, url string) (*schemagen.ExtractedData, error) {
	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to scrape URL: %w", err)
	}

	data, err := s.Extractor.Extract(html, url)
	if err != nil {
		return nil, fmt.Errorf("failed to scrape URL: %w", err)
	}
	return data, nil
}

// Generate validates req, scrapes the requested page and formats the schemas
// selected by the request flags.
func Generate(ctx context.Context, scraper schemagen.Scraper, req *schemagen.ScrapeRequest) (*schemagen.ScrapeResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	data, err := scraper.Scrape(ctx, req.URL)
	if err != nil {
		return nil, err
	}

	return &schemagen.ScrapeResult{
		ExtractedData: data,
		Schemas:       schemagen.GenerateSchemas(data, req.URL, req.Flags()),
	}, nil
}
