package schemagen

import "context"

// Scraper fetches a page and extracts its metadata.
type Scraper interface {
	// Scrape fetches url and returns the extracted metadata.
	// The fetch is attempted once; failures are not retried.
	Scrape(ctx context.Context, url string) (*ExtractedData, error)
}
