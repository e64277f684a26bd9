package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/schemagen"
	"github.com/fwojciec/schemagen/scrape"
)

// result is printed once per scraped URL, using the same envelope as the
// HTTP API.
type result struct {
	URL     string                  `json:"url"`
	Success bool                    `json:"success"`
	Data    *schemagen.ScrapeResult `json:"data,omitempty"`
	Error   string                  `json:"error,omitempty"`
}

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	batch := &scrape.Batch{
		Scraper: deps.Scraper,
		Flags: schemagen.SchemaFlags{
			Article:    !c.NoArticle,
			Breadcrumb: !c.NoBreadcrumb,
			FAQ:        !c.NoFAQ,
		},
		Concurrency: c.Concurrency,
	}

	var progress scrape.ProgressFunc
	if c.Progress {
		progress = progressPrinter(deps.Stderr)
	}
	results := batch.Run(deps.Ctx, c.URLs, progress)

	enc := json.NewEncoder(deps.Stdout)
	if !c.Compact {
		enc.SetIndent("", "  ")
	}
	for _, r := range results {
		out := result{URL: r.URL, Success: r.Err == nil, Data: r.Data}
		if r.Err != nil {
			out.Error = r.Err.Error()
		}
		if err := enc.Encode(out); err != nil {
			return err
		}
	}

	if failed := scrape.Failed(results); failed > 0 {
		return fmt.Errorf("%d of %d URLs failed", failed, len(results))
	}
	return nil
}
