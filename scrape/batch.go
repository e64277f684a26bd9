package scrape

import (
	"context"
	"sync/atomic"

	"github.com/fwojciec/schemagen"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages a Batch scrapes at once when
// Concurrency is not set.
const DefaultConcurrency = 4

// Batch generates schemas for many URLs concurrently.
type Batch struct {
	Scraper     schemagen.Scraper
	Flags       schemagen.SchemaFlags
	Concurrency int
}

// Result holds the outcome of processing a single URL of a batch.
type Result struct {
	Position int
	URL      string
	Data     *schemagen.ScrapeResult
	Err      error
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// Run scrapes every URL and returns one result per URL in input order.
// Failures are recorded on the corresponding Result; Run itself does not
// stop early. The progress callback, if provided, is invoked from the
// calling goroutine only.
func (b *Batch) Run(ctx context.Context, urls []string, progress ProgressFunc) []Result {
	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan Result, len(urls))
	var completed atomic.Int64
	total := len(urls)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, url := range urls {
			i, url := i, url
			g.Go(func() error {
				resultCh <- b.process(gctx, i, url)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]Result, len(urls))
	for result := range resultCh {
		completed.Add(1)
		results[result.Position] = result

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: int(completed.Load()),
			Total:     total,
			URL:       result.URL,
		}
		if result.Err != nil {
			event.Type = ProgressFailed
			event.Error = result.Err
		}
		progress(event)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}
	return results
}

func (b *Batch) process(ctx context.Context, position int, url string) Result {
	req := &schemagen.ScrapeRequest{
		URL:                url,
		GenerateArticle:    b.Flags.Article,
		GenerateBreadcrumb: b.Flags.Breadcrumb,
		GenerateFAQ:        b.Flags.FAQ,
	}
	data, err := Generate(ctx, b.Scraper, req)
	return Result{Position: position, URL: url, Data: data, Err: err}
}

// Failed returns the number of results that carry an error.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
