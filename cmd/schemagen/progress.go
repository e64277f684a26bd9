package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/schemagen/scrape"
)

// progressURLWidth is the display width of URLs in progress lines.
const progressURLWidth = 60

// progressPrinter returns a callback writing one line per finished URL to w.
func progressPrinter(w io.Writer) scrape.ProgressFunc {
	return func(e scrape.ProgressEvent) {
		switch e.Type {
		case scrape.ProgressCompleted:
			fmt.Fprintf(w, "[%d/%d] ok   %s\n", e.Completed, e.Total, truncateURL(e.URL, progressURLWidth))
		case scrape.ProgressFailed:
			fmt.Fprintf(w, "[%d/%d] fail %s: %v\n", e.Completed, e.Total, truncateURL(e.URL, progressURLWidth), e.Error)
		}
	}
}

// truncateURL shortens a URL for display, keeping the end which is more informative.
func truncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}
