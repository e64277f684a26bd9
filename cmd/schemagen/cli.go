package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/schemagen"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Scraper schemagen.Scraper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool          `short:"v" help:"Enable debug logging"`
	Timeout time.Duration `short:"t" default:"10s" env:"SCHEMAGEN_TIMEOUT" help:"Fetch timeout per page"`

	Scrape ScrapeCmd `cmd:"" help:"Scrape pages and print their structured data as JSON"`
	Serve  ServeCmd  `cmd:"" help:"Run the HTTP API"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URLs         []string `arg:"" name:"url" help:"Page URLs to scrape"`
	NoArticle    bool     `help:"Do not generate the Article schema"`
	NoBreadcrumb bool     `help:"Do not generate the BreadcrumbList schema"`
	NoFAQ        bool     `name:"no-faq" help:"Do not generate the FAQPage schema"`
	Concurrency  int      `short:"c" default:"4" help:"Concurrent scrape limit"`
	Compact      bool     `help:"Print one JSON document per line"`
	Progress     bool     `short:"p" help:"Report progress on stderr"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":5000" env:"SCHEMAGEN_ADDR" help:"Address to listen on"`
}
