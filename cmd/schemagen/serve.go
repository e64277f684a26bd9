package main

import (
	"os"
	"os/signal"
	"syscall"

	sghttp "github.com/fwojciec/schemagen/http"
	sgprom "github.com/fwojciec/schemagen/prometheus"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Run executes the serve command. It blocks until the process is interrupted
// or the parent context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prom.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := sgprom.NewMetrics(reg)

	server := sghttp.NewServer(
		sgprom.NewScraper(deps.Scraper, metrics),
		deps.Logger,
		sghttp.WithMiddleware(metrics.Middleware),
		sghttp.WithMetricsHandler(sgprom.Handler(reg)),
	)

	return server.ListenAndServe(ctx, c.Addr)
}
