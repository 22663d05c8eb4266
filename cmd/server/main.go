// Command server runs the contact endpoint as a long-lived HTTP service.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/portfolio/contactmail/internal/app"
	"github.com/portfolio/contactmail/internal/config"
	"github.com/portfolio/contactmail/internal/metrics"
	"github.com/portfolio/contactmail/internal/server"
	"github.com/portfolio/contactmail/internal/web"
	"github.com/portfolio/contactmail/middlewares"
	"github.com/portfolio/contactmail/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.NewWithSentry(cfg.Log, middlewares.RequestIDExtractor())

	m := metrics.NewDefault()

	svc, err := app.NewContactService(cfg, log, m)
	if err != nil {
		return err
	}

	return server.New(svc, m, log).Run(cfg.Addr(),
		web.Logger(log),
		web.ShutdownTimeout(cfg.ShutdownTimeout),
		web.ShutdownHook(func(context.Context) error {
			logger.Flush(2 * time.Second)
			return nil
		}),
	)
}
