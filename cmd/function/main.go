// Command function runs the contact endpoint as an AWS Lambda behind an
// API Gateway proxy integration.
package main

import (
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/portfolio/contactmail/internal/app"
	"github.com/portfolio/contactmail/internal/config"
	"github.com/portfolio/contactmail/internal/function"
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

	log := logger.NewWithSentry(cfg.Log)

	svc, err := app.NewContactService(cfg, log, nil)
	if err != nil {
		return err
	}

	// Start blocks for the lifetime of the execution environment.
	lambda.Start(function.NewHandler(svc, log).Handle)
	return nil
}
