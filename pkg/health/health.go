package health

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"
)

const (
	defaultTimeout = 3 * time.Second

	// StatusOK indicates the process (or every check) is healthy.
	StatusOK = "OK"
	// StatusUnavailable indicates one or more checks failed.
	StatusUnavailable = "UNAVAILABLE"
)

// CheckFunc is the standard health check function signature.
type CheckFunc func(ctx context.Context) error

// Checks is a map of named health check functions.
type Checks map[string]CheckFunc

// Response is the JSON body written by both handlers.
type Response struct {
	Checks  map[string]Check `json:"checks,omitempty"`
	Status  string           `json:"status"`
	Message string           `json:"message,omitempty"`
}

// Check represents the status of a single health check.
type Check struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type config struct {
	logger  *slog.Logger
	timeout time.Duration
}

// Option configures health check behavior.
type Option func(*config)

// WithTimeout sets the timeout for all checks.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger for failed checks.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		timeout: defaultTimeout,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// runChecks executes all checks in parallel. A check that outlives the
// timeout is reported as ErrCheckTimeout.
func runChecks(ctx context.Context, checks Checks, cfg *config) *Response {
	if len(checks) == 0 {
		return &Response{Status: StatusOK}
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]Check, len(checks))
		status  = StatusOK
	)

	for name, check := range checks {
		wg.Add(1)
		go func() {
			defer wg.Done()

			done := make(chan error, 1)
			go func() { done <- check(ctx) }()

			var err error
			select {
			case err = <-done:
			case <-ctx.Done():
				err = ErrCheckTimeout
			}

			result := Check{Status: StatusOK}
			if err != nil {
				result = Check{Status: StatusUnavailable, Error: err.Error()}
				cfg.logger.WarnContext(ctx, "health check failed",
					slog.String("check", name),
					slog.String("error", err.Error()),
				)
			}

			mu.Lock()
			results[name] = result
			if err != nil {
				status = StatusUnavailable
			}
			mu.Unlock()
		}()
	}

	wg.Wait()

	return &Response{Status: status, Checks: results}
}
