package resend

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/resend/resend-go/v3"

	"github.com/portfolio/contactmail/pkg/mailer"
)

const providerName = "resend"

// Sender implements mailer.Sender using the Resend API.
type Sender struct {
	client *resend.Client
}

// New creates a new Resend sender whose HTTP client is bounded by cfg.Timeout.
func New(cfg Config) (*Sender, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	client := resend.NewCustomClient(&http.Client{Timeout: cfg.Timeout}, cfg.APIKey)
	if cfg.BaseURL != "" {
		u, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("resend: invalid base url: %w", err)
		}
		client.BaseURL = u
	}

	return &Sender{client: client}, nil
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) (string, error) {
	if err := email.Validate(); err != nil {
		return "", err
	}

	req := &resend.SendEmailRequest{
		From:    email.From,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
		Headers: email.Headers,
	}

	resp, err := s.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return "", classify(ctx, err)
	}

	return resp.Id, nil
}

// classify sorts a client error into a transport failure or a provider rejection.
func classify(ctx context.Context, err error) *mailer.ProviderError {
	pe := &mailer.ProviderError{
		Provider: providerName,
		Detail:   detail(err),
		Err:      err,
	}

	var (
		urlErr *url.Error
		netErr net.Error
	)
	switch {
	case errors.As(err, &urlErr), errors.As(err, &netErr):
		pe.Transport = true
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		pe.Transport = true
	case ctx.Err() != nil:
		pe.Transport = true
		pe.Detail = ctx.Err().Error()
	}

	return pe
}

// detail strips the client's "[ERROR]: " decoration from API error messages.
func detail(err error) string {
	msg := err.Error()
	msg = strings.TrimPrefix(msg, "[ERROR]: ")
	return strings.TrimSpace(msg)
}
