package contact

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/portfolio/contactmail/pkg/logger"
	"github.com/portfolio/contactmail/pkg/mailer"
)

const (
	// SenderAddress is the fixed From of every notification.
	SenderAddress = "Portfolio Contact <onboarding@resend.dev>"

	// RecipientAddress is the site owner's mailbox.
	RecipientAddress = "hk386579@gmail.com"

	// DefaultProviderTimeout bounds a single provider call.
	DefaultProviderTimeout = 10 * time.Second
)

// ErrServiceNotConfigured is returned by health checks when no API key is set.
var ErrServiceNotConfigured = errors.New("email service not configured")

// ErrorKind classifies a failed delivery.
type ErrorKind string

const (
	KindNone                 ErrorKind = ""
	KindServiceNotConfigured ErrorKind = "service_not_configured"
	KindProviderRejection    ErrorKind = "provider_rejection"
	KindTransportException   ErrorKind = "transport_exception"
)

// ProviderConfig holds the provider settings resolved at startup.
type ProviderConfig struct {
	APIKey           string
	SenderAddress    string
	RecipientAddress string
	Timeout          time.Duration
}

// NewProviderConfig returns a config with the fixed sender and recipient.
// A non-positive timeout selects DefaultProviderTimeout.
func NewProviderConfig(apiKey string, timeout time.Duration) ProviderConfig {
	if timeout <= 0 {
		timeout = DefaultProviderTimeout
	}
	return ProviderConfig{
		APIKey:           apiKey,
		SenderAddress:    SenderAddress,
		RecipientAddress: RecipientAddress,
		Timeout:          timeout,
	}
}

// Configured reports whether an API key is present.
func (c ProviderConfig) Configured() bool {
	return c.APIKey != ""
}

// DeliveryOutcome is the result of one delivery attempt.
// Exactly one of MessageID (on success) or ErrorKind is meaningful.
type DeliveryOutcome struct {
	Success     bool
	MessageID   string
	ErrorKind   ErrorKind
	ErrorDetail string
}

// DeliveryClient hands composed messages to the email provider.
type DeliveryClient struct {
	sender mailer.Sender
	config ProviderConfig
	logger *slog.Logger
}

// NewDeliveryClient creates a client. sender may be nil when the API key is
// missing; every Send then reports KindServiceNotConfigured.
func NewDeliveryClient(sender mailer.Sender, cfg ProviderConfig, log *slog.Logger) *DeliveryClient {
	if log == nil {
		log = logger.NewNope()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultProviderTimeout
	}
	return &DeliveryClient{sender: sender, config: cfg, logger: log}
}

// Send delivers msg to the owner with replyTo as the Reply-To address.
// It never returns an error; failures are described by the outcome.
func (d *DeliveryClient) Send(ctx context.Context, msg Message, replyTo string) DeliveryOutcome {
	if !d.config.Configured() || d.sender == nil {
		d.logger.ErrorContext(ctx, "email provider API key is not configured")
		return DeliveryOutcome{ErrorKind: KindServiceNotConfigured}
	}

	ctx, cancel := context.WithTimeout(ctx, d.config.Timeout)
	defer cancel()

	id, err := d.sender.Send(ctx, &mailer.Email{
		From:    d.config.SenderAddress,
		To:      []string{d.config.RecipientAddress},
		ReplyTo: replyTo,
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
	})
	if err == nil {
		return DeliveryOutcome{Success: true, MessageID: id}
	}

	if pe, ok := mailer.AsProviderError(err); ok {
		if pe.Transport {
			return DeliveryOutcome{ErrorKind: KindTransportException, ErrorDetail: pe.Detail}
		}
		return DeliveryOutcome{ErrorKind: KindProviderRejection, ErrorDetail: pe.Detail}
	}
	return DeliveryOutcome{ErrorKind: KindTransportException, ErrorDetail: err.Error()}
}

// Healthcheck reports whether the provider can be used at all.
// It does not call the provider.
func (d *DeliveryClient) Healthcheck() func(context.Context) error {
	return func(context.Context) error {
		if !d.config.Configured() || d.sender == nil {
			return ErrServiceNotConfigured
		}
		return nil
	}
}
