// Package app assembles the contact pipeline from configuration.
// Both entry points call NewContactService once at startup.
package app

import (
	"fmt"
	"log/slog"

	"github.com/portfolio/contactmail/internal/config"
	"github.com/portfolio/contactmail/internal/contact"
	"github.com/portfolio/contactmail/pkg/mailer"
	"github.com/portfolio/contactmail/pkg/mailer/resend"
)

// NewContactService builds the composer, the Resend sender and the delivery
// client. A missing API key is not an error: the service starts and answers
// every valid submission with "Email service not configured".
func NewContactService(cfg *config.Config, log *slog.Logger, rec contact.Recorder) (*contact.Service, error) {
	composer, err := contact.NewComposer(cfg.HTMLMode)
	if err != nil {
		return nil, fmt.Errorf("contact composer: %w", err)
	}

	provider := cfg.Provider()

	var sender mailer.Sender
	if provider.Configured() {
		s, err := resend.New(cfg.Resend)
		if err != nil {
			return nil, fmt.Errorf("resend sender: %w", err)
		}
		sender = s
	} else {
		log.Warn("RESEND_API_KEY is not set, contact submissions will be rejected")
	}

	delivery := contact.NewDeliveryClient(sender, provider, log)

	opts := []contact.Option{contact.WithLogger(log)}
	if rec != nil {
		opts = append(opts, contact.WithRecorder(rec))
	}
	return contact.NewService(composer, delivery, opts...), nil
}
