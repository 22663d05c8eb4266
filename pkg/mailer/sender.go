package mailer

import "context"

// Sender defines the minimal interface that email providers must implement.
type Sender interface {
	// Send delivers an email message and returns the provider-assigned message ID.
	// Failures are reported as *ProviderError.
	Send(ctx context.Context, email *Email) (string, error)
}
