package mailer

import "errors"

var (
	// ErrNoSender indicates no From address was specified.
	ErrNoSender = errors.New("email must have a sender")

	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("email must have a subject")

	// ErrNoContent indicates no HTML content was provided.
	ErrNoContent = errors.New("email must have HTML content")

	// ErrInvalidFrontmatter indicates invalid YAML frontmatter.
	ErrInvalidFrontmatter = errors.New("invalid frontmatter")
)

// ProviderError describes a failed provider call.
// Transport is true when no provider answer was received.
type ProviderError struct {
	Err       error  // underlying client error
	Provider  string // provider name, e.g. "resend"
	Detail    string // human-readable reason, safe to return to callers
	Transport bool
}

func (e *ProviderError) Error() string {
	if e.Transport {
		return e.Provider + ": transport failure: " + e.Detail
	}
	return e.Provider + ": rejected: " + e.Detail
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// AsProviderError extracts the ProviderError from an error if present.
func AsProviderError(err error) (*ProviderError, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
