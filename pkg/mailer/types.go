package mailer

// Email represents a fully-prepared email message ready for sending.
type Email struct {
	Headers map[string]string // Custom headers
	Subject string            // Email subject
	HTML    string            // HTML body content
	Text    string            // Plain text alternative
	From    string            // Sender address, "Name <addr>" allowed
	ReplyTo string            // Reply-to address
	To      []string          // Recipients (at least one required)
}

// Validate checks that the email carries the fields every provider requires.
func (e *Email) Validate() error {
	if e.From == "" {
		return ErrNoSender
	}
	if len(e.To) == 0 {
		return ErrNoRecipient
	}
	if e.Subject == "" {
		return ErrNoSubject
	}
	if e.HTML == "" {
		return ErrNoContent
	}
	return nil
}
