// Package mailer defines the provider-neutral email message, the Sender
// contract that delivery providers implement, and the error types used to
// report what went wrong during a send.
//
// # Sending
//
// A Sender delivers a fully composed Email and returns the identifier the
// provider assigned to it:
//
//	sender := resend.New(resend.Config{
//		APIKey:  os.Getenv("RESEND_API_KEY"),
//		Timeout: 10 * time.Second,
//	})
//
//	id, err := sender.Send(ctx, &mailer.Email{
//		From:    "Portfolio Contact <onboarding@resend.dev>",
//		To:      []string{"owner@example.com"},
//		Subject: "Hello",
//		HTML:    "<p>Hi</p>",
//		ReplyTo: "visitor@example.com",
//	})
//
// # Errors
//
// Providers report failures as *ProviderError. The Transport flag separates
// failures that never produced a provider answer (network, DNS, TLS, timeout)
// from answers in which the provider declined the message:
//
//	var pe *mailer.ProviderError
//	if errors.As(err, &pe) && pe.Transport {
//		// the request never reached the provider
//	}
//
// # Templates
//
// ParseTemplate splits a template file into YAML frontmatter and body. The
// frontmatter carries the subject line, which may use Go template syntax:
//
//	---
//	subject: New message from {{.Name}}
//	---
//	<p>{{.Message}}</p>
package mailer
