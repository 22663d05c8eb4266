package contact

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"

	"github.com/portfolio/contactmail/pkg/mailer"
	"github.com/portfolio/contactmail/pkg/sanitizer"
)

//go:embed templates/contact.html
var templatesFS embed.FS

const contactTemplate = "templates/contact.html"

// HTMLMode selects how submitted fields are made safe for the HTML body.
type HTMLMode string

const (
	HTMLEscape   HTMLMode = "escape"
	HTMLSanitize HTMLMode = "sanitize"
	HTMLRaw      HTMLMode = "raw"
)

// ParseHTMLMode converts a config value into an HTMLMode.
// An empty string selects HTMLEscape.
func ParseHTMLMode(s string) (HTMLMode, error) {
	switch m := HTMLMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return HTMLEscape, nil
	case HTMLEscape, HTMLSanitize, HTMLRaw:
		return m, nil
	default:
		return "", fmt.Errorf("unknown html mode %q", s)
	}
}

// Message is the subject and bodies of a composed notification.
type Message struct {
	Subject string
	HTML    string
	Text    string
}

// Composer renders submissions into notification emails.
// It is safe for concurrent use.
type Composer struct {
	mode    HTMLMode
	subject *texttemplate.Template
	html    *template.Template
}

// NewComposer parses the embedded contact template.
func NewComposer(mode HTMLMode) (*Composer, error) {
	if mode == "" {
		mode = HTMLEscape
	}
	if _, err := ParseHTMLMode(string(mode)); err != nil {
		return nil, err
	}

	content, err := templatesFS.ReadFile(contactTemplate)
	if err != nil {
		return nil, fmt.Errorf("read contact template: %w", err)
	}
	tmpl, err := mailer.ParseTemplate(content)
	if err != nil {
		return nil, fmt.Errorf("parse contact template: %w", err)
	}
	if tmpl.Subject == "" {
		return nil, fmt.Errorf("contact template: %w", mailer.ErrNoSubject)
	}

	subject, err := texttemplate.New("subject").Option("missingkey=error").Parse(tmpl.Subject)
	if err != nil {
		return nil, fmt.Errorf("parse subject: %w", err)
	}
	body, err := template.New("contact").Option("missingkey=error").Parse(tmpl.Body)
	if err != nil {
		return nil, fmt.Errorf("parse body: %w", err)
	}

	return &Composer{mode: mode, subject: subject, html: body}, nil
}

// htmlFields holds already-safe fragments; the template must not escape them again.
type htmlFields struct {
	Name    template.HTML
	Email   template.HTML
	Message template.HTML
}

// Compose renders the subject, HTML body and plain text body for s.
func (c *Composer) Compose(s Submission) (Message, error) {
	var subject bytes.Buffer
	if err := c.subject.Execute(&subject, s); err != nil {
		return Message{}, fmt.Errorf("render subject: %w", err)
	}

	var html bytes.Buffer
	if err := c.html.Execute(&html, c.fields(s)); err != nil {
		return Message{}, fmt.Errorf("render body: %w", err)
	}

	return Message{
		Subject: subject.String(),
		HTML:    html.String(),
		Text:    plainText(s),
	}, nil
}

func (c *Composer) fields(s Submission) htmlFields {
	var clean func(string) string
	switch c.mode {
	case HTMLRaw:
		clean = func(v string) string { return v }
	case HTMLSanitize:
		clean = sanitizer.SanitizeHTML
	default:
		clean = template.HTMLEscapeString
	}

	return htmlFields{
		Name:    template.HTML(clean(s.Name)),
		Email:   template.HTML(clean(s.Email)),
		Message: template.HTML(lineBreaks(clean(s.Message))),
	}
}

// lineBreaks runs after cleaning so the sanitizer never rewrites the inserted tags.
func lineBreaks(s string) string {
	return strings.ReplaceAll(s, "\n", "<br>")
}

func plainText(s Submission) string {
	var b strings.Builder
	b.WriteString("New Contact Form Submission\n\n")
	fmt.Fprintf(&b, "Name: %s\n", s.Name)
	fmt.Fprintf(&b, "Email: %s\n\n", s.Email)
	b.WriteString("Message:\n")
	b.WriteString(s.Message)
	b.WriteString("\n\nThis message was sent from your portfolio contact form.\n")
	return b.String()
}
