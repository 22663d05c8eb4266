package mailer

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

// Template is a template file split into its frontmatter and body.
type Template struct {
	Metadata map[string]any
	Subject  string // "subject" frontmatter key, empty when absent
	Body     string
}

// ParseTemplate extracts YAML frontmatter delimited by "---" lines from content.
// Content without a leading delimiter is returned as body with empty metadata.
func ParseTemplate(content []byte) (*Template, error) {
	delim := []byte(frontmatterDelimiter)
	if !bytes.HasPrefix(content, delim) {
		return &Template{Metadata: map[string]any{}, Body: string(content)}, nil
	}

	rest := bytes.TrimLeft(content[len(delim):], "\r\n")
	if len(rest) == 0 {
		return nil, fmt.Errorf("%w: no content after opening delimiter", ErrInvalidFrontmatter)
	}

	end := bytes.Index(rest, delim)
	if end == -1 {
		return nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	head := rest[:end]
	body := rest[end+len(delim):]
	switch {
	case bytes.HasPrefix(body, []byte("\r\n")):
		body = body[2:]
	case bytes.HasPrefix(body, []byte("\n")):
		body = body[1:]
	}

	meta := map[string]any{}
	if len(bytes.TrimSpace(head)) > 0 {
		if err := yaml.Unmarshal(head, &meta); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}

	tmpl := &Template{Metadata: meta, Body: string(body)}
	if v, ok := meta["subject"]; ok {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: subject must be a string", ErrInvalidFrontmatter)
		}
		tmpl.Subject = s
	}
	return tmpl, nil
}
