package contact

import (
	"errors"
	"regexp"
)

var (
	// ErrMissingField indicates name, email or message is absent or empty.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidEmailFormat indicates the email is not local-part@domain.tld.
	ErrInvalidEmailFormat = errors.New("invalid email format")
)

// Whitespace covers ASCII space characters, vertical tab, the Unicode
// separator categories and the BOM, i.e. everything browsers treat as \s.
const notSpaceOrAt = `[^\s\x{0B}\p{Z}\x{FEFF}@]+`

var emailPattern = regexp.MustCompile(`^` + notSpaceOrAt + `@` + notSpaceOrAt + `\.` + notSpaceOrAt + `$`)

// ValidationError reports which field failed and why.
type ValidationError struct {
	Err   error
	Field string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks a raw submission for completeness and email syntax.
// Fields are checked in order name, email, message; the first failure wins.
func Validate(raw RawSubmission) (Submission, error) {
	fields := []struct {
		name  string
		value *string
	}{
		{"name", raw.Name},
		{"email", raw.Email},
		{"message", raw.Message},
	}
	for _, f := range fields {
		if f.value == nil || *f.value == "" {
			return Submission{}, &ValidationError{Err: ErrMissingField, Field: f.name}
		}
	}

	if !emailPattern.MatchString(*raw.Email) {
		return Submission{}, &ValidationError{Err: ErrInvalidEmailFormat, Field: "email"}
	}

	return Submission{
		Name:    *raw.Name,
		Email:   *raw.Email,
		Message: *raw.Message,
	}, nil
}
