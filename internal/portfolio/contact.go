package portfolio

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"
)

const DefaultSubject = "Contact from Portfolio"

var ErrInvalidEmail = errors.New("invalid email address")

type ContactForm struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Validate applies the same constraints as the form's required and
// type=email attributes.
func (f ContactForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("%w: name", ErrMissingField)
	}
	if strings.TrimSpace(f.Email) == "" {
		return fmt.Errorf("%w: email", ErrMissingField)
	}
	if strings.TrimSpace(f.Message) == "" {
		return fmt.Errorf("%w: message", ErrMissingField)
	}
	addr, err := mail.ParseAddress(f.Email)
	if err != nil || addr.Address != strings.TrimSpace(f.Email) {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, f.Email)
	}
	return nil
}

func (f ContactForm) Body() string {
	return fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s", f.Name, f.Email, f.Message)
}

// Mailto builds the link handed to the mail client.
func (f ContactForm) Mailto(to string) string {
	subject := f.Subject
	if subject == "" {
		subject = DefaultSubject
	}
	return "mailto:" + to + "?subject=" + EncodeURIComponent(subject) + "&body=" + EncodeURIComponent(f.Body())
}

// EncodeURIComponent escapes s the way browsers do for URI components:
// everything except A-Z a-z 0-9 and -_.!~*'() is percent-encoded.
func EncodeURIComponent(s string) string {
	escaped := url.QueryEscape(s)
	r := strings.NewReplacer(
		"+", "%20",
		"%21", "!",
		"%27", "'",
		"%28", "(",
		"%29", ")",
		"%2A", "*",
	)
	return r.Replace(escaped)
}
