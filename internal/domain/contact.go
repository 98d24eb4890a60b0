package domain

import (
	"fmt"
	"strings"
	"time"
)

// ContactMessage is one submission from the public contact form.
type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Message   string
	Status    string
	CreatedAt time.Time
}

// NewContactMessage validates the form and stamps the initial status.
func NewContactMessage(name, email, subject, message string) (ContactMessage, error) {
	m := ContactMessage{
		Name:    strings.TrimSpace(name),
		Email:   strings.TrimSpace(email),
		Subject: strings.TrimSpace(subject),
		Message: strings.TrimSpace(message),
		Status:  "new",
	}
	switch {
	case m.Name == "":
		return ContactMessage{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	case m.Email == "":
		return ContactMessage{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	case m.Subject == "":
		return ContactMessage{}, fmt.Errorf("%w: subject is required", ErrInvalidInput)
	case m.Message == "":
		return ContactMessage{}, fmt.Errorf("%w: message is required", ErrInvalidInput)
	}
	return m, nil
}
