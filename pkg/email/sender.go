package email

import (
	"context"
	"fmt"

	"codeforge-backend/internal/domain"
)

// Sender is the interface that all email providers must implement.
// SMTP, Gmail API, SES and the log-only sender are interchangeable behind it.
type Sender interface {
	// Send delivers one message. Any provider failure is returned as a *TransportError.
	Send(ctx context.Context, msg domain.NotificationMessage) error
}

// TransportError wraps a provider rejection for a single message.
type TransportError struct {
	Provider  string
	Recipient string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: send to %s: %v", e.Provider, e.Recipient, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func transportErr(provider, recipient string, err error) *TransportError {
	return &TransportError{Provider: provider, Recipient: recipient, Err: err}
}
