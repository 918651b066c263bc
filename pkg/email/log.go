package email

import (
	"context"

	"codeforge-backend/internal/domain"
	"codeforge-backend/pkg/logger"
)

// LogSender is a basic provider that logs messages instead of sending them.
// Used for local development and dry runs.
type LogSender struct {
	log *logger.Logger
}

// NewLogSender constructs a logging provider.
func NewLogSender(log *logger.Logger) *LogSender {
	return &LogSender{log: log.WithComponent("mail_log")}
}

// Send logs the message and returns nil to indicate success.
func (l *LogSender) Send(ctx context.Context, msg domain.NotificationMessage) error {
	l.log.Info().
		Str("to", logger.RedactEmail(msg.To)).
		Str("reply_to", logger.RedactEmail(msg.ReplyTo)).
		Str("subject", msg.Subject).
		Int("html_bytes", len(msg.Body)).
		Msg("message delivered to log")
	return nil
}
