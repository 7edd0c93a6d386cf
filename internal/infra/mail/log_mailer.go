package mail

import (
	"context"
	"log/slog"

	"storefront/internal/domain/service"
)

// logMailer writes mail to the log instead of sending it.
type logMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a mailer for local development.
func NewLogMailer(logger *slog.Logger) service.Mailer {
	return &logMailer{logger: logger}
}

func (m *logMailer) Send(_ context.Context, msg *service.MailMessage) error {
	m.logger.Info("[LogMailer] Mail",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("text", msg.TextBody),
	)

	return nil
}
