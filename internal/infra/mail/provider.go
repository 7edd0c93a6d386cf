package mail

import (
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

// New selects the mailer from configuration. A missing mail section falls back to the log mailer.
func New(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.Mail == nil {
		logger.Info("Mail not configured, using log mailer")

		return NewLogMailer(logger), nil
	}

	switch cfg.Mail.Provider {
	case constants.MailProviderSMTP:
		logger.Info("Using SMTP mailer", slog.String("host", cfg.Mail.Host))

		return NewSMTPMailer(cfg.Mail, logger)

	case constants.MailProviderLog, "":
		return NewLogMailer(logger), nil

	default:
		return nil, errors.Errorf("unknown mail provider: %s", cfg.Mail.Provider)
	}
}
