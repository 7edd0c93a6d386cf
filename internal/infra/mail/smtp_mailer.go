// Package mail delivers transactional email.
package mail

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	gomail "github.com/wneessen/go-mail"
)

// smtpMailer implements Mailer over SMTP.
type smtpMailer struct {
	from   string
	client *gomail.Client
	logger *slog.Logger
}

// NewSMTPMailer creates an SMTP mailer from configuration.
func NewSMTPMailer(cfg *config.MailConfig, logger *slog.Logger) (service.Mailer, error) {
	if cfg.Host == "" {
		return nil, errors.New("mail host is required for smtp provider")
	}
	if cfg.From == "" {
		return nil, errors.New("mail sender address is required")
	}

	opts := []gomail.Option{gomail.WithTLSPolicy(gomail.TLSOpportunistic)}
	if cfg.Port > 0 {
		opts = append(opts, gomail.WithPort(cfg.Port))
	}
	if cfg.TLS {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create smtp client")
	}

	return &smtpMailer{from: cfg.From, client: client, logger: logger}, nil
}

func (m *smtpMailer) Send(ctx context.Context, msg *service.MailMessage) error {
	message, err := buildMessage(m.from, msg)
	if err != nil {
		return err
	}

	if err := m.client.DialAndSendWithContext(ctx, message); err != nil {
		return errors.Wrapf(err, "failed to send mail to %s", msg.To)
	}

	m.logger.Debug("Mail sent", slog.String("to", msg.To), slog.String("subject", msg.Subject))

	return nil
}

func buildMessage(from string, msg *service.MailMessage) (*gomail.Msg, error) {
	message := gomail.NewMsg()
	if err := message.From(from); err != nil {
		return nil, errors.Wrap(err, "invalid sender address")
	}
	if err := message.To(msg.To); err != nil {
		return nil, errors.Wrap(err, "invalid recipient address")
	}
	message.Subject(msg.Subject)

	switch {
	case msg.TextBody != "" && msg.HTMLBody != "":
		message.SetBodyString(gomail.TypeTextPlain, msg.TextBody)
		message.AddAlternativeString(gomail.TypeTextHTML, msg.HTMLBody)
	case msg.HTMLBody != "":
		message.SetBodyString(gomail.TypeTextHTML, msg.HTMLBody)
	default:
		message.SetBodyString(gomail.TypeTextPlain, msg.TextBody)
	}

	return message, nil
}
