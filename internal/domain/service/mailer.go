package service

import "context"

// MailMessage is a single outbound email.
type MailMessage struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}

// Mailer delivers transactional email.
type Mailer interface {
	Send(ctx context.Context, msg *MailMessage) error
}
