// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentMails = 8

// MailNotifier sends mail in the background so requests never wait on the mail provider.
// Pending sends are drained when the application stops.
type MailNotifier struct {
	mailer service.Mailer
	group  *errgroup.Group
	logger *slog.Logger
}

// MailNotifierParams holds dependencies for MailNotifier, injected by Fx.
type MailNotifierParams struct {
	fx.In

	Lc     fx.Lifecycle
	Mailer service.Mailer
	Logger *slog.Logger
}

// NewMailNotifier creates the notifier and registers its drain on stop.
func NewMailNotifier(params MailNotifierParams) *MailNotifier {
	group := &errgroup.Group{}
	group.SetLimit(maxConcurrentMails)

	notifier := &MailNotifier{
		mailer: params.Mailer,
		group:  group,
		logger: params.Logger,
	}

	params.Lc.Append(fx.Hook{
		OnStop: notifier.Drain,
	})

	return notifier
}

// Notify queues msg for delivery. Failures are logged and otherwise ignored.
func (n *MailNotifier) Notify(ctx context.Context, msg *service.MailMessage) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, n.logger)
	sendCtx := context.WithoutCancel(ctx)

	n.group.Go(func() error {
		ctx, cancel := context.WithTimeout(sendCtx, lifecycle.DefaultTimeout)
		defer cancel()

		if err := n.mailer.Send(ctx, msg); err != nil {
			logger.Warn("Failed to send mail",
				slog.String("to", msg.To),
				slog.String("subject", msg.Subject),
				slog.Any("error", err),
			)

			return nil
		}
		logger.Debug("Mail delivered", slog.String("to", msg.To))

		return nil
	})
}

// Drain waits for queued mail or until ctx is done.
func (n *MailNotifier) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		_ = n.group.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "mail notifier drain interrupted")
	}
}
