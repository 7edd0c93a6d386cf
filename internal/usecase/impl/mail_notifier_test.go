package impl

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockSvc "storefront/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestNotifier(t *testing.T, mailer service.Mailer) *MailNotifier {
	t.Helper()

	return NewMailNotifier(MailNotifierParams{
		Lc:     fxtest.NewLifecycle(t),
		Mailer: mailer,
		Logger: newDiscardLogger(),
	})
}

func TestMailNotifier_DeliversInBackground(t *testing.T) {
	mailer := mockSvc.NewMockMailer(t)
	notifier := newTestNotifier(t, mailer)

	msg := &service.MailMessage{To: "a@example.com", Subject: "Hi"}
	mailer.EXPECT().Send(mock.Anything, msg).Return(nil).Once()

	notifier.Notify(context.Background(), msg)

	require.NoError(t, notifier.Drain(context.Background()))
}

func TestMailNotifier_FailureIsSwallowed(t *testing.T) {
	mailer := mockSvc.NewMockMailer(t)
	notifier := newTestNotifier(t, mailer)

	mailer.EXPECT().Send(mock.Anything, mock.Anything).Return(errors.New("smtp down")).Once()

	notifier.Notify(context.Background(), &service.MailMessage{To: "a@example.com"})

	assert.NoError(t, notifier.Drain(context.Background()))
}

func TestMailNotifier_SendOutlivesRequestContext(t *testing.T) {
	mailer := mockSvc.NewMockMailer(t)
	notifier := newTestNotifier(t, mailer)

	var sawCanceled atomic.Bool
	mailer.EXPECT().Send(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *service.MailMessage) error {
			sawCanceled.Store(ctx.Err() != nil)

			return nil
		}).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	notifier.Notify(ctx, &service.MailMessage{To: "a@example.com"})

	require.NoError(t, notifier.Drain(context.Background()))
	assert.False(t, sawCanceled.Load())
}

func TestMailNotifier_DrainHonoursDeadline(t *testing.T) {
	mailer := mockSvc.NewMockMailer(t)
	notifier := newTestNotifier(t, mailer)

	release := make(chan struct{})
	mailer.EXPECT().Send(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *service.MailMessage) error {
			<-release

			return nil
		}).Once()

	notifier.Notify(context.Background(), &service.MailMessage{To: "a@example.com"})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.Error(t, notifier.Drain(ctx))

	close(release)
	require.NoError(t, notifier.Drain(context.Background()))
}
