package payment

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// SessionIDPlaceholder is substituted into the success URL with the created session id.
const SessionIDPlaceholder = "{CHECKOUT_SESSION_ID}"

// ErrSessionNotFound is returned by the local gateway for unknown session ids.
var ErrSessionNotFound = errors.New("checkout session not found")

// localGateway is an in-process gateway for development. Every session it creates is already paid.
type localGateway struct {
	mu       sync.RWMutex
	sessions map[string]*service.CheckoutSession
	logger   *slog.Logger
}

// NewLocalGateway creates the development gateway.
func NewLocalGateway(logger *slog.Logger) service.PaymentGateway {
	return &localGateway{
		sessions: make(map[string]*service.CheckoutSession),
		logger:   logger,
	}
}

func (g *localGateway) CreateCheckoutSession(_ context.Context, req *service.CheckoutSessionRequest) (*service.CheckoutSession, error) {
	var total int64
	for _, item := range req.LineItems {
		total += item.UnitAmount * item.Quantity
	}

	id := "cs_local_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	session := &service.CheckoutSession{
		ID:                id,
		URL:               strings.ReplaceAll(req.SuccessURL, SessionIDPlaceholder, id),
		Paid:              true,
		ClientReferenceID: req.ClientReferenceID,
		AmountTotal:       total,
		Currency:          req.Currency,
	}

	g.mu.Lock()
	g.sessions[id] = session
	g.mu.Unlock()

	g.logger.Info("[LocalPayment] Checkout session created",
		slog.String("session_id", id),
		slog.Int64("amount_total", total),
	)

	copied := *session

	return &copied, nil
}

func (g *localGateway) GetCheckoutSession(_ context.Context, sessionID string) (*service.CheckoutSession, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	session, ok := g.sessions[sessionID]
	if !ok {
		return nil, errors.Wrapf(ErrSessionNotFound, "session %s", sessionID)
	}
	copied := *session

	return &copied, nil
}
