// Package payment implements the checkout PaymentGateway.
package payment

import (
	"context"
	"log/slog"

	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// stripeGateway implements PaymentGateway with Stripe Checkout.
type stripeGateway struct {
	api    *client.API
	logger *slog.Logger
}

// NewStripeGateway creates a gateway using the given secret key and optional backends.
func NewStripeGateway(secretKey string, backends *stripe.Backends, logger *slog.Logger) service.PaymentGateway {
	api := &client.API{}
	api.Init(secretKey, backends)

	return &stripeGateway{api: api, logger: logger}
}

// CreateCheckoutSession opens a hosted payment page in payment mode.
func (g *stripeGateway) CreateCheckoutSession(ctx context.Context, req *service.CheckoutSessionRequest) (*service.CheckoutSession, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(req.LineItems))
	for _, item := range req.LineItems {
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(item.Name),
		}
		if item.Description != "" {
			productData.Description = stripe.String(item.Description)
		}

		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(req.Currency),
				UnitAmount:  stripe.Int64(item.UnitAmount),
				ProductData: productData,
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		SuccessURL:         stripe.String(req.SuccessURL),
		CancelURL:          stripe.String(req.CancelURL),
		ClientReferenceID:  stripe.String(req.ClientReferenceID),
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	params.Context = ctx

	session, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, errors.Wrap(err, "stripe: create checkout session")
	}

	g.logger.Debug("Stripe checkout session created", slog.String("session_id", session.ID))

	return toCheckoutSession(session), nil
}

// GetCheckoutSession re-reads a session to learn its payment status.
func (g *stripeGateway) GetCheckoutSession(ctx context.Context, sessionID string) (*service.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	session, err := g.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return nil, errors.Wrapf(err, "stripe: get checkout session %s", sessionID)
	}

	return toCheckoutSession(session), nil
}

func toCheckoutSession(session *stripe.CheckoutSession) *service.CheckoutSession {
	return &service.CheckoutSession{
		ID:                session.ID,
		URL:               session.URL,
		Paid:              session.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		ClientReferenceID: session.ClientReferenceID,
		AmountTotal:       session.AmountTotal,
		Currency:          string(session.Currency),
	}
}
