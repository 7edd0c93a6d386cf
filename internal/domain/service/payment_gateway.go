package service

import "context"

// PaymentLineItem is one priced line sent to the gateway.
type PaymentLineItem struct {
	Name        string
	Description string
	UnitAmount  int64 // minor units, e.g. cents
	Quantity    int64
}

// CheckoutSessionRequest asks the gateway for a hosted payment page.
type CheckoutSessionRequest struct {
	LineItems         []PaymentLineItem
	Currency          string
	SuccessURL        string
	CancelURL         string
	CustomerEmail     string
	ClientReferenceID string
}

// CheckoutSession is the gateway's view of a payment session.
type CheckoutSession struct {
	ID                string
	URL               string
	Paid              bool
	ClientReferenceID string
	AmountTotal       int64
	Currency          string
}

// PaymentGateway is the external payment provider.
type PaymentGateway interface {
	// CreateCheckoutSession opens a payment session for the given lines.
	CreateCheckoutSession(ctx context.Context, req *CheckoutSessionRequest) (*CheckoutSession, error)

	// GetCheckoutSession re-reads a session from the provider.
	GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
}
