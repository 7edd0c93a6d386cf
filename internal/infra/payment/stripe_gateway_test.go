package payment

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

const sessionJSON = `{
	"id": "cs_test_123",
	"object": "checkout.session",
	"url": "https://checkout.stripe.com/c/pay/cs_test_123",
	"payment_status": "paid",
	"client_reference_id": "user-1",
	"amount_total": 2000,
	"currency": "usd"
}`

func newTestStripeGateway(t *testing.T, handler http.HandlerFunc) service.PaymentGateway {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(server.URL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})

	return NewStripeGateway("sk_test_123", &stripe.Backends{API: backend}, newDiscardLogger())
}

func TestStripeGateway_CreateCheckoutSessionSendsMinorUnits(t *testing.T) {
	var form url.Values
	gateway := newTestStripeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		require.NoError(t, r.ParseForm())
		form = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sessionJSON))
	})

	session, err := gateway.CreateCheckoutSession(t.Context(), &service.CheckoutSessionRequest{
		LineItems:         []service.PaymentLineItem{{Name: "Mug", Description: "Blue", UnitAmount: 1000, Quantity: 2}},
		Currency:          "usd",
		SuccessURL:        "http://shop/checkout/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:         "http://shop/checkout/cancel",
		CustomerEmail:     "buyer@example.com",
		ClientReferenceID: "user-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "payment", form.Get("mode"))
	assert.Equal(t, "1000", form.Get("line_items[0][price_data][unit_amount]"))
	assert.Equal(t, "2", form.Get("line_items[0][quantity]"))
	assert.Equal(t, "usd", form.Get("line_items[0][price_data][currency]"))
	assert.Equal(t, "Mug", form.Get("line_items[0][price_data][product_data][name]"))
	assert.Equal(t, "buyer@example.com", form.Get("customer_email"))
	assert.Equal(t, "user-1", form.Get("client_reference_id"))

	assert.Equal(t, "cs_test_123", session.ID)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_123", session.URL)
}

func TestStripeGateway_GetCheckoutSession(t *testing.T) {
	gateway := newTestStripeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/checkout/sessions/cs_test_123", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sessionJSON))
	})

	session, err := gateway.GetCheckoutSession(t.Context(), "cs_test_123")
	require.NoError(t, err)
	assert.True(t, session.Paid)
	assert.Equal(t, "user-1", session.ClientReferenceID)
	assert.Equal(t, int64(2000), session.AmountTotal)
}

func TestStripeGateway_ErrorIsReturned(t *testing.T) {
	gateway := newTestStripeGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"bad"}}`))
	})

	_, err := gateway.GetCheckoutSession(t.Context(), "cs_bad")
	assert.Error(t, err)
}
