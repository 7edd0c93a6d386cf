package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockUsecase.MockFulfillmentUsecase) {
	fulfillment := mockUsecase.NewMockFulfillmentUsecase(t)

	return &PushHandler{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		fulfillment: fulfillment,
	}, fulfillment
}

func pushBody(t *testing.T, event *service.OrderEvent) string {
	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "1"
	msg.Message.Attributes = map[string]string{"request_id": "req-1"}
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func doPush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	orderID := uuid.New()

	tests := []struct {
		name       string
		eventType  string
		setup      func(f *mockUsecase.MockFulfillmentUsecase)
		wantStatus int
	}{
		{
			name:      "finalized sends confirmation",
			eventType: service.OrderEventFinalized,
			setup: func(f *mockUsecase.MockFulfillmentUsecase) {
				f.EXPECT().SendConfirmation(mock.Anything, orderID).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:      "needs reconciliation reconciles then confirms",
			eventType: service.OrderEventNeedsReconciliation,
			setup: func(f *mockUsecase.MockFulfillmentUsecase) {
				reconcile := f.EXPECT().Reconcile(mock.Anything, orderID).
					Return(&entity.Order{ID: orderID, Status: entity.OrderStatusFinalized}, nil).Once()
				f.EXPECT().SendConfirmation(mock.Anything, orderID).Return(nil).Once().NotBefore(reconcile)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:      "mail outage is retried",
			eventType: service.OrderEventFinalized,
			setup: func(f *mockUsecase.MockFulfillmentUsecase) {
				f.EXPECT().SendConfirmation(mock.Anything, orderID).
					Return(domainerrors.ErrMailDelivery.WrapMessage("smtp down")).Once()
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:      "reconcile database failure is retried",
			eventType: service.OrderEventNeedsReconciliation,
			setup: func(f *mockUsecase.MockFulfillmentUsecase) {
				f.EXPECT().Reconcile(mock.Anything, orderID).Return(nil, errors.New("db down")).Once()
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:      "missing order is acked",
			eventType: service.OrderEventFinalized,
			setup: func(f *mockUsecase.MockFulfillmentUsecase) {
				f.EXPECT().SendConfirmation(mock.Anything, orderID).Return(domainerrors.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown type is acked",
			eventType:  "order.shipped",
			setup:      func(*mockUsecase.MockFulfillmentUsecase) {},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, fulfillment := newTestPushHandler(t)
			tt.setup(fulfillment)

			rec := doPush(h, pushBody(t, &service.OrderEvent{Type: tt.eventType, OrderID: orderID.String()}))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_RejectsMalformedMessages(t *testing.T) {
	h, _ := newTestPushHandler(t)

	assert.Equal(t, http.StatusBadRequest, doPush(h, `{"message":{"data":"%%%"}}`).Code)
	assert.Equal(t, http.StatusBadRequest, doPush(h, `{"message":{"data":"`+base64.StdEncoding.EncodeToString([]byte("not json"))+`"}}`).Code)
}

func TestPushHandler_VerifiesTokenWhenEnabled(t *testing.T) {
	h, _ := newTestPushHandler(t)
	h.verifyPushAuth = true
	h.verifyToken = func(*http.Request) error { return errors.New("bad token") }

	rec := doPush(h, pushBody(t, &service.OrderEvent{Type: service.OrderEventFinalized, OrderID: uuid.NewString()}))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExtractRequestID(t *testing.T) {
	h, _ := newTestPushHandler(t)
	req := httptest.NewRequest(http.MethodPost, "/push", nil)

	var msg PubSubMessage
	assert.Equal(t, "from-event", h.extractRequestID(req.Context(), &msg, &service.OrderEvent{RequestID: "from-event"}))

	msg.Message.Attributes = map[string]string{"request_id": "from-attr"}
	assert.Equal(t, "from-attr", h.extractRequestID(req.Context(), &msg, &service.OrderEvent{RequestID: "from-event"}))
}
