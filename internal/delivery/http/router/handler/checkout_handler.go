package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/delivery/http/session"
	"storefront/internal/domain/constants"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CheckoutHandler drives the payment redirect and order finalization.
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	cartUC     usecase.CartUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler.
func NewCheckoutHandler(checkoutUC usecase.CheckoutUsecase, cartUC usecase.CartUsecase, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: checkoutUC,
		cartUC:     cartUC,
		logger:     logger,
	}
}

// Checkout prices the cart and opens a gateway session. The client follows redirectUrl.
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	quote, err := h.checkoutUC.BeginCheckout(c.Request().Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCheckoutResponse(quote), "")
}

// Success is the gateway's return URL; it finalizes the order for ?session_id.
func (h *CheckoutHandler) Success(c echo.Context) error {
	return h.finalize(c, c.QueryParam("session_id"))
}

// CreateOrder finalizes the order for a session id sent in the body.
func (h *CheckoutHandler) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	return h.finalize(c, req.SessionID)
}

// Cancel is the gateway's cancel URL. Nothing was charged; the cart is returned unchanged.
func (h *CheckoutHandler) Cancel(c echo.Context) error {
	view, err := h.cartUC.GetCart(c.Request().Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartResponse(view), "Checkout canceled")
}

func (h *CheckoutHandler) finalize(c echo.Context, sessionID string) error {
	order, err := h.checkoutUC.FinalizeOrder(c.Request().Context(), middleware.CurrentUser(c).ID, sessionID)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := session.AddFlash(c, constants.FlashSuccess, "Order placed"); err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Warn("Failed to store flash message", slog.Any("error", err))
	}

	return response.Success(c, http.StatusCreated, toOrderResponse(order), "Order placed")
}
