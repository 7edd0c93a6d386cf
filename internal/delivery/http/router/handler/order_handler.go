package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// OrderHandler lists orders and serves invoices.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(orderUC usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderUC: orderUC,
		logger:  logger,
	}
}

// ListOrders returns the caller's orders.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderUC.ListOrders(c.Request().Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponses(orders), "")
}

// GetInvoice streams the invoice PDF of an order owned by the caller.
func (h *OrderHandler) GetInvoice(c echo.Context) error {
	orderID, err := parseIDParam(c, "id", domainerrors.ErrOrderNotFound)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	order, err := h.orderUC.GetOrderForUser(ctx, middleware.CurrentUser(c).ID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	header := c.Response().Header()
	header.Set(echo.HeaderContentType, "application/pdf")
	header.Set(echo.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", usecase.InvoiceFilename(order.ID)))
	header.Set("Cache-Control", "no-store")
	c.Response().WriteHeader(http.StatusOK)

	if err := h.orderUC.StreamInvoice(ctx, order, c.Response()); err != nil {
		// Headers are out; the client sees a truncated body.
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("Invoice stream failed",
			slog.Any("orderID", order.ID),
			slog.Any("error", err),
		)

		return errors.WithStack(err)
	}

	return nil
}
