package handler

import (
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CartHandler exposes the cart of the logged-in user.
type CartHandler struct {
	cartUC usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(cartUC usecase.CartUsecase) *CartHandler {
	return &CartHandler{cartUC: cartUC}
}

// GetCart returns the resolved cart.
func (h *CartHandler) GetCart(c echo.Context) error {
	return h.respondWithCart(c, http.StatusOK, "")
}

// AddToCart adds quantity (default 1) of a product.
func (h *CartHandler) AddToCart(c echo.Context) error {
	var req cartRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	// Validated as a uuid above.
	productID := uuid.MustParse(req.ProductID)
	if err := h.cartUC.AddToCart(c.Request().Context(), middleware.CurrentUser(c).ID, productID, req.Quantity); err != nil {
		return errors.WithStack(err)
	}

	return h.respondWithCart(c, http.StatusOK, "Product added to cart")
}

// RemoveItem drops a product from the cart. Removing an absent product succeeds.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	var req cartRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	productID := uuid.MustParse(req.ProductID)
	if err := h.cartUC.RemoveFromCart(c.Request().Context(), middleware.CurrentUser(c).ID, productID); err != nil {
		return errors.WithStack(err)
	}

	return h.respondWithCart(c, http.StatusOK, "Product removed from cart")
}

func (h *CartHandler) respondWithCart(c echo.Context, status int, message string) error {
	view, err := h.cartUC.GetCart(c.Request().Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, status, toCartResponse(view), message)
}
