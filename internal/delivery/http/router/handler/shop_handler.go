package handler

import (
	"io"
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ShopHandler serves the public catalog and product images.
type ShopHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewShopHandler is the constructor for ShopHandler.
func NewShopHandler(catalogUC usecase.CatalogUsecase) *ShopHandler {
	return &ShopHandler{catalogUC: catalogUC}
}

// Index is the first catalog page.
func (h *ShopHandler) Index(c echo.Context) error {
	return h.listPage(c, 1)
}

// ListProducts serves ?page=N; anything unparsable is page 1.
func (h *ShopHandler) ListProducts(c echo.Context) error {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}

	return h.listPage(c, page)
}

func (h *ShopHandler) listPage(c echo.Context, page int) error {
	result, err := h.catalogUC.ListProducts(c.Request().Context(), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductPageResponse(result), "")
}

// GetProduct shows a single product.
func (h *ShopHandler) GetProduct(c echo.Context) error {
	productID, err := parseIDParam(c, "id", domainerrors.ErrProductNotFound)
	if err != nil {
		return err
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product), "")
}

// GetImage streams a stored product image.
func (h *ShopHandler) GetImage(c echo.Context) error {
	body, contentType, err := h.catalogUC.OpenImage(c.Request().Context(), c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}
	defer func(body io.ReadCloser) {
		_ = body.Close()
	}(body)

	c.Response().Header().Set("Cache-Control", "public, max-age=86400")

	return c.Stream(http.StatusOK, contentType, body)
}
