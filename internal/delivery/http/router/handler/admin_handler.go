package handler

import (
	"net/http"
	"strings"

	"storefront/config"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const imageField = "image"

// AdminHandler manages the products owned by the logged-in user.
type AdminHandler struct {
	catalogUC     usecase.CatalogUsecase
	maxUploadSize int64
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(catalogUC usecase.CatalogUsecase, cfg *config.Config) *AdminHandler {
	return &AdminHandler{
		catalogUC:     catalogUC,
		maxUploadSize: cfg.Catalog.MaxUploadSize,
	}
}

// ListProducts lists the caller's products.
func (h *AdminHandler) ListProducts(c echo.Context) error {
	user := middleware.CurrentUser(c)

	products, err := h.catalogUC.ListOwnerProducts(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products), "")
}

// GetAddProduct returns what the add-product form needs to submit a new product.
func (h *AdminHandler) GetAddProduct(c echo.Context) error {
	form := productFormResponse{
		Fields:         []string{"title", "price", "description"},
		ImageField:     imageField,
		ImageTypes:     []string{"image/png", "image/jpeg"},
		MaxUploadBytes: h.maxUploadSize,
	}
	if h.maxUploadSize > 0 {
		form.MaxUploadSize = util.FormatBytes(h.maxUploadSize)
	}

	return response.Success(c, http.StatusOK, form, "")
}

// GetEditProduct returns a product for editing. Products of other owners are not found.
func (h *AdminHandler) GetEditProduct(c echo.Context) error {
	productID, err := parseIDParam(c, "id", domainerrors.ErrProductNotFound)
	if err != nil {
		return err
	}

	product, err := h.catalogUC.GetOwnedProduct(c.Request().Context(), middleware.CurrentUser(c).ID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product), "")
}

// AddProduct creates a product from a multipart form. The image part is required.
func (h *AdminHandler) AddProduct(c echo.Context) error {
	input, err := productInputFromForm(c)
	if err != nil {
		return err
	}

	image, closeImage, err := h.imageFromForm(c)
	if err != nil {
		return err
	}
	defer closeImage()

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), middleware.CurrentUser(c).ID, input, image)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProductResponse(product), "Product created")
}

// EditProduct updates the product named by the productId form field. A new image is optional.
func (h *AdminHandler) EditProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.FormValue("productId"))
	if err != nil {
		return domainerrors.ErrProductNotFound
	}

	input, err := productInputFromForm(c)
	if err != nil {
		return err
	}

	image, closeImage, err := h.imageFromForm(c)
	if err != nil {
		return err
	}
	defer closeImage()

	product, err := h.catalogUC.UpdateProduct(c.Request().Context(), middleware.CurrentUser(c).ID, productID, input, image)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product), "Product updated")
}

// DeleteProduct removes the product and its image.
func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	productID, err := parseIDParam(c, "id", domainerrors.ErrProductNotFound)
	if err != nil {
		return err
	}

	if err := h.catalogUC.DeleteProduct(c.Request().Context(), middleware.CurrentUser(c).ID, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted")
}

func productInputFromForm(c echo.Context) (usecase.ProductInput, error) {
	rawPrice := strings.TrimSpace(c.FormValue("price"))
	price, err := decimal.NewFromString(rawPrice)
	if err != nil {
		return usecase.ProductInput{}, domainerrors.ErrValidationFailed.WithDetails("price must be a decimal number")
	}

	return usecase.ProductInput{
		Title:       strings.TrimSpace(c.FormValue("title")),
		Description: strings.TrimSpace(c.FormValue("description")),
		Price:       price,
	}, nil
}

// imageFromForm opens the uploaded image, if any. The returned func closes it.
func (h *AdminHandler) imageFromForm(c echo.Context) (*usecase.ImageUpload, func(), error) {
	noop := func() {}

	header, err := c.FormFile(imageField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, noop, nil
		}

		return nil, noop, domainerrors.ErrInvalidInput.WithDetails(err.Error())
	}

	if h.maxUploadSize > 0 && header.Size > h.maxUploadSize {
		return nil, noop, domainerrors.ErrValidationFailed.WithDetails("image exceeds " + util.FormatBytes(h.maxUploadSize))
	}

	file, err := header.Open()
	if err != nil {
		return nil, noop, errors.Wrap(err, "failed to open uploaded image")
	}

	upload := &usecase.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Body:        file,
	}

	return upload, func() { _ = file.Close() }, nil
}
