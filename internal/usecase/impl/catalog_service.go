package impl

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"
	"unicode/utf8"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	minTitleLength       = 3
	minDescriptionLength = 5
	maxDescriptionLength = 400
	productImageType     = "image/jpeg"
)

var acceptedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpg":  true,
	"image/jpeg": true,
}

type catalogService struct {
	productRepo repository.ProductRepository
	storage     service.FileStorage
	images      service.ImageProcessor
	pageSize    int
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Storage     service.FileStorage
	Images      service.ImageProcessor
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	pageSize := params.Config.Catalog.PageSize
	if pageSize <= 0 {
		pageSize = 2
	}

	return &catalogService{
		productRepo: params.ProductRepo,
		storage:     params.Storage,
		images:      params.Images,
		pageSize:    pageSize,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns one page of the catalog.
func (srv *catalogService) ListProducts(ctx context.Context, page int) (*usecase.ProductPage, error) {
	if page < 1 {
		page = 1
	}

	products, total, err := srv.productRepo.List(ctx, entity.Offset(page, srv.pageSize), srv.pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ProductPage{
		Products:   products,
		Pagination: entity.NewPagination(page, srv.pageSize, total),
	}, nil
}

// GetProduct returns a single catalog entry.
func (srv *catalogService) GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, mapProductError(err)
	}

	return product, nil
}

// ListOwnerProducts returns the products created by ownerID.
func (srv *catalogService) ListOwnerProducts(ctx context.Context, ownerID uuid.UUID) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owner products")
	}

	return products, nil
}

// GetOwnedProduct returns the product only if ownerID owns it.
func (srv *catalogService) GetOwnedProduct(ctx context.Context, ownerID, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByIDAndOwner(ctx, productID, ownerID)
	if err != nil {
		return nil, mapProductError(err)
	}

	return product, nil
}

// CreateProduct stores the image and then the product row.
func (srv *catalogService) CreateProduct(
	ctx context.Context,
	ownerID uuid.UUID,
	input usecase.ProductInput,
	image *usecase.ImageUpload,
) (*entity.Product, error) {
	if image == nil || image.Body == nil {
		return nil, domainerrors.ErrImageRequired
	}
	if err := validateProductInput(&input); err != nil {
		return nil, err
	}

	imageKey, err := srv.storeImage(ctx, image)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		ImageKey:    imageKey,
		UserID:      ownerID,
	}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.discardImage(ctx, imageKey)

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.Any("ownerID", ownerID))

	return product, nil
}

// UpdateProduct rewrites the product fields and optionally swaps its image.
func (srv *catalogService) UpdateProduct(
	ctx context.Context,
	ownerID, productID uuid.UUID,
	input usecase.ProductInput,
	image *usecase.ImageUpload,
) (*entity.Product, error) {
	if err := validateProductInput(&input); err != nil {
		return nil, err
	}

	product, err := srv.productRepo.FindByIDAndOwner(ctx, productID, ownerID)
	if err != nil {
		return nil, mapProductError(err)
	}

	previousImage := ""
	if image != nil && image.Body != nil {
		imageKey, err := srv.storeImage(ctx, image)
		if err != nil {
			return nil, err
		}
		previousImage = product.ImageKey
		product.ImageKey = imageKey
	}

	product.Title = input.Title
	product.Description = input.Description
	product.Price = input.Price

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if previousImage != "" {
			srv.discardImage(ctx, product.ImageKey)
		}

		return nil, mapProductError(err)
	}

	if previousImage != "" {
		srv.discardImage(ctx, previousImage)
	}

	srv.log(ctx).Info("Product updated", slog.Any("productID", product.ID))

	return product, nil
}

// DeleteProduct removes the row first so a failed image delete only leaves an orphaned file.
func (srv *catalogService) DeleteProduct(ctx context.Context, ownerID, productID uuid.UUID) error {
	product, err := srv.productRepo.FindByIDAndOwner(ctx, productID, ownerID)
	if err != nil {
		return mapProductError(err)
	}

	if err := srv.productRepo.DeleteByIDAndOwner(ctx, productID, ownerID); err != nil {
		return mapProductError(err)
	}

	srv.discardImage(ctx, product.ImageKey)
	srv.log(ctx).Info("Product deleted", slog.Any("productID", productID))

	return nil
}

// OpenImage opens images/<name> from storage.
func (srv *catalogService) OpenImage(ctx context.Context, name string) (io.ReadCloser, string, error) {
	if name == "" || path.Base(name) != name || strings.HasPrefix(name, ".") {
		return nil, "", domainerrors.ErrNotFound.WrapMessage("invalid image name")
	}

	reader, contentType, err := srv.storage.Open(ctx, constants.ImagePrefix+name)
	if err != nil {
		if errors.Is(err, service.ErrFileNotFound) {
			return nil, "", domainerrors.ErrNotFound.WrapMessage("image not found")
		}

		return nil, "", domainerrors.ErrStorage.WrapMessage(err.Error())
	}

	return reader, contentType, nil
}

func (srv *catalogService) storeImage(ctx context.Context, image *usecase.ImageUpload) (string, error) {
	if image.ContentType != "" && !acceptedImageTypes[strings.ToLower(image.ContentType)] {
		return "", domainerrors.ErrImageRequired
	}

	data, err := srv.images.Normalize(image.Body)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedImage) {
			return "", domainerrors.ErrUnsupportedImage
		}

		return "", errors.Wrap(err, "failed to process image")
	}

	key := constants.ImagePrefix + uuid.NewString() + ".jpg"
	if err := srv.storage.Put(ctx, key, data, productImageType); err != nil {
		srv.log(ctx).Error("Failed to store image", slog.String("key", key), slog.Any("error", err))

		return "", domainerrors.ErrStorage.WrapMessage(err.Error())
	}

	return key, nil
}

func (srv *catalogService) discardImage(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := srv.storage.Delete(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to delete image", slog.String("key", key), slog.Any("error", err))
	}
}

func validateProductInput(input *usecase.ProductInput) error {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)

	if utf8.RuneCountInString(input.Title) < minTitleLength {
		return domainerrors.ErrValidationFailed.WithDetails("title must be at least 3 characters")
	}
	descLen := utf8.RuneCountInString(input.Description)
	if descLen < minDescriptionLength || descLen > maxDescriptionLength {
		return domainerrors.ErrValidationFailed.WithDetails("description must be between 5 and 400 characters")
	}
	if input.Price.IsNegative() {
		return domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}

	return nil
}

func mapProductError(err error) error {
	if errors.Is(err, repository.ErrProductNotFound) {
		return domainerrors.ErrProductNotFound
	}

	return errors.Wrap(err, "product repository")
}
