package usecase

import (
	"context"
	"io"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ImageUpload is an uploaded product image.
type ImageUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// ProductInput defines the editable product fields.
type ProductInput struct {
	Title       string
	Description string
	Price       decimal.Decimal
}

// ProductPage is one page of the public catalog.
type ProductPage struct {
	Products   []*entity.Product
	Pagination entity.Pagination
}

// CatalogUsecase covers the public catalog and owner-scoped product administration.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, page int) (*ProductPage, error)
	GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error)

	ListOwnerProducts(ctx context.Context, ownerID uuid.UUID) ([]*entity.Product, error)
	GetOwnedProduct(ctx context.Context, ownerID, productID uuid.UUID) (*entity.Product, error)

	// CreateProduct requires an image; without one nothing is persisted.
	CreateProduct(ctx context.Context, ownerID uuid.UUID, input ProductInput, image *ImageUpload) (*entity.Product, error)

	// UpdateProduct replaces the fields and, when image is set, the image. The previous image is deleted.
	UpdateProduct(ctx context.Context, ownerID, productID uuid.UUID, input ProductInput, image *ImageUpload) (*entity.Product, error)

	// DeleteProduct removes the product row, then its image.
	DeleteProduct(ctx context.Context, ownerID, productID uuid.UUID) error

	// OpenImage streams a stored product image.
	OpenImage(ctx context.Context, name string) (io.ReadCloser, string, error)
}
