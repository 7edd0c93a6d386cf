package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when no product matches.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines catalog persistence.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDs returns the products that still exist; missing ids are skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// FindByIDAndOwner returns ErrProductNotFound when the product exists but belongs to someone else.
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Product, error)

	// List returns one page of the catalog, newest last, and the total count.
	List(ctx context.Context, offset, limit int) ([]*entity.Product, int64, error)

	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error

	// DeleteByIDAndOwner removes the product; ErrProductNotFound when nothing matched.
	DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) error
}
