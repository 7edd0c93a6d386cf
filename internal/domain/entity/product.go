package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry owned by the admin user who created it.
type Product struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageKey    string          `json:"image_key"` // Storage key of the product image, e.g. images/<uuid>.jpg.
	UserID      uuid.UUID       `json:"user_id"`   // Owner; only the owner may edit or delete.
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// IsOwnedBy reports whether userID owns the product.
func (p *Product) IsOwnedBy(userID uuid.UUID) bool {
	return p.UserID == userID
}
