package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderModel mirrors the 'orders' table. Rows are never deleted.
type OrderModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`
	UserEmail        string    `gorm:"type:varchar(255);not null"`
	Status           string    `gorm:"type:varchar(32);not null;index"`
	PaymentSessionID string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// BeforeCreate assigns a time-ordered UUID when none is set.
func (m *OrderModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// OrderItemModel mirrors the 'order_items' table: a frozen copy of the product at purchase time.
// ProductID is informational only and has no foreign key, so later catalog deletes never touch it.
type OrderItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position    int             `gorm:"not null"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	Title       string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text;not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity    int             `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// BeforeCreate assigns a time-ordered UUID when none is set.
func (m *OrderItemModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// All lists every persistence model for migrations and code generation.
func All() []any {
	return []any{
		&UserModel{},
		&ProductModel{},
		&CartItemModel{},
		&OrderModel{},
		&OrderItemModel{},
	}
}
