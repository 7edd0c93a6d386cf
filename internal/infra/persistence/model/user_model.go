// Package model holds the GORM persistence structs. They are exported so the GORM Gen tool can use them.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email               string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash        string     `gorm:"type:varchar(255);not null"`
	ResetTokenHash      *string    `gorm:"type:varchar(64);uniqueIndex"`
	ResetTokenExpiresAt *time.Time `gorm:"type:timestamptz"`
	CreatedAt           time.Time
	UpdatedAt           time.Time

	CartItems []CartItemModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns a time-ordered UUID when none is set.
func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// CartItemModel mirrors the 'cart_items' table. One row per (user, product).
// Rows disappear with their product through the cascading foreign key.
type CartItemModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Quantity  int       `gorm:"not null;check:chk_cart_items_quantity,quantity > 0"`
	Position  int       `gorm:"not null;default:0"`
	CreatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}

func assignID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	generated, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = generated

	return nil
}
