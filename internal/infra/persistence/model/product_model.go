package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Title       string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text;not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ImageKey    string          `gorm:"type:varchar(255);not null"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time       `gorm:"index"`
	UpdatedAt   time.Time

	User *UserModel `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// BeforeCreate assigns a time-ordered UUID when none is set.
func (m *ProductModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
