package impl

import (
	"bytes"
	"io"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const testBaseURL = "http://shop.test"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        4,
			MinPasswordLength: 6,
			ResetTokenTTL:     time.Hour,
		},
		Catalog: config.CatalogConfig{PageSize: 2},
		Payment: config.PaymentConfig{Currency: "usd"},
	}
	cfg.HTTP.BaseURL = testBaseURL

	return cfg
}

func newTestUser(items ...entity.CartItem) *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Email:        "buyer@example.com",
		PasswordHash: "hashed",
		Cart:         entity.Cart{Items: items},
	}
}

func newTestProduct(title, price string) *entity.Product {
	return &entity.Product{
		ID:          uuid.New(),
		Title:       title,
		Description: title + " description",
		Price:       decimal.RequireFromString(price),
		ImageKey:    "images/" + uuid.NewString() + ".jpg",
		UserID:      uuid.New(),
	}
}

// memWriteCloser collects writes and records Close.
type memWriteCloser struct {
	bytes.Buffer
	closed bool
}

func (m *memWriteCloser) Close() error {
	m.closed = true

	return nil
}

// failingWriter rejects every write.
type failingWriter struct {
	err error
}

func (f *failingWriter) Write([]byte) (int, error) {
	return 0, f.err
}

func (f *failingWriter) Close() error {
	return nil
}
