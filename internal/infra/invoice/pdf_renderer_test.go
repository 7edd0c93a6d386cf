package invoice

import (
	"bytes"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/infra/qrcode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *entity.Order {
	t.Helper()

	order, err := entity.NewOrder(
		entity.OrderOwner{UserID: uuid.New(), Email: "buyer@example.com"},
		[]entity.OrderLine{
			{ProductID: uuid.New(), Title: "Café mug", Price: decimal.RequireFromString("10.00"), Quantity: 2},
			{ProductID: uuid.New(), Title: "Poster", Price: decimal.RequireFromString("4.50"), Quantity: 1},
		},
		"cs_test_123",
	)
	require.NoError(t, err)
	order.ID = uuid.New()
	order.CreatedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	return order
}

func TestPDFRenderer_Render(t *testing.T) {
	renderer := NewPDFRenderer(qrcode.NewQRCodeService(128, "M"))

	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, newTestOrder(t)))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.Greater(t, buf.Len(), 1000)
}

func TestPDFRenderer_WithoutQRCode(t *testing.T) {
	renderer := NewPDFRenderer(nil)

	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, newTestOrder(t)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestPDFRenderer_NilOrder(t *testing.T) {
	renderer := NewPDFRenderer(nil)

	var buf bytes.Buffer
	assert.Error(t, renderer.Render(&buf, nil))
	assert.Zero(t, buf.Len())
}
