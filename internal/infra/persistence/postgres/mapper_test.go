package postgres

import (
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserMapper_ResetTokenNullability(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "a@example.com", PasswordHash: "hash"}

	userM := fromUserDomain(user)
	assert.Nil(t, userM.ResetTokenHash)

	expires := time.Now().Add(time.Hour)
	user.ResetTokenHash = "abc"
	user.ResetTokenExpiresAt = &expires
	userM = fromUserDomain(user)
	require.NotNil(t, userM.ResetTokenHash)
	assert.Equal(t, "abc", *userM.ResetTokenHash)

	back := toUserDomain(userM)
	assert.Equal(t, "abc", back.ResetTokenHash)
	assert.Equal(t, &expires, back.ResetTokenExpiresAt)
}

func TestCartMapper_KeepsOrderAsPosition(t *testing.T) {
	userID := uuid.New()
	p1, p2 := uuid.New(), uuid.New()
	cart := entity.Cart{Items: []entity.CartItem{{ProductID: p1, Quantity: 2}, {ProductID: p2, Quantity: 1}}}

	items := fromCartDomain(userID, cart)
	require.Len(t, items, 2)
	assert.Equal(t, 0, items[0].Position)
	assert.Equal(t, 1, items[1].Position)
	assert.Equal(t, userID, items[1].UserID)

	assert.Equal(t, cart, toCartDomain(items))
	empty := toCartDomain(nil)
	assert.True(t, empty.IsEmpty())
}

func TestOrderMapper_RoundTripsSnapshot(t *testing.T) {
	order := &entity.Order{
		ID:    uuid.New(),
		Owner: entity.OrderOwner{UserID: uuid.New(), Email: "buyer@example.com"},
		Lines: []entity.OrderLine{
			{ProductID: uuid.New(), Title: "A", Description: "first", Price: decimal.RequireFromString("9.99"), Quantity: 1},
			{ProductID: uuid.New(), Title: "B", Description: "second", Price: decimal.NewFromInt(3), Quantity: 4},
		},
		Status:           entity.OrderStatusPending,
		PaymentSessionID: "cs_test",
	}

	orderM := fromOrderDomain(order)
	assert.Equal(t, "buyer@example.com", orderM.UserEmail)
	assert.Equal(t, 1, orderM.Items[1].Position)

	back := toOrderDomain(orderM)
	assert.Equal(t, order.Owner, back.Owner)
	assert.Equal(t, order.Lines, back.Lines)
	assert.Equal(t, order.Status, back.Status)
	assert.Equal(t, order.PaymentSessionID, back.PaymentSessionID)
}

func TestProductMapper(t *testing.T) {
	productM := &model.ProductModel{
		ID:          uuid.New(),
		Title:       "Lamp",
		Description: "desk lamp",
		Price:       decimal.RequireFromString("12.50"),
		ImageKey:    "images/x.jpg",
		UserID:      uuid.New(),
	}

	product := toProductDomain(productM)
	assert.Equal(t, productM.ImageKey, product.ImageKey)
	assert.True(t, product.Price.Equal(productM.Price))
	assert.Equal(t, productM.ID, fromProductDomain(product).ID)
	assert.Len(t, toProductDomainList([]*model.ProductModel{productM, productM}), 2)
}

func TestConstraintHelpers(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(&pgconn.PgError{Code: pgUniqueViolation}, "insert")))
	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: pgForeignKeyViolation}))
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: pgNotNullViolation}))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.False(t, isUniqueConstraintViolation(errors.New("boom")))
}

func TestModelBeforeCreateAssignsID(t *testing.T) {
	productM := &model.ProductModel{}
	require.NoError(t, productM.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, productM.ID)

	existing := uuid.New()
	orderM := &model.OrderModel{ID: existing}
	require.NoError(t, orderM.BeforeCreate(nil))
	assert.Equal(t, existing, orderM.ID)
}
