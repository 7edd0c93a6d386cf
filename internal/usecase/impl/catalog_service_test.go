package impl

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockRepo.MockProductRepository
	storage     *mockSvc.MockFileStorage
	images      *mockSvc.MockImageProcessor
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	storage := mockSvc.NewMockFileStorage(t)
	images := mockSvc.NewMockImageProcessor(t)

	srv := NewCatalogService(CatalogServiceParams{
		ProductRepo: productRepo,
		Storage:     storage,
		Images:      images,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return catalogServiceFixtures{
		service:     srv,
		productRepo: productRepo,
		storage:     storage,
		images:      images,
	}
}

func validProductInput() usecase.ProductInput {
	return usecase.ProductInput{
		Title:       "Blue mug",
		Description: "A blue ceramic mug",
		Price:       decimal.RequireFromString("12.99"),
	}
}

func pngUpload() *usecase.ImageUpload {
	return &usecase.ImageUpload{Filename: "mug.png", ContentType: "image/png", Body: strings.NewReader("png-bytes")}
}

func TestCatalogService_ListProducts_Paginates(t *testing.T) {
	fx := createTestCatalogService(t)
	products := []*entity.Product{newTestProduct("C", "1"), newTestProduct("D", "2")}

	fx.productRepo.EXPECT().List(mock.Anything, 2, 2).Return(products, int64(5), nil).Once()

	page, err := fx.service.ListProducts(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, page.Products, 2)
	assert.Equal(t, entity.Pagination{
		CurrentPage:     2,
		HasNextPage:     true,
		HasPreviousPage: true,
		NextPage:        3,
		PreviousPage:    1,
		LastPage:        3,
		TotalItems:      5,
	}, page.Pagination)
}

func TestCatalogService_ListProducts_ClampsPage(t *testing.T) {
	fx := createTestCatalogService(t)
	fx.productRepo.EXPECT().List(mock.Anything, 0, 2).Return([]*entity.Product{}, int64(0), nil).Once()

	page, err := fx.service.ListProducts(context.Background(), -4)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Pagination.CurrentPage)
	assert.False(t, page.Pagination.HasNextPage)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	id := uuid.New()
	fx.productRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrProductNotFound).Once()

	_, err := fx.service.GetProduct(context.Background(), id)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	var storedKey string
	fx.images.EXPECT().Normalize(mock.Anything).Return([]byte("jpeg"), nil).Once()
	fx.storage.EXPECT().
		Put(ctx, mock.MatchedBy(func(key string) bool { return strings.HasPrefix(key, "images/") && strings.HasSuffix(key, ".jpg") }), []byte("jpeg"), "image/jpeg").
		Run(func(_ context.Context, key string, _ []byte, _ string) { storedKey = key }).
		Return(nil).Once()
	fx.productRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Product) bool {
			return p.Title == "Blue mug" && p.UserID == ownerID && p.ImageKey == storedKey
		})).
		Return(nil).Once()

	product, err := fx.service.CreateProduct(ctx, ownerID, validProductInput(), pngUpload())
	require.NoError(t, err)
	assert.Equal(t, storedKey, product.ImageKey)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("12.99")))
}

func TestCatalogService_CreateProduct_WithoutImage(t *testing.T) {
	fx := createTestCatalogService(t)

	_, err := fx.service.CreateProduct(context.Background(), uuid.New(), validProductInput(), nil)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 422, appErr.HTTPCode())
	fx.productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.storage.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCatalogService_CreateProduct_RejectsNonImageMime(t *testing.T) {
	fx := createTestCatalogService(t)
	upload := &usecase.ImageUpload{Filename: "doc.pdf", ContentType: "application/pdf", Body: strings.NewReader("%PDF")}

	_, err := fx.service.CreateProduct(context.Background(), uuid.New(), validProductInput(), upload)
	assert.True(t, errors.Is(err, domainerrors.ErrImageRequired))
}

func TestCatalogService_CreateProduct_UndecodableImage(t *testing.T) {
	fx := createTestCatalogService(t)
	fx.images.EXPECT().Normalize(mock.Anything).Return(nil, service.ErrUnsupportedImage).Once()

	_, err := fx.service.CreateProduct(context.Background(), uuid.New(), validProductInput(), pngUpload())
	assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedImage))
}

func TestCatalogService_CreateProduct_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.ProductInput
	}{
		{name: "short title", input: usecase.ProductInput{Title: "ab", Description: "long enough", Price: decimal.NewFromInt(1)}},
		{name: "short description", input: usecase.ProductInput{Title: "Mug", Description: "abc", Price: decimal.NewFromInt(1)}},
		{name: "negative price", input: usecase.ProductInput{Title: "Mug", Description: "long enough", Price: decimal.NewFromInt(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)

			_, err := fx.service.CreateProduct(context.Background(), uuid.New(), tt.input, pngUpload())
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestCatalogService_CreateProduct_RepositoryFailureRemovesImage(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	var storedKey string
	fx.images.EXPECT().Normalize(mock.Anything).Return([]byte("jpeg"), nil).Once()
	fx.storage.EXPECT().Put(ctx, mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, key string, _ []byte, _ string) { storedKey = key }).
		Return(nil).Once()
	fx.productRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("db down")).Once()
	fx.storage.EXPECT().Delete(ctx, mock.Anything).
		Run(func(_ context.Context, key string) { assert.Equal(t, storedKey, key) }).
		Return(nil).Once()

	_, err := fx.service.CreateProduct(ctx, uuid.New(), validProductInput(), pngUpload())
	assert.Error(t, err)
}

func TestCatalogService_UpdateProduct_ReplacesImage(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	product := newTestProduct("Old mug", "5")
	oldKey := product.ImageKey

	fx.productRepo.EXPECT().FindByIDAndOwner(ctx, product.ID, product.UserID).Return(product, nil).Once()
	fx.images.EXPECT().Normalize(mock.Anything).Return([]byte("jpeg"), nil).Once()
	fx.storage.EXPECT().Put(ctx, mock.Anything, []byte("jpeg"), "image/jpeg").Return(nil).Once()
	fx.productRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(p *entity.Product) bool { return p.Title == "Blue mug" && p.ImageKey != oldKey })).
		Return(nil).Once()
	fx.storage.EXPECT().Delete(ctx, oldKey).Return(nil).Once()

	updated, err := fx.service.UpdateProduct(ctx, product.UserID, product.ID, validProductInput(), pngUpload())
	require.NoError(t, err)
	assert.NotEqual(t, oldKey, updated.ImageKey)
}

func TestCatalogService_UpdateProduct_KeepsImage(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	product := newTestProduct("Old mug", "5")
	oldKey := product.ImageKey

	fx.productRepo.EXPECT().FindByIDAndOwner(ctx, product.ID, product.UserID).Return(product, nil).Once()
	fx.productRepo.EXPECT().Update(ctx, product).Return(nil).Once()

	updated, err := fx.service.UpdateProduct(ctx, product.UserID, product.ID, validProductInput(), nil)
	require.NoError(t, err)
	assert.Equal(t, oldKey, updated.ImageKey)
	fx.storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCatalogService_UpdateProduct_OtherOwner(t *testing.T) {
	fx := createTestCatalogService(t)
	productID, intruder := uuid.New(), uuid.New()
	fx.productRepo.EXPECT().FindByIDAndOwner(mock.Anything, productID, intruder).Return(nil, repository.ErrProductNotFound).Once()

	_, err := fx.service.UpdateProduct(context.Background(), intruder, productID, validProductInput(), nil)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCatalogService_DeleteProduct_RemovesRowThenImage(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	product := newTestProduct("Mug", "5")

	fx.productRepo.EXPECT().FindByIDAndOwner(ctx, product.ID, product.UserID).Return(product, nil).Once()
	deleteRow := fx.productRepo.EXPECT().DeleteByIDAndOwner(ctx, product.ID, product.UserID).Return(nil).Once()
	fx.storage.EXPECT().Delete(ctx, product.ImageKey).Return(nil).Once().NotBefore(deleteRow)

	require.NoError(t, fx.service.DeleteProduct(ctx, product.UserID, product.ID))
}

func TestCatalogService_DeleteProduct_ImageFailureIsNotFatal(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	product := newTestProduct("Mug", "5")

	fx.productRepo.EXPECT().FindByIDAndOwner(ctx, product.ID, product.UserID).Return(product, nil).Once()
	fx.productRepo.EXPECT().DeleteByIDAndOwner(ctx, product.ID, product.UserID).Return(nil).Once()
	fx.storage.EXPECT().Delete(ctx, product.ImageKey).Return(errors.New("bucket offline")).Once()

	assert.NoError(t, fx.service.DeleteProduct(ctx, product.UserID, product.ID))
}

func TestCatalogService_OpenImage(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		fx := createTestCatalogService(t)
		fx.storage.EXPECT().Open(mock.Anything, "images/a.jpg").
			Return(io.NopCloser(bytes.NewReader([]byte("jpeg"))), "image/jpeg", nil).Once()

		rc, contentType, err := fx.service.OpenImage(context.Background(), "a.jpg")
		require.NoError(t, err)
		defer rc.Close()
		assert.Equal(t, "image/jpeg", contentType)
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestCatalogService(t)
		fx.storage.EXPECT().Open(mock.Anything, "images/b.jpg").Return(nil, "", service.ErrFileNotFound).Once()

		_, _, err := fx.service.OpenImage(context.Background(), "b.jpg")
		assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	})

	t.Run("path traversal", func(t *testing.T) {
		fx := createTestCatalogService(t)

		_, _, err := fx.service.OpenImage(context.Background(), "../invoices/x.pdf")
		assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	})
}
