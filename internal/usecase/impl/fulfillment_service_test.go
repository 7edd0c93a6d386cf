package impl

import (
	"context"
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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fulfillmentServiceFixtures struct {
	service   usecase.FulfillmentUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
	userRepo  *mockRepo.MockUserRepository
	mailer    *mockSvc.MockMailer
}

func createTestFulfillmentService(t *testing.T) fulfillmentServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	mailer := mockSvc.NewMockMailer(t)

	return fulfillmentServiceFixtures{
		service: NewFulfillmentService(FulfillmentServiceParams{
			TxManager: txManager,
			OrderRepo: orderRepo,
			UserRepo:  userRepo,
			Mailer:    mailer,
			Config:    newTestConfig(),
			Logger:    newDiscardLogger(),
		}),
		txManager: txManager,
		orderRepo: orderRepo,
		userRepo:  userRepo,
		mailer:    mailer,
	}
}

// expectTransaction runs the transactional callback against the given repositories.
func (fx fulfillmentServiceFixtures) expectTransaction(t *testing.T, txOrderRepo repository.OrderRepository, txUserRepo repository.UserRepository) {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().OrderRepo().Return(txOrderRepo).Maybe()
			factory.EXPECT().UserRepo().Return(txUserRepo).Maybe()

			return fn(factory)
		}).Once()
}

func TestFulfillmentService_SendConfirmation(t *testing.T) {
	order := newTestOrder(uuid.New())

	t.Run("mails owner with invoice link", func(t *testing.T) {
		fx := createTestFulfillmentService(t)
		fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil).Once()
		fx.mailer.EXPECT().Send(mock.Anything, mock.MatchedBy(func(msg *service.MailMessage) bool {
			return msg.To == order.Owner.Email &&
				assert.Contains(t, msg.TextBody, testBaseURL+"/orders/"+order.ID.String()) &&
				assert.Contains(t, msg.TextBody, "Mug - 1 x $10.00")
		})).Return(nil).Once()

		require.NoError(t, fx.service.SendConfirmation(context.Background(), order.ID))
	})

	t.Run("mailer failure surfaces", func(t *testing.T) {
		fx := createTestFulfillmentService(t)
		fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil).Once()
		fx.mailer.EXPECT().Send(mock.Anything, mock.Anything).Return(errors.New("smtp down")).Once()

		err := fx.service.SendConfirmation(context.Background(), order.ID)
		assert.ErrorIs(t, err, domainerrors.ErrMailDelivery)
	})

	t.Run("unknown order", func(t *testing.T) {
		fx := createTestFulfillmentService(t)
		id := uuid.New()
		fx.orderRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrOrderNotFound).Once()

		err := fx.service.SendConfirmation(context.Background(), id)
		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	})
}

func TestFulfillmentService_Reconcile(t *testing.T) {
	t.Run("deducts ordered items and finalizes", func(t *testing.T) {
		fx := createTestFulfillmentService(t)
		txOrderRepo := mockRepo.NewMockOrderRepository(t)
		txUserRepo := mockRepo.NewMockUserRepository(t)
		order := newTestOrder(uuid.New())
		order.Status = entity.OrderStatusNeedsReconciliation
		ordered := order.Lines[0].ProductID
		later := uuid.New()

		user := newTestUser(
			entity.CartItem{ProductID: ordered, Quantity: 1},
			entity.CartItem{ProductID: later, Quantity: 2},
		)
		user.ID = order.Owner.UserID

		fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil).Once()
		fx.expectTransaction(t, txOrderRepo, txUserRepo)
		settle := txOrderRepo.EXPECT().UpdateStatus(mock.Anything, order.ID,
			entity.OrderStatusNeedsReconciliation, entity.OrderStatusFinalized).Return(nil).Once()
		txUserRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil).Once().NotBefore(settle)
		txUserRepo.EXPECT().SaveCart(mock.Anything, user.ID, entity.Cart{
			Items: []entity.CartItem{{ProductID: later, Quantity: 2}},
		}).Return(nil).Once()

		got, err := fx.service.Reconcile(context.Background(), order.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusFinalized, got.Status)
	})

	t.Run("pending order left by an interrupted checkout is finalized", func(t *testing.T) {
		fx := createTestFulfillmentService(t)
		txOrderRepo := mockRepo.NewMockOrderRepository(t)
		txUserRepo := mockRepo.NewMockUserRepository(t)
		order := newTestOrder(uuid.New())
		order.Status = entity.OrderStatusPending
		user := newTestUser(entity.CartItem{ProductID: order.Lines[0].ProductID, Quantity: 1})
		user.ID = order.Owner.UserID

		fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil).Once()
		fx.expectTransaction(t, txOrderRepo, txUserRepo)
		txOrderRepo.EXPECT().UpdateStatus(mock.Anything, order.ID,
			entity.OrderStatusPending, entity.OrderStatusFinalized).Return(nil).Once()
		txUserRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil).Once()
		txUserRepo.EXPECT().SaveCart(mock.Anything, user.ID, entity.Cart{Items: []entity.CartItem{}}).Return(nil).Once()

		got, err := fx.service.Reconcile(context.Background(), order.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusFinalized, got.Status)
	})

	t.Run("finalized order is left alone", func(t *testing.T) {
		fx := createTestFulfillmentService(t)
		order := newTestOrder(uuid.New())
		fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil).Once()

		got, err := fx.service.Reconcile(context.Background(), order.ID)
		require.NoError(t, err)
		assert.Same(t, order, got)
		fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	})

	t.Run("cart save failure is returned for retry", func(t *testing.T) {
		fx := createTestFulfillmentService(t)
		txOrderRepo := mockRepo.NewMockOrderRepository(t)
		txUserRepo := mockRepo.NewMockUserRepository(t)
		order := newTestOrder(uuid.New())
		order.Status = entity.OrderStatusNeedsReconciliation
		user := newTestUser()
		user.ID = order.Owner.UserID

		fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil).Once()
		fx.expectTransaction(t, txOrderRepo, txUserRepo)
		txOrderRepo.EXPECT().UpdateStatus(mock.Anything, order.ID,
			entity.OrderStatusNeedsReconciliation, entity.OrderStatusFinalized).Return(nil).Once()
		txUserRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil).Once()
		txUserRepo.EXPECT().SaveCart(mock.Anything, user.ID, mock.Anything).Return(errors.New("db down")).Once()

		_, err := fx.service.Reconcile(context.Background(), order.ID)
		assert.Error(t, err)
	})

	t.Run("failed status write deducts nothing and redelivery deducts once", func(t *testing.T) {
		fx := createTestFulfillmentService(t)
		txOrderRepo := mockRepo.NewMockOrderRepository(t)
		txUserRepo := mockRepo.NewMockUserRepository(t)
		order := newTestOrder(uuid.New())
		order.Status = entity.OrderStatusNeedsReconciliation
		ordered := order.Lines[0].ProductID
		user := newTestUser(entity.CartItem{ProductID: ordered, Quantity: 2})
		user.ID = order.Owner.UserID

		fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil).Twice()
		fx.txManager.EXPECT().
			Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
			RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
				factory := mockRepo.NewMockRepositoryFactory(t)
				factory.EXPECT().OrderRepo().Return(txOrderRepo).Maybe()
				factory.EXPECT().UserRepo().Return(txUserRepo).Maybe()

				return fn(factory)
			}).Twice()
		txOrderRepo.EXPECT().UpdateStatus(mock.Anything, order.ID,
			entity.OrderStatusNeedsReconciliation, entity.OrderStatusFinalized).Return(errors.New("db timeout")).Once()

		_, err := fx.service.Reconcile(context.Background(), order.ID)
		require.Error(t, err)
		txUserRepo.AssertNotCalled(t, "SaveCart", mock.Anything, mock.Anything, mock.Anything)

		txOrderRepo.EXPECT().UpdateStatus(mock.Anything, order.ID,
			entity.OrderStatusNeedsReconciliation, entity.OrderStatusFinalized).Return(nil).Once()
		txUserRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil).Once()
		txUserRepo.EXPECT().SaveCart(mock.Anything, user.ID, entity.Cart{
			Items: []entity.CartItem{{ProductID: ordered, Quantity: 1}},
		}).Return(nil).Once()

		got, err := fx.service.Reconcile(context.Background(), order.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusFinalized, got.Status)
	})

	t.Run("concurrent finalize reloads order without touching the cart", func(t *testing.T) {
		fx := createTestFulfillmentService(t)
		txOrderRepo := mockRepo.NewMockOrderRepository(t)
		txUserRepo := mockRepo.NewMockUserRepository(t)
		order := newTestOrder(uuid.New())
		order.Status = entity.OrderStatusNeedsReconciliation
		settled := *order
		settled.Status = entity.OrderStatusFinalized

		fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil).Once()
		fx.expectTransaction(t, txOrderRepo, txUserRepo)
		txOrderRepo.EXPECT().UpdateStatus(mock.Anything, order.ID,
			entity.OrderStatusNeedsReconciliation, entity.OrderStatusFinalized).Return(repository.ErrOrderStatusConflict).Once()
		fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(&settled, nil).Once()

		got, err := fx.service.Reconcile(context.Background(), order.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusFinalized, got.Status)
		txUserRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		txUserRepo.AssertNotCalled(t, "SaveCart", mock.Anything, mock.Anything, mock.Anything)
	})
}
