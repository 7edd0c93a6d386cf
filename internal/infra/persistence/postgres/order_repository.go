package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// orderRepository implements the append-only repository.OrderRepository.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

func (repo *orderRepository) withItems(db *gorm.DB) *gorm.DB {
	return db.Preload("Items", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position ASC")
	})
}

// Create inserts the order and its line snapshots.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrOrderAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves an order with its lines.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByPaymentSession retrieves the order created for a payment session.
func (repo *orderRepository) FindByPaymentSession(ctx context.Context, sessionID string) (*entity.Order, error) {
	return repo.findOne(ctx, "payment_session_id = ?", sessionID)
}

func (repo *orderRepository) findOne(ctx context.Context, query string, arg any) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.withItems(repo.db.WithContext(ctx)).
		Where(query, arg).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

// FindByUser retrieves every order of a user, newest first.
func (repo *orderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.withItems(repo.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// UpdateStatus moves an order from one status to another.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Update("status", string(to))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderStatusConflict
	}

	return nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	lines := make([]entity.OrderLine, 0, len(data.Items))
	for _, item := range data.Items {
		lines = append(lines, entity.OrderLine{
			ProductID:   item.ProductID,
			Title:       item.Title,
			Description: item.Description,
			Price:       item.Price,
			Quantity:    item.Quantity,
		})
	}

	return &entity.Order{
		ID: data.ID,
		Owner: entity.OrderOwner{
			UserID: data.UserID,
			Email:  data.UserEmail,
		},
		Lines:            lines,
		Status:           entity.OrderStatus(data.Status),
		PaymentSessionID: data.PaymentSessionID,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Lines))
	for i, line := range data.Lines {
		items = append(items, model.OrderItemModel{
			Position:    i,
			ProductID:   line.ProductID,
			Title:       line.Title,
			Description: line.Description,
			Price:       line.Price,
			Quantity:    line.Quantity,
		})
	}

	return &model.OrderModel{
		ID:               data.ID,
		UserID:           data.Owner.UserID,
		UserEmail:        data.Owner.Email,
		Status:           string(data.Status),
		PaymentSessionID: data.PaymentSessionID,
		Items:            items,
	}
}
