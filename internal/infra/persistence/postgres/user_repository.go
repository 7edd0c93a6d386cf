// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

func (repo *userRepository) withCart(db *gorm.DB) *gorm.DB {
	return db.Preload("CartItems", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position ASC")
	})
}

// FindByID retrieves a user and their cart.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByEmail retrieves a user by email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "email = ?", email)
}

// FindByResetTokenHash retrieves the user holding the given reset token hash.
func (repo *userRepository) FindByResetTokenHash(ctx context.Context, tokenHash string) (*entity.User, error) {
	return repo.findOne(ctx, "reset_token_hash = ?", tokenHash)
}

func (repo *userRepository) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.withCart(repo.db.WithContext(ctx)).
		Where(query, arg).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Omit("CartItems").Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update writes the credential fields of the user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"password_hash":          userM.PasswordHash,
			"reset_token_hash":       userM.ResetTokenHash,
			"reset_token_expires_at": userM.ResetTokenExpiresAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// SaveCart replaces the stored cart lines of the user, keeping their order.
func (repo *userRepository) SaveCart(ctx context.Context, userID uuid.UUID, cart entity.Cart) error {
	items := fromCartDomain(userID, cart)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.CartItemModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear cart items")
		}
		if len(items) == 0 {
			return nil
		}
		if err := tx.Omit("Product").Create(&items).Error; err != nil {
			return errors.Wrap(err, "failed to insert cart items")
		}

		return nil
	})
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save cart")
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:                  data.ID,
		Email:               data.Email,
		PasswordHash:        data.PasswordHash,
		ResetTokenExpiresAt: data.ResetTokenExpiresAt,
		Cart:                toCartDomain(data.CartItems),
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
	if data.ResetTokenHash != nil {
		user.ResetTokenHash = *data.ResetTokenHash
	}

	return user
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:                  data.ID,
		Email:               data.Email,
		PasswordHash:        data.PasswordHash,
		ResetTokenExpiresAt: data.ResetTokenExpiresAt,
	}
	// NULL keeps the unique index free for users without a pending reset.
	if data.ResetTokenHash != "" {
		hash := data.ResetTokenHash
		userM.ResetTokenHash = &hash
	}

	return userM
}

func toCartDomain(items []model.CartItemModel) entity.Cart {
	cart := entity.Cart{Items: make([]entity.CartItem, 0, len(items))}
	for _, item := range items {
		cart.Items = append(cart.Items, entity.CartItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return cart
}

func fromCartDomain(userID uuid.UUID, cart entity.Cart) []model.CartItemModel {
	items := make([]model.CartItemModel, 0, len(cart.Items))
	for i, item := range cart.Items {
		items = append(items, model.CartItemModel{
			UserID:    userID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Position:  i,
		})
	}

	return items
}
