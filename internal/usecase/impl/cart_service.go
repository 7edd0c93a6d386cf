package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// cartService implements CartUsecase on top of the cart stored with the user.
// Read-modify-write of the cart is not locked; two concurrent adds for one user may lose an update.
type cartService struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		userRepo:    params.UserRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart resolves the cart of userID.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*entity.CartView, error) {
	user, err := loadUser(ctx, srv.userRepo, userID)
	if err != nil {
		return nil, err
	}

	return resolveCart(ctx, srv.productRepo, &user.Cart)
}

// AddToCart adds quantity of productID to the cart.
func (srv *cartService) AddToCart(ctx context.Context, userID, productID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails(entity.ErrInvalidQuantity.Error())
	}

	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		return mapProductError(err)
	}

	user, err := loadUser(ctx, srv.userRepo, userID)
	if err != nil {
		return err
	}

	if err := user.Cart.Add(productID, quantity); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	if err := srv.userRepo.SaveCart(ctx, userID, user.Cart); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to save cart")
	}

	srv.log(ctx).Debug("Cart item added",
		slog.Any("userID", userID),
		slog.Any("productID", productID),
		slog.Int("quantity", user.Cart.QuantityOf(productID)),
	)

	return nil
}

// RemoveFromCart drops productID from the cart.
func (srv *cartService) RemoveFromCart(ctx context.Context, userID, productID uuid.UUID) error {
	user, err := loadUser(ctx, srv.userRepo, userID)
	if err != nil {
		return err
	}

	if !user.Cart.Remove(productID) {
		return nil
	}

	if err := srv.userRepo.SaveCart(ctx, userID, user.Cart); err != nil {
		return errors.Wrap(err, "failed to save cart")
	}

	return nil
}

// ClearCart empties the cart.
func (srv *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	if err := srv.userRepo.SaveCart(ctx, userID, entity.Cart{}); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

func loadUser(ctx context.Context, userRepo repository.UserRepository, userID uuid.UUID) (*entity.User, error) {
	user, err := userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthorized.WrapMessage("session user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// resolveCart joins cart lines with live product data, skipping products that no longer exist.
func resolveCart(ctx context.Context, productRepo repository.ProductRepository, cart *entity.Cart) (*entity.CartView, error) {
	if cart.IsEmpty() {
		return entity.NewCartView(nil), nil
	}

	products, err := productRepo.FindByIDs(ctx, cart.ProductIDs())
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve cart products")
	}

	byID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	lines := make([]entity.CartLine, 0, len(cart.Items))
	for _, item := range cart.Items {
		product, ok := byID[item.ProductID]
		if !ok {
			continue
		}
		lines = append(lines, entity.CartLine{Product: product, Quantity: item.Quantity})
	}

	return entity.NewCartView(lines), nil
}
