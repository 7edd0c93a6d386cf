package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	checkoutSuccessPath = "/checkout/success?session_id={CHECKOUT_SESSION_ID}"
	checkoutCancelPath  = "/checkout/cancel"
)

// checkoutService converts carts into orders.
//
// Finalization is a small saga: the order is written as pending, the cart is cleared and the
// order is then marked finalized. When the cart cannot be cleared the order is kept and marked
// needs_reconciliation so the buyer is never charged without an order.
type checkoutService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	gateway     service.PaymentGateway
	publisher   service.EventPublisher
	baseURL     string
	currency    string
	logger      *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	OrderRepo   repository.OrderRepository
	Gateway     service.PaymentGateway
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	currency := params.Config.Payment.Currency
	if currency == "" {
		currency = "usd"
	}

	return &checkoutService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		productRepo: params.ProductRepo,
		orderRepo:   params.OrderRepo,
		gateway:     params.Gateway,
		publisher:   params.Publisher,
		baseURL:     strings.TrimRight(params.Config.HTTP.BaseURL, "/"),
		currency:    currency,
		logger:      params.Logger,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BeginCheckout prices the cart and opens a gateway session.
func (srv *checkoutService) BeginCheckout(ctx context.Context, userID uuid.UUID) (*usecase.CheckoutQuote, error) {
	user, err := loadUser(ctx, srv.userRepo, userID)
	if err != nil {
		return nil, err
	}

	cart, err := resolveCart(ctx, srv.productRepo, &user.Cart)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, domainerrors.ErrEmptyCart
	}

	var totalMinor int64
	lineItems := make([]service.PaymentLineItem, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		unitAmount := entity.ToMinorUnits(line.Product.Price)
		totalMinor += unitAmount * int64(line.Quantity)
		lineItems = append(lineItems, service.PaymentLineItem{
			Name:        line.Product.Title,
			Description: line.Product.Description,
			UnitAmount:  unitAmount,
			Quantity:    int64(line.Quantity),
		})
	}

	session, err := srv.gateway.CreateCheckoutSession(ctx, &service.CheckoutSessionRequest{
		LineItems:         lineItems,
		Currency:          srv.currency,
		SuccessURL:        srv.baseURL + checkoutSuccessPath,
		CancelURL:         srv.baseURL + checkoutCancelPath,
		CustomerEmail:     user.Email,
		ClientReferenceID: user.ID.String(),
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create checkout session", slog.Any("userID", userID), slog.Any("error", err))

		return nil, domainerrors.ErrPaymentGateway.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("Checkout session created",
		slog.Any("userID", userID),
		slog.String("sessionID", session.ID),
		slog.Int64("totalMinor", totalMinor),
	)

	return &usecase.CheckoutQuote{
		Cart:        cart,
		TotalMinor:  totalMinor,
		Currency:    srv.currency,
		SessionID:   session.ID,
		RedirectURL: session.URL,
	}, nil
}

// FinalizeOrder creates the order for a paid session.
func (srv *checkoutService) FinalizeOrder(ctx context.Context, userID uuid.UUID, sessionID string) (*entity.Order, error) {
	if sessionID == "" {
		return nil, domainerrors.ErrPaymentNotConfirmed.WrapMessage("missing payment session id")
	}

	session, err := srv.verifyPayment(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	existing, err := srv.findOrderBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return srv.resumeOrder(ctx, userID, existing), nil
	}

	user, err := loadUser(ctx, srv.userRepo, userID)
	if err != nil {
		return nil, err
	}
	cart, err := resolveCart(ctx, srv.productRepo, &user.Cart)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, domainerrors.ErrEmptyCart
	}
	if totalMinor := cartTotalMinor(cart); session.AmountTotal != totalMinor {
		srv.log(ctx).Warn("Paid amount does not match cart",
			slog.String("sessionID", sessionID),
			slog.Int64("paidMinor", session.AmountTotal),
			slog.Int64("cartMinor", totalMinor),
		)

		return nil, domainerrors.ErrPaymentNotConfirmed.WrapMessage("paid amount does not match cart total")
	}

	order, err := entity.NewOrder(entity.OrderOwner{UserID: user.ID, Email: user.Email}, cart.Snapshot(), sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to snapshot cart")
	}

	created, err := srv.createPendingOrder(ctx, order)
	if err != nil {
		return nil, err
	}
	if created != order {
		return srv.resumeOrder(ctx, userID, created), nil
	}

	return srv.completeOrder(ctx, order), nil
}

// resumeOrder returns the order already recorded for a session. A pending order left behind by
// an interrupted callback is completed on behalf of its owner.
func (srv *checkoutService) resumeOrder(ctx context.Context, userID uuid.UUID, order *entity.Order) *entity.Order {
	if order.Status != entity.OrderStatusPending || order.Owner.UserID != userID {
		srv.log(ctx).Info("Order already exists for session",
			slog.String("sessionID", order.PaymentSessionID),
			slog.String("status", string(order.Status)),
		)

		return order
	}

	srv.log(ctx).Info("Resuming pending order", slog.Any("orderID", order.ID))

	return srv.completeOrder(ctx, order)
}

func (srv *checkoutService) verifyPayment(ctx context.Context, userID uuid.UUID, sessionID string) (*service.CheckoutSession, error) {
	session, err := srv.gateway.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		srv.log(ctx).Error("Failed to verify checkout session", slog.String("sessionID", sessionID), slog.Any("error", err))

		return nil, domainerrors.ErrPaymentGateway.WrapMessage(err.Error())
	}

	if !session.Paid {
		return nil, domainerrors.ErrPaymentNotConfirmed.WrapMessage("payment session is not paid")
	}
	if session.ClientReferenceID != userID.String() {
		srv.log(ctx).Warn("Payment session belongs to another user",
			slog.String("sessionID", sessionID),
			slog.Any("userID", userID),
		)

		return nil, domainerrors.ErrPaymentNotConfirmed.WrapMessage("payment session does not belong to user")
	}

	return session, nil
}

func cartTotalMinor(cart *entity.CartView) int64 {
	var total int64
	for _, line := range cart.Lines {
		total += entity.ToMinorUnits(line.Product.Price) * int64(line.Quantity)
	}

	return total
}

func (srv *checkoutService) findOrderBySession(ctx context.Context, sessionID string) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByPaymentSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find order by payment session")
	}

	return order, nil
}

// createPendingOrder inserts order unless the session already has one, in which case that order is returned.
func (srv *checkoutService) createPendingOrder(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	var existing *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		found, err := orderRepo.FindByPaymentSession(ctx, order.PaymentSessionID)
		if err == nil {
			existing = found

			return nil
		}
		if !errors.Is(err, repository.ErrOrderNotFound) {
			return errors.Wrap(err, "failed to check payment session")
		}

		return orderRepo.Create(ctx, order)
	})
	if err != nil {
		if errors.Is(err, repository.ErrOrderAlreadyExists) {
			raced, findErr := srv.findOrderBySession(ctx, order.PaymentSessionID)
			if findErr == nil && raced != nil {
				return raced, nil
			}
		}
		srv.log(ctx).Error("Failed to create order", slog.String("sessionID", order.PaymentSessionID), slog.Any("error", err))

		return nil, domainerrors.ErrTransactionFailed.WrapMessage(err.Error())
	}
	if existing != nil {
		return existing, nil
	}

	srv.log(ctx).Info("Pending order created", slog.Any("orderID", order.ID))

	return order, nil
}

// completeOrder clears the cart and moves the order out of pending.
//
// When the status write fails the order stays pending and a needs_reconciliation event is
// still published so the order worker settles it.
func (srv *checkoutService) completeOrder(ctx context.Context, order *entity.Order) *entity.Order {
	next := entity.OrderStatusFinalized
	eventType := service.OrderEventFinalized

	if err := srv.userRepo.SaveCart(ctx, order.Owner.UserID, entity.Cart{}); err != nil {
		srv.log(ctx).Error("Failed to clear cart after order creation",
			slog.Any("orderID", order.ID),
			slog.Any("error", err),
		)
		next = entity.OrderStatusNeedsReconciliation
		eventType = service.OrderEventNeedsReconciliation
	}

	err := srv.orderRepo.UpdateStatus(ctx, order.ID, entity.OrderStatusPending, next)
	switch {
	case err == nil:
		order.Status = next
	case errors.Is(err, repository.ErrOrderStatusConflict):
		// A concurrent callback already moved it on and published the event.
		if settled, findErr := srv.orderRepo.FindByID(ctx, order.ID); findErr == nil {
			return settled
		}

		return order
	default:
		srv.log(ctx).Error("Failed to update order status",
			slog.Any("orderID", order.ID),
			slog.String("status", string(next)),
			slog.Any("error", err),
		)
		eventType = service.OrderEventNeedsReconciliation
	}

	srv.publish(ctx, order, eventType)

	return order
}

func (srv *checkoutService) publish(ctx context.Context, order *entity.Order, eventType string) {
	event := &service.OrderEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Type:      eventType,
		OrderID:   order.ID.String(),
		UserID:    order.Owner.UserID.String(),
		Email:     order.Owner.Email,
		Total:     order.Total().StringFixed(2),
		Status:    string(order.Status),
		CreatedAt: time.Now(),
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.Any("orderID", order.ID),
			slog.String("type", eventType),
			slog.Any("error", err),
		)
	}
}
