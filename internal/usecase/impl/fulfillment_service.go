package impl

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

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

type fulfillmentService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	mailer    service.Mailer
	baseURL   string
	logger    *slog.Logger
}

// FulfillmentServiceParams holds dependencies for FulfillmentService, injected by Fx.
type FulfillmentServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	UserRepo  repository.UserRepository
	Mailer    service.Mailer
	Config    *config.Config
	Logger    *slog.Logger
}

// NewFulfillmentService is the constructor for fulfillmentService.
func NewFulfillmentService(params FulfillmentServiceParams) usecase.FulfillmentUsecase {
	return &fulfillmentService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		userRepo:  params.UserRepo,
		mailer:    params.Mailer,
		baseURL:   strings.TrimRight(params.Config.HTTP.BaseURL, "/"),
		logger:    params.Logger,
	}
}

func (srv *fulfillmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendConfirmation delivers the order summary synchronously so the caller can retry on failure.
func (srv *fulfillmentService) SendConfirmation(ctx context.Context, orderID uuid.UUID) error {
	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return err
	}

	if err := srv.mailer.Send(ctx, confirmationMessage(order, srv.baseURL)); err != nil {
		return errors.Wrap(domainerrors.ErrMailDelivery.WrapMessage(err.Error()), "failed to send order confirmation")
	}

	srv.log(ctx).Info("Order confirmation sent", slog.Any("orderID", order.ID))

	return nil
}

// Reconcile finishes the saga for an order whose cart could not be cleared at checkout, or that
// was left pending by an interrupted checkout.
//
// The status compare-and-set runs first inside the transaction, so the ordered quantities are
// only removed from the cart by the delivery that actually settles the order.
func (srv *fulfillmentService) Reconcile(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != entity.OrderStatusNeedsReconciliation && order.Status != entity.OrderStatusPending {
		return order, nil
	}
	if !order.CanTransitionTo(entity.OrderStatusFinalized) {
		return nil, errors.WithStack(entity.ErrStatusTransition)
	}

	err = srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		if err := txRepoFactory.OrderRepo().UpdateStatus(ctx, order.ID, order.Status, entity.OrderStatusFinalized); err != nil {
			return err
		}

		userRepo := txRepoFactory.UserRepo()
		user, err := loadUser(ctx, userRepo, order.Owner.UserID)
		if err != nil {
			return err
		}

		// Items added after checkout stay in the cart.
		cart := user.Cart
		for _, line := range order.Lines {
			cart.Deduct(line.ProductID, line.Quantity)
		}

		return errors.Wrap(userRepo.SaveCart(ctx, user.ID, cart), "failed to deduct ordered items from cart")
	})
	if errors.Is(err, repository.ErrOrderStatusConflict) {
		// Someone else finished it first.
		return srv.findOrder(ctx, orderID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to reconcile order")
	}
	order.Status = entity.OrderStatusFinalized

	srv.log(ctx).Info("Order reconciled", slog.Any("orderID", order.ID))

	return order, nil
}

func (srv *fulfillmentService) findOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

func confirmationMessage(order *entity.Order, baseURL string) *service.MailMessage {
	link := baseURL + "/orders/" + order.ID.String()

	var htmlBody, textBody strings.Builder
	htmlBody.WriteString("<h1>Thank you for your order!</h1><ul>")
	fmt.Fprintf(&textBody, "Thank you for your order %s!\n\n", order.ID)
	for _, line := range order.Lines {
		fmt.Fprintf(&htmlBody, "<li>%s - %d x $%s</li>", html.EscapeString(line.Title), line.Quantity, line.Price.StringFixed(2))
		fmt.Fprintf(&textBody, "%s - %d x $%s\n", line.Title, line.Quantity, line.Price.StringFixed(2))
	}
	total := order.Total().StringFixed(2)
	fmt.Fprintf(&htmlBody, `</ul><p>Total: $%s</p><p>Download your <a href="%s">invoice</a>.</p>`, total, link)
	fmt.Fprintf(&textBody, "\nTotal: $%s\nInvoice: %s\n", total, link)

	return &service.MailMessage{
		To:       order.Owner.Email,
		Subject:  "Order confirmed",
		HTMLBody: htmlBody.String(),
		TextBody: textBody.String(),
	}
}
