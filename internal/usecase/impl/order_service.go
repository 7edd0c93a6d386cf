package impl

import (
	"context"
	"io"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const invoiceContentType = "application/pdf"

type orderService struct {
	orderRepo repository.OrderRepository
	renderer  service.InvoiceRenderer
	storage   service.FileStorage
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	Renderer  service.InvoiceRenderer
	Storage   service.FileStorage
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo: params.OrderRepo,
		renderer:  params.Renderer,
		storage:   params.Storage,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListOrders returns the orders of userID, newest first.
func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrderForUser loads an order and checks ownership.
func (srv *orderService) GetOrderForUser(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if !order.IsOwnedBy(userID) {
		srv.log(ctx).Warn("Invoice requested by non-owner", slog.Any("orderID", orderID), slog.Any("userID", userID))

		return nil, domainerrors.ErrOrderForbidden
	}

	return order, nil
}

// StreamInvoice renders the invoice once into both the response and storage.
// A storage failure is logged and does not interrupt the response.
func (srv *orderService) StreamInvoice(ctx context.Context, order *entity.Order, w io.Writer) error {
	key := constants.InvoicePrefix + usecase.InvoiceFilename(order.ID)

	storeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	stored, err := srv.storage.NewWriter(storeCtx, key, invoiceContentType)
	if err != nil {
		srv.log(ctx).Warn("Failed to open invoice storage", slog.String("key", key), slog.Any("error", err))

		return srv.render(w, order)
	}

	sink := &bestEffortWriter{w: stored}
	if err := srv.render(io.MultiWriter(w, sink), order); err != nil {
		cancel()
		_ = stored.Close()

		return err
	}

	if sink.err != nil {
		cancel()
		_ = stored.Close()
		srv.log(ctx).Warn("Failed to store invoice", slog.String("key", key), slog.Any("error", sink.err))

		return nil
	}
	if err := stored.Close(); err != nil {
		srv.log(ctx).Warn("Failed to commit invoice", slog.String("key", key), slog.Any("error", err))
	}

	return nil
}

func (srv *orderService) render(w io.Writer, order *entity.Order) error {
	if err := srv.renderer.Render(w, order); err != nil {
		return errors.Wrapf(err, "failed to render invoice for order %s", order.ID)
	}

	return nil
}

// bestEffortWriter remembers the first write error and discards everything after it.
type bestEffortWriter struct {
	w   io.Writer
	err error
}

func (b *bestEffortWriter) Write(p []byte) (int, error) {
	if b.err == nil {
		_, b.err = b.w.Write(p)
	}

	return len(p), nil
}
