package payment

import (
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

// New selects the payment gateway from configuration.
func New(cfg *config.Config, logger *slog.Logger) (service.PaymentGateway, error) {
	switch cfg.Payment.Provider {
	case constants.PaymentProviderStripe:
		if cfg.Payment.SecretKey == "" {
			return nil, errors.New("secret key is required for stripe provider")
		}
		logger.Info("Using Stripe payment gateway")

		return NewStripeGateway(cfg.Payment.SecretKey, nil, logger), nil

	case constants.PaymentProviderLocal, "":
		logger.Warn("Using local payment gateway, every checkout is auto-paid")

		return NewLocalGateway(logger), nil

	default:
		return nil, errors.Errorf("unknown payment provider: %s", cfg.Payment.Provider)
	}
}
