package bootstrap

import (
	"log/slog"

	"parking-monitor/internal/infra/gateway"
	"parking-monitor/internal/pkg/config"
	"parking-monitor/internal/usecase/shared"

	"github.com/omise/omise-go"
	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		func(cfg config.Config) (*omise.Client, error) {
			return gateway.NewOmiseClient(cfg.Gateway)
		},
		fx.Annotate(
			func(client *omise.Client, cfg config.Config, logger *slog.Logger) *gateway.OmiseGateway {
				return gateway.NewOmiseGateway(client, cfg.Gateway, logger)
			},
			fx.As(new(shared.PaymentGateway)),
		),
	),
)
