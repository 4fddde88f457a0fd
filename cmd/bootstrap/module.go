package bootstrap

import (
	"parking-monitor/cmd/bootstrap/components"
	"parking-monitor/internal/handler"
	"parking-monitor/internal/pkg/config"

	"go.uber.org/fx"
)

var baseModule = fx.Options(
	ConfigModule,
	LoggerModule,
	TracingModule,
	DBModule,
	components.RepositoryModule,
	components.UseCaseModule,
)

// StatusModule serves the dashboard, booking API and live feed.
var StatusModule = fx.Options(
	fx.Supply(ServiceName("status")),
	fx.Provide(func(cfg config.Config) ListenPort { return ListenPort(cfg.Server.StatusPort) }),
	baseModule,
	components.StatusHandlerModule,
	ServerModule,
	fx.Invoke(handler.NewStatusRouter),
)

// PaymentModule serves the payment API.
var PaymentModule = fx.Options(
	fx.Supply(ServiceName("payment")),
	fx.Provide(func(cfg config.Config) ListenPort { return ListenPort(cfg.Server.PaymentPort) }),
	baseModule,
	GatewayModule,
	components.PaymentUseCaseModule,
	components.PaymentHandlerModule,
	ServerModule,
	fx.Invoke(handler.NewPaymentRouter),
)

// SimulatorAppModule publishes mock sensor readings.
var SimulatorAppModule = fx.Options(
	fx.Supply(ServiceName("simulator")),
	baseModule,
	PublisherModule,
	SimulatorModule,
)

// RecorderAppModule stores readings consumed from the bus.
var RecorderAppModule = fx.Options(
	fx.Supply(ServiceName("recorder")),
	baseModule,
	ConsumerModule,
	RecorderModule,
)
