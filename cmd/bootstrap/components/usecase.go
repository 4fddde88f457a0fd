package components

import (
	"parking-monitor/internal/pkg/clock"
	"parking-monitor/internal/usecase/commands"
	"parking-monitor/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewParkingUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewParkingQueries,
		queries.NewPaymentQueries,
	),
)

// PaymentUseCaseModule needs a payment gateway, so only the payment service loads it.
var PaymentUseCaseModule = fx.Module("usecase/payment",
	fx.Provide(
		commands.NewPaymentUseCase,
	),
)
