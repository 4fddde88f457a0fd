package components

import (
	"parking-monitor/internal/handler/api"

	"go.uber.org/fx"
)

var StatusHandlerModule = fx.Module("handler/status",
	fx.Provide(
		api.NewParkingHandler,
		api.NewLiveHandler,
	),
)

var PaymentHandlerModule = fx.Module("handler/payment",
	fx.Provide(
		api.NewPaymentHandler,
	),
)
