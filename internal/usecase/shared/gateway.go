package shared

import (
	"context"

	"parking-monitor/internal/domain/payment"
)

// GatewayCharge is the gateway's view of a created charge. Raw is the full provider payload.
type GatewayCharge struct {
	ID       string
	Status   string
	Amount   int64
	Currency string
	Raw      any
}

type GatewayRefund struct {
	ID       string
	ChargeID string
	Amount   int64
	Raw      any
}

type PaymentGateway interface {
	// Charge creates and captures a charge in one call. Calls repeated with the same
	// idempotency key return the original charge.
	Charge(ctx context.Context, req *payment.ChargeRequest, idempotencyKey string) (*GatewayCharge, error)
	// Refund refunds the full amount of a charge.
	Refund(ctx context.Context, chargeID string) (*GatewayRefund, error)
}
