//go:build unit || e2e

package builder

import (
	"time"

	"parking-monitor/internal/domain/payment"
	reqdto "parking-monitor/internal/handler/dto/request"
	"parking-monitor/internal/infra/dbquery"
	"parking-monitor/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PaymentBuilder struct {
	ParkingID       string
	Amount          float64
	Currency        string
	PaymentMethodID string
	ChargeID        string
	Status          string
	IdempotencyKey  uuid.UUID
	Timestamp       time.Time
}

func NewPaymentBuilder() *PaymentBuilder {
	return &PaymentBuilder{
		ParkingID:       "A1",
		Amount:          100.5,
		Currency:        "thb",
		PaymentMethodID: "tokn_test_5xyz",
		ChargeID:        "chrg_test_5abc",
		Status:          "successful",
		IdempotencyKey:  uuid.MustParse("5f0c7a52-3c5b-4c1e-9d55-1e4b8f7c2a10"),
		Timestamp:       time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *PaymentBuilder) With(mutate func(*PaymentBuilder)) *PaymentBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *PaymentBuilder) BuildChargeRequest() (*payment.ChargeRequest, error) {
	return payment.NewChargeRequest(b.ParkingID, b.Amount, b.Currency, b.PaymentMethodID)
}

func (b *PaymentBuilder) BuildDomain() (*payment.Payment, error) {
	req, err := b.BuildChargeRequest()
	if err != nil {
		return nil, err
	}
	return payment.NewPayment(req, b.ChargeID, b.Status, b.IdempotencyKey, b.Timestamp), nil
}

func (b *PaymentBuilder) BuildInfra(id uuid.UUID) dbquery.Payment {
	return dbquery.Payment{
		ID:             id,
		ParkingID:      b.ParkingID,
		AmountMinor:    payment.ToMinorUnits(b.Amount),
		Currency:       b.Currency,
		Status:         b.Status,
		ChargeID:       b.ChargeID,
		IdempotencyKey: b.IdempotencyKey,
		Timestamp:      pgtype.Timestamptz{Time: b.Timestamp, Valid: true},
	}
}

func (b *PaymentBuilder) BuildCreateRequestDTO() reqdto.CreatePaymentRequest {
	return reqdto.CreatePaymentRequest{
		ParkingID:       b.ParkingID,
		Amount:          b.Amount,
		Currency:        b.Currency,
		PaymentMethodID: b.PaymentMethodID,
	}
}

func (b *PaymentBuilder) BuildView(id uuid.UUID) *queries.PaymentView {
	return &queries.PaymentView{
		ID:        id,
		ParkingID: b.ParkingID,
		Amount:    b.Amount,
		Currency:  b.Currency,
		Status:    b.Status,
		ChargeID:  b.ChargeID,
		Timestamp: b.Timestamp,
	}
}
