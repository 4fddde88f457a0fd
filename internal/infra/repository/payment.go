package repository

import (
	"context"

	"parking-monitor/internal/domain/payment"
	"parking-monitor/internal/infra"
	"parking-monitor/internal/infra/dbquery"
	"parking-monitor/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PaymentWriteQueries interface {
	InsertPayment(ctx context.Context, db dbquery.DBTX, arg dbquery.InsertPaymentParams) error
	GetPaymentByID(ctx context.Context, db dbquery.DBTX, id uuid.UUID) (dbquery.Payment, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      dbquery.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db dbquery.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	params := dbquery.InsertPaymentParams{
		ID:             p.ID(),
		ParkingID:      p.ParkingID(),
		AmountMinor:    p.AmountMinor(),
		Currency:       p.Currency(),
		Status:         p.Status(),
		ChargeID:       p.ChargeID(),
		IdempotencyKey: p.IdempotencyKey(),
		Timestamp:      pgconv.TimeToPgtype(p.Timestamp()),
	}

	if err := r.queries.InsertPayment(ctx, r.db, params); err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("payment already recorded for idempotency key", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert payment", err)
	}
	return nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	row, err := r.queries.GetPaymentByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get payment by id", err)
	}
	return payment.ReconstructPayment(
		row.ID,
		row.ParkingID,
		row.AmountMinor,
		row.Currency,
		row.Status,
		row.ChargeID,
		row.IdempotencyKey,
		pgconv.TimeFromPgtype(row.Timestamp),
	), nil
}
