package readstore

import (
	"context"

	"parking-monitor/internal/domain/payment"
	"parking-monitor/internal/infra"
	"parking-monitor/internal/infra/dbquery"
	"parking-monitor/internal/pkg/pgconv"
	"parking-monitor/internal/usecase/queries"
)

type PaymentViewQueries interface {
	ListPaymentsByParkingID(ctx context.Context, db dbquery.DBTX, parkingID string) ([]dbquery.Payment, error)
}

type PaymentReadStore struct {
	queries PaymentViewQueries
	db      dbquery.DBTX
}

func NewPaymentReadStore(queries PaymentViewQueries, db dbquery.DBTX) *PaymentReadStore {
	return &PaymentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentReadStore) ListByParkingID(ctx context.Context, parkingID string) ([]*queries.PaymentView, error) {
	rows, err := r.queries.ListPaymentsByParkingID(ctx, r.db, parkingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments by parking id", err)
	}

	views := make([]*queries.PaymentView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.PaymentView{
			ID:        row.ID,
			ParkingID: row.ParkingID,
			Amount:    payment.FromMinorUnits(row.AmountMinor),
			Currency:  row.Currency,
			Status:    row.Status,
			ChargeID:  row.ChargeID,
			Timestamp: pgconv.TimeFromPgtype(row.Timestamp),
		})
	}
	return views, nil
}
