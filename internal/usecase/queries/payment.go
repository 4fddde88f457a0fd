package queries

import (
	"context"
	"time"

	"parking-monitor/internal/pkg/errs"

	"github.com/google/uuid"
)

type PaymentView struct {
	ID        uuid.UUID
	ParkingID string
	Amount    float64
	Currency  string
	Status    string
	ChargeID  string
	Timestamp time.Time
}

type PaymentReadStore interface {
	ListByParkingID(ctx context.Context, parkingID string) ([]*PaymentView, error)
}

type PaymentQueries interface {
	// ListByParkingID returns every payment recorded for the id, newest first.
	ListByParkingID(ctx context.Context, parkingID string) ([]*PaymentView, error)
}

type paymentQueriesImpl struct {
	store PaymentReadStore
}

func NewPaymentQueries(store PaymentReadStore) PaymentQueries {
	return &paymentQueriesImpl{store: store}
}

func (q *paymentQueriesImpl) ListByParkingID(ctx context.Context, parkingID string) ([]*PaymentView, error) {
	views, err := q.store.ListByParkingID(ctx, parkingID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if views == nil {
		views = []*PaymentView{}
	}
	return views, nil
}
