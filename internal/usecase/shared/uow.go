package shared

import (
	"context"
	"time"

	"parking-monitor/internal/domain/parking"
	"parking-monitor/internal/domain/payment"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Direct: Repositories bound to the pool, each call commits on its own
	Direct() Tx
}

type Tx interface {
	ParkingEvents() ParkingEventRepository
	Payments() PaymentRepository
	Idempotency() IdempotencyRepository
}

type ParkingEventRepository interface {
	Lock(ctx context.Context, space parking.SpaceID) error
	Latest(ctx context.Context, space parking.SpaceID) (*parking.StatusEvent, error)
	Append(ctx context.Context, ev *parking.StatusEvent) (int64, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *payment.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error)
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, key uuid.UUID, requestHash string, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, key uuid.UUID) (*payment.IdempotencyRecord, error)
	ClaimExpired(ctx context.Context, key uuid.UUID, requestHash string, expiresAt time.Time) (bool, error)
	Complete(ctx context.Context, key, paymentID uuid.UUID) error
	Delete(ctx context.Context, key uuid.UUID) error
}
