package repository

import (
	"context"
	"time"

	"parking-monitor/internal/domain/payment"
	"parking-monitor/internal/infra"
	"parking-monitor/internal/infra/dbquery"
	"parking-monitor/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type IdempotencyWriteQueries interface {
	TryInsertIdempotencyKey(ctx context.Context, db dbquery.DBTX, arg dbquery.TryInsertIdempotencyKeyParams) (int64, error)
	GetIdempotencyKey(ctx context.Context, db dbquery.DBTX, key uuid.UUID) (dbquery.PaymentIdempotencyKey, error)
	ClaimExpiredIdempotencyKey(ctx context.Context, db dbquery.DBTX, arg dbquery.ClaimExpiredIdempotencyKeyParams) (int64, error)
	CompleteIdempotencyKey(ctx context.Context, db dbquery.DBTX, arg dbquery.CompleteIdempotencyKeyParams) error
	DeleteIdempotencyKey(ctx context.Context, db dbquery.DBTX, key uuid.UUID) error
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
	db      dbquery.DBTX
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries, db dbquery.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
		db:      db,
	}
}

// TryInsert reserves the key as processing. It reports false when the key already exists.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, key uuid.UUID, requestHash string, expiresAt time.Time) (bool, error) {
	params := dbquery.TryInsertIdempotencyKeyParams{
		Key:         key,
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
	}

	n, err := r.queries.TryInsertIdempotencyKey(ctx, r.db, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}
	return n == 1, nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, key uuid.UUID) (*payment.IdempotencyRecord, error) {
	row, err := r.queries.GetIdempotencyKey(ctx, r.db, key)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}
	return &payment.IdempotencyRecord{
		Key:         row.Key,
		RequestHash: row.RequestHash,
		Status:      payment.KeyStatus(row.Status),
		PaymentID:   pgconv.UUIDPtrFromPgtype(row.PaymentID),
		ExpiresAt:   pgconv.TimeFromPgtype(row.ExpiresAt),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

// ClaimExpired takes over a processing key whose lease ran out. It reports whether the claim won.
func (r *IdempotencyRepository) ClaimExpired(ctx context.Context, key uuid.UUID, requestHash string, expiresAt time.Time) (bool, error) {
	params := dbquery.ClaimExpiredIdempotencyKeyParams{
		Key:         key,
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
	}

	n, err := r.queries.ClaimExpiredIdempotencyKey(ctx, r.db, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim expired idempotency key", err)
	}
	return n == 1, nil
}

func (r *IdempotencyRepository) Complete(ctx context.Context, key, paymentID uuid.UUID) error {
	params := dbquery.CompleteIdempotencyKeyParams{
		Key:       key,
		PaymentID: pgconv.UUIDToPgtype(paymentID),
	}

	if err := r.queries.CompleteIdempotencyKey(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	return nil
}

func (r *IdempotencyRepository) Delete(ctx context.Context, key uuid.UUID) error {
	if err := r.queries.DeleteIdempotencyKey(ctx, r.db, key); err != nil {
		return infra.WrapRepoErr("failed to delete idempotency key", err)
	}
	return nil
}
