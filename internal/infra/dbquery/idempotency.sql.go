package dbquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const tryInsertIdempotencyKey = `
INSERT INTO payment_idempotency_keys (key, request_hash, status, expires_at)
VALUES ($1, $2, 'processing', $3)
ON CONFLICT (key) DO NOTHING
`

type TryInsertIdempotencyKeyParams struct {
	Key         uuid.UUID
	RequestHash string
	ExpiresAt   pgtype.Timestamptz
}

func (q *Queries) TryInsertIdempotencyKey(ctx context.Context, db DBTX, arg TryInsertIdempotencyKeyParams) (int64, error) {
	tag, err := db.Exec(ctx, tryInsertIdempotencyKey, arg.Key, arg.RequestHash, arg.ExpiresAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getIdempotencyKey = `
SELECT key, request_hash, status, payment_id, expires_at, created_at, updated_at
FROM payment_idempotency_keys
WHERE key = $1
`

func (q *Queries) GetIdempotencyKey(ctx context.Context, db DBTX, key uuid.UUID) (PaymentIdempotencyKey, error) {
	row := db.QueryRow(ctx, getIdempotencyKey, key)
	var i PaymentIdempotencyKey
	err := row.Scan(
		&i.Key,
		&i.RequestHash,
		&i.Status,
		&i.PaymentID,
		&i.ExpiresAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

// only a stale processing key with the same request can be taken over
const claimExpiredIdempotencyKey = `
UPDATE payment_idempotency_keys
SET expires_at = $3, updated_at = now()
WHERE key = $1
  AND request_hash = $2
  AND status = 'processing'
  AND expires_at < now()
`

type ClaimExpiredIdempotencyKeyParams struct {
	Key         uuid.UUID
	RequestHash string
	ExpiresAt   pgtype.Timestamptz
}

func (q *Queries) ClaimExpiredIdempotencyKey(ctx context.Context, db DBTX, arg ClaimExpiredIdempotencyKeyParams) (int64, error) {
	tag, err := db.Exec(ctx, claimExpiredIdempotencyKey, arg.Key, arg.RequestHash, arg.ExpiresAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const completeIdempotencyKey = `
UPDATE payment_idempotency_keys
SET status = 'completed', payment_id = $2, updated_at = now()
WHERE key = $1
`

type CompleteIdempotencyKeyParams struct {
	Key       uuid.UUID
	PaymentID pgtype.UUID
}

func (q *Queries) CompleteIdempotencyKey(ctx context.Context, db DBTX, arg CompleteIdempotencyKeyParams) error {
	_, err := db.Exec(ctx, completeIdempotencyKey, arg.Key, arg.PaymentID)
	return err
}

const deleteIdempotencyKey = `
DELETE FROM payment_idempotency_keys
WHERE key = $1 AND status = 'processing'
`

func (q *Queries) DeleteIdempotencyKey(ctx context.Context, db DBTX, key uuid.UUID) error {
	_, err := db.Exec(ctx, deleteIdempotencyKey, key)
	return err
}
