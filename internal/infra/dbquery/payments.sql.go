package dbquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const paymentColumns = `id, parking_id, amount_minor, currency, status, charge_id, idempotency_key, timestamp`

func scanPayment(row pgx.Row) (Payment, error) {
	var i Payment
	err := row.Scan(
		&i.ID,
		&i.ParkingID,
		&i.AmountMinor,
		&i.Currency,
		&i.Status,
		&i.ChargeID,
		&i.IdempotencyKey,
		&i.Timestamp,
	)
	return i, err
}

const insertPayment = `
INSERT INTO payments (` + paymentColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

type InsertPaymentParams struct {
	ID             uuid.UUID
	ParkingID      string
	AmountMinor    int64
	Currency       string
	Status         string
	ChargeID       string
	IdempotencyKey uuid.UUID
	Timestamp      pgtype.Timestamptz
}

func (q *Queries) InsertPayment(ctx context.Context, db DBTX, arg InsertPaymentParams) error {
	_, err := db.Exec(ctx, insertPayment,
		arg.ID,
		arg.ParkingID,
		arg.AmountMinor,
		arg.Currency,
		arg.Status,
		arg.ChargeID,
		arg.IdempotencyKey,
		arg.Timestamp,
	)
	return err
}

const getPaymentByID = `
SELECT ` + paymentColumns + `
FROM payments
WHERE id = $1
`

func (q *Queries) GetPaymentByID(ctx context.Context, db DBTX, id uuid.UUID) (Payment, error) {
	row := db.QueryRow(ctx, getPaymentByID, id)
	return scanPayment(row)
}

const listPaymentsByParkingID = `
SELECT ` + paymentColumns + `
FROM payments
WHERE parking_id = $1
ORDER BY timestamp DESC, id ASC
`

func (q *Queries) ListPaymentsByParkingID(ctx context.Context, db DBTX, parkingID string) ([]Payment, error) {
	rows, err := db.Query(ctx, listPaymentsByParkingID, parkingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Payment
	for rows.Next() {
		i, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
