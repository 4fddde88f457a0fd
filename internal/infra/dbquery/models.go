package dbquery

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ParkingStatus struct {
	ID            int64
	ParkingID     string
	Status        string
	Source        string
	Timestamp     pgtype.Timestamptz
	MsgID         pgtype.Text
	Name          pgtype.Text
	CarNo         pgtype.Text
	BookedMinutes pgtype.Int4
}

type Payment struct {
	ID             uuid.UUID
	ParkingID      string
	AmountMinor    int64
	Currency       string
	Status         string
	ChargeID       string
	IdempotencyKey uuid.UUID
	Timestamp      pgtype.Timestamptz
}

type PaymentIdempotencyKey struct {
	Key         uuid.UUID
	RequestHash string
	Status      string
	PaymentID   pgtype.UUID
	ExpiresAt   pgtype.Timestamptz
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}
