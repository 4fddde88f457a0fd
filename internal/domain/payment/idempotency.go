package payment

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type KeyStatus string

const (
	KeyProcessing KeyStatus = "processing"
	KeyCompleted  KeyStatus = "completed"
)

// IdempotencyRecord tracks one caller-supplied Idempotency-Key.
type IdempotencyRecord struct {
	Key         uuid.UUID
	RequestHash string
	Status      KeyStatus
	PaymentID   *uuid.UUID
	ExpiresAt   time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Fingerprint hashes the normalized charge so a reused key with a different body can be told apart.
func (r *ChargeRequest) Fingerprint() string {
	h := sha256.New()
	for _, part := range []string{
		r.parkingID,
		strconv.FormatInt(r.amountMinor, 10),
		r.currency,
		r.paymentMethodID,
	} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
