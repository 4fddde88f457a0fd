package payment

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount        = errors.New("amount must be greater than zero")
	ErrInvalidCurrency      = errors.New("currency must be a three letter ISO 4217 code")
	ErrMissingParkingID     = errors.New("parkingId is required")
	ErrMissingPaymentMethod = errors.New("paymentMethodId is required")
)

// GatewayStatusFailed is the charge status the gateway reports for a declined card.
const GatewayStatusFailed = "failed"

// ToMinorUnits converts a decimal amount in major units to the gateway's integer unit.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func FromMinorUnits(minor int64) float64 {
	return float64(minor) / 100
}

func NormalizeCurrency(code string) (string, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if len(code) != 3 {
		return "", ErrInvalidCurrency
	}
	for _, r := range code {
		if r < 'a' || r > 'z' {
			return "", ErrInvalidCurrency
		}
	}
	return code, nil
}

// ChargeRequest is a validated instruction to charge a payment method.
type ChargeRequest struct {
	parkingID       string
	amountMinor     int64
	currency        string
	paymentMethodID string
}

// NewChargeRequest validates the charge input. parkingID is not checked against the known spaces.
func NewChargeRequest(parkingID string, amount float64, currency, paymentMethodID string) (*ChargeRequest, error) {
	if strings.TrimSpace(parkingID) == "" {
		return nil, ErrMissingParkingID
	}
	minor := ToMinorUnits(amount)
	if math.IsNaN(amount) || math.IsInf(amount, 0) || minor <= 0 {
		return nil, ErrInvalidAmount
	}
	cur, err := NormalizeCurrency(currency)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(paymentMethodID) == "" {
		return nil, ErrMissingPaymentMethod
	}
	return &ChargeRequest{
		parkingID:       parkingID,
		amountMinor:     minor,
		currency:        cur,
		paymentMethodID: paymentMethodID,
	}, nil
}

func (r *ChargeRequest) ParkingID() string       { return r.parkingID }
func (r *ChargeRequest) AmountMinor() int64      { return r.amountMinor }
func (r *ChargeRequest) Currency() string        { return r.currency }
func (r *ChargeRequest) PaymentMethodID() string { return r.paymentMethodID }

// Payment is the local ledger entry of a successful gateway charge.
type Payment struct {
	id             uuid.UUID
	parkingID      string
	amountMinor    int64
	currency       string
	status         string
	chargeID       string
	idempotencyKey uuid.UUID
	timestamp      time.Time
}

func NewPayment(req *ChargeRequest, chargeID, status string, idempotencyKey uuid.UUID, now time.Time) *Payment {
	return &Payment{
		id:             uuid.New(),
		parkingID:      req.parkingID,
		amountMinor:    req.amountMinor,
		currency:       req.currency,
		status:         status,
		chargeID:       chargeID,
		idempotencyKey: idempotencyKey,
		timestamp:      now,
	}
}

func ReconstructPayment(
	id uuid.UUID,
	parkingID string,
	amountMinor int64,
	currency string,
	status string,
	chargeID string,
	idempotencyKey uuid.UUID,
	timestamp time.Time,
) *Payment {
	return &Payment{
		id:             id,
		parkingID:      parkingID,
		amountMinor:    amountMinor,
		currency:       currency,
		status:         status,
		chargeID:       chargeID,
		idempotencyKey: idempotencyKey,
		timestamp:      timestamp,
	}
}

func (p *Payment) ID() uuid.UUID             { return p.id }
func (p *Payment) ParkingID() string         { return p.parkingID }
func (p *Payment) AmountMinor() int64        { return p.amountMinor }
func (p *Payment) Amount() float64           { return FromMinorUnits(p.amountMinor) }
func (p *Payment) Currency() string          { return p.currency }
func (p *Payment) Status() string            { return p.status }
func (p *Payment) ChargeID() string          { return p.chargeID }
func (p *Payment) IdempotencyKey() uuid.UUID { return p.idempotencyKey }
func (p *Payment) Timestamp() time.Time      { return p.timestamp }
