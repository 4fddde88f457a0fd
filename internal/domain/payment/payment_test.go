//go:build unit

package payment_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parking-monitor/internal/domain/payment"
)

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		amount float64
		want   int64
	}{
		{amount: 100, want: 10000},
		{amount: 19.99, want: 1999},
		{amount: 0.1 + 0.2, want: 30},
		{amount: 0.004, want: 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, payment.ToMinorUnits(tt.amount), "amount %v", tt.amount)
	}
	assert.InDelta(t, 19.99, payment.FromMinorUnits(1999), 1e-9)
}

func TestNewChargeRequest(t *testing.T) {
	tests := []struct {
		name      string
		parkingID string
		amount    float64
		currency  string
		method    string
		wantErr   error
	}{
		{name: "valid", parkingID: "A1", amount: 100, currency: "THB", method: "tokn_test"},
		{name: "unknown parking id is accepted", parkingID: "Z99", amount: 1, currency: "usd", method: "tokn_test"},
		{name: "zero amount", parkingID: "A1", amount: 0, currency: "thb", method: "tokn_test", wantErr: payment.ErrInvalidAmount},
		{name: "negative amount", parkingID: "A1", amount: -5, currency: "thb", method: "tokn_test", wantErr: payment.ErrInvalidAmount},
		{name: "bad currency", parkingID: "A1", amount: 1, currency: "baht", method: "tokn_test", wantErr: payment.ErrInvalidCurrency},
		{name: "missing parking id", parkingID: "", amount: 1, currency: "thb", method: "tokn_test", wantErr: payment.ErrMissingParkingID},
		{name: "missing method", parkingID: "A1", amount: 1, currency: "thb", method: "", wantErr: payment.ErrMissingPaymentMethod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := payment.NewChargeRequest(tt.parkingID, tt.amount, tt.currency, tt.method)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, payment.ToMinorUnits(tt.amount), req.AmountMinor())
			assert.Len(t, req.Currency(), 3)
		})
	}
}

func TestChargeRequest_Fingerprint(t *testing.T) {
	a, err := payment.NewChargeRequest("A1", 100, "THB", "tokn_1")
	require.NoError(t, err)
	b, err := payment.NewChargeRequest("A1", 100, "thb", "tokn_1")
	require.NoError(t, err)
	c, err := payment.NewChargeRequest("A1", 101, "thb", "tokn_1")
	require.NoError(t, err)

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestNewPayment(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	key := uuid.New()
	req, err := payment.NewChargeRequest("A1", 12.5, "thb", "tokn_1")
	require.NoError(t, err)

	p := payment.NewPayment(req, "chrg_test_1", "successful", key, now)

	assert.NotEqual(t, uuid.Nil, p.ID())
	assert.Equal(t, "A1", p.ParkingID())
	assert.Equal(t, int64(1250), p.AmountMinor())
	assert.InDelta(t, 12.5, p.Amount(), 1e-9)
	assert.Equal(t, "chrg_test_1", p.ChargeID())
	assert.Equal(t, key, p.IdempotencyKey())
	assert.Equal(t, now, p.Timestamp())
}
