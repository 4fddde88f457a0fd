//go:build e2e

package e2e

import (
	"net/http"
	"testing"

	"parking-monitor/internal/handler/api"
	resdto "parking-monitor/internal/handler/dto/response"
	"parking-monitor/tests/common/builder"
	"parking-monitor/tests/common/dbtest"
	"parking-monitor/tests/common/httptest"
	"parking-monitor/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type PaymentTestSuite struct {
	SharedSuite
}

func TestPaymentSuite(t *testing.T) {
	suite.Run(t, new(PaymentTestSuite))
}

func (s *PaymentTestSuite) pay(key string, body any) *resdto.CreatePaymentResponse {
	rec := httptest.PerformRequest(s.T(), s.PaymentRouter, http.MethodPost, "/payment", body,
		map[string]string{api.IdempotencyKeyHeader: key})
	var res resdto.CreatePaymentResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
	return &res
}

func (s *PaymentTestSuite) TestCreatePayment() {
	reqBody := builder.NewPaymentBuilder().BuildCreateRequestDTO()

	s.Run("retry with the same key charges once", func() {
		key := uuid.NewString()

		first := s.pay(key, reqBody)
		second := s.pay(key, reqBody)

		s.True(first.Success)
		s.False(first.Replayed)
		s.True(second.Replayed)
		s.Equal(first.Payment.ID, second.Payment.ID)
		s.Equal(first.Payment.ChargeID, second.Payment.ChargeID)
		s.Equal(int32(1), s.Gateway.charges.Load())
		s.Equal(1, dbtest.CountPayments(s.T(), s.DB, "A1"))
		s.Equal("completed", dbtest.IdempotencyKeyStatus(s.T(), s.DB, key))
	})

	s.Run("distinct keys charge separately", func() {
		s.pay(uuid.NewString(), reqBody)
		s.pay(uuid.NewString(), reqBody)

		s.Equal(int32(2), s.Gateway.charges.Load())
		s.Equal(2, dbtest.CountPayments(s.T(), s.DB, "A1"))
	})

	s.Run("same key with another body conflicts", func() {
		key := uuid.NewString()
		s.pay(key, reqBody)

		changed := testutil.DtoMap(s.T(), reqBody, testutil.Field("amount", 250))
		rec := httptest.PerformRequest(s.T(), s.PaymentRouter, http.MethodPost, "/payment", changed,
			map[string]string{api.IdempotencyKeyHeader: key})

		httptest.AssertFailedResult(s.T(), rec, http.StatusConflict, "different request")
		s.Equal(int32(1), s.Gateway.charges.Load())
	})

	s.Run("declined charge frees the key for a retry", func() {
		key := uuid.NewString()
		s.Gateway.decline.Store(true)

		rec := httptest.PerformRequest(s.T(), s.PaymentRouter, http.MethodPost, "/payment", reqBody,
			map[string]string{api.IdempotencyKeyHeader: key})
		httptest.AssertFailedResult(s.T(), rec, http.StatusInternalServerError, "Payment failed")
		s.Equal(0, dbtest.CountPayments(s.T(), s.DB, "A1"))

		s.Gateway.decline.Store(false)
		res := s.pay(key, reqBody)
		s.False(res.Replayed)
		s.Equal(1, dbtest.CountPayments(s.T(), s.DB, "A1"))
	})

	s.Run("missing key is rejected before charging", func() {
		rec := httptest.PerformRequest(s.T(), s.PaymentRouter, http.MethodPost, "/payment", reqBody, nil)

		httptest.AssertFailedResult(s.T(), rec, http.StatusBadRequest, "Idempotency-Key")
		s.Equal(int32(0), s.Gateway.charges.Load())
	})
}

func (s *PaymentTestSuite) TestPaymentHistoryAndRefund() {
	s.Run("history lists recorded payments", func() {
		s.pay(uuid.NewString(), builder.NewPaymentBuilder().BuildCreateRequestDTO())
		s.pay(uuid.NewString(), builder.NewPaymentBuilder().With(func(b *builder.PaymentBuilder) { b.ParkingID = "B5" }).BuildCreateRequestDTO())

		rec := httptest.PerformRequest(s.T(), s.PaymentRouter, http.MethodGet, "/payment-history?parkingId=A1", nil, nil)

		var body resdto.PaymentHistoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.Require().Len(body.Payments, 1)
		s.Equal("A1", body.Payments[0].ParkingID)
		s.Equal(100.5, body.Payments[0].Amount)
		s.Equal("thb", body.Payments[0].Currency)
	})

	s.Run("refund passes the charge through", func() {
		paid := s.pay(uuid.NewString(), builder.NewPaymentBuilder().BuildCreateRequestDTO())

		rec := httptest.PerformRequest(s.T(), s.PaymentRouter, http.MethodPost, "/refund",
			map[string]any{"paymentIntentId": paid.Payment.ChargeID}, nil)

		var body resdto.RefundResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.Equal(int32(1), s.Gateway.refunds.Load())
	})
}
