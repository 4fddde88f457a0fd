//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"parking-monitor/internal/handler/api"
	resdto "parking-monitor/internal/handler/dto/response"
	"parking-monitor/internal/pkg/errs"
	"parking-monitor/internal/usecase/commands"
	"parking-monitor/internal/usecase/queries"
	"parking-monitor/tests/common/builder"
	"parking-monitor/tests/common/httptest"
	"parking-monitor/tests/common/testutil"
	commandsmock "parking-monitor/tests/mock/commands"
	queriesmock "parking-monitor/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
	mockQueries  *queriesmock.MockPaymentQueries
	handler      *api.PaymentHandler
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPaymentQueries(s.mockCtrl)
	s.handler = api.NewPaymentHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/payment", s.handler.CreatePayment)
	s.router.GET("/payment-history", s.handler.PaymentHistory)
	s.router.POST("/refund", s.handler.Refund)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

// ================================================================================
// TestCreatePayment
// ================================================================================

func (s *PaymentHandlerTestSuite) TestCreatePayment() {
	url := "/payment"
	key := builder.NewPaymentBuilder().IdempotencyKey
	headers := map[string]string{api.IdempotencyKeyHeader: key.String()}
	reqBody := builder.NewPaymentBuilder().BuildCreateRequestDTO()

	stored, err := builder.NewPaymentBuilder().BuildDomain()
	s.Require().NoError(err)

	s.Run("success: returns the charge and the recorded payment", func() {
		intent := map[string]any{"object": "charge", "id": "chrg_test_5abc"}
		s.mockCommands.EXPECT().CreatePayment(gomock.Any(), commands.CreatePaymentRequest{
			ParkingID:       "A1",
			Amount:          100.5,
			Currency:        "thb",
			PaymentMethodID: "tokn_test_5xyz",
		}, key).Return(&commands.CreatePaymentResult{Payment: stored, Intent: intent}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, headers)

		var body resdto.CreatePaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.False(body.Replayed)
		s.Equal("Payment successful and recorded.", body.Message)
		s.Equal(stored.ID().String(), body.Payment.ID)
		s.Equal(100.5, body.Payment.Amount)
		s.Equal(intent, body.PaymentIntent)
		s.Empty(rec.Header().Get("Idempotent-Replayed"))
	})

	s.Run("success: replay is flagged in a header", func() {
		s.mockCommands.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), key).
			Return(&commands.CreatePaymentResult{Payment: stored, Intent: map[string]any{}, Replayed: true}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, headers)

		var body resdto.CreatePaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Replayed)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Idempotent-Replayed": "true"})
	})

	s.Run("error: 400 without Idempotency-Key", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)

		httptest.AssertFailedResult(s.T(), rec, http.StatusBadRequest, "Idempotency-Key header is required")
	})

	s.Run("error: 400 for a malformed Idempotency-Key", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{api.IdempotencyKeyHeader: "order-42"})

		httptest.AssertFailedResult(s.T(), rec, http.StatusBadRequest, "Idempotency-Key must be a UUID")
	})

	validation := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{name: "missing parkingId", mutate: testutil.Field("parkingId", nil)},
		{name: "missing amount", mutate: testutil.Field("amount", nil)},
		{name: "zero amount", mutate: testutil.Field("amount", 0)},
		{name: "negative amount", mutate: testutil.Field("amount", -10)},
		{name: "long currency", mutate: testutil.Field("currency", "baht")},
		{name: "missing paymentMethodId", mutate: testutil.Field("paymentMethodId", nil)},
	}
	for _, tc := range validation {
		s.Run("error: 400 for "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
				testutil.DtoMap(s.T(), reqBody, tc.mutate), headers)

			httptest.AssertFailedResult(s.T(), rec, http.StatusBadRequest, "Invalid request format")
		})
	}

	failures := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{
			name:       "domain validation",
			err:        errs.Mark(errs.New("amount must be greater than zero"), errs.ErrDomainValidation),
			expectCode: http.StatusBadRequest,
			expectMsg:  "Invalid request format",
		},
		{
			name:       "key reused with another body",
			err:        errs.ErrIdempotencyKeyReused,
			expectCode: http.StatusConflict,
			expectMsg:  "already used with a different request",
		},
		{
			name:       "key in progress",
			err:        errs.ErrIdempotencyInProgress,
			expectCode: http.StatusConflict,
			expectMsg:  "still in progress",
		},
		{
			name:       "gateway failure",
			err:        errs.Mark(errs.New("invalid_card"), errs.ErrPaymentFailed),
			expectCode: http.StatusInternalServerError,
			expectMsg:  "Payment failed",
		},
	}
	for _, tc := range failures {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), key).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, headers)

			httptest.AssertFailedResult(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}
}

// ================================================================================
// TestPaymentHistory
// ================================================================================

func (s *PaymentHandlerTestSuite) TestPaymentHistory() {
	s.Run("success: lists payments", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().ListByParkingID(gomock.Any(), "A1").
			Return([]*queries.PaymentView{builder.NewPaymentBuilder().BuildView(id)}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payment-history?parkingId=A1", nil, nil)

		var body resdto.PaymentHistoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.Require().Len(body.Payments, 1)
		s.Equal(id.String(), body.Payments[0].ID)
		s.Equal("chrg_test_5abc", body.Payments[0].ChargeID)
	})

	s.Run("success: empty list", func() {
		s.mockQueries.EXPECT().ListByParkingID(gomock.Any(), "B1").Return([]*queries.PaymentView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payment-history?parkingId=B1", nil, nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"success":true,"payments":[]}`, rec.Body.String())
	})

	s.Run("error: 400 without parkingId", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payment-history", nil, nil)

		httptest.AssertFailedResult(s.T(), rec, http.StatusBadRequest, "parkingId is required")
	})

	s.Run("error: 500 when the store fails", func() {
		s.mockQueries.EXPECT().ListByParkingID(gomock.Any(), "A1").Return(nil, errs.New("timeout"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payment-history?parkingId=A1", nil, nil)

		httptest.AssertFailedResult(s.T(), rec, http.StatusInternalServerError, "Failed to fetch payment history")
	})
}

// ================================================================================
// TestRefund
// ================================================================================

func (s *PaymentHandlerTestSuite) TestRefund() {
	s.Run("success: returns the refund", func() {
		s.mockCommands.EXPECT().Refund(gomock.Any(), commands.RefundRequest{PaymentIntentID: "chrg_test_5abc"}).
			Return(&commands.RefundResult{RefundID: "rfnd_test_1", Refund: map[string]any{"id": "rfnd_test_1"}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/refund",
			map[string]any{"paymentIntentId": "chrg_test_5abc"}, nil)

		var body resdto.RefundResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.Equal(map[string]any{"id": "rfnd_test_1"}, body.Refund)
	})

	s.Run("error: 400 without paymentIntentId", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/refund", map[string]any{}, nil)

		httptest.AssertFailedResult(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 500 when the gateway fails", func() {
		s.mockCommands.EXPECT().Refund(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("not_found"), errs.ErrRefundFailed))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/refund",
			map[string]any{"paymentIntentId": "chrg_missing"}, nil)

		httptest.AssertFailedResult(s.T(), rec, http.StatusInternalServerError, "Refund failed")
	})
}
