package api

import (
	"net/http"

	reqdto "parking-monitor/internal/handler/dto/request"
	resdto "parking-monitor/internal/handler/dto/response"
	"parking-monitor/internal/handler/httperr"
	"parking-monitor/internal/pkg/errs"
	"parking-monitor/internal/usecase/commands"
	"parking-monitor/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	IdempotencyKeyHeader = "Idempotency-Key"
	replayedHeader       = "Idempotent-Replayed"
)

type PaymentHandler struct {
	cmds commands.PaymentCommands
	q    queries.PaymentQueries
}

func NewPaymentHandler(cmds commands.PaymentCommands, q queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, q: q}
}

// @Summary Create payment
// @Description Charges the payment method once per Idempotency-Key and records the payment
// @Tags payments
// @Accept json
// @Produce json
// @Param Idempotency-Key header string true "Client generated UUID"
// @Param request body reqdto.CreatePaymentRequest true "Payment request"
// @Success 200 {object} resdto.CreatePaymentResponse
// @Failure 400 {object} httperr.ResultResponse
// @Failure 409 {object} httperr.ResultResponse
// @Failure 500 {object} httperr.ResultResponse
// @Router /payment [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	rawKey := c.GetHeader(IdempotencyKeyHeader)
	if rawKey == "" {
		httperr.AbortWithResult(c, http.StatusBadRequest, errs.ErrIdempotencyKeyRequired, "Idempotency-Key header is required")
		return
	}
	key, err := uuid.Parse(rawKey)
	if err != nil {
		httperr.AbortWithResult(c, http.StatusBadRequest, err, "Idempotency-Key must be a UUID")
		return
	}

	var req reqdto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithResult(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	result, err := h.cmds.CreatePayment(c.Request.Context(), req.ToCommand(), key)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithResult(c, http.StatusBadRequest, err, "Invalid request format")
		case errs.Is(err, errs.ErrIdempotencyKeyReused):
			httperr.AbortWithResult(c, http.StatusConflict, err, "Idempotency-Key was already used with a different request")
		case errs.Is(err, errs.ErrIdempotencyInProgress):
			httperr.AbortWithResult(c, http.StatusConflict, err, "A payment with this Idempotency-Key is still in progress")
		default:
			httperr.AbortWithResult(c, http.StatusInternalServerError, err, "Payment failed")
		}
		return
	}

	if result.Replayed {
		c.Header(replayedHeader, "true")
	}
	c.JSON(http.StatusOK, resdto.CreatePaymentResponse{
		Success:       true,
		PaymentIntent: result.Intent,
		Message:       "Payment successful and recorded.",
		Payment:       resdto.FromPayment(result.Payment),
		Replayed:      result.Replayed,
	})
}

// @Summary Payment history
// @Description Payments recorded for a parking id, newest first
// @Tags payments
// @Produce json
// @Param parkingId query string true "Parking id"
// @Success 200 {object} resdto.PaymentHistoryResponse
// @Failure 400 {object} httperr.ResultResponse
// @Failure 500 {object} httperr.ResultResponse
// @Router /payment-history [get]
func (h *PaymentHandler) PaymentHistory(c *gin.Context) {
	var query reqdto.PaymentHistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithResult(c, http.StatusBadRequest, err, "parkingId is required")
		return
	}

	views, err := h.q.ListByParkingID(c.Request.Context(), query.ParkingID)
	if err != nil {
		httperr.AbortWithResult(c, http.StatusInternalServerError, err, "Failed to fetch payment history")
		return
	}
	payments, err := resdto.FromPaymentViews(views)
	if err != nil {
		httperr.AbortWithResult(c, http.StatusInternalServerError, err, "Failed to fetch payment history")
		return
	}

	c.JSON(http.StatusOK, resdto.PaymentHistoryResponse{Success: true, Payments: payments})
}

// @Summary Refund payment
// @Description Refunds the full amount of a gateway charge
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.RefundRequest true "Refund request"
// @Success 200 {object} resdto.RefundResponse
// @Failure 400 {object} httperr.ResultResponse
// @Failure 500 {object} httperr.ResultResponse
// @Router /refund [post]
func (h *PaymentHandler) Refund(c *gin.Context) {
	var req reqdto.RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithResult(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	result, err := h.cmds.Refund(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithResult(c, http.StatusInternalServerError, err, "Refund failed")
		return
	}

	c.JSON(http.StatusOK, resdto.RefundResponse{Success: true, Refund: result.Refund})
}
