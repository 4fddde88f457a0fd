package request

import "parking-monitor/internal/usecase/commands"

type CreatePaymentRequest struct {
	ParkingID       string  `json:"parkingId" binding:"required"`
	Amount          float64 `json:"amount" binding:"required,gt=0"`
	Currency        string  `json:"currency" binding:"required,len=3"`
	PaymentMethodID string  `json:"paymentMethodId" binding:"required"`
}

func (r *CreatePaymentRequest) ToCommand() commands.CreatePaymentRequest {
	return commands.CreatePaymentRequest{
		ParkingID:       r.ParkingID,
		Amount:          r.Amount,
		Currency:        r.Currency,
		PaymentMethodID: r.PaymentMethodID,
	}
}

type PaymentHistoryQuery struct {
	ParkingID string `form:"parkingId" binding:"required"`
}

type RefundRequest struct {
	PaymentIntentID string `json:"paymentIntentId" binding:"required"`
}

func (r *RefundRequest) ToCommand() commands.RefundRequest {
	return commands.RefundRequest{PaymentIntentID: r.PaymentIntentID}
}
