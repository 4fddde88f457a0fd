package response

import (
	"time"

	"parking-monitor/internal/domain/payment"
	"parking-monitor/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PaymentResponse struct {
	ID        string    `json:"id"`
	ParkingID string    `json:"parkingId"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	ChargeID  string    `json:"chargeId"`
	Timestamp time.Time `json:"timestamp"`
}

type CreatePaymentResponse struct {
	Success       bool            `json:"success"`
	PaymentIntent any             `json:"paymentIntent"`
	Message       string          `json:"message"`
	Payment       PaymentResponse `json:"payment"`
	Replayed      bool            `json:"replayed"`
}

type PaymentHistoryResponse struct {
	Success  bool              `json:"success"`
	Payments []PaymentResponse `json:"payments"`
}

type RefundResponse struct {
	Success bool `json:"success"`
	Refund  any  `json:"refund"`
}

var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src interface{}) (interface{}, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
	},
}

func FromPaymentViews(views []*queries.PaymentView) ([]PaymentResponse, error) {
	out := make([]PaymentResponse, 0, len(views))
	if err := copier.CopyWithOption(&out, views, copyOption); err != nil {
		return nil, err
	}
	if out == nil {
		out = []PaymentResponse{}
	}
	return out, nil
}

func FromPayment(p *payment.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID().String(),
		ParkingID: p.ParkingID(),
		Amount:    p.Amount(),
		Currency:  p.Currency(),
		Status:    p.Status(),
		ChargeID:  p.ChargeID(),
		Timestamp: p.Timestamp(),
	}
}
