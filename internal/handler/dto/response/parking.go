package response

import (
	"time"

	"parking-monitor/internal/usecase/queries"
)

type ParkingStatusResponse struct {
	ParkingID     string    `json:"parking_id"`
	Status        string    `json:"status"`
	Source        string    `json:"source"`
	Timestamp     time.Time `json:"timestamp"`
	Name          *string   `json:"name"`
	CarNo         *string   `json:"carNo"`
	MsgID         *string   `json:"_msgid,omitempty"`
	BookedMinutes *int32    `json:"bookedMinutes,omitempty"`
}

type StatusListResponse struct {
	Statuses []ParkingStatusResponse `json:"statuses"`
}

type HistoryResponse struct {
	ParkingID string                  `json:"parking_id"`
	History   []ParkingStatusResponse `json:"history"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func FromParkingStatusView(v *queries.ParkingStatusView) ParkingStatusResponse {
	return ParkingStatusResponse{
		ParkingID:     v.ParkingID,
		Status:        v.Status,
		Source:        v.Source,
		Timestamp:     v.Timestamp,
		Name:          v.Name,
		CarNo:         v.CarNo,
		MsgID:         v.MsgID,
		BookedMinutes: v.BookedMinutes,
	}
}

func FromParkingStatusViews(views []*queries.ParkingStatusView) []ParkingStatusResponse {
	out := make([]ParkingStatusResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromParkingStatusView(v))
	}
	return out
}
