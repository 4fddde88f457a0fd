package bus

import (
	"encoding/json"
	"time"

	"parking-monitor/internal/domain/parking"
)

// StatusMessage is the JSON payload a sensor publishes.
type StatusMessage struct {
	ParkingID string    `json:"parking_id"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Name      *string   `json:"name"`
	CarNo     *string   `json:"carNo"`
}

// NewStatusMessage builds a mock reading. Occupied readings carry the mock occupant, Free ones carry nulls.
func NewStatusMessage(space parking.SpaceID, status parking.Status, at time.Time) StatusMessage {
	msg := StatusMessage{
		ParkingID: space.String(),
		Status:    status.String(),
		Timestamp: at,
	}
	if status == parking.StatusOccupied {
		o := parking.MockOccupant()
		msg.Name = &o.Name
		msg.CarNo = &o.CarNo
	}
	return msg
}

func (m StatusMessage) Topic() string {
	return parking.SpaceID(m.ParkingID).Topic()
}

func DecodeStatusMessage(body []byte) (StatusMessage, error) {
	var msg StatusMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return StatusMessage{}, err
	}
	return msg, nil
}
