//go:build unit || e2e

package builder

import (
	"time"

	"parking-monitor/internal/domain/parking"
	reqdto "parking-monitor/internal/handler/dto/request"
	"parking-monitor/internal/infra/dbquery"
	"parking-monitor/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type ParkingBuilder struct {
	ParkingID string
	Status    parking.Status
	Source    parking.Source
	Name      string
	CarNo     string
	Minutes   int
	Timestamp time.Time
}

func NewParkingBuilder() *ParkingBuilder {
	return &ParkingBuilder{
		ParkingID: "A1",
		Status:    parking.StatusOccupied,
		Source:    parking.SourceBooking,
		Name:      "Somchai",
		CarNo:     "1AB 1234",
		Minutes:   60,
		Timestamp: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
	}
}

func (b *ParkingBuilder) With(mutate func(*ParkingBuilder)) *ParkingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ParkingBuilder) BuildBookingDomain() (*parking.Booking, error) {
	space, err := parking.ParseSpaceID(b.ParkingID)
	if err != nil {
		return nil, err
	}
	return parking.NewBooking(space, b.Name, b.CarNo, b.Minutes)
}

func (b *ParkingBuilder) BuildEventDomain(id int64) *parking.StatusEvent {
	var occupant *parking.Occupant
	var minutes *int
	if b.Status == parking.StatusOccupied {
		occupant = &parking.Occupant{Name: b.Name, CarNo: b.CarNo}
		if b.Source == parking.SourceBooking {
			m := b.Minutes
			minutes = &m
		}
	}
	return parking.ReconstructStatusEvent(id, parking.SpaceID(b.ParkingID), b.Status, b.Source, b.Timestamp, occupant, nil, minutes)
}

func (b *ParkingBuilder) BuildInfra(id int64) dbquery.ParkingStatus {
	row := dbquery.ParkingStatus{
		ID:        id,
		ParkingID: b.ParkingID,
		Status:    b.Status.String(),
		Source:    b.Source.String(),
		Timestamp: pgtype.Timestamptz{Time: b.Timestamp, Valid: true},
	}
	if b.Status == parking.StatusOccupied {
		row.Name = pgtype.Text{String: b.Name, Valid: true}
		row.CarNo = pgtype.Text{String: b.CarNo, Valid: true}
		if b.Source == parking.SourceBooking {
			row.BookedMinutes = pgtype.Int4{Int32: int32(b.Minutes), Valid: true}
		}
	}
	return row
}

func (b *ParkingBuilder) BuildBookRequestDTO() reqdto.BookParkingRequest {
	minutes := b.Minutes
	return reqdto.BookParkingRequest{
		Name:         b.Name,
		CarNo:        b.CarNo,
		ParkingSpace: b.ParkingID,
		Time:         &minutes,
	}
}

func (b *ParkingBuilder) BuildReleaseRequestDTO() reqdto.ReleaseParkingRequest {
	return reqdto.ReleaseParkingRequest{ParkingSpace: b.ParkingID}
}

func (b *ParkingBuilder) BuildView(id int64) *queries.ParkingStatusView {
	v := &queries.ParkingStatusView{
		ID:        id,
		ParkingID: b.ParkingID,
		Status:    b.Status.String(),
		Source:    b.Source.String(),
		Timestamp: b.Timestamp,
	}
	if b.Status == parking.StatusOccupied {
		name, carNo := b.Name, b.CarNo
		v.Name = &name
		v.CarNo = &carNo
	}
	return v
}
