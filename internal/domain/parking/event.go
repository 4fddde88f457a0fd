package parking

import (
	"errors"
	"strings"
	"time"
)

// MaxBookingMinutes caps the displayed booking length at one week.
const MaxBookingMinutes = 7 * 24 * 60

var (
	ErrMissingOccupant = errors.New("name and carNo are required")
	ErrInvalidDuration = errors.New("booking time must be between 0 and 10080 minutes")
)

const (
	MockOccupantName  = "MockUser"
	MockOccupantCarNo = "MockCar"
)

type Occupant struct {
	Name  string
	CarNo string
}

// NewOccupant keeps the values as submitted; blank ones are rejected.
func NewOccupant(name, carNo string) (Occupant, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(carNo) == "" {
		return Occupant{}, ErrMissingOccupant
	}
	return Occupant{Name: name, CarNo: carNo}, nil
}

func MockOccupant() Occupant {
	return Occupant{Name: MockOccupantName, CarNo: MockOccupantCarNo}
}

// Booking is a validated request to hold a space. Minutes is display-only and never expires the hold.
type Booking struct {
	space    SpaceID
	occupant Occupant
	minutes  int
}

func NewBooking(space SpaceID, name, carNo string, minutes int) (*Booking, error) {
	occupant, err := NewOccupant(name, carNo)
	if err != nil {
		return nil, err
	}
	if minutes < 0 || minutes > MaxBookingMinutes {
		return nil, ErrInvalidDuration
	}
	return &Booking{space: space, occupant: occupant, minutes: minutes}, nil
}

func (b *Booking) Space() SpaceID     { return b.space }
func (b *Booking) Occupant() Occupant { return b.occupant }
func (b *Booking) Minutes() int       { return b.minutes }

// StatusEvent is one append-only record of a space's state.
type StatusEvent struct {
	id            int64
	space         SpaceID
	status        Status
	source        Source
	timestamp     time.Time
	occupant      *Occupant
	msgID         *string
	bookedMinutes *int
}

// NewSensorEvent builds an event reported by a sensor. The occupant is dropped for Free events.
func NewSensorEvent(space SpaceID, status Status, at time.Time, occupant *Occupant, msgID *string) (*StatusEvent, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	ev := &StatusEvent{
		space:     space,
		status:    status,
		source:    SourceSensor,
		timestamp: at,
		msgID:     msgID,
	}
	if status == StatusOccupied && occupant != nil {
		o := *occupant
		ev.occupant = &o
	}
	return ev, nil
}

// NewBookingEvent occupies the booked space. msgID is carried forward from the previous record.
func NewBookingEvent(b *Booking, at time.Time, msgID *string) *StatusEvent {
	occupant := b.occupant
	minutes := b.minutes
	return &StatusEvent{
		space:         b.space,
		status:        StatusOccupied,
		source:        SourceBooking,
		timestamp:     at,
		occupant:      &occupant,
		msgID:         msgID,
		bookedMinutes: &minutes,
	}
}

// NewReleaseEvent frees a space held by a booking.
func NewReleaseEvent(space SpaceID, at time.Time, msgID *string) *StatusEvent {
	return &StatusEvent{
		space:     space,
		status:    StatusFree,
		source:    SourceBooking,
		timestamp: at,
		msgID:     msgID,
	}
}

// ReconstructStatusEvent rebuilds a persisted event without validation.
func ReconstructStatusEvent(
	id int64,
	space SpaceID,
	status Status,
	source Source,
	timestamp time.Time,
	occupant *Occupant,
	msgID *string,
	bookedMinutes *int,
) *StatusEvent {
	return &StatusEvent{
		id:            id,
		space:         space,
		status:        status,
		source:        source,
		timestamp:     timestamp,
		occupant:      occupant,
		msgID:         msgID,
		bookedMinutes: bookedMinutes,
	}
}

func (e *StatusEvent) ID() int64            { return e.id }
func (e *StatusEvent) Space() SpaceID       { return e.space }
func (e *StatusEvent) Status() Status       { return e.status }
func (e *StatusEvent) Source() Source       { return e.source }
func (e *StatusEvent) Timestamp() time.Time { return e.timestamp }
func (e *StatusEvent) Occupant() *Occupant  { return e.occupant }
func (e *StatusEvent) MsgID() *string       { return e.msgID }
func (e *StatusEvent) BookedMinutes() *int  { return e.bookedMinutes }

// IsBookingHold reports whether the event keeps the space out of the simulator's rotation.
func (e *StatusEvent) IsBookingHold() bool {
	return e.status == StatusOccupied && e.source == SourceBooking
}
