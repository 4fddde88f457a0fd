package parking

import "errors"

var (
	ErrInvalidStatus = errors.New("invalid parking status")
	ErrInvalidSource = errors.New("invalid event source")
)

// Status is the single vocabulary shared by every writer of status events.
type Status string

const (
	StatusFree     Status = "Free"
	StatusOccupied Status = "Occupied"
)

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusFree, StatusOccupied:
		return true
	default:
		return false
	}
}

// Source records which writer produced an event.
type Source string

const (
	SourceSensor  Source = "sensor"
	SourceBooking Source = "booking"
)

func ParseSource(s string) (Source, error) {
	src := Source(s)
	if !src.IsValid() {
		return "", ErrInvalidSource
	}
	return src, nil
}

func (s Source) String() string {
	return string(s)
}

func (s Source) IsValid() bool {
	switch s {
	case SourceSensor, SourceBooking:
		return true
	default:
		return false
	}
}
