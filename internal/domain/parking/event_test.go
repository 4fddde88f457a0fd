//go:build unit

package parking_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parking-monitor/internal/domain/parking"
)

type eventSnapshot struct {
	Space         parking.SpaceID
	Status        parking.Status
	Source        parking.Source
	Timestamp     time.Time
	Occupant      *parking.Occupant
	MsgID         *string
	BookedMinutes *int
}

func snapshot(e *parking.StatusEvent) eventSnapshot {
	return eventSnapshot{
		Space:         e.Space(),
		Status:        e.Status(),
		Source:        e.Source(),
		Timestamp:     e.Timestamp(),
		Occupant:      e.Occupant(),
		MsgID:         e.MsgID(),
		BookedMinutes: e.BookedMinutes(),
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestNewBooking(t *testing.T) {
	tests := []struct {
		name    string
		bName   string
		carNo   string
		minutes int
		wantErr error
	}{
		{name: "valid", bName: "Alice", carNo: "XYZ123", minutes: 30},
		{name: "zero minutes", bName: "Alice", carNo: "XYZ123", minutes: 0},
		{name: "missing name", bName: " ", carNo: "XYZ123", minutes: 30, wantErr: parking.ErrMissingOccupant},
		{name: "missing car", bName: "Alice", carNo: "", minutes: 30, wantErr: parking.ErrMissingOccupant},
		{name: "negative minutes", bName: "Alice", carNo: "XYZ123", minutes: -1, wantErr: parking.ErrInvalidDuration},
		{name: "one week", bName: "Alice", carNo: "XYZ123", minutes: parking.MaxBookingMinutes},
		{name: "beyond one week", bName: "Alice", carNo: "XYZ123", minutes: parking.MaxBookingMinutes + 1, wantErr: parking.ErrInvalidDuration},
		{name: "wraps int32", bName: "Alice", carNo: "XYZ123", minutes: 4294967326, wantErr: parking.ErrInvalidDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := parking.NewBooking("A1", tt.bName, tt.carNo, tt.minutes)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, b)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, parking.SpaceID("A1"), b.Space())
			assert.Equal(t, tt.minutes, b.Minutes())
		})
	}
}

func TestNewOccupant_KeepsSubmittedValues(t *testing.T) {
	o, err := parking.NewOccupant(" Alice ", "XYZ 123 ")

	require.NoError(t, err)
	assert.Equal(t, parking.Occupant{Name: " Alice ", CarNo: "XYZ 123 "}, o)
}

func TestNewBookingEvent(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	b, err := parking.NewBooking("B2", "Alice", "XYZ123", 30)
	require.NoError(t, err)

	ev := parking.NewBookingEvent(b, now, strPtr("msg-1"))

	want := eventSnapshot{
		Space:         "B2",
		Status:        parking.StatusOccupied,
		Source:        parking.SourceBooking,
		Timestamp:     now,
		Occupant:      &parking.Occupant{Name: "Alice", CarNo: "XYZ123"},
		MsgID:         strPtr("msg-1"),
		BookedMinutes: intPtr(30),
	}
	if diff := cmp.Diff(want, snapshot(ev)); diff != "" {
		t.Errorf("booking event mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, ev.IsBookingHold())
}

func TestNewSensorEvent(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	mock := parking.MockOccupant()

	t.Run("occupied keeps occupant", func(t *testing.T) {
		ev, err := parking.NewSensorEvent("A1", parking.StatusOccupied, now, &mock, nil)
		require.NoError(t, err)

		want := eventSnapshot{
			Space:     "A1",
			Status:    parking.StatusOccupied,
			Source:    parking.SourceSensor,
			Timestamp: now,
			Occupant:  &parking.Occupant{Name: "MockUser", CarNo: "MockCar"},
		}
		if diff := cmp.Diff(want, snapshot(ev)); diff != "" {
			t.Errorf("sensor event mismatch (-want +got):\n%s", diff)
		}
		assert.False(t, ev.IsBookingHold())
	})

	t.Run("free drops occupant", func(t *testing.T) {
		ev, err := parking.NewSensorEvent("A1", parking.StatusFree, now, &mock, strPtr("m"))
		require.NoError(t, err)
		assert.Nil(t, ev.Occupant())
		assert.Equal(t, "m", *ev.MsgID())
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := parking.NewSensorEvent("A1", parking.Status("Booked"), now, nil, nil)
		assert.ErrorIs(t, err, parking.ErrInvalidStatus)
	})
}

func TestNewReleaseEvent(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	ev := parking.NewReleaseEvent("C3", now, nil)

	assert.Equal(t, parking.StatusFree, ev.Status())
	assert.Equal(t, parking.SourceBooking, ev.Source())
	assert.Nil(t, ev.Occupant())
	assert.False(t, ev.IsBookingHold())
}
