//go:build unit

package simulator_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parking-monitor/internal/domain/parking"
	"parking-monitor/internal/infra/bus"
	"parking-monitor/internal/pkg/clock"
	"parking-monitor/internal/simulator"
)

type fakeBooked struct {
	mu     sync.Mutex
	spaces []parking.SpaceID
	err    error
}

func (f *fakeBooked) BookedSpaces(context.Context) ([]parking.SpaceID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.spaces, f.err
}

func (f *fakeBooked) set(spaces []parking.SpaceID, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.spaces, f.err = spaces, err
}

type fakePublisher struct {
	mu       sync.Mutex
	messages []bus.StatusMessage
	failFor  map[string]bool
}

func (f *fakePublisher) PublishStatus(_ context.Context, msg bus.StatusMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFor[msg.ParkingID] {
		return errors.New("channel closed")
	}
	f.messages = append(f.messages, msg)
	return nil
}

func (f *fakePublisher) published() []bus.StatusMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]bus.StatusMessage(nil), f.messages...)
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func newSimulator(booked *fakeBooked, pub *fakePublisher, coin simulator.Coin) *simulator.Simulator {
	clk := clock.NewMockClock(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	return simulator.New(booked, pub, clk, 10*time.Millisecond, discard, simulator.WithCoin(coin))
}

func TestTick_SkipsBookedSpaces(t *testing.T) {
	booked := &fakeBooked{spaces: []parking.SpaceID{"A1", "C3"}}
	pub := &fakePublisher{}
	sim := newSimulator(booked, pub, func() bool { return false })

	res, err := sim.Tick(context.Background())

	require.NoError(t, err)
	assert.ElementsMatch(t, []parking.SpaceID{"A1", "C3"}, res.Skipped)
	assert.Len(t, res.Published, parking.TotalSpaces-2)

	msgs := pub.published()
	require.Len(t, msgs, parking.TotalSpaces-2)
	for _, m := range msgs {
		assert.NotEqual(t, "A1", m.ParkingID)
		assert.NotEqual(t, "C3", m.ParkingID)
		assert.Equal(t, "Free", m.Status)
		assert.Nil(t, m.Name)
		assert.Nil(t, m.CarNo)
	}
}

func TestTick_OccupiedCarriesMockOccupant(t *testing.T) {
	pub := &fakePublisher{}
	sim := newSimulator(&fakeBooked{}, pub, func() bool { return true })

	_, err := sim.Tick(context.Background())
	require.NoError(t, err)

	msgs := pub.published()
	require.Len(t, msgs, parking.TotalSpaces)
	for _, m := range msgs {
		assert.Equal(t, "Occupied", m.Status)
		require.NotNil(t, m.Name)
		assert.Equal(t, "MockUser", *m.Name)
		assert.Equal(t, "MockCar", *m.CarNo)
		assert.Equal(t, "/parking_lot/"+m.ParkingID, m.Topic())
	}
}

func TestTick_BookedQueryFailurePublishesNothing(t *testing.T) {
	pub := &fakePublisher{}
	sim := newSimulator(&fakeBooked{err: errors.New("db down")}, pub, func() bool { return true })

	res, err := sim.Tick(context.Background())

	assert.Error(t, err)
	assert.Nil(t, res)
	assert.Empty(t, pub.published())
}

func TestTick_PublishFailureDoesNotStopTick(t *testing.T) {
	pub := &fakePublisher{failFor: map[string]bool{"B2": true}}
	sim := newSimulator(&fakeBooked{}, pub, func() bool { return false })

	res, err := sim.Tick(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []parking.SpaceID{"B2"}, res.Failed)
	assert.Len(t, res.Published, parking.TotalSpaces-1)
}

func TestRun_RecoversAfterFailedTickAndStopsOnCancel(t *testing.T) {
	booked := &fakeBooked{err: errors.New("db down")}
	pub := &fakePublisher{}
	sim := newSimulator(booked, pub, func() bool { return false })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sim.Run(ctx)
		close(done)
	}()

	time.Sleep(35 * time.Millisecond)
	assert.Empty(t, pub.published())

	booked.set(nil, nil)
	assert.Eventually(t, func() bool {
		return len(pub.published()) >= parking.TotalSpaces
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("simulator did not stop after cancel")
	}
}
