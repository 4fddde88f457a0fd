//go:build unit

package recorder_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parking-monitor/internal/pkg/errs"
	"parking-monitor/internal/recorder"
	"parking-monitor/internal/usecase/commands"
)

type settlement struct {
	acked   bool
	nacked  bool
	requeue bool
}

type fakeAcknowledger struct {
	mu     sync.Mutex
	result settlement
}

func (a *fakeAcknowledger) Ack(uint64, bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.result.acked = true
	return nil
}

func (a *fakeAcknowledger) Nack(_ uint64, _ bool, requeue bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.result.nacked = true
	a.result.requeue = requeue
	return nil
}

func (a *fakeAcknowledger) Reject(_ uint64, requeue bool) error {
	return a.Nack(0, false, requeue)
}

func (a *fakeAcknowledger) get() settlement {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.result
}

type fakeRecorder struct {
	mu       sync.Mutex
	requests []commands.RecordStatusRequest
	result   *commands.RecordStatusResult
	err      error
}

func (f *fakeRecorder) RecordStatus(_ context.Context, req commands.RecordStatusRequest) (*commands.RecordStatusResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	return f.result, f.err
}

func (f *fakeRecorder) calls() []commands.RecordStatusRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]commands.RecordStatusRequest(nil), f.requests...)
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

const validBody = `{"parking_id":"A1","status":"Occupied","timestamp":"2024-03-01T12:00:00Z","name":"MockUser","carNo":"MockCar"}`

func delivery(body string, ack *fakeAcknowledger) amqp.Delivery {
	return amqp.Delivery{
		Acknowledger: ack,
		MessageId:    "msg-1",
		RoutingKey:   "parking_lot.A1",
		Headers:      amqp.Table{"topic": "/parking_lot/A1"},
		Body:         []byte(body),
	}
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		result     *commands.RecordStatusResult
		err        error
		wantCalled bool
		want       settlement
	}{
		{
			name:       "recorded event is acked",
			body:       validBody,
			result:     &commands.RecordStatusResult{EventID: 1, Recorded: true},
			wantCalled: true,
			want:       settlement{acked: true},
		},
		{
			name:       "event dropped for booking hold is acked",
			body:       validBody,
			result:     &commands.RecordStatusResult{Recorded: false},
			wantCalled: true,
			want:       settlement{acked: true},
		},
		{
			name: "malformed json is rejected",
			body: `{"parking_id":`,
			want: settlement{nacked: true},
		},
		{
			name: "topic and payload disagree",
			body: `{"parking_id":"B2","status":"Free","timestamp":"2024-03-01T12:00:00Z"}`,
			want: settlement{nacked: true},
		},
		{
			name:       "invalid event is rejected without requeue",
			body:       validBody,
			err:        errs.Mark(errors.New("bad status"), errs.ErrInvalidStatusEvent),
			wantCalled: true,
			want:       settlement{nacked: true},
		},
		{
			name:       "store failure is requeued",
			body:       validBody,
			err:        errs.Mark(errors.New("db down"), errs.ErrDatabaseOperationFailed),
			wantCalled: true,
			want:       settlement{nacked: true, requeue: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ack := &fakeAcknowledger{}
			cmds := &fakeRecorder{result: tt.result, err: tt.err}
			r := recorder.New(nil, cmds, discard)

			r.Handle(context.Background(), delivery(tt.body, ack))

			assert.Equal(t, tt.want, ack.get())
			if !tt.wantCalled {
				assert.Empty(t, cmds.calls())
				return
			}
			calls := cmds.calls()
			require.Len(t, calls, 1)
			assert.Equal(t, "A1", calls[0].ParkingID)
			assert.Equal(t, "Occupied", calls[0].Status)
			require.NotNil(t, calls[0].MsgID)
			assert.Equal(t, "msg-1", *calls[0].MsgID)
			assert.Equal(t, "MockUser", *calls[0].Name)
		})
	}
}

type fakeSource struct {
	ch  chan amqp.Delivery
	err error
}

func (f *fakeSource) Deliveries(context.Context) (<-chan amqp.Delivery, error) {
	return f.ch, f.err
}

func TestRun(t *testing.T) {
	t.Run("consumes until cancelled", func(t *testing.T) {
		src := &fakeSource{ch: make(chan amqp.Delivery, 1)}
		cmds := &fakeRecorder{result: &commands.RecordStatusResult{Recorded: true}}
		r := recorder.New(src, cmds, discard)

		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() { errCh <- r.Run(ctx) }()

		ack := &fakeAcknowledger{}
		src.ch <- delivery(validBody, ack)
		assert.Eventually(t, func() bool { return ack.get().acked }, time.Second, 5*time.Millisecond)

		cancel()
		select {
		case err := <-errCh:
			assert.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("recorder did not stop")
		}
	})

	t.Run("closed channel is an error", func(t *testing.T) {
		src := &fakeSource{ch: make(chan amqp.Delivery)}
		close(src.ch)
		r := recorder.New(src, &fakeRecorder{}, discard)

		err := r.Run(context.Background())
		assert.ErrorIs(t, err, recorder.ErrDeliveriesClosed)
	})

	t.Run("consume failure", func(t *testing.T) {
		src := &fakeSource{err: errors.New("channel not open")}
		r := recorder.New(src, &fakeRecorder{}, discard)

		assert.Error(t, r.Run(context.Background()))
	})
}
