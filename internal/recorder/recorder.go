// Package recorder persists sensor readings consumed from the bus.
package recorder

import (
	"context"
	"errors"
	"log/slog"

	"parking-monitor/internal/infra/bus"
	"parking-monitor/internal/pkg/errs"
	"parking-monitor/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrDeliveriesClosed = errors.New("delivery channel closed")

type DeliverySource interface {
	Deliveries(ctx context.Context) (<-chan amqp.Delivery, error)
}

type StatusRecorder interface {
	RecordStatus(ctx context.Context, req commands.RecordStatusRequest) (*commands.RecordStatusResult, error)
}

type Recorder struct {
	source   DeliverySource
	commands StatusRecorder
	logger   *slog.Logger
}

func New(source DeliverySource, cmds StatusRecorder, logger *slog.Logger) *Recorder {
	return &Recorder{source: source, commands: cmds, logger: logger}
}

// Run consumes deliveries until ctx is cancelled or the broker closes the channel.
func (r *Recorder) Run(ctx context.Context) error {
	deliveries, err := r.source.Deliveries(ctx)
	if err != nil {
		return errs.Wrap(err, "start consuming")
	}

	r.logger.Info("recorder started")
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("recorder stopped")
			return nil
		case d, ok := <-deliveries:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return ErrDeliveriesClosed
			}
			r.Handle(ctx, d)
		}
	}
}

// Handle records one delivery and settles it. Bad payloads are dropped, store failures requeued.
func (r *Recorder) Handle(ctx context.Context, d amqp.Delivery) {
	logger := r.logger.With("routing_key", d.RoutingKey, "message_id", d.MessageId)
	ctx = bus.ExtractTrace(ctx, d.Headers)

	msg, err := bus.DecodeStatusMessage(d.Body)
	if err != nil {
		logger.Warn("dropping malformed status message", "error", err.Error())
		r.settle(logger, d.Nack(false, false))
		return
	}

	if topic, ok := d.Headers[bus.TopicHeader].(string); ok {
		if space, ok := bus.SpaceFromTopic(topic); ok && space.String() != msg.ParkingID {
			logger.Warn("dropping status message with mismatched topic", "topic", topic, "parking_id", msg.ParkingID)
			r.settle(logger, d.Nack(false, false))
			return
		}
	}

	req := commands.RecordStatusRequest{
		ParkingID: msg.ParkingID,
		Status:    msg.Status,
		Timestamp: msg.Timestamp,
		Name:      msg.Name,
		CarNo:     msg.CarNo,
	}
	if d.MessageId != "" {
		id := d.MessageId
		req.MsgID = &id
	}

	res, err := r.commands.RecordStatus(ctx, req)
	switch {
	case err == nil:
		if !res.Recorded {
			logger.Debug("status dropped, space held by booking", "parking_id", msg.ParkingID)
		}
		r.settle(logger, d.Ack(false))
	case errs.Is(err, errs.ErrInvalidStatusEvent):
		logger.Warn("dropping invalid status event", "parking_id", msg.ParkingID, "status", msg.Status)
		r.settle(logger, d.Nack(false, false))
	default:
		logger.Error("failed to record status", "parking_id", msg.ParkingID, "error", err.Error())
		r.settle(logger, d.Nack(false, true))
	}
}

func (r *Recorder) settle(logger *slog.Logger, err error) {
	if err != nil {
		logger.Error("failed to settle delivery", "error", err.Error())
	}
}
