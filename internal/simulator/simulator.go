// Package simulator publishes random sensor readings for every space not held by a booking.
package simulator

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"parking-monitor/internal/domain/parking"
	"parking-monitor/internal/infra/bus"
	"parking-monitor/internal/pkg/clock"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type BookedSpaceReader interface {
	BookedSpaces(ctx context.Context) ([]parking.SpaceID, error)
}

type StatusPublisher interface {
	PublishStatus(ctx context.Context, msg bus.StatusMessage) error
}

// Coin decides whether a space reads Occupied on a tick.
type Coin func() bool

func FairCoin() bool {
	return rand.IntN(2) == 1
}

type TickResult struct {
	Published []parking.SpaceID
	Skipped   []parking.SpaceID
	Failed    []parking.SpaceID
}

type Simulator struct {
	booked    BookedSpaceReader
	publisher StatusPublisher
	clock     clock.Clock
	coin      Coin
	interval  time.Duration
	logger    *slog.Logger
	tracer    trace.Tracer
}

type Option func(*Simulator)

func WithCoin(c Coin) Option {
	return func(s *Simulator) { s.coin = c }
}

func New(booked BookedSpaceReader, publisher StatusPublisher, clk clock.Clock, interval time.Duration, logger *slog.Logger, opts ...Option) *Simulator {
	s := &Simulator{
		booked:    booked,
		publisher: publisher,
		clock:     clk,
		coin:      FairCoin,
		interval:  interval,
		logger:    logger,
		tracer:    otel.Tracer("parking-monitor/simulator"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run ticks until ctx is cancelled. A failed tick is logged and the loop carries on.
func (s *Simulator) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("simulator started", "interval", s.interval.String())
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("simulator stopped")
			return
		case <-ticker.C:
			res, err := s.Tick(ctx)
			if err != nil {
				s.logger.Error("simulator tick skipped", "error", err.Error())
				continue
			}
			s.logger.Debug("simulator tick",
				"published", len(res.Published),
				"booked", len(res.Skipped),
				"failed", len(res.Failed))
		}
	}
}

// Tick publishes one reading per space outside the booked set.
func (s *Simulator) Tick(ctx context.Context) (*TickResult, error) {
	ctx, span := s.tracer.Start(ctx, "simulator.tick")
	defer span.End()

	booked, err := s.booked.BookedSpaces(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "booked set query failed")
		return nil, err
	}
	held := make(map[parking.SpaceID]struct{}, len(booked))
	for _, id := range booked {
		held[id] = struct{}{}
	}

	res := &TickResult{}
	now := s.clock.Now()
	for _, space := range parking.AllSpaces() {
		if _, ok := held[space]; ok {
			res.Skipped = append(res.Skipped, space)
			continue
		}

		status := parking.StatusFree
		if s.coin() {
			status = parking.StatusOccupied
		}
		if err := s.publisher.PublishStatus(ctx, bus.NewStatusMessage(space, status, now)); err != nil {
			s.logger.Warn("failed to publish status", "parking_id", space.String(), "error", err.Error())
			res.Failed = append(res.Failed, space)
			continue
		}
		res.Published = append(res.Published, space)
	}

	span.SetAttributes(
		attribute.Int("simulator.published", len(res.Published)),
		attribute.Int("simulator.booked", len(res.Skipped)),
	)
	return res, nil
}
