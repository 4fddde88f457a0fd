package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"parking-monitor/internal/domain/parking"
	"parking-monitor/internal/infra"
	"parking-monitor/internal/pkg/clock"
	"parking-monitor/internal/pkg/errs"
	"parking-monitor/internal/usecase/shared"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "parking-monitor/usecase/commands"

type BookParkingRequest struct {
	Name         string
	CarNo        string
	ParkingSpace string
	Minutes      int
}

type ReleaseParkingRequest struct {
	ParkingSpace string
}

type RecordStatusRequest struct {
	ParkingID string
	Status    string
	Timestamp time.Time
	Name      *string
	CarNo     *string
	MsgID     *string
}

type BookParkingResult struct {
	EventID int64
	Message string
}

type ReleaseParkingResult struct {
	EventID int64
	Message string
}

type RecordStatusResult struct {
	EventID int64
	// Recorded is false when the event was dropped because the space is held by a booking.
	Recorded bool
}

type ParkingCommands interface {
	Book(ctx context.Context, req BookParkingRequest) (*BookParkingResult, error)
	Release(ctx context.Context, req ReleaseParkingRequest) (*ReleaseParkingResult, error)
	RecordStatus(ctx context.Context, req RecordStatusRequest) (*RecordStatusResult, error)
}

type parkingUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	tracer trace.Tracer
}

func NewParkingUseCase(uow shared.UnitOfWork, clk clock.Clock) ParkingCommands {
	return &parkingUseCaseImpl{
		uow:    uow,
		clock:  clk,
		tracer: otel.Tracer(tracerName),
	}
}

func (uc *parkingUseCaseImpl) Book(ctx context.Context, req BookParkingRequest) (*BookParkingResult, error) {
	ctx, span := uc.tracer.Start(ctx, "parking.book",
		trace.WithAttributes(attribute.String("parking.id", req.ParkingSpace)))
	defer span.End()

	space, err := parking.ParseSpaceID(req.ParkingSpace)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidParkingSpace)
	}
	booking, err := parking.NewBooking(space, req.Name, req.CarNo, req.Minutes)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var eventID int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		events := tx.ParkingEvents()
		if err := events.Lock(ctx, space); err != nil {
			return err
		}
		latest, err := events.Latest(ctx, space)
		if err != nil {
			return err
		}

		ev := parking.NewBookingEvent(booking, uc.clock.Now(), latest.MsgID())
		eventID, err = events.Append(ctx, ev)
		return err
	})
	if err != nil {
		return nil, uc.fail(span, err)
	}

	o := booking.Occupant()
	return &BookParkingResult{
		EventID: eventID,
		Message: fmt.Sprintf("Parking space %s has been booked for %d minutes by %s (Car: %s).",
			space, booking.Minutes(), o.Name, o.CarNo),
	}, nil
}

func (uc *parkingUseCaseImpl) Release(ctx context.Context, req ReleaseParkingRequest) (*ReleaseParkingResult, error) {
	ctx, span := uc.tracer.Start(ctx, "parking.release",
		trace.WithAttributes(attribute.String("parking.id", req.ParkingSpace)))
	defer span.End()

	space, err := parking.ParseSpaceID(req.ParkingSpace)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidParkingSpace)
	}

	var eventID int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		events := tx.ParkingEvents()
		if err := events.Lock(ctx, space); err != nil {
			return err
		}
		latest, err := events.Latest(ctx, space)
		if err != nil {
			return err
		}

		eventID, err = events.Append(ctx, parking.NewReleaseEvent(space, uc.clock.Now(), latest.MsgID()))
		return err
	})
	if err != nil {
		return nil, uc.fail(span, err)
	}

	return &ReleaseParkingResult{
		EventID: eventID,
		Message: fmt.Sprintf("Parking space %s has been released.", space),
	}, nil
}

func (uc *parkingUseCaseImpl) RecordStatus(ctx context.Context, req RecordStatusRequest) (*RecordStatusResult, error) {
	ctx, span := uc.tracer.Start(ctx, "parking.record",
		trace.WithAttributes(
			attribute.String("parking.id", req.ParkingID),
			attribute.String("parking.status", req.Status),
		))
	defer span.End()

	space, err := parking.ParseSpaceID(req.ParkingID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStatusEvent)
	}
	status, err := parking.ParseStatus(req.Status)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStatusEvent)
	}

	at := req.Timestamp
	if at.IsZero() {
		at = uc.clock.Now()
	}
	var occupant *parking.Occupant
	if req.Name != nil || req.CarNo != nil {
		occupant = &parking.Occupant{}
		if req.Name != nil {
			occupant.Name = *req.Name
		}
		if req.CarNo != nil {
			occupant.CarNo = *req.CarNo
		}
	}
	ev, err := parking.NewSensorEvent(space, status, at.UTC(), occupant, req.MsgID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStatusEvent)
	}

	result := &RecordStatusResult{}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		events := tx.ParkingEvents()
		if err := events.Lock(ctx, space); err != nil {
			return err
		}

		latest, err := events.Latest(ctx, space)
		switch {
		case err == nil && latest.IsBookingHold():
			// published before the booking committed
			return nil
		case err != nil && !infra.IsKind(err, infra.KindNotFound):
			return err
		}

		result.EventID, err = events.Append(ctx, ev)
		if err != nil {
			return err
		}
		result.Recorded = true
		return nil
	})
	if err != nil {
		return nil, uc.fail(span, err)
	}

	span.SetAttributes(attribute.Bool("parking.recorded", result.Recorded))
	return result, nil
}

// fail maps store errors: a space without history is an invalid space, anything else a store failure.
func (uc *parkingUseCaseImpl) fail(span trace.Span, err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrInvalidParkingSpace)
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	if errors.Is(err, context.Canceled) {
		return err
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
