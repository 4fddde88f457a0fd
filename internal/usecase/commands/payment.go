package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"parking-monitor/internal/domain/payment"
	"parking-monitor/internal/infra"
	"parking-monitor/internal/pkg/clock"
	"parking-monitor/internal/pkg/errs"
	"parking-monitor/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// processingLease bounds how long a crashed request can block its key.
const processingLease = 5 * time.Minute

var errChargeDeclined = errs.New("charge declined by gateway")

type CreatePaymentRequest struct {
	ParkingID       string
	Amount          float64
	Currency        string
	PaymentMethodID string
}

type RefundRequest struct {
	PaymentIntentID string
}

type CreatePaymentResult struct {
	Payment *payment.Payment
	// Intent is the gateway payload of the charge, or a summary of the stored record on replay.
	Intent   any
	Replayed bool
}

type RefundResult struct {
	RefundID string
	Refund   any
}

type PaymentCommands interface {
	CreatePayment(ctx context.Context, req CreatePaymentRequest, idempotencyKey uuid.UUID) (*CreatePaymentResult, error)
	Refund(ctx context.Context, req RefundRequest) (*RefundResult, error)
}

type paymentUseCaseImpl struct {
	uow     shared.UnitOfWork
	gateway shared.PaymentGateway
	clock   clock.Clock
	logger  *slog.Logger
	tracer  trace.Tracer
}

func NewPaymentUseCase(uow shared.UnitOfWork, gateway shared.PaymentGateway, clk clock.Clock, logger *slog.Logger) PaymentCommands {
	return &paymentUseCaseImpl{
		uow:     uow,
		gateway: gateway,
		clock:   clk,
		logger:  logger,
		tracer:  otel.Tracer(tracerName),
	}
}

func (uc *paymentUseCaseImpl) CreatePayment(ctx context.Context, req CreatePaymentRequest, idempotencyKey uuid.UUID) (*CreatePaymentResult, error) {
	ctx, span := uc.tracer.Start(ctx, "payment.create",
		trace.WithAttributes(
			attribute.String("parking.id", req.ParkingID),
			attribute.String("idempotency.key", idempotencyKey.String()),
		))
	defer span.End()

	if idempotencyKey == uuid.Nil {
		return nil, errs.ErrIdempotencyKeyRequired
	}
	charge, err := payment.NewChargeRequest(req.ParkingID, req.Amount, req.Currency, req.PaymentMethodID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	hash := charge.Fingerprint()

	replay, err := uc.reserveKey(ctx, idempotencyKey, hash)
	if err != nil {
		return nil, err
	}
	if replay != nil {
		span.SetAttributes(attribute.Bool("payment.replayed", true))
		return replay, nil
	}

	gc, err := uc.charge(ctx, charge, idempotencyKey)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "charge failed")
		uc.logger.ErrorContext(ctx, "payment charge failed",
			"parking_id", req.ParkingID,
			"idempotency_key", idempotencyKey.String(),
			"error", err.Error())
		if errs.Is(err, errs.ErrGatewayTimeout) {
			// the charge may have been captured; the key stays processing until the lease expires
			return nil, errs.Mark(err, errs.ErrPaymentFailed)
		}
		if derr := uc.uow.Direct().Idempotency().Delete(ctx, idempotencyKey); derr != nil {
			uc.logger.WarnContext(ctx, "failed to release idempotency key", "error", derr.Error())
		}
		return nil, errs.Mark(err, errs.ErrPaymentFailed)
	}

	p := payment.NewPayment(charge, gc.ID, gc.Status, idempotencyKey, uc.clock.Now())
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Payments().Create(ctx, p); err != nil {
			return err
		}
		return tx.Idempotency().Complete(ctx, idempotencyKey, p.ID())
	})
	if err != nil {
		// the key stays processing so a retry cannot charge twice
		span.RecordError(err)
		span.SetStatus(codes.Error, "ledger write failed")
		uc.logger.ErrorContext(ctx, "charge captured but payment record not stored",
			"charge_id", gc.ID,
			"idempotency_key", idempotencyKey.String(),
			"error", err.Error())
		return nil, errs.Mark(err, errs.ErrPaymentFailed)
	}

	uc.logger.InfoContext(ctx, "payment recorded",
		"payment_id", p.ID().String(),
		"charge_id", gc.ID,
		"parking_id", p.ParkingID())

	return &CreatePaymentResult{Payment: p, Intent: gc.Raw}, nil
}

// reserveKey claims the key for this request. A non-nil result means the request was already completed.
func (uc *paymentUseCaseImpl) reserveKey(ctx context.Context, key uuid.UUID, hash string) (*CreatePaymentResult, error) {
	keys := uc.uow.Direct().Idempotency()
	expiresAt := uc.clock.Now().Add(processingLease)

	inserted, err := keys.TryInsert(ctx, key, hash, expiresAt)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if inserted {
		return nil, nil
	}

	rec, err := keys.Get(ctx, key)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// released by a failed attempt between our insert and read
			return nil, errs.ErrIdempotencyInProgress
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if rec.RequestHash != hash {
		return nil, errs.ErrIdempotencyKeyReused
	}

	switch rec.Status {
	case payment.KeyCompleted:
		if rec.PaymentID == nil {
			return nil, errs.Mark(errs.New("completed idempotency key without payment"), errs.ErrDatabaseOperationFailed)
		}
		p, err := uc.uow.Direct().Payments().FindByID(ctx, *rec.PaymentID)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return &CreatePaymentResult{Payment: p, Intent: replayIntent(p), Replayed: true}, nil
	default:
		claimed, err := keys.ClaimExpired(ctx, key, hash, expiresAt)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !claimed {
			return nil, errs.ErrIdempotencyInProgress
		}
		return nil, nil
	}
}

func (uc *paymentUseCaseImpl) charge(ctx context.Context, req *payment.ChargeRequest, key uuid.UUID) (*shared.GatewayCharge, error) {
	gc, err := uc.gateway.Charge(ctx, req, key.String())
	if err != nil {
		return nil, err
	}
	if gc.Status == payment.GatewayStatusFailed {
		return nil, errs.Wrapf(errChargeDeclined, "charge %s", gc.ID)
	}
	return gc, nil
}

func (uc *paymentUseCaseImpl) Refund(ctx context.Context, req RefundRequest) (*RefundResult, error) {
	ctx, span := uc.tracer.Start(ctx, "payment.refund",
		trace.WithAttributes(attribute.String("payment.charge_id", req.PaymentIntentID)))
	defer span.End()

	if req.PaymentIntentID == "" {
		return nil, errs.Mark(errs.New("paymentIntentId is required"), errs.ErrDomainValidation)
	}

	refund, err := uc.gateway.Refund(ctx, req.PaymentIntentID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "refund failed")
		uc.logger.ErrorContext(ctx, "refund failed",
			"charge_id", req.PaymentIntentID,
			"error", err.Error())
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, errs.Mark(err, errs.ErrRefundFailed)
	}

	uc.logger.InfoContext(ctx, "refund created", "refund_id", refund.ID, "charge_id", req.PaymentIntentID)
	return &RefundResult{RefundID: refund.ID, Refund: refund.Raw}, nil
}

func replayIntent(p *payment.Payment) map[string]any {
	return map[string]any{
		"id":       p.ChargeID(),
		"status":   p.Status(),
		"amount":   p.AmountMinor(),
		"currency": p.Currency(),
	}
}
