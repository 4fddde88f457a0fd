package gateway

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"parking-monitor/internal/domain/payment"
	"parking-monitor/internal/pkg/config"
	"parking-monitor/internal/pkg/errs"
	"parking-monitor/internal/usecase/shared"

	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// sourcePrefix marks payment methods that are sources (PromptPay, internet banking) rather than card tokens.
const sourcePrefix = "src_"

const idempotencyHeader = "Idempotency-Key"

type OmiseGateway struct {
	client  *omise.Client
	timeout time.Duration
	logger  *slog.Logger
	tracer  trace.Tracer
}

func NewOmiseClient(cfg config.GatewayConfig) (*omise.Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c, err := omise.NewClient(cfg.PublicKey, cfg.SecretKey)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create omise client")
	}
	return c, nil
}

func NewOmiseGateway(client *omise.Client, cfg config.GatewayConfig, logger *slog.Logger) *OmiseGateway {
	return &OmiseGateway{
		client:  client,
		timeout: cfg.Timeout,
		logger:  logger,
		tracer:  otel.Tracer("parking-monitor/infra/gateway"),
	}
}

// requestClient returns a copy of the shared client bound to ctx, so concurrent calls never share request state.
func (g *OmiseGateway) requestClient(ctx context.Context, headers map[string]string) *omise.Client {
	c := *g.client
	c.WithContext(ctx)
	c.WithCustomHeaders(headers)
	return &c
}

func (g *OmiseGateway) Charge(ctx context.Context, req *payment.ChargeRequest, idempotencyKey string) (*shared.GatewayCharge, error) {
	ctx, span := g.tracer.Start(ctx, "omise.charge",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.Int64("payment.amount_minor", req.AmountMinor()),
			attribute.String("payment.currency", req.Currency()),
		))
	defer span.End()

	op := &operations.CreateCharge{
		Amount:   req.AmountMinor(),
		Currency: req.Currency(),
		Metadata: map[string]any{"parking_id": req.ParkingID()},
	}
	if strings.HasPrefix(req.PaymentMethodID(), sourcePrefix) {
		op.Source = req.PaymentMethodID()
	} else {
		op.Card = req.PaymentMethodID()
	}

	ch := &omise.Charge{}
	err := callWithTimeout(ctx, g.timeout, func(ctx context.Context) error {
		// the same key makes Omise return the original charge instead of creating another
		return g.requestClient(ctx, map[string]string{idempotencyHeader: idempotencyKey}).Do(ch, op)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create charge failed")
		return nil, errs.Wrap(err, "omise create charge")
	}

	status := string(ch.Status)
	span.SetAttributes(attribute.String("payment.charge_id", ch.ID), attribute.String("payment.status", status))
	if status == payment.GatewayStatusFailed {
		g.logger.WarnContext(ctx, "charge declined",
			"charge_id", ch.ID,
			"failure_code", deref(ch.FailureCode),
			"failure_message", deref(ch.FailureMessage))
	}

	return &shared.GatewayCharge{
		ID:       ch.ID,
		Status:   status,
		Amount:   ch.Amount,
		Currency: ch.Currency,
		Raw:      ch,
	}, nil
}

func (g *OmiseGateway) Refund(ctx context.Context, chargeID string) (*shared.GatewayRefund, error) {
	ctx, span := g.tracer.Start(ctx, "omise.refund",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("payment.charge_id", chargeID)))
	defer span.End()

	ch := &omise.Charge{}
	retrieve := &operations.RetrieveCharge{ChargeID: chargeID}
	if err := callWithTimeout(ctx, g.timeout, func(ctx context.Context) error {
		return g.requestClient(ctx, nil).Do(ch, retrieve)
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "retrieve charge failed")
		return nil, errs.Wrap(err, "omise retrieve charge")
	}

	rf := &omise.Refund{}
	create := &operations.CreateRefund{ChargeID: chargeID, Amount: ch.Amount}
	if err := callWithTimeout(ctx, g.timeout, func(ctx context.Context) error {
		return g.requestClient(ctx, nil).Do(rf, create)
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create refund failed")
		return nil, errs.Wrap(err, "omise create refund")
	}

	return &shared.GatewayRefund{
		ID:       rf.ID,
		ChargeID: chargeID,
		Amount:   rf.Amount,
		Raw:      rf,
	}, nil
}

// callWithTimeout bounds an SDK call by the timeout and the caller's context.
// A call cut short is marked ErrGatewayTimeout: the request may already have reached Omise.
func callWithTimeout(ctx context.Context, timeout time.Duration, call func(ctx context.Context) error) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	done := make(chan error, 1)
	go func() {
		done <- call(ctx)
	}()

	select {
	case err := <-done:
		if err != nil && ctx.Err() != nil {
			return errs.Mark(errs.Wrap(err, ctx.Err().Error()), errs.ErrGatewayTimeout)
		}
		return err
	case <-ctx.Done():
		return errs.Mark(ctx.Err(), errs.ErrGatewayTimeout)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
