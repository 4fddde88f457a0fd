//go:build unit

package gateway

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/omise/omise-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parking-monitor/internal/domain/payment"
	"parking-monitor/internal/pkg/config"
	"parking-monitor/internal/pkg/errs"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *OmiseGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.GatewayConfig{PublicKey: "pkey_test_123", SecretKey: "skey_test_123", Timeout: timeout}
	client, err := NewOmiseClient(cfg)
	require.NoError(t, err)
	client.Endpoints["https://api.omise.co"] = srv.URL

	return NewOmiseGateway(client, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func chargeRequest(t *testing.T) *payment.ChargeRequest {
	t.Helper()
	req, err := payment.NewChargeRequest("A1", 100.5, "THB", "tokn_test_1")
	require.NoError(t, err)
	return req
}

func TestOmiseGateway_Charge(t *testing.T) {
	t.Run("sends the idempotency key and maps the charge", func(t *testing.T) {
		var gotKey, gotPath string
		gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			gotKey = r.Header.Get("Idempotency-Key")
			gotPath = r.URL.Path
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"object":"charge","id":"chrg_test_1","status":"successful","amount":10050,"currency":"thb"}`)
		}, time.Second)

		gc, err := gw.Charge(context.Background(), chargeRequest(t), "1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed")

		require.NoError(t, err)
		assert.Equal(t, "1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed", gotKey)
		assert.Equal(t, "/charges", gotPath)
		assert.Equal(t, "chrg_test_1", gc.ID)
		assert.Equal(t, "successful", gc.Status)
		assert.Equal(t, int64(10050), gc.Amount)
	})

	t.Run("slow gateway is reported as a timeout", func(t *testing.T) {
		release := make(chan struct{})
		gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-release:
			}
		}, 20*time.Millisecond)
		t.Cleanup(func() { close(release) })

		_, err := gw.Charge(context.Background(), chargeRequest(t), "1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed")

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrGatewayTimeout))
	})
}

func TestCallWithTimeout(t *testing.T) {
	t.Run("returns call result", func(t *testing.T) {
		want := errors.New("card declined")
		err := callWithTimeout(context.Background(), time.Second, func(context.Context) error { return want })
		assert.ErrorIs(t, err, want)
		assert.False(t, errs.Is(err, errs.ErrGatewayTimeout))
	})

	t.Run("times out slow call", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)

		err := callWithTimeout(context.Background(), 10*time.Millisecond, func(context.Context) error {
			<-release
			return nil
		})
		assert.True(t, errs.Is(err, errs.ErrGatewayTimeout))
	})

	t.Run("call aborted by its context is a timeout", func(t *testing.T) {
		err := callWithTimeout(context.Background(), 10*time.Millisecond, func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		})
		assert.True(t, errs.Is(err, errs.ErrGatewayTimeout))
	})

	t.Run("caller cancellation keeps its cause", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := callWithTimeout(ctx, time.Second, func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.True(t, errs.Is(err, errs.ErrGatewayTimeout))
	})
}

func TestNewOmiseClient(t *testing.T) {
	t.Run("requires keys", func(t *testing.T) {
		_, err := NewOmiseClient(config.GatewayConfig{})
		assert.Error(t, err)
	})

	t.Run("request clients do not share state with the base client", func(t *testing.T) {
		gw := newTestGateway(t, func(http.ResponseWriter, *http.Request) {}, time.Second)
		base := gw.client

		c := gw.requestClient(context.Background(), map[string]string{"Idempotency-Key": "k"})

		assert.NotSame(t, base, c)
		assert.IsType(t, &omise.Client{}, c)
	})
}
