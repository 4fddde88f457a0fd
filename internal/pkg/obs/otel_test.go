//go:build unit

package obs_test

import (
	"context"
	"testing"

	"parking-monitor/internal/pkg/config"
	"parking-monitor/internal/pkg/obs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestInitTracer_NoEndpoint(t *testing.T) {
	shutdown, err := obs.InitTracer(context.Background(), config.TracingConfig{ServiceName: "parking-monitor"}, "status")

	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
	assert.Contains(t, otel.GetTextMapPropagator().Fields(), "traceparent")
}
