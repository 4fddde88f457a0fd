package bootstrap

import (
	"context"
	"log/slog"

	"parking-monitor/internal/pkg/config"
	"parking-monitor/internal/pkg/obs"

	"go.uber.org/fx"
)

// ServiceName tells shared modules which process they run in.
type ServiceName string

var TracingModule = fx.Module("tracing",
	fx.Invoke(StartTracing),
)

func StartTracing(lc fx.Lifecycle, cfg config.Config, name ServiceName, logger *slog.Logger) error {
	shutdown, err := obs.InitTracer(context.Background(), cfg.Tracing, string(name))
	if err != nil {
		return err
	}
	if cfg.Tracing.Endpoint != "" {
		logger.Info("exporting traces", "endpoint", cfg.Tracing.Endpoint, "service", name)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})
	return nil
}
