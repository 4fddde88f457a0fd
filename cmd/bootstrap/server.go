package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"parking-monitor/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// ListenPort is the port the service's HTTP server binds to.
type ListenPort string

var ServerModule = fx.Module("server",
	fx.Provide(
		func() *gin.Engine {
			return gin.New()
		},
	),
	fx.Invoke(StartServer),
)

func StartServer(lc fx.Lifecycle, engine *gin.Engine, port ListenPort, cfg config.Config, logger *slog.Logger) {
	srv := &http.Server{
		Addr:    ":" + string(port),
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			logger.Info("starting server", "address", srv.Addr, "mode", gin.Mode())
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping server", "address", srv.Addr)
			ctx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
}
