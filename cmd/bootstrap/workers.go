package bootstrap

import (
	"context"
	"log/slog"

	"parking-monitor/internal/infra/bus"
	"parking-monitor/internal/pkg/clock"
	"parking-monitor/internal/pkg/config"
	"parking-monitor/internal/recorder"
	"parking-monitor/internal/simulator"
	"parking-monitor/internal/usecase/commands"
	"parking-monitor/internal/usecase/queries"

	"go.uber.org/fx"
)

var SimulatorModule = fx.Module("worker/simulator",
	fx.Provide(
		func(q queries.ParkingQueries, p *bus.Publisher, clk clock.Clock, cfg config.Config, logger *slog.Logger) *simulator.Simulator {
			return simulator.New(q, p, clk, cfg.Simulator.Interval, logger)
		},
	),
	fx.Invoke(StartSimulator),
)

var RecorderModule = fx.Module("worker/recorder",
	fx.Provide(
		func(c *bus.Consumer, cmds commands.ParkingCommands, logger *slog.Logger) *recorder.Recorder {
			return recorder.New(c, cmds, logger)
		},
	),
	fx.Invoke(StartRecorder),
)

func StartSimulator(lc fx.Lifecycle, sim *simulator.Simulator) {
	runWorker(lc, func(ctx context.Context) error {
		sim.Run(ctx)
		return nil
	}, nil)
}

// StartRecorder shuts the app down when the broker closes the delivery channel.
func StartRecorder(lc fx.Lifecycle, rec *recorder.Recorder, shutdowner fx.Shutdowner, logger *slog.Logger) {
	runWorker(lc, rec.Run, func(err error) {
		logger.Error("recorder exited", "error", err)
		_ = shutdowner.Shutdown(fx.ExitCode(1))
	})
}

func runWorker(lc fx.Lifecycle, run func(ctx context.Context) error, onErr func(error)) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				if err := run(ctx); err != nil && onErr != nil {
					onErr(err)
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
