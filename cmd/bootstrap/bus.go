package bootstrap

import (
	"context"

	"parking-monitor/internal/infra/bus"
	"parking-monitor/internal/pkg/config"

	"go.uber.org/fx"
)

var PublisherModule = fx.Module("bus/publisher",
	fx.Provide(
		NewPublisher,
	),
)

var ConsumerModule = fx.Module("bus/consumer",
	fx.Provide(
		NewConsumer,
	),
)

func NewPublisher(lc fx.Lifecycle, cfg config.Config) (*bus.Publisher, error) {
	p, err := bus.NewPublisher(cfg.Bus.URL, cfg.Bus.Exchange)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	return p, nil
}

func NewConsumer(lc fx.Lifecycle, cfg config.Config) (*bus.Consumer, error) {
	c, err := bus.NewConsumer(cfg.Bus.URL, cfg.Bus.Exchange, cfg.Bus.Queue, []string{bus.AllSpacesKey})
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return c.Close()
		},
	})
	return c, nil
}
