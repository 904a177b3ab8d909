package app

import (
	"context"
	"fmt"

	"go.uber.org/dig"

	"seller-console/internal/auth"
	"seller-console/internal/config"
	"seller-console/internal/gateway/logistics"
	"seller-console/internal/logx"
	"seller-console/internal/service/tracking"
	"seller-console/internal/transport/kafka"
)

// MustBuildWorkerContainer builds and returns the tracker container.
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuildWorker(ctx)
}

// MustBuildWorker builds and returns the tracker container.
func (b *ContainerBuilder) MustBuildWorker(ctx context.Context) *dig.Container {
	container, err := b.buildWorker(ctx)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) buildWorker(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerGateway(container); err != nil {
		return nil, fmt.Errorf("gateway: %w", err)
	}
	if err := registerTracking(container); err != nil {
		return nil, fmt.Errorf("tracking: %w", err)
	}
	return container, nil
}

func registerTracking(container *dig.Container) error {
	return provideAll(container,
		func(c *logistics.Client) tracking.OrderLookup { return c },
		func(lookup tracking.OrderLookup, logger logx.Logger) *tracking.Processor {
			return tracking.NewProcessor(lookup, logger, trackingEventsTotal())
		},
		func(cfg *config.Config, p *tracking.Processor) kafka.HandleFunc {
			return makeTrackingHandler(cfg.API.ServiceToken, p)
		},
		func(cfg *config.Config, logger logx.Logger, h kafka.HandleFunc) (*kafka.Consumer, error) {
			return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, h)
		},
	)
}

// makeTrackingHandler binds the service token so the gateway authenticates
// the tracker's enrichment reads.
func makeTrackingHandler(serviceToken string, p *tracking.Processor) kafka.HandleFunc {
	return func(ctx context.Context, ev tracking.Event) error {
		return p.Handle(auth.ContextWithToken(ctx, serviceToken), ev)
	}
}
