package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"go.uber.org/dig"

	"seller-console/internal/config"
	"seller-console/internal/gateway/logistics"
	"seller-console/internal/http/handlers"
	"seller-console/internal/http/middleware/accessgate"
	"seller-console/internal/http/pprofserver"
	"seller-console/internal/http/router"
	"seller-console/internal/logx"
	"seller-console/internal/notify"
	"seller-console/internal/service/console"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder.
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{logFatalf: log.Fatalf}
}

// WithLogFatalf sets the log.Fatalf function.
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns the console container.
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerGateway(container); err != nil {
		return nil, fmt.Errorf("gateway: %w", err)
	}
	if err := registerConsole(container); err != nil {
		return nil, fmt.Errorf("console: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns the console container.
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		config.Load,
		NewLogger,
	)
}

func registerGateway(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config, logger logx.Logger) *logistics.RetryingTransport {
			return logistics.NewRetryingTransport(nil, logger, gatewayRetriesTotal(), logistics.RetryConfig{
				MaxAttempts: cfg.Gateway.MaxAttempts,
				BaseDelay:   cfg.Gateway.BaseDelay,
				MaxDelay:    cfg.Gateway.MaxDelay,
			})
		},
		func(cfg *config.Config, logger logx.Logger, rt *logistics.RetryingTransport) (*logistics.Client, error) {
			c := logistics.NewClient(cfg.API.BaseURL, cfg.API.Timeout, logger, rt)
			if c == nil {
				return nil, fmt.Errorf("api base url is required")
			}
			return c, nil
		},
	)
}

func registerConsole(container *dig.Container) error {
	return provideAll(container,
		func(c *logistics.Client) console.Gateway { return c },
		func(gw console.Gateway, logger logx.Logger, cfg *config.Config) *console.Registry {
			// One feed per session; the counter stays process-wide.
			counter := notificationsTotal()
			newFeed := func() *notify.Feed { return notify.NewFeed(logger, counter) }
			return console.NewRegistry(gw, newFeed, logger, cfg.API.Timeout)
		},
	)
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.NewSessionProvider,
		handlers.New,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		func(logger logx.Logger) *accessgate.Middleware {
			return accessgate.New(logger, gateRedirectsTotal(), accessgate.DefaultPolicy())
		},
		func(cfg *config.Config) pprofserver.Config {
			return pprofserver.Config{User: cfg.Pprof.User, Pass: cfg.Pprof.Pass}
		},
		router.New,
		serverProvider,
	)
}
