package srv

import (
	"context"
	"errors"
	"time"

	"github.com/sandevgo/csbot/pkg/log"
)

// ShutdownTimeout bounds how long ShutdownServices waits for each service.
var ShutdownTimeout = 10 * time.Second

type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// StartServices starts each service in its own goroutine. A service failing
// to start cancels the returned context so the caller can unwind.
func StartServices(ctx context.Context, services []Service) context.Context {
	logger := log.FromCtx(ctx)
	ctx, cancel := context.WithCancelCause(ctx)
	for _, service := range services {
		go func(service Service) {
			if err := service.Start(ctx); err != nil {
				logger.Error().Err(err).Msgf("%T failed to start", service)
				cancel(err)
			}
		}(service)
	}
	return ctx
}

// ShutdownServices waits for ctx to end, then stops services in reverse
// order. It returns the start failure, if any, joined with shutdown errors.
func ShutdownServices(ctx context.Context, services []Service) error {
	<-ctx.Done()
	logger := log.FromCtx(ctx)

	var errs []error
	if cause := context.Cause(ctx); cause != nil && !errors.Is(cause, context.Canceled) {
		errs = append(errs, cause)
	}

	base := context.WithoutCancel(ctx)
	for i := len(services) - 1; i >= 0; i-- {
		service := services[i]
		sctx, cancel := context.WithTimeout(base, ShutdownTimeout)
		if err := service.Shutdown(sctx); err != nil {
			logger.Error().Err(err).Msgf("%T failed to shutdown", service)
			errs = append(errs, err)
		}
		cancel()
	}
	return errors.Join(errs...)
}
