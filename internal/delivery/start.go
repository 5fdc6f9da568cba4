package delivery

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"
)

// StartParams collects every server registered in the "deliveries" group.
type StartParams struct {
	fx.In
	fx.Shutdowner

	Logger     *slog.Logger
	Deliveries []Delivery `group:"deliveries"`
}

// Start runs each delivery in its own goroutine. When one fails the whole app shuts down through
// fx so that OnStop hooks still close the pool and flush the publisher.
func Start(ctx context.Context, params StartParams) {
	for _, d := range params.Deliveries {
		go func() {
			err := d.Serve(ctx)
			if err == nil {
				return
			}

			params.Logger.Error("server stopped unexpectedly", slog.Any("error", err))
			if shutdownErr := params.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
				params.Logger.Error("graceful shutdown failed", slog.Any("error", shutdownErr))
				os.Exit(1)
			}
		}()
	}
}
