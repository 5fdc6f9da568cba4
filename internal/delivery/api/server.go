package api

import (
	"log/slog"

	"petplace/config"
	"petplace/internal/delivery"
	apimiddleware "petplace/internal/delivery/api/middleware"
	"petplace/internal/delivery/api/router"
	"petplace/internal/delivery/api/validator"
	"petplace/internal/delivery/middleware"
	"petplace/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc              fx.Lifecycle
	Cfg             *config.Config
	Logger          *slog.Logger
	Metrics         *metrics.Metrics
	ErrorMiddleware *apimiddleware.ErrorMiddleware
	RouterParams    router.RouterParams
}

// NewServer serves the public REST API over HTTP/1.1 and h2c.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	h2 := &http2.Server{IdleTimeout: params.Cfg.HTTP.Timeouts.IdleTimeout}

	return delivery.NewEchoServer(params.Lc, "api", params.Cfg.HTTP.Port, newEcho(params), params.Logger, delivery.WithH2C(h2)), nil
}

// newEcho builds the configured echo instance with middleware and routes.
func newEcho(params ServerParams) *echo.Echo {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	// Order matters: the request ID must exist before anything logs, and metrics see the final status.
	echoServer.Use(echomiddleware.Recover())
	echoServer.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	echoServer.Use(middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle)
	if params.Cfg.Metrics != nil && params.Cfg.Metrics.Enabled {
		echoServer.Use(params.Metrics.Middleware())
	}

	corsConfig := echomiddleware.DefaultCORSConfig
	if len(params.Cfg.HTTP.CORSOrigins) > 0 {
		corsConfig.AllowOrigins = params.Cfg.HTTP.CORSOrigins
	}
	echoServer.Use(echomiddleware.CORSWithConfig(corsConfig))

	echoServer.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	echoServer.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError
	echoServer.Validator = validator.New()

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(echoServer)
	r.RegisterMetricsRoute(echoServer)

	return echoServer
}
