package worker

import (
	"log/slog"
	"net/http"

	"petplace/config"
	"petplace/internal/delivery"
	"petplace/internal/delivery/middleware"
	"petplace/internal/delivery/worker/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// Pub/Sub caps push payloads well below this.
const pushBodyLimit = "1M"

type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer serves the Pub/Sub push endpoint that fans notifications out to devices.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	return delivery.NewEchoServer(params.Lc, "pushworker", params.Cfg.HTTP.Port, newEcho(params), params.Logger), nil
}

func newEcho(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	e.Use(middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle)
	e.Use(echomiddleware.BodyLimit(pushBodyLimit))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/push", params.PushHandler.HandlePush)

	return e
}
