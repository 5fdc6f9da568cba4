package delivery

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"petplace/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// EchoServer serves an echo instance on all interfaces and shuts it down with the fx lifecycle.
type EchoServer struct {
	name   string
	addr   string
	echo   *echo.Echo
	h2     *http2.Server
	logger *slog.Logger
}

// EchoServerOption customizes an EchoServer.
type EchoServerOption func(*EchoServer)

// WithH2C serves cleartext HTTP/2 alongside HTTP/1.1.
func WithH2C(h2 *http2.Server) EchoServerOption {
	return func(s *EchoServer) {
		s.h2 = h2
	}
}

func NewEchoServer(lc fx.Lifecycle, name string, port int, e *echo.Echo, logger *slog.Logger, opts ...EchoServerOption) *EchoServer {
	srv := &EchoServer{
		name:   name,
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(port)),
		echo:   e,
		logger: logger.With(slog.String("server", name)),
	}
	for _, opt := range opts {
		opt(srv)
	}

	lc.Append(fx.Hook{OnStop: srv.stop})

	return srv
}

// Serve blocks until the listener fails or the server is shut down.
func (s *EchoServer) Serve(_ context.Context) error {
	s.logger.Info("starting HTTP server", slog.String("host_port", s.addr), slog.Bool("h2c", s.h2 != nil))

	var err error
	if s.h2 != nil {
		err = s.echo.StartH2CServer(s.addr, s.h2)
	} else {
		err = s.echo.Start(s.addr)
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrapf(err, "%s server", s.name)
	}

	return nil
}

func (s *EchoServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("shutting down HTTP server")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
