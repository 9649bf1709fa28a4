package delivery

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"ledger/config"
	"ledger/internal/delivery/middleware"
	"ledger/internal/domain/lifecycle"
	"ledger/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// NewEcho returns an echo instance with the configured timeouts and the
// middleware every ledger process runs: panic recovery, then the request id
// (so the access log carries it), then the access log.
func NewEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	timeouts := cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)

	return e
}

// EchoServer serves an echo instance on http.port until the app stops.
type EchoServer struct {
	name   string
	cfg    *config.Config
	logger *slog.Logger
	echo   *echo.Echo
}

// NewEchoServer registers the shutdown hook for e. name only labels logs.
func NewEchoServer(lc fx.Lifecycle, name string, cfg *config.Config, logger *slog.Logger, e *echo.Echo) *EchoServer {
	srv := &EchoServer{
		name:   name,
		cfg:    cfg,
		logger: logger,
		echo:   e,
	}
	lc.Append(fx.Hook{OnStop: srv.stop})

	return srv
}

// Serve blocks until the server is shut down. Plain HTTP/1.1 and h2c are
// both accepted on the port.
func (s *EchoServer) Serve(context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("server", s.name), slog.String("host_port", hostPort))

	h2 := &http2.Server{IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout}
	if err := s.echo.StartH2CServer(hostPort, h2); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrapf(err, "%s server", s.name)
	}

	return nil
}

func (s *EchoServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server", slog.String("server", s.name))

	return errors.WithStack(s.echo.Shutdown(ctx))
}
