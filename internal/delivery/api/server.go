// Package api is the public ledger HTTP API.
package api

import (
	"log/slog"

	"ledger/config"
	"ledger/internal/delivery"
	apimiddleware "ledger/internal/delivery/api/middleware"
	"ledger/internal/delivery/api/router"
	"ledger/internal/delivery/api/validator"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewEcho builds the API with every route registered.
func NewEcho(cfg *config.Config, logger *slog.Logger, routerParams router.RouterParams) *echo.Echo {
	e := delivery.NewEcho(cfg, logger)

	cors := echomiddleware.DefaultCORSConfig
	if len(cfg.HTTP.AllowOrigins) > 0 {
		cors.AllowOrigins = cfg.HTTP.AllowOrigins
	}
	// clients correlate failures through the request id
	cors.ExposeHeaders = []string{echo.HeaderXRequestID}
	e.Use(echomiddleware.CORSWithConfig(cors))
	e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	router.NewRouter(routerParams).RegisterRoutes(e)

	return e
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := NewEcho(params.Cfg, params.Logger, params.RouterParams)

	return delivery.NewEchoServer(params.Lc, "api", params.Cfg, params.Logger, e), nil
}
