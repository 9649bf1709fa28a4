package main

import (
	"context"
	"log/slog"
	"os"

	"ledger/config"
	"ledger/internal/delivery"
	"ledger/internal/delivery/api"
	apimiddleware "ledger/internal/delivery/api/middleware"
	"ledger/internal/delivery/api/router/handler"
	"ledger/internal/infra/auth"
	logs "ledger/internal/infra/log"
	"ledger/internal/infra/otp"
	"ledger/internal/infra/persistence/memory"
	"ledger/internal/infra/persistence/postgres"
	"ledger/internal/infra/pubsub"
	"ledger/internal/infra/qrcode"
	"ledger/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"golang.org/x/sync/errgroup"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	// The storage driver decides which repositories get wired, so the
	// config is loaded before the graph is built.
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		injectInfra(cfg),
		injectRepo(cfg),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(
			logs.New,
			context.Background,
		),
	)
}

func injectRepo(cfg *config.Config) fx.Option {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		return memory.Module
	}

	return postgres.Module
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			otp.NewGenerator,
			qrcode.NewQRCodeService,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewAdminService,
			impl.NewClaimService,
			impl.NewEventCodeService,
			impl.NewRatingService,
			impl.NewTemplateService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewAdminHandler,
			handler.NewClaimHandler,
			handler.NewEventCodeHandler,
			handler.NewRatingHandler,
			handler.NewTemplateHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	group, groupCtx := errgroup.WithContext(ctx)
	for _, delivery := range params.Deliveries {
		group.Go(func() error {
			return delivery.Serve(groupCtx)
		})
	}

	go func() {
		if err := group.Wait(); err != nil {
			params.Logger.Error("Failed to start server", slog.Any("error", err))

			// Trigger graceful shutdown to execute all OnStop hooks
			if shutdownErr := params.Shutdown(); shutdownErr != nil {
				params.Logger.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
				os.Exit(1)
			}
		}
	}()
}
