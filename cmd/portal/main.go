package main

import (
	"context"
	"log/slog"
	"os"

	"portaljobs/config"
	"portaljobs/internal/delivery"
	"portaljobs/internal/delivery/http"
	"portaljobs/internal/delivery/http/middleware"
	"portaljobs/internal/delivery/http/router/handler"
	"portaljobs/internal/infra/auth"
	"portaljobs/internal/infra/identity"
	logs "portaljobs/internal/infra/log"
	"portaljobs/internal/infra/persistence/sqlite"
	"portaljobs/internal/usecase"
	"portaljobs/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			restoreSession,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		sqlite.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			sqlite.NewSessionStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			identity.NewClient,
			identity.NewIdentityProvider,
			identity.NewApplicationClient,
			auth.NewTokenInspector,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewApplicationService,
			impl.NewGuardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewGuardMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewApplicationHandler,
			handler.NewPortalHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// restoreSession resolves the cached session before the server starts
// accepting traffic. Failures fall back to unauthenticated, never abort.
func restoreSession(ctx context.Context, authUsecase usecase.AuthUsecase, logger *slog.Logger) {
	if err := authUsecase.Initialize(ctx); err != nil {
		logger.Warn("Session restore failed, starting unauthenticated", slog.Any("error", err))
	}
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
