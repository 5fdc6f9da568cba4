// Command petplace serves the PetPlace REST API.
package main

import (
	"context"
	"log/slog"
	"time"

	"petplace/config"
	"petplace/internal/delivery"
	"petplace/internal/delivery/api"
	"petplace/internal/delivery/api/middleware"
	"petplace/internal/delivery/api/router/handler"
	"petplace/internal/infra/auth"
	"petplace/internal/infra/auth/google"
	"petplace/internal/infra/cache"
	logs "petplace/internal/infra/log"
	"petplace/internal/infra/metrics"
	"petplace/internal/infra/notification"
	"petplace/internal/infra/persistence/postgres"
	"petplace/internal/infra/pubsub"
	"petplace/internal/infra/qrcode"
	"petplace/internal/usecase"
	"petplace/internal/usecase/impl"

	"go.uber.org/fx"
)

type cleanupParams struct {
	fx.In

	Lc             fx.Lifecycle
	Cfg            *config.Config
	Logger         *slog.Logger
	NotificationUC usecase.NotificationUsecase
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
			delivery.Start,
			startNotificationCleanup,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.New,
		metrics.New,
		metrics.AsAffiliateMetrics,
		pubsub.NewEventPublisher,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewTransactionManager,
			postgres.NewDeviceRepository,
			postgres.NewNotificationRepository,
			postgres.NewBusinessRepository,
			postgres.NewReviewRepository,
			postgres.NewBlogRepository,
			postgres.NewAffiliateRepository,
			postgres.NewCategoryRepository,
			postgres.NewTagRepository,
			postgres.NewImageRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewAuthService,
			notification.NewPushService,
			qrcode.NewQRCodeServiceFromConfig,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewDeviceService,
			impl.NewNotificationService,
			impl.NewBusinessService,
			impl.NewReviewService,
			impl.NewBlogService,
			impl.NewAffiliateService,
			impl.NewTaxonomyService,
			impl.NewImageService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewDeviceHandler,
			handler.NewNotificationHandler,
			handler.NewBusinessHandler,
			handler.NewReviewHandler,
			handler.NewBlogHandler,
			handler.NewAffiliateHandler,
			handler.NewTaxonomyHandler,
			handler.NewImageHandler,
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

// startNotificationCleanup periodically removes expired notifications while the app runs.
func startNotificationCleanup(params cleanupParams) {
	interval := params.Cfg.Notification.CleanupInterval
	if interval <= 0 {
		params.Logger.Info("Notification cleanup disabled")

		return
	}
	done := make(chan struct{})

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			params.Logger.Info("Starting notification cleanup", slog.String("interval", interval.String()))

			go func() {
				ticker := time.NewTicker(interval)
				defer ticker.Stop()

				for {
					select {
					case <-done:
						return
					case <-ticker.C:
						removed, err := params.NotificationUC.CleanupExpired(context.Background())
						if err != nil {
							params.Logger.Error("Notification cleanup failed", slog.Any("error", err))

							continue
						}
						if removed > 0 {
							params.Logger.Info("Removed expired notifications", slog.Int64("count", removed))
						}
					}
				}
			}()

			return nil
		},
		OnStop: func(context.Context) error {
			close(done)

			return nil
		},
	})
}
