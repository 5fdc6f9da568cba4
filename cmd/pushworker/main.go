// Command pushworker receives notification events from the Pub/Sub push subscription and
// delivers them to the recipients' devices through FCM.
package main

import (
	"context"

	"petplace/config"
	"petplace/internal/delivery"
	"petplace/internal/delivery/worker"
	"petplace/internal/delivery/worker/handler"
	logs "petplace/internal/infra/log"
	"petplace/internal/infra/notification"
	"petplace/internal/infra/persistence/postgres"
	"petplace/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewDeviceRepository,
			postgres.NewNotificationRepository,
			notification.NewPushService,
			impl.NewPushRelayService,
			handler.NewPushHandler,
		),
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
		fx.Invoke(delivery.Start),
	).Run()
}
