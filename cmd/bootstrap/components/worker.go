package components

import (
	"context"
	"log/slog"

	"homefix-scheduling/internal/infra/events"
	"homefix-scheduling/internal/infra/repository"
	"homefix-scheduling/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewOutboxPublisher,
	),
	fx.Invoke(startOutboxPublisher),
)

func NewOutboxPublisher(pool *pgxpool.Pool, logger *slog.Logger, cfg config.Config) *events.Publisher {
	return events.NewPublisher(pool, repository.NewOutboxRepository(), logger, cfg.Kafka)
}

func startOutboxPublisher(lc fx.Lifecycle, publisher *events.Publisher) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				publisher.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
