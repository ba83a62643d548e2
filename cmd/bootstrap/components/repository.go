package components

import (
	"homefix-scheduling/internal/infra/db"
	"homefix-scheduling/internal/infra/readstore"
	"homefix-scheduling/internal/infra/repository"
	"homefix-scheduling/internal/usecase/commands"
	"homefix-scheduling/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			func(pool *pgxpool.Pool) *pgxpool.Pool { return pool },
			fx.As(new(commands.Transactor)),
		),
		fx.Annotate(
			repository.NewAppointmentRepository,
			fx.As(new(commands.AppointmentRepository)),
		),
		fx.Annotate(
			repository.NewOutboxRepository,
			fx.As(new(commands.OutboxRepository)),
		),
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(queries.AppointmentReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
