package components

import (
	"cinema-tickets/internal/infra/readstore"
	"cinema-tickets/internal/infra/repository"
	"cinema-tickets/internal/infra/seed"
	"cinema-tickets/internal/infra/uow"
	"cinema-tickets/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewQuerier,
		seed.NewSeeder,
		// UnitOfWork (constructor already returns the shared interface)
		uow.NewPostgresUoW,
		// Read stores
		fx.Annotate(
			readstore.NewEventReadStore,
			fx.As(new(queries.EventReadStore)),
		),
		fx.Annotate(
			readstore.NewShowtimeReadStore,
			fx.As(new(queries.ShowtimeReadStore)),
		),
		fx.Annotate(
			readstore.NewTicketReadStore,
			fx.As(new(queries.TicketReadStore)),
		),
	),
)

// NewQuerier exposes the pool to read stores, which run outside of the
// unit of work.
func NewQuerier(pool *pgxpool.Pool) repository.Querier {
	return pool
}
