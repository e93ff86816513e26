package components

import (
	"cinema-tickets/internal/domain/pricing"
	"cinema-tickets/internal/pkg/clock"
	"cinema-tickets/internal/usecase/commands"
	"cinema-tickets/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			pricing.NewCategoryResolver,
			fx.As(new(pricing.Resolver)),
		),
		commands.NewInventory,
		// Process-wide command history: constructed once, serialized
		// internally.
		commands.NewHistory,
		commands.NewInventoryCommands,
		queries.NewInventoryQueries,
	),
)
