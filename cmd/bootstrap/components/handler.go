package components

import (
	"cinema-tickets/internal/handler"
	"cinema-tickets/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewEventHandler,
		api.NewShowtimeHandler,
		api.NewTicketHandler,
		api.NewHistoryHandler,
		api.NewAdminHandler,
	),
	fx.Invoke(handler.NewRouter),
)
