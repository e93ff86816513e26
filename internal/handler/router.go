package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"cinema-tickets/internal/handler/api"
	"cinema-tickets/internal/handler/middleware"
	"cinema-tickets/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	eventHandler *api.EventHandler,
	showtimeHandler *api.ShowtimeHandler,
	ticketHandler *api.TicketHandler,
	historyHandler *api.HistoryHandler,
	adminHandler *api.AdminHandler,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, eventHandler, showtimeHandler, ticketHandler, historyHandler, adminHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	eventHandler *api.EventHandler,
	showtimeHandler *api.ShowtimeHandler,
	ticketHandler *api.TicketHandler,
	historyHandler *api.HistoryHandler,
	adminHandler *api.AdminHandler,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		events := apiGroup.Group("/events")
		{
			addRoutes(events, []route{
				{Method: http.MethodPost, Path: "", Handler: eventHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: eventHandler.List},
				{Method: http.MethodDelete, Path: "/:id", Handler: eventHandler.Remove},
			})
		}

		showtimes := apiGroup.Group("/showtimes")
		{
			addRoutes(showtimes, []route{
				{Method: http.MethodGet, Path: "", Handler: showtimeHandler.List},
				{Method: http.MethodGet, Path: "/today", Handler: showtimeHandler.ListToday},
				{Method: http.MethodGet, Path: "/:id", Handler: showtimeHandler.Get},
			})
		}

		tickets := apiGroup.Group("/tickets")
		{
			addRoutes(tickets, []route{
				{Method: http.MethodPost, Path: "/purchase", Handler: ticketHandler.Purchase},
				{Method: http.MethodDelete, Path: "/:id", Handler: ticketHandler.Cancel},
			})
		}

		commandsGroup := apiGroup.Group("/commands")
		{
			addRoutes(commandsGroup, []route{
				{Method: http.MethodPost, Path: "/undo", Handler: historyHandler.Undo},
				{Method: http.MethodPost, Path: "/redo", Handler: historyHandler.Redo},
			})
		}

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/seed", Handler: adminHandler.Seed},
				{Method: http.MethodPost, Path: "/reset_showtimes", Handler: adminHandler.ResetShowtimes},
				{Method: http.MethodPost, Path: "/migrate_events_to_showtimes", Handler: adminHandler.MigrateShowtimes},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
