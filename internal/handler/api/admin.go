package api

import (
	"net/http"

	resdto "cinema-tickets/internal/handler/dto/response"
	"cinema-tickets/internal/handler/httperr"
	"cinema-tickets/internal/infra/seed"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	seeder *seed.Seeder
}

func NewAdminHandler(seeder *seed.Seeder) *AdminHandler {
	return &AdminHandler{seeder: seeder}
}

func (h *AdminHandler) Seed(c *gin.Context) {
	seeded, err := h.seeder.Run(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	if !seeded {
		c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Already seeded"})
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Seeded"})
}

// ResetShowtimes clears the whole schedule, tickets included. Events survive
// so a follow-up migration can rebuild showtimes for them.
func (h *AdminHandler) ResetShowtimes(c *gin.Context) {
	if err := h.seeder.ResetShowtimes(c.Request.Context()); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "cleared"})
}

// MigrateShowtimes backfills showtimes for events that have none.
func (h *AdminHandler) MigrateShowtimes(c *gin.Context) {
	added, err := h.seeder.MigrateEventsToShowtimes(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.MigrationResponse{Message: "done", EventsAdded: added})
}
