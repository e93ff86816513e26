package api

import (
	"net/http"

	reqdto "cinema-tickets/internal/handler/dto/request"
	resdto "cinema-tickets/internal/handler/dto/response"
	"cinema-tickets/internal/handler/httperr"
	"cinema-tickets/internal/pkg/errs"
	"cinema-tickets/internal/usecase/commands"
	"cinema-tickets/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventHandler struct {
	inventoryCommands commands.InventoryCommands
	inventoryQueries  queries.InventoryQueries
}

func NewEventHandler(inventoryCommands commands.InventoryCommands, inventoryQueries queries.InventoryQueries) *EventHandler {
	return &EventHandler{
		inventoryCommands: inventoryCommands,
		inventoryQueries:  inventoryQueries,
	}
}

func (h *EventHandler) Create(c *gin.Context) {
	var req reqdto.CreateEventRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	id, err := h.inventoryCommands.AddEvent(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

func (h *EventHandler) List(c *gin.Context) {
	views, err := h.inventoryQueries.ListEvents(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]resdto.EventResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromEventView(v)
	}
	c.JSON(http.StatusOK, response)
}

// Remove deletes the event through the command history so the removal can be
// undone.
func (h *EventHandler) Remove(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid event ID format", nil)
		return
	}

	if err := h.inventoryCommands.RemoveEvent(c.Request.Context(), id); err != nil {
		switch {
		case errs.Is(err, errs.ErrEventNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Event not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Event removed successfully"})
}
