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

type TicketHandler struct {
	inventoryCommands commands.InventoryCommands
	inventoryQueries  queries.InventoryQueries
}

func NewTicketHandler(inventoryCommands commands.InventoryCommands, inventoryQueries queries.InventoryQueries) *TicketHandler {
	return &TicketHandler{
		inventoryCommands: inventoryCommands,
		inventoryQueries:  inventoryQueries,
	}
}

func (h *TicketHandler) Purchase(c *gin.Context) {
	var req reqdto.PurchaseTicketRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}
	if !req.HasTarget() {
		httperr.AbortWithError(c, http.StatusBadRequest,
			errs.New("purchase request carries neither showtime_id nor event_id"),
			"showtime_id or event_id is required", nil)
		return
	}

	ticketID, err := h.inventoryCommands.ReserveTicket(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrShowtimeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Showtime not found", nil)
		case errs.Is(err, errs.ErrInsufficientAvailability):
			httperr.AbortWithError(c, http.StatusConflict, err, "Not enough tickets available", nil)
		case errs.Is(err, errs.ErrInvalidQuantity):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Quantity must be at least 1", nil)
		case errs.Is(err, errs.ErrInvalidCategory):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ticket category (adult / student / child)", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	// Read-after-write: return the stored ticket view
	view, err := h.inventoryQueries.GetTicket(c.Request.Context(), ticketID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromTicketView(*view))
}

// Cancel deletes the ticket through the command history so the cancellation
// can be undone.
func (h *TicketHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ticket ID format", nil)
		return
	}

	if err := h.inventoryCommands.CancelTicket(c.Request.Context(), id); err != nil {
		switch {
		case errs.Is(err, errs.ErrTicketNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Ticket not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Ticket canceled successfully"})
}
