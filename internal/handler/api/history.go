package api

import (
	"net/http"

	resdto "cinema-tickets/internal/handler/dto/response"
	"cinema-tickets/internal/handler/httperr"
	"cinema-tickets/internal/pkg/errs"
	"cinema-tickets/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type HistoryHandler struct {
	inventoryCommands commands.InventoryCommands
}

func NewHistoryHandler(inventoryCommands commands.InventoryCommands) *HistoryHandler {
	return &HistoryHandler{inventoryCommands: inventoryCommands}
}

// Undo reverses the most recent command. An empty history is a no-op, not an
// error. Undoing a cancellation re-validates availability, so it can fail
// with a conflict even though the command has already moved to the redo
// stack.
func (h *HistoryHandler) Undo(c *gin.Context) {
	if err := h.inventoryCommands.Undo(c.Request.Context()); err != nil {
		switch {
		case errs.Is(err, errs.ErrInsufficientAvailability):
			httperr.AbortWithError(c, http.StatusConflict, err, "Undo could not be applied: not enough tickets available", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Undo executed successfully"})
}

func (h *HistoryHandler) Redo(c *gin.Context) {
	if err := h.inventoryCommands.Redo(c.Request.Context()); err != nil {
		switch {
		case errs.Is(err, errs.ErrInsufficientAvailability):
			httperr.AbortWithError(c, http.StatusConflict, err, "Redo could not be applied: not enough tickets available", nil)
		case errs.Is(err, errs.ErrEventNotFound), errs.Is(err, errs.ErrTicketNotFound), errs.Is(err, errs.ErrShowtimeNotFound):
			httperr.AbortWithError(c, http.StatusConflict, err, "Redo could not be applied: target no longer exists", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Redo executed successfully"})
}
