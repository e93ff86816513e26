package api

import (
	"net/http"

	resdto "cinema-tickets/internal/handler/dto/response"
	"cinema-tickets/internal/handler/httperr"
	"cinema-tickets/internal/pkg/errs"
	"cinema-tickets/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ShowtimeHandler struct {
	inventoryQueries queries.InventoryQueries
}

func NewShowtimeHandler(inventoryQueries queries.InventoryQueries) *ShowtimeHandler {
	return &ShowtimeHandler{inventoryQueries: inventoryQueries}
}

func (h *ShowtimeHandler) List(c *gin.Context) {
	location := c.Query("location")
	if location == "" {
		httperr.AbortWithError(c, http.StatusBadRequest,
			errs.New("location query parameter is empty"),
			"location query parameter is required", nil)
		return
	}

	views, err := h.inventoryQueries.ListShowtimes(c.Request.Context(), location)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, toShowtimeResponses(views))
}

func (h *ShowtimeHandler) ListToday(c *gin.Context) {
	location := c.Query("location")
	if location == "" {
		httperr.AbortWithError(c, http.StatusBadRequest,
			errs.New("location query parameter is empty"),
			"location query parameter is required", nil)
		return
	}

	views, err := h.inventoryQueries.ListShowtimesToday(c.Request.Context(), location)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, toShowtimeResponses(views))
}

func (h *ShowtimeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid showtime ID format", nil)
		return
	}

	view, err := h.inventoryQueries.GetShowtime(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrShowtimeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Showtime not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromShowtimeView(*view))
}

func toShowtimeResponses(views []queries.ShowtimeView) []resdto.ShowtimeResponse {
	response := make([]resdto.ShowtimeResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromShowtimeView(v)
	}
	return response
}
