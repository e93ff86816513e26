//go:build e2e

package history_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	resdto "cinema-tickets/internal/handler/dto/response"
	"cinema-tickets/tests/common/builder"
	"cinema-tickets/tests/common/dbtest"
	"cinema-tickets/tests/common/httptest"
	"cinema-tickets/tests/e2e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	eventsURL   = "/api/events"
	purchaseURL = "/api/tickets/purchase"
	ticketsURL  = "/api/tickets"
	undoURL     = "/api/commands/undo"
	redoURL     = "/api/commands/redo"
)

// eventRow mirrors the persisted event so undo can be checked for a verbatim
// restore. Times are compared separately.
type eventRow struct {
	ID               uuid.UUID
	Title            string
	Description      string
	Date             time.Time
	Location         string
	TotalTickets     int
	AvailableTickets int
	Price            float64
	Genre            string
	CreatedAt        time.Time
}

func readEventRow(t *testing.T, db *pgxpool.Pool, id uuid.UUID) eventRow {
	t.Helper()

	var row eventRow
	err := db.QueryRow(context.Background(), `
		SELECT id, title, description, date, location, total_tickets, available_tickets, price, genre, created_at
		FROM events WHERE id = $1`, id).Scan(
		&row.ID, &row.Title, &row.Description, &row.Date, &row.Location,
		&row.TotalTickets, &row.AvailableTickets, &row.Price, &row.Genre, &row.CreatedAt)
	require.NoError(t, err)
	return row
}

func availableTickets(t *testing.T, db *pgxpool.Pool, showtimeID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT available_tickets FROM showtimes WHERE id = $1", showtimeID).Scan(&n)
	require.NoError(t, err)
	return n
}

type HistorySuite struct {
	e2e.SharedSuite
}

func TestHistorySuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(HistorySuite))
}

// The command history lives in the application, not the database, so every
// subtest drives its own commands and undoes only what it pushed.
func (s *HistorySuite) TestUndoRedo() {
	s.Run("canceled purchase can be undone and redone", func() {
		t := s.T()

		ev := builder.NewEventBuilder().Build()
		st := builder.NewShowtimeBuilder(ev.ID).With(func(b *builder.ShowtimeBuilder) {
			b.TotalTickets = 10
			b.AvailableTickets = 10
		}).Build()
		dbtest.CreateTestEvent(t, s.DB, ev)
		dbtest.CreateTestShowtime(t, s.DB, st)

		reqBody := builder.NewTicketBuilder(st.ID).With(func(b *builder.TicketBuilder) {
			b.Quantity = 3
		}).BuildPurchaseRequestDTO()
		pw := httptest.PerformRequest(t, s.Router, http.MethodPost, purchaseURL, reqBody)
		require.Equal(t, http.StatusCreated, pw.Code)

		var ticket resdto.TicketResponse
		httptest.DecodeResponseBody(t, pw.Body, &ticket)
		require.Equal(t, 7, availableTickets(t, s.DB, st.ID))

		cw := httptest.PerformRequest(t, s.Router, http.MethodDelete, ticketsURL+"/"+ticket.ID.String(), nil)
		require.Equal(t, http.StatusOK, cw.Code)
		require.Equal(t, 10, availableTickets(t, s.DB, st.ID))
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "tickets"))

		// Undo replays the reservation under a fresh ID.
		uw := httptest.PerformRequest(t, s.Router, http.MethodPost, undoURL, nil)
		require.Equal(t, http.StatusOK, uw.Code)
		require.Equal(t, 7, availableTickets(t, s.DB, st.ID))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "tickets"))

		// Redo must cancel the replayed ticket, not chase the dead ID.
		rw := httptest.PerformRequest(t, s.Router, http.MethodPost, redoURL, nil)
		require.Equal(t, http.StatusOK, rw.Code)
		require.Equal(t, 10, availableTickets(t, s.DB, st.ID))
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "tickets"))
	})

	s.Run("removed event is restored verbatim by undo", func() {
		t := s.T()

		reqBody := builder.NewEventBuilder().BuildCreateRequestDTO()
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, eventsURL, reqBody)
		require.Equal(t, http.StatusCreated, cw.Code)

		var created resdto.CreatedResponse
		httptest.DecodeResponseBody(t, cw.Body, &created)
		before := readEventRow(t, s.DB, created.ID)

		dw := httptest.PerformRequest(t, s.Router, http.MethodDelete, eventsURL+"/"+created.ID.String(), nil)
		require.Equal(t, http.StatusOK, dw.Code)
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "events"))

		uw := httptest.PerformRequest(t, s.Router, http.MethodPost, undoURL, nil)
		require.Equal(t, http.StatusOK, uw.Code)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "events"))

		after := readEventRow(t, s.DB, created.ID)
		require.Equal(t, before.ID, after.ID)
		require.Equal(t, before.Title, after.Title)
		require.Equal(t, before.Description, after.Description)
		require.Equal(t, before.Location, after.Location)
		require.Equal(t, before.TotalTickets, after.TotalTickets)
		require.Equal(t, before.AvailableTickets, after.AvailableTickets)
		require.Equal(t, before.Price, after.Price)
		require.Equal(t, before.Genre, after.Genre)
		require.True(t, before.Date.Equal(after.Date))
		require.True(t, before.CreatedAt.Equal(after.CreatedAt))
	})
}
