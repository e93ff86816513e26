//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"cinema-tickets/internal/domain/inventory"
	"cinema-tickets/internal/domain/pricing"
	"cinema-tickets/internal/pkg/clock"
	"cinema-tickets/internal/usecase/commands"
	"cinema-tickets/tests/common/builder"
	"cinema-tickets/tests/common/memstore"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type InventoryCommandsTestSuite struct {
	suite.Suite
	store   *memstore.Store
	service commands.InventoryCommands
}

func (s *InventoryCommandsTestSuite) SetupTest() {
	s.store = memstore.New()
	clk := clock.NewMockClock(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))
	ops := commands.NewInventory(s.store, pricing.NewCategoryResolver(), clk)
	s.service = commands.NewInventoryCommands(ops, commands.NewHistory())
}

func TestInventoryCommandsSuite(t *testing.T) {
	suite.Run(t, new(InventoryCommandsTestSuite))
}

func (s *InventoryCommandsTestSuite) seedEvent() (inventory.Event, inventory.Showtime) {
	ev := builder.NewEventBuilder().Build()
	st := builder.NewShowtimeBuilder(ev.ID).Build()
	s.store.Seed([]inventory.Event{ev}, []inventory.Showtime{st}, nil)
	return ev, st
}

// availability plus the quantities of all live tickets must always equal the
// showtime's capacity
func (s *InventoryCommandsTestSuite) assertConservation(st inventory.Showtime) {
	s.T().Helper()
	current, ok := s.store.Showtime(st.ID)
	require.True(s.T(), ok)
	sold := 0
	for _, t := range s.store.TicketsByShowtime(st.ID) {
		sold += t.Quantity
	}
	s.Equal(current.TotalTickets, current.AvailableTickets+sold)
}

func (s *InventoryCommandsTestSuite) TestCancelUndoRedoRoundTrip() {
	ctx := context.Background()
	_, st := s.seedEvent()

	ticketID, err := s.service.ReserveTicket(ctx, commands.ReserveTicketParams{
		ShowtimeID:    &st.ID,
		CustomerName:  "Elena",
		CustomerEmail: "elena@example.com",
		Quantity:      2,
		Category:      "adult",
	})
	s.Require().NoError(err)
	s.assertConservation(st)

	s.Require().NoError(s.service.CancelTicket(ctx, ticketID))
	s.assertConservation(st)
	after, _ := s.store.Showtime(st.ID)
	s.Equal(st.TotalTickets, after.AvailableTickets)

	// Undo of the cancellation reserves again.
	s.Require().NoError(s.service.Undo(ctx))
	s.assertConservation(st)
	after, _ = s.store.Showtime(st.ID)
	s.Equal(st.TotalTickets-2, after.AvailableTickets)

	// Redo of the cancellation frees the seats once more.
	s.Require().NoError(s.service.Redo(ctx))
	s.assertConservation(st)
	after, _ = s.store.Showtime(st.ID)
	s.Equal(st.TotalTickets, after.AvailableTickets)
}

func (s *InventoryCommandsTestSuite) TestRemoveUndoRestoresEverything() {
	ctx := context.Background()
	ev, st := s.seedEvent()

	_, err := s.service.ReserveTicket(ctx, commands.ReserveTicketParams{
		ShowtimeID:    &st.ID,
		CustomerName:  "Elena",
		CustomerEmail: "elena@example.com",
		Quantity:      3,
		Category:      "student",
	})
	s.Require().NoError(err)

	s.Require().NoError(s.service.RemoveEvent(ctx, ev.ID))
	events, showtimes, tickets := s.store.Counts()
	s.Equal(0, events+showtimes+tickets)

	s.Require().NoError(s.service.Undo(ctx))
	events, showtimes, tickets = s.store.Counts()
	s.Equal(1, events)
	s.Equal(1, showtimes)
	s.Equal(1, tickets)
	s.assertConservation(st)
}

func (s *InventoryCommandsTestSuite) TestNewCommandInvalidatesRedo() {
	ctx := context.Background()
	ev, st := s.seedEvent()

	reserve := func() {
		_, err := s.service.ReserveTicket(ctx, commands.ReserveTicketParams{
			ShowtimeID:    &st.ID,
			CustomerName:  "Elena",
			CustomerEmail: "elena@example.com",
			Quantity:      1,
			Category:      "adult",
		})
		s.Require().NoError(err)
	}

	reserve()
	s.Require().NoError(s.service.RemoveEvent(ctx, ev.ID))
	s.Require().NoError(s.service.Undo(ctx))

	// A new undoable command after the undo discards the removal's redo.
	tickets := s.store.TicketsByShowtime(st.ID)
	s.Require().Len(tickets, 1)
	s.Require().NoError(s.service.CancelTicket(ctx, tickets[0].ID))

	s.Require().NoError(s.service.Redo(ctx))
	_, ok := s.store.Event(ev.ID)
	s.True(ok, "event must survive: the removal is no longer redoable")
}
