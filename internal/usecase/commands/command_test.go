//go:build unit

package commands_test

import (
	"context"
	"testing"

	"cinema-tickets/internal/domain/inventory"
	"cinema-tickets/internal/pkg/errs"
	"cinema-tickets/internal/usecase/commands"
	"cinema-tickets/tests/common/builder"
	"cinema-tickets/tests/common/memstore"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveEventCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("undo restores every deleted row verbatim", func(t *testing.T) {
		store, ops := newFixture(t)
		ev := builder.NewEventBuilder().Build()
		st := builder.NewShowtimeBuilder(ev.ID).With(func(b *builder.ShowtimeBuilder) {
			b.AvailableTickets = 98
		}).Build()
		tk := builder.NewTicketBuilder(st.ID).Build()
		store.Seed([]inventory.Event{ev}, []inventory.Showtime{st}, []inventory.Ticket{tk})

		cmd := commands.NewRemoveEventCommand(ops, ev.ID)
		require.NoError(t, cmd.Execute(ctx))

		events, showtimes, tickets := store.Counts()
		require.Equal(t, 0, events+showtimes+tickets)

		require.NoError(t, cmd.Undo(ctx))

		gotEv, ok := store.Event(ev.ID)
		require.True(t, ok)
		assert.Empty(t, cmp.Diff(ev, gotEv))

		gotSt, ok := store.Showtime(st.ID)
		require.True(t, ok)
		assert.Empty(t, cmp.Diff(st, gotSt))
		assert.Equal(t, 98, gotSt.AvailableTickets)

		gotTk, ok := store.Ticket(tk.ID)
		require.True(t, ok)
		assert.Empty(t, cmp.Diff(tk, gotTk))
	})

	t.Run("undo before a successful execute is a no-op", func(t *testing.T) {
		store, ops := newFixture(t)

		cmd := commands.NewRemoveEventCommand(ops, uuid.New())
		require.ErrorIs(t, cmd.Execute(ctx), errs.ErrEventNotFound)
		require.NoError(t, cmd.Undo(ctx))

		events, _, _ := store.Counts()
		assert.Equal(t, 0, events)
	})

	t.Run("redo after undo lands back in the removed state", func(t *testing.T) {
		store, ops := newFixture(t)
		ev := builder.NewEventBuilder().Build()
		st := builder.NewShowtimeBuilder(ev.ID).Build()
		store.Seed([]inventory.Event{ev}, []inventory.Showtime{st}, nil)

		cmd := commands.NewRemoveEventCommand(ops, ev.ID)
		require.NoError(t, cmd.Execute(ctx))
		require.NoError(t, cmd.Undo(ctx))
		require.NoError(t, cmd.Execute(ctx))

		events, showtimes, tickets := store.Counts()
		assert.Equal(t, 0, events+showtimes+tickets)
	})
}

func TestCancelTicketCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("undo replays the reservation with the original parameters", func(t *testing.T) {
		store, ops := newFixture(t)
		_, st := seedShowtime(store, 10)

		id, err := ops.ReserveTicket(ctx, commands.ReserveTicketParams{
			ShowtimeID:    &st.ID,
			CustomerName:  "Maria",
			CustomerEmail: "maria@example.com",
			Quantity:      3,
			Category:      "child",
		})
		require.NoError(t, err)
		original, _ := store.Ticket(id)

		cmd := commands.NewCancelTicketCommand(ops, id)
		require.NoError(t, cmd.Execute(ctx))

		mid, _ := store.Showtime(st.ID)
		require.Equal(t, 10, mid.AvailableTickets)

		require.NoError(t, cmd.Undo(ctx))

		after, _ := store.Showtime(st.ID)
		assert.Equal(t, 7, after.AvailableTickets)

		// The replayed reservation is a fresh row with a fresh ID; everything
		// the customer cares about matches the original.
		_, _, tickets := store.Counts()
		require.Equal(t, 1, tickets)
		replayed := findTicketByShowtime(t, store, st.ID)
		assert.NotEqual(t, original.ID, replayed.ID)
		assert.Empty(t, cmp.Diff(original, replayed,
			cmpopts.IgnoreFields(inventory.Ticket{}, "ID", "CreatedAt"),
		))
	})

	t.Run("redo after undo cancels the replayed ticket", func(t *testing.T) {
		store, ops := newFixture(t)
		_, st := seedShowtime(store, 10)

		id, err := ops.ReserveTicket(ctx, commands.ReserveTicketParams{
			ShowtimeID:    &st.ID,
			CustomerName:  "Maria",
			CustomerEmail: "maria@example.com",
			Quantity:      3,
			Category:      "adult",
		})
		require.NoError(t, err)

		cmd := commands.NewCancelTicketCommand(ops, id)
		require.NoError(t, cmd.Execute(ctx))
		require.NoError(t, cmd.Undo(ctx))

		// Undo minted a replacement row; redo must target it.
		require.NoError(t, cmd.Execute(ctx))

		after, _ := store.Showtime(st.ID)
		assert.Equal(t, 10, after.AvailableTickets)
		_, _, tickets := store.Counts()
		assert.Equal(t, 0, tickets)
	})

	t.Run("undo fails when capacity was consumed in the meantime", func(t *testing.T) {
		store, ops := newFixture(t)
		_, st := seedShowtime(store, 5)

		id, err := ops.ReserveTicket(ctx, commands.ReserveTicketParams{
			ShowtimeID:    &st.ID,
			CustomerName:  "Maria",
			CustomerEmail: "maria@example.com",
			Quantity:      4,
			Category:      "adult",
		})
		require.NoError(t, err)

		cmd := commands.NewCancelTicketCommand(ops, id)
		require.NoError(t, cmd.Execute(ctx))

		// Another customer takes most of the freed seats.
		_, err = ops.ReserveTicket(ctx, commands.ReserveTicketParams{
			ShowtimeID:    &st.ID,
			CustomerName:  "Radu",
			CustomerEmail: "radu@example.com",
			Quantity:      3,
			Category:      "adult",
		})
		require.NoError(t, err)

		assert.ErrorIs(t, cmd.Undo(ctx), errs.ErrInsufficientAvailability)

		after, _ := store.Showtime(st.ID)
		assert.Equal(t, 2, after.AvailableTickets)
	})

	t.Run("undo before a successful execute is a no-op", func(t *testing.T) {
		_, ops := newFixture(t)

		cmd := commands.NewCancelTicketCommand(ops, uuid.New())
		require.ErrorIs(t, cmd.Execute(ctx), errs.ErrTicketNotFound)
		require.NoError(t, cmd.Undo(ctx))
	})
}

func findTicketByShowtime(t *testing.T, store *memstore.Store, showtimeID uuid.UUID) inventory.Ticket {
	t.Helper()
	list := store.TicketsByShowtime(showtimeID)
	require.Len(t, list, 1)
	return list[0]
}
