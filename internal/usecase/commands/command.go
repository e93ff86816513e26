package commands

import (
	"context"

	"cinema-tickets/internal/domain/inventory"
	"cinema-tickets/internal/infra"
	"cinema-tickets/internal/pkg/errs"
	"cinema-tickets/internal/usecase/shared"

	"github.com/google/uuid"
)

// Command is a reversible unit of work. Execute captures a snapshot of every
// row it is about to delete inside the same atomic unit as the mutation, so a
// failed snapshot means nothing was mutated. Undo without a snapshot is a
// no-op.
type Command interface {
	Execute(ctx context.Context) error
	Undo(ctx context.Context) error
}

// RemoveEventSnapshot holds the rows a RemoveEventCommand deleted, captured
// once at execute time and consumed at undo time.
type RemoveEventSnapshot struct {
	Event     inventory.Event
	Showtimes []inventory.Showtime
	Tickets   []inventory.Ticket
}

type RemoveEventCommand struct {
	ops      *Inventory
	eventID  uuid.UUID
	snapshot *RemoveEventSnapshot
}

func NewRemoveEventCommand(ops *Inventory, eventID uuid.UUID) *RemoveEventCommand {
	return &RemoveEventCommand{ops: ops, eventID: eventID}
}

func (c *RemoveEventCommand) Execute(ctx context.Context) error {
	var snapshot *RemoveEventSnapshot
	err := c.ops.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ev, err := tx.Events().FindByID(ctx, c.eventID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrEventNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		showtimes, err := tx.Showtimes().ListByEvent(ctx, c.eventID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		tickets, err := tx.Tickets().ListByEvent(ctx, c.eventID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		snapshot = &RemoveEventSnapshot{Event: *ev, Showtimes: showtimes, Tickets: tickets}

		return c.ops.removeEvent(ctx, tx, c.eventID)
	})
	if err != nil {
		return err
	}
	c.snapshot = snapshot
	return nil
}

// Undo re-inserts the snapshotted rows verbatim, original identifiers and
// availability counts included. Showtimes keep their decremented counts, so
// the capacity conservation invariant holds for the restored ticket rows.
func (c *RemoveEventCommand) Undo(ctx context.Context) error {
	if c.snapshot == nil {
		return nil
	}
	snapshot := c.snapshot
	return c.ops.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Events().Insert(ctx, &snapshot.Event); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		for i := range snapshot.Showtimes {
			if err := tx.Showtimes().Insert(ctx, &snapshot.Showtimes[i]); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}
		for i := range snapshot.Tickets {
			if err := tx.Tickets().Insert(ctx, &snapshot.Tickets[i]); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
}

// CancelTicketSnapshot holds the ticket row a CancelTicketCommand deleted.
type CancelTicketSnapshot struct {
	Ticket inventory.Ticket
}

type CancelTicketCommand struct {
	ops      *Inventory
	ticketID uuid.UUID
	snapshot *CancelTicketSnapshot
}

func NewCancelTicketCommand(ops *Inventory, ticketID uuid.UUID) *CancelTicketCommand {
	return &CancelTicketCommand{ops: ops, ticketID: ticketID}
}

func (c *CancelTicketCommand) Execute(ctx context.Context) error {
	var snapshot *CancelTicketSnapshot
	err := c.ops.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ticket, err := tx.Tickets().FindByID(ctx, c.ticketID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrTicketNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		snapshot = &CancelTicketSnapshot{Ticket: *ticket}

		return c.ops.cancelTicket(ctx, tx, ticket)
	})
	if err != nil {
		return err
	}
	c.snapshot = snapshot
	return nil
}

// Undo replays a fresh reservation with the snapshot's original parameters
// instead of re-inserting the row, so availability is recomputed rather than
// copied. It re-validates availability and pricing and can fail with
// ErrInsufficientAvailability if capacity was consumed in the meantime.
// The command retargets itself to the replayed ticket so a later redo
// cancels the replacement row, not the original's dead ID.
func (c *CancelTicketCommand) Undo(ctx context.Context) error {
	if c.snapshot == nil {
		return nil
	}
	ticket := c.snapshot.Ticket
	var newID uuid.UUID
	err := c.ops.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, reserveErr := c.ops.reserveTicket(ctx, tx, ticket.ShowtimeID, ticket.CustomerName, ticket.CustomerEmail, ticket.Quantity, ticket.Category)
		if reserveErr != nil {
			return reserveErr
		}
		newID = id
		return nil
	})
	if err != nil {
		return err
	}
	c.ticketID = newID
	return nil
}
