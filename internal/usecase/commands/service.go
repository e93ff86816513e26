package commands

import (
	"context"

	"github.com/google/uuid"
)

// InventoryCommands is the caller-facing operation surface consumed by the
// HTTP layer. Removal and cancellation run through the command history so
// they can be undone; admission and reservation are not reversible units.
type InventoryCommands interface {
	AddEvent(ctx context.Context, p AddEventParams) (uuid.UUID, error)
	ReserveTicket(ctx context.Context, p ReserveTicketParams) (uuid.UUID, error)
	RemoveEvent(ctx context.Context, eventID uuid.UUID) error
	CancelTicket(ctx context.Context, ticketID uuid.UUID) error
	Undo(ctx context.Context) error
	Redo(ctx context.Context) error
}

type inventoryCommandsImpl struct {
	inventory *Inventory
	history   *History
}

func NewInventoryCommands(inventory *Inventory, history *History) InventoryCommands {
	return &inventoryCommandsImpl{
		inventory: inventory,
		history:   history,
	}
}

func (s *inventoryCommandsImpl) AddEvent(ctx context.Context, p AddEventParams) (uuid.UUID, error) {
	return s.inventory.AddEvent(ctx, p)
}

func (s *inventoryCommandsImpl) ReserveTicket(ctx context.Context, p ReserveTicketParams) (uuid.UUID, error) {
	return s.inventory.ReserveTicket(ctx, p)
}

func (s *inventoryCommandsImpl) RemoveEvent(ctx context.Context, eventID uuid.UUID) error {
	return s.history.Execute(ctx, NewRemoveEventCommand(s.inventory, eventID))
}

func (s *inventoryCommandsImpl) CancelTicket(ctx context.Context, ticketID uuid.UUID) error {
	return s.history.Execute(ctx, NewCancelTicketCommand(s.inventory, ticketID))
}

func (s *inventoryCommandsImpl) Undo(ctx context.Context) error {
	return s.history.Undo(ctx)
}

func (s *inventoryCommandsImpl) Redo(ctx context.Context) error {
	return s.history.Redo(ctx)
}
