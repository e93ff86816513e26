package shared

import (
	"context"

	"cinema-tickets/internal/domain/inventory"

	"github.com/google/uuid"
)

// UnitOfWork wraps a sequence of store calls into one atomic unit. A command's
// snapshot-then-mutate sequence runs entirely inside a single Within call so
// no concurrent reader can observe a partially applied state.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Events() EventRepository
	Showtimes() ShowtimeRepository
	Tickets() TicketRepository
}

type EventRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*inventory.Event, error)
	// Insert preserves the record's ID, which lets a command re-insert a
	// snapshotted row verbatim on undo.
	Insert(ctx context.Context, ev *inventory.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ShowtimeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*inventory.Showtime, error)
	// FirstByEvent returns the event's earliest showtime.
	FirstByEvent(ctx context.Context, eventID uuid.UUID) (*inventory.Showtime, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]inventory.Showtime, error)
	Insert(ctx context.Context, st *inventory.Showtime) error
	DeleteByEvent(ctx context.Context, eventID uuid.UUID) error
	// AdjustAvailability adds delta to available_tickets. The store rejects
	// adjustments that would leave the count negative or above capacity.
	AdjustAvailability(ctx context.Context, id uuid.UUID, delta int) error
}

type TicketRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*inventory.Ticket, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]inventory.Ticket, error)
	Insert(ctx context.Context, t *inventory.Ticket) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByEvent(ctx context.Context, eventID uuid.UUID) error
}
