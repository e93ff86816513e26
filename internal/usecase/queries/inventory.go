package queries

import (
	"context"

	"cinema-tickets/internal/infra"
	"cinema-tickets/internal/pkg/errs"

	"github.com/google/uuid"
)

type EventReadStore interface {
	List(ctx context.Context) ([]EventView, error)
}

type ShowtimeReadStore interface {
	ListByLocation(ctx context.Context, location string) ([]ShowtimeView, error)
	ListTodayByLocation(ctx context.Context, location string) ([]ShowtimeView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ShowtimeView, error)
}

type TicketReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TicketView, error)
}

type InventoryQueries interface {
	ListEvents(ctx context.Context) ([]EventView, error)
	ListShowtimes(ctx context.Context, location string) ([]ShowtimeView, error)
	ListShowtimesToday(ctx context.Context, location string) ([]ShowtimeView, error)
	GetShowtime(ctx context.Context, id uuid.UUID) (*ShowtimeView, error)
	GetTicket(ctx context.Context, id uuid.UUID) (*TicketView, error)
}

type inventoryQueriesImpl struct {
	events    EventReadStore
	showtimes ShowtimeReadStore
	tickets   TicketReadStore
}

func NewInventoryQueries(events EventReadStore, showtimes ShowtimeReadStore, tickets TicketReadStore) InventoryQueries {
	return &inventoryQueriesImpl{
		events:    events,
		showtimes: showtimes,
		tickets:   tickets,
	}
}

func (q *inventoryQueriesImpl) ListEvents(ctx context.Context) ([]EventView, error) {
	return q.events.List(ctx)
}

func (q *inventoryQueriesImpl) ListShowtimes(ctx context.Context, location string) ([]ShowtimeView, error) {
	return q.showtimes.ListByLocation(ctx, location)
}

func (q *inventoryQueriesImpl) ListShowtimesToday(ctx context.Context, location string) ([]ShowtimeView, error) {
	return q.showtimes.ListTodayByLocation(ctx, location)
}

func (q *inventoryQueriesImpl) GetShowtime(ctx context.Context, id uuid.UUID) (*ShowtimeView, error) {
	view, err := q.showtimes.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrShowtimeNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *inventoryQueriesImpl) GetTicket(ctx context.Context, id uuid.UUID) (*TicketView, error) {
	view, err := q.tickets.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrTicketNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
