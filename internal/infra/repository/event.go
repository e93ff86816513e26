package repository

import (
	"context"
	"errors"

	"cinema-tickets/internal/domain/inventory"
	"cinema-tickets/internal/infra"
	"cinema-tickets/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type EventRepository struct {
	db Querier
}

func NewEventRepository(db Querier) *EventRepository {
	return &EventRepository{db: db}
}

var _ shared.EventRepository = (*EventRepository)(nil)

func (r *EventRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Event, error) {
	const query = `
SELECT id, title, description, date, location, total_tickets, available_tickets, price, genre, created_at
FROM events
WHERE id = $1`

	var ev inventory.Event
	err := r.db.QueryRow(ctx, query, id).Scan(
		&ev.ID, &ev.Title, &ev.Description, &ev.Date, &ev.Location,
		&ev.TotalTickets, &ev.AvailableTickets, &ev.Price, &ev.Genre, &ev.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "event not found", err)
		}
		return nil, classifyPgErr("find event", err)
	}
	return &ev, nil
}

func (r *EventRepository) Insert(ctx context.Context, ev *inventory.Event) error {
	const stmt = `
INSERT INTO events (id, title, description, date, location, total_tickets, available_tickets, price, genre, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(ctx, stmt,
		ev.ID, ev.Title, ev.Description, ev.Date, ev.Location,
		ev.TotalTickets, ev.AvailableTickets, ev.Price, ev.Genre, ev.CreatedAt,
	)
	if err != nil {
		return classifyPgErr("insert event", err)
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return classifyPgErr("delete event", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "event not found", nil)
	}
	return nil
}
