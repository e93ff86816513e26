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

type TicketRepository struct {
	db Querier
}

func NewTicketRepository(db Querier) *TicketRepository {
	return &TicketRepository{db: db}
}

var _ shared.TicketRepository = (*TicketRepository)(nil)

const ticketColumns = `id, showtime_id, customer_name, customer_email, quantity, category, total_price, is_paid, created_at`

func scanTicket(row pgx.Row, t *inventory.Ticket) error {
	return row.Scan(
		&t.ID, &t.ShowtimeID, &t.CustomerName, &t.CustomerEmail,
		&t.Quantity, &t.Category, &t.TotalPrice, &t.IsPaid, &t.CreatedAt,
	)
}

func (r *TicketRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Ticket, error) {
	const query = `SELECT ` + ticketColumns + ` FROM tickets WHERE id = $1`

	var t inventory.Ticket
	if err := scanTicket(r.db.QueryRow(ctx, query, id), &t); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "ticket not found", err)
		}
		return nil, classifyPgErr("find ticket", err)
	}
	return &t, nil
}

func (r *TicketRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]inventory.Ticket, error) {
	const query = `
SELECT t.id, t.showtime_id, t.customer_name, t.customer_email, t.quantity, t.category, t.total_price, t.is_paid, t.created_at
FROM tickets t
JOIN showtimes s ON s.id = t.showtime_id
WHERE s.event_id = $1
ORDER BY t.created_at ASC`

	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		return nil, classifyPgErr("list tickets", err)
	}
	defer rows.Close()

	var tickets []inventory.Ticket
	for rows.Next() {
		var t inventory.Ticket
		if err := scanTicket(rows, &t); err != nil {
			return nil, classifyPgErr("scan ticket", err)
		}
		tickets = append(tickets, t)
	}
	if rows.Err() != nil {
		return nil, classifyPgErr("iterate tickets", rows.Err())
	}
	return tickets, nil
}

func (r *TicketRepository) Insert(ctx context.Context, t *inventory.Ticket) error {
	const stmt = `
INSERT INTO tickets (id, showtime_id, customer_name, customer_email, quantity, category, total_price, is_paid, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, stmt,
		t.ID, t.ShowtimeID, t.CustomerName, t.CustomerEmail,
		t.Quantity, t.Category, t.TotalPrice, t.IsPaid, t.CreatedAt,
	)
	if err != nil {
		return classifyPgErr("insert ticket", err)
	}
	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tickets WHERE id = $1`, id)
	if err != nil {
		return classifyPgErr("delete ticket", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "ticket not found", nil)
	}
	return nil
}

func (r *TicketRepository) DeleteByEvent(ctx context.Context, eventID uuid.UUID) error {
	const stmt = `
DELETE FROM tickets
WHERE showtime_id IN (SELECT id FROM showtimes WHERE event_id = $1)`

	_, err := r.db.Exec(ctx, stmt, eventID)
	if err != nil {
		return classifyPgErr("delete tickets", err)
	}
	return nil
}
