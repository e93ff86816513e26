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

type ShowtimeRepository struct {
	db Querier
}

func NewShowtimeRepository(db Querier) *ShowtimeRepository {
	return &ShowtimeRepository{db: db}
}

var _ shared.ShowtimeRepository = (*ShowtimeRepository)(nil)

const showtimeColumns = `id, event_id, start_time, location, total_tickets, available_tickets, price, created_at`

func scanShowtime(row pgx.Row, st *inventory.Showtime) error {
	return row.Scan(
		&st.ID, &st.EventID, &st.StartTime, &st.Location,
		&st.TotalTickets, &st.AvailableTickets, &st.Price, &st.CreatedAt,
	)
}

func (r *ShowtimeRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Showtime, error) {
	const query = `SELECT ` + showtimeColumns + ` FROM showtimes WHERE id = $1`

	var st inventory.Showtime
	if err := scanShowtime(r.db.QueryRow(ctx, query, id), &st); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "showtime not found", err)
		}
		return nil, classifyPgErr("find showtime", err)
	}
	return &st, nil
}

func (r *ShowtimeRepository) FirstByEvent(ctx context.Context, eventID uuid.UUID) (*inventory.Showtime, error) {
	const query = `
SELECT ` + showtimeColumns + `
FROM showtimes
WHERE event_id = $1
ORDER BY start_time ASC
LIMIT 1`

	var st inventory.Showtime
	if err := scanShowtime(r.db.QueryRow(ctx, query, eventID), &st); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "showtime not found for event", err)
		}
		return nil, classifyPgErr("find first showtime", err)
	}
	return &st, nil
}

func (r *ShowtimeRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]inventory.Showtime, error) {
	const query = `
SELECT ` + showtimeColumns + `
FROM showtimes
WHERE event_id = $1
ORDER BY start_time ASC`

	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		return nil, classifyPgErr("list showtimes", err)
	}
	defer rows.Close()

	var showtimes []inventory.Showtime
	for rows.Next() {
		var st inventory.Showtime
		if err := scanShowtime(rows, &st); err != nil {
			return nil, classifyPgErr("scan showtime", err)
		}
		showtimes = append(showtimes, st)
	}
	if rows.Err() != nil {
		return nil, classifyPgErr("iterate showtimes", rows.Err())
	}
	return showtimes, nil
}

func (r *ShowtimeRepository) Insert(ctx context.Context, st *inventory.Showtime) error {
	const stmt = `
INSERT INTO showtimes (id, event_id, start_time, location, total_tickets, available_tickets, price, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, stmt,
		st.ID, st.EventID, st.StartTime, st.Location,
		st.TotalTickets, st.AvailableTickets, st.Price, st.CreatedAt,
	)
	if err != nil {
		return classifyPgErr("insert showtime", err)
	}
	return nil
}

func (r *ShowtimeRepository) DeleteByEvent(ctx context.Context, eventID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM showtimes WHERE event_id = $1`, eventID)
	if err != nil {
		return classifyPgErr("delete showtimes", err)
	}
	return nil
}

func (r *ShowtimeRepository) AdjustAvailability(ctx context.Context, id uuid.UUID, delta int) error {
	// The capacity check constraint rejects adjustments below zero or above
	// total_tickets.
	const stmt = `UPDATE showtimes SET available_tickets = available_tickets + $2 WHERE id = $1`

	tag, err := r.db.Exec(ctx, stmt, id, delta)
	if err != nil {
		return classifyPgErr("adjust availability", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "showtime not found", nil)
	}
	return nil
}
