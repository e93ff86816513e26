package readstore

import (
	"context"
	"errors"
	"time"

	"cinema-tickets/internal/infra"
	"cinema-tickets/internal/infra/repository"
	"cinema-tickets/internal/pkg/clock"
	"cinema-tickets/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const showtimeViewColumns = `
s.id, s.event_id, e.title, e.genre, e.description,
s.location, s.start_time, s.total_tickets, s.available_tickets, s.price`

type ShowtimeReadStore struct {
	db    repository.Querier
	clock clock.Clock
}

func NewShowtimeReadStore(db repository.Querier, clk clock.Clock) *ShowtimeReadStore {
	return &ShowtimeReadStore{db: db, clock: clk}
}

var _ queries.ShowtimeReadStore = (*ShowtimeReadStore)(nil)

func (s *ShowtimeReadStore) ListByLocation(ctx context.Context, location string) ([]queries.ShowtimeView, error) {
	const query = `
SELECT ` + showtimeViewColumns + `
FROM showtimes s
JOIN events e ON e.id = s.event_id
WHERE lower(s.location) = lower($1)
ORDER BY s.start_time ASC`

	return s.queryViews(ctx, query, location)
}

func (s *ShowtimeReadStore) ListTodayByLocation(ctx context.Context, location string) ([]queries.ShowtimeView, error) {
	now := s.clock.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1)

	const query = `
SELECT ` + showtimeViewColumns + `
FROM showtimes s
JOIN events e ON e.id = s.event_id
WHERE lower(s.location) = lower($1)
  AND s.start_time >= $2
  AND s.start_time < $3
ORDER BY s.start_time ASC`

	return s.queryViews(ctx, query, location, start, end)
}

func (s *ShowtimeReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ShowtimeView, error) {
	const query = `
SELECT ` + showtimeViewColumns + `
FROM showtimes s
JOIN events e ON e.id = s.event_id
WHERE s.id = $1`

	var v queries.ShowtimeView
	err := s.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.EventID, &v.Title, &v.Genre, &v.Description,
		&v.Location, &v.StartTime, &v.TotalTickets, &v.AvailableTickets, &v.Price,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "showtime not found", err)
		}
		return nil, infra.NewRepoErr(infra.KindDBFailure, "find showtime", err)
	}
	return &v, nil
}

func (s *ShowtimeReadStore) queryViews(ctx context.Context, query string, args ...any) ([]queries.ShowtimeView, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.NewRepoErr(infra.KindDBFailure, "list showtimes", err)
	}
	defer rows.Close()

	var views []queries.ShowtimeView
	for rows.Next() {
		var v queries.ShowtimeView
		if err := rows.Scan(
			&v.ID, &v.EventID, &v.Title, &v.Genre, &v.Description,
			&v.Location, &v.StartTime, &v.TotalTickets, &v.AvailableTickets, &v.Price,
		); err != nil {
			return nil, infra.NewRepoErr(infra.KindDBFailure, "scan showtime", err)
		}
		views = append(views, v)
	}
	if rows.Err() != nil {
		return nil, infra.NewRepoErr(infra.KindDBFailure, "iterate showtimes", rows.Err())
	}
	return views, nil
}
