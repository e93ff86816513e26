package readstore

import (
	"context"

	"cinema-tickets/internal/infra"
	"cinema-tickets/internal/infra/repository"
	"cinema-tickets/internal/usecase/queries"
)

type EventReadStore struct {
	db repository.Querier
}

func NewEventReadStore(db repository.Querier) *EventReadStore {
	return &EventReadStore{db: db}
}

var _ queries.EventReadStore = (*EventReadStore)(nil)

func (s *EventReadStore) List(ctx context.Context) ([]queries.EventView, error) {
	const query = `
SELECT id, title, description, date, location, genre, total_tickets, available_tickets, price
FROM events
ORDER BY date ASC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.NewRepoErr(infra.KindDBFailure, "list events", err)
	}
	defer rows.Close()

	var views []queries.EventView
	for rows.Next() {
		var v queries.EventView
		if err := rows.Scan(
			&v.ID, &v.Title, &v.Description, &v.Date, &v.Location,
			&v.Genre, &v.TotalTickets, &v.AvailableTickets, &v.Price,
		); err != nil {
			return nil, infra.NewRepoErr(infra.KindDBFailure, "scan event", err)
		}
		views = append(views, v)
	}
	if rows.Err() != nil {
		return nil, infra.NewRepoErr(infra.KindDBFailure, "iterate events", rows.Err())
	}
	return views, nil
}
