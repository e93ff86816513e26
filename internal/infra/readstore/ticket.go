package readstore

import (
	"context"
	"errors"

	"cinema-tickets/internal/infra"
	"cinema-tickets/internal/infra/repository"
	"cinema-tickets/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type TicketReadStore struct {
	db repository.Querier
}

func NewTicketReadStore(db repository.Querier) *TicketReadStore {
	return &TicketReadStore{db: db}
}

var _ queries.TicketReadStore = (*TicketReadStore)(nil)

func (s *TicketReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TicketView, error) {
	const query = `
SELECT id, showtime_id, customer_name, customer_email, quantity, category, total_price, is_paid
FROM tickets
WHERE id = $1`

	var v queries.TicketView
	err := s.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.ShowtimeID, &v.CustomerName, &v.CustomerEmail,
		&v.Quantity, &v.Category, &v.TotalPrice, &v.IsPaid,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "ticket not found", err)
		}
		return nil, infra.NewRepoErr(infra.KindDBFailure, "find ticket", err)
	}
	return &v, nil
}
