package db

import (
	"context"

	"cinema-tickets/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS events (
    id                UUID PRIMARY KEY,
    title             TEXT NOT NULL,
    description       TEXT NOT NULL DEFAULT '',
    date              TIMESTAMPTZ NOT NULL,
    location          TEXT NOT NULL,
    total_tickets     INTEGER NOT NULL,
    available_tickets INTEGER NOT NULL,
    price             DOUBLE PRECISION NOT NULL,
    genre             TEXT NOT NULL DEFAULT '',
    created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
    CONSTRAINT events_capacity_check
        CHECK (available_tickets >= 0 AND available_tickets <= total_tickets)
);

CREATE TABLE IF NOT EXISTS showtimes (
    id                UUID PRIMARY KEY,
    event_id          UUID NOT NULL REFERENCES events (id),
    start_time        TIMESTAMPTZ NOT NULL,
    location          TEXT NOT NULL,
    total_tickets     INTEGER NOT NULL,
    available_tickets INTEGER NOT NULL,
    price             DOUBLE PRECISION NOT NULL,
    created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
    CONSTRAINT showtimes_capacity_check
        CHECK (available_tickets >= 0 AND available_tickets <= total_tickets)
);

CREATE INDEX IF NOT EXISTS showtimes_event_id_idx ON showtimes (event_id);
CREATE INDEX IF NOT EXISTS showtimes_location_start_idx ON showtimes (lower(location), start_time);

CREATE TABLE IF NOT EXISTS tickets (
    id             UUID PRIMARY KEY,
    showtime_id    UUID NOT NULL REFERENCES showtimes (id),
    customer_name  TEXT NOT NULL,
    customer_email TEXT NOT NULL,
    quantity       INTEGER NOT NULL CHECK (quantity >= 1),
    category       TEXT NOT NULL,
    total_price    DOUBLE PRECISION NOT NULL,
    is_paid        BOOLEAN NOT NULL DEFAULT FALSE,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS tickets_showtime_id_idx ON tickets (showtime_id);

CREATE TABLE IF NOT EXISTS meta (
    k TEXT PRIMARY KEY,
    v TEXT NOT NULL
);
`

// EnsureSchema creates the inventory tables if they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		return errs.Wrap(err, "failed to ensure schema")
	}
	return nil
}
