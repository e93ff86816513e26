//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"cinema-tickets/internal/domain/inventory"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestEvent inserts the event exactly as built, capacity included.
func CreateTestEvent(t *testing.T, db DBLike, ev inventory.Event) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO events (id, title, description, date, location, total_tickets, available_tickets, price, genre, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		ev.ID, ev.Title, ev.Description, ev.Date, ev.Location,
		ev.TotalTickets, ev.AvailableTickets, ev.Price, ev.Genre, ev.CreatedAt)
	require.NoError(t, err)
}

func CreateTestShowtime(t *testing.T, db DBLike, st inventory.Showtime) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO showtimes (id, event_id, start_time, location, total_tickets, available_tickets, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		st.ID, st.EventID, st.StartTime, st.Location,
		st.TotalTickets, st.AvailableTickets, st.Price, st.CreatedAt)
	require.NoError(t, err)
}

func CreateTestTicket(t *testing.T, db DBLike, tk inventory.Ticket) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO tickets (id, showtime_id, customer_name, customer_email, quantity, category, total_price, is_paid, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		tk.ID, tk.ShowtimeID, tk.CustomerName, tk.CustomerEmail,
		tk.Quantity, tk.Category, tk.TotalPrice, tk.IsPaid, tk.CreatedAt)
	require.NoError(t, err)
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every public table, the seeded flag in meta included, so
// each subtest starts from an empty inventory.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
