package seed

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"cinema-tickets/internal/domain/inventory"
	"cinema-tickets/internal/infra/repository"
	"cinema-tickets/internal/pkg/clock"
	"cinema-tickets/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seeder loads a demo inventory once per database. The seeded flag in the
// meta table keeps repeated calls idempotent.
type Seeder struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func NewSeeder(pool *pgxpool.Pool, clk clock.Clock) *Seeder {
	return &Seeder{pool: pool, clock: clk}
}

type demoEvent struct {
	title       string
	description string
	daysAhead   int
	location    string
	total       int
	price       float64
	genre       string
}

var demoEvents = []demoEvent{
	{"Hamlet", "Spectacol de teatru", 1, "Florin Piersic", 200, 60.0, "Drama"},
	{"Morometii 2", "Film romanesc", 2, "Florin Piersic", 120, 25.0, "Drama"},
	{"O singura noapte", "Drama psihologica", 3, "Florin Piersic", 120, 25.0, "Drama"},
	{"Dune", "Sci-fi epic", 1, "Iulius Mall", 160, 35.0, "SF"},
	{"Spider-Man", "Actiune supereroi", 2, "VIVO Cluj", 180, 30.0, "Actiune"},
	{"Interstellar", "Calatorie spatiala", 3, "Iulius Mall", 150, 32.0, "SF"},
}

// Run seeds the demo data. It reports false without touching the store when
// the database was seeded before.
func (s *Seeder) Run(ctx context.Context) (bool, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, errs.Wrap(err, "begin seed transaction")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	seeded, err := s.alreadySeeded(ctx, tx)
	if err != nil {
		return false, err
	}
	if seeded {
		return false, nil
	}

	now := s.clock.Now()
	events := repository.NewEventRepository(tx)
	showtimes := repository.NewShowtimeRepository(tx)

	for _, d := range demoEvents {
		ev := &inventory.Event{
			ID:               uuid.New(),
			Title:            d.title,
			Description:      d.description,
			Date:             now.AddDate(0, 0, d.daysAhead),
			Location:         d.location,
			TotalTickets:     d.total,
			AvailableTickets: d.total,
			Price:            d.price,
			Genre:            d.genre,
			CreatedAt:        now,
		}
		if err := events.Insert(ctx, ev); err != nil {
			return false, errs.Wrap(err, "seed event "+d.title)
		}
		for _, st := range randomShowtimes(ev, now) {
			if err := showtimes.Insert(ctx, &st); err != nil {
				return false, errs.Wrap(err, "seed showtimes for "+d.title)
			}
		}
	}

	if _, err := tx.Exec(ctx, `INSERT INTO meta (k, v) VALUES ('seeded', '1') ON CONFLICT (k) DO UPDATE SET v = '1'`); err != nil {
		return false, errs.Wrap(err, "set seeded flag")
	}
	if err := tx.Commit(ctx); err != nil {
		return false, errs.Wrap(err, "commit seed transaction")
	}
	return true, nil
}

// ResetShowtimes wipes all tickets and showtimes in one transaction. Events
// and the seeded flag are untouched, so MigrateEventsToShowtimes can rebuild
// the schedule afterwards.
func (s *Seeder) ResetShowtimes(ctx context.Context) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return errs.Wrap(err, "begin reset transaction")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM tickets`); err != nil {
		return errs.Wrap(err, "clear tickets")
	}
	if _, err := tx.Exec(ctx, `DELETE FROM showtimes`); err != nil {
		return errs.Wrap(err, "clear showtimes")
	}
	if err := tx.Commit(ctx); err != nil {
		return errs.Wrap(err, "commit reset transaction")
	}
	return nil
}

// MigrateEventsToShowtimes backfills a random schedule for every event that
// has no showtimes yet. Events that already have showtimes are skipped, so
// repeated calls are idempotent. It reports how many events were backfilled.
func (s *Seeder) MigrateEventsToShowtimes(ctx context.Context) (int, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, errs.Wrap(err, "begin migrate transaction")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := tx.Query(ctx, `
		SELECT id, location, total_tickets, price
		FROM events e
		WHERE NOT EXISTS (SELECT 1 FROM showtimes s WHERE s.event_id = e.id)
		ORDER BY created_at`)
	if err != nil {
		return 0, errs.Wrap(err, "list events without showtimes")
	}
	var bare []inventory.Event
	for rows.Next() {
		var ev inventory.Event
		if err := rows.Scan(&ev.ID, &ev.Location, &ev.TotalTickets, &ev.Price); err != nil {
			rows.Close()
			return 0, errs.Wrap(err, "scan event without showtimes")
		}
		bare = append(bare, ev)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, errs.Wrap(err, "iterate events without showtimes")
	}

	now := s.clock.Now()
	showtimes := repository.NewShowtimeRepository(tx)
	for i := range bare {
		for _, st := range randomShowtimes(&bare[i], now) {
			if err := showtimes.Insert(ctx, &st); err != nil {
				return 0, errs.Wrap(err, "backfill showtimes")
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, errs.Wrap(err, "commit migrate transaction")
	}
	return len(bare), nil
}

func (s *Seeder) alreadySeeded(ctx context.Context, tx pgx.Tx) (bool, error) {
	var v string
	err := tx.QueryRow(ctx, `SELECT v FROM meta WHERE k = 'seeded'`).Scan(&v)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, errs.Wrap(err, "read seeded flag")
	}
	return v == "1", nil
}

// randomShowtimes spreads 4-8 screening days over the next two weeks with
// 2-4 distinct start times each.
func randomShowtimes(ev *inventory.Event, now time.Time) []inventory.Showtime {
	base := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	minutes := []int{0, 15, 30, 45}

	wantDays := 4 + rand.IntN(5)
	days := map[int]struct{}{}
	for len(days) < wantDays {
		days[rand.IntN(14)] = struct{}{}
	}

	var result []inventory.Showtime
	for day := range days {
		used := map[[2]int]struct{}{}
		wanted := 2 + rand.IntN(3)
		for attempts := 0; len(used) < wanted && attempts < 20; attempts++ {
			slot := [2]int{11 + rand.IntN(12), minutes[rand.IntN(len(minutes))]}
			if _, taken := used[slot]; taken {
				continue
			}
			used[slot] = struct{}{}

			result = append(result, inventory.Showtime{
				ID:               uuid.New(),
				EventID:          ev.ID,
				StartTime:        base.AddDate(0, 0, day).Add(time.Duration(slot[0])*time.Hour + time.Duration(slot[1])*time.Minute),
				Location:         ev.Location,
				TotalTickets:     ev.TotalTickets,
				AvailableTickets: ev.TotalTickets,
				Price:            ev.Price,
				CreatedAt:        now,
			})
		}
	}
	return result
}
