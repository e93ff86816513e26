//go:build unit

// Package memstore provides an in-memory UnitOfWork for command and history
// tests. It mirrors the Postgres store's behavior where commands depend on
// it: inserts preserve the given ID, lookups report NOT_FOUND through
// repository error kinds, and availability adjustments are bounds-checked
// the way the showtimes check constraint is.
package memstore

import (
	"context"
	"sort"
	"sync"

	"cinema-tickets/internal/domain/inventory"
	"cinema-tickets/internal/infra"
	"cinema-tickets/internal/usecase/shared"

	"github.com/google/uuid"
)

type Store struct {
	mu        sync.Mutex
	events    map[uuid.UUID]inventory.Event
	showtimes map[uuid.UUID]inventory.Showtime
	tickets   map[uuid.UUID]inventory.Ticket

	// FailNext makes the next Within call fail after fn runs, simulating a
	// commit error. The mutations of that call are rolled back.
	FailNext error
}

func New() *Store {
	return &Store{
		events:    make(map[uuid.UUID]inventory.Event),
		showtimes: make(map[uuid.UUID]inventory.Showtime),
		tickets:   make(map[uuid.UUID]inventory.Ticket),
	}
}

var _ shared.UnitOfWork = (*Store)(nil)

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{
		events:    copyMap(s.events),
		showtimes: copyMap(s.showtimes),
		tickets:   copyMap(s.tickets),
	}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := s.FailNext; err != nil {
		s.FailNext = nil
		return err
	}

	s.events = tx.events
	s.showtimes = tx.showtimes
	s.tickets = tx.tickets
	return nil
}

// Seed inserts rows directly, bypassing the transactional path.
func (s *Store) Seed(events []inventory.Event, showtimes []inventory.Showtime, tickets []inventory.Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ev := range events {
		s.events[ev.ID] = ev
	}
	for _, st := range showtimes {
		s.showtimes[st.ID] = st
	}
	for _, t := range tickets {
		s.tickets[t.ID] = t
	}
}

func (s *Store) Event(id uuid.UUID) (inventory.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ev, ok := s.events[id]
	return ev, ok
}

func (s *Store) Showtime(id uuid.UUID) (inventory.Showtime, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.showtimes[id]
	return st, ok
}

func (s *Store) Ticket(id uuid.UUID) (inventory.Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tickets[id]
	return t, ok
}

func (s *Store) TicketsByShowtime(showtimeID uuid.UUID) []inventory.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	var list []inventory.Ticket
	for _, t := range s.tickets {
		if t.ShowtimeID == showtimeID {
			list = append(list, t)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return list
}

func (s *Store) Counts() (events, showtimes, tickets int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events), len(s.showtimes), len(s.tickets)
}

func copyMap[V any](src map[uuid.UUID]V) map[uuid.UUID]V {
	dst := make(map[uuid.UUID]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

type memTx struct {
	events    map[uuid.UUID]inventory.Event
	showtimes map[uuid.UUID]inventory.Showtime
	tickets   map[uuid.UUID]inventory.Ticket
}

func (t *memTx) Events() shared.EventRepository       { return eventRepo{t} }
func (t *memTx) Showtimes() shared.ShowtimeRepository { return showtimeRepo{t} }
func (t *memTx) Tickets() shared.TicketRepository     { return ticketRepo{t} }

func notFound(msg string) error {
	return infra.NewRepoErr(infra.KindNotFound, msg, nil)
}

type eventRepo struct{ tx *memTx }

func (r eventRepo) FindByID(_ context.Context, id uuid.UUID) (*inventory.Event, error) {
	ev, ok := r.tx.events[id]
	if !ok {
		return nil, notFound("event not found")
	}
	return &ev, nil
}

func (r eventRepo) Insert(_ context.Context, ev *inventory.Event) error {
	if _, ok := r.tx.events[ev.ID]; ok {
		return infra.NewRepoErr(infra.KindDuplicateKey, "event already exists", nil)
	}
	r.tx.events[ev.ID] = *ev
	return nil
}

func (r eventRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.tx.events[id]; !ok {
		return notFound("event not found")
	}
	delete(r.tx.events, id)
	return nil
}

type showtimeRepo struct{ tx *memTx }

func (r showtimeRepo) FindByID(_ context.Context, id uuid.UUID) (*inventory.Showtime, error) {
	st, ok := r.tx.showtimes[id]
	if !ok {
		return nil, notFound("showtime not found")
	}
	return &st, nil
}

func (r showtimeRepo) FirstByEvent(_ context.Context, eventID uuid.UUID) (*inventory.Showtime, error) {
	list := r.byEvent(eventID)
	if len(list) == 0 {
		return nil, notFound("showtime not found")
	}
	return &list[0], nil
}

func (r showtimeRepo) ListByEvent(_ context.Context, eventID uuid.UUID) ([]inventory.Showtime, error) {
	return r.byEvent(eventID), nil
}

func (r showtimeRepo) byEvent(eventID uuid.UUID) []inventory.Showtime {
	var list []inventory.Showtime
	for _, st := range r.tx.showtimes {
		if st.EventID == eventID {
			list = append(list, st)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].StartTime.Before(list[j].StartTime) })
	return list
}

func (r showtimeRepo) Insert(_ context.Context, st *inventory.Showtime) error {
	if _, ok := r.tx.showtimes[st.ID]; ok {
		return infra.NewRepoErr(infra.KindDuplicateKey, "showtime already exists", nil)
	}
	if _, ok := r.tx.events[st.EventID]; !ok {
		return infra.NewRepoErr(infra.KindForeignKeyViolated, "event does not exist", nil)
	}
	r.tx.showtimes[st.ID] = *st
	return nil
}

func (r showtimeRepo) DeleteByEvent(_ context.Context, eventID uuid.UUID) error {
	for id, st := range r.tx.showtimes {
		if st.EventID == eventID {
			delete(r.tx.showtimes, id)
		}
	}
	return nil
}

func (r showtimeRepo) AdjustAvailability(_ context.Context, id uuid.UUID, delta int) error {
	st, ok := r.tx.showtimes[id]
	if !ok {
		return notFound("showtime not found")
	}
	next := st.AvailableTickets + delta
	if next < 0 || next > st.TotalTickets {
		return infra.NewRepoErr(infra.KindCheckViolated, "availability out of range", nil)
	}
	st.AvailableTickets = next
	r.tx.showtimes[id] = st
	return nil
}

type ticketRepo struct{ tx *memTx }

func (r ticketRepo) FindByID(_ context.Context, id uuid.UUID) (*inventory.Ticket, error) {
	t, ok := r.tx.tickets[id]
	if !ok {
		return nil, notFound("ticket not found")
	}
	return &t, nil
}

func (r ticketRepo) ListByEvent(_ context.Context, eventID uuid.UUID) ([]inventory.Ticket, error) {
	showtimeIDs := make(map[uuid.UUID]struct{})
	for id, st := range r.tx.showtimes {
		if st.EventID == eventID {
			showtimeIDs[id] = struct{}{}
		}
	}
	var list []inventory.Ticket
	for _, t := range r.tx.tickets {
		if _, ok := showtimeIDs[t.ShowtimeID]; ok {
			list = append(list, t)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return list, nil
}

func (r ticketRepo) Insert(_ context.Context, t *inventory.Ticket) error {
	if _, ok := r.tx.tickets[t.ID]; ok {
		return infra.NewRepoErr(infra.KindDuplicateKey, "ticket already exists", nil)
	}
	if _, ok := r.tx.showtimes[t.ShowtimeID]; !ok {
		return infra.NewRepoErr(infra.KindForeignKeyViolated, "showtime does not exist", nil)
	}
	r.tx.tickets[t.ID] = *t
	return nil
}

func (r ticketRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.tx.tickets[id]; !ok {
		return notFound("ticket not found")
	}
	delete(r.tx.tickets, id)
	return nil
}

func (r ticketRepo) DeleteByEvent(_ context.Context, eventID uuid.UUID) error {
	showtimeIDs := make(map[uuid.UUID]struct{})
	for id, st := range r.tx.showtimes {
		if st.EventID == eventID {
			showtimeIDs[id] = struct{}{}
		}
	}
	for id, t := range r.tx.tickets {
		if _, ok := showtimeIDs[t.ShowtimeID]; ok {
			delete(r.tx.tickets, id)
		}
	}
	return nil
}
