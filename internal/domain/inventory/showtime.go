package inventory

import (
	"time"

	"github.com/google/uuid"
)

// Showtime is a scheduled instance of an Event with its own capacity and price.
// Invariant: 0 <= AvailableTickets <= TotalTickets, and AvailableTickets plus
// the quantities of all live tickets equals TotalTickets.
type Showtime struct {
	ID               uuid.UUID
	EventID          uuid.UUID
	StartTime        time.Time
	Location         string
	TotalTickets     int
	AvailableTickets int
	Price            float64
	CreatedAt        time.Time
}

// CanReserve reports whether quantity seats are still available.
func (s *Showtime) CanReserve(quantity int) bool {
	return s.AvailableTickets >= quantity
}
