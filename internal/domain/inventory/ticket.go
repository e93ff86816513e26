package inventory

import (
	"time"

	"github.com/google/uuid"
)

// Ticket is a customer's paid reservation against a showtime.
type Ticket struct {
	ID            uuid.UUID
	ShowtimeID    uuid.UUID
	CustomerName  string
	CustomerEmail string
	Quantity      int
	Category      string
	TotalPrice    float64
	IsPaid        bool
	CreatedAt     time.Time
}
