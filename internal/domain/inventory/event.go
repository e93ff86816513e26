package inventory

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle      = errors.New("title must not be empty")
	ErrEmptyLocation   = errors.New("location must not be empty")
	ErrInvalidCapacity = errors.New("total tickets must be at least 1")
)

// Event is a sellable production with one or more showtimes.
// Invariant: 0 <= AvailableTickets <= TotalTickets.
type Event struct {
	ID               uuid.UUID
	Title            string
	Description      string
	Date             time.Time
	Location         string
	TotalTickets     int
	AvailableTickets int
	Price            float64
	Genre            string
	CreatedAt        time.Time
}

// NewEvent admits an event with full availability.
func NewEvent(title, description string, date time.Time, location string, totalTickets int, price float64, genre string, now time.Time) (*Event, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}
	if strings.TrimSpace(location) == "" {
		return nil, ErrEmptyLocation
	}
	if totalTickets < 1 {
		return nil, ErrInvalidCapacity
	}

	return &Event{
		ID:               uuid.New(),
		Title:            title,
		Description:      description,
		Date:             date,
		Location:         location,
		TotalTickets:     totalTickets,
		AvailableTickets: totalTickets,
		Price:            price,
		Genre:            genre,
		CreatedAt:        now,
	}, nil
}
