package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type EventView struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Date             time.Time `json:"date"`
	Location         string    `json:"location"`
	Genre            string    `json:"genre"`
	TotalTickets     int       `json:"total_tickets"`
	AvailableTickets int       `json:"available_tickets"`
	Price            float64   `json:"price"`
}

// ShowtimeView joins a showtime with its owning event's descriptive fields.
type ShowtimeView struct {
	ID               uuid.UUID `json:"id"`
	EventID          uuid.UUID `json:"event_id"`
	Title            string    `json:"title"`
	Genre            string    `json:"genre"`
	Description      string    `json:"description"`
	Location         string    `json:"location"`
	StartTime        time.Time `json:"start_time"`
	TotalTickets     int       `json:"total_tickets"`
	AvailableTickets int       `json:"available_tickets"`
	Price            float64   `json:"price"`
}

type TicketView struct {
	ID            uuid.UUID `json:"id"`
	ShowtimeID    uuid.UUID `json:"showtime_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	Quantity      int       `json:"quantity"`
	Category      string    `json:"category"`
	TotalPrice    float64   `json:"total_price"`
	IsPaid        bool      `json:"is_paid"`
}
