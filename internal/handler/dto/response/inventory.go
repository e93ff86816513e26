package response

import (
	"time"

	"cinema-tickets/internal/usecase/queries"

	"github.com/google/uuid"
)

type EventResponse struct {
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

func FromEventView(v queries.EventView) EventResponse {
	return EventResponse(v)
}

type ShowtimeResponse struct {
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

func FromShowtimeView(v queries.ShowtimeView) ShowtimeResponse {
	return ShowtimeResponse(v)
}

type TicketResponse struct {
	ID            uuid.UUID `json:"id"`
	ShowtimeID    uuid.UUID `json:"showtime_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	Quantity      int       `json:"quantity"`
	Category      string    `json:"category"`
	TotalPrice    float64   `json:"total_price"`
	IsPaid        bool      `json:"is_paid"`
}

func FromTicketView(v queries.TicketView) TicketResponse {
	return TicketResponse(v)
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type MigrationResponse struct {
	Message     string `json:"message"`
	EventsAdded int    `json:"events_added"`
}
