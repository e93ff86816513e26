package request

import (
	"cinema-tickets/internal/usecase/commands"

	"github.com/google/uuid"
)

// PurchaseTicketRequest reserves against a specific showtime, or against the
// earliest showtime of an event when only event_id is given.
type PurchaseTicketRequest struct {
	ShowtimeID    *uuid.UUID `json:"showtime_id"`
	EventID       *uuid.UUID `json:"event_id"`
	CustomerName  string     `json:"customer_name" binding:"required"`
	CustomerEmail string     `json:"customer_email" binding:"required,email"`
	Quantity      int        `json:"quantity" binding:"required,min=1"`
	Category      string     `json:"category" binding:"required"`
}

func (r PurchaseTicketRequest) HasTarget() bool {
	return r.ShowtimeID != nil || r.EventID != nil
}

func (r PurchaseTicketRequest) ToParams() commands.ReserveTicketParams {
	return commands.ReserveTicketParams{
		ShowtimeID:    r.ShowtimeID,
		EventID:       r.EventID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		Quantity:      r.Quantity,
		Category:      r.Category,
	}
}
