package request

import (
	"time"

	"cinema-tickets/internal/usecase/commands"
)

type CreateEventRequest struct {
	Title        string    `json:"title" binding:"required"`
	Description  string    `json:"description"`
	Date         time.Time `json:"date" binding:"required"`
	Location     string    `json:"location" binding:"required"`
	TotalTickets int       `json:"total_tickets" binding:"required,min=1"`
	Price        float64   `json:"price" binding:"min=0"`
	Genre        string    `json:"genre"`
}

func (r CreateEventRequest) ToParams() commands.AddEventParams {
	return commands.AddEventParams{
		Title:        r.Title,
		Description:  r.Description,
		Date:         r.Date,
		Location:     r.Location,
		TotalTickets: r.TotalTickets,
		Price:        r.Price,
		Genre:        r.Genre,
	}
}
