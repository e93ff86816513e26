//go:build unit || e2e

package builder

import (
	"time"

	"cinema-tickets/internal/domain/inventory"
	reqdto "cinema-tickets/internal/handler/dto/request"
	"cinema-tickets/internal/usecase/queries"

	"github.com/google/uuid"
)

type EventBuilder struct {
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

func NewEventBuilder() *EventBuilder {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	return &EventBuilder{
		ID:               uuid.New(),
		Title:            "Hamlet",
		Description:      "Shakespeare's tragedy",
		Date:             now.AddDate(0, 0, 7),
		Location:         "Teatrul National Bucuresti",
		TotalTickets:     100,
		AvailableTickets: 100,
		Price:            75,
		Genre:            "drama",
		CreatedAt:        now,
	}
}

func (b *EventBuilder) With(mutate func(*EventBuilder)) *EventBuilder {
	mutate(b)
	return b
}

func (b *EventBuilder) Build() inventory.Event {
	return inventory.Event{
		ID:               b.ID,
		Title:            b.Title,
		Description:      b.Description,
		Date:             b.Date,
		Location:         b.Location,
		TotalTickets:     b.TotalTickets,
		AvailableTickets: b.AvailableTickets,
		Price:            b.Price,
		Genre:            b.Genre,
		CreatedAt:        b.CreatedAt,
	}
}

func (b *EventBuilder) BuildCreateRequestDTO() reqdto.CreateEventRequest {
	return reqdto.CreateEventRequest{
		Title:        b.Title,
		Description:  b.Description,
		Date:         b.Date,
		Location:     b.Location,
		TotalTickets: b.TotalTickets,
		Price:        b.Price,
		Genre:        b.Genre,
	}
}

func (b *EventBuilder) BuildView() queries.EventView {
	return queries.EventView{
		ID:               b.ID,
		Title:            b.Title,
		Description:      b.Description,
		Date:             b.Date,
		Location:         b.Location,
		Genre:            b.Genre,
		TotalTickets:     b.TotalTickets,
		AvailableTickets: b.AvailableTickets,
		Price:            b.Price,
	}
}

type ShowtimeBuilder struct {
	ID               uuid.UUID
	EventID          uuid.UUID
	StartTime        time.Time
	Location         string
	TotalTickets     int
	AvailableTickets int
	Price            float64
	CreatedAt        time.Time
}

func NewShowtimeBuilder(eventID uuid.UUID) *ShowtimeBuilder {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	return &ShowtimeBuilder{
		ID:               uuid.New(),
		EventID:          eventID,
		StartTime:        now.AddDate(0, 0, 7).Add(6 * time.Hour),
		Location:         "Teatrul National Bucuresti",
		TotalTickets:     100,
		AvailableTickets: 100,
		Price:            75,
		CreatedAt:        now,
	}
}

func (b *ShowtimeBuilder) With(mutate func(*ShowtimeBuilder)) *ShowtimeBuilder {
	mutate(b)
	return b
}

func (b *ShowtimeBuilder) Build() inventory.Showtime {
	return inventory.Showtime{
		ID:               b.ID,
		EventID:          b.EventID,
		StartTime:        b.StartTime,
		Location:         b.Location,
		TotalTickets:     b.TotalTickets,
		AvailableTickets: b.AvailableTickets,
		Price:            b.Price,
		CreatedAt:        b.CreatedAt,
	}
}

func (b *ShowtimeBuilder) BuildView(title, genre, description string) queries.ShowtimeView {
	return queries.ShowtimeView{
		ID:               b.ID,
		EventID:          b.EventID,
		Title:            title,
		Genre:            genre,
		Description:      description,
		Location:         b.Location,
		StartTime:        b.StartTime,
		TotalTickets:     b.TotalTickets,
		AvailableTickets: b.AvailableTickets,
		Price:            b.Price,
	}
}

type TicketBuilder struct {
	ID            uuid.UUID
	ShowtimeID    uuid.UUID
	CustomerName  string
	CustomerEmail string
	Quantity      int
	Category      string
	TotalPrice    float64
	CreatedAt     time.Time
}

func NewTicketBuilder(showtimeID uuid.UUID) *TicketBuilder {
	return &TicketBuilder{
		ID:            uuid.New(),
		ShowtimeID:    showtimeID,
		CustomerName:  "Ana Popescu",
		CustomerEmail: "ana.popescu@example.com",
		Quantity:      2,
		Category:      "adult",
		TotalPrice:    150,
		CreatedAt:     time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func (b *TicketBuilder) With(mutate func(*TicketBuilder)) *TicketBuilder {
	mutate(b)
	return b
}

func (b *TicketBuilder) Build() inventory.Ticket {
	return inventory.Ticket{
		ID:            b.ID,
		ShowtimeID:    b.ShowtimeID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		Quantity:      b.Quantity,
		Category:      b.Category,
		TotalPrice:    b.TotalPrice,
		IsPaid:        true,
		CreatedAt:     b.CreatedAt,
	}
}

func (b *TicketBuilder) BuildPurchaseRequestDTO() reqdto.PurchaseTicketRequest {
	showtimeID := b.ShowtimeID
	return reqdto.PurchaseTicketRequest{
		ShowtimeID:    &showtimeID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		Quantity:      b.Quantity,
		Category:      b.Category,
	}
}

func (b *TicketBuilder) BuildView() queries.TicketView {
	return queries.TicketView{
		ID:            b.ID,
		ShowtimeID:    b.ShowtimeID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		Quantity:      b.Quantity,
		Category:      b.Category,
		TotalPrice:    b.TotalPrice,
		IsPaid:        true,
	}
}
