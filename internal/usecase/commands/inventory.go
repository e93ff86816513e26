package commands

import (
	"context"
	"strings"
	"time"

	"cinema-tickets/internal/domain/inventory"
	"cinema-tickets/internal/domain/pricing"
	"cinema-tickets/internal/infra"
	"cinema-tickets/internal/pkg/clock"
	"cinema-tickets/internal/pkg/errs"
	"cinema-tickets/internal/usecase/shared"

	"github.com/google/uuid"
)

type AddEventParams struct {
	Title        string
	Description  string
	Date         time.Time
	Location     string
	TotalTickets int
	Price        float64
	Genre        string
}

type ReserveTicketParams struct {
	// ShowtimeID targets a specific showtime. When nil, EventID must be set
	// and the event's earliest showtime is reserved.
	ShowtimeID    *uuid.UUID
	EventID       *uuid.UUID
	CustomerName  string
	CustomerEmail string
	Quantity      int
	Category      string
}

// Inventory implements the inventory-mutating operations. Every public
// operation runs as one atomic unit against the store.
type Inventory struct {
	uow      shared.UnitOfWork
	resolver pricing.Resolver
	clock    clock.Clock
}

func NewInventory(uow shared.UnitOfWork, resolver pricing.Resolver, clk clock.Clock) *Inventory {
	return &Inventory{
		uow:      uow,
		resolver: resolver,
		clock:    clk,
	}
}

func (s *Inventory) AddEvent(ctx context.Context, p AddEventParams) (uuid.UUID, error) {
	ev, err := inventory.NewEvent(p.Title, p.Description, p.Date, p.Location, p.TotalTickets, p.Price, p.Genre, s.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if insertErr := tx.Events().Insert(ctx, ev); insertErr != nil {
			return errs.Mark(insertErr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return ev.ID, nil
}

func (s *Inventory) RemoveEvent(ctx context.Context, eventID uuid.UUID) error {
	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return s.removeEvent(ctx, tx, eventID)
	})
}

func (s *Inventory) ReserveTicket(ctx context.Context, p ReserveTicketParams) (uuid.UUID, error) {
	var ticketID uuid.UUID
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		showtime, err := s.targetShowtime(ctx, tx, p)
		if err != nil {
			return err
		}
		id, err := s.reserveTicket(ctx, tx, showtime.ID, p.CustomerName, p.CustomerEmail, p.Quantity, p.Category)
		if err != nil {
			return err
		}
		ticketID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return ticketID, nil
}

func (s *Inventory) CancelTicket(ctx context.Context, ticketID uuid.UUID) error {
	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ticket, err := tx.Tickets().FindByID(ctx, ticketID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrTicketNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return s.cancelTicket(ctx, tx, ticket)
	})
}

// removeEvent deletes the event with its showtimes and tickets, dependents
// first so no reader observes an orphaned child row.
func (s *Inventory) removeEvent(ctx context.Context, tx shared.Tx, eventID uuid.UUID) error {
	if err := tx.Tickets().DeleteByEvent(ctx, eventID); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := tx.Showtimes().DeleteByEvent(ctx, eventID); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := tx.Events().Delete(ctx, eventID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrEventNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

// reserveTicket checks quantity, showtime existence, availability and
// category in that order, then inserts the ticket and decrements
// availability inside the caller's transaction.
func (s *Inventory) reserveTicket(ctx context.Context, tx shared.Tx, showtimeID uuid.UUID, name, email string, quantity int, category string) (uuid.UUID, error) {
	if quantity < 1 {
		return uuid.Nil, errs.ErrInvalidQuantity
	}

	showtime, err := tx.Showtimes().FindByID(ctx, showtimeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.ErrShowtimeNotFound
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !showtime.CanReserve(quantity) {
		return uuid.Nil, errs.ErrInsufficientAvailability
	}

	// Pricing resolves last: a missing or sold-out showtime outranks a bad
	// category in the failure order.
	rule, err := s.resolver.Resolve(category)
	if err != nil {
		return uuid.Nil, err
	}

	ticket := &inventory.Ticket{
		ID:            uuid.New(),
		ShowtimeID:    showtime.ID,
		CustomerName:  name,
		CustomerEmail: email,
		Quantity:      quantity,
		Category:      strings.ToLower(category),
		TotalPrice:    rule.ComputeTotal(showtime.Price, quantity),
		IsPaid:        true,
		CreatedAt:     s.clock.Now(),
	}
	if err := tx.Tickets().Insert(ctx, ticket); err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := tx.Showtimes().AdjustAvailability(ctx, showtime.ID, -quantity); err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return ticket.ID, nil
}

// cancelTicket restores the ticket's quantity to the showtime before deleting
// the ticket row.
func (s *Inventory) cancelTicket(ctx context.Context, tx shared.Tx, ticket *inventory.Ticket) error {
	if err := tx.Showtimes().AdjustAvailability(ctx, ticket.ShowtimeID, ticket.Quantity); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := tx.Tickets().Delete(ctx, ticket.ID); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (s *Inventory) targetShowtime(ctx context.Context, tx shared.Tx, p ReserveTicketParams) (*inventory.Showtime, error) {
	switch {
	case p.ShowtimeID != nil:
		showtime, err := tx.Showtimes().FindByID(ctx, *p.ShowtimeID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.ErrShowtimeNotFound
			}
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return showtime, nil
	case p.EventID != nil:
		showtime, err := tx.Showtimes().FirstByEvent(ctx, *p.EventID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.ErrShowtimeNotFound
			}
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return showtime, nil
	default:
		return nil, errs.ErrShowtimeNotFound
	}
}
