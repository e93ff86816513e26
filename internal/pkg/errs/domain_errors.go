package errs

import "errors"

// Domain-specific sentinel errors surfaced by the inventory usecase layer
var (
	// Lookup errors
	ErrEventNotFound    = errors.New("event not found")
	ErrShowtimeNotFound = errors.New("showtime not found")
	ErrTicketNotFound   = errors.New("ticket not found")

	// Reservation errors
	ErrInsufficientAvailability = errors.New("not enough tickets available")
	ErrInvalidQuantity          = errors.New("quantity must be at least 1")
	ErrInvalidCategory          = errors.New("invalid ticket category")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
