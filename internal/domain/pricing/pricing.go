package pricing

import (
	"strings"

	"cinema-tickets/internal/pkg/errs"
)

// Recognized ticket categories. Matching is case-insensitive.
const (
	CategoryAdult   = "adult"
	CategoryStudent = "student"
	CategoryChild   = "child"
)

// Rule computes the total price for a quantity of tickets at a base price.
// Implementations are pure and hold no state.
type Rule interface {
	ComputeTotal(basePrice float64, quantity int) float64
}

type Resolver interface {
	Resolve(category string) (Rule, error)
}

type CategoryResolver struct{}

func NewCategoryResolver() *CategoryResolver {
	return &CategoryResolver{}
}

func (r *CategoryResolver) Resolve(category string) (Rule, error) {
	switch strings.ToLower(category) {
	case CategoryAdult:
		return AdultRule{}, nil
	case CategoryStudent:
		return StudentRule{}, nil
	case CategoryChild:
		return ChildRule{}, nil
	default:
		return nil, errs.ErrInvalidCategory
	}
}

type AdultRule struct{}

func (AdultRule) ComputeTotal(basePrice float64, quantity int) float64 {
	return basePrice * float64(quantity)
}

type StudentRule struct{}

func (StudentRule) ComputeTotal(basePrice float64, quantity int) float64 {
	return basePrice * 0.8 * float64(quantity)
}

type ChildRule struct{}

func (ChildRule) ComputeTotal(basePrice float64, quantity int) float64 {
	return basePrice * 0.5 * float64(quantity)
}
