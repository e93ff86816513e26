//go:build unit

package pricing_test

import (
	"testing"

	"cinema-tickets/internal/domain/pricing"
	"cinema-tickets/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	resolver := pricing.NewCategoryResolver()

	cases := []struct {
		name      string
		category  string
		basePrice float64
		quantity  int
		want      float64
	}{
		{name: "adult pays full price", category: "adult", basePrice: 100.0, quantity: 2, want: 200.0},
		{name: "student pays 80 percent", category: "Student", basePrice: 100.0, quantity: 2, want: 160.0},
		{name: "child pays half price", category: "CHILD", basePrice: 100.0, quantity: 3, want: 150.0},
		{name: "single adult ticket", category: "ADULT", basePrice: 35.0, quantity: 1, want: 35.0},
		{name: "student rounding-free total", category: "student", basePrice: 25.0, quantity: 4, want: 80.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rule, err := resolver.Resolve(tc.category)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, rule.ComputeTotal(tc.basePrice, tc.quantity), 1e-9)
		})
	}

	t.Run("unknown category is rejected", func(t *testing.T) {
		for _, category := range []string{"vip", "", "adultt", "senior"} {
			rule, err := resolver.Resolve(category)
			assert.Nil(t, rule)
			assert.ErrorIs(t, err, errs.ErrInvalidCategory)
		}
	})
}
