package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartLineIdentityKey(t *testing.T) {
	tests := []struct {
		name     string
		line     CartLine
		expected string
	}{
		{
			name:     "no_complements",
			line:     CartLine{DishID: 12, RestaurantID: 3},
			expected: "12:3",
		},
		{
			name: "complements_sorted_by_id",
			line: CartLine{
				DishID:       12,
				RestaurantID: 3,
				Complements: []SelectedComplement{
					{ComplementID: 9, Quantity: 1},
					{ComplementID: 2, Quantity: 2},
				},
			},
			expected: "12:3|c2 x2|c9 x1",
		},
		{
			name: "selection_order_does_not_matter",
			line: CartLine{
				DishID:       12,
				RestaurantID: 3,
				Complements: []SelectedComplement{
					{ComplementID: 2, Quantity: 2},
					{ComplementID: 9, Quantity: 1},
				},
			},
			expected: "12:3|c2 x2|c9 x1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.line.IdentityKey())
		})
	}
}

func TestCartLineIdentityDistinguishesRestaurants(t *testing.T) {
	a := CartLine{DishID: 12, RestaurantID: 3}
	b := CartLine{DishID: 12, RestaurantID: 4}
	assert.NotEqual(t, a.IdentityKey(), b.IdentityKey())
}

func TestCartLineIdentityDistinguishesComplementQuantities(t *testing.T) {
	a := CartLine{DishID: 12, RestaurantID: 3, Complements: []SelectedComplement{{ComplementID: 2, Quantity: 1}}}
	b := CartLine{DishID: 12, RestaurantID: 3, Complements: []SelectedComplement{{ComplementID: 2, Quantity: 2}}}
	assert.NotEqual(t, a.IdentityKey(), b.IdentityKey())
}

func TestCartLineTotalAddsComplementsOnce(t *testing.T) {
	line := CartLine{
		UnitPrice: 2000,
		Quantity:  2,
		Complements: []SelectedComplement{
			{ComplementID: 7, Price: 500, Quantity: 1},
		},
	}
	// 2 x 2000 + 1 x 500, regardless of the dish quantity
	assert.Equal(t, int64(4500), line.Total())
}

func TestCartSubtotal(t *testing.T) {
	cart := Cart{
		SessionID: "s1",
		Lines: []CartLine{
			{UnitPrice: 2500, Quantity: 2},
			{UnitPrice: 1000, Quantity: 1, Complements: []SelectedComplement{{ComplementID: 2, Price: 200, Quantity: 2}}},
		},
	}
	assert.Equal(t, int64(6400), cart.Subtotal())

	empty := Cart{SessionID: "s2"}
	assert.Equal(t, int64(0), empty.Subtotal())
}
