package model

import (
	"fmt"
	"sort"
	"strings"
)

// SelectedComplement is a complement choice attached to a cart line,
// price snapshotted at add time.
type SelectedComplement struct {
	ComplementID uint64 `json:"complementId" validate:"required"`
	Name         string `json:"name"`
	Price        int64  `json:"price"`
	Quantity     int    `json:"quantity" validate:"required,min=1"`
}

// CartLine is one cart entry. Identity is (dish, restaurant, complement
// selection): the same dish from two restaurants, or with different
// add-ons, are distinct lines. UnitPrice is the dish option price alone;
// complements are billed once per line, not per dish unit.
type CartLine struct {
	LineID         string               `json:"lineId"`
	DishID         uint64               `json:"dishId"`
	DishName       string               `json:"dishName"`
	RestaurantID   uint64               `json:"restaurantId"`
	RestaurantName string               `json:"restaurantName"`
	UnitPrice      int64                `json:"unitPrice"`
	Quantity       int                  `json:"quantity"`
	Complements    []SelectedComplement `json:"complements,omitempty"`
}

type Cart struct {
	SessionID string     `json:"sessionId"`
	Lines     []CartLine `json:"lines"`
}

// IdentityKey serializes the line identity canonically: complements are
// sorted by id so selection order never splits a line.
func (l *CartLine) IdentityKey() string {
	complements := make([]SelectedComplement, len(l.Complements))
	copy(complements, l.Complements)
	sort.Slice(complements, func(i, j int) bool {
		return complements[i].ComplementID < complements[j].ComplementID
	})

	parts := make([]string, 0, len(complements)+1)
	parts = append(parts, fmt.Sprintf("%d:%d", l.DishID, l.RestaurantID))
	for _, c := range complements {
		parts = append(parts, fmt.Sprintf("c%d x%d", c.ComplementID, c.Quantity))
	}
	return strings.Join(parts, "|")
}

// Total is the line amount: dish price times quantity, plus each
// complement's price times its own quantity, added once.
func (l *CartLine) Total() int64 {
	total := l.UnitPrice * int64(l.Quantity)
	for _, c := range l.Complements {
		total += c.Price * int64(c.Quantity)
	}
	return total
}

// Subtotal sums line totals over the whole cart.
func (c *Cart) Subtotal() int64 {
	var total int64
	for _, line := range c.Lines {
		total += line.Total()
	}
	return total
}

type AddToCartRequest struct {
	SessionID    string               `json:"-" validate:"required"`
	DishID       uint64               `json:"dishId" validate:"required"`
	RestaurantID uint64               `json:"restaurantId" validate:"required"`
	Quantity     int                  `json:"quantity" validate:"required,min=1"`
	Complements  []SelectedComplement `json:"complements" validate:"dive"`
}

type UpdateQuantityRequest struct {
	SessionID    string `json:"-" validate:"required"`
	LineID       string `json:"lineId" validate:"required"`
	RestaurantID uint64 `json:"restaurantId" validate:"required"`
	Quantity     int    `json:"quantity"`
}

type GetCartRequest struct {
	SessionID string `json:"-" validate:"required"`
}

type CartResponse struct {
	SessionID string     `json:"sessionId"`
	Lines     []CartLine `json:"lines"`
	Subtotal  int64      `json:"subtotal"`
	Currency  string     `json:"currency"`
}
