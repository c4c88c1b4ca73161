package entity

import "time"

const (
	PaymentStatusPending    = "pending"
	PaymentStatusProcessing = "processing"
	PaymentStatusCompleted  = "completed"
	PaymentStatusFailed     = "failed"
	PaymentStatusCancelled  = "cancelled"
)

type Order struct {
	ID               uint64    `db:"id"`
	OrderNumber      string    `db:"order_number"`
	CustomerName     string    `db:"customer_name"`
	CustomerPhone    string    `db:"customer_phone"`
	DeliveryAddress  string    `db:"delivery_address"`
	Town             string    `db:"town"`
	Street           string    `db:"street"`
	Items            []byte    `db:"items"` // JSON snapshot of order lines
	Subtotal         int64     `db:"subtotal"`
	DeliveryFee      int64     `db:"delivery_fee"`
	Total            int64     `db:"total"`
	Currency         string    `db:"currency"`
	PaymentMethod    string    `db:"payment_method"`
	PaymentStatus    string    `db:"payment_status"`
	PaymentReference *string   `db:"payment_reference"`
	PaymentSessionID *string   `db:"payment_session_id"`
	Notes            *string   `db:"notes"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// OrderItem is the element shape of the items JSON column. Prices are
// snapshots taken at checkout time, complement prices already folded in.
type OrderItem struct {
	DishID       uint64                `json:"dish_id"`
	Name         string                `json:"name"`
	RestaurantID uint64                `json:"restaurant_id"`
	Restaurant   string                `json:"restaurant"`
	UnitPrice    int64                 `json:"price"`
	Quantity     int                   `json:"quantity"`
	Complements  []OrderItemComplement `json:"complements,omitempty"`
}

type OrderItemComplement struct {
	ComplementID uint64 `json:"complement_id"`
	Name         string `json:"name"`
	Price        int64  `json:"price"`
	Quantity     int    `json:"quantity"`
}

type OrderFilter struct {
	OrderNumber   *string
	PaymentStatus *string
}
