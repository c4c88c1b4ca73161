package model

type OrderCreatedEvent struct {
	ID      string        `json:"id,omitempty"`
	Message OrderResponse `json:"message,omitempty"`
}

func (e *OrderCreatedEvent) GetId() string {
	return e.ID
}

type OrderStatusChangedEvent struct {
	ID          string `json:"id,omitempty"`
	OrderNumber string `json:"order_number"`
	FromStatus  string `json:"from_status"`
	ToStatus    string `json:"to_status"`
}

func (e *OrderStatusChangedEvent) GetId() string {
	return e.ID
}
