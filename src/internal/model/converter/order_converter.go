package converter

import (
	"encoding/json"

	"storefront-service/src/internal/entity"
	"storefront-service/src/internal/model"

	"github.com/google/uuid"
)

func OrderToResponse(order *entity.Order) *model.OrderResponse {
	var items []entity.OrderItem
	// items column is written by us; a decode failure just yields an
	// empty list rather than failing the read path
	_ = json.Unmarshal(order.Items, &items)

	notes := ""
	if order.Notes != nil {
		notes = *order.Notes
	}

	return &model.OrderResponse{
		OrderNumber:     order.OrderNumber,
		CustomerName:    order.CustomerName,
		CustomerPhone:   order.CustomerPhone,
		DeliveryAddress: order.DeliveryAddress,
		Town:            order.Town,
		Street:          order.Street,
		Items:           items,
		Subtotal:        order.Subtotal,
		DeliveryFee:     order.DeliveryFee,
		Total:           order.Total,
		Currency:        order.Currency,
		PaymentMethod:   order.PaymentMethod,
		PaymentStatus:   order.PaymentStatus,
		Notes:           notes,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

func OrderToCreatedEvent(order *entity.Order) *model.OrderCreatedEvent {
	return &model.OrderCreatedEvent{
		ID:      order.OrderNumber,
		Message: *OrderToResponse(order),
	}
}

func OrderToStatusChangedEvent(order *entity.Order, fromStatus string) *model.OrderStatusChangedEvent {
	return &model.OrderStatusChangedEvent{
		ID:          uuid.NewString(),
		OrderNumber: order.OrderNumber,
		FromStatus:  fromStatus,
		ToStatus:    order.PaymentStatus,
	}
}
