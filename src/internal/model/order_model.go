package model

import (
	"time"

	"storefront-service/src/internal/entity"
)

type OrderResponse struct {
	OrderNumber     string             `json:"orderNumber"`
	CustomerName    string             `json:"customerName"`
	CustomerPhone   string             `json:"customerPhone"`
	DeliveryAddress string             `json:"deliveryAddress"`
	Town            string             `json:"town"`
	Street          string             `json:"street"`
	Items           []entity.OrderItem `json:"items"`
	Subtotal        int64              `json:"subtotal"`
	DeliveryFee     int64              `json:"deliveryFee"`
	Total           int64              `json:"total"`
	Currency        string             `json:"currency"`
	PaymentMethod   string             `json:"paymentMethod"`
	PaymentStatus   string             `json:"paymentStatus"`
	Notes           string             `json:"notes,omitempty"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

type ListOrdersRequest struct {
	PaymentStatus string `json:"-" validate:"omitempty,oneof=pending processing completed failed cancelled"`
	Limit         int    `json:"-" validate:"omitempty,min=1,max=200"`
}

type UpdateOrderStatusRequest struct {
	OrderNumber   string `json:"-" validate:"required"`
	PaymentStatus string `json:"paymentStatus" validate:"required,oneof=pending processing completed failed cancelled"`
}
