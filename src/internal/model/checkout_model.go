package model

type CheckoutRequest struct {
	SessionID       string `json:"-" validate:"required"`
	CustomerName    string `json:"customerName" validate:"required,max=100"`
	CustomerPhone   string `json:"customerPhone" validate:"required,max=20"`
	DeliveryAddress string `json:"deliveryAddress" validate:"required,max=255"`
	Town            string `json:"town" validate:"required,max=100"`
	Street          string `json:"street" validate:"required,max=100"`
	PaymentMethod   string `json:"paymentMethod" validate:"required,max=50"`
	Notes           string `json:"notes" validate:"max=500"`
	// ClientTotal is what the storefront displayed; advisory only, the
	// server recomputes and rejects on mismatch.
	ClientTotal int64 `json:"clientTotal" validate:"required,min=1"`
}

type CheckoutResponse struct {
	OrderNumber         string               `json:"orderNumber"`
	Subtotal            int64                `json:"subtotal"`
	DeliveryFee         int64                `json:"deliveryFee"`
	Total               int64                `json:"total"`
	Currency            string               `json:"currency"`
	PaymentStatus       string               `json:"paymentStatus"`
	RedirectURL         string               `json:"redirectUrl,omitempty"`
	PaymentInstructions []OfflineInstruction `json:"paymentInstructions,omitempty"`
}

type OfflineInstruction struct {
	Provider     string `json:"provider"`
	Phone        string `json:"phone"`
	AccountName  string `json:"accountName"`
	Instructions string `json:"instructions"`
}

type OrderStatusRequest struct {
	OrderNumber string `json:"-" validate:"required"`
}
