package model

type ListRestaurantsRequest struct {
	Town string `json:"-" validate:"required,max=100"`
}

type ListDishesRequest struct {
	RestaurantID uint64 `json:"-" validate:"omitempty"`
	Category     string `json:"-" validate:"omitempty,max=100"`
}

type DishOptionsRequest struct {
	DishID uint64 `json:"-" validate:"required"`
}

type DishOptionResponse struct {
	RestaurantID   uint64  `json:"restaurantId"`
	RestaurantName string  `json:"restaurantName"`
	Rating         float64 `json:"rating"`
	Price          int64   `json:"price"`
	Currency       string  `json:"currency"`
	Available      bool    `json:"available"`
}

type DishComplementResponse struct {
	ComplementID uint64 `json:"complementId"`
	Name         string `json:"name"`
	Price        int64  `json:"price"`
	IsRequired   bool   `json:"isRequired"`
	MaxQuantity  int    `json:"maxQuantity"`
}

type PaymentMethodResponse struct {
	Code                string               `json:"code"`
	Label               string               `json:"label"`
	Category            string               `json:"category"`
	PaymentInstructions []OfflineInstruction `json:"paymentInstructions,omitempty"`
}
