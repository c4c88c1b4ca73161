package converter

import (
	"encoding/json"

	"storefront-service/src/internal/entity"
	"storefront-service/src/internal/model"
)

func DishOptionToResponse(option *entity.DishOption) *model.DishOptionResponse {
	return &model.DishOptionResponse{
		RestaurantID:   option.RestaurantID,
		RestaurantName: option.RestaurantName,
		Rating:         option.Rating,
		Price:          option.Price,
		Currency:       option.Currency,
		Available:      option.IsAvailable && option.RestaurantOpen,
	}
}

func DishComplementToResponse(option *entity.DishComplementOption) *model.DishComplementResponse {
	return &model.DishComplementResponse{
		ComplementID: option.ComplementID,
		Name:         option.Name,
		Price:        option.Price,
		IsRequired:   option.IsRequired,
		MaxQuantity:  option.MaxQuantity,
	}
}

func PaymentMethodToResponse(method *entity.PaymentMethod) *model.PaymentMethodResponse {
	response := &model.PaymentMethodResponse{
		Code:     method.Code,
		Label:    method.Label,
		Category: method.Category,
	}
	if method.Category == entity.PaymentCategoryOffline && len(method.PaymentDetails) > 0 {
		var details []model.OfflineInstruction
		if err := json.Unmarshal(method.PaymentDetails, &details); err == nil {
			response.PaymentInstructions = details
		}
	}
	return response
}
