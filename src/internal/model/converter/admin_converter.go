package converter

import (
	"database/sql"
	"encoding/json"

	"storefront-service/src/internal/entity"
	"storefront-service/src/internal/model"
)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func RestaurantFromRequest(request *model.RestaurantRequest) *entity.Restaurant {
	return &entity.Restaurant{
		ID:           request.ID,
		Name:         request.Name,
		Town:         request.Town,
		OpeningDays:  request.OpeningDays,
		OpensAt:      request.OpensAt,
		ClosesAt:     request.ClosesAt,
		IsOpen:       request.IsOpen,
		Rating:       request.Rating,
		DeliveryTime: nullString(request.DeliveryTime),
		Phone:        nullString(request.Phone),
		Location:     nullString(request.Location),
	}
}

func DishFromRequest(request *model.DishRequest) *entity.Dish {
	return &entity.Dish{
		ID:          request.ID,
		Name:        request.Name,
		Category:    request.Category,
		Description: nullString(request.Description),
		ImageURL:    nullString(request.ImageURL),
	}
}

func RestaurantDishFromRequest(request *model.RestaurantDishRequest) *entity.RestaurantDish {
	return &entity.RestaurantDish{
		ID:           request.ID,
		RestaurantID: request.RestaurantID,
		DishID:       request.DishID,
		Price:        request.Price,
		Currency:     request.Currency,
		Days:         request.Days,
		FromTime:     request.FromTime,
		ToTime:       request.ToTime,
		IsAvailable:  request.IsAvailable,
	}
}

func ComplementFromRequest(request *model.ComplementRequest) *entity.Complement {
	return &entity.Complement{
		ID:    request.ID,
		Name:  request.Name,
		Price: request.Price,
	}
}

func DishComplementFromRequest(request *model.DishComplementRequest) *entity.DishComplement {
	return &entity.DishComplement{
		ID:           request.ID,
		DishID:       request.DishID,
		ComplementID: request.ComplementID,
		Price:        request.Price,
		IsRequired:   request.IsRequired,
		MaxQuantity:  request.MaxQuantity,
	}
}

func DeliveryZoneFromRequest(request *model.DeliveryZoneRequest) *entity.DeliveryZone {
	return &entity.DeliveryZone{
		ID:          request.ID,
		Town:        request.Town,
		ZoneName:    request.ZoneName,
		DeliveryFee: request.DeliveryFee,
		IsActive:    request.IsActive,
	}
}

func TownFromRequest(request *model.TownRequest) *entity.Town {
	return &entity.Town{
		ID:           request.ID,
		Name:         request.Name,
		IsActive:     request.IsActive,
		FreeDelivery: request.FreeDelivery,
		DefaultFee:   request.DefaultFee,
	}
}

func StreetFromRequest(request *model.StreetRequest) *entity.Street {
	return &entity.Street{
		ID:     request.ID,
		Name:   request.Name,
		ZoneID: request.ZoneID,
	}
}

func PaymentMethodFromRequest(request *model.PaymentMethodRequest) (*entity.PaymentMethod, error) {
	details, err := json.Marshal(request.PaymentDetails)
	if err != nil {
		return nil, err
	}
	return &entity.PaymentMethod{
		ID:             request.ID,
		Code:           request.Code,
		Label:          request.Label,
		Category:       request.Category,
		PaymentDetails: details,
		IsActive:       request.IsActive,
	}, nil
}
