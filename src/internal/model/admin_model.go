package model

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,max=100"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

type RegisterAdminRequest struct {
	Email    string `json:"email" validate:"required,email,max=100"`
	FullName string `json:"fullName" validate:"required,max=100"`
	Password string `json:"password" validate:"required,min=8,max=100"`
	Role     string `json:"role" validate:"required,oneof=admin manager"`
}

type RestaurantRequest struct {
	ID           uint64  `json:"-"`
	Name         string  `json:"name" validate:"required,max=100"`
	Town         string  `json:"town" validate:"required,max=100"`
	OpeningDays  string  `json:"openingDays" validate:"required,max=100"`
	OpensAt      string  `json:"opensAt" validate:"required,max=5"`
	ClosesAt     string  `json:"closesAt" validate:"required,max=5"`
	IsOpen       bool    `json:"isOpen"`
	Rating       float64 `json:"rating" validate:"min=0,max=5"`
	DeliveryTime string  `json:"deliveryTime" validate:"max=50"`
	Phone        string  `json:"phone" validate:"max=20"`
	Location     string  `json:"location" validate:"max=255"`
}

type DishRequest struct {
	ID          uint64 `json:"-"`
	Name        string `json:"name" validate:"required,max=100"`
	Category    string `json:"category" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,url,max=500"`
}

type RestaurantDishRequest struct {
	ID           uint64 `json:"-"`
	RestaurantID uint64 `json:"restaurantId" validate:"required"`
	DishID       uint64 `json:"dishId" validate:"required"`
	Price        int64  `json:"price" validate:"required,min=1"`
	Currency     string `json:"currency" validate:"required,len=3"`
	Days         string `json:"days" validate:"required,max=100"`
	FromTime     string `json:"fromTime" validate:"required,max=5"`
	ToTime       string `json:"toTime" validate:"required,max=5"`
	IsAvailable  bool   `json:"isAvailable"`
}

type ComplementRequest struct {
	ID    uint64 `json:"-"`
	Name  string `json:"name" validate:"required,max=100"`
	Price int64  `json:"price" validate:"min=0"`
}

type DishComplementRequest struct {
	ID           uint64 `json:"-"`
	DishID       uint64 `json:"dishId" validate:"required"`
	ComplementID uint64 `json:"complementId" validate:"required"`
	Price        int64  `json:"price" validate:"min=0"`
	IsRequired   bool   `json:"isRequired"`
	MaxQuantity  int    `json:"maxQuantity" validate:"required,min=1"`
}

type DeliveryZoneRequest struct {
	ID          uint64 `json:"-"`
	Town        string `json:"town" validate:"required,max=100"`
	ZoneName    string `json:"zoneName" validate:"required,max=100"`
	DeliveryFee int64  `json:"deliveryFee" validate:"min=0"`
	IsActive    bool   `json:"isActive"`
}

type TownRequest struct {
	ID           uint64 `json:"-"`
	Name         string `json:"name" validate:"required,max=100"`
	IsActive     bool   `json:"isActive"`
	FreeDelivery bool   `json:"freeDelivery"`
	DefaultFee   int64  `json:"defaultFee" validate:"min=0"`
}

type StreetRequest struct {
	ID     uint64 `json:"-"`
	Name   string `json:"name" validate:"required,max=100"`
	ZoneID uint64 `json:"zoneId" validate:"required"`
}

type PaymentMethodRequest struct {
	ID             uint64               `json:"-"`
	Code           string               `json:"code" validate:"required,max=50"`
	Label          string               `json:"label" validate:"required,max=100"`
	Category       string               `json:"category" validate:"required,oneof=online offline"`
	PaymentDetails []OfflineInstruction `json:"paymentDetails" validate:"dive"`
	IsActive       bool                 `json:"isActive"`
}

type ToggleRequest struct {
	ID uint64 `json:"-" validate:"required"`
}

type DeleteRequest struct {
	ID uint64 `json:"-" validate:"required"`
}

type UploadDishImageRequest struct {
	DishID      uint64 `json:"-" validate:"required"`
	FileName    string `json:"-" validate:"required"`
	ContentType string `json:"-"`
	Data        []byte `json:"-" validate:"required"`
}

type UploadDishImageResponse struct {
	DishID   uint64 `json:"dishId"`
	ImageURL string `json:"imageUrl"`
}
