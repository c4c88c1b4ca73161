package usecase

import (
	"context"
	"fmt"

	"storefront-service/src/internal/model"
	"storefront-service/src/internal/model/converter"
	"storefront-service/src/internal/repository"
	httpError "storefront-service/src/pkg/http-error"
	"storefront-service/src/pkg/log"
	"storefront-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type CatalogUseCase struct {
	Log                     log.Log
	Validate                *validator.Validate
	RestaurantRepository    *repository.RestaurantRepository
	DishRepository          *repository.DishRepository
	MenuRepository          *repository.MenuRepository
	ComplementRepository    *repository.ComplementRepository
	DeliveryRepository      *repository.DeliveryRepository
	PaymentMethodRepository *repository.PaymentMethodRepository
}

func NewCatalogUseCase(
	logger log.Log,
	validate *validator.Validate,
	restaurantRepository *repository.RestaurantRepository,
	dishRepository *repository.DishRepository,
	menuRepository *repository.MenuRepository,
	complementRepository *repository.ComplementRepository,
	deliveryRepository *repository.DeliveryRepository,
	paymentMethodRepository *repository.PaymentMethodRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		Log:                     logger,
		Validate:                validate,
		RestaurantRepository:    restaurantRepository,
		DishRepository:          dishRepository,
		MenuRepository:          menuRepository,
		ComplementRepository:    complementRepository,
		DeliveryRepository:      deliveryRepository,
		PaymentMethodRepository: paymentMethodRepository,
	}
}

func (c *CatalogUseCase) ListTowns(ctx context.Context) utils.Result {
	var result utils.Result

	towns, err := c.DeliveryRepository.ListTowns(ctx, true)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("Error listing towns: %v", err)
		result.Error = errObj
		c.Log.Error("catalog-usecase", errObj.Message, "ListTowns", "")
		return result
	}

	result.Data = towns
	return result
}

func (c *CatalogUseCase) ListRestaurants(ctx context.Context, request *model.ListRestaurantsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	restaurants, err := c.RestaurantRepository.ListOpenByTown(ctx, request.Town)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("Error listing restaurants: %v", err)
		result.Error = errObj
		c.Log.Error("catalog-usecase", errObj.Message, "ListRestaurants", request.Town)
		return result
	}

	result.Data = restaurants
	return result
}

func (c *CatalogUseCase) ListDishes(ctx context.Context, request *model.ListDishesRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	if request.RestaurantID != 0 {
		dishes, err := c.DishRepository.ListByRestaurant(ctx, request.RestaurantID)
		if err != nil {
			errObj := httpError.NewInternalServerError()
			errObj.Message = fmt.Sprintf("Error listing dishes: %v", err)
			result.Error = errObj
			c.Log.Error("catalog-usecase", errObj.Message, "ListDishes", utils.ConvertString(request))
			return result
		}
		result.Data = dishes
		return result
	}

	dishes, err := c.DishRepository.List(ctx, request.Category)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("Error listing dishes: %v", err)
		result.Error = errObj
		c.Log.Error("catalog-usecase", errObj.Message, "ListDishes", utils.ConvertString(request))
		return result
	}

	result.Data = dishes
	return result
}

// DishOptions lists the per-restaurant price options for a dish; prices
// only ever live on the restaurant_dishes join.
func (c *CatalogUseCase) DishOptions(ctx context.Context, request *model.DishOptionsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	options, err := c.MenuRepository.ListOptionsByDish(ctx, request.DishID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("Error listing dish options: %v", err)
		result.Error = errObj
		c.Log.Error("catalog-usecase", errObj.Message, "DishOptions", utils.ConvertString(request))
		return result
	}

	responses := make([]*model.DishOptionResponse, 0, len(options))
	for i := range options {
		responses = append(responses, converter.DishOptionToResponse(&options[i]))
	}

	result.Data = responses
	return result
}

func (c *CatalogUseCase) DishComplements(ctx context.Context, request *model.DishOptionsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	options, err := c.ComplementRepository.ListByDish(ctx, request.DishID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("Error listing dish complements: %v", err)
		result.Error = errObj
		c.Log.Error("catalog-usecase", errObj.Message, "DishComplements", utils.ConvertString(request))
		return result
	}

	responses := make([]*model.DishComplementResponse, 0, len(options))
	for i := range options {
		responses = append(responses, converter.DishComplementToResponse(&options[i]))
	}

	result.Data = responses
	return result
}

func (c *CatalogUseCase) ListPaymentMethods(ctx context.Context) utils.Result {
	var result utils.Result

	methods, err := c.PaymentMethodRepository.List(ctx, true)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("Error listing payment methods: %v", err)
		result.Error = errObj
		c.Log.Error("catalog-usecase", errObj.Message, "ListPaymentMethods", "")
		return result
	}

	responses := make([]*model.PaymentMethodResponse, 0, len(methods))
	for i := range methods {
		responses = append(responses, converter.PaymentMethodToResponse(&methods[i]))
	}

	result.Data = responses
	return result
}
