package usecase

import (
	"context"
	"fmt"

	"storefront-service/src/internal/gateway/storage"
	"storefront-service/src/internal/model"
	"storefront-service/src/internal/model/converter"
	"storefront-service/src/internal/repository"
	httpError "storefront-service/src/pkg/http-error"
	"storefront-service/src/pkg/log"
	"storefront-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// AdminUseCase is the back-office CRUD surface over the catalog and
// delivery lookup tables. Last write wins everywhere; the only audit
// trail is updated_at.
type AdminUseCase struct {
	Log                     log.Log
	Validate                *validator.Validate
	RestaurantRepository    *repository.RestaurantRepository
	DishRepository          *repository.DishRepository
	MenuRepository          *repository.MenuRepository
	ComplementRepository    *repository.ComplementRepository
	DeliveryRepository      *repository.DeliveryRepository
	PaymentMethodRepository *repository.PaymentMethodRepository
	Storage                 *storage.ObjectStorage
	Config                  *viper.Viper
}

func NewAdminUseCase(
	logger log.Log,
	validate *validator.Validate,
	restaurantRepository *repository.RestaurantRepository,
	dishRepository *repository.DishRepository,
	menuRepository *repository.MenuRepository,
	complementRepository *repository.ComplementRepository,
	deliveryRepository *repository.DeliveryRepository,
	paymentMethodRepository *repository.PaymentMethodRepository,
	objectStorage *storage.ObjectStorage,
	cfg *viper.Viper,
) *AdminUseCase {
	return &AdminUseCase{
		Log:                     logger,
		Validate:                validate,
		RestaurantRepository:    restaurantRepository,
		DishRepository:          dishRepository,
		MenuRepository:          menuRepository,
		ComplementRepository:    complementRepository,
		DeliveryRepository:      deliveryRepository,
		PaymentMethodRepository: paymentMethodRepository,
		Storage:                 objectStorage,
		Config:                  cfg,
	}
}

func (c *AdminUseCase) validationError(err error, scope string, meta interface{}) *httpError.CommonError {
	errObj := httpError.NewBadRequest()
	errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
	c.Log.Error("admin-usecase", errObj.Message, scope, utils.ConvertString(meta))
	return errObj
}

func (c *AdminUseCase) repositoryError(err error, scope string, meta interface{}) *httpError.CommonError {
	errObj := httpError.NewInternalServerError()
	errObj.Message = fmt.Sprintf("repository error: %v", err)
	c.Log.Error("admin-usecase", errObj.Message, scope, utils.ConvertString(meta))
	return errObj
}

// ---- restaurants

func (c *AdminUseCase) CreateRestaurant(ctx context.Context, request *model.RestaurantRequest) utils.Result {
	var result utils.Result
	if err := c.Validate.Struct(request); err != nil {
		result.Error = c.validationError(err, "CreateRestaurant", request)
		return result
	}

	restaurant := converter.RestaurantFromRequest(request)
	id, err := c.RestaurantRepository.Create(ctx, restaurant)
	if err != nil {
		result.Error = c.repositoryError(err, "CreateRestaurant", request)
		return result
	}
	restaurant.ID = id
	result.Data = restaurant
	return result
}

func (c *AdminUseCase) UpdateRestaurant(ctx context.Context, request *model.RestaurantRequest) utils.Result {
	var result utils.Result
	if err := c.Validate.Struct(request); err != nil {
		result.Error = c.validationError(err, "UpdateRestaurant", request)
		return result
	}

	restaurant := converter.RestaurantFromRequest(request)
	if err := c.RestaurantRepository.Update(ctx, restaurant); err != nil {
		result.Error = c.repositoryError(err, "UpdateRestaurant", request)
		return result
	}
	result.Data = restaurant
	return result
}

func (c *AdminUseCase) ListRestaurants(ctx context.Context) utils.Result {
	var result utils.Result
	restaurants, err := c.RestaurantRepository.List(ctx)
	if err != nil {
		result.Error = c.repositoryError(err, "ListRestaurants", "")
		return result
	}
	result.Data = restaurants
	return result
}

func (c *AdminUseCase) ToggleRestaurant(ctx context.Context, request *model.ToggleRequest) utils.Result {
	var result utils.Result
	if err := c.Validate.Struct(request); err != nil {
		result.Error = c.validationError(err, "ToggleRestaurant", request)
		return result
	}
	if err := c.RestaurantRepository.ToggleOpen(ctx, request.ID); err != nil {
		result.Error = c.repositoryError(err, "ToggleRestaurant", request)
		return result
	}
	result.Data = map[string]interface{}{"id": request.ID}
	return result
}

func (c *AdminUseCase) DeleteRestaurant(ctx context.Context, request *model.DeleteRequest) utils.Result {
	var result utils.Result
	if err := c.Validate.Struct(request); err != nil {
		result.Error = c.validationError(err, "DeleteRestaurant", request)
		return result
	}
	if err := c.RestaurantRepository.Delete(ctx, request.ID); err != nil {
		result.Error = c.repositoryError(err, "DeleteRestaurant", request)
		return result
	}
	result.Data = map[string]interface{}{"id": request.ID}
	return result
}

// ---- dishes

func (c *AdminUseCase) CreateDish(ctx context.Context, request *model.DishRequest) utils.Result {
	var result utils.Result
	if err := c.Validate.Struct(request); err != nil {
		result.Error = c.validationError(err, "CreateDish", request)
		return result
	}

	dish := converter.DishFromRequest(request)
	id, err := c.DishRepository.Create(ctx, dish)
	if err != nil {
		result.Error = c.repositoryError(err, "CreateDish", request)
		return result
	}
	dish.ID = id
	result.Data = dish
	return result
}

func (c *AdminUseCase) UpdateDish(ctx context.Context, request *model.DishRequest) utils.Result {
	var result utils.Result
	if err := c.Validate.Struct(request); err != nil {
		result.Error = c.validationError(err, "UpdateDish", request)
		return result
	}

	dish := converter.DishFromRequest(request)
	if err := c.DishRepository.Update(ctx, dish); err != nil {
		result.Error = c.repositoryError(err, "UpdateDish", request)
		return result
	}
	result.Data = dish
	return result
}

func (c *AdminUseCase) ListDishes(ctx context.Context) utils.Result {
	var result utils.Result
	dishes, err := c.DishRepository.List(ctx, "")
	if err != nil {
		result.Error = c.repositoryError(err, "ListDishes", "")
		return result
	}
	result.Data = dishes
	return result
}

func (c *AdminUseCase) DeleteDish(ctx context.Context, request *model.DeleteRequest) utils.Result {
	var result utils.Result
	if err := c.Validate.Struct(request); err != nil {
		result.Error = c.validationError(err, "DeleteDish", request)
		return result
	}
	if err := c.DishRepository.Delete(ctx, request.ID); err != nil {
		result.Error = c.repositoryError(err, "DeleteDish", request)
		return result
	}
	result.Data = map[string]interface{}{"id": request.ID}
	return result
}

// UploadDishImage pushes the file to object storage and persists the
// public URL on the dish row.
func (c *AdminUseCase) UploadDishImage(ctx context.Context, request *model.UploadDishImageRequest) utils.Result {
	var result utils.Result
	if err := c.Validate.Struct(request); err != nil {
		result.Error = c.validationError(err, "UploadDishImage", request.FileName)
		return result
	}

	if _, err := c.DishRepository.FindByID(ctx, request.DishID); err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("dish %d not found", request.DishID)
		result.Error = errObj
		return result
	}

	imageURL, err := c.Storage.UploadDishImage(ctx, request.FileName, request.ContentType, request.Data)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("upload failed: %v", err)
		result.Error = errObj
		c.Log.Error("admin-usecase", errObj.Message, "UploadDishImage", request.FileName)
		return result
	}

	if err := c.DishRepository.UpdateImageURL(ctx, request.DishID, imageURL); err != nil {
		result.Error = c.repositoryError(err, "UploadDishImage", request.DishID)
		return result
	}

	result.Data = &model.UploadDishImageResponse{DishID: request.DishID, ImageURL: imageURL}
	return result
}

// ---- menu prices (restaurant_dishes)

func (c *AdminUseCase) CreateMenuItem(ctx context.Context, request *model.RestaurantDishRequest) utils.Result {
	var result utils.Result
	if err := c.Validate.Struct(request); err != nil {
		result.Error = c.validationError(err, "CreateMenuItem", request)
		return result
	}

	item := converter.RestaurantDishFromRequest(request)
	id, err := c.MenuRepository.Create(ctx, item)
	if err != nil {
		result.Error = c.repositoryError(err, "CreateMenuItem", request)
		return result
	}
	item.ID = id
	result.Data = item
	return result
}

func (c *AdminUseCase) UpdateMenuItem(ctx context.Context, request *model.RestaurantDishRequest) utils.Result {
	var result utils.Result
	if err := c.Validate.Struct(request); err != nil {
		result.Error = c.validationError(err, "UpdateMenuItem", request)
		return result
	}

	item := converter.RestaurantDishFromRequest(request)
	if err := c.MenuRepository.Update(ctx, item); err != nil {
		result.Error = c.repositoryError(err, "UpdateMenuItem", request)
		return result
	}
	result.Data = item
	return result
}

func (c *AdminUseCase) ListMenuItems(ctx context.Context) utils.Result {
	var result utils.Result
	items, err := c.MenuRepository.List(ctx)
	if err != nil {
		result.Error = c.repositoryError(err, "ListMenuItems", "")
		return result
	}
	result.Data = items
	return result
}

func (c *AdminUseCase) ToggleMenuItem(ctx context.Context, request *model.ToggleRequest) utils.Result {
	var result utils.Result
	if err := c.Validate.Struct(request); err != nil {
		result.Error = c.validationError(err, "ToggleMenuItem", request)
		return result
	}
	if err := c.MenuRepository.ToggleAvailability(ctx, request.ID); err != nil {
		result.Error = c.repositoryError(err, "ToggleMenuItem", request)
		return result
	}
	result.Data = map[string]interface{}{"id": request.ID}
	return result
}

func (c *AdminUseCase) DeleteMenuItem(ctx context.Context, request *model.DeleteRequest) utils.Result {
	var result utils.Result
	if err := c.Validate.Struct(request); err != nil {
		result.Error = c.validationError(err, "DeleteMenuItem", request)
		return result
	}
	if err := c.MenuRepository.Delete(ctx, request.ID); err != nil {
		result.Error = c.repositoryError(err, "DeleteMenuItem", request)
		return result
	}
	result.Data = map[string]interface{}{"id": request.ID}
	return result
}

// ---- complements

func (c *AdminUseCase) CreateComplement(ctx context.Context, request *model.ComplementRequest) utils.Result {
	var result utils.Result
	if err := c.Validate.Struct(request); err != nil {
		result.Error = c.validationError(err, "CreateComplement", request)
		return result
	}

	complement := converter.ComplementFromRequest(request)
	id, err := c.ComplementRepository.Create(ctx, complement)
	if err != nil {
		result.Error = c.repositoryError(err, "CreateComplement", request)
		return result
	}
	complement.ID = id
	result.Data = complement
	return result
}

func (c *AdminUseCase) UpdateComplement(ctx context.Context, request *model.ComplementRequest) utils.Result {
	var result utils.Result
	if err := c.Validate.Struct(request); err != nil {
		result.Error = c.validationError(err, "UpdateComplement", request)
		return result
	}

	complement := converter.ComplementFromRequest(request)
	if err := c.ComplementRepository.Update(ctx, complement); err != nil {
		result.Error = c.repositoryError(err, "UpdateComplement", request)
		return result
	}
	result.Data = complement
	return result
}

func (c *AdminUseCase) ListComplements(ctx context.Context) utils.Result {
	var result utils.Result
	complements, err := c.ComplementRepository.List(ctx)
	if err != nil {
		result.Error = c.repositoryError(err, "ListComplements", "")
		return result
	}
	result.Data = complements
	return result
}

func (c *AdminUseCase) DeleteComplement(ctx context.Context, request *model.DeleteRequest) utils.Result {
	var result utils.Result
	if err := c.Validate.Struct(request); err != nil {
		result.Error = c.validationError(err, "DeleteComplement", request)
		return result
	}
	if err := c.ComplementRepository.Delete(ctx, request.ID); err != nil {
		result.Error = c.repositoryError(err, "DeleteComplement", request)
		return result
	}
	result.Data = map[string]interface{}{"id": request.ID}
	return result
}

func (c *AdminUseCase) CreateDishComplement(ctx context.Context, request *model.DishComplementRequest) utils.Result {
	var result utils.Result
	if err := c.Validate.Struct(request); err != nil {
		result.Error = c.validationError(err, "CreateDishComplement", request)
		return result
	}

	link := converter.DishComplementFromRequest(request)
	id, err := c.ComplementRepository.CreateLink(ctx, link)
	if err != nil {
		result.Error = c.repositoryError(err, "CreateDishComplement", request)
		return result
	}
	link.ID = id
	result.Data = link
	return result
}

func (c *AdminUseCase) UpdateDishComplement(ctx context.Context, request *model.DishComplementRequest) utils.Result {
	var result utils.Result
	if err := c.Validate.Struct(request); err != nil {
		result.Error = c.validationError(err, "UpdateDishComplement", request)
		return result
	}

	link := converter.DishComplementFromRequest(request)
	if err := c.ComplementRepository.UpdateLink(ctx, link); err != nil {
		result.Error = c.repositoryError(err, "UpdateDishComplement", request)
		return result
	}
	result.Data = link
	return result
}

func (c *AdminUseCase) ListDishComplements(ctx context.Context, dishID uint64) utils.Result {
	var result utils.Result
	links, err := c.ComplementRepository.ListByDish(ctx, dishID)
	if err != nil {
		result.Error = c.repositoryError(err, "ListDishComplements", dishID)
		return result
	}
	result.Data = links
	return result
}

func (c *AdminUseCase) DeleteDishComplement(ctx context.Context, request *model.DeleteRequest) utils.Result {
	var result utils.Result
	if err := c.Validate.Struct(request); err != nil {
		result.Error = c.validationError(err, "DeleteDishComplement", request)
		return result
	}
	if err := c.ComplementRepository.DeleteLink(ctx, request.ID); err != nil {
		result.Error = c.repositoryError(err, "DeleteDishComplement", request)
		return result
	}
	result.Data = map[string]interface{}{"id": request.ID}
	return result
}
