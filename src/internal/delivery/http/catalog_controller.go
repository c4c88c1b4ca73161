package http

import (
	"storefront-service/src/internal/model"
	"storefront-service/src/internal/usecase"
	"storefront-service/src/pkg/log"
	"storefront-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type CatalogController struct {
	Log     log.Log
	UseCase *usecase.CatalogUseCase
}

func NewCatalogController(useCase *usecase.CatalogUseCase, logger log.Log) *CatalogController {
	return &CatalogController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *CatalogController) GetTowns(ctx *fiber.Ctx) error {
	result := c.UseCase.ListTowns(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Towns", fiber.StatusOK, ctx)
}

func (c *CatalogController) GetRestaurants(ctx *fiber.Ctx) error {
	request := &model.ListRestaurantsRequest{
		Town: ctx.Query("town"),
	}
	result := c.UseCase.ListRestaurants(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Restaurants", fiber.StatusOK, ctx)
}

func (c *CatalogController) GetDishes(ctx *fiber.Ctx) error {
	request := &model.ListDishesRequest{
		RestaurantID: uint64(ctx.QueryInt("restaurantId")),
		Category:     ctx.Query("category"),
	}
	result := c.UseCase.ListDishes(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Dishes", fiber.StatusOK, ctx)
}

func (c *CatalogController) GetDishOptions(ctx *fiber.Ctx) error {
	dishID, err := ctx.ParamsInt("dishId")
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	request := &model.DishOptionsRequest{
		DishID: uint64(dishID),
	}
	result := c.UseCase.DishOptions(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Dish Options", fiber.StatusOK, ctx)
}

func (c *CatalogController) GetDishComplements(ctx *fiber.Ctx) error {
	dishID, err := ctx.ParamsInt("dishId")
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	request := &model.DishOptionsRequest{
		DishID: uint64(dishID),
	}
	result := c.UseCase.DishComplements(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Dish Complements", fiber.StatusOK, ctx)
}

func (c *CatalogController) GetPaymentMethods(ctx *fiber.Ctx) error {
	result := c.UseCase.ListPaymentMethods(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Payment Methods", fiber.StatusOK, ctx)
}
