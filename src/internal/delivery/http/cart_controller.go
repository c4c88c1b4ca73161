package http

import (
	"storefront-service/src/internal/model"
	"storefront-service/src/internal/usecase"
	httpError "storefront-service/src/pkg/http-error"
	"storefront-service/src/pkg/log"
	"storefront-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

// SessionHeader carries the anonymous storefront session id; the
// frontend generates it once and sends it on every cart call.
const SessionHeader = "X-Session-Id"

type CartController struct {
	Log     log.Log
	UseCase *usecase.CartUseCase
}

func NewCartController(useCase *usecase.CartUseCase, logger log.Log) *CartController {
	return &CartController{
		Log:     logger,
		UseCase: useCase,
	}
}

func sessionID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Get(SessionHeader)
	if id == "" {
		errObj := httpError.NewBadRequest()
		errObj.Message = "missing " + SessionHeader + " header"
		return "", errObj
	}
	return id, nil
}

func (c *CartController) GetCart(ctx *fiber.Ctx) error {
	id, err := sessionID(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.GetCart(ctx.Context(), &model.GetCartRequest{SessionID: id})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Cart", fiber.StatusOK, ctx)
}

func (c *CartController) AddToCart(ctx *fiber.Ctx) error {
	id, err := sessionID(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}

	request := new(model.AddToCartRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("CartController.AddToCart", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.SessionID = id

	result := c.UseCase.AddToCart(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Add To Cart", fiber.StatusOK, ctx)
}

func (c *CartController) UpdateQuantity(ctx *fiber.Ctx) error {
	id, err := sessionID(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}

	request := new(model.UpdateQuantityRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("CartController.UpdateQuantity", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.SessionID = id

	result := c.UseCase.UpdateQuantity(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Update Quantity", fiber.StatusOK, ctx)
}

func (c *CartController) ClearCart(ctx *fiber.Ctx) error {
	id, err := sessionID(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}

	if err := c.UseCase.ClearCart(ctx.Context(), id); err != nil {
		return utils.ResponseError(err, ctx)
	}
	return utils.Response(nil, "Clear Cart", fiber.StatusOK, ctx)
}
