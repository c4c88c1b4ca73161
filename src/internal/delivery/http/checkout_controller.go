package http

import (
	"storefront-service/src/internal/model"
	"storefront-service/src/internal/usecase"
	"storefront-service/src/pkg/log"
	"storefront-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type CheckoutController struct {
	Log     log.Log
	UseCase *usecase.CheckoutUseCase
}

func NewCheckoutController(useCase *usecase.CheckoutUseCase, logger log.Log) *CheckoutController {
	return &CheckoutController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *CheckoutController) Checkout(ctx *fiber.Ctx) error {
	id, err := sessionID(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}

	request := new(model.CheckoutRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("CheckoutController.Checkout", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.SessionID = id

	result := c.UseCase.Checkout(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Checkout", fiber.StatusCreated, ctx)
}

// GetOrder serves the confirmation page: it returns the order and, when
// the payment is still pending, refreshes its status inline first.
func (c *CheckoutController) GetOrder(ctx *fiber.Ctx) error {
	request := &model.OrderStatusRequest{
		OrderNumber: ctx.Params("orderNumber"),
	}
	result := c.UseCase.GetOrder(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Order", fiber.StatusOK, ctx)
}
