package http

import (
	"io"

	"storefront-service/src/internal/model"
	"storefront-service/src/internal/usecase"
	httpError "storefront-service/src/pkg/http-error"
	"storefront-service/src/pkg/log"
	"storefront-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type AdminController struct {
	Log          log.Log
	AuthUseCase  *usecase.AuthUseCase
	AdminUseCase *usecase.AdminUseCase
	OrderUseCase *usecase.AdminOrderUseCase
}

func NewAdminController(
	authUseCase *usecase.AuthUseCase,
	adminUseCase *usecase.AdminUseCase,
	orderUseCase *usecase.AdminOrderUseCase,
	logger log.Log,
) *AdminController {
	return &AdminController{
		Log:          logger,
		AuthUseCase:  authUseCase,
		AdminUseCase: adminUseCase,
		OrderUseCase: orderUseCase,
	}
}

func paramID(ctx *fiber.Ctx) (uint64, error) {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		errObj := httpError.NewBadRequest()
		errObj.Message = "invalid id parameter"
		return 0, errObj
	}
	return uint64(id), nil
}

// ---- auth

func (c *AdminController) Login(ctx *fiber.Ctx) error {
	request := new(model.LoginRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("AdminController.Login", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.AuthUseCase.Login(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Login", fiber.StatusOK, ctx)
}

func (c *AdminController) Register(ctx *fiber.Ctx) error {
	request := new(model.RegisterAdminRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("AdminController.Register", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.AuthUseCase.Register(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Register", fiber.StatusCreated, ctx)
}

// ---- restaurants

func (c *AdminController) CreateRestaurant(ctx *fiber.Ctx) error {
	request := new(model.RestaurantRequest)
	if err := ctx.BodyParser(request); err != nil {
		return utils.ResponseError(err, ctx)
	}
	result := c.AdminUseCase.CreateRestaurant(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Create Restaurant", fiber.StatusCreated, ctx)
}

func (c *AdminController) UpdateRestaurant(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	request := new(model.RestaurantRequest)
	if err := ctx.BodyParser(request); err != nil {
		return utils.ResponseError(err, ctx)
	}
	request.ID = id
	result := c.AdminUseCase.UpdateRestaurant(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Update Restaurant", fiber.StatusOK, ctx)
}

func (c *AdminController) ListRestaurants(ctx *fiber.Ctx) error {
	result := c.AdminUseCase.ListRestaurants(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Restaurants", fiber.StatusOK, ctx)
}

func (c *AdminController) ToggleRestaurant(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	result := c.AdminUseCase.ToggleRestaurant(ctx.Context(), &model.ToggleRequest{ID: id})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Toggle Restaurant", fiber.StatusOK, ctx)
}

func (c *AdminController) DeleteRestaurant(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	result := c.AdminUseCase.DeleteRestaurant(ctx.Context(), &model.DeleteRequest{ID: id})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Delete Restaurant", fiber.StatusOK, ctx)
}

// ---- dishes

func (c *AdminController) CreateDish(ctx *fiber.Ctx) error {
	request := new(model.DishRequest)
	if err := ctx.BodyParser(request); err != nil {
		return utils.ResponseError(err, ctx)
	}
	result := c.AdminUseCase.CreateDish(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Create Dish", fiber.StatusCreated, ctx)
}

func (c *AdminController) UpdateDish(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	request := new(model.DishRequest)
	if err := ctx.BodyParser(request); err != nil {
		return utils.ResponseError(err, ctx)
	}
	request.ID = id
	result := c.AdminUseCase.UpdateDish(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Update Dish", fiber.StatusOK, ctx)
}

func (c *AdminController) ListDishes(ctx *fiber.Ctx) error {
	result := c.AdminUseCase.ListDishes(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Dishes", fiber.StatusOK, ctx)
}

func (c *AdminController) DeleteDish(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	result := c.AdminUseCase.DeleteDish(ctx.Context(), &model.DeleteRequest{ID: id})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Delete Dish", fiber.StatusOK, ctx)
}

// UploadDishImage accepts a multipart form with an "image" file field.
func (c *AdminController) UploadDishImage(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}

	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = "missing image file"
		return utils.ResponseError(errObj, ctx)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}

	request := &model.UploadDishImageRequest{
		DishID:      id,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(fiber.HeaderContentType),
		Data:        data,
	}
	result := c.AdminUseCase.UploadDishImage(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Upload Dish Image", fiber.StatusOK, ctx)
}

// ---- menu items (restaurant_dishes)

func (c *AdminController) CreateMenuItem(ctx *fiber.Ctx) error {
	request := new(model.RestaurantDishRequest)
	if err := ctx.BodyParser(request); err != nil {
		return utils.ResponseError(err, ctx)
	}
	result := c.AdminUseCase.CreateMenuItem(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Create Menu Item", fiber.StatusCreated, ctx)
}

func (c *AdminController) UpdateMenuItem(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	request := new(model.RestaurantDishRequest)
	if err := ctx.BodyParser(request); err != nil {
		return utils.ResponseError(err, ctx)
	}
	request.ID = id
	result := c.AdminUseCase.UpdateMenuItem(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Update Menu Item", fiber.StatusOK, ctx)
}

func (c *AdminController) ListMenuItems(ctx *fiber.Ctx) error {
	result := c.AdminUseCase.ListMenuItems(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Menu Items", fiber.StatusOK, ctx)
}

func (c *AdminController) ToggleMenuItem(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	result := c.AdminUseCase.ToggleMenuItem(ctx.Context(), &model.ToggleRequest{ID: id})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Toggle Menu Item", fiber.StatusOK, ctx)
}

func (c *AdminController) DeleteMenuItem(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	result := c.AdminUseCase.DeleteMenuItem(ctx.Context(), &model.DeleteRequest{ID: id})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Delete Menu Item", fiber.StatusOK, ctx)
}

// ---- complements

func (c *AdminController) CreateComplement(ctx *fiber.Ctx) error {
	request := new(model.ComplementRequest)
	if err := ctx.BodyParser(request); err != nil {
		return utils.ResponseError(err, ctx)
	}
	result := c.AdminUseCase.CreateComplement(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Create Complement", fiber.StatusCreated, ctx)
}

func (c *AdminController) UpdateComplement(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	request := new(model.ComplementRequest)
	if err := ctx.BodyParser(request); err != nil {
		return utils.ResponseError(err, ctx)
	}
	request.ID = id
	result := c.AdminUseCase.UpdateComplement(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Update Complement", fiber.StatusOK, ctx)
}

func (c *AdminController) ListComplements(ctx *fiber.Ctx) error {
	result := c.AdminUseCase.ListComplements(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Complements", fiber.StatusOK, ctx)
}

func (c *AdminController) DeleteComplement(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	result := c.AdminUseCase.DeleteComplement(ctx.Context(), &model.DeleteRequest{ID: id})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Delete Complement", fiber.StatusOK, ctx)
}

// ---- dish-complement links

func (c *AdminController) CreateDishComplement(ctx *fiber.Ctx) error {
	request := new(model.DishComplementRequest)
	if err := ctx.BodyParser(request); err != nil {
		return utils.ResponseError(err, ctx)
	}
	result := c.AdminUseCase.CreateDishComplement(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Create Dish Complement", fiber.StatusCreated, ctx)
}

func (c *AdminController) UpdateDishComplement(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	request := new(model.DishComplementRequest)
	if err := ctx.BodyParser(request); err != nil {
		return utils.ResponseError(err, ctx)
	}
	request.ID = id
	result := c.AdminUseCase.UpdateDishComplement(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Update Dish Complement", fiber.StatusOK, ctx)
}

func (c *AdminController) ListDishComplements(ctx *fiber.Ctx) error {
	dishID, err := ctx.ParamsInt("dishId")
	if err != nil || dishID <= 0 {
		errObj := httpError.NewBadRequest()
		errObj.Message = "invalid dishId parameter"
		return utils.ResponseError(errObj, ctx)
	}
	result := c.AdminUseCase.ListDishComplements(ctx.Context(), uint64(dishID))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Dish Complements", fiber.StatusOK, ctx)
}

func (c *AdminController) DeleteDishComplement(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	result := c.AdminUseCase.DeleteDishComplement(ctx.Context(), &model.DeleteRequest{ID: id})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Delete Dish Complement", fiber.StatusOK, ctx)
}

// ---- delivery zones

func (c *AdminController) CreateZone(ctx *fiber.Ctx) error {
	request := new(model.DeliveryZoneRequest)
	if err := ctx.BodyParser(request); err != nil {
		return utils.ResponseError(err, ctx)
	}
	result := c.AdminUseCase.CreateZone(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Create Zone", fiber.StatusCreated, ctx)
}

func (c *AdminController) UpdateZone(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	request := new(model.DeliveryZoneRequest)
	if err := ctx.BodyParser(request); err != nil {
		return utils.ResponseError(err, ctx)
	}
	request.ID = id
	result := c.AdminUseCase.UpdateZone(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Update Zone", fiber.StatusOK, ctx)
}

func (c *AdminController) ListZones(ctx *fiber.Ctx) error {
	result := c.AdminUseCase.ListZones(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Zones", fiber.StatusOK, ctx)
}

func (c *AdminController) ToggleZone(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	result := c.AdminUseCase.ToggleZone(ctx.Context(), &model.ToggleRequest{ID: id})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Toggle Zone", fiber.StatusOK, ctx)
}

func (c *AdminController) DeleteZone(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	result := c.AdminUseCase.DeleteZone(ctx.Context(), &model.DeleteRequest{ID: id})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Delete Zone", fiber.StatusOK, ctx)
}

// ---- towns

func (c *AdminController) CreateTown(ctx *fiber.Ctx) error {
	request := new(model.TownRequest)
	if err := ctx.BodyParser(request); err != nil {
		return utils.ResponseError(err, ctx)
	}
	result := c.AdminUseCase.CreateTown(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Create Town", fiber.StatusCreated, ctx)
}

func (c *AdminController) UpdateTown(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	request := new(model.TownRequest)
	if err := ctx.BodyParser(request); err != nil {
		return utils.ResponseError(err, ctx)
	}
	request.ID = id
	result := c.AdminUseCase.UpdateTown(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Update Town", fiber.StatusOK, ctx)
}

func (c *AdminController) ListTowns(ctx *fiber.Ctx) error {
	result := c.AdminUseCase.ListTowns(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Towns", fiber.StatusOK, ctx)
}

func (c *AdminController) ToggleTown(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	result := c.AdminUseCase.ToggleTown(ctx.Context(), &model.ToggleRequest{ID: id})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Toggle Town", fiber.StatusOK, ctx)
}

func (c *AdminController) DeleteTown(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	result := c.AdminUseCase.DeleteTown(ctx.Context(), &model.DeleteRequest{ID: id})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Delete Town", fiber.StatusOK, ctx)
}

// ---- streets

func (c *AdminController) CreateStreet(ctx *fiber.Ctx) error {
	request := new(model.StreetRequest)
	if err := ctx.BodyParser(request); err != nil {
		return utils.ResponseError(err, ctx)
	}
	result := c.AdminUseCase.CreateStreet(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Create Street", fiber.StatusCreated, ctx)
}

func (c *AdminController) ListStreets(ctx *fiber.Ctx) error {
	result := c.AdminUseCase.ListStreets(ctx.Context(), uint64(ctx.QueryInt("zoneId")))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Streets", fiber.StatusOK, ctx)
}

func (c *AdminController) DeleteStreet(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	result := c.AdminUseCase.DeleteStreet(ctx.Context(), &model.DeleteRequest{ID: id})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Delete Street", fiber.StatusOK, ctx)
}

// ---- payment methods

func (c *AdminController) CreatePaymentMethod(ctx *fiber.Ctx) error {
	request := new(model.PaymentMethodRequest)
	if err := ctx.BodyParser(request); err != nil {
		return utils.ResponseError(err, ctx)
	}
	result := c.AdminUseCase.CreatePaymentMethod(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Create Payment Method", fiber.StatusCreated, ctx)
}

func (c *AdminController) UpdatePaymentMethod(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	request := new(model.PaymentMethodRequest)
	if err := ctx.BodyParser(request); err != nil {
		return utils.ResponseError(err, ctx)
	}
	request.ID = id
	result := c.AdminUseCase.UpdatePaymentMethod(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Update Payment Method", fiber.StatusOK, ctx)
}

func (c *AdminController) ListPaymentMethods(ctx *fiber.Ctx) error {
	result := c.AdminUseCase.ListPaymentMethods(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Payment Methods", fiber.StatusOK, ctx)
}

func (c *AdminController) DeletePaymentMethod(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	result := c.AdminUseCase.DeletePaymentMethod(ctx.Context(), &model.DeleteRequest{ID: id})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Delete Payment Method", fiber.StatusOK, ctx)
}

// ---- orders

func (c *AdminController) ListOrders(ctx *fiber.Ctx) error {
	request := &model.ListOrdersRequest{
		PaymentStatus: ctx.Query("paymentStatus"),
		Limit:         ctx.QueryInt("limit"),
	}
	result := c.OrderUseCase.ListOrders(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Orders", fiber.StatusOK, ctx)
}

func (c *AdminController) GetOrder(ctx *fiber.Ctx) error {
	result := c.OrderUseCase.GetOrder(ctx.Context(), ctx.Params("orderNumber"))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Order", fiber.StatusOK, ctx)
}

func (c *AdminController) SetOrderStatus(ctx *fiber.Ctx) error {
	request := new(model.UpdateOrderStatusRequest)
	if err := ctx.BodyParser(request); err != nil {
		return utils.ResponseError(err, ctx)
	}
	request.OrderNumber = ctx.Params("orderNumber")

	result := c.OrderUseCase.SetOrderStatus(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Set Order Status", fiber.StatusOK, ctx)
}

func (c *AdminController) DeleteOrder(ctx *fiber.Ctx) error {
	result := c.OrderUseCase.DeleteOrder(ctx.Context(), ctx.Params("orderNumber"))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Delete Order", fiber.StatusOK, ctx)
}

func (c *AdminController) TriggerReconcile(ctx *fiber.Ctx) error {
	result := c.OrderUseCase.TriggerReconcile(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Trigger Reconcile", fiber.StatusAccepted, ctx)
}
