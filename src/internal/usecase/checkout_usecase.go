package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"storefront-service/src/internal/entity"
	"storefront-service/src/internal/gateway/payment"
	"storefront-service/src/internal/model"
	"storefront-service/src/internal/model/converter"
	"storefront-service/src/internal/repository"
	httpError "storefront-service/src/pkg/http-error"
	"storefront-service/src/pkg/log"
	"storefront-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/hibiken/asynq"
	"github.com/spf13/viper"
)

type OrderWriter interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByOrderNumber(ctx context.Context, orderNumber string) (*entity.Order, error)
	UpdatePaymentReference(ctx context.Context, orderNumber, reference, sessionID string) error
	UpdatePaymentStatus(ctx context.Context, orderNumber, toStatus string) error
}

type FeeResolverRepository interface {
	FindTownByName(ctx context.Context, name string) (*entity.Town, error)
	FindZoneByStreet(ctx context.Context, town, street string) (*entity.DeliveryZone, error)
}

type PaymentMethodFinder interface {
	FindByCode(ctx context.Context, code string) (*entity.PaymentMethod, error)
}

type OrderEventPublisher interface {
	SendOrderCreated(event *model.OrderCreatedEvent) error
	SendStatusChanged(event *model.OrderStatusChangedEvent) error
}

type CheckoutUseCase struct {
	Log             log.Log
	Validate        *validator.Validate
	Cart            *CartUseCase
	OrderRepository OrderWriter
	Delivery        FeeResolverRepository
	PaymentMethods  PaymentMethodFinder
	Gateway         payment.Gateway
	Producer        OrderEventPublisher
	Enqueuer        TaskEnqueuer
	Reconciler      *ReconcileUseCase
	Config          *viper.Viper
}

func NewCheckoutUseCase(
	logger log.Log,
	validate *validator.Validate,
	cart *CartUseCase,
	orderRepository OrderWriter,
	delivery FeeResolverRepository,
	paymentMethods PaymentMethodFinder,
	gateway payment.Gateway,
	producer OrderEventPublisher,
	enqueuer TaskEnqueuer,
	reconciler *ReconcileUseCase,
	cfg *viper.Viper,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		Log:             logger,
		Validate:        validate,
		Cart:            cart,
		OrderRepository: orderRepository,
		Delivery:        delivery,
		PaymentMethods:  paymentMethods,
		Gateway:         gateway,
		Producer:        producer,
		Enqueuer:        enqueuer,
		Reconciler:      reconciler,
		Config:          cfg,
	}
}

// ResolveDeliveryFee applies the lookup chain: free-delivery town wins,
// then the street's active zone, then the town default.
func ResolveDeliveryFee(town *entity.Town, zone *entity.DeliveryZone) int64 {
	if town.FreeDelivery {
		return 0
	}
	if zone != nil {
		return zone.DeliveryFee
	}
	return town.DefaultFee
}

func (c *CheckoutUseCase) Checkout(ctx context.Context, request *model.CheckoutRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("checkout-usecase", errObj.Message, "Checkout", utils.ConvertString(request))
		return result
	}

	cart, err := c.Cart.loadCart(ctx, request.SessionID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("Error loading cart: %v", err)
		result.Error = errObj
		c.Log.Error("checkout-usecase", errObj.Message, "Checkout", request.SessionID)
		return result
	}
	if len(cart.Lines) == 0 {
		errObj := httpError.NewBadRequest()
		errObj.Message = "Cart is empty"
		result.Error = errObj
		return result
	}

	town, err := c.Delivery.FindTownByName(ctx, request.Town)
	if err != nil || !town.IsActive {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("We do not deliver in %s", request.Town)
		result.Error = errObj
		c.Log.Error("checkout-usecase", errObj.Message, "Checkout", request.Town)
		return result
	}

	// zone lookup failure is not fatal, the town default fee applies
	zone, err := c.Delivery.FindZoneByStreet(ctx, request.Town, request.Street)
	if err != nil {
		zone = nil
	}

	subtotal := cart.Subtotal()
	deliveryFee := ResolveDeliveryFee(town, zone)
	total := subtotal + deliveryFee

	// the client total is advisory; the server-side sum is authoritative
	// and disagreement is rejected outright
	if request.ClientTotal != total {
		errObj := httpError.NewUnprocessableEntity()
		errObj.Message = fmt.Sprintf("total mismatch: expected %d, got %d", total, request.ClientTotal)
		result.Error = errObj
		c.Log.Error("checkout-usecase", errObj.Message, "Checkout", request.SessionID)
		return result
	}

	method, err := c.PaymentMethods.FindByCode(ctx, request.PaymentMethod)
	if err != nil || !method.IsActive {
		errObj := httpError.NewBadRequest()
		errObj.Message = "Unknown or inactive payment method"
		result.Error = errObj
		c.Log.Error("checkout-usecase", errObj.Message, "Checkout", request.PaymentMethod)
		return result
	}

	currency := c.Config.GetString("app.currency")
	items := make([]entity.OrderItem, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		item := entity.OrderItem{
			DishID:       line.DishID,
			Name:         line.DishName,
			RestaurantID: line.RestaurantID,
			Restaurant:   line.RestaurantName,
			UnitPrice:    line.UnitPrice,
			Quantity:     line.Quantity,
		}
		for _, complement := range line.Complements {
			item.Complements = append(item.Complements, entity.OrderItemComplement{
				ComplementID: complement.ComplementID,
				Name:         complement.Name,
				Price:        complement.Price,
				Quantity:     complement.Quantity,
			})
		}
		items = append(items, item)
	}
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("Error marshalling order items: %v", err)
		result.Error = errObj
		c.Log.Error("checkout-usecase", errObj.Message, "Checkout", request.SessionID)
		return result
	}

	var notes *string
	if request.Notes != "" {
		notes = &request.Notes
	}

	order := &entity.Order{
		CustomerName:    request.CustomerName,
		CustomerPhone:   request.CustomerPhone,
		DeliveryAddress: request.DeliveryAddress,
		Town:            request.Town,
		Street:          request.Street,
		Items:           itemsJSON,
		Subtotal:        subtotal,
		DeliveryFee:     deliveryFee,
		Total:           total,
		Currency:        currency,
		PaymentMethod:   method.Code,
		PaymentStatus:   entity.PaymentStatusPending,
		Notes:           notes,
	}

	if errObj := c.insertWithRetry(ctx, order); errObj != nil {
		result.Error = errObj
		return result
	}

	response := &model.CheckoutResponse{
		OrderNumber:   order.OrderNumber,
		Subtotal:      subtotal,
		DeliveryFee:   deliveryFee,
		Total:         total,
		Currency:      currency,
		PaymentStatus: entity.PaymentStatusPending,
	}

	if method.Category == entity.PaymentCategoryOffline {
		var instructions []model.OfflineInstruction
		if len(method.PaymentDetails) > 0 {
			_ = json.Unmarshal(method.PaymentDetails, &instructions)
		}
		response.PaymentInstructions = instructions
	} else {
		createResp, err := c.Gateway.CreatePayment(ctx, &payment.CreateRequest{
			OrderNumber:   order.OrderNumber,
			Amount:        total,
			Currency:      currency,
			CustomerName:  request.CustomerName,
			CustomerPhone: request.CustomerPhone,
			Description:   fmt.Sprintf("Order %s", order.OrderNumber),
			ReturnURL:     fmt.Sprintf("%s/orders/%s", c.Config.GetString("app.storefront_url"), order.OrderNumber),
			Metadata: map[string]string{
				"order_number": order.OrderNumber,
				"town":         request.Town,
			},
		})
		if err != nil {
			c.Log.Error("checkout-usecase", fmt.Sprintf("Payment creation failed: %v", err), "Checkout", order.OrderNumber)
			if updateErr := c.OrderRepository.UpdatePaymentStatus(ctx, order.OrderNumber, entity.PaymentStatusFailed); updateErr != nil {
				c.Log.Error("checkout-usecase", fmt.Sprintf("Failed to mark order failed: %v", updateErr), "Checkout", order.OrderNumber)
			}
			errObj := httpError.NewInternalServerError()
			errObj.Message = "Payment could not be initiated, please try again"
			result.Error = errObj
			return result
		}

		if err := c.OrderRepository.UpdatePaymentReference(ctx, order.OrderNumber, createResp.Reference, createResp.SessionID); err != nil {
			c.Log.Error("checkout-usecase", fmt.Sprintf("Failed to store payment reference: %v", err), "Checkout", order.OrderNumber)
		}
		response.RedirectURL = createResp.RedirectURL
	}

	// side effects are best-effort: the persisted order is the source of
	// truth, a lost event or mail never rolls it back
	if c.Producer != nil {
		if err := c.Producer.SendOrderCreated(converter.OrderToCreatedEvent(order)); err != nil {
			c.Log.Error("checkout-usecase", fmt.Sprintf("Failed to publish order-created event: %v", err), "Checkout", order.OrderNumber)
		}
	}
	c.enqueueOrderCreatedMail(ctx, order.OrderNumber)

	if err := c.Cart.ClearCart(ctx, request.SessionID); err != nil {
		c.Log.Error("checkout-usecase", fmt.Sprintf("Failed to clear cart: %v", err), "Checkout", request.SessionID)
	}

	result.Data = response
	return result
}

func (c *CheckoutUseCase) insertWithRetry(ctx context.Context, order *entity.Order) *httpError.CommonError {
	prefix := c.Config.GetString("order.number_prefix")
	if prefix == "" {
		prefix = "ORD"
	}

	for attempt := 0; attempt < 2; attempt++ {
		order.OrderNumber = utils.GenerateOrderNumber(prefix)
		err := c.OrderRepository.Create(ctx, order)
		if err == nil {
			return nil
		}
		if errors.Is(err, repository.ErrDuplicateOrderNumber) {
			c.Log.Error("checkout-usecase", "Order number collision, retrying with a fresh suffix", "Checkout", order.OrderNumber)
			continue
		}
		c.Log.Error("checkout-usecase", fmt.Sprintf("Failed to create order: %v", err), "Checkout", order.OrderNumber)
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Could not create order"
		return errObj
	}

	errObj := httpError.NewInternalServerError()
	errObj.Message = "Could not allocate an order number"
	return errObj
}

func (c *CheckoutUseCase) enqueueOrderCreatedMail(ctx context.Context, orderNumber string) {
	if c.Enqueuer == nil {
		return
	}
	payload, _ := json.Marshal(OrderCreatedPayload{OrderNumber: orderNumber})
	task := asynq.NewTask(TypeEmailOrderCreated, payload)
	if _, err := c.Enqueuer.EnqueueContext(ctx, task, asynq.TaskID("order-created:"+orderNumber), asynq.MaxRetry(5)); err != nil {
		c.Log.Error("checkout-usecase", fmt.Sprintf("Failed to enqueue order-created mail: %v", err), "Checkout", orderNumber)
	}
}

// GetOrder serves the confirmation page: it returns the order and, when
// the payment is still pending with a reference, asks the provider once
// so the customer sees a fresh status.
func (c *CheckoutUseCase) GetOrder(ctx context.Context, request *model.OrderStatusRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	order, err := c.OrderRepository.FindByOrderNumber(ctx, request.OrderNumber)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("order %s not found", request.OrderNumber)
		result.Error = errObj
		c.Log.Error("checkout-usecase", errObj.Message, "GetOrder", request.OrderNumber)
		return result
	}

	if c.Reconciler != nil && order.PaymentStatus == entity.PaymentStatusPending &&
		order.PaymentReference != nil && *order.PaymentReference != "" {
		if newStatus, err := c.Reconciler.ReconcileOne(ctx, order); err == nil {
			order.PaymentStatus = newStatus
		}
	}

	result.Data = converter.OrderToResponse(order)
	return result
}
