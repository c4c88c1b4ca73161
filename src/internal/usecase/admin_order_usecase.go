package usecase

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"storefront-service/src/internal/entity"
	"storefront-service/src/internal/model"
	"storefront-service/src/internal/model/converter"
	httpError "storefront-service/src/pkg/http-error"
	"storefront-service/src/pkg/log"
	"storefront-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/hibiken/asynq"
)

// OrderAdminRepository is the order repository slice the back-office
// needs.
type OrderAdminRepository interface {
	List(ctx context.Context, filter entity.OrderFilter, limit int) ([]entity.Order, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*entity.Order, error)
	UpdatePaymentStatus(ctx context.Context, orderNumber, toStatus string) error
	Delete(ctx context.Context, orderNumber string) error
}

// AdminOrderUseCase covers the order side of the back-office: listing,
// inspection, manual status overrides and the on-demand reconcile run.
type AdminOrderUseCase struct {
	Log             log.Log
	Validate        *validator.Validate
	OrderRepository OrderAdminRepository
	Producer        OrderEventPublisher
	Enqueuer        TaskEnqueuer
}

func NewAdminOrderUseCase(
	logger log.Log,
	validate *validator.Validate,
	orderRepository OrderAdminRepository,
	producer OrderEventPublisher,
	enqueuer TaskEnqueuer,
) *AdminOrderUseCase {
	return &AdminOrderUseCase{
		Log:             logger,
		Validate:        validate,
		OrderRepository: orderRepository,
		Producer:        producer,
		Enqueuer:        enqueuer,
	}
}

func (c *AdminOrderUseCase) ListOrders(ctx context.Context, request *model.ListOrdersRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	filter := entity.OrderFilter{}
	if request.PaymentStatus != "" {
		filter.PaymentStatus = &request.PaymentStatus
	}
	limit := request.Limit
	if limit == 0 {
		limit = 50
	}

	orders, err := c.OrderRepository.List(ctx, filter, limit)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("Error listing orders: %v", err)
		result.Error = errObj
		c.Log.Error("admin-order-usecase", errObj.Message, "ListOrders", utils.ConvertString(request))
		return result
	}

	responses := make([]*model.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, converter.OrderToResponse(&orders[i]))
	}

	result.Data = responses
	return result
}

func (c *AdminOrderUseCase) GetOrder(ctx context.Context, orderNumber string) utils.Result {
	var result utils.Result

	order, err := c.OrderRepository.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("order %s not found", orderNumber)
			result.Error = errObj
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("Error finding order: %v", err)
		result.Error = errObj
		c.Log.Error("admin-order-usecase", errObj.Message, "GetOrder", orderNumber)
		return result
	}

	result.Data = converter.OrderToResponse(order)
	return result
}

// SetOrderStatus is the manual override: last write wins, and the same
// notification path fires as for a reconciler transition.
func (c *AdminOrderUseCase) SetOrderStatus(ctx context.Context, request *model.UpdateOrderStatusRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	order, err := c.OrderRepository.FindByOrderNumber(ctx, request.OrderNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("order %s not found", request.OrderNumber)
			result.Error = errObj
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("Error finding order: %v", err)
		result.Error = errObj
		c.Log.Error("admin-order-usecase", errObj.Message, "SetOrderStatus", request.OrderNumber)
		return result
	}

	fromStatus := order.PaymentStatus
	if fromStatus == request.PaymentStatus {
		result.Data = converter.OrderToResponse(order)
		return result
	}

	if err := c.OrderRepository.UpdatePaymentStatus(ctx, request.OrderNumber, request.PaymentStatus); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("Error updating order status: %v", err)
		result.Error = errObj
		c.Log.Error("admin-order-usecase", errObj.Message, "SetOrderStatus", request.OrderNumber)
		return result
	}

	order.PaymentStatus = request.PaymentStatus
	c.Log.Info("admin-order-usecase", fmt.Sprintf("Order %s: %s -> %s (manual)", order.OrderNumber, fromStatus, order.PaymentStatus), "SetOrderStatus", "")

	if c.Producer != nil {
		if err := c.Producer.SendStatusChanged(converter.OrderToStatusChangedEvent(order, fromStatus)); err != nil {
			c.Log.Error("admin-order-usecase", fmt.Sprintf("Failed to publish status-changed event: %v", err), "SetOrderStatus", order.OrderNumber)
		}
	}

	if c.Enqueuer != nil {
		payload, _ := json.Marshal(StatusChangedPayload{
			OrderNumber: order.OrderNumber,
			FromStatus:  fromStatus,
			ToStatus:    order.PaymentStatus,
		})
		taskID := fmt.Sprintf("status-mail:%s:%s", order.OrderNumber, order.PaymentStatus)
		if _, err := c.Enqueuer.EnqueueContext(ctx, asynq.NewTask(TypeEmailStatusChange, payload), asynq.TaskID(taskID), asynq.MaxRetry(5)); err != nil {
			c.Log.Error("admin-order-usecase", fmt.Sprintf("Failed to enqueue status mail: %v", err), "SetOrderStatus", order.OrderNumber)
		}
	}

	result.Data = converter.OrderToResponse(order)
	return result
}

func (c *AdminOrderUseCase) DeleteOrder(ctx context.Context, orderNumber string) utils.Result {
	var result utils.Result

	if _, err := c.OrderRepository.FindByOrderNumber(ctx, orderNumber); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("order %s not found", orderNumber)
			result.Error = errObj
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("Error finding order: %v", err)
		result.Error = errObj
		c.Log.Error("admin-order-usecase", errObj.Message, "DeleteOrder", orderNumber)
		return result
	}

	if err := c.OrderRepository.Delete(ctx, orderNumber); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("Error deleting order: %v", err)
		result.Error = errObj
		c.Log.Error("admin-order-usecase", errObj.Message, "DeleteOrder", orderNumber)
		return result
	}

	c.Log.Info("admin-order-usecase", "Order deleted", "DeleteOrder", orderNumber)
	result.Data = map[string]interface{}{"orderNumber": orderNumber}
	return result
}

// TriggerReconcile enqueues an immediate reconcile run alongside the
// periodic schedule.
func (c *AdminOrderUseCase) TriggerReconcile(ctx context.Context) utils.Result {
	var result utils.Result

	if c.Enqueuer == nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "task queue not configured"
		result.Error = errObj
		return result
	}

	info, err := c.Enqueuer.EnqueueContext(ctx, asynq.NewTask(TypeReconcilePayments, nil), asynq.MaxRetry(1))
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("Error enqueueing reconcile run: %v", err)
		result.Error = errObj
		c.Log.Error("admin-order-usecase", errObj.Message, "TriggerReconcile", "")
		return result
	}

	c.Log.Info("admin-order-usecase", "Reconcile run enqueued", "TriggerReconcile", info.ID)
	result.Data = map[string]interface{}{"taskId": info.ID}
	return result
}
