package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"storefront-service/src/internal/entity"
	"storefront-service/src/internal/gateway/payment"
	"storefront-service/src/internal/model"
	"storefront-service/src/internal/model/converter"
	"storefront-service/src/pkg/log"

	"github.com/hibiken/asynq"
	"github.com/spf13/viper"
)

type ReconcilerOrderRepository interface {
	FindPendingWithReference(ctx context.Context) ([]entity.Order, error)
	FindStalePending(ctx context.Context, olderThan time.Time) ([]entity.Order, error)
	UpdatePaymentStatusFrom(ctx context.Context, orderNumber, fromStatus, toStatus string) (bool, error)
}

// ReconcileUseCase walks the pending set, asks the payment provider for
// each order's fate and applies pending -> completed/failed transitions.
// The status row is the source of truth; notifications ride behind it.
type ReconcileUseCase struct {
	Log             log.Log
	OrderRepository ReconcilerOrderRepository
	Gateway         payment.Gateway
	Producer        OrderEventPublisher
	Enqueuer        TaskEnqueuer
	Config          *viper.Viper
}

func NewReconcileUseCase(
	logger log.Log,
	orderRepository ReconcilerOrderRepository,
	gateway payment.Gateway,
	producer OrderEventPublisher,
	enqueuer TaskEnqueuer,
	cfg *viper.Viper,
) *ReconcileUseCase {
	return &ReconcileUseCase{
		Log:             logger,
		OrderRepository: orderRepository,
		Gateway:         gateway,
		Producer:        producer,
		Enqueuer:        enqueuer,
		Config:          cfg,
	}
}

// HandleReconcile is the asynq entrypoint for the periodic run.
func (c *ReconcileUseCase) HandleReconcile(ctx context.Context, _ *asynq.Task) error {
	return c.Reconcile(ctx)
}

func (c *ReconcileUseCase) statusTimeout() time.Duration {
	seconds := c.Config.GetInt("payment.status_timeout_seconds")
	if seconds == 0 {
		seconds = 10
	}
	return time.Duration(seconds) * time.Second
}

func (c *ReconcileUseCase) Reconcile(ctx context.Context) error {
	orders, err := c.OrderRepository.FindPendingWithReference(ctx)
	if err != nil {
		c.Log.Error("reconcile-usecase", fmt.Sprintf("Failed to list pending orders: %v", err), "Reconcile", "")
		return err
	}
	c.Log.Info("reconcile-usecase", fmt.Sprintf("Reconciling %d pending orders", len(orders)), "Reconcile", "")

	for i := range orders {
		order := &orders[i]
		if _, err := c.ReconcileOne(ctx, order); err != nil {
			// one bad order never stalls the batch
			c.Log.Error("reconcile-usecase", fmt.Sprintf("Reconcile failed: %v", err), "Reconcile", order.OrderNumber)
		}
	}

	c.flagStalePending(ctx)
	return nil
}

// ReconcileOne queries the provider for a single order and applies the
// transition. It returns the order's status after the call, which is the
// old status when the provider result does not map to a terminal state.
func (c *ReconcileUseCase) ReconcileOne(ctx context.Context, order *entity.Order) (string, error) {
	reference := ""
	if order.PaymentReference != nil {
		reference = *order.PaymentReference
	}
	sessionID := ""
	if order.PaymentSessionID != nil {
		sessionID = *order.PaymentSessionID
	}

	callCtx, cancel := context.WithTimeout(ctx, c.statusTimeout())
	defer cancel()

	statusResp, err := c.Gateway.GetStatus(callCtx, &payment.StatusRequest{
		OrderNumber: order.OrderNumber,
		Reference:   reference,
		SessionID:   sessionID,
	})
	if err != nil {
		return order.PaymentStatus, err
	}

	normalized := payment.Normalize(statusResp.Status)
	if normalized == payment.StatusPending {
		c.Log.Info("reconcile-usecase", fmt.Sprintf("Provider status %q not terminal, leaving pending", statusResp.Status), "ReconcileOne", order.OrderNumber)
		return order.PaymentStatus, nil
	}

	updated, err := c.OrderRepository.UpdatePaymentStatusFrom(ctx, order.OrderNumber, entity.PaymentStatusPending, normalized)
	if err != nil {
		return order.PaymentStatus, err
	}
	if !updated {
		// a concurrent run already applied the transition; it also owns
		// the notification
		c.Log.Info("reconcile-usecase", "Order already transitioned elsewhere", "ReconcileOne", order.OrderNumber)
		return order.PaymentStatus, nil
	}

	fromStatus := order.PaymentStatus
	order.PaymentStatus = normalized
	c.Log.Info("reconcile-usecase", fmt.Sprintf("Order %s: %s -> %s", order.OrderNumber, fromStatus, normalized), "ReconcileOne", "")

	if c.Producer != nil {
		if err := c.Producer.SendStatusChanged(converter.OrderToStatusChangedEvent(order, fromStatus)); err != nil {
			c.Log.Error("reconcile-usecase", fmt.Sprintf("Failed to publish status-changed event: %v", err), "ReconcileOne", order.OrderNumber)
		}
	}
	c.enqueueStatusMail(ctx, order.OrderNumber, fromStatus, normalized)

	return normalized, nil
}

func (c *ReconcileUseCase) enqueueStatusMail(ctx context.Context, orderNumber, fromStatus, toStatus string) {
	if c.Enqueuer == nil {
		return
	}
	payload, _ := json.Marshal(StatusChangedPayload{
		OrderNumber: orderNumber,
		FromStatus:  fromStatus,
		ToStatus:    toStatus,
	})
	task := asynq.NewTask(TypeEmailStatusChange, payload)
	// the task id pins one notification per (order, transition) even if
	// two reconciler runs race past the status write
	taskID := fmt.Sprintf("status-mail:%s:%s", orderNumber, toStatus)
	if _, err := c.Enqueuer.EnqueueContext(ctx, task, asynq.TaskID(taskID), asynq.MaxRetry(5)); err != nil {
		c.Log.Error("reconcile-usecase", fmt.Sprintf("Failed to enqueue status mail: %v", err), "enqueueStatusMail", orderNumber)
	}
}

// flagStalePending reports orders stuck pending past the configured
// age. Report only, the status is never changed automatically.
func (c *ReconcileUseCase) flagStalePending(ctx context.Context) {
	hours := c.Config.GetInt("payment.stale_pending_hours")
	if hours == 0 {
		return
	}

	stale, err := c.OrderRepository.FindStalePending(ctx, time.Now().Add(-time.Duration(hours)*time.Hour))
	if err != nil {
		c.Log.Error("reconcile-usecase", fmt.Sprintf("Failed to list stale pending orders: %v", err), "flagStalePending", "")
		return
	}
	if len(stale) == 0 || c.Enqueuer == nil {
		return
	}

	responses := make([]model.OrderResponse, 0, len(stale))
	for i := range stale {
		responses = append(responses, *converter.OrderToResponse(&stale[i]))
	}

	payload, _ := json.Marshal(StalePendingPayload{Orders: responses})
	task := asynq.NewTask(TypeEmailStalePending, payload)
	if _, err := c.Enqueuer.EnqueueContext(ctx, task, asynq.MaxRetry(3)); err != nil {
		c.Log.Error("reconcile-usecase", fmt.Sprintf("Failed to enqueue stale-pending report: %v", err), "flagStalePending", "")
	}
}
