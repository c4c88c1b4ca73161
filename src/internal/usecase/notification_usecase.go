package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"storefront-service/src/internal/entity"
	"storefront-service/src/internal/gateway/mailer"
	"storefront-service/src/internal/model/converter"
	"storefront-service/src/pkg/log"

	"github.com/hibiken/asynq"
	"github.com/spf13/viper"
)

type MailSender interface {
	Send(to, subject, htmlBody string) error
}

type OrderFinder interface {
	FindByOrderNumber(ctx context.Context, orderNumber string) (*entity.Order, error)
}

// NotificationUseCase holds the asynq handlers that render and send the
// transactional mails. Failures are task errors so asynq retries them;
// nothing here ever touches order state.
type NotificationUseCase struct {
	Log             log.Log
	OrderRepository OrderFinder
	Mailer          MailSender
	Config          *viper.Viper
}

func NewNotificationUseCase(
	logger log.Log,
	orderRepository OrderFinder,
	mailSender MailSender,
	cfg *viper.Viper,
) *NotificationUseCase {
	return &NotificationUseCase{
		Log:             logger,
		OrderRepository: orderRepository,
		Mailer:          mailSender,
		Config:          cfg,
	}
}

func (c *NotificationUseCase) adminRecipient() string {
	return c.Config.GetString("mail.admin_recipient")
}

func (c *NotificationUseCase) HandleOrderCreated(ctx context.Context, task *asynq.Task) error {
	var payload OrderCreatedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("bad order-created payload: %w", err)
	}

	order, err := c.OrderRepository.FindByOrderNumber(ctx, payload.OrderNumber)
	if err != nil {
		return fmt.Errorf("order %s not found: %w", payload.OrderNumber, err)
	}

	body, err := mailer.RenderOrderCreated(converter.OrderToResponse(order))
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("New order %s", order.OrderNumber)
	if err := c.Mailer.Send(c.adminRecipient(), subject, body); err != nil {
		c.Log.Error("notification-usecase", fmt.Sprintf("Failed to send order-created mail: %v", err), "HandleOrderCreated", order.OrderNumber)
		return err
	}

	c.Log.Info("notification-usecase", "Order-created mail sent", "HandleOrderCreated", order.OrderNumber)
	return nil
}

func (c *NotificationUseCase) HandleStatusChanged(ctx context.Context, task *asynq.Task) error {
	var payload StatusChangedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("bad status-changed payload: %w", err)
	}

	order, err := c.OrderRepository.FindByOrderNumber(ctx, payload.OrderNumber)
	if err != nil {
		return fmt.Errorf("order %s not found: %w", payload.OrderNumber, err)
	}

	body, err := mailer.RenderStatusChanged(&mailer.StatusChangedData{
		OrderNumber:   order.OrderNumber,
		FromStatus:    payload.FromStatus,
		ToStatus:      payload.ToStatus,
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		Total:         order.Total,
		Currency:      order.Currency,
	})
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Order %s is now %s", order.OrderNumber, payload.ToStatus)
	if err := c.Mailer.Send(c.adminRecipient(), subject, body); err != nil {
		c.Log.Error("notification-usecase", fmt.Sprintf("Failed to send status mail: %v", err), "HandleStatusChanged", order.OrderNumber)
		return err
	}

	c.Log.Info("notification-usecase", "Status-changed mail sent", "HandleStatusChanged", order.OrderNumber)
	return nil
}

func (c *NotificationUseCase) HandleAdminSignup(ctx context.Context, task *asynq.Task) error {
	var payload AdminSignupPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("bad admin-signup payload: %w", err)
	}

	body, err := mailer.RenderAdminSignup(&mailer.AdminSignupData{
		FullName: payload.FullName,
		Email:    payload.Email,
		Role:     payload.Role,
	})
	if err != nil {
		return err
	}

	if err := c.Mailer.Send(payload.Email, "Your back-office account", body); err != nil {
		c.Log.Error("notification-usecase", fmt.Sprintf("Failed to send signup mail: %v", err), "HandleAdminSignup", payload.Email)
		return err
	}

	return nil
}

func (c *NotificationUseCase) HandleStalePending(ctx context.Context, task *asynq.Task) error {
	var payload StalePendingPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("bad stale-pending payload: %w", err)
	}
	if len(payload.Orders) == 0 {
		return nil
	}

	body, err := mailer.RenderStalePending(payload.Orders)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("%d order(s) pending for too long", len(payload.Orders))
	if err := c.Mailer.Send(c.adminRecipient(), subject, body); err != nil {
		c.Log.Error("notification-usecase", fmt.Sprintf("Failed to send stale-pending mail: %v", err), "HandleStalePending", "")
		return err
	}

	return nil
}
