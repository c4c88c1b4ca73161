package usecase

import (
	"context"

	"storefront-service/src/internal/model"

	"github.com/hibiken/asynq"
)

const (
	TypeReconcilePayments = "payment:reconcile"
	TypeEmailOrderCreated = "email:order-created"
	TypeEmailStatusChange = "email:status-changed"
	TypeEmailAdminSignup  = "email:admin-signup"
	TypeEmailStalePending = "email:stale-pending"
)

// TaskEnqueuer is the slice of asynq.Client the usecases need.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type OrderCreatedPayload struct {
	OrderNumber string `json:"order_number"`
}

type StatusChangedPayload struct {
	OrderNumber string `json:"order_number"`
	FromStatus  string `json:"from_status"`
	ToStatus    string `json:"to_status"`
}

type AdminSignupPayload struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type StalePendingPayload struct {
	Orders []model.OrderResponse `json:"orders"`
}
