package usecase

import (
	"context"
	"database/sql"
	"testing"

	"storefront-service/src/internal/entity"
	"storefront-service/src/internal/model"
	httpError "storefront-service/src/pkg/http-error"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type adminOrderRepoStub struct {
	orders        map[string]*entity.Order
	listed        []entity.Order
	lastFilter    entity.OrderFilter
	lastLimit     int
	statusUpdates map[string]string
	deleted       []string
}

func newAdminOrderRepoStub() *adminOrderRepoStub {
	return &adminOrderRepoStub{
		orders:        map[string]*entity.Order{},
		statusUpdates: map[string]string{},
	}
}

func (s *adminOrderRepoStub) List(_ context.Context, filter entity.OrderFilter, limit int) ([]entity.Order, error) {
	s.lastFilter = filter
	s.lastLimit = limit
	return s.listed, nil
}

func (s *adminOrderRepoStub) FindByOrderNumber(_ context.Context, orderNumber string) (*entity.Order, error) {
	order, ok := s.orders[orderNumber]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return order, nil
}

func (s *adminOrderRepoStub) UpdatePaymentStatus(_ context.Context, orderNumber, toStatus string) error {
	s.statusUpdates[orderNumber] = toStatus
	return nil
}

func (s *adminOrderRepoStub) Delete(_ context.Context, orderNumber string) error {
	s.deleted = append(s.deleted, orderNumber)
	return nil
}

func newAdminOrderFixture(repo *adminOrderRepoStub) (*AdminOrderUseCase, *publisherStub, *enqueuerStub) {
	producer := &publisherStub{}
	enqueuer := &enqueuerStub{}
	uc := NewAdminOrderUseCase(testLogger(), validator.New(), repo, producer, enqueuer)
	return uc, producer, enqueuer
}

func storedOrder(orderNumber, status string) *entity.Order {
	return &entity.Order{
		OrderNumber:   orderNumber,
		CustomerName:  "Ama",
		Items:         []byte(`[]`),
		PaymentStatus: status,
	}
}

func TestListOrdersDefaultsLimit(t *testing.T) {
	repo := newAdminOrderRepoStub()
	repo.listed = []entity.Order{*storedOrder("CMD-1", entity.PaymentStatusPending)}
	uc, _, _ := newAdminOrderFixture(repo)

	result := uc.ListOrders(context.Background(), &model.ListOrdersRequest{})
	require.NoError(t, result.Error)
	assert.Equal(t, 50, repo.lastLimit)
	assert.Nil(t, repo.lastFilter.PaymentStatus)
	assert.Len(t, result.Data.([]*model.OrderResponse), 1)
}

func TestListOrdersFiltersByStatus(t *testing.T) {
	repo := newAdminOrderRepoStub()
	uc, _, _ := newAdminOrderFixture(repo)

	result := uc.ListOrders(context.Background(), &model.ListOrdersRequest{PaymentStatus: "failed", Limit: 10})
	require.NoError(t, result.Error)
	require.NotNil(t, repo.lastFilter.PaymentStatus)
	assert.Equal(t, "failed", *repo.lastFilter.PaymentStatus)
	assert.Equal(t, 10, repo.lastLimit)
}

func TestListOrdersRejectsBadStatus(t *testing.T) {
	uc, _, _ := newAdminOrderFixture(newAdminOrderRepoStub())

	result := uc.ListOrders(context.Background(), &model.ListOrdersRequest{PaymentStatus: "shipped"})
	require.Error(t, result.Error)
	assert.Equal(t, fiber.StatusBadRequest, result.Error.(*httpError.CommonError).Code)
}

func TestSetOrderStatusFiresNotificationOnce(t *testing.T) {
	repo := newAdminOrderRepoStub()
	repo.orders["CMD-1"] = storedOrder("CMD-1", entity.PaymentStatusPending)
	uc, producer, enqueuer := newAdminOrderFixture(repo)

	result := uc.SetOrderStatus(context.Background(), &model.UpdateOrderStatusRequest{
		OrderNumber:   "CMD-1",
		PaymentStatus: entity.PaymentStatusCompleted,
	})
	require.NoError(t, result.Error)
	assert.Equal(t, entity.PaymentStatusCompleted, repo.statusUpdates["CMD-1"])
	assert.Len(t, producer.statusChanged, 1)
	assert.Equal(t, entity.PaymentStatusPending, producer.statusChanged[0].FromStatus)
	assert.Equal(t, entity.PaymentStatusCompleted, producer.statusChanged[0].ToStatus)
	assert.Equal(t, 1, enqueuer.typeCount(TypeEmailStatusChange))
}

func TestSetOrderStatusNoOpWhenUnchanged(t *testing.T) {
	repo := newAdminOrderRepoStub()
	repo.orders["CMD-1"] = storedOrder("CMD-1", entity.PaymentStatusCompleted)
	uc, producer, enqueuer := newAdminOrderFixture(repo)

	result := uc.SetOrderStatus(context.Background(), &model.UpdateOrderStatusRequest{
		OrderNumber:   "CMD-1",
		PaymentStatus: entity.PaymentStatusCompleted,
	})
	require.NoError(t, result.Error)
	assert.Empty(t, repo.statusUpdates)
	assert.Empty(t, producer.statusChanged)
	assert.Empty(t, enqueuer.tasks)
}

func TestSetOrderStatusUnknownOrder(t *testing.T) {
	uc, _, _ := newAdminOrderFixture(newAdminOrderRepoStub())

	result := uc.SetOrderStatus(context.Background(), &model.UpdateOrderStatusRequest{
		OrderNumber:   "CMD-404",
		PaymentStatus: entity.PaymentStatusCompleted,
	})
	require.Error(t, result.Error)
	assert.Equal(t, fiber.StatusNotFound, result.Error.(*httpError.CommonError).Code)
}

func TestDeleteOrder(t *testing.T) {
	repo := newAdminOrderRepoStub()
	repo.orders["CMD-1"] = storedOrder("CMD-1", entity.PaymentStatusCancelled)
	uc, _, _ := newAdminOrderFixture(repo)

	result := uc.DeleteOrder(context.Background(), "CMD-1")
	require.NoError(t, result.Error)
	assert.Equal(t, []string{"CMD-1"}, repo.deleted)

	missing := uc.DeleteOrder(context.Background(), "CMD-404")
	require.Error(t, missing.Error)
	assert.Equal(t, fiber.StatusNotFound, missing.Error.(*httpError.CommonError).Code)
}

func TestTriggerReconcileEnqueues(t *testing.T) {
	uc, _, enqueuer := newAdminOrderFixture(newAdminOrderRepoStub())

	result := uc.TriggerReconcile(context.Background())
	require.NoError(t, result.Error)
	assert.Equal(t, 1, enqueuer.typeCount(TypeReconcilePayments))
}
