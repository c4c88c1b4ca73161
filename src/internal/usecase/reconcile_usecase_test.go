package usecase

import (
	"context"
	"testing"
	"time"

	"storefront-service/src/internal/entity"
	"storefront-service/src/internal/gateway/payment"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reconcilerRepoStub struct {
	pending       []entity.Order
	stale         []entity.Order
	transitions   map[string]string
	alreadyMoved  map[string]bool
	findStaleFrom time.Time
}

func newReconcilerRepoStub() *reconcilerRepoStub {
	return &reconcilerRepoStub{
		transitions:  map[string]string{},
		alreadyMoved: map[string]bool{},
	}
}

func (s *reconcilerRepoStub) FindPendingWithReference(_ context.Context) ([]entity.Order, error) {
	return s.pending, nil
}

func (s *reconcilerRepoStub) FindStalePending(_ context.Context, olderThan time.Time) ([]entity.Order, error) {
	s.findStaleFrom = olderThan
	return s.stale, nil
}

func (s *reconcilerRepoStub) UpdatePaymentStatusFrom(_ context.Context, orderNumber, fromStatus, toStatus string) (bool, error) {
	if s.alreadyMoved[orderNumber] {
		return false, nil
	}
	s.transitions[orderNumber] = toStatus
	return true, nil
}

type reconGatewayStub struct {
	statuses map[string]string
	errors   map[string]error
	calls    int
}

func (s *reconGatewayStub) Name() string { return "stub" }

func (s *reconGatewayStub) CreatePayment(_ context.Context, _ *payment.CreateRequest) (*payment.CreateResponse, error) {
	return nil, nil
}

func (s *reconGatewayStub) GetStatus(_ context.Context, request *payment.StatusRequest) (*payment.StatusResponse, error) {
	s.calls++
	if err, ok := s.errors[request.Reference]; ok {
		return nil, err
	}
	return &payment.StatusResponse{Status: s.statuses[request.Reference]}, nil
}

func pendingOrder(orderNumber, reference string) entity.Order {
	ref := reference
	return entity.Order{
		OrderNumber:      orderNumber,
		PaymentStatus:    entity.PaymentStatusPending,
		PaymentReference: &ref,
	}
}

func newReconcileFixture(repo *reconcilerRepoStub, gateway payment.Gateway, cfg *viper.Viper) (*ReconcileUseCase, *publisherStub, *enqueuerStub) {
	if cfg == nil {
		cfg = viper.New()
	}
	producer := &publisherStub{}
	enqueuer := &enqueuerStub{}
	uc := NewReconcileUseCase(testLogger(), repo, gateway, producer, enqueuer, cfg)
	return uc, producer, enqueuer
}

func TestReconcileOneTransitions(t *testing.T) {
	tests := []struct {
		name           string
		providerStatus string
		expectedStatus string
		transitioned   bool
	}{
		{"success_completes", "SUCCESSFUL", entity.PaymentStatusCompleted, true},
		{"paid_completes", "paid", entity.PaymentStatusCompleted, true},
		{"failed_fails", "FAILED", entity.PaymentStatusFailed, true},
		{"expired_fails", "expired", entity.PaymentStatusFailed, true},
		{"pending_stays", "PENDING", entity.PaymentStatusPending, false},
		{"unknown_stays", "weird-status", entity.PaymentStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newReconcilerRepoStub()
			gateway := &reconGatewayStub{statuses: map[string]string{"ref-1": tt.providerStatus}}
			uc, producer, enqueuer := newReconcileFixture(repo, gateway, nil)

			order := pendingOrder("CMD-1", "ref-1")
			status, err := uc.ReconcileOne(context.Background(), &order)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, status)

			if tt.transitioned {
				assert.Equal(t, tt.expectedStatus, repo.transitions["CMD-1"])
				assert.Len(t, producer.statusChanged, 1)
				assert.Equal(t, 1, enqueuer.typeCount(TypeEmailStatusChange))
			} else {
				assert.Empty(t, repo.transitions)
				assert.Empty(t, producer.statusChanged)
				assert.Empty(t, enqueuer.tasks)
			}
		})
	}
}

func TestReconcileOneSkipsNotificationWhenAlreadyMoved(t *testing.T) {
	repo := newReconcilerRepoStub()
	repo.alreadyMoved["CMD-1"] = true
	gateway := &reconGatewayStub{statuses: map[string]string{"ref-1": "SUCCESSFUL"}}
	uc, producer, enqueuer := newReconcileFixture(repo, gateway, nil)

	order := pendingOrder("CMD-1", "ref-1")
	status, err := uc.ReconcileOne(context.Background(), &order)
	require.NoError(t, err)

	// the concurrent writer owns the notification
	assert.Equal(t, entity.PaymentStatusPending, status)
	assert.Empty(t, producer.statusChanged)
	assert.Empty(t, enqueuer.tasks)
}

func TestReconcileOneGatewayError(t *testing.T) {
	repo := newReconcilerRepoStub()
	gateway := &reconGatewayStub{errors: map[string]error{"ref-1": assert.AnError}}
	uc, producer, _ := newReconcileFixture(repo, gateway, nil)

	order := pendingOrder("CMD-1", "ref-1")
	status, err := uc.ReconcileOne(context.Background(), &order)
	require.Error(t, err)
	assert.Equal(t, entity.PaymentStatusPending, status)
	assert.Empty(t, repo.transitions)
	assert.Empty(t, producer.statusChanged)
}

func TestReconcileBatchSurvivesOneBadOrder(t *testing.T) {
	repo := newReconcilerRepoStub()
	repo.pending = []entity.Order{
		pendingOrder("CMD-1", "ref-1"),
		pendingOrder("CMD-2", "ref-2"),
	}
	gateway := &reconGatewayStub{
		statuses: map[string]string{"ref-2": "SUCCESSFUL"},
		errors:   map[string]error{"ref-1": assert.AnError},
	}
	uc, _, _ := newReconcileFixture(repo, gateway, nil)

	require.NoError(t, uc.Reconcile(context.Background()))
	assert.Equal(t, 2, gateway.calls)
	assert.Equal(t, entity.PaymentStatusCompleted, repo.transitions["CMD-2"])
	assert.NotContains(t, repo.transitions, "CMD-1")
}

func TestReconcileFlagsStalePending(t *testing.T) {
	repo := newReconcilerRepoStub()
	repo.stale = []entity.Order{pendingOrder("CMD-OLD", "ref-old")}

	cfg := viper.New()
	cfg.Set("payment.stale_pending_hours", 24)

	uc, _, enqueuer := newReconcileFixture(repo, &reconGatewayStub{}, cfg)

	require.NoError(t, uc.Reconcile(context.Background()))
	assert.Equal(t, 1, enqueuer.typeCount(TypeEmailStalePending))
	assert.WithinDuration(t, time.Now().Add(-24*time.Hour), repo.findStaleFrom, time.Minute)
}

func TestReconcileStaleReportDisabledByDefault(t *testing.T) {
	repo := newReconcilerRepoStub()
	repo.stale = []entity.Order{pendingOrder("CMD-OLD", "ref-old")}

	uc, _, enqueuer := newReconcileFixture(repo, &reconGatewayStub{}, nil)

	require.NoError(t, uc.Reconcile(context.Background()))
	assert.Zero(t, enqueuer.typeCount(TypeEmailStalePending))
}
