package mailer

import (
	"testing"
	"time"

	"storefront-service/src/internal/entity"
	"storefront-service/src/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderOrderCreated(t *testing.T) {
	order := &model.OrderResponse{
		OrderNumber:   "CMD-20250101-1234",
		CustomerName:  "Ama",
		CustomerPhone: "670000000",
		Town:          "Douala",
		Street:        "Akwa",
		Items: []entity.OrderItem{
			{Name: "Ndole", Restaurant: "Chez Mado", UnitPrice: 2500, Quantity: 2},
		},
		Subtotal:      5000,
		DeliveryFee:   500,
		Total:         5500,
		Currency:      "XAF",
		PaymentMethod: "momo",
		PaymentStatus: "pending",
	}

	body, err := RenderOrderCreated(order)
	require.NoError(t, err)
	assert.Contains(t, body, "CMD-20250101-1234")
	assert.Contains(t, body, "Ndole")
	assert.Contains(t, body, "Chez Mado")
	assert.Contains(t, body, "5500 XAF")
}

func TestRenderStatusChanged(t *testing.T) {
	body, err := RenderStatusChanged(&StatusChangedData{
		OrderNumber: "CMD-1",
		FromStatus:  "pending",
		ToStatus:    "completed",
		Total:       5500,
		Currency:    "XAF",
	})
	require.NoError(t, err)
	assert.Contains(t, body, "CMD-1")
	assert.Contains(t, body, "pending")
	assert.Contains(t, body, "completed")
}

func TestRenderStalePending(t *testing.T) {
	orders := []model.OrderResponse{
		{OrderNumber: "CMD-1", CustomerName: "Ama", Total: 5500, Currency: "XAF", CreatedAt: time.Now().Add(-48 * time.Hour)},
		{OrderNumber: "CMD-2", CustomerName: "Bea", Total: 2000, Currency: "XAF", CreatedAt: time.Now().Add(-30 * time.Hour)},
	}

	body, err := RenderStalePending(orders)
	require.NoError(t, err)
	assert.Contains(t, body, "2 order(s) pending for too long")
	assert.Contains(t, body, "CMD-1")
	assert.Contains(t, body, "CMD-2")
}

func TestRenderAdminSignup(t *testing.T) {
	body, err := RenderAdminSignup(&AdminSignupData{FullName: "Ama N.", Email: "ama@example.com", Role: "manager"})
	require.NoError(t, err)
	assert.Contains(t, body, "Ama N.")
	assert.Contains(t, body, "manager")
}
