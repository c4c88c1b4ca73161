package usecase

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"storefront-service/src/internal/entity"
	"storefront-service/src/internal/gateway/payment"
	"storefront-service/src/internal/model"
	"storefront-service/src/internal/repository"
	httpError "storefront-service/src/pkg/http-error"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderWriterStub struct {
	orders         map[string]*entity.Order
	duplicatesLeft int
	createCalls    int
	statusUpdates  map[string]string
	references     map[string][2]string
}

func newOrderWriterStub() *orderWriterStub {
	return &orderWriterStub{
		orders:        map[string]*entity.Order{},
		statusUpdates: map[string]string{},
		references:    map[string][2]string{},
	}
}

func (s *orderWriterStub) Create(_ context.Context, order *entity.Order) error {
	s.createCalls++
	if s.duplicatesLeft > 0 {
		s.duplicatesLeft--
		return repository.ErrDuplicateOrderNumber
	}
	saved := *order
	s.orders[order.OrderNumber] = &saved
	return nil
}

func (s *orderWriterStub) FindByOrderNumber(_ context.Context, orderNumber string) (*entity.Order, error) {
	order, ok := s.orders[orderNumber]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return order, nil
}

func (s *orderWriterStub) UpdatePaymentReference(_ context.Context, orderNumber, reference, sessionID string) error {
	s.references[orderNumber] = [2]string{reference, sessionID}
	return nil
}

func (s *orderWriterStub) UpdatePaymentStatus(_ context.Context, orderNumber, toStatus string) error {
	s.statusUpdates[orderNumber] = toStatus
	if order, ok := s.orders[orderNumber]; ok {
		order.PaymentStatus = toStatus
	}
	return nil
}

type feeResolverStub struct {
	town *entity.Town
	zone *entity.DeliveryZone
}

func (s *feeResolverStub) FindTownByName(_ context.Context, name string) (*entity.Town, error) {
	if s.town == nil {
		return nil, sql.ErrNoRows
	}
	return s.town, nil
}

func (s *feeResolverStub) FindZoneByStreet(_ context.Context, town, street string) (*entity.DeliveryZone, error) {
	if s.zone == nil {
		return nil, sql.ErrNoRows
	}
	return s.zone, nil
}

type paymentMethodStub struct {
	methods map[string]*entity.PaymentMethod
}

func (s *paymentMethodStub) FindByCode(_ context.Context, code string) (*entity.PaymentMethod, error) {
	method, ok := s.methods[code]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return method, nil
}

type gatewayStub struct {
	createResp  *payment.CreateResponse
	createErr   error
	statusResp  *payment.StatusResponse
	statusErr   error
	createCalls int
	statusCalls int
}

func (s *gatewayStub) Name() string { return "stub" }

func (s *gatewayStub) CreatePayment(_ context.Context, _ *payment.CreateRequest) (*payment.CreateResponse, error) {
	s.createCalls++
	return s.createResp, s.createErr
}

func (s *gatewayStub) GetStatus(_ context.Context, _ *payment.StatusRequest) (*payment.StatusResponse, error) {
	s.statusCalls++
	return s.statusResp, s.statusErr
}

type enqueuerStub struct {
	tasks []*asynq.Task
}

func (s *enqueuerStub) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	s.tasks = append(s.tasks, task)
	return &asynq.TaskInfo{ID: task.Type()}, nil
}

func (s *enqueuerStub) typeCount(taskType string) int {
	count := 0
	for _, task := range s.tasks {
		if task.Type() == taskType {
			count++
		}
	}
	return count
}

type publisherStub struct {
	created       []*model.OrderCreatedEvent
	statusChanged []*model.OrderStatusChangedEvent
}

func (s *publisherStub) SendOrderCreated(event *model.OrderCreatedEvent) error {
	s.created = append(s.created, event)
	return nil
}

func (s *publisherStub) SendStatusChanged(event *model.OrderStatusChangedEvent) error {
	s.statusChanged = append(s.statusChanged, event)
	return nil
}

type checkoutFixture struct {
	uc       *CheckoutUseCase
	cart     *CartUseCase
	orders   *orderWriterStub
	gateway  *gatewayStub
	enqueuer *enqueuerStub
	producer *publisherStub
}

func newCheckoutFixture(t *testing.T, fees *feeResolverStub, methods *paymentMethodStub) *checkoutFixture {
	menu := &menuFinderStub{options: map[uint64]*entity.DishOption{
		12*1000 + 3: dishOption(12, 3, 2000, true, true),
	}}
	cart := newCartFixture(t, menu, &complementListerStub{})

	orders := newOrderWriterStub()
	gateway := &gatewayStub{
		createResp: &payment.CreateResponse{
			RedirectURL: "https://pay.example/p/sess_1",
			Reference:   "ref_1",
			SessionID:   "sess_1",
		},
	}
	enqueuer := &enqueuerStub{}
	producer := &publisherStub{}

	cfg := viper.New()
	cfg.Set("app.currency", "XAF")
	cfg.Set("order.number_prefix", "CMD")

	uc := NewCheckoutUseCase(
		testLogger(), validator.New(), cart, orders, fees, methods,
		gateway, producer, enqueuer, nil, cfg,
	)
	return &checkoutFixture{uc: uc, cart: cart, orders: orders, gateway: gateway, enqueuer: enqueuer, producer: producer}
}

func activeTown(fee int64) *entity.Town {
	return &entity.Town{Name: "Douala", IsActive: true, DefaultFee: fee}
}

func onlineMethods() *paymentMethodStub {
	return &paymentMethodStub{methods: map[string]*entity.PaymentMethod{
		"momo": {Code: "momo", Category: entity.PaymentCategoryOnline, IsActive: true},
	}}
}

func checkoutRequest(total int64) *model.CheckoutRequest {
	return &model.CheckoutRequest{
		SessionID:       "s1",
		CustomerName:    "Ama",
		CustomerPhone:   "670000000",
		DeliveryAddress: "12 Rue des Manguiers",
		Town:            "Douala",
		Street:          "Akwa",
		PaymentMethod:   "momo",
		ClientTotal:     total,
	}
}

func fillCart(t *testing.T, f *checkoutFixture, quantity int) {
	result := f.cart.AddToCart(context.Background(), &model.AddToCartRequest{
		SessionID: "s1", DishID: 12, RestaurantID: 3, Quantity: quantity,
	})
	require.NoError(t, result.Error)
}

func TestCheckoutOnlineHappyPath(t *testing.T) {
	fees := &feeResolverStub{town: activeTown(1000), zone: &entity.DeliveryZone{DeliveryFee: 500, IsActive: true}}
	f := newCheckoutFixture(t, fees, onlineMethods())
	fillCart(t, f, 2)

	// 2 x 2000 + 500 zone fee
	result := f.uc.Checkout(context.Background(), checkoutRequest(4500))
	require.NoError(t, result.Error)

	response := result.Data.(*model.CheckoutResponse)
	assert.Equal(t, int64(4000), response.Subtotal)
	assert.Equal(t, int64(500), response.DeliveryFee)
	assert.Equal(t, int64(4500), response.Total)
	assert.Equal(t, entity.PaymentStatusPending, response.PaymentStatus)
	assert.Equal(t, "https://pay.example/p/sess_1", response.RedirectURL)
	assert.Empty(t, response.PaymentInstructions)

	order := f.orders.orders[response.OrderNumber]
	require.NotNil(t, order)
	assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)

	var items []entity.OrderItem
	require.NoError(t, json.Unmarshal(order.Items, &items))
	require.Len(t, items, 1)
	assert.Equal(t, int64(2000), items[0].UnitPrice)
	assert.Equal(t, 2, items[0].Quantity)

	assert.Equal(t, [2]string{"ref_1", "sess_1"}, f.orders.references[response.OrderNumber])
	assert.Len(t, f.producer.created, 1)
	assert.Equal(t, 1, f.enqueuer.typeCount(TypeEmailOrderCreated))

	// the cart is consumed
	after := f.cart.GetCart(context.Background(), &model.GetCartRequest{SessionID: "s1"})
	require.NoError(t, after.Error)
	assert.Empty(t, after.Data.(*model.CartResponse).Lines)
}

func TestCheckoutBillsComplementsOncePerLine(t *testing.T) {
	menu := &menuFinderStub{options: map[uint64]*entity.DishOption{
		12*1000 + 3: dishOption(12, 3, 2000, true, true),
	}}
	plantain := entity.DishComplementOption{Name: "Plantain"}
	plantain.ComplementID = 7
	plantain.Price = 500
	plantain.MaxQuantity = 3
	cart := newCartFixture(t, menu, &complementListerStub{byDish: map[uint64][]entity.DishComplementOption{
		12: {plantain},
	}})

	cfg := viper.New()
	cfg.Set("app.currency", "XAF")
	cfg.Set("order.number_prefix", "CMD")

	orders := newOrderWriterStub()
	gateway := &gatewayStub{createResp: &payment.CreateResponse{RedirectURL: "https://pay.example/p/s", Reference: "ref_1", SessionID: "sess_1"}}
	fees := &feeResolverStub{town: activeTown(500)}
	uc := NewCheckoutUseCase(
		testLogger(), validator.New(), cart, orders, fees, onlineMethods(),
		gateway, &publisherStub{}, &enqueuerStub{}, nil, cfg,
	)

	added := cart.AddToCart(context.Background(), &model.AddToCartRequest{
		SessionID: "s1", DishID: 12, RestaurantID: 3, Quantity: 2,
		Complements: []model.SelectedComplement{{ComplementID: 7, Quantity: 1}},
	})
	require.NoError(t, added.Error)

	// 2 x 2000 dish + 1 x 500 complement + 500 delivery
	result := uc.Checkout(context.Background(), checkoutRequest(5000))
	require.NoError(t, result.Error)

	response := result.Data.(*model.CheckoutResponse)
	assert.Equal(t, int64(4500), response.Subtotal)
	assert.Equal(t, int64(500), response.DeliveryFee)
	assert.Equal(t, int64(5000), response.Total)

	var items []entity.OrderItem
	require.NoError(t, json.Unmarshal(orders.orders[response.OrderNumber].Items, &items))
	require.Len(t, items, 1)
	assert.Equal(t, int64(2000), items[0].UnitPrice)
	assert.Equal(t, 2, items[0].Quantity)
	require.Len(t, items[0].Complements, 1)
	assert.Equal(t, int64(500), items[0].Complements[0].Price)
	assert.Equal(t, 1, items[0].Complements[0].Quantity)
}

func TestCheckoutRejectsTotalMismatch(t *testing.T) {
	fees := &feeResolverStub{town: activeTown(500)}
	f := newCheckoutFixture(t, fees, onlineMethods())
	fillCart(t, f, 2)

	// server computes 4000 + 500, the client claims 4000
	result := f.uc.Checkout(context.Background(), checkoutRequest(4000))
	require.Error(t, result.Error)
	assert.Equal(t, fiber.StatusUnprocessableEntity, result.Error.(*httpError.CommonError).Code)
	assert.Zero(t, f.orders.createCalls)
}

func TestCheckoutEmptyCart(t *testing.T) {
	fees := &feeResolverStub{town: activeTown(500)}
	f := newCheckoutFixture(t, fees, onlineMethods())

	result := f.uc.Checkout(context.Background(), checkoutRequest(4500))
	require.Error(t, result.Error)
	assert.Equal(t, fiber.StatusBadRequest, result.Error.(*httpError.CommonError).Code)
}

func TestCheckoutInactiveTown(t *testing.T) {
	tests := []struct {
		name string
		town *entity.Town
	}{
		{"unknown_town", nil},
		{"inactive_town", &entity.Town{Name: "Douala", IsActive: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCheckoutFixture(t, &feeResolverStub{town: tt.town}, onlineMethods())
			fillCart(t, f, 1)

			result := f.uc.Checkout(context.Background(), checkoutRequest(2500))
			require.Error(t, result.Error)
			assert.Equal(t, fiber.StatusBadRequest, result.Error.(*httpError.CommonError).Code)
		})
	}
}

func TestCheckoutUnknownPaymentMethod(t *testing.T) {
	fees := &feeResolverStub{town: activeTown(500)}
	f := newCheckoutFixture(t, fees, &paymentMethodStub{methods: map[string]*entity.PaymentMethod{}})
	fillCart(t, f, 2)

	result := f.uc.Checkout(context.Background(), checkoutRequest(4500))
	require.Error(t, result.Error)
	assert.Equal(t, fiber.StatusBadRequest, result.Error.(*httpError.CommonError).Code)
}

func TestCheckoutOfflineMethodReturnsInstructions(t *testing.T) {
	details, _ := json.Marshal([]model.OfflineInstruction{
		{Provider: "OM", Phone: "690000000", AccountName: "Storefront SARL", Instructions: "Send and keep the receipt"},
	})
	methods := &paymentMethodStub{methods: map[string]*entity.PaymentMethod{
		"momo": {Code: "momo", Category: entity.PaymentCategoryOffline, IsActive: true, PaymentDetails: details},
	}}
	fees := &feeResolverStub{town: activeTown(500)}
	f := newCheckoutFixture(t, fees, methods)
	fillCart(t, f, 2)

	result := f.uc.Checkout(context.Background(), checkoutRequest(4500))
	require.NoError(t, result.Error)

	response := result.Data.(*model.CheckoutResponse)
	assert.Empty(t, response.RedirectURL)
	require.Len(t, response.PaymentInstructions, 1)
	assert.Equal(t, "OM", response.PaymentInstructions[0].Provider)
	assert.Zero(t, f.gateway.createCalls)
}

func TestCheckoutGatewayFailureMarksOrderFailed(t *testing.T) {
	fees := &feeResolverStub{town: activeTown(500)}
	f := newCheckoutFixture(t, fees, onlineMethods())
	f.gateway.createResp = nil
	f.gateway.createErr = assert.AnError
	fillCart(t, f, 2)

	result := f.uc.Checkout(context.Background(), checkoutRequest(4500))
	require.Error(t, result.Error)
	assert.Equal(t, fiber.StatusInternalServerError, result.Error.(*httpError.CommonError).Code)

	require.Len(t, f.orders.statusUpdates, 1)
	for _, status := range f.orders.statusUpdates {
		assert.Equal(t, entity.PaymentStatusFailed, status)
	}
}

func TestCheckoutRetriesDuplicateOrderNumber(t *testing.T) {
	fees := &feeResolverStub{town: activeTown(500)}
	f := newCheckoutFixture(t, fees, onlineMethods())
	f.orders.duplicatesLeft = 1
	fillCart(t, f, 2)

	result := f.uc.Checkout(context.Background(), checkoutRequest(4500))
	require.NoError(t, result.Error)
	assert.Equal(t, 2, f.orders.createCalls)
}

func TestCheckoutGivesUpAfterRepeatedCollisions(t *testing.T) {
	fees := &feeResolverStub{town: activeTown(500)}
	f := newCheckoutFixture(t, fees, onlineMethods())
	f.orders.duplicatesLeft = 2
	fillCart(t, f, 2)

	result := f.uc.Checkout(context.Background(), checkoutRequest(4500))
	require.Error(t, result.Error)
	assert.Equal(t, 2, f.orders.createCalls)
}

func TestResolveDeliveryFee(t *testing.T) {
	tests := []struct {
		name     string
		town     *entity.Town
		zone     *entity.DeliveryZone
		expected int64
	}{
		{"free_delivery_town_wins", &entity.Town{FreeDelivery: true, DefaultFee: 1000}, &entity.DeliveryZone{DeliveryFee: 500}, 0},
		{"zone_fee", &entity.Town{DefaultFee: 1000}, &entity.DeliveryZone{DeliveryFee: 500}, 500},
		{"town_default_without_zone", &entity.Town{DefaultFee: 1000}, nil, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveDeliveryFee(tt.town, tt.zone))
		})
	}
}
