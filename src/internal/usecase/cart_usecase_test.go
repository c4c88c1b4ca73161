package usecase

import (
	"context"
	"testing"

	"storefront-service/src/internal/entity"
	"storefront-service/src/internal/model"
	httpError "storefront-service/src/pkg/http-error"
	"storefront-service/src/pkg/log"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() log.Log {
	v := viper.New()
	v.Set("log.level", "ERROR")
	log.InitLogger(v)
	return log.GetLogger()
}

type menuFinderStub struct {
	options map[uint64]*entity.DishOption
	err     error
}

func (s *menuFinderStub) FindOption(_ context.Context, dishID, restaurantID uint64) (*entity.DishOption, error) {
	if s.err != nil {
		return nil, s.err
	}
	option, ok := s.options[dishID*1000+restaurantID]
	if !ok {
		return nil, assert.AnError
	}
	return option, nil
}

type complementListerStub struct {
	byDish map[uint64][]entity.DishComplementOption
}

func (s *complementListerStub) ListByDish(_ context.Context, dishID uint64) ([]entity.DishComplementOption, error) {
	return s.byDish[dishID], nil
}

func dishOption(dishID, restaurantID uint64, price int64, available, open bool) *entity.DishOption {
	option := &entity.DishOption{
		DishName:       "Ndole",
		RestaurantName: "Chez Mado",
		RestaurantOpen: open,
	}
	option.DishID = dishID
	option.RestaurantID = restaurantID
	option.Price = price
	option.IsAvailable = available
	return option
}

func newCartFixture(t *testing.T, menu *menuFinderStub, complements *complementListerStub) *CartUseCase {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	cfg := viper.New()
	cfg.Set("app.currency", "XAF")

	return NewCartUseCase(testLogger(), validator.New(), menu, complements, cfg, client)
}

func TestAddToCartMergesIdenticalSelections(t *testing.T) {
	menu := &menuFinderStub{options: map[uint64]*entity.DishOption{
		12*1000 + 3: dishOption(12, 3, 2000, true, true),
	}}
	uc := newCartFixture(t, menu, &complementListerStub{})
	ctx := context.Background()

	first := uc.AddToCart(ctx, &model.AddToCartRequest{
		SessionID: "s1", DishID: 12, RestaurantID: 3, Quantity: 1,
	})
	require.NoError(t, first.Error)

	second := uc.AddToCart(ctx, &model.AddToCartRequest{
		SessionID: "s1", DishID: 12, RestaurantID: 3, Quantity: 2,
	})
	require.NoError(t, second.Error)

	response := second.Data.(*model.CartResponse)
	require.Len(t, response.Lines, 1)
	assert.Equal(t, 3, response.Lines[0].Quantity)
	assert.Equal(t, int64(6000), response.Subtotal)
	assert.Equal(t, "XAF", response.Currency)
}

func TestAddToCartKeepsDistinctSelectionsApart(t *testing.T) {
	menu := &menuFinderStub{options: map[uint64]*entity.DishOption{
		12*1000 + 3: dishOption(12, 3, 2000, true, true),
		12*1000 + 4: dishOption(12, 4, 2200, true, true),
	}}
	uc := newCartFixture(t, menu, &complementListerStub{})
	ctx := context.Background()

	require.NoError(t, uc.AddToCart(ctx, &model.AddToCartRequest{
		SessionID: "s1", DishID: 12, RestaurantID: 3, Quantity: 1,
	}).Error)

	// same dish, different restaurant: a new line
	result := uc.AddToCart(ctx, &model.AddToCartRequest{
		SessionID: "s1", DishID: 12, RestaurantID: 4, Quantity: 1,
	})
	require.NoError(t, result.Error)

	response := result.Data.(*model.CartResponse)
	assert.Len(t, response.Lines, 2)
	assert.Equal(t, int64(4200), response.Subtotal)
}

func TestAddToCartSnapshotsComplementPrices(t *testing.T) {
	menu := &menuFinderStub{options: map[uint64]*entity.DishOption{
		12*1000 + 3: dishOption(12, 3, 2000, true, true),
	}}
	plantain := entity.DishComplementOption{Name: "Plantain"}
	plantain.ComplementID = 7
	plantain.Price = 500
	plantain.MaxQuantity = 3
	complements := &complementListerStub{byDish: map[uint64][]entity.DishComplementOption{
		12: {plantain},
	}}
	uc := newCartFixture(t, menu, complements)

	result := uc.AddToCart(context.Background(), &model.AddToCartRequest{
		SessionID: "s1", DishID: 12, RestaurantID: 3, Quantity: 2,
		Complements: []model.SelectedComplement{{ComplementID: 7, Quantity: 1}},
	})
	require.NoError(t, result.Error)

	// the complement is billed once for the line, not per dish unit:
	// 2 x 2000 + 500
	response := result.Data.(*model.CartResponse)
	require.Len(t, response.Lines, 1)
	assert.Equal(t, int64(2000), response.Lines[0].UnitPrice)
	assert.Equal(t, int64(4500), response.Subtotal)
	assert.Equal(t, "Plantain", response.Lines[0].Complements[0].Name)
	assert.Equal(t, int64(500), response.Lines[0].Complements[0].Price)
}

func TestAddToCartMergesDuplicateComplementEntries(t *testing.T) {
	menu := &menuFinderStub{options: map[uint64]*entity.DishOption{
		12*1000 + 3: dishOption(12, 3, 2000, true, true),
	}}
	plantain := entity.DishComplementOption{Name: "Plantain"}
	plantain.ComplementID = 7
	plantain.Price = 500
	plantain.MaxQuantity = 3
	complements := &complementListerStub{byDish: map[uint64][]entity.DishComplementOption{
		12: {plantain},
	}}
	uc := newCartFixture(t, menu, complements)
	ctx := context.Background()

	first := uc.AddToCart(ctx, &model.AddToCartRequest{
		SessionID: "s1", DishID: 12, RestaurantID: 3, Quantity: 1,
		Complements: []model.SelectedComplement{
			{ComplementID: 7, Quantity: 1},
			{ComplementID: 7, Quantity: 1},
		},
	})
	require.NoError(t, first.Error)

	response := first.Data.(*model.CartResponse)
	require.Len(t, response.Lines, 1)
	require.Len(t, response.Lines[0].Complements, 1)
	assert.Equal(t, 2, response.Lines[0].Complements[0].Quantity)
	// 2000 + 2 x 500
	assert.Equal(t, int64(3000), response.Subtotal)

	// the merged selection shares the identity of a pre-summed one
	second := uc.AddToCart(ctx, &model.AddToCartRequest{
		SessionID: "s1", DishID: 12, RestaurantID: 3, Quantity: 1,
		Complements: []model.SelectedComplement{{ComplementID: 7, Quantity: 2}},
	})
	require.NoError(t, second.Error)
	assert.Len(t, second.Data.(*model.CartResponse).Lines, 1)

	// summed duplicates still hit the cap
	over := uc.AddToCart(ctx, &model.AddToCartRequest{
		SessionID: "s2", DishID: 12, RestaurantID: 3, Quantity: 1,
		Complements: []model.SelectedComplement{
			{ComplementID: 7, Quantity: 2},
			{ComplementID: 7, Quantity: 2},
		},
	})
	require.Error(t, over.Error)
	assert.Equal(t, fiber.StatusBadRequest, over.Error.(*httpError.CommonError).Code)
}

func TestAddToCartRejectsUnavailableOption(t *testing.T) {
	tests := []struct {
		name   string
		option *entity.DishOption
	}{
		{"dish_unavailable", dishOption(12, 3, 2000, false, true)},
		{"restaurant_closed", dishOption(12, 3, 2000, true, false)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			menu := &menuFinderStub{options: map[uint64]*entity.DishOption{
				12*1000 + 3: tt.option,
			}}
			uc := newCartFixture(t, menu, &complementListerStub{})

			result := uc.AddToCart(context.Background(), &model.AddToCartRequest{
				SessionID: "s1", DishID: 12, RestaurantID: 3, Quantity: 1,
			})
			require.Error(t, result.Error)
			commonErr := result.Error.(*httpError.CommonError)
			assert.Equal(t, fiber.StatusConflict, commonErr.Code)
		})
	}
}

func TestAddToCartComplementValidation(t *testing.T) {
	required := entity.DishComplementOption{Name: "Sauce"}
	required.ComplementID = 5
	required.Price = 200
	required.MaxQuantity = 2
	required.IsRequired = true

	tests := []struct {
		name        string
		complements []model.SelectedComplement
	}{
		{"unknown_complement", []model.SelectedComplement{{ComplementID: 5, Quantity: 1}, {ComplementID: 99, Quantity: 1}}},
		{"exceeds_max_quantity", []model.SelectedComplement{{ComplementID: 5, Quantity: 3}}},
		{"missing_required", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			menu := &menuFinderStub{options: map[uint64]*entity.DishOption{
				12*1000 + 3: dishOption(12, 3, 2000, true, true),
			}}
			complements := &complementListerStub{byDish: map[uint64][]entity.DishComplementOption{
				12: {required},
			}}
			uc := newCartFixture(t, menu, complements)

			result := uc.AddToCart(context.Background(), &model.AddToCartRequest{
				SessionID: "s1", DishID: 12, RestaurantID: 3, Quantity: 1,
				Complements: tt.complements,
			})
			require.Error(t, result.Error)
			commonErr := result.Error.(*httpError.CommonError)
			assert.Equal(t, fiber.StatusBadRequest, commonErr.Code)
		})
	}
}

func TestUpdateQuantity(t *testing.T) {
	menu := &menuFinderStub{options: map[uint64]*entity.DishOption{
		12*1000 + 3: dishOption(12, 3, 2000, true, true),
	}}
	uc := newCartFixture(t, menu, &complementListerStub{})
	ctx := context.Background()

	added := uc.AddToCart(ctx, &model.AddToCartRequest{
		SessionID: "s1", DishID: 12, RestaurantID: 3, Quantity: 1,
	})
	require.NoError(t, added.Error)
	lineID := added.Data.(*model.CartResponse).Lines[0].LineID

	updated := uc.UpdateQuantity(ctx, &model.UpdateQuantityRequest{
		SessionID: "s1", LineID: lineID, RestaurantID: 3, Quantity: 4,
	})
	require.NoError(t, updated.Error)
	assert.Equal(t, 4, updated.Data.(*model.CartResponse).Lines[0].Quantity)

	// zero removes the line
	removed := uc.UpdateQuantity(ctx, &model.UpdateQuantityRequest{
		SessionID: "s1", LineID: lineID, RestaurantID: 3, Quantity: 0,
	})
	require.NoError(t, removed.Error)
	assert.Empty(t, removed.Data.(*model.CartResponse).Lines)

	// the line is gone now
	missing := uc.UpdateQuantity(ctx, &model.UpdateQuantityRequest{
		SessionID: "s1", LineID: lineID, RestaurantID: 3, Quantity: 1,
	})
	require.Error(t, missing.Error)
	assert.Equal(t, fiber.StatusNotFound, missing.Error.(*httpError.CommonError).Code)
}

func TestGetCartEmptySession(t *testing.T) {
	uc := newCartFixture(t, &menuFinderStub{}, &complementListerStub{})

	result := uc.GetCart(context.Background(), &model.GetCartRequest{SessionID: "fresh"})
	require.NoError(t, result.Error)

	response := result.Data.(*model.CartResponse)
	assert.Empty(t, response.Lines)
	assert.Equal(t, int64(0), response.Subtotal)
}

func TestClearCart(t *testing.T) {
	menu := &menuFinderStub{options: map[uint64]*entity.DishOption{
		12*1000 + 3: dishOption(12, 3, 2000, true, true),
	}}
	uc := newCartFixture(t, menu, &complementListerStub{})
	ctx := context.Background()

	require.NoError(t, uc.AddToCart(ctx, &model.AddToCartRequest{
		SessionID: "s1", DishID: 12, RestaurantID: 3, Quantity: 1,
	}).Error)
	require.NoError(t, uc.ClearCart(ctx, "s1"))

	result := uc.GetCart(ctx, &model.GetCartRequest{SessionID: "s1"})
	require.NoError(t, result.Error)
	assert.Empty(t, result.Data.(*model.CartResponse).Lines)
}
