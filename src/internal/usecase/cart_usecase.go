package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"storefront-service/src/internal/entity"
	"storefront-service/src/internal/model"
	httpError "storefront-service/src/pkg/http-error"
	"storefront-service/src/pkg/log"
	"storefront-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

// MenuFinder resolves the priced (dish, restaurant) option.
type MenuFinder interface {
	FindOption(ctx context.Context, dishID, restaurantID uint64) (*entity.DishOption, error)
}

// ComplementLister lists the complement options wired to a dish.
type ComplementLister interface {
	ListByDish(ctx context.Context, dishID uint64) ([]entity.DishComplementOption, error)
}

type CartUseCase struct {
	Log            log.Log
	Validate       *validator.Validate
	MenuRepository MenuFinder
	Complements    ComplementLister
	Config         *viper.Viper
	Redis          redis.UniversalClient
}

func NewCartUseCase(
	logger log.Log,
	validate *validator.Validate,
	menuRepository MenuFinder,
	complements ComplementLister,
	cfg *viper.Viper,
	redisClient redis.UniversalClient,
) *CartUseCase {
	return &CartUseCase{
		Log:            logger,
		Validate:       validate,
		MenuRepository: menuRepository,
		Complements:    complements,
		Config:         cfg,
		Redis:          redisClient,
	}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("CART:%s", sessionID)
}

func (c *CartUseCase) cartTTL() time.Duration {
	hours := c.Config.GetInt("cart.ttl_hours")
	if hours == 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

func (c *CartUseCase) loadCart(ctx context.Context, sessionID string) (*model.Cart, error) {
	data, err := c.Redis.Get(ctx, cartKey(sessionID)).Result()
	if err == redis.Nil {
		return &model.Cart{SessionID: sessionID, Lines: []model.CartLine{}}, nil
	}
	if err != nil {
		return nil, err
	}

	var cart model.Cart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *CartUseCase) saveCart(ctx context.Context, cart *model.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return c.Redis.Set(ctx, cartKey(cart.SessionID), data, c.cartTTL()).Err()
}

func (c *CartUseCase) toResponse(cart *model.Cart) *model.CartResponse {
	return &model.CartResponse{
		SessionID: cart.SessionID,
		Lines:     cart.Lines,
		Subtotal:  cart.Subtotal(),
		Currency:  c.Config.GetString("app.currency"),
	}
}

func (c *CartUseCase) GetCart(ctx context.Context, request *model.GetCartRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	cart, err := c.loadCart(ctx, request.SessionID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("Error loading cart: %v", err)
		result.Error = errObj
		c.Log.Error("cart-usecase", errObj.Message, "GetCart", request.SessionID)
		return result
	}

	result.Data = c.toResponse(cart)
	return result
}

// AddToCart appends a line or, when an identical (dish, restaurant,
// complement selection) already exists, bumps its quantity. The unit
// price is snapshotted now; later menu changes do not touch the line.
func (c *CartUseCase) AddToCart(ctx context.Context, request *model.AddToCartRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("cart-usecase", errObj.Message, "AddToCart", utils.ConvertString(request))
		return result
	}

	option, err := c.MenuRepository.FindOption(ctx, request.DishID, request.RestaurantID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "This dish is not on that restaurant's menu"
		result.Error = errObj
		c.Log.Error("cart-usecase", errObj.Message, "AddToCart", utils.ConvertString(request))
		return result
	}
	if !option.RestaurantOpen || !option.AvailableAt(time.Now()) {
		errObj := httpError.NewConflict()
		errObj.Message = "This option is currently unavailable"
		result.Error = errObj
		return result
	}

	available, err := c.Complements.ListByDish(ctx, request.DishID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("Error loading complements: %v", err)
		result.Error = errObj
		c.Log.Error("cart-usecase", errObj.Message, "AddToCart", utils.ConvertString(err))
		return result
	}

	snapshot, errObj := snapshotComplements(request.Complements, available)
	if errObj != nil {
		result.Error = errObj
		c.Log.Error("cart-usecase", errObj.Message, "AddToCart", utils.ConvertString(request))
		return result
	}

	line := model.CartLine{
		DishID:         request.DishID,
		DishName:       option.DishName,
		RestaurantID:   request.RestaurantID,
		RestaurantName: option.RestaurantName,
		UnitPrice:      option.Price,
		Quantity:       request.Quantity,
		Complements:    snapshot,
	}
	line.LineID = line.IdentityKey()

	cart, err := c.loadCart(ctx, request.SessionID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("Error loading cart: %v", err)
		result.Error = errObj
		c.Log.Error("cart-usecase", errObj.Message, "AddToCart", request.SessionID)
		return result
	}

	merged := false
	for i := range cart.Lines {
		if cart.Lines[i].LineID == line.LineID {
			cart.Lines[i].Quantity += request.Quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Lines = append(cart.Lines, line)
	}

	if err := c.saveCart(ctx, cart); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("Error saving cart: %v", err)
		result.Error = errObj
		c.Log.Error("cart-usecase", errObj.Message, "AddToCart", request.SessionID)
		return result
	}

	result.Data = c.toResponse(cart)
	return result
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func (c *CartUseCase) UpdateQuantity(ctx context.Context, request *model.UpdateQuantityRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	cart, err := c.loadCart(ctx, request.SessionID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("Error loading cart: %v", err)
		result.Error = errObj
		c.Log.Error("cart-usecase", errObj.Message, "UpdateQuantity", request.SessionID)
		return result
	}

	found := false
	lines := cart.Lines[:0]
	for _, line := range cart.Lines {
		if line.LineID == request.LineID && line.RestaurantID == request.RestaurantID {
			found = true
			if request.Quantity <= 0 {
				continue
			}
			line.Quantity = request.Quantity
		}
		lines = append(lines, line)
	}
	cart.Lines = lines

	if !found {
		errObj := httpError.NewNotFound()
		errObj.Message = "Cart line not found"
		result.Error = errObj
		return result
	}

	if err := c.saveCart(ctx, cart); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("Error saving cart: %v", err)
		result.Error = errObj
		c.Log.Error("cart-usecase", errObj.Message, "UpdateQuantity", request.SessionID)
		return result
	}

	result.Data = c.toResponse(cart)
	return result
}

// ClearCart drops the session's cart after a successful checkout.
func (c *CartUseCase) ClearCart(ctx context.Context, sessionID string) error {
	return c.Redis.Del(ctx, cartKey(sessionID)).Err()
}

// snapshotComplements checks the selection against the dish's wired
// complements and freezes names and prices. A complement repeated in
// the request is merged first, so the max-quantity cap applies to the
// summed quantity and the line identity stays canonical.
func snapshotComplements(selected []model.SelectedComplement, available []entity.DishComplementOption) ([]model.SelectedComplement, *httpError.CommonError) {
	byID := make(map[uint64]entity.DishComplementOption, len(available))
	for _, a := range available {
		byID[a.ComplementID] = a
	}

	merged := make([]model.SelectedComplement, 0, len(selected))
	seen := make(map[uint64]int, len(selected))
	for _, s := range selected {
		if i, ok := seen[s.ComplementID]; ok {
			merged[i].Quantity += s.Quantity
			continue
		}
		seen[s.ComplementID] = len(merged)
		merged = append(merged, s)
	}

	chosen := make(map[uint64]bool, len(merged))
	snapshot := make([]model.SelectedComplement, 0, len(merged))
	for _, s := range merged {
		option, ok := byID[s.ComplementID]
		if !ok {
			errObj := httpError.NewBadRequest()
			errObj.Message = fmt.Sprintf("complement %d is not offered with this dish", s.ComplementID)
			return nil, errObj
		}
		if s.Quantity > option.MaxQuantity {
			errObj := httpError.NewBadRequest()
			errObj.Message = fmt.Sprintf("complement %s exceeds its maximum quantity of %d", option.Name, option.MaxQuantity)
			return nil, errObj
		}
		chosen[s.ComplementID] = true
		snapshot = append(snapshot, model.SelectedComplement{
			ComplementID: s.ComplementID,
			Name:         option.Name,
			Price:        option.Price,
			Quantity:     s.Quantity,
		})
	}

	for _, a := range available {
		if a.IsRequired && !chosen[a.ComplementID] {
			errObj := httpError.NewBadRequest()
			errObj.Message = fmt.Sprintf("complement %s is required for this dish", a.Name)
			return nil, errObj
		}
	}

	return snapshot, nil
}
