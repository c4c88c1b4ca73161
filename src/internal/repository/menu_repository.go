package repository

import (
	"context"

	"storefront-service/src/internal/entity"
	"storefront-service/src/pkg/databases/mysql"
)

// MenuRepository manages the restaurant_dishes join, the single
// source of dish prices.
type MenuRepository struct {
	DB mysql.DBInterface
}

func NewMenuRepository(db mysql.DBInterface) *MenuRepository {
	return &MenuRepository{
		DB: db,
	}
}

func (r *MenuRepository) Create(ctx context.Context, item *entity.RestaurantDish) (uint64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO restaurant_dishes (restaurant_id, dish_id, price, currency, days, from_time, to_time, is_available)
		VALUES (:restaurant_id, :dish_id, :price, :currency, :days, :from_time, :to_time, :is_available)
	`
	result, err := db.NamedExecContext(ctx, query, item)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	return uint64(id), err
}

func (r *MenuRepository) Update(ctx context.Context, item *entity.RestaurantDish) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		UPDATE restaurant_dishes SET
			restaurant_id = :restaurant_id, dish_id = :dish_id, price = :price,
			currency = :currency, days = :days, from_time = :from_time,
			to_time = :to_time, is_available = :is_available, updated_at = NOW()
		WHERE id = :id
	`
	_, err = db.NamedExecContext(ctx, query, item)
	return err
}

// FindOption resolves the priced option for one (dish, restaurant) pair.
// This is the row checkout trusts for unit prices.
func (r *MenuRepository) FindOption(ctx context.Context, dishID, restaurantID uint64) (*entity.DishOption, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var option entity.DishOption
	query := `
		SELECT rd.*, d.name AS dish_name, rs.name AS restaurant_name, rs.is_open AS restaurant_open, rs.rating
		FROM restaurant_dishes rd
		JOIN dishes d ON d.id = rd.dish_id
		JOIN restaurants rs ON rs.id = rd.restaurant_id
		WHERE rd.dish_id = ? AND rd.restaurant_id = ?
	`
	if err := db.GetContext(ctx, &option, query, dishID, restaurantID); err != nil {
		return nil, err
	}
	return &option, nil
}

func (r *MenuRepository) ListOptionsByDish(ctx context.Context, dishID uint64) ([]entity.DishOption, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var options []entity.DishOption
	query := `
		SELECT rd.*, d.name AS dish_name, rs.name AS restaurant_name, rs.is_open AS restaurant_open, rs.rating
		FROM restaurant_dishes rd
		JOIN dishes d ON d.id = rd.dish_id
		JOIN restaurants rs ON rs.id = rd.restaurant_id
		WHERE rd.dish_id = ?
		ORDER BY rd.price ASC
	`
	if err := db.SelectContext(ctx, &options, query, dishID); err != nil {
		return nil, err
	}
	return options, nil
}

func (r *MenuRepository) List(ctx context.Context) ([]entity.RestaurantDish, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var items []entity.RestaurantDish
	query := `SELECT * FROM restaurant_dishes ORDER BY created_at DESC`
	if err := db.SelectContext(ctx, &items, query); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MenuRepository) ToggleAvailability(ctx context.Context, id uint64) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `UPDATE restaurant_dishes SET is_available = NOT is_available, updated_at = NOW() WHERE id = ?`, id)
	return err
}

func (r *MenuRepository) Delete(ctx context.Context, id uint64) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `DELETE FROM restaurant_dishes WHERE id = ?`, id)
	return err
}
