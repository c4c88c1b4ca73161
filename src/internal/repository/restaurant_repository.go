package repository

import (
	"context"

	"storefront-service/src/internal/entity"
	"storefront-service/src/pkg/databases/mysql"
)

type RestaurantRepository struct {
	DB mysql.DBInterface
}

func NewRestaurantRepository(db mysql.DBInterface) *RestaurantRepository {
	return &RestaurantRepository{
		DB: db,
	}
}

func (r *RestaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) (uint64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO restaurants (name, town, opening_days, opens_at, closes_at, is_open, rating, delivery_time, phone, location)
		VALUES (:name, :town, :opening_days, :opens_at, :closes_at, :is_open, :rating, :delivery_time, :phone, :location)
	`
	result, err := db.NamedExecContext(ctx, query, restaurant)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	return uint64(id), err
}

func (r *RestaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		UPDATE restaurants SET
			name = :name, town = :town, opening_days = :opening_days,
			opens_at = :opens_at, closes_at = :closes_at, is_open = :is_open,
			rating = :rating, delivery_time = :delivery_time, phone = :phone,
			location = :location, updated_at = NOW()
		WHERE id = :id
	`
	_, err = db.NamedExecContext(ctx, query, restaurant)
	return err
}

func (r *RestaurantRepository) FindByID(ctx context.Context, id uint64) (*entity.Restaurant, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var restaurant entity.Restaurant
	if err := db.GetContext(ctx, &restaurant, `SELECT * FROM restaurants WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *RestaurantRepository) List(ctx context.Context) ([]entity.Restaurant, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var restaurants []entity.Restaurant
	query := `SELECT * FROM restaurants ORDER BY created_at DESC`
	if err := db.SelectContext(ctx, &restaurants, query); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *RestaurantRepository) ListOpenByTown(ctx context.Context, town string) ([]entity.Restaurant, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var restaurants []entity.Restaurant
	query := `SELECT * FROM restaurants WHERE town = ? AND is_open = 1 ORDER BY rating DESC`
	if err := db.SelectContext(ctx, &restaurants, query, town); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *RestaurantRepository) ToggleOpen(ctx context.Context, id uint64) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `UPDATE restaurants SET is_open = NOT is_open, updated_at = NOW() WHERE id = ?`, id)
	return err
}

func (r *RestaurantRepository) Delete(ctx context.Context, id uint64) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `DELETE FROM restaurants WHERE id = ?`, id)
	return err
}
