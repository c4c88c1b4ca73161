package repository

import (
	"context"

	"storefront-service/src/internal/entity"
	"storefront-service/src/pkg/databases/mysql"
)

type DishRepository struct {
	DB mysql.DBInterface
}

func NewDishRepository(db mysql.DBInterface) *DishRepository {
	return &DishRepository{
		DB: db,
	}
}

func (r *DishRepository) Create(ctx context.Context, dish *entity.Dish) (uint64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO dishes (name, category, description, image_url)
		VALUES (:name, :category, :description, :image_url)
	`
	result, err := db.NamedExecContext(ctx, query, dish)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	return uint64(id), err
}

func (r *DishRepository) Update(ctx context.Context, dish *entity.Dish) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		UPDATE dishes SET
			name = :name, category = :category, description = :description,
			image_url = :image_url, updated_at = NOW()
		WHERE id = :id
	`
	_, err = db.NamedExecContext(ctx, query, dish)
	return err
}

func (r *DishRepository) UpdateImageURL(ctx context.Context, id uint64, imageURL string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `UPDATE dishes SET image_url = ?, updated_at = NOW() WHERE id = ?`, imageURL, id)
	return err
}

func (r *DishRepository) FindByID(ctx context.Context, id uint64) (*entity.Dish, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var dish entity.Dish
	if err := db.GetContext(ctx, &dish, `SELECT * FROM dishes WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *DishRepository) List(ctx context.Context, category string) ([]entity.Dish, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := `SELECT * FROM dishes`
	args := []interface{}{}
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY created_at DESC`

	var dishes []entity.Dish
	if err := db.SelectContext(ctx, &dishes, query, args...); err != nil {
		return nil, err
	}
	return dishes, nil
}

func (r *DishRepository) ListByRestaurant(ctx context.Context, restaurantID uint64) ([]entity.Dish, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var dishes []entity.Dish
	query := `
		SELECT d.* FROM dishes d
		JOIN restaurant_dishes rd ON rd.dish_id = d.id
		WHERE rd.restaurant_id = ? AND rd.is_available = 1
		ORDER BY d.category, d.name
	`
	if err := db.SelectContext(ctx, &dishes, query, restaurantID); err != nil {
		return nil, err
	}
	return dishes, nil
}

func (r *DishRepository) Delete(ctx context.Context, id uint64) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `DELETE FROM dishes WHERE id = ?`, id)
	return err
}
