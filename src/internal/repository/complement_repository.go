package repository

import (
	"context"

	"storefront-service/src/internal/entity"
	"storefront-service/src/pkg/databases/mysql"
)

type ComplementRepository struct {
	DB mysql.DBInterface
}

func NewComplementRepository(db mysql.DBInterface) *ComplementRepository {
	return &ComplementRepository{
		DB: db,
	}
}

func (r *ComplementRepository) Create(ctx context.Context, complement *entity.Complement) (uint64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	result, err := db.NamedExecContext(ctx,
		`INSERT INTO complements (name, price) VALUES (:name, :price)`, complement)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	return uint64(id), err
}

func (r *ComplementRepository) Update(ctx context.Context, complement *entity.Complement) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.NamedExecContext(ctx,
		`UPDATE complements SET name = :name, price = :price, updated_at = NOW() WHERE id = :id`, complement)
	return err
}

func (r *ComplementRepository) List(ctx context.Context) ([]entity.Complement, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var complements []entity.Complement
	if err := db.SelectContext(ctx, &complements, `SELECT * FROM complements ORDER BY created_at DESC`); err != nil {
		return nil, err
	}
	return complements, nil
}

func (r *ComplementRepository) Delete(ctx context.Context, id uint64) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `DELETE FROM complements WHERE id = ?`, id)
	return err
}

func (r *ComplementRepository) CreateLink(ctx context.Context, link *entity.DishComplement) (uint64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO dish_complements (dish_id, complement_id, price, is_required, max_quantity)
		VALUES (:dish_id, :complement_id, :price, :is_required, :max_quantity)
	`
	result, err := db.NamedExecContext(ctx, query, link)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	return uint64(id), err
}

func (r *ComplementRepository) UpdateLink(ctx context.Context, link *entity.DishComplement) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		UPDATE dish_complements SET
			dish_id = :dish_id, complement_id = :complement_id, price = :price,
			is_required = :is_required, max_quantity = :max_quantity, updated_at = NOW()
		WHERE id = :id
	`
	_, err = db.NamedExecContext(ctx, query, link)
	return err
}

// ListByDish lists the complement options wired to a dish, with names.
func (r *ComplementRepository) ListByDish(ctx context.Context, dishID uint64) ([]entity.DishComplementOption, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var options []entity.DishComplementOption
	query := `
		SELECT dc.*, c.name
		FROM dish_complements dc
		JOIN complements c ON c.id = dc.complement_id
		WHERE dc.dish_id = ?
		ORDER BY dc.is_required DESC, c.name
	`
	if err := db.SelectContext(ctx, &options, query, dishID); err != nil {
		return nil, err
	}
	return options, nil
}

func (r *ComplementRepository) DeleteLink(ctx context.Context, id uint64) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `DELETE FROM dish_complements WHERE id = ?`, id)
	return err
}
