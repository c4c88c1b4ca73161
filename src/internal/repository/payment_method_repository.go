package repository

import (
	"context"

	"storefront-service/src/internal/entity"
	"storefront-service/src/pkg/databases/mysql"
)

type PaymentMethodRepository struct {
	DB mysql.DBInterface
}

func NewPaymentMethodRepository(db mysql.DBInterface) *PaymentMethodRepository {
	return &PaymentMethodRepository{
		DB: db,
	}
}

func (r *PaymentMethodRepository) Create(ctx context.Context, method *entity.PaymentMethod) (uint64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO payment_methods (code, label, category, payment_details, is_active)
		VALUES (:code, :label, :category, :payment_details, :is_active)
	`
	result, err := db.NamedExecContext(ctx, query, method)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	return uint64(id), err
}

func (r *PaymentMethodRepository) Update(ctx context.Context, method *entity.PaymentMethod) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		UPDATE payment_methods SET
			code = :code, label = :label, category = :category,
			payment_details = :payment_details, is_active = :is_active, updated_at = NOW()
		WHERE id = :id
	`
	_, err = db.NamedExecContext(ctx, query, method)
	return err
}

func (r *PaymentMethodRepository) FindByCode(ctx context.Context, code string) (*entity.PaymentMethod, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var method entity.PaymentMethod
	if err := db.GetContext(ctx, &method, `SELECT * FROM payment_methods WHERE code = ?`, code); err != nil {
		return nil, err
	}
	return &method, nil
}

func (r *PaymentMethodRepository) List(ctx context.Context, activeOnly bool) ([]entity.PaymentMethod, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := `SELECT * FROM payment_methods`
	if activeOnly {
		query += ` WHERE is_active = 1`
	}
	query += ` ORDER BY created_at DESC`

	var methods []entity.PaymentMethod
	if err := db.SelectContext(ctx, &methods, query); err != nil {
		return nil, err
	}
	return methods, nil
}

func (r *PaymentMethodRepository) Delete(ctx context.Context, id uint64) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `DELETE FROM payment_methods WHERE id = ?`, id)
	return err
}
