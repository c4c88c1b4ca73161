package repository

import (
	"context"

	"storefront-service/src/internal/entity"
	"storefront-service/src/pkg/databases/mysql"
)

type AdminUserRepository struct {
	DB mysql.DBInterface
}

func NewAdminUserRepository(db mysql.DBInterface) *AdminUserRepository {
	return &AdminUserRepository{
		DB: db,
	}
}

func (r *AdminUserRepository) Create(ctx context.Context, user *entity.AdminUser) (uint64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO admin_users (email, full_name, password_hash, role)
		VALUES (:email, :full_name, :password_hash, :role)
	`
	result, err := db.NamedExecContext(ctx, query, user)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	return uint64(id), err
}

func (r *AdminUserRepository) FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var user entity.AdminUser
	if err := db.GetContext(ctx, &user, `SELECT * FROM admin_users WHERE email = ?`, email); err != nil {
		return nil, err
	}
	return &user, nil
}
