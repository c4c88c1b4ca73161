package repository

import (
	"context"

	"storefront-service/src/internal/entity"
	"storefront-service/src/pkg/databases/mysql"
)

// DeliveryRepository covers the fee lookup tables: towns, zones and the
// street-to-zone mapping.
type DeliveryRepository struct {
	DB mysql.DBInterface
}

func NewDeliveryRepository(db mysql.DBInterface) *DeliveryRepository {
	return &DeliveryRepository{
		DB: db,
	}
}

func (r *DeliveryRepository) CreateTown(ctx context.Context, town *entity.Town) (uint64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO towns (name, is_active, free_delivery, default_fee)
		VALUES (:name, :is_active, :free_delivery, :default_fee)
	`
	result, err := db.NamedExecContext(ctx, query, town)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	return uint64(id), err
}

func (r *DeliveryRepository) UpdateTown(ctx context.Context, town *entity.Town) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		UPDATE towns SET
			name = :name, is_active = :is_active, free_delivery = :free_delivery,
			default_fee = :default_fee, updated_at = NOW()
		WHERE id = :id
	`
	_, err = db.NamedExecContext(ctx, query, town)
	return err
}

func (r *DeliveryRepository) FindTownByName(ctx context.Context, name string) (*entity.Town, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var town entity.Town
	if err := db.GetContext(ctx, &town, `SELECT * FROM towns WHERE name = ?`, name); err != nil {
		return nil, err
	}
	return &town, nil
}

func (r *DeliveryRepository) ListTowns(ctx context.Context, activeOnly bool) ([]entity.Town, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := `SELECT * FROM towns`
	if activeOnly {
		query += ` WHERE is_active = 1`
	}
	query += ` ORDER BY created_at DESC`

	var towns []entity.Town
	if err := db.SelectContext(ctx, &towns, query); err != nil {
		return nil, err
	}
	return towns, nil
}

func (r *DeliveryRepository) ToggleTown(ctx context.Context, id uint64) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `UPDATE towns SET is_active = NOT is_active, updated_at = NOW() WHERE id = ?`, id)
	return err
}

func (r *DeliveryRepository) DeleteTown(ctx context.Context, id uint64) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `DELETE FROM towns WHERE id = ?`, id)
	return err
}

func (r *DeliveryRepository) CreateZone(ctx context.Context, zone *entity.DeliveryZone) (uint64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO delivery_zones (town, zone_name, delivery_fee, is_active)
		VALUES (:town, :zone_name, :delivery_fee, :is_active)
	`
	result, err := db.NamedExecContext(ctx, query, zone)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	return uint64(id), err
}

func (r *DeliveryRepository) UpdateZone(ctx context.Context, zone *entity.DeliveryZone) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		UPDATE delivery_zones SET
			town = :town, zone_name = :zone_name, delivery_fee = :delivery_fee,
			is_active = :is_active, updated_at = NOW()
		WHERE id = :id
	`
	_, err = db.NamedExecContext(ctx, query, zone)
	return err
}

func (r *DeliveryRepository) ListZones(ctx context.Context) ([]entity.DeliveryZone, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var zones []entity.DeliveryZone
	if err := db.SelectContext(ctx, &zones, `SELECT * FROM delivery_zones ORDER BY created_at DESC`); err != nil {
		return nil, err
	}
	return zones, nil
}

// FindZoneByStreet resolves the active zone serving a street in a town.
func (r *DeliveryRepository) FindZoneByStreet(ctx context.Context, town, street string) (*entity.DeliveryZone, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var zone entity.DeliveryZone
	query := `
		SELECT z.* FROM delivery_zones z
		JOIN streets s ON s.zone_id = z.id
		WHERE z.town = ? AND s.name = ? AND z.is_active = 1
	`
	if err := db.GetContext(ctx, &zone, query, town, street); err != nil {
		return nil, err
	}
	return &zone, nil
}

func (r *DeliveryRepository) ToggleZone(ctx context.Context, id uint64) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `UPDATE delivery_zones SET is_active = NOT is_active, updated_at = NOW() WHERE id = ?`, id)
	return err
}

func (r *DeliveryRepository) DeleteZone(ctx context.Context, id uint64) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `DELETE FROM delivery_zones WHERE id = ?`, id)
	return err
}

func (r *DeliveryRepository) CreateStreet(ctx context.Context, street *entity.Street) (uint64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	result, err := db.NamedExecContext(ctx,
		`INSERT INTO streets (name, zone_id) VALUES (:name, :zone_id)`, street)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	return uint64(id), err
}

func (r *DeliveryRepository) ListStreets(ctx context.Context, zoneID uint64) ([]entity.Street, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var streets []entity.Street
	if err := db.SelectContext(ctx, &streets, `SELECT * FROM streets WHERE zone_id = ? ORDER BY name`, zoneID); err != nil {
		return nil, err
	}
	return streets, nil
}

func (r *DeliveryRepository) DeleteStreet(ctx context.Context, id uint64) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `DELETE FROM streets WHERE id = ?`, id)
	return err
}
