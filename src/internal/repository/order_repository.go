package repository

import (
	"context"
	"errors"
	"time"

	"storefront-service/src/internal/entity"
	"storefront-service/src/pkg/databases/mysql"

	driver "github.com/go-sql-driver/mysql"
)

// ErrDuplicateOrderNumber is returned when the generated order number
// collides with an existing row; the caller retries with a new suffix.
var ErrDuplicateOrderNumber = errors.New("duplicate order number")

type OrderRepository struct {
	DB mysql.DBInterface
}

func NewOrderRepository(db mysql.DBInterface) *OrderRepository {
	return &OrderRepository{
		DB: db,
	}
}

func (r *OrderRepository) Create(ctx context.Context, order *entity.Order) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO orders (
			order_number, customer_name, customer_phone, delivery_address,
			town, street, items, subtotal, delivery_fee, total, currency,
			payment_method, payment_status, payment_reference, payment_session_id, notes
		) VALUES (
			:order_number, :customer_name, :customer_phone, :delivery_address,
			:town, :street, :items, :subtotal, :delivery_fee, :total, :currency,
			:payment_method, :payment_status, :payment_reference, :payment_session_id, :notes
		)
	`

	_, err = db.NamedExecContext(ctx, query, order)
	if err != nil {
		var mysqlErr *driver.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return ErrDuplicateOrderNumber
		}
		return err
	}

	return nil
}

func (r *OrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*entity.Order, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var order entity.Order
	query := `SELECT * FROM orders WHERE order_number = ?`
	if err := db.GetContext(ctx, &order, query, orderNumber); err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *OrderRepository) List(ctx context.Context, filter entity.OrderFilter, limit int) ([]entity.Order, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := `SELECT * FROM orders`
	args := []interface{}{}
	if filter.PaymentStatus != nil {
		query += ` WHERE payment_status = ?`
		args = append(args, *filter.PaymentStatus)
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	var orders []entity.Order
	if err := db.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, err
	}

	return orders, nil
}

// FindPendingWithReference returns the reconciler's working set: orders
// still pending that were actually handed to a payment provider.
func (r *OrderRepository) FindPendingWithReference(ctx context.Context) ([]entity.Order, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var orders []entity.Order
	query := `
		SELECT * FROM orders
		WHERE payment_status = ?
		AND payment_reference IS NOT NULL
		AND payment_reference != ''
		ORDER BY created_at ASC
	`
	if err := db.SelectContext(ctx, &orders, query, entity.PaymentStatusPending); err != nil {
		return nil, err
	}

	return orders, nil
}

// FindStalePending lists orders pending longer than the given age, for
// the admin "pending too long" report. No status change is made.
func (r *OrderRepository) FindStalePending(ctx context.Context, olderThan time.Time) ([]entity.Order, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var orders []entity.Order
	query := `
		SELECT * FROM orders
		WHERE payment_status = ?
		AND created_at < ?
		ORDER BY created_at ASC
	`
	if err := db.SelectContext(ctx, &orders, query, entity.PaymentStatusPending, olderThan); err != nil {
		return nil, err
	}

	return orders, nil
}

// UpdatePaymentStatusFrom transitions only when the row is still in the
// expected status; returns false when a concurrent writer got there first.
func (r *OrderRepository) UpdatePaymentStatusFrom(ctx context.Context, orderNumber, fromStatus, toStatus string) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	query := `UPDATE orders SET payment_status = ?, updated_at = NOW() WHERE order_number = ? AND payment_status = ?`
	result, err := db.ExecContext(ctx, query, toStatus, orderNumber, fromStatus)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// UpdatePaymentReference stores the provider handles returned by
// payment creation. The session id gets its own column; it is never
// embedded in the notes text.
func (r *OrderRepository) UpdatePaymentReference(ctx context.Context, orderNumber, reference, sessionID string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `UPDATE orders SET payment_reference = ?, payment_session_id = ?, updated_at = NOW() WHERE order_number = ?`
	_, err = db.ExecContext(ctx, query, reference, sessionID, orderNumber)
	return err
}

// UpdatePaymentStatus is the admin override path: last write wins.
func (r *OrderRepository) UpdatePaymentStatus(ctx context.Context, orderNumber, toStatus string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `UPDATE orders SET payment_status = ?, updated_at = NOW() WHERE order_number = ?`
	_, err = db.ExecContext(ctx, query, toStatus, orderNumber)
	return err
}

func (r *OrderRepository) Delete(ctx context.Context, orderNumber string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `DELETE FROM orders WHERE order_number = ?`, orderNumber)
	return err
}
