package entity

import "time"

const (
	PaymentCategoryOnline  = "online"
	PaymentCategoryOffline = "offline"
)

type PaymentMethod struct {
	ID             uint64    `db:"id"`
	Code           string    `db:"code"`
	Label          string    `db:"label"`
	Category       string    `db:"category"`
	PaymentDetails []byte    `db:"payment_details"` // JSON, offline instructions
	IsActive       bool      `db:"is_active"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// OfflinePaymentDetail is the element shape of payment_details for
// offline methods: where and how to send the money manually.
type OfflinePaymentDetail struct {
	Provider     string `json:"provider"`
	Phone        string `json:"phone"`
	AccountName  string `json:"account_name"`
	Instructions string `json:"instructions"`
}
