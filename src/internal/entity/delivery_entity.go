package entity

import "time"

type Town struct {
	ID           uint64    `db:"id"`
	Name         string    `db:"name"`
	IsActive     bool      `db:"is_active"`
	FreeDelivery bool      `db:"free_delivery"`
	DefaultFee   int64     `db:"default_fee"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type DeliveryZone struct {
	ID          uint64    `db:"id"`
	Town        string    `db:"town"`
	ZoneName    string    `db:"zone_name"`
	DeliveryFee int64     `db:"delivery_fee"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// Street maps an address street to a zone for fee lookup.
type Street struct {
	ID        uint64    `db:"id"`
	Name      string    `db:"name"`
	ZoneID    uint64    `db:"zone_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
