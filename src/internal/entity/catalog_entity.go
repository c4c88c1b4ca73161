package entity

import (
	"database/sql"
	"strings"
	"time"
)

type Restaurant struct {
	ID           uint64         `db:"id"`
	Name         string         `db:"name"`
	Town         string         `db:"town"`
	OpeningDays  string         `db:"opening_days"` // e.g. "mon,tue,wed,thu,fri"
	OpensAt      string         `db:"opens_at"`     // "08:00"
	ClosesAt     string         `db:"closes_at"`    // "22:00"
	IsOpen       bool           `db:"is_open"`
	Rating       float64        `db:"rating"`
	DeliveryTime sql.NullString `db:"delivery_time"`
	Phone        sql.NullString `db:"phone"`
	Location     sql.NullString `db:"location"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

type Dish struct {
	ID          uint64         `db:"id"`
	Name        string         `db:"name"`
	Category    string         `db:"category"`
	Description sql.NullString `db:"description"`
	ImageURL    sql.NullString `db:"image_url"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

// RestaurantDish is the only place a price lives; a dish has no price of
// its own, each restaurant sets one per dish.
type RestaurantDish struct {
	ID           uint64    `db:"id"`
	RestaurantID uint64    `db:"restaurant_id"`
	DishID       uint64    `db:"dish_id"`
	Price        int64     `db:"price"`
	Currency     string    `db:"currency"`
	Days         string    `db:"days"`
	FromTime     string    `db:"from_time"`
	ToTime       string    `db:"to_time"`
	IsAvailable  bool      `db:"is_available"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// AvailableAt reports whether the option's serving window covers the
// given moment. Empty days or times mean no restriction.
func (d *RestaurantDish) AvailableAt(t time.Time) bool {
	if !d.IsAvailable {
		return false
	}
	if d.Days != "" {
		day := strings.ToLower(t.Format("Mon"))
		matched := false
		for _, candidate := range strings.Split(d.Days, ",") {
			if strings.TrimSpace(strings.ToLower(candidate)) == day {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	clock := t.Format("15:04")
	if d.FromTime != "" && d.ToTime != "" && d.FromTime > d.ToTime {
		// overnight window, e.g. 22:00-02:00
		return clock >= d.FromTime || clock <= d.ToTime
	}
	if d.FromTime != "" && clock < d.FromTime {
		return false
	}
	if d.ToTime != "" && clock > d.ToTime {
		return false
	}
	return true
}

// DishOption is the storefront view of a restaurant price option,
// joined with restaurant fields for display.
type DishOption struct {
	RestaurantDish
	DishName       string  `db:"dish_name"`
	RestaurantName string  `db:"restaurant_name"`
	RestaurantOpen bool    `db:"restaurant_open"`
	Rating         float64 `db:"rating"`
}

type Complement struct {
	ID        uint64    `db:"id"`
	Name      string    `db:"name"`
	Price     int64     `db:"price"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type DishComplement struct {
	ID           uint64    `db:"id"`
	DishID       uint64    `db:"dish_id"`
	ComplementID uint64    `db:"complement_id"`
	Price        int64     `db:"price"`
	IsRequired   bool      `db:"is_required"`
	MaxQuantity  int       `db:"max_quantity"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// DishComplementOption joins the link row with the complement name for
// storefront listing.
type DishComplementOption struct {
	DishComplement
	Name string `db:"name"`
}
