package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAvailableAt(t *testing.T) {
	// 2025-06-02 is a Monday.
	monNoon := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	sunNoon := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	monLate := time.Date(2025, 6, 2, 23, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		option   RestaurantDish
		at       time.Time
		expected bool
	}{
		{
			name:     "no restriction",
			option:   RestaurantDish{IsAvailable: true},
			at:       sunNoon,
			expected: true,
		},
		{
			name:     "flag off wins",
			option:   RestaurantDish{IsAvailable: false},
			at:       monNoon,
			expected: false,
		},
		{
			name:     "within day list",
			option:   RestaurantDish{IsAvailable: true, Days: "mon,tue,wed"},
			at:       monNoon,
			expected: true,
		},
		{
			name:     "outside day list",
			option:   RestaurantDish{IsAvailable: true, Days: "mon,tue,wed"},
			at:       sunNoon,
			expected: false,
		},
		{
			name:     "day list tolerates spacing and case",
			option:   RestaurantDish{IsAvailable: true, Days: "Sat, Sun"},
			at:       sunNoon,
			expected: true,
		},
		{
			name:     "within time window",
			option:   RestaurantDish{IsAvailable: true, FromTime: "08:00", ToTime: "22:00"},
			at:       monNoon,
			expected: true,
		},
		{
			name:     "after closing",
			option:   RestaurantDish{IsAvailable: true, FromTime: "08:00", ToTime: "22:00"},
			at:       monLate,
			expected: false,
		},
		{
			name:     "before opening",
			option:   RestaurantDish{IsAvailable: true, FromTime: "13:00"},
			at:       monNoon,
			expected: false,
		},
		{
			name:     "overnight window before midnight",
			option:   RestaurantDish{IsAvailable: true, FromTime: "22:00", ToTime: "02:00"},
			at:       monLate,
			expected: true,
		},
		{
			name:     "overnight window after midnight",
			option:   RestaurantDish{IsAvailable: true, FromTime: "22:00", ToTime: "02:00"},
			at:       time.Date(2025, 6, 2, 1, 15, 0, 0, time.UTC),
			expected: true,
		},
		{
			name:     "outside overnight window",
			option:   RestaurantDish{IsAvailable: true, FromTime: "22:00", ToTime: "02:00"},
			at:       monNoon,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.option.AvailableAt(tt.at))
		})
	}
}
