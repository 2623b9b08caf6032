package entity

import (
	"time"
)

type Base struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Coordinates is the last known position of a party. Both fields stay nil
// until the first location update arrives.
type Coordinates struct {
	Latitude  *float64 `db:"latitude"`
	Longitude *float64 `db:"longitude"`
}
