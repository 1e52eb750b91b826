package domain

import "time"

// Hotel is the bookable property record.
type Hotel struct {
	ID            string
	Name          string
	Location      string
	PricePerNight float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
