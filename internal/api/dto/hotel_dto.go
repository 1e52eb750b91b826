package dto

import "time"

// HotelRequest payload for create/update.
type HotelRequest struct {
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	PricePerNight float64 `json:"pricePerNight"`
}

// HotelResponse is the serialized hotel record.
type HotelResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Location      string    `json:"location"`
	PricePerNight float64   `json:"pricePerNight"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
