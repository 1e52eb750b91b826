package events

import (
	"time"

	"github.com/spec-kit/hotel-booking/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventHotelCreated   EventType = "hotel_created"
	EventHotelUpdated   EventType = "hotel_updated"
	EventHotelDeleted   EventType = "hotel_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

// HotelChangedPayload payload for hotel create/update events.
type HotelChangedPayload struct {
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	PricePerNight float64 `json:"price_per_night"`
}

// HotelDeletedPayload payload.
type HotelDeletedPayload struct {
	Name string `json:"name"`
}
