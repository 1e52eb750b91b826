package domain

import "time"

// User is the persisted account record. PasswordHash never leaves the
// service layer.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
