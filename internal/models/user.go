package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account holder who can own vehicles and be assigned a
// parking space. Vehicles are loaded alongside the user; they have no
// standalone lifecycle.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Vehicles  []Vehicle `json:"vehicles"`
	CreatedAt time.Time `json:"created_at"`
}
