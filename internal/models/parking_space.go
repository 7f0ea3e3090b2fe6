package models

import (
	"time"

	"github.com/google/uuid"
)

// ParkingSpace holds a reference to its current occupant. IsOccupied and
// UserID must never disagree; SetAssignment is the only sanctioned way to
// change them.
type ParkingSpace struct {
	ID         uuid.UUID  `json:"id"`
	Number     string     `json:"number"`
	Type       SpaceType  `json:"type"`
	IsOccupied bool       `json:"is_occupied"`
	UserID     *uuid.UUID `json:"user_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// SetAssignment updates the occupant and the occupied flag together.
// Passing nil frees the space.
func (s *ParkingSpace) SetAssignment(userID *uuid.UUID) {
	s.UserID = userID
	s.IsOccupied = userID != nil
}

// Occupied reports whether the space is both flagged occupied and holds
// an occupant reference.
func (s *ParkingSpace) Occupied() bool {
	return s.IsOccupied && s.UserID != nil
}
