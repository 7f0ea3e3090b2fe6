package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Vehicle struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	Plate     string    `json:"plate"`
	Type      SpaceType `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// Normalize uppercases the plate and snaps the type onto a known tier.
// Plates are not required to be unique.
func (v *Vehicle) Normalize() {
	v.Plate = strings.ToUpper(strings.TrimSpace(v.Plate))
	v.Type = NormalizeSpaceType(v.Type)
}
