package dtos

import "github.com/google/uuid"

type CreateSpaceRequest struct {
	Number string     `json:"number" validate:"required"`
	Type   string     `json:"type" validate:"omitempty,oneof=motorcycle car van other"`
	UserID *uuid.UUID `json:"user_id"`
}

type UpdateSpaceRequest struct {
	Number string     `json:"number" validate:"required"`
	Type   string     `json:"type" validate:"omitempty,oneof=motorcycle car van other"`
	UserID *uuid.UUID `json:"user_id"`
}

// AssignSpaceRequest sets or clears the occupant; a null user_id frees
// the space.
type AssignSpaceRequest struct {
	UserID *uuid.UUID `json:"user_id"`
}

type DeleteSpaceResponse struct {
	ID      uuid.UUID `json:"id"`
	Deleted bool      `json:"deleted"`
}
