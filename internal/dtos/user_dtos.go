package dtos

import "github.com/google/uuid"

type VehiclePayload struct {
	Brand string `json:"brand" validate:"required"`
	Model string `json:"model" validate:"required"`
	Plate string `json:"plate" validate:"required"`
	Type  string `json:"type" validate:"omitempty,oneof=motorcycle car van other"`
}

type CreateUserRequest struct {
	Name     string           `json:"name" validate:"required"`
	Email    string           `json:"email" validate:"required,email"`
	Phone    string           `json:"phone"`
	Vehicles []VehiclePayload `json:"vehicles" validate:"dive"`
}

type UpdateUserRequest struct {
	Name     string           `json:"name" validate:"required"`
	Email    string           `json:"email" validate:"required,email"`
	Phone    string           `json:"phone"`
	Vehicles []VehiclePayload `json:"vehicles" validate:"dive"`
}

type DeleteUserResponse struct {
	ID      uuid.UUID `json:"id"`
	Deleted bool      `json:"deleted"`
}
