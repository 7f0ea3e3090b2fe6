package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/parkwise/parking-service/internal/dtos"
	"github.com/parkwise/parking-service/internal/models"
	"github.com/parkwise/parking-service/internal/services"
	"github.com/parkwise/parking-service/internal/utils"
)

type UsersController struct {
	svc *services.UserService
}

func NewUsersController(svc *services.UserService) *UsersController {
	return &UsersController{svc: svc}
}

// ListUsersHandler => GET /api/v1/users
func (c *UsersController) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := c.svc.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if users == nil {
		users = []*models.User{}
	}
	utils.RespondWithJSON(w, http.StatusOK, users)
}

// GetUserHandler => GET /api/v1/users/{id}
func (c *UsersController) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	user, err := c.svc.Get(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}

// CreateUserHandler => POST /api/v1/users
func (c *UsersController) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Name and a valid email are required", nil, err)
		return
	}

	user, err := c.svc.Create(r.Context(), userFromPayload(req.Name, req.Email, req.Phone, req.Vehicles))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, user)
}

// UpdateUserHandler => PUT /api/v1/users/{id}
func (c *UsersController) UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Name and a valid email are required", nil, err)
		return
	}

	u := userFromPayload(req.Name, req.Email, req.Phone, req.Vehicles)
	u.ID = id
	user, err := c.svc.Update(r.Context(), u)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}

// DeleteUserHandler => DELETE /api/v1/users/{id}
func (c *UsersController) DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "User not found", nil, err)
			return
		}
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.DeleteUserResponse{ID: id, Deleted: true})
}

func userFromPayload(name, email, phone string, vehicles []dtos.VehiclePayload) *models.User {
	u := &models.User{
		Name:  name,
		Email: email,
		Phone: phone,
	}
	for _, v := range vehicles {
		u.Vehicles = append(u.Vehicles, models.Vehicle{
			Brand: v.Brand,
			Model: v.Model,
			Plate: v.Plate,
			Type:  models.NormalizeSpaceType(models.SpaceType(v.Type)),
		})
	}
	return u
}
