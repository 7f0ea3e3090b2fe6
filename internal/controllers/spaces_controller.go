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

type SpacesController struct {
	svc *services.SpaceService
}

func NewSpacesController(svc *services.SpaceService) *SpacesController {
	return &SpacesController{svc: svc}
}

// ListSpacesHandler => GET /api/v1/spaces
func (c *SpacesController) ListSpacesHandler(w http.ResponseWriter, r *http.Request) {
	spaces, err := c.svc.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if spaces == nil {
		spaces = []*models.ParkingSpace{}
	}
	utils.RespondWithJSON(w, http.StatusOK, spaces)
}

// GetSpaceHandler => GET /api/v1/spaces/{id}
func (c *SpacesController) GetSpaceHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	sp, err := c.svc.Get(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, sp)
}

// CreateSpaceHandler => POST /api/v1/spaces
func (c *SpacesController) CreateSpaceHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateSpaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Space number is required", nil, err)
		return
	}

	sp, err := c.svc.Create(r.Context(), &models.ParkingSpace{
		Number: req.Number,
		Type:   models.SpaceType(req.Type),
		UserID: req.UserID,
	})
	if err != nil {
		c.respondAssignError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, sp)
}

// UpdateSpaceHandler => PUT /api/v1/spaces/{id}
func (c *SpacesController) UpdateSpaceHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.UpdateSpaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Space number is required", nil, err)
		return
	}

	sp, err := c.svc.Update(r.Context(), &models.ParkingSpace{
		ID:     id,
		Number: req.Number,
		Type:   models.SpaceType(req.Type),
		UserID: req.UserID,
	})
	if err != nil {
		c.respondAssignError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, sp)
}

// AssignSpaceHandler => POST /api/v1/spaces/{id}/assign
func (c *SpacesController) AssignSpaceHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.AssignSpaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}

	sp, err := c.svc.Assign(r.Context(), id, req.UserID)
	if err != nil {
		c.respondAssignError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, sp)
}

// DeleteSpaceHandler => DELETE /api/v1/spaces/{id}
func (c *SpacesController) DeleteSpaceHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.svc.Delete(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.DeleteSpaceResponse{ID: id, Deleted: true})
}

func (c *SpacesController) respondAssignError(w http.ResponseWriter, err error) {
	if errors.Is(err, utils.ErrUnknownUser) {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Assigned user does not exist", nil, err)
		return
	}
	utils.HandleAppError(w, err)
}
