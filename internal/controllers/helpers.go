package controllers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/parkwise/parking-service/internal/utils"
)

var validate = validator.New()

// pathID extracts and parses the {id} path variable. On failure it
// writes the error response and reports false.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := mux.Vars(r)["id"]
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid id in path", nil, err)
		return uuid.Nil, false
	}
	return id, true
}
