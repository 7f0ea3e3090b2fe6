package controllers

import (
	"context"
	"net/http"

	"github.com/parkwise/parking-service/internal/app"
	"github.com/parkwise/parking-service/internal/dtos"
	"github.com/parkwise/parking-service/internal/utils"
)

// HealthController checks DB connectivity.
type HealthController struct {
	app *app.App
}

func NewHealthController(app *app.App) *HealthController {
	return &HealthController{app}
}

// HealthCheckHandler => GET /health
func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	if err := c.app.DB.Ping(context.Background()); err != nil {
		utils.Logger.WithError(err).Error("parking-service DB unreachable")
		utils.RespondErrorWithCode(w, http.StatusServiceUnavailable, utils.ErrCodeInternal, "Database unreachable", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.HealthCheckResponse{Status: "OK"})
}

// StatusHandler => GET /api/v1/status
// Surfaces the most recent background failure for the dashboard banner.
func (c *HealthController) StatusHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, c.app.Status.Snapshot())
}
