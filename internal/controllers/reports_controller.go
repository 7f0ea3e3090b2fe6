package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/parkwise/parking-service/internal/services"
	"github.com/parkwise/parking-service/internal/utils"
)

type ReportsController struct {
	svc *services.ReportService
}

func NewReportsController(svc *services.ReportService) *ReportsController {
	return &ReportsController{svc: svc}
}

// SummaryHandler => GET /api/v1/reports/summary
func (c *ReportsController) SummaryHandler(w http.ResponseWriter, r *http.Request) {
	summary, err := c.svc.Summary(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, summary)
}

// ExportHandler => GET /api/v1/reports/export?kind=&format=
// Streams the selected report as a CSV or HTML attachment.
func (c *ReportsController) ExportHandler(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("kind")
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "html" {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Format must be csv or html", nil, nil)
		return
	}

	table, err := c.svc.BuildTable(r.Context(), kind)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Unknown report kind", nil, err)
		return
	}

	now := time.Now().UTC()
	var body []byte
	contentType := "text/csv; charset=utf-8"
	if format == "html" {
		contentType = "text/html; charset=utf-8"
		body, err = services.EncodeHTML(table, now)
		if err != nil {
			utils.HandleAppError(w, err)
			return
		}
	} else {
		body = services.EncodeCSV(table)
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", table.ExportFilename(format, now)))
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
