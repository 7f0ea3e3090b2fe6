package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/parkwise/parking-service/internal/dtos"
	"github.com/parkwise/parking-service/internal/models"
	"github.com/parkwise/parking-service/internal/repositories"
	"github.com/parkwise/parking-service/internal/services"
	"github.com/parkwise/parking-service/internal/utils"
)

type PaymentsController struct {
	svc     *services.PaymentService
	billing *services.BillingService
	overdue *services.OverdueService
}

func NewPaymentsController(
	svc *services.PaymentService,
	billing *services.BillingService,
	overdue *services.OverdueService,
) *PaymentsController {
	return &PaymentsController{svc: svc, billing: billing, overdue: overdue}
}

// ListPaymentsHandler => GET /api/v1/payments?status=&from=&to=
func (c *PaymentsController) ListPaymentsHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := paymentFilterFromQuery(r)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid filter parameters", nil, err)
		return
	}
	payments, err := c.svc.List(r.Context(), filter)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if payments == nil {
		payments = []*models.Payment{}
	}
	utils.RespondWithJSON(w, http.StatusOK, payments)
}

// CreatePaymentHandler => POST /api/v1/payments
func (c *PaymentsController) CreatePaymentHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "User, non-negative amount and description are required", nil, err)
		return
	}

	p := &models.Payment{
		UserID:      req.UserID,
		Amount:      req.Amount,
		Status:      models.PaymentStatus(req.Status),
		Description: req.Description,
	}
	if req.Date != "" {
		d, _ := time.Parse("2006-01-02", req.Date)
		p.Date = d
	}

	created, err := c.svc.Create(r.Context(), p)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrUnknownUser):
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Payment user does not exist", nil, err)
		case errors.Is(err, utils.ErrInvalidAmount), errors.Is(err, utils.ErrInvalidStatus):
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, err.Error(), nil, err)
		default:
			utils.HandleAppError(w, err)
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

// UpdatePaymentStatusHandler => PATCH /api/v1/payments/{id}/status
func (c *PaymentsController) UpdatePaymentStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.UpdatePaymentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Status must be pending, paid or overdue", nil, err)
		return
	}

	p, err := c.svc.SetStatus(r.Context(), id, models.PaymentStatus(req.Status))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, p)
}

// GeneratePaymentsHandler => POST /api/v1/payments/generate
// Creates this month's payments for every occupied space that lacks
// one. Safe to call repeatedly.
func (c *PaymentsController) GeneratePaymentsHandler(w http.ResponseWriter, r *http.Request) {
	created, err := c.billing.GenerateMonthlyPayments(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.GeneratePaymentsResponse{Created: created})
}

// OverdueSweepHandler => POST /api/v1/payments/overdue-sweep
func (c *PaymentsController) OverdueSweepHandler(w http.ResponseWriter, r *http.Request) {
	marked, err := c.overdue.Sweep(r.Context(), time.Now().UTC())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.OverdueSweepResponse{MarkedOverdue: marked})
}

func paymentFilterFromQuery(r *http.Request) (repositories.PaymentFilter, error) {
	var f repositories.PaymentFilter
	q := r.URL.Query()

	if raw := q.Get("status"); raw != "" {
		status := models.PaymentStatus(raw)
		if !status.Valid() {
			return f, utils.ErrInvalidStatus
		}
		f.Status = utils.Ptr(status)
	}
	if raw := q.Get("from"); raw != "" {
		d, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return f, err
		}
		f.From = utils.Ptr(d)
	}
	if raw := q.Get("to"); raw != "" {
		d, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return f, err
		}
		f.To = utils.Ptr(d)
	}
	return f, nil
}
