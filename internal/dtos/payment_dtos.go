package dtos

import "github.com/google/uuid"

type CreatePaymentRequest struct {
	UserID      uuid.UUID `json:"user_id" validate:"required"`
	Amount      float64   `json:"amount" validate:"gte=0"`
	Date        string    `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Status      string    `json:"status" validate:"omitempty,oneof=pending paid overdue"`
	Description string    `json:"description" validate:"required"`
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending paid overdue"`
}

type GeneratePaymentsResponse struct {
	Created int `json:"created"`
}

type OverdueSweepResponse struct {
	MarkedOverdue int `json:"marked_overdue"`
}
