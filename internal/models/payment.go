package models

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusOverdue PaymentStatus = "overdue"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusOverdue:
		return true
	}
	return false
}

// Payment records a single charge against a user. Date is the issuance
// date, not a due date; a pending payment falls overdue one calendar
// month after Date. Payments are never deleted.
type Payment struct {
	ID          uuid.UUID     `json:"id"`
	UserID      uuid.UUID     `json:"user_id"`
	Amount      float64       `json:"amount"`
	Date        time.Time     `json:"date"`
	Status      PaymentStatus `json:"status"`
	Description string        `json:"description"`
	CreatedAt   time.Time     `json:"created_at"`
}

// PeriodKey is the year-month bucket used to decide whether a user has
// already been billed for a given cycle, e.g. "2024-03".
func PeriodKey(t time.Time) string {
	return t.Format("2006-01")
}
