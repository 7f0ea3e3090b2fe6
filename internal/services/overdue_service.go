package services

import (
	"context"
	"fmt"
	"time"

	"github.com/parkwise/parking-service/internal/models"
	"github.com/parkwise/parking-service/internal/repositories"
	"github.com/parkwise/parking-service/internal/utils"
)

// OverdueService flips pending payments to overdue once a calendar
// month has elapsed since their issuance date. It is invoked by the
// payments change feed, by a daily cron safety net, and explicitly via
// the API; all three funnel into Sweep.
type OverdueService struct {
	userRepo    repositories.UserRepository
	paymentRepo repositories.PaymentRepository
	notifier    Notifier
	status      *utils.StatusSlot
}

func NewOverdueService(
	userRepo repositories.UserRepository,
	paymentRepo repositories.PaymentRepository,
	notifier Notifier,
	status *utils.StatusSlot,
) *OverdueService {
	return &OverdueService{
		userRepo:    userRepo,
		paymentRepo: paymentRepo,
		notifier:    notifier,
		status:      status,
	}
}

// IsOverdue reports whether a payment has passed its due window as of
// now. The window is one calendar month from the issuance date, using
// month-rollover arithmetic (Jan 31 + 1 month lands on the normalized
// March date, not a fixed 30 days). Only pending payments qualify.
func IsOverdue(p *models.Payment, now time.Time) bool {
	if p.Status != models.PaymentStatusPending {
		return false
	}
	return !now.Before(p.Date.AddDate(0, 1, 0))
}

// Sweep transitions every qualifying pending payment to overdue.
// Updates are independent and best-effort; a failure is recorded and
// the rest of the sweep continues. Running it twice in a row is a
// no-op the second time. Returns the number of payments transitioned.
func (s *OverdueService) Sweep(ctx context.Context, now time.Time) (int, error) {
	payments, err := s.paymentRepo.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("list payments: %w", err)
	}

	marked := 0
	for _, p := range payments {
		if !IsOverdue(p, now) {
			continue
		}
		if err := s.paymentRepo.UpdateStatus(ctx, p.ID, models.PaymentStatusOverdue); err != nil {
			utils.Logger.WithError(err).Errorf("Failed to mark payment %s overdue", p.ID)
			s.status.Record("overdue_sweep", err)
			continue
		}
		marked++
		s.notifyOverdue(ctx, p)
	}

	if marked > 0 {
		utils.Logger.Infof("Overdue sweep marked %d payment(s)", marked)
	}
	return marked, nil
}

func (s *OverdueService) notifyOverdue(ctx context.Context, p *models.Payment) {
	if s.notifier == nil {
		return
	}
	user, err := s.userRepo.GetByID(ctx, p.UserID)
	if err != nil || user == nil {
		// missing user is a soft data-consistency issue, never an error
		utils.Logger.Debugf("Skipping overdue notice for payment %s: occupant unknown", p.ID)
		return
	}
	s.notifier.PaymentOverdue(ctx, user, p)
}
