package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/parkwise/parking-service/internal/models"
	"github.com/parkwise/parking-service/internal/repositories"
	"github.com/parkwise/parking-service/internal/utils"
)

// PaymentService handles manually entered payments and explicit status
// changes. Payments are never deleted.
type PaymentService struct {
	paymentRepo repositories.PaymentRepository
	userRepo    repositories.UserRepository
}

func NewPaymentService(
	paymentRepo repositories.PaymentRepository,
	userRepo repositories.UserRepository,
) *PaymentService {
	return &PaymentService{paymentRepo: paymentRepo, userRepo: userRepo}
}

func (s *PaymentService) List(ctx context.Context, f repositories.PaymentFilter) ([]*models.Payment, error) {
	return s.paymentRepo.List(ctx, f)
}

// Create persists a manually entered payment. The date defaults to
// today and the status to pending when omitted.
func (s *PaymentService) Create(ctx context.Context, p *models.Payment) (*models.Payment, error) {
	if p.Amount < 0 {
		return nil, utils.ErrInvalidAmount
	}
	if p.Status == "" {
		p.Status = models.PaymentStatusPending
	}
	if !p.Status.Valid() {
		return nil, utils.ErrInvalidStatus
	}
	if p.Date.IsZero() {
		p.Date = DateOnly(time.Now().UTC())
	} else {
		p.Date = DateOnly(p.Date)
	}

	u, err := s.userRepo.GetByID(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, utils.ErrUnknownUser
	}

	p.ID = uuid.New()
	if err := s.paymentRepo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}
	return s.paymentRepo.GetByID(ctx, p.ID)
}

// SetStatus applies an explicit status change from the dashboard.
func (s *PaymentService) SetStatus(ctx context.Context, id uuid.UUID, status models.PaymentStatus) (*models.Payment, error) {
	if !status.Valid() {
		return nil, utils.ErrInvalidStatus
	}
	if err := s.paymentRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, utils.ErrNoRowsUpdated) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return s.paymentRepo.GetByID(ctx, id)
}
