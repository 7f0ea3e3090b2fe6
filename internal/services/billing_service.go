package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/parkwise/parking-service/internal/config"
	"github.com/parkwise/parking-service/internal/models"
	"github.com/parkwise/parking-service/internal/repositories"
	"github.com/parkwise/parking-service/internal/utils"
)

// BillingService derives and persists the recurring monthly payments for
// occupied parking spaces.
type BillingService struct {
	cfg         *config.Config
	userRepo    repositories.UserRepository
	spaceRepo   repositories.ParkingSpaceRepository
	paymentRepo repositories.PaymentRepository
	status      *utils.StatusSlot
}

func NewBillingService(
	cfg *config.Config,
	userRepo repositories.UserRepository,
	spaceRepo repositories.ParkingSpaceRepository,
	paymentRepo repositories.PaymentRepository,
	status *utils.StatusSlot,
) *BillingService {
	return &BillingService{
		cfg:         cfg,
		userRepo:    userRepo,
		spaceRepo:   spaceRepo,
		paymentRepo: paymentRepo,
		status:      status,
	}
}

// MissingPayments computes the payments that must be created so every
// occupied space has exactly one payment for today's billing period.
//
// A space counts as billed when its occupant already has a payment dated
// inside the current period, regardless of the payment's description.
// Spaces whose occupant cannot be resolved are skipped silently.
func MissingPayments(
	spaces []*models.ParkingSpace,
	users []*models.User,
	existing []*models.Payment,
	today time.Time,
	rates map[models.SpaceType]float64,
) []*models.Payment {
	period := models.PeriodKey(today)

	usersByID := make(map[uuid.UUID]*models.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	billed := make(map[uuid.UUID]bool)
	for _, p := range existing {
		if models.PeriodKey(p.Date) == period {
			billed[p.UserID] = true
		}
	}

	var out []*models.Payment
	for _, s := range spaces {
		if !s.Occupied() {
			continue
		}
		if _, ok := usersByID[*s.UserID]; !ok {
			continue
		}
		if billed[*s.UserID] {
			continue
		}

		out = append(out, &models.Payment{
			ID:          uuid.New(),
			UserID:      *s.UserID,
			Amount:      MonthlyRate(rates, s.Type),
			Date:        DateOnly(today),
			Status:      models.PaymentStatusPending,
			Description: paymentDescription(today, s.Number),
		})
		billed[*s.UserID] = true
	}
	return out
}

// MonthlyRate looks up the rate for a space type, falling back to the
// catch-all tier for anything unrecognized.
func MonthlyRate(rates map[models.SpaceType]float64, t models.SpaceType) float64 {
	if rate, ok := rates[t]; ok {
		return rate
	}
	return rates[models.SpaceTypeOther]
}

func paymentDescription(today time.Time, spaceNumber string) string {
	return fmt.Sprintf("Payment for %s %d - Space %s", today.Month(), today.Year(), spaceNumber)
}

// GenerateMonthlyPayments reads fresh snapshots, derives the missing
// payments for the current period, and persists them one at a time.
// Inserts are best-effort: a failure is logged and recorded in the
// status slot, then the remaining inserts still run. Returns how many
// payments were created; zero is the expected result when everyone is
// already billed.
func (s *BillingService) GenerateMonthlyPayments(ctx context.Context) (int, error) {
	spaces, err := s.spaceRepo.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("list parking spaces: %w", err)
	}
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("list users: %w", err)
	}
	existing, err := s.paymentRepo.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("list payments: %w", err)
	}

	missing := MissingPayments(spaces, users, existing, time.Now().UTC(), s.cfg.MonthlyRates)

	created := 0
	for _, p := range missing {
		if err := s.paymentRepo.Create(ctx, p); err != nil {
			utils.Logger.WithError(err).Errorf("Failed to create generated payment for user %s", p.UserID)
			s.status.Record("generate_payments", err)
			continue
		}
		created++
	}

	utils.Logger.Infof("Monthly payment generation finished: %d created, %d candidates", created, len(missing))
	return created, nil
}
