package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/parkwise/parking-service/internal/models"
	"github.com/parkwise/parking-service/internal/repositories"
	"github.com/parkwise/parking-service/internal/utils"
)

// SentinelUserID is used to check if seeding has already occurred.
const SentinelUserID = "dddddddd-dddd-4ddd-dddd-ddddddddddd1"

// SeedAllTestData populates a fresh database with a small demo fleet:
// three users with vehicles, six spaces (four occupied), and payments
// in every status. Idempotent; if the sentinel user exists it does
// nothing.
func SeedAllTestData(
	ctx context.Context,
	userRepo repositories.UserRepository,
	vehicleRepo repositories.VehicleRepository,
	spaceRepo repositories.ParkingSpaceRepository,
	paymentRepo repositories.PaymentRepository,
) error {
	sentinelID := uuid.MustParse(SentinelUserID)

	// IDEMPOTENCY CHECK: if the sentinel user already exists the data
	// set is in place.
	if existing, err := userRepo.GetByID(ctx, sentinelID); err != nil {
		return fmt.Errorf("failed to check for sentinel user: %w", err)
	} else if existing != nil {
		utils.Logger.Info("parking-service: Seed data already present; skipping seeding.")
		return nil
	}

	users := []*models.User{
		{ID: sentinelID, Name: "Anna Kowalska", Email: "anna.kowalska@example.com", Phone: "+48111222333"},
		{ID: uuid.MustParse("dddddddd-dddd-4ddd-dddd-ddddddddddd2"), Name: "Jan Nowak", Email: "jan.nowak@example.com", Phone: "+48444555666"},
		{ID: uuid.MustParse("dddddddd-dddd-4ddd-dddd-ddddddddddd3"), Name: "Piotr Wisniewski", Email: "piotr.wisniewski@example.com"},
	}
	for _, u := range users {
		if err := userRepo.Create(ctx, u); err != nil {
			return fmt.Errorf("failed to create seed user %s: %w", u.Email, err)
		}
	}

	vehicles := []models.Vehicle{
		{ID: uuid.New(), UserID: users[0].ID, Brand: "Toyota", Model: "Corolla", Plate: "WA12345", Type: models.SpaceTypeCar},
		{ID: uuid.New(), UserID: users[1].ID, Brand: "Honda", Model: "CB500", Plate: "WB67890", Type: models.SpaceTypeMotorcycle},
		{ID: uuid.New(), UserID: users[2].ID, Brand: "Ford", Model: "Transit", Plate: "WC24680", Type: models.SpaceTypeVan},
		{ID: uuid.New(), UserID: users[2].ID, Brand: "Fiat", Model: "500", Plate: "WC13579", Type: models.SpaceTypeCar},
	}
	for i := range vehicles {
		vehicles[i].Normalize()
	}
	if err := vehicleRepo.CreateMany(ctx, vehicles); err != nil {
		return fmt.Errorf("failed to create seed vehicles: %w", err)
	}

	spaces := []*models.ParkingSpace{
		{ID: uuid.New(), Number: "A-01", Type: models.SpaceTypeCar},
		{ID: uuid.New(), Number: "A-02", Type: models.SpaceTypeCar},
		{ID: uuid.New(), Number: "B-01", Type: models.SpaceTypeMotorcycle},
		{ID: uuid.New(), Number: "C-01", Type: models.SpaceTypeVan},
		{ID: uuid.New(), Number: "C-02", Type: models.SpaceTypeVan},
		{ID: uuid.New(), Number: "D-01", Type: models.SpaceTypeOther},
	}
	spaces[0].SetAssignment(&users[0].ID)
	spaces[2].SetAssignment(&users[1].ID)
	spaces[3].SetAssignment(&users[2].ID)
	spaces[5].SetAssignment(&users[0].ID)
	for _, sp := range spaces {
		if err := spaceRepo.Create(ctx, sp); err != nil {
			return fmt.Errorf("failed to create seed space %s: %w", sp.Number, err)
		}
	}

	now := time.Now().UTC()
	thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastMonth := thisMonth.AddDate(0, -1, 0)
	twoMonthsAgo := thisMonth.AddDate(0, -2, 0)

	payments := []*models.Payment{
		{ID: uuid.New(), UserID: users[0].ID, Amount: 150, Date: twoMonthsAgo, Status: models.PaymentStatusPaid,
			Description: fmt.Sprintf("Payment for %s %d - Space A-01", twoMonthsAgo.Month(), twoMonthsAgo.Year())},
		{ID: uuid.New(), UserID: users[0].ID, Amount: 150, Date: lastMonth, Status: models.PaymentStatusPaid,
			Description: fmt.Sprintf("Payment for %s %d - Space A-01", lastMonth.Month(), lastMonth.Year())},
		{ID: uuid.New(), UserID: users[1].ID, Amount: 80, Date: twoMonthsAgo, Status: models.PaymentStatusOverdue,
			Description: fmt.Sprintf("Payment for %s %d - Space B-01", twoMonthsAgo.Month(), twoMonthsAgo.Year())},
		{ID: uuid.New(), UserID: users[2].ID, Amount: 200, Date: lastMonth, Status: models.PaymentStatusPending,
			Description: fmt.Sprintf("Payment for %s %d - Space C-01", lastMonth.Month(), lastMonth.Year())},
	}
	for _, p := range payments {
		if err := paymentRepo.Create(ctx, p); err != nil {
			return fmt.Errorf("failed to create seed payment for user %s: %w", p.UserID, err)
		}
	}

	utils.Logger.Info("parking-service: Seeding completed successfully.")
	return nil
}
