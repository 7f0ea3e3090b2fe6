package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/parkwise/parking-service/internal/models"
	"github.com/parkwise/parking-service/internal/repositories"
	"github.com/parkwise/parking-service/internal/utils"
)

// UserService orchestrates user CRUD together with the owned vehicles
// and the parking-space assignments that reference the user.
type UserService struct {
	userRepo    repositories.UserRepository
	vehicleRepo repositories.VehicleRepository
	spaceRepo   repositories.ParkingSpaceRepository
}

func NewUserService(
	userRepo repositories.UserRepository,
	vehicleRepo repositories.VehicleRepository,
	spaceRepo repositories.ParkingSpaceRepository,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		vehicleRepo: vehicleRepo,
		spaceRepo:   spaceRepo,
	}
}

// List returns every user with their vehicles attached.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	vehicles, err := s.vehicleRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}

	byOwner := make(map[uuid.UUID][]models.Vehicle)
	for _, v := range vehicles {
		byOwner[v.UserID] = append(byOwner[v.UserID], v)
	}
	for _, u := range users {
		u.Vehicles = byOwner[u.ID]
		if u.Vehicles == nil {
			u.Vehicles = []models.Vehicle{}
		}
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, utils.ErrNotFound
	}
	vehicles, err := s.vehicleRepo.ListByUserID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Vehicles = vehicles
	if u.Vehicles == nil {
		u.Vehicles = []models.Vehicle{}
	}
	return u, nil
}

// Create persists the user and the vehicles submitted with it. Vehicles
// only exist as part of a user; they get fresh ids here.
func (s *UserService) Create(ctx context.Context, u *models.User) (*models.User, error) {
	u.ID = uuid.New()
	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	for i := range u.Vehicles {
		u.Vehicles[i].ID = uuid.New()
		u.Vehicles[i].UserID = u.ID
		u.Vehicles[i].Normalize()
	}
	if err := s.vehicleRepo.CreateMany(ctx, u.Vehicles); err != nil {
		return nil, fmt.Errorf("create vehicles: %w", err)
	}
	return s.Get(ctx, u.ID)
}

// Update replaces the user's fields and their vehicle list wholesale.
func (s *UserService) Update(ctx context.Context, u *models.User) (*models.User, error) {
	existing, err := s.userRepo.GetByID(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, utils.ErrNotFound
	}
	if err := s.userRepo.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	if err := s.vehicleRepo.DeleteByUserID(ctx, u.ID); err != nil {
		return nil, fmt.Errorf("replace vehicles: %w", err)
	}
	for i := range u.Vehicles {
		u.Vehicles[i].ID = uuid.New()
		u.Vehicles[i].UserID = u.ID
		u.Vehicles[i].Normalize()
	}
	if err := s.vehicleRepo.CreateMany(ctx, u.Vehicles); err != nil {
		return nil, fmt.Errorf("replace vehicles: %w", err)
	}
	return s.Get(ctx, u.ID)
}

// Delete removes the user, cascading to vehicles and freeing any
// parking space that referenced them.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return utils.ErrNotFound
	}
	if err := s.spaceRepo.ClearAssignmentsForUser(ctx, id); err != nil {
		return fmt.Errorf("clear space assignments: %w", err)
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
