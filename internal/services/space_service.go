package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/parkwise/parking-service/internal/models"
	"github.com/parkwise/parking-service/internal/repositories"
	"github.com/parkwise/parking-service/internal/utils"
)

// SpaceService owns parking-space CRUD and guards the occupancy
// invariant: is_occupied must equal "has an assigned user" after every
// write, no matter what the caller submitted.
type SpaceService struct {
	spaceRepo repositories.ParkingSpaceRepository
	userRepo  repositories.UserRepository
}

func NewSpaceService(
	spaceRepo repositories.ParkingSpaceRepository,
	userRepo repositories.UserRepository,
) *SpaceService {
	return &SpaceService{spaceRepo: spaceRepo, userRepo: userRepo}
}

func (s *SpaceService) List(ctx context.Context) ([]*models.ParkingSpace, error) {
	return s.spaceRepo.ListAll(ctx)
}

func (s *SpaceService) Get(ctx context.Context, id uuid.UUID) (*models.ParkingSpace, error) {
	sp, err := s.spaceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, utils.ErrNotFound
	}
	return sp, nil
}

func (s *SpaceService) Create(ctx context.Context, sp *models.ParkingSpace) (*models.ParkingSpace, error) {
	sp.ID = uuid.New()
	sp.Type = models.NormalizeSpaceType(sp.Type)
	if err := s.checkAssignee(ctx, sp.UserID); err != nil {
		return nil, err
	}
	sp.SetAssignment(sp.UserID)
	if err := s.spaceRepo.Create(ctx, sp); err != nil {
		return nil, fmt.Errorf("create parking space: %w", err)
	}
	return s.Get(ctx, sp.ID)
}

func (s *SpaceService) Update(ctx context.Context, sp *models.ParkingSpace) (*models.ParkingSpace, error) {
	existing, err := s.spaceRepo.GetByID(ctx, sp.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, utils.ErrNotFound
	}
	sp.Type = models.NormalizeSpaceType(sp.Type)
	if err := s.checkAssignee(ctx, sp.UserID); err != nil {
		return nil, err
	}
	sp.SetAssignment(sp.UserID)
	if err := s.spaceRepo.Update(ctx, sp); err != nil {
		return nil, fmt.Errorf("update parking space: %w", err)
	}
	return s.Get(ctx, sp.ID)
}

// Assign sets or clears the space's occupant. A nil userID frees the
// space; both user_id and is_occupied change together.
func (s *SpaceService) Assign(ctx context.Context, spaceID uuid.UUID, userID *uuid.UUID) (*models.ParkingSpace, error) {
	sp, err := s.spaceRepo.GetByID(ctx, spaceID)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, utils.ErrNotFound
	}
	if err := s.checkAssignee(ctx, userID); err != nil {
		return nil, err
	}
	sp.SetAssignment(userID)
	if err := s.spaceRepo.Update(ctx, sp); err != nil {
		return nil, fmt.Errorf("assign parking space: %w", err)
	}
	return s.Get(ctx, spaceID)
}

func (s *SpaceService) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := s.spaceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return utils.ErrNotFound
	}
	return s.spaceRepo.Delete(ctx, id)
}

func (s *SpaceService) checkAssignee(ctx context.Context, userID *uuid.UUID) error {
	if userID == nil {
		return nil
	}
	u, err := s.userRepo.GetByID(ctx, *userID)
	if err != nil {
		return err
	}
	if u == nil {
		return utils.ErrUnknownUser
	}
	return nil
}
