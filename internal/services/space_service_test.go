package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/parkwise/parking-service/internal/models"
	"github.com/parkwise/parking-service/internal/utils"
)

func TestCreateSpaceKeepsOccupancyConsistent(t *testing.T) {
	ctx := context.Background()
	user := &models.User{ID: uuid.New(), Name: "Anna", Email: "anna@example.com"}
	svc := NewSpaceService(newFakeSpaceRepo(), newFakeUserRepo(user))

	// Caller claims occupied but names nobody; the flag is corrected.
	sp, err := svc.Create(ctx, &models.ParkingSpace{Number: "A-01", Type: models.SpaceTypeCar, IsOccupied: true})
	require.NoError(t, err)
	require.False(t, sp.IsOccupied)
	require.Nil(t, sp.UserID)

	// Caller names a user but leaves the flag unset; it is raised.
	sp, err = svc.Create(ctx, &models.ParkingSpace{Number: "A-02", Type: models.SpaceTypeCar, UserID: &user.ID})
	require.NoError(t, err)
	require.True(t, sp.IsOccupied)
	require.Equal(t, user.ID, *sp.UserID)
}

func TestCreateSpaceNormalizesType(t *testing.T) {
	ctx := context.Background()
	svc := NewSpaceService(newFakeSpaceRepo(), newFakeUserRepo())

	sp, err := svc.Create(ctx, &models.ParkingSpace{Number: "X-01", Type: models.SpaceType("boat")})
	require.NoError(t, err)
	require.Equal(t, models.SpaceTypeOther, sp.Type)
}

func TestAssignAndFreeSpace(t *testing.T) {
	ctx := context.Background()
	user := &models.User{ID: uuid.New(), Name: "Anna", Email: "anna@example.com"}
	space := &models.ParkingSpace{ID: uuid.New(), Number: "A-01", Type: models.SpaceTypeCar}
	svc := NewSpaceService(newFakeSpaceRepo(space), newFakeUserRepo(user))

	sp, err := svc.Assign(ctx, space.ID, &user.ID)
	require.NoError(t, err)
	require.True(t, sp.Occupied())

	sp, err = svc.Assign(ctx, space.ID, nil)
	require.NoError(t, err)
	require.False(t, sp.IsOccupied)
	require.Nil(t, sp.UserID)
}

func TestAssignRejectsUnknownUser(t *testing.T) {
	ctx := context.Background()
	space := &models.ParkingSpace{ID: uuid.New(), Number: "A-01", Type: models.SpaceTypeCar}
	svc := NewSpaceService(newFakeSpaceRepo(space), newFakeUserRepo())

	ghost := uuid.New()
	_, err := svc.Assign(ctx, space.ID, &ghost)
	require.ErrorIs(t, err, utils.ErrUnknownUser)

	sp, _ := svc.Get(ctx, space.ID)
	require.False(t, sp.Occupied())
}

func TestAssignUnknownSpace(t *testing.T) {
	svc := NewSpaceService(newFakeSpaceRepo(), newFakeUserRepo())
	_, err := svc.Assign(context.Background(), uuid.New(), nil)
	require.ErrorIs(t, err, utils.ErrNotFound)
}
