package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/parkwise/parking-service/internal/models"
	"github.com/parkwise/parking-service/internal/utils"
)

func TestCreateUserWithVehicles(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(newFakeUserRepo(), &fakeVehicleRepo{}, newFakeSpaceRepo())

	created, err := svc.Create(ctx, &models.User{
		Name:  "Anna Kowalska",
		Email: "anna@example.com",
		Vehicles: []models.Vehicle{
			{Brand: "Toyota", Model: "Corolla", Plate: " wa12345 ", Type: models.SpaceTypeCar},
		},
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)
	require.Len(t, created.Vehicles, 1)
	require.Equal(t, "WA12345", created.Vehicles[0].Plate)
	require.Equal(t, created.ID, created.Vehicles[0].UserID)
}

func TestUpdateUserReplacesVehicleList(t *testing.T) {
	ctx := context.Background()
	vehicleRepo := &fakeVehicleRepo{}
	svc := NewUserService(newFakeUserRepo(), vehicleRepo, newFakeSpaceRepo())

	created, err := svc.Create(ctx, &models.User{
		Name:  "Anna",
		Email: "anna@example.com",
		Vehicles: []models.Vehicle{
			{Brand: "Toyota", Model: "Corolla", Plate: "WA12345", Type: models.SpaceTypeCar},
			{Brand: "Honda", Model: "CB500", Plate: "WB67890", Type: models.SpaceTypeMotorcycle},
		},
	})
	require.NoError(t, err)
	require.Len(t, created.Vehicles, 2)

	updated, err := svc.Update(ctx, &models.User{
		ID:    created.ID,
		Name:  "Anna Kowalska",
		Email: "anna@example.com",
		Vehicles: []models.Vehicle{
			{Brand: "Fiat", Model: "500", Plate: "WC11111", Type: models.SpaceTypeCar},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "Anna Kowalska", updated.Name)
	require.Len(t, updated.Vehicles, 1)
	require.Equal(t, "WC11111", updated.Vehicles[0].Plate)
}

func TestDeleteUserFreesTheirSpaces(t *testing.T) {
	ctx := context.Background()
	user := &models.User{ID: uuid.New(), Name: "Anna", Email: "anna@example.com"}
	space := &models.ParkingSpace{ID: uuid.New(), Number: "A-01", Type: models.SpaceTypeCar}
	space.SetAssignment(&user.ID)

	spaceRepo := newFakeSpaceRepo(space)
	svc := NewUserService(newFakeUserRepo(user), &fakeVehicleRepo{}, spaceRepo)

	require.NoError(t, svc.Delete(ctx, user.ID))

	sp, _ := spaceRepo.GetByID(ctx, space.ID)
	require.False(t, sp.IsOccupied)
	require.Nil(t, sp.UserID)

	_, err := svc.Get(ctx, user.ID)
	require.ErrorIs(t, err, utils.ErrNotFound)
}

func TestGetUnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), &fakeVehicleRepo{}, newFakeSpaceRepo())
	_, err := svc.Get(context.Background(), uuid.New())
	require.ErrorIs(t, err, utils.ErrNotFound)
}

func TestListAttachesVehicles(t *testing.T) {
	ctx := context.Background()
	user := &models.User{ID: uuid.New(), Name: "Anna", Email: "anna@example.com"}
	vehicleRepo := &fakeVehicleRepo{}
	require.NoError(t, vehicleRepo.Create(ctx, &models.Vehicle{
		ID: uuid.New(), UserID: user.ID, Brand: "Toyota", Model: "Corolla", Plate: "WA12345", Type: models.SpaceTypeCar,
	}))

	svc := NewUserService(newFakeUserRepo(user), vehicleRepo, newFakeSpaceRepo())
	users, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Len(t, users[0].Vehicles, 1)
}
