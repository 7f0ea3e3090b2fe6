package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSpaceType(t *testing.T) {
	require.Equal(t, SpaceTypeCar, NormalizeSpaceType(SpaceTypeCar))
	require.Equal(t, SpaceTypeOther, NormalizeSpaceType(SpaceType("boat")))
	require.Equal(t, SpaceTypeOther, NormalizeSpaceType(SpaceType("")))
}

func TestVehicleNormalize(t *testing.T) {
	v := Vehicle{Plate: "  wa 12345 ", Type: SpaceType("truck")}
	v.Normalize()
	require.Equal(t, "WA 12345", v.Plate)
	require.Equal(t, SpaceTypeOther, v.Type)
}

func TestSetAssignment(t *testing.T) {
	sp := &ParkingSpace{Number: "A-01", Type: SpaceTypeCar}
	id := uuid.New()

	sp.SetAssignment(&id)
	require.True(t, sp.Occupied())

	sp.SetAssignment(nil)
	require.False(t, sp.IsOccupied)
	require.Nil(t, sp.UserID)
	require.False(t, sp.Occupied())
}

func TestPeriodKey(t *testing.T) {
	require.Equal(t, "2024-03", PeriodKey(time.Date(2024, time.March, 31, 23, 59, 0, 0, time.UTC)))
	require.Equal(t, "2024-04", PeriodKey(time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)))
}

func TestPaymentStatusValid(t *testing.T) {
	require.True(t, PaymentStatusPending.Valid())
	require.True(t, PaymentStatusPaid.Valid())
	require.True(t, PaymentStatusOverdue.Valid())
	require.False(t, PaymentStatus("partial").Valid())
	require.False(t, PaymentStatus("").Valid())
}
