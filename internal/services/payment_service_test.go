package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/parkwise/parking-service/internal/models"
	"github.com/parkwise/parking-service/internal/utils"
)

func TestCreatePaymentDefaults(t *testing.T) {
	ctx := context.Background()
	user := &models.User{ID: uuid.New(), Name: "Anna", Email: "anna@example.com"}
	svc := NewPaymentService(newFakePaymentRepo(), newFakeUserRepo(user))

	created, err := svc.Create(ctx, &models.Payment{
		UserID:      user.ID,
		Amount:      120,
		Description: "Manual payment",
	})
	require.NoError(t, err)
	require.Equal(t, models.PaymentStatusPending, created.Status)
	require.Equal(t, DateOnly(time.Now().UTC()), created.Date)
}

func TestCreatePaymentValidation(t *testing.T) {
	ctx := context.Background()
	user := &models.User{ID: uuid.New(), Name: "Anna", Email: "anna@example.com"}
	svc := NewPaymentService(newFakePaymentRepo(), newFakeUserRepo(user))

	_, err := svc.Create(ctx, &models.Payment{UserID: user.ID, Amount: -5})
	require.ErrorIs(t, err, utils.ErrInvalidAmount)

	_, err = svc.Create(ctx, &models.Payment{UserID: user.ID, Amount: 10, Status: "partial"})
	require.ErrorIs(t, err, utils.ErrInvalidStatus)

	_, err = svc.Create(ctx, &models.Payment{UserID: uuid.New(), Amount: 10})
	require.ErrorIs(t, err, utils.ErrUnknownUser)
}

func TestSetStatus(t *testing.T) {
	ctx := context.Background()
	user := &models.User{ID: uuid.New(), Name: "Anna", Email: "anna@example.com"}
	p := pendingPayment(user.ID, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	repo := newFakePaymentRepo(p)
	svc := NewPaymentService(repo, newFakeUserRepo(user))

	got, err := svc.SetStatus(ctx, p.ID, models.PaymentStatusPaid)
	require.NoError(t, err)
	require.Equal(t, models.PaymentStatusPaid, got.Status)

	_, err = svc.SetStatus(ctx, uuid.New(), models.PaymentStatusPaid)
	require.ErrorIs(t, err, utils.ErrNotFound)

	_, err = svc.SetStatus(ctx, p.ID, "partial")
	require.ErrorIs(t, err, utils.ErrInvalidStatus)
}
