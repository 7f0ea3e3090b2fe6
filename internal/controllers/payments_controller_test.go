package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/parkwise/parking-service/internal/models"
	"github.com/parkwise/parking-service/internal/repositories"
	"github.com/parkwise/parking-service/internal/routes"
	"github.com/parkwise/parking-service/internal/services"
	"github.com/parkwise/parking-service/internal/utils"
)

type stubUserRepo struct {
	users map[uuid.UUID]*models.User
}

func (r *stubUserRepo) Create(context.Context, *models.User) error { return nil }
func (r *stubUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	return r.users[id], nil
}
func (r *stubUserRepo) ListAll(context.Context) ([]*models.User, error) { return nil, nil }
func (r *stubUserRepo) Update(context.Context, *models.User) error { return nil }
func (r *stubUserRepo) Delete(context.Context, uuid.UUID) error { return nil }

type stubPaymentRepo struct {
	payments map[uuid.UUID]*models.Payment
	order    []uuid.UUID
}

func newStubPaymentRepo() *stubPaymentRepo {
	return &stubPaymentRepo{payments: make(map[uuid.UUID]*models.Payment)}
}

func (r *stubPaymentRepo) Create(_ context.Context, p *models.Payment) error {
	r.payments[p.ID] = p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *stubPaymentRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Payment, error) {
	return r.payments[id], nil
}

func (r *stubPaymentRepo) ListAll(context.Context) ([]*models.Payment, error) {
	out := make([]*models.Payment, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.payments[id])
	}
	return out, nil
}

func (r *stubPaymentRepo) List(ctx context.Context, f repositories.PaymentFilter) ([]*models.Payment, error) {
	all, _ := r.ListAll(ctx)
	return services.FilterPayments(all, f), nil
}

func (r *stubPaymentRepo) UpdateStatus(_ context.Context, id uuid.UUID, status models.PaymentStatus) error {
	p, ok := r.payments[id]
	if !ok {
		return utils.ErrNoRowsUpdated
	}
	p.Status = status
	return nil
}

func paymentsRouter(userRepo *stubUserRepo, paymentRepo *stubPaymentRepo) *mux.Router {
	svc := services.NewPaymentService(paymentRepo, userRepo)
	c := NewPaymentsController(svc, nil, nil)

	r := mux.NewRouter()
	r.HandleFunc(routes.Payments, c.ListPaymentsHandler).Methods(http.MethodGet)
	r.HandleFunc(routes.Payments, c.CreatePaymentHandler).Methods(http.MethodPost)
	r.HandleFunc(routes.PaymentStatus, c.UpdatePaymentStatusHandler).Methods(http.MethodPatch)
	return r
}

func TestListPaymentsStatusFilter(t *testing.T) {
	user := &models.User{ID: uuid.New(), Name: "Anna", Email: "anna@example.com"}
	userRepo := &stubUserRepo{users: map[uuid.UUID]*models.User{user.ID: user}}
	paymentRepo := newStubPaymentRepo()

	ctx := context.Background()
	paymentRepo.Create(ctx, &models.Payment{ID: uuid.New(), UserID: user.ID, Amount: 100,
		Date: time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), Status: models.PaymentStatusPaid})
	paymentRepo.Create(ctx, &models.Payment{ID: uuid.New(), UserID: user.ID, Amount: 50,
		Date: time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC), Status: models.PaymentStatusPending})

	router := paymentsRouter(userRepo, paymentRepo)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, routes.Payments+"?status=paid", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got []*models.Payment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, models.PaymentStatusPaid, got[0].Status)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, routes.Payments+"?status=bogus", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreatePaymentHandler(t *testing.T) {
	user := &models.User{ID: uuid.New(), Name: "Anna", Email: "anna@example.com"}
	userRepo := &stubUserRepo{users: map[uuid.UUID]*models.User{user.ID: user}}
	paymentRepo := newStubPaymentRepo()
	router := paymentsRouter(userRepo, paymentRepo)

	body := `{"user_id":"` + user.ID.String() + `","amount":120,"date":"2024-03-01","status":"pending","description":"Manual payment"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, routes.Payments, strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.Payment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, 120.0, got.Amount)
	require.Equal(t, "2024-03-01", got.Date.Format("2006-01-02"))

	// Unknown user is a validation failure, not a server error.
	body = `{"user_id":"` + uuid.NewString() + `","amount":10,"description":"x"}`
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, routes.Payments, strings.NewReader(body)))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdatePaymentStatusHandler(t *testing.T) {
	user := &models.User{ID: uuid.New(), Name: "Anna", Email: "anna@example.com"}
	userRepo := &stubUserRepo{users: map[uuid.UUID]*models.User{user.ID: user}}
	paymentRepo := newStubPaymentRepo()

	p := &models.Payment{ID: uuid.New(), UserID: user.ID, Amount: 100,
		Date: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), Status: models.PaymentStatusPending}
	paymentRepo.Create(context.Background(), p)

	router := paymentsRouter(userRepo, paymentRepo)

	url := strings.Replace(routes.PaymentStatus, "{id}", p.ID.String(), 1)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, url, strings.NewReader(`{"status":"paid"}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Payment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, models.PaymentStatusPaid, got.Status)

	url = strings.Replace(routes.PaymentStatus, "{id}", uuid.NewString(), 1)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, url, strings.NewReader(`{"status":"paid"}`)))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
