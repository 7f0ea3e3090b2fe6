package services

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/parkwise/parking-service/internal/models"
	"github.com/parkwise/parking-service/internal/repositories"
	"github.com/parkwise/parking-service/internal/utils"
)

/* ------------------------------------------------------------------
   In-memory repository fakes
------------------------------------------------------------------ */

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[uuid.UUID]*models.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[id], nil
}

func (r *fakeUserRepo) ListAll(_ context.Context) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

type fakeVehicleRepo struct {
	mu       sync.Mutex
	vehicles []models.Vehicle
}

func (r *fakeVehicleRepo) Create(_ context.Context, v *models.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vehicles = append(r.vehicles, *v)
	return nil
}

func (r *fakeVehicleRepo) CreateMany(_ context.Context, list []models.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vehicles = append(r.vehicles, list...)
	return nil
}

func (r *fakeVehicleRepo) ListByUserID(_ context.Context, userID uuid.UUID) ([]models.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Vehicle
	for _, v := range r.vehicles {
		if v.UserID == userID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeVehicleRepo) ListAll(_ context.Context) ([]models.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Vehicle(nil), r.vehicles...), nil
}

func (r *fakeVehicleRepo) DeleteByUserID(_ context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.vehicles[:0]
	for _, v := range r.vehicles {
		if v.UserID != userID {
			kept = append(kept, v)
		}
	}
	r.vehicles = kept
	return nil
}

type fakeSpaceRepo struct {
	mu     sync.Mutex
	spaces map[uuid.UUID]*models.ParkingSpace
	order  []uuid.UUID
}

func newFakeSpaceRepo(spaces ...*models.ParkingSpace) *fakeSpaceRepo {
	r := &fakeSpaceRepo{spaces: make(map[uuid.UUID]*models.ParkingSpace)}
	for _, s := range spaces {
		r.spaces[s.ID] = s
		r.order = append(r.order, s.ID)
	}
	return r
}

func (r *fakeSpaceRepo) Create(_ context.Context, s *models.ParkingSpace) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.spaces[s.ID] = s
	r.order = append(r.order, s.ID)
	return nil
}

func (r *fakeSpaceRepo) GetByID(_ context.Context, id uuid.UUID) (*models.ParkingSpace, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.spaces[id], nil
}

func (r *fakeSpaceRepo) ListAll(_ context.Context) ([]*models.ParkingSpace, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.ParkingSpace, 0, len(r.order))
	for _, id := range r.order {
		if s, ok := r.spaces[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSpaceRepo) Update(_ context.Context, s *models.ParkingSpace) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.spaces[s.ID] = s
	return nil
}

func (r *fakeSpaceRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.spaces, id)
	return nil
}

func (r *fakeSpaceRepo) ClearAssignmentsForUser(_ context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.spaces {
		if s.UserID != nil && *s.UserID == userID {
			s.SetAssignment(nil)
		}
	}
	return nil
}

type fakePaymentRepo struct {
	mu       sync.Mutex
	payments map[uuid.UUID]*models.Payment
	order    []uuid.UUID

	// failCreateFor makes Create fail for specific user IDs, to exercise
	// best-effort insertion.
	failCreateFor map[uuid.UUID]error
}

func newFakePaymentRepo(payments ...*models.Payment) *fakePaymentRepo {
	r := &fakePaymentRepo{payments: make(map[uuid.UUID]*models.Payment)}
	for _, p := range payments {
		r.payments[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	return r
}

func (r *fakePaymentRepo) Create(_ context.Context, p *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err, ok := r.failCreateFor[p.UserID]; ok {
		return err
	}
	cp := *p
	r.payments[p.ID] = &cp
	r.order = append(r.order, p.ID)
	return nil
}

func (r *fakePaymentRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.payments[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakePaymentRepo) ListAll(_ context.Context) ([]*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Payment, 0, len(r.order))
	for _, id := range r.order {
		if p, ok := r.payments[id]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) List(ctx context.Context, f repositories.PaymentFilter) ([]*models.Payment, error) {
	all, _ := r.ListAll(ctx)
	return FilterPayments(all, f), nil
}

func (r *fakePaymentRepo) UpdateStatus(_ context.Context, id uuid.UUID, status models.PaymentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payments[id]
	if !ok {
		return utils.ErrNoRowsUpdated
	}
	p.Status = status
	return nil
}

/* ------------------------------------------------------------------
   Notifier fake
------------------------------------------------------------------ */

type recordingNotifier struct {
	mu    sync.Mutex
	sent  []uuid.UUID // payment IDs
	users []string
}

func (n *recordingNotifier) PaymentOverdue(_ context.Context, user *models.User, p *models.Payment) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, p.ID)
	n.users = append(n.users, user.Email)
}
