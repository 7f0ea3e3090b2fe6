package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/parkwise/parking-service/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	ListAll(ctx context.Context) ([]*models.User, error)

	Update(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type userRepo struct {
	db DB
}

func NewUserRepository(db DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, name, email, phone, created_at, updated_at)
		VALUES ($1,$2,$3,$4, NOW(), NOW())
	`, u.ID, u.Name, u.Email, nullIfEmpty(u.Phone))
	return err
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser()+" WHERE id=$1", id)
	return scanUser(row)
}

func (r *userRepo) ListAll(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, baseSelectUser()+" ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *userRepo) Update(ctx context.Context, u *models.User) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET name=$1, email=$2, phone=$3, updated_at=NOW()
		WHERE id=$4
	`, u.Name, u.Email, nullIfEmpty(u.Phone), u.ID)
	return err
}

// Delete removes the user row; vehicles go with it via ON DELETE CASCADE.
// Clearing parking-space assignments is the service layer's job.
func (r *userRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	return err
}

/* ---------- internals ---------- */

func baseSelectUser() string {
	return `SELECT id, name, email, phone, created_at FROM users`
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	var phone *string
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &phone, &u.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if phone != nil {
		u.Phone = *phone
	}
	return &u, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
