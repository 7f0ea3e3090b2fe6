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

type VehicleRepository interface {
	Create(ctx context.Context, v *models.Vehicle) error
	CreateMany(ctx context.Context, list []models.Vehicle) error

	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Vehicle, error)
	ListAll(ctx context.Context) ([]models.Vehicle, error)

	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type vehicleRepo struct {
	db DB
}

func NewVehicleRepository(db DB) VehicleRepository {
	return &vehicleRepo{db: db}
}

func (r *vehicleRepo) Create(ctx context.Context, v *models.Vehicle) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO vehicles (id, user_id, brand, model, plate, type, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6, NOW(), NOW())
	`, v.ID, v.UserID, v.Brand, v.Model, v.Plate, string(v.Type))
	return err
}

func (r *vehicleRepo) CreateMany(ctx context.Context, list []models.Vehicle) error {
	for i := range list {
		if err := r.Create(ctx, &list[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *vehicleRepo) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Vehicle, error) {
	rows, err := r.db.Query(ctx, baseSelectVehicle()+" WHERE user_id=$1 ORDER BY created_at", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanVehicles(rows)
}

func (r *vehicleRepo) ListAll(ctx context.Context) ([]models.Vehicle, error) {
	rows, err := r.db.Query(ctx, baseSelectVehicle()+" ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanVehicles(rows)
}

// DeleteByUserID clears a user's fleet; user edits replace vehicles
// wholesale rather than diffing them.
func (r *vehicleRepo) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM vehicles WHERE user_id=$1`, userID)
	return err
}

/* ---------- internals ---------- */

func baseSelectVehicle() string {
	return `SELECT id, user_id, brand, model, plate, type, created_at FROM vehicles`
}

func scanVehicle(row pgx.Row) (*models.Vehicle, error) {
	var v models.Vehicle
	var typ string
	if err := row.Scan(&v.ID, &v.UserID, &v.Brand, &v.Model, &v.Plate, &typ, &v.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	v.Type = models.NormalizeSpaceType(models.SpaceType(typ))
	return &v, nil
}

func scanVehicles(rows pgx.Rows) ([]models.Vehicle, error) {
	var out []models.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, rows.Err()
}
