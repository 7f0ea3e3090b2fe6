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

type ParkingSpaceRepository interface {
	Create(ctx context.Context, s *models.ParkingSpace) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.ParkingSpace, error)
	ListAll(ctx context.Context) ([]*models.ParkingSpace, error)

	Update(ctx context.Context, s *models.ParkingSpace) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ClearAssignmentsForUser frees every space held by the user, keeping
	// is_occupied and user_id consistent in a single statement.
	ClearAssignmentsForUser(ctx context.Context, userID uuid.UUID) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type parkingSpaceRepo struct {
	db DB
}

func NewParkingSpaceRepository(db DB) ParkingSpaceRepository {
	return &parkingSpaceRepo{db: db}
}

func (r *parkingSpaceRepo) Create(ctx context.Context, s *models.ParkingSpace) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO parking_spaces (id, number, type, is_occupied, user_id, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5, NOW(), NOW())
	`, s.ID, s.Number, string(s.Type), s.IsOccupied, s.UserID)
	return err
}

func (r *parkingSpaceRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.ParkingSpace, error) {
	row := r.db.QueryRow(ctx, baseSelectSpace()+" WHERE id=$1", id)
	return scanSpace(row)
}

func (r *parkingSpaceRepo) ListAll(ctx context.Context) ([]*models.ParkingSpace, error) {
	rows, err := r.db.Query(ctx, baseSelectSpace()+" ORDER BY number")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.ParkingSpace
	for rows.Next() {
		s, err := scanSpace(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *parkingSpaceRepo) Update(ctx context.Context, s *models.ParkingSpace) error {
	_, err := r.db.Exec(ctx, `
		UPDATE parking_spaces
		SET number=$1, type=$2, is_occupied=$3, user_id=$4, updated_at=NOW()
		WHERE id=$5
	`, s.Number, string(s.Type), s.IsOccupied, s.UserID, s.ID)
	return err
}

func (r *parkingSpaceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM parking_spaces WHERE id=$1`, id)
	return err
}

func (r *parkingSpaceRepo) ClearAssignmentsForUser(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
		UPDATE parking_spaces
		SET is_occupied=FALSE, user_id=NULL, updated_at=NOW()
		WHERE user_id=$1
	`, userID)
	return err
}

/* ---------- internals ---------- */

func baseSelectSpace() string {
	return `SELECT id, number, type, is_occupied, user_id, created_at FROM parking_spaces`
}

func scanSpace(row pgx.Row) (*models.ParkingSpace, error) {
	var s models.ParkingSpace
	var typ string
	if err := row.Scan(&s.ID, &s.Number, &typ, &s.IsOccupied, &s.UserID, &s.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	s.Type = models.NormalizeSpaceType(models.SpaceType(typ))
	return &s, nil
}
