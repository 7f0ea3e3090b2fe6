package repositories

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/parkwise/parking-service/internal/models"
	"github.com/parkwise/parking-service/internal/utils"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

// PaymentFilter narrows List results. Nil fields match everything.
type PaymentFilter struct {
	Status *models.PaymentStatus
	From   *time.Time
	To     *time.Time
}

type PaymentRepository interface {
	Create(ctx context.Context, p *models.Payment) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Payment, error)
	ListAll(ctx context.Context) ([]*models.Payment, error)
	List(ctx context.Context, f PaymentFilter) ([]*models.Payment, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status models.PaymentStatus) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type paymentRepo struct {
	db DB
}

func NewPaymentRepository(db DB) PaymentRepository {
	return &paymentRepo{db: db}
}

func (r *paymentRepo) Create(ctx context.Context, p *models.Payment) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO payments (id, user_id, amount, date, status, description, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6, NOW(), NOW())
	`, p.ID, p.UserID, p.Amount, p.Date, string(p.Status), p.Description)
	return err
}

func (r *paymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	row := r.db.QueryRow(ctx, baseSelectPayment()+" WHERE id=$1", id)
	return scanPayment(row)
}

func (r *paymentRepo) ListAll(ctx context.Context) ([]*models.Payment, error) {
	return r.List(ctx, PaymentFilter{})
}

func (r *paymentRepo) List(ctx context.Context, f PaymentFilter) ([]*models.Payment, error) {
	sql := baseSelectPayment()
	var (
		args  []interface{}
		where []string
	)
	if f.Status != nil {
		args = append(args, string(*f.Status))
		where = append(where, "status=$"+strconv.Itoa(len(args)))
	}
	if f.From != nil {
		args = append(args, *f.From)
		where = append(where, "date>=$"+strconv.Itoa(len(args)))
	}
	if f.To != nil {
		args = append(args, *f.To)
		where = append(where, "date<=$"+strconv.Itoa(len(args)))
	}
	for i, cond := range where {
		if i == 0 {
			sql += " WHERE " + cond
		} else {
			sql += " AND " + cond
		}
	}
	sql += " ORDER BY date DESC, created_at DESC"

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *paymentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.PaymentStatus) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE payments SET status=$1, updated_at=NOW() WHERE id=$2
	`, string(status), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrNoRowsUpdated
	}
	return nil
}

/* ---------- internals ---------- */

func baseSelectPayment() string {
	return `SELECT id, user_id, amount, date, status, description, created_at FROM payments`
}

func scanPayment(row pgx.Row) (*models.Payment, error) {
	var p models.Payment
	var status string
	if err := row.Scan(&p.ID, &p.UserID, &p.Amount, &p.Date, &status, &p.Description, &p.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	p.Status = models.PaymentStatus(status)
	return &p, nil
}
