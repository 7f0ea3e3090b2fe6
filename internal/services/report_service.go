package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/parkwise/parking-service/internal/dtos"
	"github.com/parkwise/parking-service/internal/models"
	"github.com/parkwise/parking-service/internal/repositories"
)

const unknownUserLabel = "Unknown user"

// Report kinds mirror the dashboard's export tabs.
const (
	ReportOccupancy = "occupancy"
	ReportPayments  = "payments"
	ReportOverdue   = "overdue"
)

// ReportService computes dashboard aggregates and renders the
// exportable occupancy/payment reports. All aggregation is a pure fold
// over freshly fetched snapshots.
type ReportService struct {
	userRepo    repositories.UserRepository
	spaceRepo   repositories.ParkingSpaceRepository
	paymentRepo repositories.PaymentRepository
}

func NewReportService(
	userRepo repositories.UserRepository,
	spaceRepo repositories.ParkingSpaceRepository,
	paymentRepo repositories.PaymentRepository,
) *ReportService {
	return &ReportService{
		userRepo:    userRepo,
		spaceRepo:   spaceRepo,
		paymentRepo: paymentRepo,
	}
}

/* ------------------------------------------------------------------
   Pure aggregates
------------------------------------------------------------------ */

// FilterPayments keeps payments matching the filter; nil fields match
// everything. Date bounds are inclusive.
func FilterPayments(payments []*models.Payment, f repositories.PaymentFilter) []*models.Payment {
	out := make([]*models.Payment, 0, len(payments))
	for _, p := range payments {
		if f.Status != nil && p.Status != *f.Status {
			continue
		}
		if f.From != nil && p.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && p.Date.After(*f.To) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func TotalAmount(payments []*models.Payment) float64 {
	var sum float64
	for _, p := range payments {
		sum += p.Amount
	}
	return sum
}

func CountByStatus(payments []*models.Payment) map[models.PaymentStatus]int {
	counts := make(map[models.PaymentStatus]int)
	for _, p := range payments {
		counts[p.Status]++
	}
	return counts
}

/* ------------------------------------------------------------------
   Dashboard summary
------------------------------------------------------------------ */

func (s *ReportService) Summary(ctx context.Context) (*dtos.SummaryResponse, error) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	spaces, err := s.spaceRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list parking spaces: %w", err)
	}
	payments, err := s.paymentRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	occupied := 0
	for _, sp := range spaces {
		if sp.Occupied() {
			occupied++
		}
	}
	rate := 0
	if len(spaces) > 0 {
		rate = int(math.Round(float64(occupied) / float64(len(spaces)) * 100))
	}

	counts := CountByStatus(payments)
	resp := &dtos.SummaryResponse{
		TotalSpaces:    len(spaces),
		OccupiedSpaces: occupied,
		FreeSpaces:     len(spaces) - occupied,
		OccupancyRate:  rate,
		TotalUsers:     len(users),
		TotalAmount:    TotalAmount(payments),
		PaidCount:      counts[models.PaymentStatusPaid],
		PendingCount:   counts[models.PaymentStatusPending],
		OverdueCount:   counts[models.PaymentStatusOverdue],
	}
	for _, p := range payments {
		switch p.Status {
		case models.PaymentStatusPaid:
			resp.PaidAmount += p.Amount
		case models.PaymentStatusPending:
			resp.PendingAmount += p.Amount
		case models.PaymentStatusOverdue:
			resp.OverdueAmount += p.Amount
		}
	}
	return resp, nil
}

/* ------------------------------------------------------------------
   Export tables
------------------------------------------------------------------ */

// ReportTable is the rendered form of one export tab, consumed by both
// the CSV and the HTML writer.
type ReportTable struct {
	Title    string
	Filename string
	Headers  []string
	Rows     [][]string
}

func (s *ReportService) BuildTable(ctx context.Context, kind string) (*ReportTable, error) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	spaces, err := s.spaceRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list parking spaces: %w", err)
	}
	payments, err := s.paymentRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	switch kind {
	case ReportOccupancy:
		return occupancyTable(spaces, users), nil
	case ReportPayments:
		return paymentsTable(payments, users), nil
	case ReportOverdue:
		return overdueTable(payments, users), nil
	}
	return nil, fmt.Errorf("unknown report kind %q", kind)
}

func occupancyTable(spaces []*models.ParkingSpace, users []*models.User) *ReportTable {
	t := &ReportTable{
		Title:    "Space occupancy report",
		Filename: "occupancy_report",
		Headers:  []string{"Space", "Type", "Status", "User", "Email", "Phone"},
	}
	byID := usersByID(users)
	for _, sp := range spaces {
		status := "Free"
		name, email, phone := "-", "-", "-"
		if sp.Occupied() {
			status = "Occupied"
			if u, ok := byID[*sp.UserID]; ok {
				name, email = u.Name, u.Email
				if u.Phone != "" {
					phone = u.Phone
				}
			} else {
				name = unknownUserLabel
			}
		}
		t.Rows = append(t.Rows, []string{sp.Number, string(sp.Type), status, name, email, phone})
	}
	return t
}

func paymentsTable(payments []*models.Payment, users []*models.User) *ReportTable {
	t := &ReportTable{
		Title:    "Payments report",
		Filename: "payments_report",
		Headers:  []string{"Date", "User", "Amount", "Status", "Description"},
	}
	byID := usersByID(users)
	for _, p := range payments {
		t.Rows = append(t.Rows, []string{
			p.Date.Format("2006-01-02"),
			userName(byID, p.UserID),
			fmt.Sprintf("%.2f", p.Amount),
			string(p.Status),
			p.Description,
		})
	}
	return t
}

// overdueTable lists payments demanding attention: overdue plus the
// still-pending ones.
func overdueTable(payments []*models.Payment, users []*models.User) *ReportTable {
	t := &ReportTable{
		Title:    "Outstanding payments report",
		Filename: "outstanding_report",
		Headers:  []string{"User", "Email", "Phone", "Amount", "Date", "Status", "Description"},
	}
	byID := usersByID(users)
	for _, p := range payments {
		if p.Status != models.PaymentStatusOverdue && p.Status != models.PaymentStatusPending {
			continue
		}
		email, phone := "-", "-"
		if u, ok := byID[p.UserID]; ok {
			email = u.Email
			if u.Phone != "" {
				phone = u.Phone
			}
		}
		t.Rows = append(t.Rows, []string{
			userName(byID, p.UserID),
			email,
			phone,
			fmt.Sprintf("%.2f", p.Amount),
			p.Date.Format("2006-01-02"),
			string(p.Status),
			p.Description,
		})
	}
	return t
}

func usersByID(users []*models.User) map[uuid.UUID]*models.User {
	byID := make(map[uuid.UUID]*models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return byID
}

func userName(byID map[uuid.UUID]*models.User, id uuid.UUID) string {
	if u, ok := byID[id]; ok {
		return u.Name
	}
	return unknownUserLabel
}

// ExportFilename stamps the table's base name with today's date.
func (t *ReportTable) ExportFilename(ext string, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", t.Filename, now.Format("2006-01-02"), ext)
}
