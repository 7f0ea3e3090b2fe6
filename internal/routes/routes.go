package routes

const (
	// Health / status
	Health = "/health"
	Status = "/api/v1/status"

	// Users (vehicles ride along in user payloads)
	Users    = "/api/v1/users"
	UserByID = "/api/v1/users/{id}"

	// Parking spaces
	Spaces      = "/api/v1/spaces"
	SpaceByID   = "/api/v1/spaces/{id}"
	SpaceAssign = "/api/v1/spaces/{id}/assign"

	// Payments
	Payments             = "/api/v1/payments"
	PaymentStatus        = "/api/v1/payments/{id}/status"
	PaymentsGenerate     = "/api/v1/payments/generate"
	PaymentsOverdueSweep = "/api/v1/payments/overdue-sweep"

	// Reports
	ReportsSummary = "/api/v1/reports/summary"
	ReportsExport  = "/api/v1/reports/export"
)
