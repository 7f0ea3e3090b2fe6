package dtos

// SummaryResponse backs the dashboard overview cards.
type SummaryResponse struct {
	TotalSpaces    int     `json:"total_spaces"`
	OccupiedSpaces int     `json:"occupied_spaces"`
	FreeSpaces     int     `json:"free_spaces"`
	OccupancyRate  int     `json:"occupancy_rate"`
	TotalUsers     int     `json:"total_users"`
	TotalAmount    float64 `json:"total_amount"`
	PaidAmount     float64 `json:"paid_amount"`
	PendingAmount  float64 `json:"pending_amount"`
	OverdueAmount  float64 `json:"overdue_amount"`
	PaidCount      int     `json:"paid_count"`
	PendingCount   int     `json:"pending_count"`
	OverdueCount   int     `json:"overdue_count"`
}
