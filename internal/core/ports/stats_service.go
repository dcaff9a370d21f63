package ports

import "context"

// WorkerStats aggregates a worker's task history.
type WorkerStats struct {
	WorkerName     string
	OnWorkCount    int
	FinishedCount  int
	DeletedCount   int
	TotalWorkTime  float64
	TotalTaskPrice float64
	// AverageRating is taken over Finished tasks only, rounded to 2 decimals.
	AverageRating float64
}

// CustomerDetail is the manager's projection of a customer.
type CustomerDetail struct {
	Name          string
	LicenseNumber string
}

// StatsService computes the manager views on every call.
type StatsService interface {
	WorkerStats(ctx context.Context) ([]WorkerStats, error)
	CustomerDetails(ctx context.Context) ([]CustomerDetail, error)
}
