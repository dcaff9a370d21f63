package domain

import "time"

const (
	RoleCustomer = "customer"
	RoleWorker   = "worker"
)

// Customer is a vehicle owner, addressed by its license number.
type Customer struct {
	ID            string
	UserName      string
	Email         string
	PasswordHash  string
	LicenseNumber string
	// TaskIDs holds the active tasks, in submission order.
	TaskIDs    []string
	HistoryIDs []string
	CreatedAt  time.Time
}

// Worker is a staff member who performs tasks.
type Worker struct {
	ID           string
	UserName     string
	Email        string
	PasswordHash string
	HistoryIDs   []string
	CreatedAt    time.Time
}
