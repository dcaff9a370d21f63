package ports

import (
	"context"

	"github.com/garageworks/garage-service/internal/core/domain"
)

// CustomerRepository defines persistence operations for customers.
type CustomerRepository interface {
	// Create inserts c and sets c.ID. A taken user name yields domain.ErrUserExists, any other unique field domain.ErrAccountExists.
	Create(ctx context.Context, c *domain.Customer) error
	FindByUserName(ctx context.Context, userName string) (*domain.Customer, error)
	FindByLicenseNumber(ctx context.Context, licenseNumber string) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
	// AddTask appends taskID to the active list of the customer owning licenseNumber,
	// at most once. It reports whether a customer matched.
	AddTask(ctx context.Context, licenseNumber, taskID string) (bool, error)
	RemoveTask(ctx context.Context, licenseNumber, taskID string) error
}

// WorkerRepository defines persistence operations for workers.
type WorkerRepository interface {
	Create(ctx context.Context, w *domain.Worker) error
	FindByUserName(ctx context.Context, userName string) (*domain.Worker, error)
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Worker, error)
	List(ctx context.Context) ([]*domain.Worker, error)
	// AddTask appends taskID to the history of worker workerID, at most once.
	AddTask(ctx context.Context, workerID, taskID string) (bool, error)
	RemoveTask(ctx context.Context, workerID, taskID string) error
}

// Transactor runs a unit of work, atomically when the store supports it.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	// Atomic reports whether WithinTransaction rolls back on error.
	Atomic() bool
}

// IdempotencyStore binds client-supplied idempotency keys to created task ids.
type IdempotencyStore interface {
	Lookup(ctx context.Context, key string) (taskID string, found bool, err error)
	Bind(ctx context.Context, key, taskID string) error
}

// PasswordHasher is the pluggable credential-verification capability.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify returns domain.ErrInvalidCredentials when password does not match hash.
	Verify(hash, password string) error
}
