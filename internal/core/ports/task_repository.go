package ports

import (
	"context"

	"github.com/garageworks/garage-service/internal/core/domain"
)

// TaskFilter carries the query parameters for listing tasks.
type TaskFilter struct {
	CarLicenseNumber string
	Status           string // optional: exact status match
}

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	// Create inserts t and sets t.ID. A reused idempotency key yields domain.ErrDuplicateTask.
	Create(ctx context.Context, t *domain.Task) error
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	// FindByIDs returns the tasks in the order of ids. Unknown ids are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Task, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*domain.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]*domain.Task, error)
	SetStatus(ctx context.Context, id string, status domain.TaskStatus) (*domain.Task, error)
	SetRating(ctx context.Context, id string, rating float64) (*domain.Task, error)
	// Delete removes the record. Only intake compensation uses it.
	Delete(ctx context.Context, id string) error
}
