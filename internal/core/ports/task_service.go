package ports

import (
	"context"

	"github.com/garageworks/garage-service/internal/core/domain"
)

// CreateTaskInput carries all data needed to submit a task.
type CreateTaskInput struct {
	CarLicenseNumber string
	TaskName         string
	Price            float64
	WorkTime         float64
	WorkerName       string
	IdempotencyKey   string
}

// CreateTaskResult is returned by CreateTask.
type CreateTaskResult struct {
	Task *domain.Task
	// Replayed is true when the idempotency key matched an earlier submission.
	Replayed bool
}

// CustomerTasks is a customer with its task references populated.
type CustomerTasks struct {
	Customer *domain.Customer
	Tasks    []*domain.Task
	History  []*domain.Task
}

// WorkerTasks is a worker with its task history populated.
type WorkerTasks struct {
	Worker  *domain.Worker
	History []*domain.Task
}

// TaskService defines use-case operations for tasks.
type TaskService interface {
	CreateTask(ctx context.Context, in CreateTaskInput) (*CreateTaskResult, error)
	ListByLicense(ctx context.Context, licenseNumber, status string) ([]*domain.Task, error)
	CustomerTasks(ctx context.Context, licenseNumber string) ([]*domain.Task, error)
	WorkerHistory(ctx context.Context, workerName string) ([]*domain.Task, error)
	AllCustomerTasks(ctx context.Context) ([]CustomerTasks, error)
	AllWorkerTasks(ctx context.Context) ([]WorkerTasks, error)
	Finish(ctx context.Context, id string) (*domain.Task, error)
	Delete(ctx context.Context, id string) (*domain.Task, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Task, error)
	Rate(ctx context.Context, id string, rating float64) (*domain.Task, error)
}
