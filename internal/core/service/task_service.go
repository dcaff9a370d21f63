package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/garageworks/garage-service/internal/core/domain"
	"github.com/garageworks/garage-service/internal/core/ports"
)

const defaultLinkAttempts = 3

// TaskService implements task intake, queries and status transitions.
type TaskService struct {
	tasks        ports.TaskRepository
	customers    ports.CustomerRepository
	workers      ports.WorkerRepository
	tx           ports.Transactor
	idempotency  ports.IdempotencyStore // optional
	linkAttempts int
	logger       zerolog.Logger
}

// TaskServiceOption customises a TaskService.
type TaskServiceOption func(*TaskService)

// WithIdempotencyStore binds idempotency keys in store in addition to the task record.
func WithIdempotencyStore(store ports.IdempotencyStore) TaskServiceOption {
	return func(s *TaskService) { s.idempotency = store }
}

// WithLinkAttempts sets how many times each parent-link write is tried.
func WithLinkAttempts(n int) TaskServiceOption {
	return func(s *TaskService) {
		if n > 0 {
			s.linkAttempts = n
		}
	}
}

func NewTaskService(
	tasks ports.TaskRepository,
	customers ports.CustomerRepository,
	workers ports.WorkerRepository,
	tx ports.Transactor,
	logger zerolog.Logger,
	opts ...TaskServiceOption,
) *TaskService {
	s := &TaskService{
		tasks:        tasks,
		customers:    customers,
		workers:      workers,
		tx:           tx,
		linkAttempts: defaultLinkAttempts,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateTask submits a task and links it into the assigned worker's history and
// the owning customer's active list. A parent that does not exist is skipped; the
// task is still created. If a link write keeps failing, links already made are
// undone and the task is removed.
func (s *TaskService) CreateTask(ctx context.Context, in ports.CreateTaskInput) (*ports.CreateTaskResult, error) {
	if strings.TrimSpace(in.TaskName) == "" || strings.TrimSpace(in.CarLicenseNumber) == "" {
		return nil, fmt.Errorf("create task: %w: taskName and carLicenseNumber are required", domain.ErrValidation)
	}

	if in.IdempotencyKey != "" {
		if existing := s.replay(ctx, in.IdempotencyKey); existing != nil {
			s.logger.Info().Str("idempotency_key", in.IdempotencyKey).Str("task_id", existing.ID).Msg("idempotent replay")
			return &ports.CreateTaskResult{Task: existing, Replayed: true}, nil
		}
	}

	worker, err := s.workers.FindByUserName(ctx, in.WorkerName)
	if err != nil && !errors.Is(err, domain.ErrWorkerNotFound) {
		return nil, fmt.Errorf("create task: resolve worker: %w", err)
	}

	now := time.Now().UTC()
	task := &domain.Task{
		CarLicenseNumber: in.CarLicenseNumber,
		TaskName:         in.TaskName,
		Status:           domain.StatusOnWork,
		Price:            in.Price,
		WorkTime:         in.WorkTime,
		IdempotencyKey:   in.IdempotencyKey,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if worker != nil {
		task.WorkerID = worker.ID
		task.WorkerName = worker.UserName
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.intake(ctx, task)
	})
	if errors.Is(err, domain.ErrDuplicateTask) {
		// A concurrent submission with the same key won the insert.
		if existing := s.replay(ctx, in.IdempotencyKey); existing != nil {
			return &ports.CreateTaskResult{Task: existing, Replayed: true}, nil
		}
	}
	if err != nil {
		s.logger.Error().Err(err).Str("car_license_number", in.CarLicenseNumber).Msg("failed to create task")
		return nil, fmt.Errorf("create task: %w", err)
	}

	if in.IdempotencyKey != "" && s.idempotency != nil {
		if bindErr := s.idempotency.Bind(ctx, in.IdempotencyKey, task.ID); bindErr != nil {
			s.logger.Warn().Err(bindErr).Str("idempotency_key", in.IdempotencyKey).Msg("failed to bind idempotency key")
		}
	}

	s.logger.Info().
		Str("task_id", task.ID).
		Str("car_license_number", task.CarLicenseNumber).
		Str("worker_id", task.WorkerID).
		Msg("task created")

	return &ports.CreateTaskResult{Task: task}, nil
}

// intake performs the insert-then-link sequence for one task.
func (s *TaskService) intake(ctx context.Context, task *domain.Task) error {
	if err := s.tasks.Create(ctx, task); err != nil {
		return fmt.Errorf("insert task: %w", err)
	}

	undo := []func(context.Context) error{
		func(ctx context.Context) error { return s.tasks.Delete(ctx, task.ID) },
	}

	if task.WorkerID != "" {
		linked, err := s.link(ctx, func() (bool, error) { return s.workers.AddTask(ctx, task.WorkerID, task.ID) })
		if err != nil {
			s.compensate(ctx, task.ID, undo)
			return fmt.Errorf("link worker: %w", err)
		}
		if linked {
			undo = append(undo, func(ctx context.Context) error { return s.workers.RemoveTask(ctx, task.WorkerID, task.ID) })
		}
	}

	linked, err := s.link(ctx, func() (bool, error) { return s.customers.AddTask(ctx, task.CarLicenseNumber, task.ID) })
	if err != nil {
		s.compensate(ctx, task.ID, undo)
		return fmt.Errorf("link customer: %w", err)
	}
	if !linked {
		s.logger.Debug().Str("car_license_number", task.CarLicenseNumber).Msg("no customer owns this license number")
	}
	return nil
}

// link retries an idempotent parent write. Inside a transaction a failed write
// aborts the session, so it is tried once and the transaction retries as a whole.
func (s *TaskService) link(ctx context.Context, write func() (bool, error)) (bool, error) {
	attempts := s.linkAttempts
	if s.tx.Atomic() {
		attempts = 1
	}
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		var matched bool
		if matched, err = write(); err == nil {
			return matched, nil
		}
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		s.logger.Warn().Err(err).Int("attempt", attempt).Msg("task link write failed")
	}
	return false, err
}

// compensate undoes completed intake steps in reverse order. A transactional
// store rolls back on its own.
func (s *TaskService) compensate(ctx context.Context, taskID string, undo []func(context.Context) error) {
	if s.tx.Atomic() {
		return
	}
	for i := len(undo) - 1; i >= 0; i-- {
		if err := undo[i](ctx); err != nil {
			s.logger.Error().Err(err).Str("task_id", taskID).Msg("intake compensation step failed")
		}
	}
	s.logger.Warn().Str("task_id", taskID).Msg("task intake compensated")
}

func (s *TaskService) replay(ctx context.Context, key string) *domain.Task {
	if s.idempotency != nil {
		id, found, err := s.idempotency.Lookup(ctx, key)
		if err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency lookup failed, checking store")
		} else if found {
			if t, err := s.tasks.FindByID(ctx, id); err == nil {
				return s.withWorkerName(ctx, t)
			}
		}
	}

	t, err := s.tasks.FindByIdempotencyKey(ctx, key)
	if err != nil {
		return nil
	}
	return s.withWorkerName(ctx, t)
}

// ListByLicense returns the tasks on a vehicle, optionally narrowed to one status.
func (s *TaskService) ListByLicense(ctx context.Context, licenseNumber, status string) ([]*domain.Task, error) {
	if strings.TrimSpace(licenseNumber) == "" {
		return nil, fmt.Errorf("list tasks: %w: licenseNumber is required", domain.ErrValidation)
	}
	tasks, err := s.tasks.List(ctx, ports.TaskFilter{CarLicenseNumber: licenseNumber, Status: status})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return s.attachWorkerNames(ctx, tasks)
}

// CustomerTasks returns the active tasks of the customer owning licenseNumber.
func (s *TaskService) CustomerTasks(ctx context.Context, licenseNumber string) ([]*domain.Task, error) {
	customer, err := s.customers.FindByLicenseNumber(ctx, licenseNumber)
	if err != nil {
		return nil, fmt.Errorf("customer tasks: %w", err)
	}
	tasks, err := s.tasks.FindByIDs(ctx, customer.TaskIDs)
	if err != nil {
		return nil, fmt.Errorf("customer tasks: populate: %w", err)
	}
	return s.attachWorkerNames(ctx, tasks)
}

// WorkerHistory returns every task ever assigned to workerName.
func (s *TaskService) WorkerHistory(ctx context.Context, workerName string) ([]*domain.Task, error) {
	worker, err := s.workers.FindByUserName(ctx, workerName)
	if err != nil {
		return nil, fmt.Errorf("worker history: %w", err)
	}
	tasks, err := s.tasks.FindByIDs(ctx, worker.HistoryIDs)
	if err != nil {
		return nil, fmt.Errorf("worker history: populate: %w", err)
	}
	return s.attachWorkerNames(ctx, tasks)
}

// AllCustomerTasks returns every customer with both task lists populated.
func (s *TaskService) AllCustomerTasks(ctx context.Context) ([]ports.CustomerTasks, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("all customer tasks: %w", err)
	}

	var ids []string
	for _, c := range customers {
		ids = append(ids, c.TaskIDs...)
		ids = append(ids, c.HistoryIDs...)
	}
	byID, err := s.taskIndex(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("all customer tasks: populate: %w", err)
	}

	out := make([]ports.CustomerTasks, 0, len(customers))
	for _, c := range customers {
		out = append(out, ports.CustomerTasks{
			Customer: c,
			Tasks:    pick(byID, c.TaskIDs),
			History:  pick(byID, c.HistoryIDs),
		})
	}
	return out, nil
}

// AllWorkerTasks returns every worker with its history populated.
func (s *TaskService) AllWorkerTasks(ctx context.Context) ([]ports.WorkerTasks, error) {
	workers, err := s.workers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("all worker tasks: %w", err)
	}

	var ids []string
	for _, w := range workers {
		ids = append(ids, w.HistoryIDs...)
	}
	byID, err := s.taskIndex(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("all worker tasks: populate: %w", err)
	}

	out := make([]ports.WorkerTasks, 0, len(workers))
	for _, w := range workers {
		out = append(out, ports.WorkerTasks{Worker: w, History: pick(byID, w.HistoryIDs)})
	}
	return out, nil
}

// Finish marks a task Finished regardless of its current status.
func (s *TaskService) Finish(ctx context.Context, id string) (*domain.Task, error) {
	return s.setStatus(ctx, "finish task", id, domain.StatusFinished)
}

// Delete soft-deletes a task: the record stays and its status becomes Deleted.
func (s *TaskService) Delete(ctx context.Context, id string) (*domain.Task, error) {
	return s.setStatus(ctx, "delete task", id, domain.StatusDeleted)
}

// UpdateStatus overwrites the status with any non-empty string.
func (s *TaskService) UpdateStatus(ctx context.Context, id, status string) (*domain.Task, error) {
	if strings.TrimSpace(status) == "" {
		return nil, fmt.Errorf("update task status: %w: status is required", domain.ErrValidation)
	}
	return s.setStatus(ctx, "update task status", id, domain.TaskStatus(status))
}

// Rate sets a task's rating. The id format is checked before touching the store.
func (s *TaskService) Rate(ctx context.Context, id string, rating float64) (*domain.Task, error) {
	if !domain.IsValidID(id) {
		return nil, fmt.Errorf("rate task: %w", domain.ErrInvalidID)
	}
	t, err := s.tasks.SetRating(ctx, id, rating)
	if err != nil {
		return nil, fmt.Errorf("rate task: %w", err)
	}
	s.logger.Info().Str("task_id", id).Float64("rating", rating).Msg("task rated")
	return s.withWorkerName(ctx, t), nil
}

func (s *TaskService) setStatus(ctx context.Context, op, id string, status domain.TaskStatus) (*domain.Task, error) {
	if !domain.IsValidID(id) {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrInvalidID)
	}
	t, err := s.tasks.SetStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.logger.Info().Str("task_id", id).Str("status", string(status)).Msg("task status changed")
	return s.withWorkerName(ctx, t), nil
}

func (s *TaskService) taskIndex(ctx context.Context, ids []string) (map[string]*domain.Task, error) {
	tasks, err := s.tasks.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if tasks, err = s.attachWorkerNames(ctx, tasks); err != nil {
		return nil, err
	}
	byID := make(map[string]*domain.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}
	return byID, nil
}

// pick resolves ids against byID in order, skipping dangling references.
func pick(byID map[string]*domain.Task, ids []string) []*domain.Task {
	out := make([]*domain.Task, 0, len(ids))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			out = append(out, t)
		}
	}
	return out
}
