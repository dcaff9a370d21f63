package memory

import (
	"context"
	"time"

	"github.com/garageworks/garage-service/internal/core/domain"
	"github.com/garageworks/garage-service/internal/core/ports"
)

type TaskRepository struct {
	s *Store
}

func (r *TaskRepository) Create(_ context.Context, t *domain.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if t.IdempotencyKey != "" {
		for _, existing := range r.s.tasks {
			if existing.IdempotencyKey == t.IdempotencyKey {
				return domain.ErrDuplicateTask
			}
		}
	}

	t.ID = domain.NewID()
	r.s.tasks[t.ID] = cloneTask(t)
	r.s.taskOrder = append(r.s.taskOrder, t.ID)
	return nil
}

func (r *TaskRepository) FindByID(_ context.Context, id string) (*domain.Task, error) {
	if !domain.IsValidID(id) {
		return nil, domain.ErrInvalidID
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return cloneTask(t), nil
}

func (r *TaskRepository) FindByIDs(_ context.Context, ids []string) ([]*domain.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*domain.Task, 0, len(ids))
	for _, id := range ids {
		if t, ok := r.s.tasks[id]; ok {
			out = append(out, cloneTask(t))
		}
	}
	return out, nil
}

func (r *TaskRepository) FindByIdempotencyKey(_ context.Context, key string) (*domain.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, t := range r.s.tasks {
		if key != "" && t.IdempotencyKey == key {
			return cloneTask(t), nil
		}
	}
	return nil, domain.ErrTaskNotFound
}

func (r *TaskRepository) List(_ context.Context, f ports.TaskFilter) ([]*domain.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []*domain.Task{}
	for _, id := range r.s.taskOrder {
		t, ok := r.s.tasks[id]
		if !ok || t.CarLicenseNumber != f.CarLicenseNumber {
			continue
		}
		if f.Status != "" && string(t.Status) != f.Status {
			continue
		}
		out = append(out, cloneTask(t))
	}
	return out, nil
}

func (r *TaskRepository) SetStatus(_ context.Context, id string, status domain.TaskStatus) (*domain.Task, error) {
	return r.update(id, func(t *domain.Task) { t.Status = status })
}

func (r *TaskRepository) SetRating(_ context.Context, id string, rating float64) (*domain.Task, error) {
	return r.update(id, func(t *domain.Task) { t.Rating = rating })
}

func (r *TaskRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(r.s.tasks, id)
	r.s.taskOrder = removeID(r.s.taskOrder, id)
	return nil
}

func (r *TaskRepository) update(id string, mutate func(*domain.Task)) (*domain.Task, error) {
	if !domain.IsValidID(id) {
		return nil, domain.ErrInvalidID
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	mutate(t)
	t.UpdatedAt = time.Now().UTC()
	return cloneTask(t), nil
}
