package memory

import (
	"context"
	"slices"

	"github.com/garageworks/garage-service/internal/core/domain"
)

type CustomerRepository struct {
	s *Store
}

func (r *CustomerRepository) Create(_ context.Context, c *domain.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.customers {
		if existing.UserName == c.UserName {
			return domain.ErrUserExists
		}
		if existing.Email == c.Email || existing.LicenseNumber == c.LicenseNumber {
			return domain.ErrAccountExists
		}
	}
	c.ID = domain.NewID()
	r.s.customers = append(r.s.customers, cloneCustomer(c))
	return nil
}

func (r *CustomerRepository) FindByUserName(_ context.Context, userName string) (*domain.Customer, error) {
	return r.find(func(c *domain.Customer) bool { return c.UserName == userName })
}

func (r *CustomerRepository) FindByLicenseNumber(_ context.Context, licenseNumber string) (*domain.Customer, error) {
	return r.find(func(c *domain.Customer) bool { return c.LicenseNumber == licenseNumber })
}

func (r *CustomerRepository) List(_ context.Context) ([]*domain.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*domain.Customer, 0, len(r.s.customers))
	for _, c := range r.s.customers {
		out = append(out, cloneCustomer(c))
	}
	return out, nil
}

func (r *CustomerRepository) AddTask(_ context.Context, licenseNumber, taskID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, c := range r.s.customers {
		if c.LicenseNumber != licenseNumber {
			continue
		}
		if !slices.Contains(c.TaskIDs, taskID) {
			c.TaskIDs = append(c.TaskIDs, taskID)
		}
		return true, nil
	}
	return false, nil
}

func (r *CustomerRepository) RemoveTask(_ context.Context, licenseNumber, taskID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, c := range r.s.customers {
		if c.LicenseNumber == licenseNumber {
			c.TaskIDs = removeID(c.TaskIDs, taskID)
		}
	}
	return nil
}

func (r *CustomerRepository) find(match func(*domain.Customer) bool) (*domain.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, c := range r.s.customers {
		if match(c) {
			return cloneCustomer(c), nil
		}
	}
	return nil, domain.ErrCustomerNotFound
}

type WorkerRepository struct {
	s *Store
}

func (r *WorkerRepository) Create(_ context.Context, w *domain.Worker) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.workers {
		if existing.UserName == w.UserName {
			return domain.ErrUserExists
		}
		if existing.Email == w.Email {
			return domain.ErrAccountExists
		}
	}
	w.ID = domain.NewID()
	r.s.workers = append(r.s.workers, cloneWorker(w))
	return nil
}

func (r *WorkerRepository) FindByUserName(_ context.Context, userName string) (*domain.Worker, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, w := range r.s.workers {
		if w.UserName == userName {
			return cloneWorker(w), nil
		}
	}
	return nil, domain.ErrWorkerNotFound
}

func (r *WorkerRepository) FindByIDs(_ context.Context, ids []string) ([]*domain.Worker, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []*domain.Worker
	for _, w := range r.s.workers {
		if slices.Contains(ids, w.ID) {
			out = append(out, cloneWorker(w))
		}
	}
	return out, nil
}

func (r *WorkerRepository) List(_ context.Context) ([]*domain.Worker, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*domain.Worker, 0, len(r.s.workers))
	for _, w := range r.s.workers {
		out = append(out, cloneWorker(w))
	}
	return out, nil
}

func (r *WorkerRepository) AddTask(_ context.Context, workerID, taskID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, w := range r.s.workers {
		if w.ID != workerID {
			continue
		}
		if !slices.Contains(w.HistoryIDs, taskID) {
			w.HistoryIDs = append(w.HistoryIDs, taskID)
		}
		return true, nil
	}
	return false, nil
}

func (r *WorkerRepository) RemoveTask(_ context.Context, workerID, taskID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, w := range r.s.workers {
		if w.ID == workerID {
			w.HistoryIDs = removeID(w.HistoryIDs, taskID)
		}
	}
	return nil
}
