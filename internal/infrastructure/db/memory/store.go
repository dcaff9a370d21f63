// Package memory implements the repository ports on process-local maps.
// It backs STORE_DRIVER=memory for local development and the service tests.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/garageworks/garage-service/internal/core/domain"
)

// Store holds every collection behind one lock.
type Store struct {
	mu        sync.RWMutex
	tasks     map[string]*domain.Task
	taskOrder []string
	customers []*domain.Customer
	workers   []*domain.Worker
}

func NewStore() *Store {
	return &Store{tasks: make(map[string]*domain.Task)}
}

func (s *Store) Tasks() *TaskRepository         { return &TaskRepository{s: s} }
func (s *Store) Customers() *CustomerRepository { return &CustomerRepository{s: s} }
func (s *Store) Workers() *WorkerRepository     { return &WorkerRepository{s: s} }
func (s *Store) Transactor() Transactor         { return Transactor{} }

// Transactor runs units of work directly; the memory store has no rollback.
type Transactor struct{}

func (Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (Transactor) Atomic() bool { return false }

func cloneTask(t *domain.Task) *domain.Task {
	c := *t
	return &c
}

func cloneCustomer(c *domain.Customer) *domain.Customer {
	out := *c
	out.TaskIDs = slices.Clone(c.TaskIDs)
	out.HistoryIDs = slices.Clone(c.HistoryIDs)
	return &out
}

func cloneWorker(w *domain.Worker) *domain.Worker {
	out := *w
	out.HistoryIDs = slices.Clone(w.HistoryIDs)
	return &out
}

func removeID(ids []string, id string) []string {
	return slices.DeleteFunc(ids, func(v string) bool { return v == id })
}
