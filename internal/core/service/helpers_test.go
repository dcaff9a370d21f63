package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/garageworks/garage-service/internal/core/domain"
	"github.com/garageworks/garage-service/internal/infrastructure/db/memory"
)

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

type fixture struct {
	store *memory.Store
	tasks *TaskService
	auth  *AuthService
	stats *StatsService
}

func newFixture(t *testing.T, opts ...TaskServiceOption) *fixture {
	t.Helper()
	store := memory.NewStore()
	return &fixture{
		store: store,
		tasks: NewTaskService(store.Tasks(), store.Customers(), store.Workers(), store.Transactor(), discardLogger, opts...),
		auth:  NewAuthService(store.Customers(), store.Workers(), NewBcryptHasher(bcrypt.MinCost), "secret", 0, discardLogger),
		stats: NewStatsService(store.Tasks(), store.Customers(), store.Workers(), discardLogger),
	}
}

func (f *fixture) seedCustomer(t *testing.T, userName, license string) *domain.Customer {
	t.Helper()
	c := &domain.Customer{UserName: userName, Email: userName + "@example.com", LicenseNumber: license}
	if err := f.store.Customers().Create(context.Background(), c); err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return c
}

func (f *fixture) seedWorker(t *testing.T, userName string) *domain.Worker {
	t.Helper()
	w := &domain.Worker{UserName: userName, Email: userName + "@example.com"}
	if err := f.store.Workers().Create(context.Background(), w); err != nil {
		t.Fatalf("seed worker: %v", err)
	}
	return w
}

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

// failingCustomers makes every AddTask fail.
type failingCustomers struct {
	*memory.CustomerRepository
	err   error
	calls int
}

func (f *failingCustomers) AddTask(context.Context, string, string) (bool, error) {
	f.calls++
	return false, f.err
}

type atomicTransactor struct{}

func (atomicTransactor) WithinTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func (atomicTransactor) Atomic() bool { return true }

type stubIdempotency struct {
	bound     map[string]string
	lookupErr error
}

func newStubIdempotency() *stubIdempotency {
	return &stubIdempotency{bound: make(map[string]string)}
}

func (s *stubIdempotency) Lookup(_ context.Context, key string) (string, bool, error) {
	if s.lookupErr != nil {
		return "", false, s.lookupErr
	}
	id, ok := s.bound[key]
	return id, ok, nil
}

func (s *stubIdempotency) Bind(_ context.Context, key, taskID string) error {
	s.bound[key] = taskID
	return nil
}
