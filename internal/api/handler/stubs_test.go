package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/garageworks/garage-service/internal/core/domain"
	"github.com/garageworks/garage-service/internal/core/ports"
)

type stubTaskService struct {
	createFn        func(ctx context.Context, in ports.CreateTaskInput) (*ports.CreateTaskResult, error)
	listFn          func(ctx context.Context, licenseNumber, status string) ([]*domain.Task, error)
	customerTasksFn func(ctx context.Context, licenseNumber string) ([]*domain.Task, error)
	workerHistoryFn func(ctx context.Context, workerName string) ([]*domain.Task, error)
	allCustomersFn  func(ctx context.Context) ([]ports.CustomerTasks, error)
	allWorkersFn    func(ctx context.Context) ([]ports.WorkerTasks, error)
	finishFn        func(ctx context.Context, id string) (*domain.Task, error)
	deleteFn        func(ctx context.Context, id string) (*domain.Task, error)
	updateStatusFn  func(ctx context.Context, id, status string) (*domain.Task, error)
	rateFn          func(ctx context.Context, id string, rating float64) (*domain.Task, error)
}

func (s *stubTaskService) CreateTask(ctx context.Context, in ports.CreateTaskInput) (*ports.CreateTaskResult, error) {
	return s.createFn(ctx, in)
}

func (s *stubTaskService) ListByLicense(ctx context.Context, licenseNumber, status string) ([]*domain.Task, error) {
	return s.listFn(ctx, licenseNumber, status)
}

func (s *stubTaskService) CustomerTasks(ctx context.Context, licenseNumber string) ([]*domain.Task, error) {
	return s.customerTasksFn(ctx, licenseNumber)
}

func (s *stubTaskService) WorkerHistory(ctx context.Context, workerName string) ([]*domain.Task, error) {
	return s.workerHistoryFn(ctx, workerName)
}

func (s *stubTaskService) AllCustomerTasks(ctx context.Context) ([]ports.CustomerTasks, error) {
	return s.allCustomersFn(ctx)
}

func (s *stubTaskService) AllWorkerTasks(ctx context.Context) ([]ports.WorkerTasks, error) {
	return s.allWorkersFn(ctx)
}

func (s *stubTaskService) Finish(ctx context.Context, id string) (*domain.Task, error) {
	return s.finishFn(ctx, id)
}

func (s *stubTaskService) Delete(ctx context.Context, id string) (*domain.Task, error) {
	return s.deleteFn(ctx, id)
}

func (s *stubTaskService) UpdateStatus(ctx context.Context, id, status string) (*domain.Task, error) {
	return s.updateStatusFn(ctx, id, status)
}

func (s *stubTaskService) Rate(ctx context.Context, id string, rating float64) (*domain.Task, error) {
	return s.rateFn(ctx, id, rating)
}

type stubAuthService struct {
	signUpCustomerFn func(ctx context.Context, in ports.SignUpCustomerInput) (*domain.Customer, error)
	signUpWorkerFn   func(ctx context.Context, in ports.SignUpWorkerInput) (*domain.Worker, error)
	signInCustomerFn func(ctx context.Context, userName, password string) (*ports.SignInResult, error)
	signInWorkerFn   func(ctx context.Context, userName, password string) (*ports.SignInResult, error)
}

func (s *stubAuthService) SignUpCustomer(ctx context.Context, in ports.SignUpCustomerInput) (*domain.Customer, error) {
	return s.signUpCustomerFn(ctx, in)
}

func (s *stubAuthService) SignUpWorker(ctx context.Context, in ports.SignUpWorkerInput) (*domain.Worker, error) {
	return s.signUpWorkerFn(ctx, in)
}

func (s *stubAuthService) SignInCustomer(ctx context.Context, userName, password string) (*ports.SignInResult, error) {
	return s.signInCustomerFn(ctx, userName, password)
}

func (s *stubAuthService) SignInWorker(ctx context.Context, userName, password string) (*ports.SignInResult, error) {
	return s.signInWorkerFn(ctx, userName, password)
}

type stubStatsService struct {
	workerStatsFn     func(ctx context.Context) ([]ports.WorkerStats, error)
	customerDetailsFn func(ctx context.Context) ([]ports.CustomerDetail, error)
}

func (s *stubStatsService) WorkerStats(ctx context.Context) ([]ports.WorkerStats, error) {
	return s.workerStatsFn(ctx)
}

func (s *stubStatsService) CustomerDetails(ctx context.Context) ([]ports.CustomerDetail, error) {
	return s.customerDetailsFn(ctx)
}

// newContext builds an echo context with the package validator registered.
func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
