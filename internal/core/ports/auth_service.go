package ports

import (
	"context"

	"github.com/garageworks/garage-service/internal/core/domain"
)

type SignUpCustomerInput struct {
	UserName      string
	Email         string
	Password      string
	LicenseNumber string
}

type SignUpWorkerInput struct {
	UserName string
	Email    string
	Password string
}

// SignInResult identifies the signed-in principal. LicenseNumber is set for
// customers, WorkerName for workers.
type SignInResult struct {
	Token         string
	LicenseNumber string
	WorkerName    string
}

type AuthService interface {
	SignUpCustomer(ctx context.Context, in SignUpCustomerInput) (*domain.Customer, error)
	SignUpWorker(ctx context.Context, in SignUpWorkerInput) (*domain.Worker, error)
	SignInCustomer(ctx context.Context, userName, password string) (*SignInResult, error)
	SignInWorker(ctx context.Context, userName, password string) (*SignInResult, error)
}
