package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/garageworks/garage-service/internal/core/domain"
	"github.com/garageworks/garage-service/internal/core/ports"
)

// AuthService implements sign-up and sign-in for customers and workers.
type AuthService struct {
	customers ports.CustomerRepository
	workers   ports.WorkerRepository
	hasher    ports.PasswordHasher
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(
	customers ports.CustomerRepository,
	workers ports.WorkerRepository,
	hasher ports.PasswordHasher,
	jwtSecret string,
	tokenTTL time.Duration,
	logger zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		customers: customers,
		workers:   workers,
		hasher:    hasher,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

func (s *AuthService) SignUpCustomer(ctx context.Context, in ports.SignUpCustomerInput) (*domain.Customer, error) {
	if blank(in.UserName, in.Email, in.Password, in.LicenseNumber) {
		return nil, fmt.Errorf("sign up customer: %w: userName, email, password and licenseNumber are required", domain.ErrValidation)
	}

	_, err := s.customers.FindByUserName(ctx, in.UserName)
	switch {
	case err == nil:
		return nil, domain.ErrUserExists
	case !errors.Is(err, domain.ErrCustomerNotFound):
		return nil, fmt.Errorf("sign up customer: %w", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("sign up customer: hash password: %w", err)
	}

	customer := &domain.Customer{
		UserName:      in.UserName,
		Email:         in.Email,
		PasswordHash:  hash,
		LicenseNumber: in.LicenseNumber,
		TaskIDs:       []string{},
		HistoryIDs:    []string{},
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("sign up customer: %w", err)
	}

	s.logger.Info().Str("user_name", customer.UserName).Str("license_number", customer.LicenseNumber).Msg("customer signed up")
	return customer, nil
}

func (s *AuthService) SignUpWorker(ctx context.Context, in ports.SignUpWorkerInput) (*domain.Worker, error) {
	if blank(in.UserName, in.Email, in.Password) {
		return nil, fmt.Errorf("sign up worker: %w: userName, email and password are required", domain.ErrValidation)
	}

	_, err := s.workers.FindByUserName(ctx, in.UserName)
	switch {
	case err == nil:
		return nil, domain.ErrUserExists
	case !errors.Is(err, domain.ErrWorkerNotFound):
		return nil, fmt.Errorf("sign up worker: %w", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("sign up worker: hash password: %w", err)
	}

	worker := &domain.Worker{
		UserName:     in.UserName,
		Email:        in.Email,
		PasswordHash: hash,
		HistoryIDs:   []string{},
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.workers.Create(ctx, worker); err != nil {
		return nil, fmt.Errorf("sign up worker: %w", err)
	}

	s.logger.Info().Str("user_name", worker.UserName).Msg("worker signed up")
	return worker, nil
}

// SignInCustomer verifies credentials and returns the customer's license number
// with a signed token. Unknown users and bad passwords are indistinguishable.
func (s *AuthService) SignInCustomer(ctx context.Context, userName, password string) (*ports.SignInResult, error) {
	if blank(userName, password) {
		return nil, domain.ErrInvalidCredentials
	}

	customer, err := s.customers.FindByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("sign in customer: %w", err)
	}
	if err := s.hasher.Verify(customer.PasswordHash, password); err != nil {
		return nil, err
	}

	token, err := s.generateToken(jwt.MapClaims{
		"sub":           customer.ID,
		"username":      customer.UserName,
		"role":          domain.RoleCustomer,
		"licenseNumber": customer.LicenseNumber,
	})
	if err != nil {
		return nil, fmt.Errorf("sign in customer: %w", err)
	}
	return &ports.SignInResult{Token: token, LicenseNumber: customer.LicenseNumber}, nil
}

func (s *AuthService) SignInWorker(ctx context.Context, userName, password string) (*ports.SignInResult, error) {
	if blank(userName, password) {
		return nil, domain.ErrInvalidCredentials
	}

	worker, err := s.workers.FindByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, domain.ErrWorkerNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("sign in worker: %w", err)
	}
	if err := s.hasher.Verify(worker.PasswordHash, password); err != nil {
		return nil, err
	}

	token, err := s.generateToken(jwt.MapClaims{
		"sub":      worker.ID,
		"username": worker.UserName,
		"role":     domain.RoleWorker,
	})
	if err != nil {
		return nil, fmt.Errorf("sign in worker: %w", err)
	}
	return &ports.SignInResult{Token: token, WorkerName: worker.UserName}, nil
}

func (s *AuthService) generateToken(claims jwt.MapClaims) (string, error) {
	claims["exp"] = time.Now().Add(s.tokenTTL).Unix()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
