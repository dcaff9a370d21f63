package domain

import "errors"

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrWorkerNotFound   = errors.New("worker not found")
	ErrDuplicateTask    = errors.New("task already exists")

	ErrInvalidID          = errors.New("invalid task id format")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("username already exists")
	ErrAccountExists      = errors.New("account already exists")
	ErrForbidden          = errors.New("access forbidden")
)
