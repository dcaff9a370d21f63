package domain

import "time"

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	StatusOnWork   TaskStatus = "On Work"
	StatusFinished TaskStatus = "Finished"
	StatusDeleted  TaskStatus = "Deleted"
)

// Known reports whether s is one of the statuses the garage workflow defines.
// Arbitrary status strings can still be stored through the generic update.
func (s TaskStatus) Known() bool {
	switch s {
	case StatusOnWork, StatusFinished, StatusDeleted:
		return true
	}
	return false
}

// Task is a unit of garage work on a single vehicle.
type Task struct {
	ID               string
	CarLicenseNumber string
	TaskName         string
	Status           TaskStatus
	Price            float64
	WorkTime         float64
	// WorkerID references the assigned Worker; empty when no worker matched at intake.
	WorkerID string
	// WorkerName is resolved from WorkerID at read time and never persisted.
	WorkerName     string
	Rating         float64
	IdempotencyKey string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
