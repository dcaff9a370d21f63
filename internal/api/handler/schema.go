package handler

import (
	"time"

	"github.com/garageworks/garage-service/internal/core/domain"
	"github.com/garageworks/garage-service/internal/core/ports"
)

// --- Requests ---

type createTaskRequest struct {
	TaskName         string  `json:"taskName" validate:"required"`
	CarLicenseNumber string  `json:"carLicenseNumber" validate:"required"`
	Price            float64 `json:"price"`
	WorkTime         float64 `json:"workTime"`
	WorkerName       string  `json:"workerName"`
}

type updateStatusRequest struct {
	TaskID string `json:"taskId" validate:"required"`
	Status string `json:"status" validate:"required"`
}

type rateTaskRequest struct {
	Rating *float64 `json:"rating" validate:"required"`
}

type signInRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

type signUpCustomerRequest struct {
	UserName      string `json:"userName" validate:"required"`
	Email         string `json:"email" validate:"required"`
	Password      string `json:"password" validate:"required"`
	LicenseNumber string `json:"licenseNumber" validate:"required"`
}

type signUpWorkerRequest struct {
	UserName string `json:"userName" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Responses ---

type taskResponse struct {
	ID               string    `json:"_id"`
	TaskName         string    `json:"taskName"`
	CarLicenseNumber string    `json:"carLicenseNumber"`
	Status           string    `json:"status"`
	Price            float64   `json:"price"`
	WorkTime         float64   `json:"workTime"`
	WorkerID         string    `json:"workerId,omitempty"`
	WorkerName       string    `json:"workerName"`
	Rating           float64   `json:"rating"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type customerTasksResponse struct {
	ID            string         `json:"_id"`
	UserName      string         `json:"userName"`
	Email         string         `json:"email"`
	LicenseNumber string         `json:"licenseNumber"`
	Tasks         []taskResponse `json:"tasks"`
	TasksHistory  []taskResponse `json:"tasksHistory"`
}

type workerTasksResponse struct {
	ID           string         `json:"_id"`
	UserName     string         `json:"userName"`
	Email        string         `json:"email"`
	TasksHistory []taskResponse `json:"tasksHistory"`
}

type workerStatsResponse struct {
	WorkerName     string  `json:"workerName"`
	OnWorkCount    int     `json:"onWorkCount"`
	FinishedCount  int     `json:"finishedCount"`
	DeletedCount   int     `json:"deletedCount"`
	TotalWorkTime  float64 `json:"totalWorkTime"`
	TotalTaskPrice float64 `json:"totalTaskPrice"`
	AverageRating  float64 `json:"averageRating"`
}

type customerDetailResponse struct {
	Name          string `json:"name"`
	LicenseNumber string `json:"licenseNumber"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type taskMessageResponse struct {
	Message string       `json:"message"`
	Task    taskResponse `json:"task"`
}

type signInResponse struct {
	Message       string `json:"message"`
	LicenseNumber string `json:"licenseNumber,omitempty"`
	WorkerName    string `json:"workerName,omitempty"`
	Token         string `json:"token"`
}

// --- Mappers ---

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:               t.ID,
		TaskName:         t.TaskName,
		CarLicenseNumber: t.CarLicenseNumber,
		Status:           string(t.Status),
		Price:            t.Price,
		WorkTime:         t.WorkTime,
		WorkerID:         t.WorkerID,
		WorkerName:       t.WorkerName,
		Rating:           t.Rating,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

// toTaskResponses never returns nil so empty lists encode as [].
func toTaskResponses(tasks []*domain.Task) []taskResponse {
	out := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	return out
}

func toCustomerTasksResponse(ct ports.CustomerTasks) customerTasksResponse {
	return customerTasksResponse{
		ID:            ct.Customer.ID,
		UserName:      ct.Customer.UserName,
		Email:         ct.Customer.Email,
		LicenseNumber: ct.Customer.LicenseNumber,
		Tasks:         toTaskResponses(ct.Tasks),
		TasksHistory:  toTaskResponses(ct.History),
	}
}

func toWorkerTasksResponse(wt ports.WorkerTasks) workerTasksResponse {
	return workerTasksResponse{
		ID:           wt.Worker.ID,
		UserName:     wt.Worker.UserName,
		Email:        wt.Worker.Email,
		TasksHistory: toTaskResponses(wt.History),
	}
}

func toWorkerStatsResponse(s ports.WorkerStats) workerStatsResponse {
	return workerStatsResponse{
		WorkerName:     s.WorkerName,
		OnWorkCount:    s.OnWorkCount,
		FinishedCount:  s.FinishedCount,
		DeletedCount:   s.DeletedCount,
		TotalWorkTime:  s.TotalWorkTime,
		TotalTaskPrice: s.TotalTaskPrice,
		AverageRating:  s.AverageRating,
	}
}
