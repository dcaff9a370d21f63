package service

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/garageworks/garage-service/internal/core/domain"
	"github.com/garageworks/garage-service/internal/core/ports"
)

// StatsService computes the manager's aggregate views. Nothing is cached.
type StatsService struct {
	tasks     ports.TaskRepository
	customers ports.CustomerRepository
	workers   ports.WorkerRepository
	logger    zerolog.Logger
}

func NewStatsService(
	tasks ports.TaskRepository,
	customers ports.CustomerRepository,
	workers ports.WorkerRepository,
	logger zerolog.Logger,
) *StatsService {
	return &StatsService{tasks: tasks, customers: customers, workers: workers, logger: logger}
}

// WorkerStats partitions each worker's history by status and sums time and price.
func (s *StatsService) WorkerStats(ctx context.Context) ([]ports.WorkerStats, error) {
	workers, err := s.workers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("worker stats: %w", err)
	}

	var ids []string
	for _, w := range workers {
		ids = append(ids, w.HistoryIDs...)
	}
	tasks, err := s.tasks.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("worker stats: populate: %w", err)
	}
	byID := make(map[string]*domain.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}

	out := make([]ports.WorkerStats, 0, len(workers))
	for _, w := range workers {
		history := make([]*domain.Task, 0, len(w.HistoryIDs))
		for _, id := range w.HistoryIDs {
			if t, ok := byID[id]; ok {
				history = append(history, t)
			}
		}
		out = append(out, aggregate(w.UserName, history))
	}
	s.logger.Debug().Int("workers", len(out)).Int("tasks", len(tasks)).Msg("worker stats aggregated")
	return out, nil
}

// CustomerDetails projects every customer to name and license number.
func (s *StatsService) CustomerDetails(ctx context.Context) ([]ports.CustomerDetail, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("customer details: %w", err)
	}
	out := make([]ports.CustomerDetail, 0, len(customers))
	for _, c := range customers {
		out = append(out, ports.CustomerDetail{Name: c.UserName, LicenseNumber: c.LicenseNumber})
	}
	return out, nil
}

func aggregate(workerName string, history []*domain.Task) ports.WorkerStats {
	st := ports.WorkerStats{WorkerName: workerName}
	var ratingSum float64
	for _, t := range history {
		switch t.Status {
		case domain.StatusOnWork:
			st.OnWorkCount++
		case domain.StatusFinished:
			st.FinishedCount++
			ratingSum += t.Rating
		case domain.StatusDeleted:
			st.DeletedCount++
		}
		st.TotalWorkTime += t.WorkTime
		st.TotalTaskPrice += t.Price
	}

	// Divide by 1 when nothing is finished so the average is 0, not NaN.
	divisor := float64(max(st.FinishedCount, 1))
	st.AverageRating = math.Round(ratingSum/divisor*100) / 100
	return st
}
