package service

import (
	"context"
	"fmt"

	"github.com/garageworks/garage-service/internal/core/domain"
)

// attachWorkerNames fills Task.WorkerName from the worker reference with a single lookup.
func (s *TaskService) attachWorkerNames(ctx context.Context, tasks []*domain.Task) ([]*domain.Task, error) {
	seen := make(map[string]struct{})
	var ids []string
	for _, t := range tasks {
		if t.WorkerID == "" {
			continue
		}
		if _, ok := seen[t.WorkerID]; !ok {
			seen[t.WorkerID] = struct{}{}
			ids = append(ids, t.WorkerID)
		}
	}
	if len(ids) == 0 {
		return tasks, nil
	}

	workers, err := s.workers.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve worker names: %w", err)
	}
	names := make(map[string]string, len(workers))
	for _, w := range workers {
		names[w.ID] = w.UserName
	}
	for _, t := range tasks {
		t.WorkerName = names[t.WorkerID]
	}
	return tasks, nil
}

// withWorkerName resolves the name of a single task. Lookup failures leave it blank.
func (s *TaskService) withWorkerName(ctx context.Context, t *domain.Task) *domain.Task {
	if _, err := s.attachWorkerNames(ctx, []*domain.Task{t}); err != nil {
		s.logger.Warn().Err(err).Str("task_id", t.ID).Msg("could not resolve worker name")
	}
	return t
}
