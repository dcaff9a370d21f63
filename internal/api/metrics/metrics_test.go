package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/garageworks/garage-service/internal/core/domain"
)

func value(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("read counter: %v", err)
	}
	return m.GetCounter().GetValue()
}

func TestObserveStatusChange_BucketsCustomStatuses(t *testing.T) {
	before := value(t, TaskStatusChangesTotal.WithLabelValues("custom"))
	finished := value(t, TaskStatusChangesTotal.WithLabelValues("Finished"))

	ObserveStatusChange("Waiting for parts")
	ObserveStatusChange(domain.StatusFinished)

	if got := value(t, TaskStatusChangesTotal.WithLabelValues("custom")); got != before+1 {
		t.Errorf("custom: want %v, got %v", before+1, got)
	}
	if got := value(t, TaskStatusChangesTotal.WithLabelValues("Finished")); got != finished+1 {
		t.Errorf("Finished: want %v, got %v", finished+1, got)
	}
}

func TestObserveTaskCreatedAndSignIn(t *testing.T) {
	replayed := value(t, TasksCreatedTotal.WithLabelValues("replayed"))
	ObserveTaskCreated(true)
	if got := value(t, TasksCreatedTotal.WithLabelValues("replayed")); got != replayed+1 {
		t.Errorf("replayed: want %v, got %v", replayed+1, got)
	}

	failures := value(t, AuthAttemptsTotal.WithLabelValues(domain.RoleWorker, "failure"))
	ObserveSignIn(domain.RoleWorker, errors.New("nope"))
	if got := value(t, AuthAttemptsTotal.WithLabelValues(domain.RoleWorker, "failure")); got != failures+1 {
		t.Errorf("failure: want %v, got %v", failures+1, got)
	}
}
