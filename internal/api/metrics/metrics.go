// Package metrics defines the custom Prometheus metrics of the garage API.
// HTTP request metrics come from echoprometheus; these cover the domain.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/garageworks/garage-service/internal/core/domain"
)

const namespace = "garage"

// TasksCreatedTotal counts task submissions.
// Label:
//   - result: "created" or "replayed" (idempotency key matched an earlier submission)
var TasksCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_created_total",
		Help:      "Total number of task submissions, by result.",
	},
	[]string{"result"},
)

// TaskStatusChangesTotal counts status writes.
// Label:
//   - status: "On Work", "Finished", "Deleted", or "custom" for free-form statuses
var TaskStatusChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "task_status_changes_total",
		Help:      "Total number of task status changes, by new status.",
	},
	[]string{"status"},
)

// TaskRatings observes submitted ratings.
var TaskRatings = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "task_rating",
		Help:      "Distribution of submitted task ratings.",
		Buckets:   []float64{1, 2, 3, 4, 5},
	},
)

// AuthAttemptsTotal counts sign-in attempts.
// Labels:
//   - role: "customer" or "worker"
//   - result: "success" or "failure"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of sign-in attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// SignUpsTotal counts accounts created, by role.
var SignUpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// ObserveTaskCreated records one CreateTask outcome.
func ObserveTaskCreated(replayed bool) {
	result := "created"
	if replayed {
		result = "replayed"
	}
	TasksCreatedTotal.WithLabelValues(result).Inc()
}

// ObserveStatusChange keeps label cardinality bounded for free-form statuses.
func ObserveStatusChange(status domain.TaskStatus) {
	label := string(status)
	if !status.Known() {
		label = "custom"
	}
	TaskStatusChangesTotal.WithLabelValues(label).Inc()
}

func ObserveSignIn(role string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	AuthAttemptsTotal.WithLabelValues(role, result).Inc()
}
