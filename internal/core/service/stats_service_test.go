package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/garageworks/garage-service/internal/core/domain"
)

func TestAggregate_NoFinishedTasksAveragesZero(t *testing.T) {
	st := aggregate("w1", []*domain.Task{
		{Status: domain.StatusOnWork, Rating: 5, Price: 10, WorkTime: 1},
		{Status: domain.StatusDeleted, Rating: 3, Price: 20, WorkTime: 2},
	})

	if st.AverageRating != 0 {
		t.Errorf("expected 0, got %v", st.AverageRating)
	}
	if st.OnWorkCount != 1 || st.DeletedCount != 1 || st.FinishedCount != 0 {
		t.Errorf("unexpected counts: %+v", st)
	}
	if st.TotalTaskPrice != 30 || st.TotalWorkTime != 3 {
		t.Errorf("sums must cover the whole history: %+v", st)
	}
}

func TestAggregate_AverageOverFinishedOnly(t *testing.T) {
	st := aggregate("w1", []*domain.Task{
		{Status: domain.StatusFinished, Rating: 4},
		{Status: domain.StatusFinished, Rating: 5},
		{Status: domain.StatusFinished, Rating: 5},
		{Status: domain.StatusOnWork, Rating: 1},
		{Status: "Custom"},
	})

	if st.FinishedCount != 3 {
		t.Fatalf("expected 3 finished, got %d", st.FinishedCount)
	}
	if st.AverageRating != 4.67 {
		t.Errorf("expected 4.67, got %v", st.AverageRating)
	}
}

func TestStatsService_WorkerStats(t *testing.T) {
	f := newFixture(t)
	f.seedCustomer(t, "ann", "AB-123")
	f.seedWorker(t, "w1")
	f.seedWorker(t, "idle")

	res, _ := f.tasks.CreateTask(context.Background(), taskInput())
	_, _ = f.tasks.Finish(context.Background(), res.Task.ID)

	stats, err := f.stats.WorkerStats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected an entry per worker, got %d", len(stats))
	}

	w1 := stats[0]
	if w1.WorkerName != "w1" || w1.FinishedCount != 1 || w1.TotalTaskPrice != 50 || w1.TotalWorkTime != 2 {
		t.Errorf("unexpected w1 stats: %+v", w1)
	}
	if stats[1].AverageRating != 0 || stats[1].FinishedCount != 0 {
		t.Errorf("idle worker must be all zero: %+v", stats[1])
	}
}

func TestStatsService_CustomerDetails(t *testing.T) {
	f := newFixture(t)
	f.seedCustomer(t, "ann", "AB-123")
	f.seedCustomer(t, "bob", "ZZ-999")

	details, err := f.stats.CustomerDetails(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(details) != 2 || details[0].Name != "ann" || details[1].LicenseNumber != "ZZ-999" {
		t.Errorf("unexpected details: %+v", details)
	}
}

func TestStatsService_WorkerStats_LogsAggregation(t *testing.T) {
	f := newFixture(t)
	f.seedWorker(t, "w1")

	var buf bytes.Buffer
	stats := NewStatsService(f.store.Tasks(), f.store.Customers(), f.store.Workers(), zerolog.New(&buf).Level(zerolog.DebugLevel))
	if _, err := stats.WorkerStats(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), `"workers":1`) {
		t.Errorf("expected an aggregation log line, got %q", buf.String())
	}
}
