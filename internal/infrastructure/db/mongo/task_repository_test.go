package mongo

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/garageworks/garage-service/internal/core/domain"
	"github.com/garageworks/garage-service/internal/core/ports"
)

func taskNS(mt *mtest.T) string { return mt.DB.Name() + "." + collectionTasks }

func TestTaskRepository_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("assigns id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewTaskRepository(mt.DB, time.Second)

		task := &domain.Task{CarLicenseNumber: "AB-123", TaskName: "oil", Status: domain.StatusOnWork}
		if err := repo.Create(context.Background(), task); err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
		if !domain.IsValidID(task.ID) {
			mt.Errorf("expected an object id, got %q", task.ID)
		}
	})

	mt.Run("duplicate idempotency key", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: garage.tasks index: idempotencyKey_1",
		}))
		repo := NewTaskRepository(mt.DB, time.Second)

		err := repo.Create(context.Background(), &domain.Task{IdempotencyKey: "k"})
		if !errors.Is(err, domain.ErrDuplicateTask) {
			mt.Fatalf("expected ErrDuplicateTask, got %v", err)
		}
	})
}

func TestTaskRepository_FindByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		worker := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, taskNS(mt), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "carLicenseNumber", Value: "AB-123"},
			{Key: "taskName", Value: "brake pads"},
			{Key: "status", Value: "On Work"},
			{Key: "price", Value: 50.0},
			{Key: "worker", Value: worker},
		}))
		repo := NewTaskRepository(mt.DB, time.Second)

		task, err := repo.FindByID(context.Background(), id.Hex())
		if err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
		if task.ID != id.Hex() || task.WorkerID != worker.Hex() || task.Price != 50 {
			mt.Errorf("unexpected task: %+v", task)
		}
	})

	mt.Run("not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, taskNS(mt), mtest.FirstBatch))
		repo := NewTaskRepository(mt.DB, time.Second)

		if _, err := repo.FindByID(context.Background(), primitive.NewObjectID().Hex()); !errors.Is(err, domain.ErrTaskNotFound) {
			mt.Fatalf("expected ErrTaskNotFound, got %v", err)
		}
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		repo := NewTaskRepository(mt.DB, time.Second)

		if _, err := repo.FindByID(context.Background(), "xyz"); !errors.Is(err, domain.ErrInvalidID) {
			mt.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})
}

func TestTaskRepository_FindByIDs_PreservesOrder(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("reorders and skips dangling", func(mt *mtest.T) {
		a, b, missing := primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, taskNS(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: b}, {Key: "taskName", Value: "b"}},
			bson.D{{Key: "_id", Value: a}, {Key: "taskName", Value: "a"}},
		))
		repo := NewTaskRepository(mt.DB, time.Second)

		tasks, err := repo.FindByIDs(context.Background(), []string{a.Hex(), missing.Hex(), b.Hex()})
		if err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
		if len(tasks) != 2 || tasks[0].TaskName != "a" || tasks[1].TaskName != "b" {
			mt.Errorf("unexpected order: %+v", tasks)
		}
	})

	mt.Run("empty input skips the query", func(mt *mtest.T) {
		repo := NewTaskRepository(mt.DB, time.Second)

		tasks, err := repo.FindByIDs(context.Background(), nil)
		if err != nil || len(tasks) != 0 {
			mt.Fatalf("expected empty result, got %v, %v", tasks, err)
		}
	})
}

func TestTaskRepository_List(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes all", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, taskNS(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "status", Value: "Finished"}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "status", Value: "Finished"}},
		))
		repo := NewTaskRepository(mt.DB, time.Second)

		tasks, err := repo.List(context.Background(), ports.TaskFilter{CarLicenseNumber: "AB-123", Status: "Finished"})
		if err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
		if len(tasks) != 2 || tasks[0].Status != domain.StatusFinished {
			mt.Errorf("unexpected tasks: %+v", tasks)
		}
	})
}

func TestTaskRepository_SetStatus(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns updated document", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: bson.D{{Key: "_id", Value: id}, {Key: "status", Value: "Finished"}}},
		})
		repo := NewTaskRepository(mt.DB, time.Second)

		task, err := repo.SetStatus(context.Background(), id.Hex(), domain.StatusFinished)
		if err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
		if task.Status != domain.StatusFinished {
			mt.Errorf("expected Finished, got %q", task.Status)
		}
	})

	mt.Run("unknown id", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: nil}})
		repo := NewTaskRepository(mt.DB, time.Second)

		if _, err := repo.SetStatus(context.Background(), primitive.NewObjectID().Hex(), domain.StatusDeleted); !errors.Is(err, domain.ErrTaskNotFound) {
			mt.Fatalf("expected ErrTaskNotFound, got %v", err)
		}
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		repo := NewTaskRepository(mt.DB, time.Second)

		if _, err := repo.SetRating(context.Background(), "12", 5); !errors.Is(err, domain.ErrInvalidID) {
			mt.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})
}

func TestTaskRepository_Delete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("deleted", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}})
		repo := NewTaskRepository(mt.DB, time.Second)

		if err := repo.Delete(context.Background(), primitive.NewObjectID().Hex()); err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
	})

	mt.Run("nothing deleted", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}})
		repo := NewTaskRepository(mt.DB, time.Second)

		if err := repo.Delete(context.Background(), primitive.NewObjectID().Hex()); !errors.Is(err, domain.ErrTaskNotFound) {
			mt.Fatalf("expected ErrTaskNotFound, got %v", err)
		}
	})
}
