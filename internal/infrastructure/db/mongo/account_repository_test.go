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
)

func TestCustomerRepository_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewCustomerRepository(mt.DB, time.Second)

		c := &domain.Customer{UserName: "ann", Email: "ann@example.com", LicenseNumber: "AB-123"}
		if err := repo.Create(context.Background(), c); err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
		if c.ID == "" {
			mt.Error("expected id to be set")
		}
	})

	mt.Run("duplicate email", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: garage.customers index: email_1",
		}))
		repo := NewCustomerRepository(mt.DB, time.Second)

		if err := repo.Create(context.Background(), &domain.Customer{UserName: "bob"}); !errors.Is(err, domain.ErrAccountExists) {
			mt.Fatalf("expected ErrAccountExists, got %v", err)
		}
	})

	mt.Run("duplicate user name", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: garage.customers index: userName_1",
		}))
		repo := NewCustomerRepository(mt.DB, time.Second)

		if err := repo.Create(context.Background(), &domain.Customer{UserName: "ann"}); !errors.Is(err, domain.ErrUserExists) {
			mt.Fatalf("expected ErrUserExists, got %v", err)
		}
	})
}

func TestCustomerRepository_FindByLicenseNumber(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ns := func(mt *mtest.T) string { return mt.DB.Name() + "." + collectionCustomers }

	mt.Run("found", func(mt *mtest.T) {
		task := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "userName", Value: "ann"},
			{Key: "licenseNumber", Value: "AB-123"},
			{Key: "tasks", Value: bson.A{task}},
		}))
		repo := NewCustomerRepository(mt.DB, time.Second)

		c, err := repo.FindByLicenseNumber(context.Background(), "AB-123")
		if err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
		if len(c.TaskIDs) != 1 || c.TaskIDs[0] != task.Hex() {
			mt.Errorf("unexpected task ids: %v", c.TaskIDs)
		}
		if len(c.HistoryIDs) != 0 {
			mt.Errorf("expected empty history, got %v", c.HistoryIDs)
		}
	})

	mt.Run("not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch))
		repo := NewCustomerRepository(mt.DB, time.Second)

		if _, err := repo.FindByLicenseNumber(context.Background(), "NOPE"); !errors.Is(err, domain.ErrCustomerNotFound) {
			mt.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})
}

func TestCustomerRepository_AddTask(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("matched", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}, {Key: "nModified", Value: 1}})
		repo := NewCustomerRepository(mt.DB, time.Second)

		matched, err := repo.AddTask(context.Background(), "AB-123", primitive.NewObjectID().Hex())
		if err != nil || !matched {
			mt.Fatalf("expected match, got %v, %v", matched, err)
		}
	})

	mt.Run("no customer", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}, {Key: "nModified", Value: 0}})
		repo := NewCustomerRepository(mt.DB, time.Second)

		matched, err := repo.AddTask(context.Background(), "NOPE", primitive.NewObjectID().Hex())
		if err != nil || matched {
			mt.Fatalf("expected silent no-op, got %v, %v", matched, err)
		}
	})

	mt.Run("store error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Name: "BadValue", Message: "bad value"}))
		repo := NewCustomerRepository(mt.DB, time.Second)

		if _, err := repo.AddTask(context.Background(), "AB-123", primitive.NewObjectID().Hex()); err == nil {
			mt.Fatal("expected error")
		}
	})
}

func TestWorkerRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ns := func(mt *mtest.T) string { return mt.DB.Name() + "." + collectionWorkers }

	mt.Run("find by user name", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "userName", Value: "w1"},
			{Key: "passwordHash", Value: "$2a$10$hash"},
		}))
		repo := NewWorkerRepository(mt.DB, time.Second)

		w, err := repo.FindByUserName(context.Background(), "w1")
		if err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
		if w.UserName != "w1" || w.PasswordHash != "$2a$10$hash" {
			mt.Errorf("unexpected worker: %+v", w)
		}
	})

	mt.Run("unknown worker", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch))
		repo := NewWorkerRepository(mt.DB, time.Second)

		if _, err := repo.FindByUserName(context.Background(), "ghost"); !errors.Is(err, domain.ErrWorkerNotFound) {
			mt.Fatalf("expected ErrWorkerNotFound, got %v", err)
		}
	})

	mt.Run("remove task", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}, {Key: "nModified", Value: 1}})
		repo := NewWorkerRepository(mt.DB, time.Second)

		if err := repo.RemoveTask(context.Background(), primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex()); err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestTransactor_DisabledRunsDirectly(t *testing.T) {
	tx := NewTransactor(nil, false)

	called := false
	err := tx.WithinTransaction(context.Background(), func(context.Context) error {
		called = true
		return nil
	})
	if err != nil || !called {
		t.Fatalf("expected fn to run, called=%v err=%v", called, err)
	}
	if tx.Atomic() {
		t.Error("disabled transactor must not report atomic")
	}
}
