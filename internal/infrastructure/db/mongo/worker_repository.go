package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/garageworks/garage-service/internal/core/domain"
)

type WorkerRepository struct {
	col     *mongo.Collection
	timeout time.Duration
}

func NewWorkerRepository(db *mongo.Database, timeout time.Duration) *WorkerRepository {
	return &WorkerRepository{col: db.Collection(collectionWorkers), timeout: timeout}
}

func (r *WorkerRepository) Create(ctx context.Context, w *domain.Worker) error {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	doc := workerDoc{
		ID:           primitive.NewObjectID(),
		UserName:     w.UserName,
		Email:        w.Email,
		PasswordHash: w.PasswordHash,
		TasksHistory: objectIDs(w.HistoryIDs),
		CreatedAt:    w.CreatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return duplicateAccount(err)
		}
		return fmt.Errorf("insert worker: %w", err)
	}
	w.ID = doc.ID.Hex()
	return nil
}

func (r *WorkerRepository) FindByUserName(ctx context.Context, userName string) (*domain.Worker, error) {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	var doc workerDoc
	if err := r.col.FindOne(ctx, bson.M{"userName": userName}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrWorkerNotFound
		}
		return nil, fmt.Errorf("find worker: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *WorkerRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Worker, error) {
	oids := objectIDs(ids)
	if len(oids) == 0 {
		return []*domain.Worker{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": oids}})
}

func (r *WorkerRepository) List(ctx context.Context) ([]*domain.Worker, error) {
	return r.find(ctx, bson.M{})
}

func (r *WorkerRepository) AddTask(ctx context.Context, workerID, taskID string) (bool, error) {
	return r.updateHistory(ctx, workerID, taskID, "$addToSet")
}

func (r *WorkerRepository) RemoveTask(ctx context.Context, workerID, taskID string) error {
	_, err := r.updateHistory(ctx, workerID, taskID, "$pull")
	return err
}

func (r *WorkerRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, uniqueIndexes("userName", "email"))
	return err
}

func (r *WorkerRepository) updateHistory(ctx context.Context, workerID, taskID, op string) (bool, error) {
	wid, err := primitive.ObjectIDFromHex(workerID)
	if err != nil {
		return false, domain.ErrWorkerNotFound
	}
	tid, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		return false, domain.ErrInvalidID
	}
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": wid}, bson.M{op: bson.M{"tasksHistory": tid}})
	if err != nil {
		return false, fmt.Errorf("update worker history: %w", err)
	}
	return res.MatchedCount > 0, nil
}

func (r *WorkerRepository) find(ctx context.Context, filter bson.M) ([]*domain.Worker, error) {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find workers: %w", err)
	}
	defer cur.Close(ctx)

	var docs []workerDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode workers: %w", err)
	}
	out := make([]*domain.Worker, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}
