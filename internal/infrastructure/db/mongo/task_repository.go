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
	"github.com/garageworks/garage-service/internal/core/ports"
)

type TaskRepository struct {
	col     *mongo.Collection
	timeout time.Duration
}

func NewTaskRepository(db *mongo.Database, timeout time.Duration) *TaskRepository {
	return &TaskRepository{col: db.Collection(collectionTasks), timeout: timeout}
}

// Create inserts t and sets t.ID. A reused idempotency key yields domain.ErrDuplicateTask.
func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	doc := newTaskDoc(t)
	doc.ID = primitive.NewObjectID()
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateTask
		}
		return fmt.Errorf("insert task: %w", err)
	}
	t.ID = doc.ID.Hex()
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *TaskRepository) FindByIdempotencyKey(ctx context.Context, key string) (*domain.Task, error) {
	if key == "" {
		return nil, domain.ErrTaskNotFound
	}
	return r.findOne(ctx, bson.M{"idempotencyKey": key})
}

// FindByIDs loads tasks with one $in query and returns them in the order of ids.
// Ids with no matching document are skipped.
func (r *TaskRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Task, error) {
	oids := objectIDs(ids)
	if len(oids) == 0 {
		return []*domain.Task{}, nil
	}

	docs, err := r.find(ctx, bson.M{"_id": bson.M{"$in": oids}}, nil)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*domain.Task, len(docs))
	for _, t := range docs {
		byID[t.ID] = t
	}

	out := make([]*domain.Task, 0, len(ids))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

// List returns tasks for one car in insertion order, optionally narrowed to one status.
func (r *TaskRepository) List(ctx context.Context, f ports.TaskFilter) ([]*domain.Task, error) {
	filter := bson.M{"carLicenseNumber": f.CarLicenseNumber}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	return r.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
}

func (r *TaskRepository) SetStatus(ctx context.Context, id string, status domain.TaskStatus) (*domain.Task, error) {
	return r.update(ctx, id, bson.M{"status": string(status)})
}

func (r *TaskRepository) SetRating(ctx context.Context, id string, rating float64) (*domain.Task, error) {
	return r.update(ctx, id, bson.M{"rating": rating})
}

// Delete removes the document. Only intake compensation uses it; user deletes are soft.
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// EnsureIndexes creates the lookup index on car license number and the
// sparse unique index that backs idempotent intake.
func (r *TaskRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "carLicenseNumber", Value: 1}}},
		{
			Keys:    bson.D{{Key: "idempotencyKey", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *TaskRepository) update(ctx context.Context, id string, set bson.M) (*domain.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	set["updatedAt"] = time.Now().UTC()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc taskDoc
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("update task: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *TaskRepository) findOne(ctx context.Context, filter bson.M) (*domain.Task, error) {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	var doc taskDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *TaskRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.Task, error) {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	var findOpts []*options.FindOptions
	if opts != nil {
		findOpts = append(findOpts, opts)
	}
	cur, err := r.col.Find(ctx, filter, findOpts...)
	if err != nil {
		return nil, fmt.Errorf("find tasks: %w", err)
	}
	defer cur.Close(ctx)

	var docs []taskDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	out := make([]*domain.Task, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}
