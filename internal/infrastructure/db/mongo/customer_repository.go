package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/garageworks/garage-service/internal/core/domain"
)

type CustomerRepository struct {
	col     *mongo.Collection
	timeout time.Duration
}

func NewCustomerRepository(db *mongo.Database, timeout time.Duration) *CustomerRepository {
	return &CustomerRepository{col: db.Collection(collectionCustomers), timeout: timeout}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	doc := customerDoc{
		ID:            primitive.NewObjectID(),
		UserName:      c.UserName,
		Email:         c.Email,
		PasswordHash:  c.PasswordHash,
		LicenseNumber: c.LicenseNumber,
		Tasks:         objectIDs(c.TaskIDs),
		TasksHistory:  objectIDs(c.HistoryIDs),
		CreatedAt:     c.CreatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return duplicateAccount(err)
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	c.ID = doc.ID.Hex()
	return nil
}

func (r *CustomerRepository) FindByUserName(ctx context.Context, userName string) (*domain.Customer, error) {
	return r.findOne(ctx, bson.M{"userName": userName})
}

func (r *CustomerRepository) FindByLicenseNumber(ctx context.Context, licenseNumber string) (*domain.Customer, error) {
	return r.findOne(ctx, bson.M{"licenseNumber": licenseNumber})
}

func (r *CustomerRepository) List(ctx context.Context) ([]*domain.Customer, error) {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer cur.Close(ctx)

	var docs []customerDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode customers: %w", err)
	}
	out := make([]*domain.Customer, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

// AddTask uses $addToSet, so repeating it leaves one entry.
func (r *CustomerRepository) AddTask(ctx context.Context, licenseNumber, taskID string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		return false, domain.ErrInvalidID
	}
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"licenseNumber": licenseNumber}, bson.M{"$addToSet": bson.M{"tasks": oid}})
	if err != nil {
		return false, fmt.Errorf("link customer task: %w", err)
	}
	return res.MatchedCount > 0, nil
}

func (r *CustomerRepository) RemoveTask(ctx context.Context, licenseNumber, taskID string) error {
	oid, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		return domain.ErrInvalidID
	}
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	if _, err := r.col.UpdateOne(ctx, bson.M{"licenseNumber": licenseNumber}, bson.M{"$pull": bson.M{"tasks": oid}}); err != nil {
		return fmt.Errorf("unlink customer task: %w", err)
	}
	return nil
}

func (r *CustomerRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, uniqueIndexes("userName", "email", "licenseNumber"))
	return err
}

func (r *CustomerRepository) findOne(ctx context.Context, filter bson.M) (*domain.Customer, error) {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	var doc customerDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return doc.toDomain(), nil
}

// duplicateAccount tells a taken user name apart from another taken unique field
// by the index named in the server's E11000 message.
func duplicateAccount(err error) error {
	if strings.Contains(err.Error(), "userName_1") {
		return domain.ErrUserExists
	}
	return domain.ErrAccountExists
}

func uniqueIndexes(fields ...string) []mongo.IndexModel {
	out := make([]mongo.IndexModel, 0, len(fields))
	for _, f := range fields {
		out = append(out, mongo.IndexModel{
			Keys:    bson.D{{Key: f, Value: 1}},
			Options: options.Index().SetUnique(true),
		})
	}
	return out
}
