package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the unique indexes of every collection.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := NewTaskRepository(db, 0).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("task indexes: %w", err)
	}
	if err := NewCustomerRepository(db, 0).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("customer indexes: %w", err)
	}
	if err := NewWorkerRepository(db, 0).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("worker indexes: %w", err)
	}
	return nil
}
