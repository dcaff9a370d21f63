package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/garageworks/garage-service/internal/core/domain"
)

type taskDoc struct {
	ID               primitive.ObjectID  `bson:"_id,omitempty"`
	CarLicenseNumber string              `bson:"carLicenseNumber"`
	TaskName         string              `bson:"taskName"`
	Status           string              `bson:"status"`
	Price            float64             `bson:"price"`
	WorkTime         float64             `bson:"workTime"`
	Worker           *primitive.ObjectID `bson:"worker,omitempty"`
	Rating           float64             `bson:"rating"`
	IdempotencyKey   string              `bson:"idempotencyKey,omitempty"`
	CreatedAt        time.Time           `bson:"createdAt"`
	UpdatedAt        time.Time           `bson:"updatedAt"`
}

type customerDoc struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty"`
	UserName      string               `bson:"userName"`
	Email         string               `bson:"email"`
	PasswordHash  string               `bson:"passwordHash"`
	LicenseNumber string               `bson:"licenseNumber"`
	Tasks         []primitive.ObjectID `bson:"tasks"`
	TasksHistory  []primitive.ObjectID `bson:"tasksHistory"`
	CreatedAt     time.Time            `bson:"createdAt"`
}

type workerDoc struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	UserName     string               `bson:"userName"`
	Email        string               `bson:"email"`
	PasswordHash string               `bson:"passwordHash"`
	TasksHistory []primitive.ObjectID `bson:"tasksHistory"`
	CreatedAt    time.Time            `bson:"createdAt"`
}

func newTaskDoc(t *domain.Task) taskDoc {
	doc := taskDoc{
		CarLicenseNumber: t.CarLicenseNumber,
		TaskName:         t.TaskName,
		Status:           string(t.Status),
		Price:            t.Price,
		WorkTime:         t.WorkTime,
		Rating:           t.Rating,
		IdempotencyKey:   t.IdempotencyKey,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
	if oid, err := primitive.ObjectIDFromHex(t.WorkerID); err == nil {
		doc.Worker = &oid
	}
	return doc
}

func (d taskDoc) toDomain() *domain.Task {
	t := &domain.Task{
		ID:               d.ID.Hex(),
		CarLicenseNumber: d.CarLicenseNumber,
		TaskName:         d.TaskName,
		Status:           domain.TaskStatus(d.Status),
		Price:            d.Price,
		WorkTime:         d.WorkTime,
		Rating:           d.Rating,
		IdempotencyKey:   d.IdempotencyKey,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
	if d.Worker != nil {
		t.WorkerID = d.Worker.Hex()
	}
	return t
}

func (d customerDoc) toDomain() *domain.Customer {
	return &domain.Customer{
		ID:            d.ID.Hex(),
		UserName:      d.UserName,
		Email:         d.Email,
		PasswordHash:  d.PasswordHash,
		LicenseNumber: d.LicenseNumber,
		TaskIDs:       hexes(d.Tasks),
		HistoryIDs:    hexes(d.TasksHistory),
		CreatedAt:     d.CreatedAt,
	}
}

func (d workerDoc) toDomain() *domain.Worker {
	return &domain.Worker{
		ID:           d.ID.Hex(),
		UserName:     d.UserName,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		HistoryIDs:   hexes(d.TasksHistory),
		CreatedAt:    d.CreatedAt,
	}
}

func hexes(ids []primitive.ObjectID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Hex())
	}
	return out
}

// objectIDs converts ids, dropping any that are malformed.
func objectIDs(ids []string) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			out = append(out, oid)
		}
	}
	return out
}
