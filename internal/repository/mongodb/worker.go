package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/cmlabs-hris/factory-attendance-go/internal/domain/worker"
	"github.com/cmlabs-hris/factory-attendance-go/internal/pkg/database"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type workerDocument struct {
	ID               bson.ObjectID `bson:"_id,omitempty"`
	Name             string        `bson:"name"`
	Phone            string        `bson:"phone"`
	Gender           string        `bson:"gender"`
	JoinDate         string        `bson:"joinDate"`
	Work             string        `bson:"work"`
	Address          string        `bson:"address"`
	Salary           string        `bson:"salary"`
	Shift            string        `bson:"shift"`
	Reference        string        `bson:"reference"`
	EmergencyContact string        `bson:"emergencyContact"`
	IDProof          string        `bson:"idProof"`
	IDNumber         string        `bson:"idNumber"`
	Notes            string        `bson:"notes"`
	Photo            *string       `bson:"photo"`
	CreatedAt        time.Time     `bson:"createdAt"`
	UpdatedAt        time.Time     `bson:"updatedAt"`
}

func newWorkerDocument(w worker.Worker) workerDocument {
	return workerDocument{
		Name:             w.Name,
		Phone:            w.Phone,
		Gender:           string(w.Gender),
		JoinDate:         w.JoinDate,
		Work:             w.Work,
		Address:          w.Address,
		Salary:           w.Salary,
		Shift:            w.Shift,
		Reference:        w.Reference,
		EmergencyContact: w.EmergencyContact,
		IDProof:          w.IDProof,
		IDNumber:         w.IDNumber,
		Notes:            w.Notes,
		Photo:            w.Photo,
		CreatedAt:        w.CreatedAt,
		UpdatedAt:        w.UpdatedAt,
	}
}

func (d workerDocument) toWorker() worker.Worker {
	return worker.Worker{
		ID:               d.ID.Hex(),
		Name:             d.Name,
		Phone:            d.Phone,
		Gender:           worker.Gender(d.Gender),
		JoinDate:         d.JoinDate,
		Work:             d.Work,
		Address:          d.Address,
		Salary:           d.Salary,
		Shift:            d.Shift,
		Reference:        d.Reference,
		EmergencyContact: d.EmergencyContact,
		IDProof:          d.IDProof,
		IDNumber:         d.IDNumber,
		Notes:            d.Notes,
		Photo:            d.Photo,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

type workerRepository struct {
	workers    *mongo.Collection
	attendance *mongo.Collection
}

func NewWorkerRepository(db *database.MongoDB) worker.WorkerRepository {
	return &workerRepository{
		workers:    db.Collection(workersCollection),
		attendance: db.Collection(attendanceCollection),
	}
}

// Create implements worker.WorkerRepository.
func (r *workerRepository) Create(ctx context.Context, newWorker worker.Worker) (worker.Worker, error) {
	now := time.Now().UTC()
	newWorker.CreatedAt = now
	newWorker.UpdatedAt = now

	doc := newWorkerDocument(newWorker)
	doc.ID = bson.NewObjectID()
	if _, err := r.workers.InsertOne(ctx, doc); err != nil {
		return worker.Worker{}, database.StoreError("insert worker", err)
	}
	return doc.toWorker(), nil
}

// GetByID implements worker.WorkerRepository.
func (r *workerRepository) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}

	var doc workerDocument
	err = r.workers.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	if err != nil {
		return worker.Worker{}, database.StoreError("find worker", err)
	}
	return doc.toWorker(), nil
}

// List implements worker.WorkerRepository.
func (r *workerRepository) List(ctx context.Context) ([]worker.Worker, error) {
	return r.find(ctx, bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
}

// ListByName implements worker.WorkerRepository.
func (r *workerRepository) ListByName(ctx context.Context) ([]worker.Worker, error) {
	return r.find(ctx, bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}})
}

func (r *workerRepository) find(ctx context.Context, sort bson.D) ([]worker.Worker, error) {
	cursor, err := r.workers.Find(ctx, bson.M{}, options.Find().SetSort(sort))
	if err != nil {
		return nil, database.StoreError("find workers", err)
	}
	var docs []workerDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, database.StoreError("decode workers", err)
	}

	workers := make([]worker.Worker, 0, len(docs))
	for _, d := range docs {
		workers = append(workers, d.toWorker())
	}
	return workers, nil
}

// Update implements worker.WorkerRepository.
func (r *workerRepository) Update(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	oid, err := bson.ObjectIDFromHex(w.ID)
	if err != nil {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}

	w.UpdatedAt = time.Now().UTC()
	doc := newWorkerDocument(w)
	set := bson.M{
		"name":             doc.Name,
		"phone":            doc.Phone,
		"gender":           doc.Gender,
		"joinDate":         doc.JoinDate,
		"work":             doc.Work,
		"address":          doc.Address,
		"salary":           doc.Salary,
		"shift":            doc.Shift,
		"reference":        doc.Reference,
		"emergencyContact": doc.EmergencyContact,
		"idProof":          doc.IDProof,
		"idNumber":         doc.IDNumber,
		"notes":            doc.Notes,
		"photo":            doc.Photo,
		"updatedAt":        doc.UpdatedAt,
	}

	var updated workerDocument
	err = r.workers.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	if err != nil {
		return worker.Worker{}, database.StoreError("update worker", err)
	}
	return updated.toWorker(), nil
}

// Delete implements worker.WorkerRepository.
// The cascade is not atomic on this store: attendance is removed, then the
// worker, then attendance again to sweep marks that passed the worker check
// while the delete was running. A mark whose write lands after the final sweep
// can still leave an orphan row.
func (r *workerRepository) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return worker.ErrWorkerNotFound
	}

	if err := r.deleteAttendance(ctx, oid); err != nil {
		return err
	}

	res, err := r.workers.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return database.StoreError("delete worker", err)
	}
	if res.DeletedCount == 0 {
		return worker.ErrWorkerNotFound
	}

	return r.deleteAttendance(ctx, oid)
}

func (r *workerRepository) deleteAttendance(ctx context.Context, workerID bson.ObjectID) error {
	if _, err := r.attendance.DeleteMany(ctx, bson.M{"workerId": workerID}); err != nil {
		return database.StoreError("delete worker attendance", err)
	}
	return nil
}
