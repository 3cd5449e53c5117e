package mongodb

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/cmlabs-hris/factory-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/factory-attendance-go/internal/domain/worker"
	"github.com/cmlabs-hris/factory-attendance-go/internal/pkg/database"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type attendanceDocument struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	WorkerID  bson.ObjectID `bson:"workerId"`
	Date      string        `bson:"date"`
	Status    string        `bson:"status"`
	ShiftType string        `bson:"shiftType"`
	Notes     string        `bson:"notes"`
	CreatedAt time.Time     `bson:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt"`
}

func (d attendanceDocument) toAttendance() attendance.Attendance {
	return attendance.Attendance{
		ID:        d.ID.Hex(),
		WorkerID:  d.WorkerID.Hex(),
		Date:      d.Date,
		Status:    attendance.Status(d.Status),
		ShiftType: d.ShiftType,
		Notes:     d.Notes,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type attendanceRepository struct {
	attendance *mongo.Collection
}

func NewAttendanceRepository(db *database.MongoDB) attendance.AttendanceRepository {
	return &attendanceRepository{
		attendance: db.Collection(attendanceCollection),
	}
}

// Upsert implements attendance.AttendanceRepository.
func (s *attendanceRepository) Upsert(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	workerOID, err := bson.ObjectIDFromHex(record.WorkerID)
	if err != nil {
		return attendance.Attendance{}, worker.ErrWorkerNotFound
	}

	now := time.Now().UTC()
	var saved attendanceDocument
	err = s.attendance.FindOneAndUpdate(ctx,
		bson.M{"workerId": workerOID, "date": record.Date},
		bson.M{
			"$set": bson.M{
				"status":    string(record.Status),
				"shiftType": record.ShiftType,
				"notes":     record.Notes,
				"updatedAt": now,
			},
			"$setOnInsert": bson.M{"createdAt": now},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&saved)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return attendance.Attendance{}, attendance.ErrDuplicateAttendance
		}
		return attendance.Attendance{}, database.StoreError("upsert attendance", err)
	}
	return saved.toAttendance(), nil
}

// GetByID implements attendance.AttendanceRepository.
func (s *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}

	var doc attendanceDocument
	err = s.attendance.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	if err != nil {
		return attendance.Attendance{}, database.StoreError("find attendance", err)
	}
	return doc.toAttendance(), nil
}

type dailyAttendanceDocument struct {
	Record attendanceDocument `bson:",inline"`
	Worker struct {
		Name  string `bson:"name"`
		Work  string `bson:"work"`
		Shift string `bson:"shift"`
	} `bson:"worker"`
}

// ListByDate implements attendance.AttendanceRepository.
func (s *attendanceRepository) ListByDate(ctx context.Context, date string) ([]attendance.DailyAttendance, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"date": date}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         workersCollection,
			"localField":   "workerId",
			"foreignField": "_id",
			"as":           "worker",
		}}},
		{{Key: "$unwind", Value: "$worker"}},
		{{Key: "$sort", Value: bson.D{{Key: "worker.name", Value: 1}, {Key: "workerId", Value: 1}}}},
	}

	cursor, err := s.attendance.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, database.StoreError("aggregate attendance by date", err)
	}
	var docs []dailyAttendanceDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, database.StoreError("decode attendance", err)
	}

	rows := make([]attendance.DailyAttendance, 0, len(docs))
	for _, d := range docs {
		rows = append(rows, attendance.DailyAttendance{
			Attendance:  d.Record.toAttendance(),
			WorkerName:  d.Worker.Name,
			WorkerWork:  d.Worker.Work,
			WorkerShift: d.Worker.Shift,
		})
	}
	return rows, nil
}

// ListByWorker implements attendance.AttendanceRepository.
func (s *attendanceRepository) ListByWorker(ctx context.Context, workerID string, period attendance.Period) ([]attendance.Attendance, error) {
	oid, err := bson.ObjectIDFromHex(workerID)
	if err != nil {
		return []attendance.Attendance{}, nil
	}
	filter := periodFilter(period)
	filter["workerId"] = oid
	return s.find(ctx, filter, bson.D{{Key: "date", Value: -1}})
}

// ListByPeriod implements attendance.AttendanceRepository.
func (s *attendanceRepository) ListByPeriod(ctx context.Context, period attendance.Period) ([]attendance.Attendance, error) {
	return s.find(ctx, periodFilter(period), bson.D{{Key: "workerId", Value: 1}, {Key: "date", Value: 1}})
}

func periodFilter(period attendance.Period) bson.M {
	prefix := period.Prefix()
	if prefix == "" {
		return bson.M{}
	}
	return bson.M{"date": bson.Regex{Pattern: "^" + regexp.QuoteMeta(prefix)}}
}

func (s *attendanceRepository) find(ctx context.Context, filter bson.M, sort bson.D) ([]attendance.Attendance, error) {
	cursor, err := s.attendance.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, database.StoreError("find attendance", err)
	}
	var docs []attendanceDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, database.StoreError("decode attendance", err)
	}

	rows := make([]attendance.Attendance, 0, len(docs))
	for _, d := range docs {
		rows = append(rows, d.toAttendance())
	}
	return rows, nil
}

// Delete implements attendance.AttendanceRepository.
func (s *attendanceRepository) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return attendance.ErrAttendanceNotFound
	}

	res, err := s.attendance.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return database.StoreError("delete attendance", err)
	}
	if res.DeletedCount == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}
