package postgresql

import (
	"context"
	"errors"

	"github.com/cmlabs-hris/factory-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/factory-attendance-go/internal/domain/worker"
	"github.com/cmlabs-hris/factory-attendance-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const attendanceColumns = `id, worker_id, date, status, shift_type, notes, created_at, updated_at`

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(&a.ID, &a.WorkerID, &a.Date, &a.Status, &a.ShiftType, &a.Notes, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// Upsert implements attendance.AttendanceRepository.
func (a *attendanceRepository) Upsert(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.Attendance{}, database.StoreError("generate attendance id", err)
	}

	query := `
		INSERT INTO attendance (id, worker_id, date, status, shift_type, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (worker_id, date) DO UPDATE SET
			status = EXCLUDED.status,
			shift_type = EXCLUDED.shift_type,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING ` + attendanceColumns

	saved, err := scanAttendance(q.QueryRow(ctx, query,
		id.String(), record.WorkerID, record.Date, record.Status, record.ShiftType, record.Notes,
	))
	if err != nil {
		switch pgErrorCode(err) {
		case foreignKeyViolation:
			return attendance.Attendance{}, worker.ErrWorkerNotFound
		case uniqueViolation:
			return attendance.Attendance{}, attendance.ErrDuplicateAttendance
		}
		return attendance.Attendance{}, database.StoreError("upsert attendance", err)
	}
	return saved, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE id = $1`

	att, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, database.StoreError("get attendance by id", err)
	}
	return att, nil
}

// ListByDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByDate(ctx context.Context, date string) ([]attendance.DailyAttendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.worker_id, a.date, a.status, a.shift_type, a.notes, a.created_at, a.updated_at,
			   w.name, w.work, w.shift
		FROM attendance a
		JOIN workers w ON w.id = a.worker_id
		WHERE a.date = $1
		ORDER BY w.name, w.id
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, database.StoreError("list attendance by date", err)
	}
	defer rows.Close()

	result := make([]attendance.DailyAttendance, 0)
	for rows.Next() {
		var d attendance.DailyAttendance
		if err := rows.Scan(
			&d.ID, &d.WorkerID, &d.Date, &d.Status, &d.ShiftType, &d.Notes, &d.CreatedAt, &d.UpdatedAt,
			&d.WorkerName, &d.WorkerWork, &d.WorkerShift,
		); err != nil {
			return nil, database.StoreError("scan attendance", err)
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, database.StoreError("iterate attendance", err)
	}
	return result, nil
}

// ListByWorker implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByWorker(ctx context.Context, workerID string, period attendance.Period) ([]attendance.Attendance, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE worker_id = $1 AND date LIKE $2
		ORDER BY date DESC
	`
	return a.list(ctx, query, workerID, period.Prefix()+"%")
}

// ListByPeriod implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByPeriod(ctx context.Context, period attendance.Period) ([]attendance.Attendance, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE date LIKE $1
		ORDER BY worker_id, date
	`
	return a.list(ctx, query, period.Prefix()+"%")
}

func (a *attendanceRepository) list(ctx context.Context, query string, args ...interface{}) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, database.StoreError("list attendance", err)
	}
	defer rows.Close()

	result := make([]attendance.Attendance, 0)
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, database.StoreError("scan attendance", err)
		}
		result = append(result, att)
	}
	if err := rows.Err(); err != nil {
		return nil, database.StoreError("iterate attendance", err)
	}
	return result, nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance WHERE id = $1`, id)
	if err != nil {
		return database.StoreError("delete attendance", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}
