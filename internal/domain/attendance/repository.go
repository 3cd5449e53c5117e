package attendance

import "context"

// AttendanceRepository is the Record Store contract for attendance records.
type AttendanceRepository interface {
	// Upsert writes the record keyed on (WorkerID, Date). An existing row keeps
	// its ID and has Status, ShiftType and Notes overwritten.
	Upsert(ctx context.Context, record Attendance) (Attendance, error)

	GetByID(ctx context.Context, id string) (Attendance, error)

	// ListByDate returns the rows for one date joined with their workers, ordered by worker name.
	ListByDate(ctx context.Context, date string) ([]DailyAttendance, error)

	// ListByWorker returns the worker's rows within period, newest date first.
	ListByWorker(ctx context.Context, workerID string, period Period) ([]Attendance, error)

	// ListByPeriod returns every row within period.
	ListByPeriod(ctx context.Context, period Period) ([]Attendance, error)

	Delete(ctx context.Context, id string) error
}
