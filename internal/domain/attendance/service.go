package attendance

import "context"

type AttendanceService interface {
	// MarkAttendance validates and upserts one mark. Idempotent for identical input.
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)

	// MarkAttendanceBatch submits independent marks. Failures are counted, never rolled back.
	MarkAttendanceBatch(ctx context.Context, req BatchMarkRequest) (BatchMarkResponse, error)

	GetByDate(ctx context.Context, date string) ([]DailyAttendanceResponse, error)
	GetByWorker(ctx context.Context, workerID string, query AttendanceQuery) ([]AttendanceResponse, error)
	GetByWorkerRange(ctx context.Context, workerID string, year string) ([]AttendanceResponse, error)

	DeleteAttendance(ctx context.Context, id string) error
}
