package report

import (
	"context"

	"github.com/cmlabs-hris/factory-attendance-go/internal/domain/attendance"
)

type ReportService interface {
	// BuildMonthlyReport returns one row per roster worker, ordered by name.
	BuildMonthlyReport(ctx context.Context, req MonthlyReportRequest) (MonthlyReport, error)

	// BuildWorkerStats returns the worker, its matching rows and their counts.
	BuildWorkerStats(ctx context.Context, workerID string, query attendance.AttendanceQuery) (WorkerReport, error)
}
