package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/factory-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/factory-attendance-go/internal/domain/report"
	"github.com/cmlabs-hris/factory-attendance-go/internal/domain/worker"
	"github.com/cmlabs-hris/factory-attendance-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/factory-attendance-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	workerRepo     worker.WorkerRepository
	attendanceRepo attendance.AttendanceRepository
	now            func() time.Time
}

func NewReportService(workerRepo worker.WorkerRepository, attendanceRepo attendance.AttendanceRepository) report.ReportService {
	return &ReportServiceImpl{
		workerRepo:     workerRepo,
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

// BuildMonthlyReport implements report.ReportService.
func (s *ReportServiceImpl) BuildMonthlyReport(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReport, error) {
	period, err := req.Period()
	if err != nil {
		return report.MonthlyReport{}, err
	}

	start := time.Now()
	defer func() {
		metrics.ReportDuration.WithLabelValues("monthly").Observe(time.Since(start).Seconds())
	}()

	var (
		roster  []worker.Worker
		records []attendance.Attendance
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		roster, err = s.workerRepo.ListByName(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.ListByPeriod(gctx, period)
		return err
	})
	if err := g.Wait(); err != nil {
		metrics.ObserveStoreError("build_monthly_report", err)
		slog.Error("Failed to load monthly report data", "period", period.Prefix(), "error", err)
		return report.MonthlyReport{}, err
	}

	return report.MonthlyReport{
		Month:       period.Month,
		Year:        period.Year,
		GeneratedAt: s.now().Format(time.RFC3339),
		Rows:        aggregateMonth(roster, records, period),
	}, nil
}

// BuildWorkerStats implements report.ReportService.
func (s *ReportServiceImpl) BuildWorkerStats(ctx context.Context, workerID string, query attendance.AttendanceQuery) (report.WorkerReport, error) {
	period, err := attendance.NewPeriod(query.Month, query.Year)
	if err != nil {
		return report.WorkerReport{}, err
	}
	if validator.IsEmpty(workerID) {
		return report.WorkerReport{}, worker.ErrWorkerNotFound
	}

	start := time.Now()
	defer func() {
		metrics.ReportDuration.WithLabelValues("worker").Observe(time.Since(start).Seconds())
	}()

	w, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		metrics.ObserveStoreError("get_worker", err)
		return report.WorkerReport{}, err
	}

	records, err := s.attendanceRepo.ListByWorker(ctx, w.ID, period)
	if err != nil {
		metrics.ObserveStoreError("list_attendance_by_worker", err)
		slog.Error("Failed to load worker attendance", "worker_id", w.ID, "error", err)
		return report.WorkerReport{}, err
	}

	return report.WorkerReport{
		Worker:     worker.NewWorkerResponse(w),
		Attendance: attendance.NewAttendanceResponses(records),
		Stats:      workerStats(records),
	}, nil
}
