package attendance

import (
	"context"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/factory-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/factory-attendance-go/internal/domain/worker"
	"github.com/cmlabs-hris/factory-attendance-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/factory-attendance-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

const defaultBatchConcurrency = 4

type AttendanceServiceImpl struct {
	attendanceRepo   attendance.AttendanceRepository
	workerRepo       worker.WorkerRepository
	batchConcurrency int
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	workerRepo worker.WorkerRepository,
	batchConcurrency int,
) attendance.AttendanceService {
	if batchConcurrency <= 0 {
		batchConcurrency = defaultBatchConcurrency
	}
	return &AttendanceServiceImpl{
		attendanceRepo:   attendanceRepo,
		workerRepo:       workerRepo,
		batchConcurrency: batchConcurrency,
	}
}

// MarkAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	record := req.ToAttendance()

	if _, err := s.workerRepo.GetByID(ctx, record.WorkerID); err != nil {
		metrics.ObserveStoreError("get_worker", err)
		return attendance.AttendanceResponse{}, err
	}

	saved, err := s.attendanceRepo.Upsert(ctx, record)
	if err != nil {
		metrics.ObserveStoreError("upsert_attendance", err)
		slog.Error("Failed to mark attendance", "worker_id", record.WorkerID, "date", record.Date, "error", err)
		return attendance.AttendanceResponse{}, err
	}

	metrics.AttendanceMarks.WithLabelValues(string(saved.Status)).Inc()
	return attendance.NewAttendanceResponse(saved), nil
}

// MarkAttendanceBatch implements attendance.AttendanceService.
// Each mark is an independent write; the order of completion is unspecified.
func (s *AttendanceServiceImpl) MarkAttendanceBatch(ctx context.Context, req attendance.BatchMarkRequest) (attendance.BatchMarkResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.BatchMarkResponse{}, err
	}

	results := make([]*attendance.AttendanceResponse, len(req.Records))
	failures := make([]error, len(req.Records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchConcurrency)
	for i, item := range req.Records {
		i, item := i, item
		g.Go(func() error {
			res, err := s.MarkAttendance(gctx, item)
			if err != nil {
				failures[i] = err
				return nil
			}
			results[i] = &res
			return nil
		})
	}
	_ = g.Wait()

	resp := attendance.BatchMarkResponse{
		Total:   len(req.Records),
		Results: make([]attendance.AttendanceResponse, 0, len(req.Records)),
	}
	for i, item := range req.Records {
		if failures[i] != nil {
			resp.Failed++
			resp.Errors = append(resp.Errors, attendance.BatchItemError{
				Index:    i,
				WorkerID: item.WorkerID,
				Date:     item.Date,
				Message:  failures[i].Error(),
			})
			continue
		}
		resp.Succeeded++
		resp.Results = append(resp.Results, *results[i])
	}

	if resp.Failed > 0 {
		metrics.BatchMarkFailures.Add(float64(resp.Failed))
		slog.Warn("Attendance batch partially failed", "total", resp.Total, "failed", resp.Failed)
	}
	return resp, nil
}

// GetByDate implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetByDate(ctx context.Context, date string) ([]attendance.DailyAttendanceResponse, error) {
	date = strings.TrimSpace(date)
	if _, ok := validator.IsValidDate(date); !ok {
		return nil, validator.ValidationErrors{{Field: "date", Message: "date must be in YYYY-MM-DD format"}}
	}

	rows, err := s.attendanceRepo.ListByDate(ctx, date)
	if err != nil {
		metrics.ObserveStoreError("list_attendance_by_date", err)
		return nil, err
	}

	result := make([]attendance.DailyAttendanceResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, attendance.NewDailyAttendanceResponse(row))
	}
	return result, nil
}

// GetByWorker implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetByWorker(ctx context.Context, workerID string, query attendance.AttendanceQuery) ([]attendance.AttendanceResponse, error) {
	period, err := attendance.NewPeriod(query.Month, query.Year)
	if err != nil {
		return nil, err
	}
	return s.listByWorker(ctx, workerID, period)
}

// GetByWorkerRange implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetByWorkerRange(ctx context.Context, workerID string, year string) ([]attendance.AttendanceResponse, error) {
	period, err := attendance.NewPeriod("", year)
	if err != nil {
		return nil, err
	}
	return s.listByWorker(ctx, workerID, period)
}

func (s *AttendanceServiceImpl) listByWorker(ctx context.Context, workerID string, period attendance.Period) ([]attendance.AttendanceResponse, error) {
	if validator.IsEmpty(workerID) {
		return nil, worker.ErrWorkerNotFound
	}
	if _, err := s.workerRepo.GetByID(ctx, workerID); err != nil {
		metrics.ObserveStoreError("get_worker", err)
		return nil, err
	}

	rows, err := s.attendanceRepo.ListByWorker(ctx, workerID, period)
	if err != nil {
		metrics.ObserveStoreError("list_attendance_by_worker", err)
		return nil, err
	}
	return attendance.NewAttendanceResponses(rows), nil
}

// DeleteAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id string) error {
	if validator.IsEmpty(id) {
		return attendance.ErrAttendanceNotFound
	}
	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		metrics.ObserveStoreError("get_attendance", err)
		return err
	}

	if err := s.attendanceRepo.Delete(ctx, id); err != nil {
		metrics.ObserveStoreError("delete_attendance", err)
		return err
	}
	slog.Info("Attendance record deleted", "id", record.ID, "worker_id", record.WorkerID, "date", record.Date)
	return nil
}
