package memory

import (
	"context"
	"sort"

	"github.com/cmlabs-hris/factory-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/factory-attendance-go/internal/domain/worker"
)

type attendanceRepository struct {
	store *Store
}

func NewAttendanceRepository(store *Store) attendance.AttendanceRepository {
	return &attendanceRepository{store: store}
}

// Upsert implements attendance.AttendanceRepository.
func (r *attendanceRepository) Upsert(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.workers[record.WorkerID]; !ok {
		return attendance.Attendance{}, worker.ErrWorkerNotFound
	}

	now := r.store.now()
	key := attendanceKey{workerID: record.WorkerID, date: record.Date}
	if id, ok := r.store.byKey[key]; ok {
		existing := r.store.attendance[id]
		existing.Status = record.Status
		existing.ShiftType = record.ShiftType
		existing.Notes = record.Notes
		existing.UpdatedAt = now
		r.store.attendance[id] = existing
		return existing, nil
	}

	record.ID = newID()
	record.CreatedAt = now
	record.UpdatedAt = now
	r.store.attendance[record.ID] = record
	r.store.byKey[key] = record.ID
	return record, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	a, ok := r.store.attendance[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return a, nil
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByDate(ctx context.Context, date string) ([]attendance.DailyAttendance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rows := make([]attendance.DailyAttendance, 0)
	for _, a := range r.store.attendance {
		if a.Date != date {
			continue
		}
		w, ok := r.store.workers[a.WorkerID]
		if !ok {
			continue
		}
		rows = append(rows, attendance.DailyAttendance{
			Attendance:  a,
			WorkerName:  w.Name,
			WorkerWork:  w.Work,
			WorkerShift: w.Shift,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].WorkerName == rows[j].WorkerName {
			return rows[i].WorkerID < rows[j].WorkerID
		}
		return rows[i].WorkerName < rows[j].WorkerName
	})
	return rows, nil
}

// ListByWorker implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByWorker(ctx context.Context, workerID string, period attendance.Period) ([]attendance.Attendance, error) {
	rows := r.filter(func(a attendance.Attendance) bool {
		return a.WorkerID == workerID && period.Matches(a.Date)
	})
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date > rows[j].Date
	})
	return rows, nil
}

// ListByPeriod implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByPeriod(ctx context.Context, period attendance.Period) ([]attendance.Attendance, error) {
	rows := r.filter(func(a attendance.Attendance) bool {
		return period.Matches(a.Date)
	})
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].WorkerID == rows[j].WorkerID {
			return rows[i].Date < rows[j].Date
		}
		return rows[i].WorkerID < rows[j].WorkerID
	})
	return rows, nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	a, ok := r.store.attendance[id]
	if !ok {
		return attendance.ErrAttendanceNotFound
	}
	delete(r.store.attendance, id)
	delete(r.store.byKey, attendanceKey{workerID: a.WorkerID, date: a.Date})
	return nil
}

func (r *attendanceRepository) filter(keep func(attendance.Attendance) bool) []attendance.Attendance {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rows := make([]attendance.Attendance, 0)
	for _, a := range r.store.attendance {
		if keep(a) {
			rows = append(rows, a)
		}
	}
	return rows
}
