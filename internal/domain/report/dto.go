package report

import (
	"github.com/cmlabs-hris/factory-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/factory-attendance-go/internal/domain/worker"
)

// ========================================
// MONTHLY ATTENDANCE REPORT
// ========================================

type MonthlyReportRequest struct {
	Month string `json:"month"`
	Year  string `json:"year"`
}

// Period validates the request; both values are required.
func (r *MonthlyReportRequest) Period() (attendance.Period, error) {
	return attendance.MonthPeriod(r.Month, r.Year)
}

type MonthlyReport struct {
	Month       string             `json:"month"`
	Year        string             `json:"year"`
	GeneratedAt string             `json:"generatedAt"`
	Rows        []MonthlyReportRow `json:"report"`
}

// MonthlyReportRow holds one roster entry's counts for the month.
// PresentDays+AbsentDays+HalfDays+LeaveDays == TotalMarked.
type MonthlyReportRow struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Work              string   `json:"work"`
	Shift             string   `json:"shift"`
	PresentDays       int      `json:"presentDays"`
	AbsentDays        int      `json:"absentDays"`
	HalfDays          int      `json:"halfDays"`
	LeaveDays         int      `json:"leaveDays"`
	TotalMarked       int      `json:"totalMarked"`
	AttendancePercent *float64 `json:"attendancePercent"` // null when TotalMarked == 0
}

// ========================================
// INDIVIDUAL WORKER REPORT
// ========================================

type WorkerStats struct {
	Total             int      `json:"total"`
	Present           int      `json:"present"`
	Absent            int      `json:"absent"`
	HalfDay           int      `json:"halfDay"`
	Leave             int      `json:"leave"`
	AttendancePercent *float64 `json:"attendancePercent"`
}

type WorkerReport struct {
	Worker     worker.WorkerResponse           `json:"worker"`
	Attendance []attendance.AttendanceResponse `json:"attendance"`
	Stats      WorkerStats                     `json:"stats"`
}
