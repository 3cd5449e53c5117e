package report

import (
	"github.com/cmlabs-hris/factory-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/factory-attendance-go/internal/domain/report"
	"github.com/cmlabs-hris/factory-attendance-go/internal/domain/worker"
)

type statusCounts struct {
	present int
	absent  int
	halfDay int
	leave   int
}

func (c *statusCounts) add(status attendance.Status) {
	switch status {
	case attendance.StatusPresent:
		c.present++
	case attendance.StatusAbsent:
		c.absent++
	case attendance.StatusHalfDay:
		c.halfDay++
	case attendance.StatusLeave:
		c.leave++
	}
}

func (c statusCounts) total() int {
	return c.present + c.absent + c.halfDay + c.leave
}

// aggregateMonth builds one row per roster worker, in roster order. Records
// whose worker is not on the roster or whose date falls outside period are ignored.
func aggregateMonth(roster []worker.Worker, records []attendance.Attendance, period attendance.Period) []report.MonthlyReportRow {
	counts := make(map[string]*statusCounts, len(roster))
	for _, w := range roster {
		counts[w.ID] = &statusCounts{}
	}
	for _, r := range records {
		c, ok := counts[r.WorkerID]
		if !ok || !period.Matches(r.Date) {
			continue
		}
		c.add(r.Status)
	}

	rows := make([]report.MonthlyReportRow, 0, len(roster))
	for _, w := range roster {
		c := counts[w.ID]
		total := c.total()
		rows = append(rows, report.MonthlyReportRow{
			ID:                w.ID,
			Name:              w.Name,
			Work:              w.Work,
			Shift:             w.Shift,
			PresentDays:       c.present,
			AbsentDays:        c.absent,
			HalfDays:          c.halfDay,
			LeaveDays:         c.leave,
			TotalMarked:       total,
			AttendancePercent: report.AttendancePercent(c.present, c.halfDay, total),
		})
	}
	return rows
}

func workerStats(records []attendance.Attendance) report.WorkerStats {
	var c statusCounts
	for _, r := range records {
		c.add(r.Status)
	}
	total := c.total()
	return report.WorkerStats{
		Total:             total,
		Present:           c.present,
		Absent:            c.absent,
		HalfDay:           c.halfDay,
		Leave:             c.leave,
		AttendancePercent: report.AttendancePercent(c.present, c.halfDay, total),
	}
}
