package report

import (
	"testing"

	"github.com/cmlabs-hris/factory-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/factory-attendance-go/internal/domain/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateMonth_CountsPerWorker(t *testing.T) {
	roster := []worker.Worker{
		{ID: "a", Name: "Asha", Work: "Stitching", Shift: "Day"},
		{ID: "b", Name: "Bilal", Work: "Packing", Shift: "Night"},
	}
	records := []attendance.Attendance{
		{WorkerID: "a", Date: "2024-03-01", Status: attendance.StatusPresent},
		{WorkerID: "a", Date: "2024-03-02", Status: attendance.StatusAbsent},
		{WorkerID: "a", Date: "2024-03-03", Status: attendance.StatusHalfDay},
		{WorkerID: "a", Date: "2024-04-01", Status: attendance.StatusPresent},
		{WorkerID: "ghost", Date: "2024-03-01", Status: attendance.StatusPresent},
	}
	period := attendance.Period{Year: "2024", Month: "03"}

	rows := aggregateMonth(roster, records, period)

	require.Len(t, rows, 2)
	assert.Equal(t, "a", rows[0].ID)
	assert.Equal(t, "Stitching", rows[0].Work)
	assert.Equal(t, 1, rows[0].PresentDays)
	assert.Equal(t, 1, rows[0].AbsentDays)
	assert.Equal(t, 1, rows[0].HalfDays)
	assert.Equal(t, 0, rows[0].LeaveDays)
	assert.Equal(t, 3, rows[0].TotalMarked)
	require.NotNil(t, rows[0].AttendancePercent)
	assert.Equal(t, 50.0, *rows[0].AttendancePercent)

	assert.Equal(t, "b", rows[1].ID)
	assert.Equal(t, 0, rows[1].TotalMarked)
	assert.Nil(t, rows[1].AttendancePercent)
}

func TestAggregateMonth_SumInvariant(t *testing.T) {
	roster := []worker.Worker{{ID: "a", Name: "Asha"}}
	statuses := []attendance.Status{
		attendance.StatusPresent, attendance.StatusLeave, attendance.StatusLeave,
		attendance.StatusHalfDay, attendance.StatusAbsent, attendance.StatusPresent,
	}
	var records []attendance.Attendance
	for i, st := range statuses {
		records = append(records, attendance.Attendance{
			WorkerID: "a",
			Date:     "2024-05-" + []string{"01", "02", "03", "04", "05", "06"}[i],
			Status:   st,
		})
	}

	rows := aggregateMonth(roster, records, attendance.Period{Year: "2024", Month: "05"})

	require.Len(t, rows, 1)
	r := rows[0]
	assert.Equal(t, r.TotalMarked, r.PresentDays+r.AbsentDays+r.HalfDays+r.LeaveDays)
	assert.Equal(t, 6, r.TotalMarked)
	assert.Equal(t, 2, r.LeaveDays)
	require.NotNil(t, r.AttendancePercent)
	assert.Equal(t, 41.7, *r.AttendancePercent)
}

func TestAggregateMonth_EmptyRoster(t *testing.T) {
	rows := aggregateMonth(nil, []attendance.Attendance{
		{WorkerID: "x", Date: "2024-03-01", Status: attendance.StatusPresent},
	}, attendance.Period{Year: "2024", Month: "03"})

	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestWorkerStats(t *testing.T) {
	stats := workerStats([]attendance.Attendance{
		{Status: attendance.StatusPresent},
		{Status: attendance.StatusAbsent},
		{Status: attendance.StatusHalfDay},
	})

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Present)
	assert.Equal(t, 1, stats.Absent)
	assert.Equal(t, 1, stats.HalfDay)
	assert.Equal(t, 0, stats.Leave)
	require.NotNil(t, stats.AttendancePercent)
	assert.Equal(t, 50.0, *stats.AttendancePercent)

	empty := workerStats(nil)
	assert.Equal(t, 0, empty.Total)
	assert.Nil(t, empty.AttendancePercent)
}
