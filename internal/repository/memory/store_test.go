package memory

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/factory-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/factory-attendance-go/internal/domain/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerRepository_ListOrdering(t *testing.T) {
	store := NewStore()
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	repo := NewWorkerRepository(store)
	ctx := context.Background()

	for _, name := range []string{"Chetan", "Asha", "Bhavna"} {
		_, err := repo.Create(ctx, worker.Worker{Name: name})
		require.NoError(t, err)
	}

	newest, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bhavna", "Asha", "Chetan"}, names(newest))

	roster, err := repo.ListByName(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Asha", "Bhavna", "Chetan"}, names(roster))
}

func TestAttendanceRepository_UpsertAndCascade(t *testing.T) {
	store := NewStore()
	workers := NewWorkerRepository(store)
	records := NewAttendanceRepository(store)
	ctx := context.Background()

	w, err := workers.Create(ctx, worker.Worker{Name: "Asha"})
	require.NoError(t, err)

	first, err := records.Upsert(ctx, attendance.Attendance{WorkerID: w.ID, Date: "2024-03-01", Status: attendance.StatusPresent, Notes: "early"})
	require.NoError(t, err)
	second, err := records.Upsert(ctx, attendance.Attendance{WorkerID: w.ID, Date: "2024-03-01", Status: attendance.StatusLeave})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "", second.Notes)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)

	_, err = records.Upsert(ctx, attendance.Attendance{WorkerID: "nobody", Date: "2024-03-01", Status: attendance.StatusPresent})
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)

	require.NoError(t, workers.Delete(ctx, w.ID))

	_, err = records.GetByID(ctx, first.ID)
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
	all, err := records.ListByPeriod(ctx, attendance.Period{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func names(workers []worker.Worker) []string {
	out := make([]string, 0, len(workers))
	for _, w := range workers {
		out = append(out, w.Name)
	}
	return out
}
