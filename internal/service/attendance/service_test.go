package attendance

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/factory-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/factory-attendance-go/internal/domain/worker"
	"github.com/cmlabs-hris/factory-attendance-go/internal/pkg/validator"
	"github.com/cmlabs-hris/factory-attendance-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	svc        attendance.AttendanceService
	workerRepo worker.WorkerRepository
	repo       attendance.AttendanceRepository
}

func newTestEnv() testEnv {
	store := memory.NewStore()
	workerRepo := memory.NewWorkerRepository(store)
	repo := memory.NewAttendanceRepository(store)
	return testEnv{
		svc:        NewAttendanceService(repo, workerRepo, 2),
		workerRepo: workerRepo,
		repo:       repo,
	}
}

func (e testEnv) addWorker(t *testing.T, name string) worker.Worker {
	t.Helper()
	w, err := e.workerRepo.Create(context.Background(), worker.Worker{
		Name: name, Phone: "9000000000", Gender: worker.Male, JoinDate: "2023-01-01",
		Work: "Cutter", Address: "Block C", Shift: "Day",
	})
	require.NoError(t, err)
	return w
}

func TestMarkAttendance_UpsertReplacesStatus(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	w := env.addWorker(t, "Ravi")

	first, err := env.svc.MarkAttendance(ctx, attendance.MarkAttendanceRequest{
		WorkerID: w.ID, Date: "2024-03-01", Status: "Present", ShiftType: "Night Shift",
	})
	require.NoError(t, err)
	assert.Equal(t, "Night Shift", first.ShiftType)

	second, err := env.svc.MarkAttendance(ctx, attendance.MarkAttendanceRequest{
		WorkerID: w.ID, Date: "2024-03-01", Status: "Absent",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Absent", second.Status)
	assert.Equal(t, "", second.ShiftType)

	rows, err := env.svc.GetByWorker(ctx, w.ID, attendance.AttendanceQuery{Month: "03", Year: "2024"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Absent", rows[0].Status)
}

func TestMarkAttendance_Idempotent(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	w := env.addWorker(t, "Anita")

	req := attendance.MarkAttendanceRequest{WorkerID: w.ID, Date: "2024-03-04", Status: "Leave", Notes: "wedding"}
	first, err := env.svc.MarkAttendance(ctx, req)
	require.NoError(t, err)
	second, err := env.svc.MarkAttendance(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.Notes, second.Notes)

	rows, err := env.repo.ListByPeriod(ctx, attendance.Period{})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestMarkAttendance_ValidationErrors(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	cases := []struct {
		name  string
		req   attendance.MarkAttendanceRequest
		field string
	}{
		{"missing worker", attendance.MarkAttendanceRequest{Date: "2024-03-01", Status: "Present"}, "workerId"},
		{"missing date", attendance.MarkAttendanceRequest{WorkerID: "w", Status: "Present"}, "date"},
		{"malformed date", attendance.MarkAttendanceRequest{WorkerID: "w", Date: "01-03-2024", Status: "Present"}, "date"},
		{"missing status", attendance.MarkAttendanceRequest{WorkerID: "w", Date: "2024-03-01"}, "status"},
		{"unknown status", attendance.MarkAttendanceRequest{WorkerID: "w", Date: "2024-03-01", Status: "Holiday"}, "status"},
		{"lowercase status", attendance.MarkAttendanceRequest{WorkerID: "w", Date: "2024-03-01", Status: "present"}, "status"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := env.svc.MarkAttendance(ctx, c.req)
			var validationErrs validator.ValidationErrors
			require.True(t, errors.As(err, &validationErrs), "expected validation error, got %v", err)
			assert.Contains(t, validationErrs.ToMap(), c.field)
		})
	}
}

func TestMarkAttendance_UnknownWorker(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.MarkAttendance(context.Background(), attendance.MarkAttendanceRequest{
		WorkerID: "does-not-exist", Date: "2024-03-01", Status: "Present",
	})

	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}

func TestMarkAttendanceBatch_PartialFailure(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	a := env.addWorker(t, "Arjun")
	b := env.addWorker(t, "Bela")

	resp, err := env.svc.MarkAttendanceBatch(ctx, attendance.BatchMarkRequest{Records: []attendance.MarkAttendanceRequest{
		{WorkerID: a.ID, Date: "2024-03-05", Status: "Present", ShiftType: "Day Shift"},
		{WorkerID: "ghost", Date: "2024-03-05", Status: "Present"},
		{WorkerID: b.ID, Date: "2024-03-05", Status: "Half Day"},
		{WorkerID: b.ID, Date: "2024-03-06", Status: "Sick"},
	}})
	require.NoError(t, err)

	assert.Equal(t, 4, resp.Total)
	assert.Equal(t, 2, resp.Succeeded)
	assert.Equal(t, 2, resp.Failed)
	require.Len(t, resp.Errors, 2)
	assert.Equal(t, 1, resp.Errors[0].Index)
	assert.Equal(t, "ghost", resp.Errors[0].WorkerID)
	assert.Equal(t, 3, resp.Errors[1].Index)

	day, err := env.svc.GetByDate(ctx, "2024-03-05")
	require.NoError(t, err)
	assert.Len(t, day, 2)
}

func TestMarkAttendanceBatch_Empty(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.MarkAttendanceBatch(context.Background(), attendance.BatchMarkRequest{})

	var validationErrs validator.ValidationErrors
	assert.True(t, errors.As(err, &validationErrs))
}

func TestGetByDate_JoinsWorkerOrderedByName(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	zoya := env.addWorker(t, "Zoya")
	amar := env.addWorker(t, "Amar")

	for _, id := range []string{zoya.ID, amar.ID} {
		_, err := env.svc.MarkAttendance(ctx, attendance.MarkAttendanceRequest{WorkerID: id, Date: "2024-03-10", Status: "Present"})
		require.NoError(t, err)
	}

	rows, err := env.svc.GetByDate(ctx, "2024-03-10")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Amar", rows[0].Name)
	assert.Equal(t, "Cutter", rows[0].Work)
	assert.Equal(t, "Day", rows[0].Shift)
	assert.Equal(t, "Zoya", rows[1].Name)

	empty, err := env.svc.GetByDate(ctx, "2024-03-11")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = env.svc.GetByDate(ctx, "10-03-2024")
	var validationErrs validator.ValidationErrors
	assert.True(t, errors.As(err, &validationErrs))
}

func TestGetByWorker_Filters(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	w := env.addWorker(t, "Deepa")

	for _, date := range []string{"2023-12-31", "2024-02-10", "2024-03-01", "2024-03-15"} {
		_, err := env.svc.MarkAttendance(ctx, attendance.MarkAttendanceRequest{WorkerID: w.ID, Date: date, Status: "Present"})
		require.NoError(t, err)
	}

	all, err := env.svc.GetByWorker(ctx, w.ID, attendance.AttendanceQuery{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "2024-03-15", all[0].Date)
	assert.Equal(t, "2023-12-31", all[3].Date)

	march, err := env.svc.GetByWorker(ctx, w.ID, attendance.AttendanceQuery{Month: "3", Year: "2024"})
	require.NoError(t, err)
	assert.Len(t, march, 2)

	year, err := env.svc.GetByWorkerRange(ctx, w.ID, "2024")
	require.NoError(t, err)
	assert.Len(t, year, 3)

	none, err := env.svc.GetByWorker(ctx, w.ID, attendance.AttendanceQuery{Month: "06", Year: "2024"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	_, err = env.svc.GetByWorker(ctx, "missing", attendance.AttendanceQuery{})
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)

	_, err = env.svc.GetByWorker(ctx, w.ID, attendance.AttendanceQuery{Month: "13", Year: "2024"})
	var validationErrs validator.ValidationErrors
	assert.True(t, errors.As(err, &validationErrs))
}

func TestDeleteAttendance(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	w := env.addWorker(t, "Farhan")

	saved, err := env.svc.MarkAttendance(ctx, attendance.MarkAttendanceRequest{WorkerID: w.ID, Date: "2024-03-01", Status: "Present"})
	require.NoError(t, err)

	require.NoError(t, env.svc.DeleteAttendance(ctx, saved.ID))
	assert.ErrorIs(t, env.svc.DeleteAttendance(ctx, saved.ID), attendance.ErrAttendanceNotFound)
}
