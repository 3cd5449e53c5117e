package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cmlabs-hris/factory-attendance-go/internal/handler/http/response"
	"github.com/cmlabs-hris/factory-attendance-go/internal/repository/memory"
	attendanceService "github.com/cmlabs-hris/factory-attendance-go/internal/service/attendance"
	reportService "github.com/cmlabs-hris/factory-attendance-go/internal/service/report"
	workerService "github.com/cmlabs-hris/factory-attendance-go/internal/service/worker"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, ping PingFunc) *chi.Mux {
	t.Helper()
	store := memory.NewStore()
	workerRepo := memory.NewWorkerRepository(store)
	attendanceRepo := memory.NewAttendanceRepository(store)

	return NewRouter(
		RouterOptions{
			AllowedOrigins: []string{"http://localhost:3000"},
			Env:            "test",
			LogLevel:       slog.LevelError,
			MaxBodyBytes:   1 << 20,
		},
		NewHealthHandler("memory", ping),
		NewWorkerHandler(workerService.NewWorkerService(workerRepo)),
		NewAttendanceHandler(attendanceService.NewAttendanceService(attendanceRepo, workerRepo, 2)),
		NewReportHandler(reportService.NewReportService(workerRepo, attendanceRepo)),
	)
}

type envelope struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Data    json.RawMessage       `json:"data"`
	Error   *response.ErrorDetail `json:"error"`
	Meta    *response.Meta        `json:"meta"`
}

func do(t *testing.T, router http.Handler, method, path string, body any) (int, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	return rec.Code, env
}

func decodeData(t *testing.T, env envelope, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, dst))
}

func createWorker(t *testing.T, router http.Handler, name string) string {
	t.Helper()
	code, env := do(t, router, http.MethodPost, "/api/workers", map[string]any{
		"name": name, "phone": "9876543210", "gender": "Male", "joinDate": "2023-04-01",
		"work": "Welder", "address": "Shed 2", "shift": "Day",
	})
	require.Equal(t, http.StatusCreated, code)
	var created struct {
		ID string `json:"id"`
	}
	decodeData(t, env, &created)
	require.NotEmpty(t, created.ID)
	return created.ID
}

func TestWorkerRoutes(t *testing.T) {
	router := newTestRouter(t, nil)
	id := createWorker(t, router, "Ramesh")

	code, env := do(t, router, http.MethodGet, "/api/workers/"+id, nil)
	require.Equal(t, http.StatusOK, code)
	var got map[string]any
	decodeData(t, env, &got)
	assert.Equal(t, "Ramesh", got["name"])
	assert.Equal(t, "Not specified", got["salary"])
	assert.Equal(t, "None", got["notes"])

	code, env = do(t, router, http.MethodGet, "/api/workers", nil)
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 1, env.Meta.TotalItems)

	code, _ = do(t, router, http.MethodPut, "/api/workers/"+id, map[string]any{
		"name": "Ramesh K", "phone": "9876543210", "gender": "Male", "joinDate": "2023-04-01",
		"work": "Senior Welder", "address": "Shed 2",
	})
	assert.Equal(t, http.StatusOK, code)

	code, env = do(t, router, http.MethodPut, "/api/workers/missing", map[string]any{
		"name": "X", "phone": "1", "gender": "Other", "joinDate": "2023-04-01", "work": "W", "address": "A",
	})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)

	code, _ = do(t, router, http.MethodDelete, "/api/workers/"+id, nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = do(t, router, http.MethodGet, "/api/workers/"+id, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestCreateWorker_ValidationError(t *testing.T) {
	router := newTestRouter(t, nil)

	code, env := do(t, router, http.MethodPost, "/api/workers", map[string]any{"name": "Only Name", "gender": "Unknown"})

	assert.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Details, "phone")
	assert.Contains(t, env.Error.Details, "gender")
}

func TestCreateWorker_MalformedBody(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/workers", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateWorker_BodyTooLarge(t *testing.T) {
	router := newTestRouter(t, nil)
	photo := "data:image/png;base64," + strings.Repeat("A", 2<<20)

	code, env := do(t, router, http.MethodPost, "/api/workers", map[string]any{"name": "Big", "photo": photo})

	assert.Equal(t, http.StatusRequestEntityTooLarge, code)
	assert.Equal(t, "REQUEST_TOO_LARGE", env.Error.Code)
}

func TestAttendanceFlow(t *testing.T) {
	router := newTestRouter(t, nil)
	id := createWorker(t, router, "Lakshmi")

	marks := []map[string]any{
		{"workerId": id, "date": "2024-03-01", "status": "Present", "shiftType": "Day Shift"},
		{"workerId": id, "date": "2024-03-02", "status": "Absent"},
		{"workerId": id, "date": "2024-03-03", "status": "Half Day"},
	}
	for _, m := range marks {
		code, _ := do(t, router, http.MethodPost, "/api/attendance", m)
		require.Equal(t, http.StatusOK, code)
	}

	code, env := do(t, router, http.MethodGet, "/api/attendance/date/2024-03-01", nil)
	require.Equal(t, http.StatusOK, code)
	var daily []map[string]any
	decodeData(t, env, &daily)
	require.Len(t, daily, 1)
	assert.Equal(t, "Lakshmi", daily[0]["name"])
	assert.Equal(t, "Day Shift", daily[0]["shiftType"])

	code, env = do(t, router, http.MethodGet, "/api/attendance/worker/"+id+"?month=03&year=2024", nil)
	require.Equal(t, http.StatusOK, code)
	var rows []map[string]any
	decodeData(t, env, &rows)
	assert.Len(t, rows, 3)

	code, env = do(t, router, http.MethodGet, "/api/attendance/worker/"+id+"/report?month=3&year=2024", nil)
	require.Equal(t, http.StatusOK, code)
	var workerReport struct {
		Stats struct {
			Total             int      `json:"total"`
			Present           int      `json:"present"`
			Absent            int      `json:"absent"`
			HalfDay           int      `json:"halfDay"`
			Leave             int      `json:"leave"`
			AttendancePercent *float64 `json:"attendancePercent"`
		} `json:"stats"`
	}
	decodeData(t, env, &workerReport)
	assert.Equal(t, 3, workerReport.Stats.Total)
	assert.Equal(t, 1, workerReport.Stats.Present)
	assert.Equal(t, 1, workerReport.Stats.Absent)
	assert.Equal(t, 1, workerReport.Stats.HalfDay)
	assert.Equal(t, 0, workerReport.Stats.Leave)

	code, env = do(t, router, http.MethodGet, "/api/attendance/report?month=03&year=2024", nil)
	require.Equal(t, http.StatusOK, code)
	var monthly struct {
		Month string `json:"month"`
		Rows  []struct {
			ID                string   `json:"id"`
			TotalMarked       int      `json:"totalMarked"`
			AttendancePercent *float64 `json:"attendancePercent"`
		} `json:"report"`
	}
	decodeData(t, env, &monthly)
	assert.Equal(t, "03", monthly.Month)
	require.Len(t, monthly.Rows, 1)
	assert.Equal(t, id, monthly.Rows[0].ID)
	assert.Equal(t, 3, monthly.Rows[0].TotalMarked)
	require.NotNil(t, monthly.Rows[0].AttendancePercent)
	assert.Equal(t, 50.0, *monthly.Rows[0].AttendancePercent)
}

func TestMonthlyReport_MissingParams(t *testing.T) {
	router := newTestRouter(t, nil)

	for _, path := range []string{"/api/attendance/report", "/api/attendance/report?month=03", "/api/attendance/report?year=2024"} {
		code, env := do(t, router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, code, path)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code, path)
	}
}

func TestMarkAttendance_Errors(t *testing.T) {
	router := newTestRouter(t, nil)

	code, env := do(t, router, http.MethodPost, "/api/attendance", map[string]any{"workerId": "ghost", "date": "2024-03-01", "status": "Present"})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)

	id := createWorker(t, router, "Vikram")
	code, env = do(t, router, http.MethodPost, "/api/attendance", map[string]any{"workerId": id, "date": "2024-03-01", "status": "Late"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Error.Details, "status")
}

func TestMarkBatch(t *testing.T) {
	router := newTestRouter(t, nil)
	id := createWorker(t, router, "Pooja")

	code, env := do(t, router, http.MethodPost, "/api/attendance/batch", map[string]any{
		"records": []map[string]any{
			{"workerId": id, "date": "2024-03-01", "status": "Present"},
			{"workerId": "ghost", "date": "2024-03-01", "status": "Present"},
		},
	})
	require.Equal(t, http.StatusOK, code)
	var result struct {
		Total     int `json:"total"`
		Succeeded int `json:"succeeded"`
		Failed    int `json:"failed"`
	}
	decodeData(t, env, &result)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 1, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
}

func TestDeleteAttendance_Routes(t *testing.T) {
	router := newTestRouter(t, nil)
	id := createWorker(t, router, "Gita")

	code, env := do(t, router, http.MethodPost, "/api/attendance", map[string]any{"workerId": id, "date": "2024-03-01", "status": "Leave"})
	require.Equal(t, http.StatusOK, code)
	var saved struct {
		ID string `json:"id"`
	}
	decodeData(t, env, &saved)

	code, _ = do(t, router, http.MethodDelete, "/api/attendance/"+saved.ID, nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = do(t, router, http.MethodDelete, "/api/attendance/"+saved.ID, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestHealth(t *testing.T) {
	code, env := do(t, newTestRouter(t, nil), http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, code)
	var status HealthStatus
	decodeData(t, env, &status)
	assert.Equal(t, "OK", status.Status)
	assert.Equal(t, "memory", status.Store)

	failing := func(context.Context) error { return errors.New("dial tcp: connection refused") }
	code, env = do(t, newTestRouter(t, failing), http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "STORE_UNAVAILABLE", env.Error.Code)
	assert.Equal(t, "Record store unreachable", env.Error.Message)
	assert.NotContains(t, env.Error.Message, "dial tcp")
}

func TestCreateWorker_NumericSalary(t *testing.T) {
	router := newTestRouter(t, nil)

	code, env := do(t, router, http.MethodPost, "/api/workers", map[string]any{
		"name": "Harish", "phone": "9876543210", "gender": "Male", "joinDate": "2023-04-01",
		"work": "Fitter", "address": "Shed 5", "salary": 15000,
	})
	require.Equal(t, http.StatusCreated, code)
	var created struct {
		ID     string `json:"id"`
		Salary string `json:"salary"`
	}
	decodeData(t, env, &created)
	assert.Equal(t, "15000", created.Salary)

	code, env = do(t, router, http.MethodPut, "/api/workers/"+created.ID, map[string]any{
		"name": "Harish", "phone": "9876543210", "gender": "Male", "joinDate": "2023-04-01",
		"work": "Fitter", "address": "Shed 5", "salary": 17500.5,
	})
	require.Equal(t, http.StatusOK, code)
	decodeData(t, env, &created)
	assert.Equal(t, "17500.5", created.Salary)
}
