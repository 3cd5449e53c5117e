package http

import (
	"net/http"

	"github.com/cmlabs-hris/factory-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/factory-attendance-go/internal/domain/report"
	"github.com/cmlabs-hris/factory-attendance-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	// Monthly attendance report across the roster
	GetMonthlyReport(w http.ResponseWriter, r *http.Request)

	// Individual worker view with stats
	GetWorkerReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// GetMonthlyReport handles GET /api/attendance/report
func (h *reportHandlerImpl) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	req := report.MonthlyReportRequest{
		Month: r.URL.Query().Get("month"),
		Year:  r.URL.Query().Get("year"),
	}

	result, err := h.reportService.BuildMonthlyReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetWorkerReport handles GET /api/attendance/worker/{workerId}/report
func (h *reportHandlerImpl) GetWorkerReport(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "workerId")
	query := attendance.AttendanceQuery{
		Month: r.URL.Query().Get("month"),
		Year:  r.URL.Query().Get("year"),
	}

	result, err := h.reportService.BuildWorkerStats(r.Context(), workerID, query)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
