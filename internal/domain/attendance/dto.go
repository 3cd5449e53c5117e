package attendance

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/factory-attendance-go/internal/pkg/validator"
)

type MarkAttendanceRequest struct {
	WorkerID  string `json:"workerId"`
	Date      string `json:"date"`
	Status    string `json:"status"`
	ShiftType string `json:"shiftType"`
	Notes     string `json:"notes"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("workerId", r.WorkerID)
	errs.Required("date", r.Date)
	errs.Required("status", r.Status)

	if !validator.IsEmpty(r.Date) {
		if _, ok := validator.IsValidDate(strings.TrimSpace(r.Date)); !ok {
			errs.Add("date", "date must be in YYYY-MM-DD format")
		}
	}

	if !validator.IsEmpty(r.Status) {
		if _, ok := ParseStatus(r.Status); !ok {
			errs.Add("status", "status must be one of: Present, Absent, Half Day, Leave")
		}
	}

	return errs.Err()
}

// ToAttendance assumes Validate passed. Omitted shiftType and notes become "".
func (r *MarkAttendanceRequest) ToAttendance() Attendance {
	status, _ := ParseStatus(r.Status)
	return Attendance{
		WorkerID:  strings.TrimSpace(r.WorkerID),
		Date:      strings.TrimSpace(r.Date),
		Status:    status,
		ShiftType: strings.TrimSpace(r.ShiftType),
		Notes:     strings.TrimSpace(r.Notes),
	}
}

type BatchMarkRequest struct {
	Records []MarkAttendanceRequest `json:"records"`
}

func (r *BatchMarkRequest) Validate() error {
	if len(r.Records) == 0 {
		return validator.ValidationErrors{{
			Field:   "records",
			Message: "records must contain at least one attendance mark",
		}}
	}
	return nil
}

type BatchMarkResponse struct {
	Total     int                  `json:"total"`
	Succeeded int                  `json:"succeeded"`
	Failed    int                  `json:"failed"`
	Results   []AttendanceResponse `json:"results"`
	Errors    []BatchItemError     `json:"errors,omitempty"`
}

type BatchItemError struct {
	Index    int    `json:"index"`
	WorkerID string `json:"workerId"`
	Date     string `json:"date"`
	Message  string `json:"message"`
}

// AttendanceQuery carries the optional month/year filters of a worker query.
type AttendanceQuery struct {
	Month string `json:"month,omitempty"`
	Year  string `json:"year,omitempty"`
}

type AttendanceResponse struct {
	ID        string `json:"id"`
	WorkerID  string `json:"workerId"`
	Date      string `json:"date"`
	Status    string `json:"status"`
	ShiftType string `json:"shiftType"`
	Notes     string `json:"notes"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type DailyAttendanceResponse struct {
	AttendanceResponse
	Name  string `json:"name"`
	Work  string `json:"work"`
	Shift string `json:"shift"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:        a.ID,
		WorkerID:  a.WorkerID,
		Date:      a.Date,
		Status:    string(a.Status),
		ShiftType: a.ShiftType,
		Notes:     a.Notes,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
		UpdatedAt: a.UpdatedAt.Format(time.RFC3339),
	}
}

func NewAttendanceResponses(records []Attendance) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(records))
	for _, a := range records {
		out = append(out, NewAttendanceResponse(a))
	}
	return out
}

func NewDailyAttendanceResponse(d DailyAttendance) DailyAttendanceResponse {
	return DailyAttendanceResponse{
		AttendanceResponse: NewAttendanceResponse(d.Attendance),
		Name:               d.WorkerName,
		Work:               d.WorkerWork,
		Shift:              d.WorkerShift,
	}
}
