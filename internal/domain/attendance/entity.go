package attendance

import "time"

// Attendance is one worker's mark for one calendar date.
// (WorkerID, Date) is unique.
type Attendance struct {
	ID        string
	WorkerID  string
	Date      string // YYYY-MM-DD
	Status    Status
	ShiftType string // meaningful only for Present
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DailyAttendance is an attendance row joined with its worker.
type DailyAttendance struct {
	Attendance
	WorkerName  string
	WorkerWork  string
	WorkerShift string
}

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusHalfDay Status = "Half Day"
	StatusLeave   Status = "Leave"
)

var statuses = []Status{StatusPresent, StatusAbsent, StatusHalfDay, StatusLeave}

func ParseStatus(s string) (Status, bool) {
	for _, st := range statuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}
