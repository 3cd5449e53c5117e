package worker

import "time"

type Worker struct {
	ID               string
	Name             string
	Phone            string
	Gender           Gender
	JoinDate         string
	Work             string
	Address          string
	Salary           string
	Shift            string
	Reference        string
	EmergencyContact string
	IDProof          string
	IDNumber         string
	Notes            string
	Photo            *string // data URI
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
	Other  Gender = "Other"
)

func (g Gender) IsValid() bool {
	switch g {
	case Male, Female, Other:
		return true
	}
	return false
}

// Defaults applied to optional fields left blank.
const (
	DefaultSalary      = "Not specified"
	DefaultShift       = "Not specified"
	DefaultNotProvided = "Not provided"
	DefaultNotes       = "None"
)
