package worker

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/cmlabs-hris/factory-attendance-go/internal/pkg/validator"
)

type CreateWorkerRequest struct {
	Name             string   `json:"name"`
	Phone            string   `json:"phone"`
	Gender           string   `json:"gender"`
	JoinDate         string   `json:"joinDate"`
	Work             string   `json:"work"`
	Address          string   `json:"address"`
	Salary           FlexText `json:"salary"`
	Shift            string   `json:"shift"`
	Reference        string   `json:"reference"`
	EmergencyContact string   `json:"emergencyContact"`
	IDProof          string   `json:"idProof"`
	IDNumber         string   `json:"idNumber"`
	Notes            string   `json:"notes"`
	Photo            *string  `json:"photo"`
}

// FlexText decodes from a JSON string or number. Numbers keep their literal text.
type FlexText string

func (t *FlexText) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = FlexText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*t = FlexText(n.String())
	return nil
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("name", r.Name)
	errs.Required("phone", r.Phone)
	errs.Required("joinDate", r.JoinDate)
	errs.Required("work", r.Work)
	errs.Required("address", r.Address)

	if validator.IsEmpty(r.Gender) {
		errs.Required("gender", r.Gender)
	} else if !Gender(r.Gender).IsValid() {
		errs.Add("gender", "gender must be one of: Male, Female, Other")
	}

	if !validator.IsEmpty(r.JoinDate) {
		if _, ok := validator.IsValidDate(strings.TrimSpace(r.JoinDate)); !ok {
			errs.Add("joinDate", "joinDate must be in YYYY-MM-DD format")
		}
	}

	return errs.Err()
}

// ToWorker trims the required fields and fills in the documented defaults.
func (r *CreateWorkerRequest) ToWorker() Worker {
	return Worker{
		Name:             strings.TrimSpace(r.Name),
		Phone:            strings.TrimSpace(r.Phone),
		Gender:           Gender(r.Gender),
		JoinDate:         strings.TrimSpace(r.JoinDate),
		Work:             strings.TrimSpace(r.Work),
		Address:          strings.TrimSpace(r.Address),
		Salary:           orDefault(string(r.Salary), DefaultSalary),
		Shift:            orDefault(r.Shift, DefaultShift),
		Reference:        orDefault(r.Reference, DefaultNotProvided),
		EmergencyContact: orDefault(r.EmergencyContact, DefaultNotProvided),
		IDProof:          orDefault(r.IDProof, DefaultNotProvided),
		IDNumber:         orDefault(r.IDNumber, DefaultNotProvided),
		Notes:            orDefault(r.Notes, DefaultNotes),
		Photo:            emptyToNil(r.Photo),
	}
}

type UpdateWorkerRequest struct {
	ID string `json:"-"`
	CreateWorkerRequest
}

func (r *UpdateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors
	errs.Required("id", r.ID)
	if err := r.CreateWorkerRequest.Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}
	return errs.Err()
}

type WorkerResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Phone            string  `json:"phone"`
	Gender           string  `json:"gender"`
	JoinDate         string  `json:"joinDate"`
	Work             string  `json:"work"`
	Address          string  `json:"address"`
	Salary           string  `json:"salary"`
	Shift            string  `json:"shift"`
	Reference        string  `json:"reference"`
	EmergencyContact string  `json:"emergencyContact"`
	IDProof          string  `json:"idProof"`
	IDNumber         string  `json:"idNumber"`
	Notes            string  `json:"notes"`
	Photo            *string `json:"photo"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

func NewWorkerResponse(w Worker) WorkerResponse {
	return WorkerResponse{
		ID:               w.ID,
		Name:             w.Name,
		Phone:            w.Phone,
		Gender:           string(w.Gender),
		JoinDate:         w.JoinDate,
		Work:             w.Work,
		Address:          w.Address,
		Salary:           w.Salary,
		Shift:            w.Shift,
		Reference:        w.Reference,
		EmergencyContact: w.EmergencyContact,
		IDProof:          w.IDProof,
		IDNumber:         w.IDNumber,
		Notes:            w.Notes,
		Photo:            w.Photo,
		CreatedAt:        w.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        w.UpdatedAt.Format(time.RFC3339),
	}
}

func orDefault(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
