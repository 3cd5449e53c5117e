package attendance

import (
	"strings"

	"github.com/cmlabs-hris/factory-attendance-go/internal/pkg/validator"
)

// Period selects attendance dates by string prefix: "YYYY-MM" for a month,
// "YYYY" for a whole year, or everything when Year is empty.
type Period struct {
	Year  string
	Month string // zero-padded, empty for a whole year
}

// NewPeriod validates and normalizes optional month/year query values.
// A month without a year selects everything.
func NewPeriod(month, year string) (Period, error) {
	var errs validator.ValidationErrors
	month = strings.TrimSpace(month)
	year = strings.TrimSpace(year)

	if year == "" {
		return Period{}, nil
	}
	if !validator.IsValidYear(year) {
		errs.Add("year", "year must be a four-digit number")
	}

	var mm string
	if month != "" {
		var ok bool
		if mm, ok = validator.NormalizeMonth(month); !ok {
			errs.Add("month", "month must be between 1 and 12")
		}
	}

	if err := errs.Err(); err != nil {
		return Period{}, err
	}
	return Period{Year: year, Month: mm}, nil
}

// MonthPeriod is NewPeriod with both values required.
func MonthPeriod(month, year string) (Period, error) {
	var errs validator.ValidationErrors
	errs.Required("month", month)
	errs.Required("year", year)
	if err := errs.Err(); err != nil {
		return Period{}, err
	}
	return NewPeriod(month, year)
}

func (p Period) Prefix() string {
	if p.Year == "" {
		return ""
	}
	if p.Month == "" {
		return p.Year
	}
	return p.Year + "-" + p.Month
}

func (p Period) Matches(date string) bool {
	return strings.HasPrefix(date, p.Prefix())
}
