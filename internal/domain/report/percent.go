package report

import "github.com/shopspring/decimal"

var (
	halfWeight = decimal.NewFromFloat(0.5)
	hundred    = decimal.NewFromInt(100)
)

// AttendancePercent is (present + 0.5*halfDays) / totalMarked * 100 rounded to
// one decimal. Absent and leave days weigh zero. Nil means not applicable.
func AttendancePercent(present, halfDays, totalMarked int) *float64 {
	if totalMarked <= 0 {
		return nil
	}
	weighted := decimal.NewFromInt(int64(present)).Add(halfWeight.Mul(decimal.NewFromInt(int64(halfDays))))
	pct, _ := weighted.Mul(hundred).Div(decimal.NewFromInt(int64(totalMarked))).Round(1).Float64()
	return &pct
}
