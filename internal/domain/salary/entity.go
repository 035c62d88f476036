package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is the computed salary for one employee and one (month, year).
// Unique per (user, month, year); recomputation overwrites the computed
// fields and leaves Status untouched.
type Record struct {
	ID              string
	UserID          string
	Month           int
	Year            int
	Base            decimal.Decimal
	WorkingDays     int
	PresentDays     int
	LeaveDays       int
	AbsentDays      int
	PerDay          decimal.Decimal
	TotalDeductions decimal.Decimal
	Breakdown       Breakdown
	FinalNet        decimal.Decimal
	Status          Status
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	UserName        *string
	UserEmail       *string
	UserDesignation *string
	UserDepartment  *string
}

// Breakdown itemizes the deduction components. Stored as JSONB.
type Breakdown struct {
	AbsenceDeduction decimal.Decimal `json:"absenceDeduction"`
	TaxDeduction     decimal.Decimal `json:"taxDeduction"`
	PFDeduction      decimal.Decimal `json:"pfDeduction"`
	MiscDeductions   decimal.Decimal `json:"miscDeductions"`
}

type Status string

const (
	StatusDraft    Status = "DRAFT"
	StatusApproved Status = "APPROVED"
	StatusPaid     Status = "PAID"
)

func (s Status) Valid() bool {
	return s == StatusDraft || s == StatusApproved || s == StatusPaid
}

// YearStats aggregates a user's salary records over one year.
type YearStats struct {
	TotalEarned     decimal.Decimal `json:"totalEarned"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`
	AvgSalary       decimal.Decimal `json:"avgSalary"`
}
