package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

type BreakdownResponse struct {
	AbsenceDeduction decimal.Decimal `json:"absenceDeduction"`
	TaxDeduction     decimal.Decimal `json:"taxDeduction"`
	PFDeduction      decimal.Decimal `json:"pfDeduction"`
	MiscDeductions   decimal.Decimal `json:"miscDeductions"`
}

type RecordResponse struct {
	ID          string            `json:"id"`
	UserID      string            `json:"user"`
	UserName    *string           `json:"userName,omitempty"`
	UserEmail   *string           `json:"userEmail,omitempty"`
	Month       int               `json:"month"`
	Year        int               `json:"year"`
	Base        decimal.Decimal   `json:"base"`
	WorkingDays int               `json:"workingDays"`
	PresentDays int               `json:"presentDays"`
	LeaveTaken  int               `json:"leaveTaken"`
	AbsentDays  int               `json:"absentDays"`
	PerDay      decimal.Decimal   `json:"perDay"`
	Deductions  decimal.Decimal   `json:"deductions"`
	Breakdown   BreakdownResponse `json:"breakdown"`
	Final       decimal.Decimal   `json:"final"`
	Status      string            `json:"status"`
	CreatedAt   string            `json:"createdAt"`
	UpdatedAt   string            `json:"updatedAt"`
}

// ListFilter narrows salary queries. Month and Year go together; a month
// filter without a year is ignored.
type ListFilter struct {
	UserID *string
	Month  *int
	Year   *int
}

func ToResponse(r Record) RecordResponse {
	return RecordResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		UserName:    r.UserName,
		UserEmail:   r.UserEmail,
		Month:       r.Month,
		Year:        r.Year,
		Base:        r.Base,
		WorkingDays: r.WorkingDays,
		PresentDays: r.PresentDays,
		LeaveTaken:  r.LeaveDays,
		AbsentDays:  r.AbsentDays,
		PerDay:      r.PerDay,
		Deductions:  r.TotalDeductions,
		Breakdown: BreakdownResponse{
			AbsenceDeduction: r.Breakdown.AbsenceDeduction,
			TaxDeduction:     r.Breakdown.TaxDeduction,
			PFDeduction:      r.Breakdown.PFDeduction,
			MiscDeductions:   r.Breakdown.MiscDeductions,
		},
		Final:     r.FinalNet,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
		UpdatedAt: r.UpdatedAt.Format(time.RFC3339),
	}
}

func ToResponses(records []Record) []RecordResponse {
	result := make([]RecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, ToResponse(r))
	}
	return result
}
