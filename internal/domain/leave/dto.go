package leave

import (
	"time"

	"github.com/UserShri98/employee-system/internal/pkg/validator"
)

type ApplyLeaveRequest struct {
	From      string  `json:"from"`
	To        string  `json:"to"`
	Reason    string  `json:"reason"`
	LeaveType *string `json:"leaveType,omitempty"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	from, fromOK := validator.IsValidDate(r.From)
	if !fromOK {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "must be formatted as YYYY-MM-DD"})
	}
	to, toOK := validator.IsValidDate(r.To)
	if !toOK {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "must be formatted as YYYY-MM-DD"})
	}
	if fromOK && toOK && to.Before(from) {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "must not be before 'from'"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}
	if r.LeaveType != nil && !Type(*r.LeaveType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "leaveType", Message: "must be 'SICK', 'CASUAL' or 'EARNED'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	ID              string
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejectionReason,omitempty"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != string(StatusApproved) && r.Status != string(StatusRejected) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'APPROVED' or 'REJECTED'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user"`
	UserName        *string `json:"userName,omitempty"`
	From            string  `json:"from"`
	To              string  `json:"to"`
	Reason          string  `json:"reason"`
	Days            int     `json:"days"`
	LeaveType       string  `json:"leaveType"`
	Status          string  `json:"status"`
	ApprovedBy      *string `json:"approvedBy,omitempty"`
	ApproverName    *string `json:"approverName,omitempty"`
	RejectionReason *string `json:"rejectionReason,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

type ApplyLeaveResponse struct {
	Message string        `json:"message"`
	Leave   LeaveResponse `json:"leave"`
}

func ToResponse(l Leave) LeaveResponse {
	return LeaveResponse{
		ID:              l.ID,
		UserID:          l.UserID,
		UserName:        l.UserName,
		From:            l.From.Format("2006-01-02"),
		To:              l.To.Format("2006-01-02"),
		Reason:          l.Reason,
		Days:            l.Days,
		LeaveType:       string(l.Type),
		Status:          string(l.Status),
		ApprovedBy:      l.ApprovedBy,
		ApproverName:    l.ApproverName,
		RejectionReason: l.RejectionReason,
		CreatedAt:       l.CreatedAt.Format(time.RFC3339),
	}
}

func ToResponses(leaves []Leave) []LeaveResponse {
	result := make([]LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		result = append(result, ToResponse(l))
	}
	return result
}
