package response

import (
	"errors"
	"net/http"

	"github.com/UserShri98/employee-system/internal/domain/attendance"
	"github.com/UserShri98/employee-system/internal/domain/auth"
	"github.com/UserShri98/employee-system/internal/domain/holiday"
	"github.com/UserShri98/employee-system/internal/domain/leave"
	"github.com/UserShri98/employee-system/internal/domain/salary"
	"github.com/UserShri98/employee-system/internal/domain/user"
	"github.com/UserShri98/employee-system/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		BadRequest(w, "Email already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyPunchedIn):
		BadRequest(w, "Already punched in today")
	case errors.Is(err, attendance.ErrAlreadyPunchedOut):
		BadRequest(w, "Already punched out")
	case errors.Is(err, attendance.ErrNoPunchInRecord):
		BadRequest(w, "No punch in record found for today")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "Invalid leave date range")
	case errors.Is(err, leave.ErrInvalidStatus):
		BadRequest(w, "Invalid leave status")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")

	// Salary domain errors
	case errors.Is(err, salary.ErrInvalidPeriod):
		BadRequest(w, "Invalid month or year")
	case errors.Is(err, salary.ErrRecordNotFound):
		NotFound(w, "Salary record not found")
	case errors.Is(err, salary.ErrInvalidStatus):
		BadRequest(w, "Invalid salary status")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
