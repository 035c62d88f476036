package leave

import "errors"

var (
	ErrLeaveNotFound    = errors.New("leave request not found")
	ErrInvalidDateRange = errors.New("leave end date is before start date")
	ErrInvalidStatus    = errors.New("invalid leave status")
	ErrAlreadyProcessed = errors.New("leave request already processed")
)
