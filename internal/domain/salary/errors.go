package salary

import "errors"

var (
	ErrInvalidPeriod  = errors.New("invalid month or year")
	ErrRecordNotFound = errors.New("salary record not found")
	ErrInvalidStatus  = errors.New("invalid salary status")
)
