package attendance

import "errors"

var (
	ErrAlreadyPunchedIn  = errors.New("already punched in today")
	ErrAlreadyPunchedOut = errors.New("already punched out")
	ErrNoPunchInRecord   = errors.New("no punch in record found for today")
	ErrRecordNotFound    = errors.New("attendance record not found")
)
