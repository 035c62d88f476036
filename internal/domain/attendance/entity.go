package attendance

import "time"

type Attendance struct {
	ID         string
	UserID     string
	Date       time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time
	TotalHours *float64
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	UserName        *string
	UserEmail       *string
	UserDesignation *string
}

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
	StatusLeave   Status = "LEAVE"
)

// StatusCount is the per-status aggregate used by the stats endpoint.
type StatusCount struct {
	Status Status `json:"status"`
	Count  int    `json:"count"`
}
