package leave

import "time"

type Leave struct {
	ID              string
	UserID          string
	From            time.Time
	To              time.Time
	Reason          string
	Days            int
	Type            Type
	Status          Status
	ApprovedBy      *string
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	UserName        *string
	UserEmail       *string
	UserDesignation *string
	ApproverName    *string
}

type Type string

const (
	TypeSick   Type = "SICK"
	TypeCasual Type = "CASUAL"
	TypeEarned Type = "EARNED"
)

func (t Type) Valid() bool {
	return t == TypeSick || t == TypeCasual || t == TypeEarned
}

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// StatusCount is the per-status aggregate used by the stats endpoint.
type StatusCount struct {
	Status Status `json:"status"`
	Count  int    `json:"count"`
}
