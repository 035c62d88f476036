package user

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Phone        *string
	Designation  *string
	Department   *string
	Role         Role
	ManagerID    *string
	Salary       decimal.Decimal
	JoiningDate  *time.Time
	Address      *string
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Role string

const (
	RoleOwner    Role = "OWNER"
	RoleLead     Role = "LEAD"
	RoleEmployee Role = "EMPLOYEE"
)

func (r Role) Valid() bool {
	return r == RoleOwner || r == RoleLead || r == RoleEmployee
}

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)
