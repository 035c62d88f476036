package user

import (
	"time"

	"github.com/UserShri98/employee-system/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Password    string           `json:"password"`
	Phone       *string          `json:"phone,omitempty"`
	Designation *string          `json:"designation,omitempty"`
	Department  *string          `json:"department,omitempty"`
	ManagerID   *string          `json:"managerId,omitempty"`
	Salary      *decimal.Decimal `json:"salary,omitempty"`
	JoiningDate *string          `json:"joiningDate,omitempty"`
	Address     *string          `json:"address,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 6 characters"})
	}
	if r.Salary != nil && r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be non-negative"})
	}
	if r.JoiningDate != nil {
		if _, ok := validator.IsValidDate(*r.JoiningDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "joiningDate", Message: "must be formatted as YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID          string
	Name        *string          `json:"name,omitempty"`
	Phone       *string          `json:"phone,omitempty"`
	Designation *string          `json:"designation,omitempty"`
	Department  *string          `json:"department,omitempty"`
	ManagerID   *string          `json:"managerId,omitempty"`
	Salary      *decimal.Decimal `json:"salary,omitempty"`
	Address     *string          `json:"address,omitempty"`
	Status      *string          `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.Salary != nil && r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be non-negative"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'ACTIVE' or 'INACTIVE'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UserResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       *string         `json:"phone,omitempty"`
	Designation *string         `json:"designation,omitempty"`
	Department  *string         `json:"department,omitempty"`
	Role        string          `json:"role"`
	ManagerID   *string         `json:"managerId,omitempty"`
	Salary      decimal.Decimal `json:"salary"`
	JoiningDate *string         `json:"joiningDate,omitempty"`
	Address     *string         `json:"address,omitempty"`
	Status      string          `json:"status"`
	CreatedAt   string          `json:"createdAt"`
}

func ToResponse(u User) UserResponse {
	var joiningDate *string
	if u.JoiningDate != nil {
		str := u.JoiningDate.Format("2006-01-02")
		joiningDate = &str
	}

	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Phone:       u.Phone,
		Designation: u.Designation,
		Department:  u.Department,
		Role:        string(u.Role),
		ManagerID:   u.ManagerID,
		Salary:      u.Salary,
		JoiningDate: joiningDate,
		Address:     u.Address,
		Status:      string(u.Status),
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
	}
}

func ToResponses(users []User) []UserResponse {
	result := make([]UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, ToResponse(u))
	}
	return result
}
