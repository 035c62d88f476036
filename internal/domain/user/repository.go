package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ListByRole(ctx context.Context, role Role) ([]User, error)
	ListActive(ctx context.Context) ([]User, error)
	ListIDsByManager(ctx context.Context, managerID string) ([]string, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (User, error)
	Delete(ctx context.Context, id string) error
}

type EmployeeService interface {
	List(ctx context.Context) ([]UserResponse, error)
	ListLeads(ctx context.Context) ([]UserResponse, error)
	Get(ctx context.Context, id string) (UserResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (UserResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (UserResponse, error)
	Delete(ctx context.Context, id string) error
}
