package employee

import (
	"context"
	"errors"

	"github.com/UserShri98/employee-system/internal/domain/user"
	"github.com/UserShri98/employee-system/internal/pkg/database"
	"github.com/UserShri98/employee-system/internal/pkg/validator"
	"github.com/UserShri98/employee-system/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	db                *database.DB
	userRepo          user.UserRepository
	defaultBaseSalary decimal.Decimal
}

func NewEmployeeService(db *database.DB, userRepo user.UserRepository, defaultBaseSalary decimal.Decimal) user.EmployeeService {
	return &EmployeeServiceImpl{
		db:                db,
		userRepo:          userRepo,
		defaultBaseSalary: defaultBaseSalary,
	}
}

func (s *EmployeeServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	employees, err := s.userRepo.ListByRole(ctx, user.RoleEmployee)
	if err != nil {
		return nil, err
	}
	return user.ToResponses(employees), nil
}

func (s *EmployeeServiceImpl) ListLeads(ctx context.Context) ([]user.UserResponse, error) {
	leads, err := s.userRepo.ListByRole(ctx, user.RoleLead)
	if err != nil {
		return nil, err
	}
	return user.ToResponses(leads), nil
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(u), nil
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req user.CreateEmployeeRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, err
	}

	salary := s.defaultBaseSalary
	if req.Salary != nil && !req.Salary.IsZero() {
		salary = *req.Salary
	}

	u := user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Designation:  req.Designation,
		Department:   req.Department,
		Role:         user.RoleEmployee,
		ManagerID:    req.ManagerID,
		Salary:       salary,
		Address:      req.Address,
		Status:       user.StatusActive,
	}
	if req.JoiningDate != nil {
		if parsed, ok := validator.IsValidDate(*req.JoiningDate); ok {
			u.JoiningDate = &parsed
		}
	}

	// Email check and insert run in one transaction so two concurrent
	// creates cannot both pass the check.
	var created user.User
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if _, err := s.userRepo.GetByEmail(txCtx, req.Email); err == nil {
			return user.ErrEmailExists
		} else if !errors.Is(err, user.ErrUserNotFound) {
			return err
		}

		var createErr error
		created, createErr = s.userRepo.Create(txCtx, u)
		return createErr
	})
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(created), nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, req user.UpdateEmployeeRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	updated, err := s.userRepo.Update(ctx, req)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(updated), nil
}

func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.userRepo.Delete(ctx, id)
}
