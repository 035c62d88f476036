package leave

import (
	"context"

	"github.com/UserShri98/employee-system/internal/domain/leave"
	"github.com/UserShri98/employee-system/internal/domain/user"
	"github.com/UserShri98/employee-system/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leaveRepo leave.LeaveRepository
	userRepo  user.UserRepository
}

func NewLeaveService(leaveRepo leave.LeaveRepository, userRepo user.UserRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRepo: leaveRepo,
		userRepo:  userRepo,
	}
}

func (s *LeaveServiceImpl) Apply(ctx context.Context, userID string, req leave.ApplyLeaveRequest) (leave.ApplyLeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.ApplyLeaveResponse{}, err
	}

	from, _ := validator.IsValidDate(req.From)
	to, _ := validator.IsValidDate(req.To)

	leaveType := leave.TypeCasual
	if req.LeaveType != nil {
		leaveType = leave.Type(*req.LeaveType)
	}

	// Inclusive calendar span; a single-day leave counts as one day.
	days := int(to.Sub(from).Hours()/24) + 1

	created, err := s.leaveRepo.Create(ctx, leave.Leave{
		UserID: userID,
		From:   from,
		To:     to,
		Reason: req.Reason,
		Days:   days,
		Type:   leaveType,
		Status: leave.StatusPending,
	})
	if err != nil {
		return leave.ApplyLeaveResponse{}, err
	}

	return leave.ApplyLeaveResponse{
		Message: "Leave request submitted",
		Leave:   leave.ToResponse(created),
	}, nil
}

func (s *LeaveServiceImpl) MyLeaves(ctx context.Context, userID string) ([]leave.LeaveResponse, error) {
	leaves, err := s.leaveRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return leave.ToResponses(leaves), nil
}

// TeamLeaves returns the lead's own requests plus those of direct reports.
func (s *LeaveServiceImpl) TeamLeaves(ctx context.Context, leadID string) ([]leave.LeaveResponse, error) {
	memberIDs, err := s.userRepo.ListIDsByManager(ctx, leadID)
	if err != nil {
		return nil, err
	}
	memberIDs = append(memberIDs, leadID)

	leaves, err := s.leaveRepo.ListByUsers(ctx, memberIDs)
	if err != nil {
		return nil, err
	}
	return leave.ToResponses(leaves), nil
}

func (s *LeaveServiceImpl) AllLeaves(ctx context.Context) ([]leave.LeaveResponse, error) {
	leaves, err := s.leaveRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return leave.ToResponses(leaves), nil
}

func (s *LeaveServiceImpl) UpdateStatus(ctx context.Context, approverID string, req leave.UpdateStatusRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	var rejectionReason *string
	if req.Status == string(leave.StatusRejected) {
		rejectionReason = req.RejectionReason
	}

	updated, err := s.leaveRepo.UpdateStatus(ctx, req.ID, leave.Status(req.Status), approverID, rejectionReason)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return leave.ToResponse(updated), nil
}

func (s *LeaveServiceImpl) Stats(ctx context.Context, userID string) ([]leave.StatusCount, error) {
	return s.leaveRepo.CountByStatus(ctx, userID)
}
