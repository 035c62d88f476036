package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, l Leave) (Leave, error)
	ListByUser(ctx context.Context, userID string) ([]Leave, error)
	ListByUsers(ctx context.Context, userIDs []string) ([]Leave, error)
	ListAll(ctx context.Context) ([]Leave, error)
	// ListApprovedOverlapping returns APPROVED requests whose [from, to]
	// interval overlaps [periodStart, periodEnd].
	ListApprovedOverlapping(ctx context.Context, userID string, periodStart, periodEnd time.Time) ([]Leave, error)
	UpdateStatus(ctx context.Context, id string, status Status, approvedBy string, rejectionReason *string) (Leave, error)
	CountByStatus(ctx context.Context, userID string) ([]StatusCount, error)
}

type LeaveService interface {
	Apply(ctx context.Context, userID string, req ApplyLeaveRequest) (ApplyLeaveResponse, error)
	MyLeaves(ctx context.Context, userID string) ([]LeaveResponse, error)
	TeamLeaves(ctx context.Context, leadID string) ([]LeaveResponse, error)
	AllLeaves(ctx context.Context) ([]LeaveResponse, error)
	UpdateStatus(ctx context.Context, approverID string, req UpdateStatusRequest) (LeaveResponse, error)
	Stats(ctx context.Context, userID string) ([]StatusCount, error)
}
