package leave

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/UserShri98/employee-system/internal/domain/leave"
	"github.com/UserShri98/employee-system/internal/domain/user"
	"github.com/UserShri98/employee-system/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveRepo struct {
	leaves map[string]leave.Leave
	seq    int
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{leaves: map[string]leave.Leave{}}
}

func (r *fakeLeaveRepo) Create(_ context.Context, l leave.Leave) (leave.Leave, error) {
	r.seq++
	l.ID = fmt.Sprintf("lv-%d", r.seq)
	r.leaves[l.ID] = l
	return l, nil
}

func (r *fakeLeaveRepo) ListByUser(_ context.Context, userID string) ([]leave.Leave, error) {
	var out []leave.Leave
	for _, l := range r.leaves {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLeaveRepo) ListByUsers(_ context.Context, userIDs []string) ([]leave.Leave, error) {
	var out []leave.Leave
	for _, l := range r.leaves {
		for _, id := range userIDs {
			if l.UserID == id {
				out = append(out, l)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeLeaveRepo) ListAll(_ context.Context) ([]leave.Leave, error) {
	var out []leave.Leave
	for _, l := range r.leaves {
		out = append(out, l)
	}
	return out, nil
}

func (r *fakeLeaveRepo) ListApprovedOverlapping(_ context.Context, _ string, _, _ time.Time) ([]leave.Leave, error) {
	return nil, nil
}

func (r *fakeLeaveRepo) UpdateStatus(_ context.Context, id string, status leave.Status, approvedBy string, rejectionReason *string) (leave.Leave, error) {
	l, ok := r.leaves[id]
	if !ok {
		return leave.Leave{}, leave.ErrLeaveNotFound
	}
	l.Status = status
	l.ApprovedBy = &approvedBy
	l.RejectionReason = rejectionReason
	r.leaves[id] = l
	return l, nil
}

func (r *fakeLeaveRepo) CountByStatus(_ context.Context, _ string) ([]leave.StatusCount, error) {
	return nil, nil
}

type stubUserRepo struct {
	reports map[string][]string
}

func (r *stubUserRepo) Create(_ context.Context, u user.User) (user.User, error) { return u, nil }

func (r *stubUserRepo) GetByID(_ context.Context, _ string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (r *stubUserRepo) GetByEmail(_ context.Context, _ string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (r *stubUserRepo) ListByRole(_ context.Context, _ user.Role) ([]user.User, error) {
	return nil, nil
}

func (r *stubUserRepo) ListActive(_ context.Context) ([]user.User, error) { return nil, nil }

func (r *stubUserRepo) ListIDsByManager(_ context.Context, managerID string) ([]string, error) {
	return r.reports[managerID], nil
}

func (r *stubUserRepo) Update(_ context.Context, _ user.UpdateEmployeeRequest) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (r *stubUserRepo) Delete(_ context.Context, _ string) error { return nil }

func newTestService(repo *fakeLeaveRepo, users *stubUserRepo) leave.LeaveService {
	if users == nil {
		users = &stubUserRepo{}
	}
	return NewLeaveService(repo, users)
}

func TestApplyComputesInclusiveDays(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newTestService(repo, nil)

	resp, err := svc.Apply(context.Background(), "u1", leave.ApplyLeaveRequest{
		From:   "2026-01-05",
		To:     "2026-01-09",
		Reason: "Family function",
	})
	require.NoError(t, err)

	assert.Equal(t, 5, resp.Leave.Days)
	assert.Equal(t, "PENDING", resp.Leave.Status)
	assert.Equal(t, "CASUAL", resp.Leave.LeaveType)
}

func TestApplySingleDay(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newTestService(repo, nil)

	sick := "SICK"
	resp, err := svc.Apply(context.Background(), "u1", leave.ApplyLeaveRequest{
		From:      "2026-01-07",
		To:        "2026-01-07",
		Reason:    "Fever",
		LeaveType: &sick,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Leave.Days)
	assert.Equal(t, "SICK", resp.Leave.LeaveType)
}

func TestApplyValidation(t *testing.T) {
	svc := newTestService(newFakeLeaveRepo(), nil)

	tests := []struct {
		name string
		req  leave.ApplyLeaveRequest
	}{
		{"missing reason", leave.ApplyLeaveRequest{From: "2026-01-05", To: "2026-01-06"}},
		{"to before from", leave.ApplyLeaveRequest{From: "2026-01-09", To: "2026-01-05", Reason: "x"}},
		{"bad date format", leave.ApplyLeaveRequest{From: "05-01-2026", To: "2026-01-09", Reason: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Apply(context.Background(), "u1", tt.req)
			var verrs validator.ValidationErrors
			assert.ErrorAs(t, err, &verrs)
		})
	}
}

func TestUpdateStatusApprove(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newTestService(repo, nil)

	applied, err := svc.Apply(context.Background(), "u1", leave.ApplyLeaveRequest{
		From: "2026-01-05", To: "2026-01-06", Reason: "Trip",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), "owner-1", leave.UpdateStatusRequest{
		ID:     applied.Leave.ID,
		Status: "APPROVED",
	})
	require.NoError(t, err)

	assert.Equal(t, "APPROVED", updated.Status)
}

func TestUpdateStatusRejectKeepsReasonOnlyOnRejection(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newTestService(repo, nil)

	applied, err := svc.Apply(context.Background(), "u1", leave.ApplyLeaveRequest{
		From: "2026-01-05", To: "2026-01-06", Reason: "Trip",
	})
	require.NoError(t, err)

	reason := "Too many people out that week"
	rejected, err := svc.UpdateStatus(context.Background(), "owner-1", leave.UpdateStatusRequest{
		ID:              applied.Leave.ID,
		Status:          "REJECTED",
		RejectionReason: &reason,
	})
	require.NoError(t, err)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, reason, *rejected.RejectionReason)

	// A rejection reason supplied alongside approval is dropped.
	applied2, err := svc.Apply(context.Background(), "u2", leave.ApplyLeaveRequest{
		From: "2026-01-05", To: "2026-01-06", Reason: "Trip",
	})
	require.NoError(t, err)

	approved, err := svc.UpdateStatus(context.Background(), "owner-1", leave.UpdateStatusRequest{
		ID:              applied2.Leave.ID,
		Status:          "APPROVED",
		RejectionReason: &reason,
	})
	require.NoError(t, err)
	assert.Nil(t, approved.RejectionReason)
}

func TestUpdateStatusInvalidValue(t *testing.T) {
	svc := newTestService(newFakeLeaveRepo(), nil)

	_, err := svc.UpdateStatus(context.Background(), "owner-1", leave.UpdateStatusRequest{
		ID:     "lv-1",
		Status: "PENDING",
	})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestTeamLeavesIncludesLeadAndReports(t *testing.T) {
	repo := newFakeLeaveRepo()
	users := &stubUserRepo{reports: map[string][]string{
		"lead-1": {"u1", "u2"},
	}}
	svc := newTestService(repo, users)

	for _, id := range []string{"lead-1", "u1", "u2", "outsider"} {
		_, err := svc.Apply(context.Background(), id, leave.ApplyLeaveRequest{
			From: "2026-01-05", To: "2026-01-06", Reason: "Trip",
		})
		require.NoError(t, err)
	}

	team, err := svc.TeamLeaves(context.Background(), "lead-1")
	require.NoError(t, err)
	assert.Len(t, team, 3)
}
