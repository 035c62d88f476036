package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/UserShri98/employee-system/internal/domain/leave"
	"github.com/UserShri98/employee-system/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

const leaveJoinedColumns = `l.id, l.user_id, l.from_date, l.to_date, l.reason, l.days, l.leave_type,
	l.status, l.approved_by, l.rejection_reason, l.created_at, l.updated_at,
	u.name, u.email, u.designation, approver.name`

const leaveJoins = `
	FROM leaves l
	JOIN users u ON u.id = l.user_id
	LEFT JOIN users approver ON approver.id = l.approved_by`

func scanJoinedLeave(rows pgx.Rows) (leave.Leave, error) {
	var l leave.Leave
	err := rows.Scan(
		&l.ID, &l.UserID, &l.From, &l.To, &l.Reason, &l.Days, &l.Type,
		&l.Status, &l.ApprovedBy, &l.RejectionReason, &l.CreatedAt, &l.UpdatedAt,
		&l.UserName, &l.UserEmail, &l.UserDesignation, &l.ApproverName,
	)
	return l, err
}

func (r *leaveRepository) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (id, user_id, from_date, to_date, reason, days, leave_type, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, user_id, from_date, to_date, reason, days, leave_type, status,
			approved_by, rejection_reason, created_at, updated_at
	`

	var created leave.Leave
	err := q.QueryRow(ctx, query,
		uuid.NewString(), l.UserID, l.From, l.To, l.Reason, l.Days, l.Type, l.Status,
	).Scan(
		&created.ID, &created.UserID, &created.From, &created.To, &created.Reason, &created.Days,
		&created.Type, &created.Status, &created.ApprovedBy, &created.RejectionReason,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created, nil
}

func (r *leaveRepository) ListByUser(ctx context.Context, userID string) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveJoinedColumns + leaveJoins + `
		WHERE l.user_id = $1
		ORDER BY l.created_at DESC`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

func (r *leaveRepository) ListByUsers(ctx context.Context, userIDs []string) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveJoinedColumns + leaveJoins + `
		WHERE l.user_id = ANY($1)
		ORDER BY l.created_at DESC`

	rows, err := q.Query(ctx, query, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list team leave requests: %w", err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

func (r *leaveRepository) ListAll(ctx context.Context) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveJoinedColumns + leaveJoins + `
		ORDER BY l.created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

func (r *leaveRepository) ListApprovedOverlapping(ctx context.Context, userID string, periodStart, periodEnd time.Time) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	// Overlap test: starts inside, ends inside, or spans the whole period.
	query := `
		SELECT id, user_id, from_date, to_date, reason, days, leave_type, status,
			approved_by, rejection_reason, created_at, updated_at
		FROM leaves
		WHERE user_id = $1
		  AND status = 'APPROVED'
		  AND from_date <= $3
		  AND to_date >= $2
		ORDER BY from_date
	`

	rows, err := q.Query(ctx, query, userID, periodStart, periodEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leaves: %w", err)
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		var l leave.Leave
		if err := rows.Scan(
			&l.ID, &l.UserID, &l.From, &l.To, &l.Reason, &l.Days, &l.Type, &l.Status,
			&l.ApprovedBy, &l.RejectionReason, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		leaves = append(leaves, l)
	}

	return leaves, rows.Err()
}

func (r *leaveRepository) UpdateStatus(ctx context.Context, id string, status leave.Status, approvedBy string, rejectionReason *string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leaves
		SET status = $2, approved_by = $3, rejection_reason = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING id, user_id, from_date, to_date, reason, days, leave_type, status,
			approved_by, rejection_reason, created_at, updated_at
	`

	var updated leave.Leave
	err := q.QueryRow(ctx, query, id, status, approvedBy, rejectionReason).Scan(
		&updated.ID, &updated.UserID, &updated.From, &updated.To, &updated.Reason, &updated.Days,
		&updated.Type, &updated.Status, &updated.ApprovedBy, &updated.RejectionReason,
		&updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to update leave status: %w", err)
	}

	return updated, nil
}

func (r *leaveRepository) CountByStatus(ctx context.Context, userID string) ([]leave.StatusCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT status, COUNT(*)
		FROM leaves
		WHERE user_id = $1
		GROUP BY status
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count leaves by status: %w", err)
	}
	defer rows.Close()

	var counts []leave.StatusCount
	for rows.Next() {
		var c leave.StatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}

func collectLeaves(rows pgx.Rows) ([]leave.Leave, error) {
	var leaves []leave.Leave
	for rows.Next() {
		l, err := scanJoinedLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		leaves = append(leaves, l)
	}

	return leaves, rows.Err()
}
