package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/UserShri98/employee-system/internal/domain/attendance"
	"github.com/UserShri98/employee-system/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (id, user_id, date, check_in, check_out, total_hours, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, date, check_in, check_out, total_hours, status, created_at, updated_at
	`

	var created attendance.Attendance
	err := q.QueryRow(ctx, query,
		uuid.NewString(), a.UserID, a.Date, a.CheckIn, a.CheckOut, a.TotalHours, a.Status,
	).Scan(
		&created.ID, &created.UserID, &created.Date, &created.CheckIn, &created.CheckOut,
		&created.TotalHours, &created.Status, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_attendance_user_date") {
			return attendance.Attendance{}, attendance.ErrAlreadyPunchedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return created, nil
}

func (r *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, check_in, check_out, total_hours, status, created_at, updated_at
		FROM attendances
		WHERE user_id = $1 AND date = $2
	`

	var a attendance.Attendance
	err := q.QueryRow(ctx, query, userID, date).Scan(
		&a.ID, &a.UserID, &a.Date, &a.CheckIn, &a.CheckOut,
		&a.TotalHours, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrRecordNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return a, nil
}

func (r *attendanceRepository) SetCheckOut(ctx context.Context, id string, checkOut time.Time, totalHours float64) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET check_out = $2, total_hours = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, user_id, date, check_in, check_out, total_hours, status, created_at, updated_at
	`

	var a attendance.Attendance
	err := q.QueryRow(ctx, query, id, checkOut, totalHours).Scan(
		&a.ID, &a.UserID, &a.Date, &a.CheckIn, &a.CheckOut,
		&a.TotalHours, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrRecordNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to set check out: %w", err)
	}

	return a, nil
}

func (r *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.user_id, a.date, a.check_in, a.check_out, a.total_hours, a.status,
			a.created_at, a.updated_at, u.name, u.email, u.designation
		FROM attendances a
		JOIN users u ON u.id = a.user_id
	`
	var conditions []string
	var args []interface{}
	argIdx := 1

	if filter.UserID != nil {
		conditions = append(conditions, fmt.Sprintf("a.user_id = $%d", argIdx))
		args = append(args, *filter.UserID)
		argIdx++
	}
	if filter.Month != nil && filter.Year != nil {
		start := time.Date(*filter.Year, time.Month(*filter.Month), 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(*filter.Year, time.Month(*filter.Month)+1, 0, 0, 0, 0, 0, time.UTC)
		conditions = append(conditions, fmt.Sprintf("a.date BETWEEN $%d AND $%d", argIdx, argIdx+1))
		args = append(args, start, end)
		argIdx += 2
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY a.date DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.Date, &a.CheckIn, &a.CheckOut, &a.TotalHours, &a.Status,
			&a.CreatedAt, &a.UpdatedAt, &a.UserName, &a.UserEmail, &a.UserDesignation,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, a)
	}

	return records, rows.Err()
}

func (r *attendanceRepository) ListByUser(ctx context.Context, userID string, from, to *time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, check_in, check_out, total_hours, status, created_at, updated_at
		FROM attendances
		WHERE user_id = $1
	`
	args := []interface{}{userID}

	if from != nil && to != nil {
		query += " AND date BETWEEN $2 AND $3"
		args = append(args, *from, *to)
	}
	query += " ORDER BY date DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.Date, &a.CheckIn, &a.CheckOut,
			&a.TotalHours, &a.Status, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, a)
	}

	return records, rows.Err()
}

func (r *attendanceRepository) ListPresentDates(ctx context.Context, userID string, from, to time.Time) ([]time.Time, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT date
		FROM attendances
		WHERE user_id = $1 AND date BETWEEN $2 AND $3 AND status = 'PRESENT'
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list present dates: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan present date: %w", err)
		}
		dates = append(dates, d)
	}

	return dates, rows.Err()
}

func (r *attendanceRepository) CountByStatus(ctx context.Context, userID string, from, to time.Time) ([]attendance.StatusCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT status, COUNT(*)
		FROM attendances
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
		GROUP BY status
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to count attendance by status: %w", err)
	}
	defer rows.Close()

	var counts []attendance.StatusCount
	for rows.Next() {
		var c attendance.StatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}

func (r *attendanceRepository) MarkAbsentees(ctx context.Context, date time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (id, user_id, date, status)
		SELECT gen_random_uuid(), u.id, $1, 'ABSENT'
		FROM users u
		WHERE u.status = 'ACTIVE'
		  AND NOT EXISTS (
			SELECT 1 FROM attendances a WHERE a.user_id = u.id AND a.date = $1
		  )
		ON CONFLICT (user_id, date) DO NOTHING
	`

	tag, err := q.Exec(ctx, query, date)
	if err != nil {
		return 0, fmt.Errorf("failed to mark absentees: %w", err)
	}

	return int(tag.RowsAffected()), nil
}
