package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/UserShri98/employee-system/internal/domain/salary"
	"github.com/UserShri98/employee-system/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type salaryRepository struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepository{db: db}
}

const salaryColumns = `id, user_id, month, year, base, working_days, present_days, leave_days,
	absent_days, per_day, total_deductions, breakdown, final_net, status, created_at, updated_at`

func scanSalary(row pgx.Row) (salary.Record, error) {
	var rec salary.Record
	var breakdown []byte

	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.Month, &rec.Year, &rec.Base, &rec.WorkingDays,
		&rec.PresentDays, &rec.LeaveDays, &rec.AbsentDays, &rec.PerDay,
		&rec.TotalDeductions, &breakdown, &rec.FinalNet, &rec.Status,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return salary.Record{}, err
	}

	if err := json.Unmarshal(breakdown, &rec.Breakdown); err != nil {
		return salary.Record{}, fmt.Errorf("failed to decode salary breakdown: %w", err)
	}

	return rec, nil
}

// Upsert inserts or recomputes the record for (user_id, month, year).
// Status is not part of the conflict update, so an APPROVED or PAID
// record keeps its workflow state across recalculation.
func (r *salaryRepository) Upsert(ctx context.Context, rec salary.Record) (salary.Record, error) {
	q := GetQuerier(ctx, r.db)

	breakdown, err := json.Marshal(rec.Breakdown)
	if err != nil {
		return salary.Record{}, fmt.Errorf("failed to encode salary breakdown: %w", err)
	}

	query := `
		INSERT INTO salaries (id, user_id, month, year, base, working_days, present_days,
			leave_days, absent_days, per_day, total_deductions, breakdown, final_net, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (user_id, month, year) DO UPDATE SET
			base = EXCLUDED.base,
			working_days = EXCLUDED.working_days,
			present_days = EXCLUDED.present_days,
			leave_days = EXCLUDED.leave_days,
			absent_days = EXCLUDED.absent_days,
			per_day = EXCLUDED.per_day,
			total_deductions = EXCLUDED.total_deductions,
			breakdown = EXCLUDED.breakdown,
			final_net = EXCLUDED.final_net,
			updated_at = NOW()
		RETURNING ` + salaryColumns

	saved, err := scanSalary(q.QueryRow(ctx, query,
		uuid.NewString(), rec.UserID, rec.Month, rec.Year, rec.Base, rec.WorkingDays,
		rec.PresentDays, rec.LeaveDays, rec.AbsentDays, rec.PerDay,
		rec.TotalDeductions, breakdown, rec.FinalNet, rec.Status,
	))
	if err != nil {
		return salary.Record{}, fmt.Errorf("failed to upsert salary record: %w", err)
	}

	return saved, nil
}

func (r *salaryRepository) GetByID(ctx context.Context, id string) (salary.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryColumns + ` FROM salaries WHERE id = $1`

	rec, err := scanSalary(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.Record{}, salary.ErrRecordNotFound
		}
		return salary.Record{}, fmt.Errorf("failed to get salary record: %w", err)
	}

	return rec, nil
}

func (r *salaryRepository) List(ctx context.Context, filter salary.ListFilter) ([]salary.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.user_id, s.month, s.year, s.base, s.working_days, s.present_days,
			s.leave_days, s.absent_days, s.per_day, s.total_deductions, s.breakdown,
			s.final_net, s.status, s.created_at, s.updated_at,
			u.name, u.email, u.designation, u.department
		FROM salaries s
		JOIN users u ON u.id = s.user_id
	`

	args := []interface{}{}
	argIdx := 1
	where := ""

	appendCond := func(cond string, val interface{}) {
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		where += fmt.Sprintf(cond, argIdx)
		args = append(args, val)
		argIdx++
	}

	if filter.UserID != nil {
		appendCond("s.user_id = $%d", *filter.UserID)
	}
	if filter.Year != nil {
		appendCond("s.year = $%d", *filter.Year)
		if filter.Month != nil {
			appendCond("s.month = $%d", *filter.Month)
		}
	}

	query += where + ` ORDER BY s.year DESC, s.month DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary records: %w", err)
	}
	defer rows.Close()

	var records []salary.Record
	for rows.Next() {
		var rec salary.Record
		var breakdown []byte

		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Month, &rec.Year, &rec.Base, &rec.WorkingDays,
			&rec.PresentDays, &rec.LeaveDays, &rec.AbsentDays, &rec.PerDay,
			&rec.TotalDeductions, &breakdown, &rec.FinalNet, &rec.Status,
			&rec.CreatedAt, &rec.UpdatedAt,
			&rec.UserName, &rec.UserEmail, &rec.UserDesignation, &rec.UserDepartment,
		); err != nil {
			return nil, fmt.Errorf("failed to scan salary record: %w", err)
		}
		if err := json.Unmarshal(breakdown, &rec.Breakdown); err != nil {
			return nil, fmt.Errorf("failed to decode salary breakdown: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (r *salaryRepository) UpdateStatus(ctx context.Context, id string, status salary.Status) (salary.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salaries SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + salaryColumns

	rec, err := scanSalary(q.QueryRow(ctx, query, id, status))
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.Record{}, salary.ErrRecordNotFound
		}
		return salary.Record{}, fmt.Errorf("failed to update salary status: %w", err)
	}

	return rec, nil
}

func (r *salaryRepository) GetYearStats(ctx context.Context, userID string, year int) (salary.YearStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(final_net), 0), COALESCE(SUM(total_deductions), 0),
			COALESCE(ROUND(AVG(final_net), 2), 0)
		FROM salaries
		WHERE user_id = $1 AND year = $2
	`

	var stats salary.YearStats
	err := q.QueryRow(ctx, query, userID, year).Scan(
		&stats.TotalEarned, &stats.TotalDeductions, &stats.AvgSalary,
	)
	if err != nil {
		return salary.YearStats{}, fmt.Errorf("failed to get salary stats: %w", err)
	}

	return stats, nil
}
