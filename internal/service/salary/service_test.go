package salary

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/UserShri98/employee-system/internal/config"
	"github.com/UserShri98/employee-system/internal/domain/attendance"
	"github.com/UserShri98/employee-system/internal/domain/holiday"
	"github.com/UserShri98/employee-system/internal/domain/leave"
	"github.com/UserShri98/employee-system/internal/domain/salary"
	"github.com/UserShri98/employee-system/internal/domain/user"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory fakes. The salary repo mimics the SQL upsert: computed fields
// are overwritten on conflict, the workflow status is not.

type fakeSalaryRepo struct {
	records map[string]salary.Record
	seq     int
}

func newFakeSalaryRepo() *fakeSalaryRepo {
	return &fakeSalaryRepo{records: map[string]salary.Record{}}
}

func salaryKey(userID string, month, year int) string {
	return fmt.Sprintf("%s|%d|%d", userID, month, year)
}

func (r *fakeSalaryRepo) Upsert(_ context.Context, rec salary.Record) (salary.Record, error) {
	key := salaryKey(rec.UserID, rec.Month, rec.Year)
	if existing, ok := r.records[key]; ok {
		rec.ID = existing.ID
		rec.Status = existing.Status
		rec.CreatedAt = existing.CreatedAt
	} else {
		r.seq++
		rec.ID = fmt.Sprintf("rec-%d", r.seq)
		rec.CreatedAt = time.Now().UTC()
	}
	rec.UpdatedAt = time.Now().UTC()
	r.records[key] = rec
	return rec, nil
}

func (r *fakeSalaryRepo) GetByID(_ context.Context, id string) (salary.Record, error) {
	for _, rec := range r.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return salary.Record{}, salary.ErrRecordNotFound
}

func (r *fakeSalaryRepo) List(_ context.Context, filter salary.ListFilter) ([]salary.Record, error) {
	var out []salary.Record
	for _, rec := range r.records {
		if filter.UserID != nil && rec.UserID != *filter.UserID {
			continue
		}
		if filter.Year != nil && rec.Year != *filter.Year {
			continue
		}
		if filter.Year != nil && filter.Month != nil && rec.Month != *filter.Month {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *fakeSalaryRepo) UpdateStatus(_ context.Context, id string, status salary.Status) (salary.Record, error) {
	for key, rec := range r.records {
		if rec.ID == id {
			rec.Status = status
			r.records[key] = rec
			return rec, nil
		}
	}
	return salary.Record{}, salary.ErrRecordNotFound
}

func (r *fakeSalaryRepo) GetYearStats(_ context.Context, userID string, year int) (salary.YearStats, error) {
	stats := salary.YearStats{
		TotalEarned:     decimal.Zero,
		TotalDeductions: decimal.Zero,
		AvgSalary:       decimal.Zero,
	}
	count := 0
	for _, rec := range r.records {
		if rec.UserID != userID || rec.Year != year {
			continue
		}
		stats.TotalEarned = stats.TotalEarned.Add(rec.FinalNet)
		stats.TotalDeductions = stats.TotalDeductions.Add(rec.TotalDeductions)
		count++
	}
	if count > 0 {
		stats.AvgSalary = stats.TotalEarned.Div(decimal.NewFromInt(int64(count))).Round(2)
	}
	return stats, nil
}

type stubUserRepo struct {
	users map[string]user.User
}

func (r *stubUserRepo) Create(_ context.Context, u user.User) (user.User, error) { return u, nil }

func (r *stubUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, _ string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (r *stubUserRepo) ListByRole(_ context.Context, _ user.Role) ([]user.User, error) {
	return nil, nil
}

func (r *stubUserRepo) ListActive(_ context.Context) ([]user.User, error) { return nil, nil }

func (r *stubUserRepo) ListIDsByManager(_ context.Context, _ string) ([]string, error) {
	return nil, nil
}

func (r *stubUserRepo) Update(_ context.Context, _ user.UpdateEmployeeRequest) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (r *stubUserRepo) Delete(_ context.Context, _ string) error { return nil }

type stubAttendanceRepo struct {
	presentDates []time.Time
}

func (r *stubAttendanceRepo) Create(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	return a, nil
}

func (r *stubAttendanceRepo) GetByUserAndDate(_ context.Context, _ string, _ time.Time) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrRecordNotFound
}

func (r *stubAttendanceRepo) SetCheckOut(_ context.Context, _ string, _ time.Time, _ float64) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrRecordNotFound
}

func (r *stubAttendanceRepo) List(_ context.Context, _ attendance.ListFilter) ([]attendance.Attendance, error) {
	return nil, nil
}

func (r *stubAttendanceRepo) ListByUser(_ context.Context, _ string, _, _ *time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

func (r *stubAttendanceRepo) ListPresentDates(_ context.Context, _ string, from, to time.Time) ([]time.Time, error) {
	var out []time.Time
	for _, d := range r.presentDates {
		if !d.Before(from) && !d.After(to) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *stubAttendanceRepo) CountByStatus(_ context.Context, _ string, _, _ time.Time) ([]attendance.StatusCount, error) {
	return nil, nil
}

func (r *stubAttendanceRepo) MarkAbsentees(_ context.Context, _ time.Time) (int, error) {
	return 0, nil
}

type stubLeaveRepo struct {
	leaves []leave.Leave
}

func (r *stubLeaveRepo) Create(_ context.Context, l leave.Leave) (leave.Leave, error) { return l, nil }

func (r *stubLeaveRepo) ListByUser(_ context.Context, _ string) ([]leave.Leave, error) {
	return nil, nil
}

func (r *stubLeaveRepo) ListByUsers(_ context.Context, _ []string) ([]leave.Leave, error) {
	return nil, nil
}

func (r *stubLeaveRepo) ListAll(_ context.Context) ([]leave.Leave, error) { return nil, nil }

func (r *stubLeaveRepo) ListApprovedOverlapping(_ context.Context, userID string, periodStart, periodEnd time.Time) ([]leave.Leave, error) {
	var out []leave.Leave
	for _, l := range r.leaves {
		if l.UserID != userID || l.Status != leave.StatusApproved {
			continue
		}
		if l.From.After(periodEnd) || l.To.Before(periodStart) {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (r *stubLeaveRepo) UpdateStatus(_ context.Context, _ string, _ leave.Status, _ string, _ *string) (leave.Leave, error) {
	return leave.Leave{}, leave.ErrLeaveNotFound
}

func (r *stubLeaveRepo) CountByStatus(_ context.Context, _ string) ([]leave.StatusCount, error) {
	return nil, nil
}

type stubHolidayRepo struct {
	holidays []holiday.Holiday
}

func (r *stubHolidayRepo) Create(_ context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	return h, nil
}

func (r *stubHolidayRepo) GetByID(_ context.Context, _ string) (holiday.Holiday, error) {
	return holiday.Holiday{}, holiday.ErrHolidayNotFound
}

func (r *stubHolidayRepo) ListByDateRange(_ context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range r.holidays {
		if !h.Date.Before(from) && !h.Date.After(to) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *stubHolidayRepo) ListAll(_ context.Context) ([]holiday.Holiday, error) { return nil, nil }

func (r *stubHolidayRepo) Update(_ context.Context, _ holiday.UpdateHolidayRequest) (holiday.Holiday, error) {
	return holiday.Holiday{}, holiday.ErrHolidayNotFound
}

func (r *stubHolidayRepo) Delete(_ context.Context, _ string) error { return nil }

type calcFixture struct {
	service    salary.SalaryService
	salaryRepo *fakeSalaryRepo
	users      *stubUserRepo
	attendance *stubAttendanceRepo
	leaves     *stubLeaveRepo
	holidays   *stubHolidayRepo
}

func newCalcFixture(cfg config.SalaryConfig) *calcFixture {
	f := &calcFixture{
		salaryRepo: newFakeSalaryRepo(),
		users:      &stubUserRepo{users: map[string]user.User{}},
		attendance: &stubAttendanceRepo{},
		leaves:     &stubLeaveRepo{},
		holidays:   &stubHolidayRepo{},
	}
	f.service = NewSalaryService(f.salaryRepo, f.users, f.attendance, f.leaves, f.holidays, cfg)
	return f
}

func zeroDeductionConfig() config.SalaryConfig {
	return config.SalaryConfig{
		TaxPercent:        decimal.Zero,
		PFPercent:         decimal.Zero,
		MiscDeduction:     decimal.Zero,
		DefaultBaseSalary: decimal.NewFromInt(30000),
	}
}

func (f *calcFixture) addUser(id string, base int64) {
	f.users.users[id] = user.User{
		ID:     id,
		Name:   "Test User",
		Email:  id + "@example.com",
		Role:   user.RoleEmployee,
		Salary: decimal.NewFromInt(base),
		Status: user.StatusActive,
	}
}

// weekdays returns every Mon-Fri date of the month.
func weekdays(month int, year int) []time.Time {
	start, end := MonthPeriod(month, year)
	var out []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			out = append(out, d)
		}
	}
	return out
}

func TestCalculateFullPresence(t *testing.T) {
	f := newCalcFixture(zeroDeductionConfig())
	f.addUser("u1", 31000)
	f.attendance.presentDates = weekdays(1, 2026)

	resp, err := f.service.Calculate(context.Background(), "u1", 1, 2026)
	require.NoError(t, err)

	assert.Equal(t, 22, resp.WorkingDays)
	assert.Equal(t, 22, resp.PresentDays)
	assert.Equal(t, 0, resp.LeaveTaken)
	assert.Equal(t, 0, resp.AbsentDays)
	assert.Equal(t, "0.00", resp.Deductions.StringFixed(2))
	assert.Equal(t, "31000.00", resp.Final.StringFixed(2))
	assert.Equal(t, "DRAFT", resp.Status)
}

func TestCalculatePartialPresenceWithLeave(t *testing.T) {
	f := newCalcFixture(zeroDeductionConfig())
	f.addUser("u1", 31000)

	// 10 present working days
	all := weekdays(1, 2026)
	f.attendance.presentDates = all[7:17]

	// Approved leave covering 5 working days, Mon Jan 5 - Fri Jan 9
	f.leaves.leaves = []leave.Leave{{
		ID:     "lv1",
		UserID: "u1",
		From:   day(2026, time.January, 5),
		To:     day(2026, time.January, 9),
		Status: leave.StatusApproved,
	}}

	resp, err := f.service.Calculate(context.Background(), "u1", 1, 2026)
	require.NoError(t, err)

	assert.Equal(t, 22, resp.WorkingDays)
	assert.Equal(t, 10, resp.PresentDays)
	assert.Equal(t, 5, resp.LeaveTaken)
	assert.Equal(t, 7, resp.AbsentDays)
	assert.Equal(t, "1409.09", resp.PerDay.StringFixed(2))
	assert.Equal(t, "9863.64", resp.Breakdown.AbsenceDeduction.StringFixed(2))
	assert.Equal(t, "9863.64", resp.Deductions.StringFixed(2))
	assert.Equal(t, "21136.36", resp.Final.StringFixed(2))
}

func TestCalculateMidweekHolidayShrinksMonth(t *testing.T) {
	f := newCalcFixture(zeroDeductionConfig())
	f.addUser("u1", 31000)
	f.holidays.holidays = []holiday.Holiday{{
		ID:   "h1",
		Name: "Makar Sankranti",
		Date: day(2026, time.January, 14), // Wednesday
		Type: holiday.TypeNational,
	}}
	f.attendance.presentDates = weekdays(1, 2026)

	resp, err := f.service.Calculate(context.Background(), "u1", 1, 2026)
	require.NoError(t, err)

	assert.Equal(t, 21, resp.WorkingDays)
	// Present days on the holiday still count as attendance, but paid days
	// are capped at working days.
	assert.Equal(t, 0, resp.AbsentDays)
	assert.Equal(t, "31000.00", resp.Final.StringFixed(2))
}

func TestCalculateTaxAndPF(t *testing.T) {
	cfg := zeroDeductionConfig()
	cfg.TaxPercent = decimal.NewFromInt(10)
	cfg.PFPercent = decimal.NewFromInt(5)

	f := newCalcFixture(cfg)
	f.addUser("u1", 30000)
	f.attendance.presentDates = weekdays(1, 2026)

	resp, err := f.service.Calculate(context.Background(), "u1", 1, 2026)
	require.NoError(t, err)

	assert.Equal(t, "3000.00", resp.Breakdown.TaxDeduction.StringFixed(2))
	assert.Equal(t, "1500.00", resp.Breakdown.PFDeduction.StringFixed(2))
	assert.Equal(t, "4500.00", resp.Deductions.StringFixed(2))
	assert.Equal(t, "25500.00", resp.Final.StringFixed(2))
}

func TestCalculateNetNeverNegative(t *testing.T) {
	cfg := zeroDeductionConfig()
	cfg.MiscDeduction = decimal.NewFromInt(50000)

	f := newCalcFixture(cfg)
	f.addUser("u1", 31000)
	f.attendance.presentDates = weekdays(1, 2026)

	resp, err := f.service.Calculate(context.Background(), "u1", 1, 2026)
	require.NoError(t, err)

	assert.Equal(t, "0.00", resp.Final.StringFixed(2))
}

func TestCalculateDefaultBaseSalary(t *testing.T) {
	f := newCalcFixture(zeroDeductionConfig())
	f.addUser("u1", 0)
	f.attendance.presentDates = weekdays(1, 2026)

	resp, err := f.service.Calculate(context.Background(), "u1", 1, 2026)
	require.NoError(t, err)

	assert.Equal(t, "30000.00", resp.Base.StringFixed(2))
	assert.Equal(t, "30000.00", resp.Final.StringFixed(2))
}

func TestCalculateRecomputePreservesStatus(t *testing.T) {
	f := newCalcFixture(zeroDeductionConfig())
	f.addUser("u1", 31000)
	f.attendance.presentDates = weekdays(1, 2026)

	first, err := f.service.Calculate(context.Background(), "u1", 1, 2026)
	require.NoError(t, err)
	assert.Equal(t, "DRAFT", first.Status)

	_, err = f.service.UpdateStatus(context.Background(), first.ID, "APPROVED")
	require.NoError(t, err)

	second, err := f.service.Calculate(context.Background(), "u1", 1, 2026)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "APPROVED", second.Status)
	assert.Equal(t, first.Final.StringFixed(2), second.Final.StringFixed(2))
}

func TestCalculateIdempotent(t *testing.T) {
	f := newCalcFixture(zeroDeductionConfig())
	f.addUser("u1", 31000)
	all := weekdays(1, 2026)
	f.attendance.presentDates = all[:15]

	first, err := f.service.Calculate(context.Background(), "u1", 1, 2026)
	require.NoError(t, err)
	second, err := f.service.Calculate(context.Background(), "u1", 1, 2026)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.WorkingDays, second.WorkingDays)
	assert.Equal(t, first.PresentDays, second.PresentDays)
	assert.Equal(t, first.AbsentDays, second.AbsentDays)
	assert.Equal(t, first.Deductions.StringFixed(2), second.Deductions.StringFixed(2))
	assert.Equal(t, first.Final.StringFixed(2), second.Final.StringFixed(2))
	assert.Len(t, f.salaryRepo.records, 1)
}

func TestCalculateInvalidPeriod(t *testing.T) {
	f := newCalcFixture(zeroDeductionConfig())
	f.addUser("u1", 31000)

	for _, month := range []int{0, 13, -1} {
		_, err := f.service.Calculate(context.Background(), "u1", month, 2026)
		assert.ErrorIs(t, err, salary.ErrInvalidPeriod)
	}

	_, err := f.service.Calculate(context.Background(), "u1", 1, 0)
	assert.ErrorIs(t, err, salary.ErrInvalidPeriod)
}

func TestCalculateUnknownUser(t *testing.T) {
	f := newCalcFixture(zeroDeductionConfig())

	_, err := f.service.Calculate(context.Background(), "ghost", 1, 2026)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestCalculateLeaveClippedToPeriod(t *testing.T) {
	f := newCalcFixture(zeroDeductionConfig())
	f.addUser("u1", 31000)

	// Leave runs from late December into January; only the January working
	// days count for the January record.
	f.leaves.leaves = []leave.Leave{{
		ID:     "lv1",
		UserID: "u1",
		From:   day(2025, time.December, 29),
		To:     day(2026, time.January, 2),
		Status: leave.StatusApproved,
	}}

	resp, err := f.service.Calculate(context.Background(), "u1", 1, 2026)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.LeaveTaken) // Jan 1 and Jan 2
	assert.Equal(t, 20, resp.AbsentDays)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	f := newCalcFixture(zeroDeductionConfig())

	_, err := f.service.UpdateStatus(context.Background(), "rec-1", "FINALIZED")
	assert.ErrorIs(t, err, salary.ErrInvalidStatus)
}
