package salary

import (
	"context"

	"github.com/UserShri98/employee-system/internal/config"
	"github.com/UserShri98/employee-system/internal/domain/attendance"
	"github.com/UserShri98/employee-system/internal/domain/holiday"
	"github.com/UserShri98/employee-system/internal/domain/leave"
	"github.com/UserShri98/employee-system/internal/domain/salary"
	"github.com/UserShri98/employee-system/internal/domain/user"
	"github.com/UserShri98/employee-system/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type SalaryServiceImpl struct {
	salaryRepo     salary.SalaryRepository
	userRepo       user.UserRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
	holidayRepo    holiday.HolidayRepository
	cfg            config.SalaryConfig
}

func NewSalaryService(
	salaryRepo salary.SalaryRepository,
	userRepo user.UserRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	holidayRepo holiday.HolidayRepository,
	cfg config.SalaryConfig,
) salary.SalaryService {
	return &SalaryServiceImpl{
		salaryRepo:     salaryRepo,
		userRepo:       userRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		holidayRepo:    holidayRepo,
		cfg:            cfg,
	}
}

var hundred = decimal.NewFromInt(100)

// Calculate derives the salary record for one user and one calendar month.
// Reads are side-effect free; the single write is an upsert keyed by
// (user, month, year) that never touches the workflow status. There is no
// transaction around the reads and the upsert, so two concurrent
// recalculations for the same period race last-writer-wins; recalculation
// is user-triggered and pure, so the loser's write is recomputable at will.
func (s *SalaryServiceImpl) Calculate(ctx context.Context, userID string, month, year int) (salary.RecordResponse, error) {
	if !validator.IsValidMonth(month) || !validator.IsValidYear(year) {
		return salary.RecordResponse{}, salary.ErrInvalidPeriod
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return salary.RecordResponse{}, err
	}

	baseSalary := u.Salary
	if baseSalary.IsZero() {
		baseSalary = s.cfg.DefaultBaseSalary
	}

	periodStart, periodEnd := MonthPeriod(month, year)

	holidays, err := s.holidayRepo.ListByDateRange(ctx, periodStart, periodEnd)
	if err != nil {
		return salary.RecordResponse{}, err
	}
	holidaySet := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		holidaySet[DateKey(h.Date)] = struct{}{}
	}

	workingDays := CountWorkingDays(periodStart, periodEnd, holidaySet)

	presentDates, err := s.attendanceRepo.ListPresentDates(ctx, userID, periodStart, periodEnd)
	if err != nil {
		return salary.RecordResponse{}, err
	}
	// Count distinct calendar dates; the repo already returns distinct
	// rows but the set makes that explicit.
	presentSet := make(map[string]struct{}, len(presentDates))
	for _, d := range presentDates {
		presentSet[DateKey(d)] = struct{}{}
	}
	presentDays := len(presentSet)

	leaves, err := s.leaveRepo.ListApprovedOverlapping(ctx, userID, periodStart, periodEnd)
	if err != nil {
		return salary.RecordResponse{}, err
	}
	// Overlapping approved requests are summed independently; a day covered
	// by two approved leaves counts twice toward paid days.
	leaveDays := 0
	for _, lv := range leaves {
		from, to := clipToPeriod(lv.From, lv.To, periodStart, periodEnd)
		leaveDays += CountWorkingDays(from, to, holidaySet)
	}

	paidDays := presentDays + leaveDays
	if paidDays > workingDays {
		paidDays = workingDays
	}
	absentDays := workingDays - paidDays
	if absentDays < 0 {
		absentDays = 0
	}

	perDay := decimal.Zero
	if workingDays > 0 {
		perDay = baseSalary.Div(decimal.NewFromInt(int64(workingDays)))
	}
	absenceDeduction := perDay.Mul(decimal.NewFromInt(int64(absentDays))).Round(2)

	// Tax and PF apply to base minus the absence deduction, each rounded
	// before totalling. The rounding order changes final cents, so it must
	// stay exactly like this for reproducibility.
	afterAbsence := baseSalary.Sub(absenceDeduction)
	taxDeduction := afterAbsence.Mul(s.cfg.TaxPercent).Div(hundred).Round(2)
	pfDeduction := afterAbsence.Mul(s.cfg.PFPercent).Div(hundred).Round(2)

	totalDeductions := absenceDeduction.Add(taxDeduction).Add(pfDeduction).Add(s.cfg.MiscDeduction).Round(2)
	finalNet := baseSalary.Sub(totalDeductions).Round(2)
	if finalNet.IsNegative() {
		finalNet = decimal.Zero
	}

	rec := salary.Record{
		UserID:          userID,
		Month:           month,
		Year:            year,
		Base:            baseSalary,
		WorkingDays:     workingDays,
		PresentDays:     presentDays,
		LeaveDays:       leaveDays,
		AbsentDays:      absentDays,
		PerDay:          perDay.Round(2),
		TotalDeductions: totalDeductions,
		Breakdown: salary.Breakdown{
			AbsenceDeduction: absenceDeduction,
			TaxDeduction:     taxDeduction,
			PFDeduction:      pfDeduction,
			MiscDeductions:   s.cfg.MiscDeduction,
		},
		FinalNet: finalNet,
		Status:   salary.StatusDraft,
	}

	saved, err := s.salaryRepo.Upsert(ctx, rec)
	if err != nil {
		return salary.RecordResponse{}, err
	}

	return salary.ToResponse(saved), nil
}

func (s *SalaryServiceImpl) MySalaries(ctx context.Context, userID string, month, year *int) ([]salary.RecordResponse, error) {
	filter := salary.ListFilter{UserID: &userID, Month: month, Year: year}
	records, err := s.salaryRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return salary.ToResponses(records), nil
}

func (s *SalaryServiceImpl) ListAll(ctx context.Context, filter salary.ListFilter) ([]salary.RecordResponse, error) {
	records, err := s.salaryRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return salary.ToResponses(records), nil
}

func (s *SalaryServiceImpl) UpdateStatus(ctx context.Context, id string, status string) (salary.RecordResponse, error) {
	if !salary.Status(status).Valid() {
		return salary.RecordResponse{}, salary.ErrInvalidStatus
	}

	updated, err := s.salaryRepo.UpdateStatus(ctx, id, salary.Status(status))
	if err != nil {
		return salary.RecordResponse{}, err
	}
	return salary.ToResponse(updated), nil
}

func (s *SalaryServiceImpl) Stats(ctx context.Context, userID string, year int) (salary.YearStats, error) {
	return s.salaryRepo.GetYearStats(ctx, userID, year)
}
