package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/UserShri98/employee-system/internal/domain/attendance"
	"github.com/UserShri98/employee-system/internal/domain/holiday"
	salaryService "github.com/UserShri98/employee-system/internal/service/salary"
)

type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	holidayRepo    holiday.HolidayRepository
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	holidayRepo holiday.HolidayRepository,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		holidayRepo:    holidayRepo,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees backfills ABSENT records for active users who never
// punched in on the previous day. Weekends and holidays are skipped.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	now := time.Now().UTC()
	yesterday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)

	holidays, err := j.holidayRepo.ListByDateRange(ctx, yesterday, yesterday)
	if err != nil {
		return fmt.Errorf("failed to list holidays: %w", err)
	}
	holidaySet := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		holidaySet[salaryService.DateKey(h.Date)] = struct{}{}
	}

	if salaryService.CountWorkingDays(yesterday, yesterday, holidaySet) == 0 {
		return nil
	}

	marked, err := j.attendanceRepo.MarkAbsentees(ctx, yesterday)
	if err != nil {
		return fmt.Errorf("failed to mark absentees: %w", err)
	}

	if marked > 0 {
		slog.Info("Cron: marked absent employees", "date", yesterday.Format("2006-01-02"), "count", marked)
	}
	return nil
}
