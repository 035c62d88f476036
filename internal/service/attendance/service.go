package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/UserShri98/employee-system/internal/domain/attendance"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	now            func() time.Time
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

func (s *AttendanceServiceImpl) PunchIn(ctx context.Context, userID string) (attendance.PunchResponse, error) {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	existing, err := s.attendanceRepo.GetByUserAndDate(ctx, userID, today)
	if err != nil && !errors.Is(err, attendance.ErrRecordNotFound) {
		return attendance.PunchResponse{}, err
	}
	if err == nil && existing.CheckIn != nil {
		return attendance.PunchResponse{}, attendance.ErrAlreadyPunchedIn
	}

	record, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		UserID:  userID,
		Date:    today,
		CheckIn: &now,
		Status:  attendance.StatusPresent,
	})
	if err != nil {
		return attendance.PunchResponse{}, err
	}

	return attendance.PunchResponse{
		Message: "Punch in successful",
		Record:  attendance.ToResponse(record),
	}, nil
}

func (s *AttendanceServiceImpl) PunchOut(ctx context.Context, userID string) (attendance.PunchResponse, error) {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	record, err := s.attendanceRepo.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.PunchResponse{}, attendance.ErrNoPunchInRecord
		}
		return attendance.PunchResponse{}, err
	}
	if record.CheckOut != nil {
		return attendance.PunchResponse{}, attendance.ErrAlreadyPunchedOut
	}

	totalHours := 0.0
	if record.CheckIn != nil {
		totalHours = now.Sub(*record.CheckIn).Hours()
	}

	updated, err := s.attendanceRepo.SetCheckOut(ctx, record.ID, now, totalHours)
	if err != nil {
		return attendance.PunchResponse{}, err
	}

	return attendance.PunchResponse{
		Message: "Punch out successful",
		Record:  attendance.ToResponse(updated),
	}, nil
}

func (s *AttendanceServiceImpl) MyAttendance(ctx context.Context, userID string, month, year *int) ([]attendance.AttendanceResponse, error) {
	var from, to *time.Time
	if month != nil && year != nil {
		start := time.Date(*year, time.Month(*month), 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(*year, time.Month(*month)+1, 0, 0, 0, 0, 0, time.UTC)
		from, to = &start, &end
	}

	records, err := s.attendanceRepo.ListByUser(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	return attendance.ToResponses(records), nil
}

func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return attendance.ToResponses(records), nil
}

func (s *AttendanceServiceImpl) Stats(ctx context.Context, userID string, month, year int) ([]attendance.StatusCount, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)

	return s.attendanceRepo.CountByStatus(ctx, userID, start, end)
}
