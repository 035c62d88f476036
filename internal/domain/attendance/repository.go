package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, a Attendance) (Attendance, error)
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (Attendance, error)
	SetCheckOut(ctx context.Context, id string, checkOut time.Time, totalHours float64) (Attendance, error)
	List(ctx context.Context, filter ListFilter) ([]Attendance, error)
	ListByUser(ctx context.Context, userID string, from, to *time.Time) ([]Attendance, error)
	// ListPresentDates returns the distinct calendar dates with a PRESENT
	// record for the user inside [from, to].
	ListPresentDates(ctx context.Context, userID string, from, to time.Time) ([]time.Time, error)
	CountByStatus(ctx context.Context, userID string, from, to time.Time) ([]StatusCount, error)
	// MarkAbsentees inserts ABSENT records for every active user without
	// an attendance record on the given date. Returns how many were added.
	MarkAbsentees(ctx context.Context, date time.Time) (int, error)
}

type AttendanceService interface {
	PunchIn(ctx context.Context, userID string) (PunchResponse, error)
	PunchOut(ctx context.Context, userID string) (PunchResponse, error)
	MyAttendance(ctx context.Context, userID string, month, year *int) ([]AttendanceResponse, error)
	List(ctx context.Context, filter ListFilter) ([]AttendanceResponse, error)
	Stats(ctx context.Context, userID string, month, year int) ([]StatusCount, error)
}
