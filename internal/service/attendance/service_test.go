package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/UserShri98/employee-system/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance
	seq     int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: map[string]attendance.Attendance{}}
}

func recordKey(userID string, date time.Time) string {
	return userID + "|" + date.Format("2006-01-02")
}

func (r *fakeAttendanceRepo) Create(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	key := recordKey(a.UserID, a.Date)
	if _, ok := r.records[key]; ok {
		return attendance.Attendance{}, attendance.ErrAlreadyPunchedIn
	}
	r.seq++
	a.ID = fmt.Sprintf("att-%d", r.seq)
	r.records[key] = a
	return a, nil
}

func (r *fakeAttendanceRepo) GetByUserAndDate(_ context.Context, userID string, date time.Time) (attendance.Attendance, error) {
	a, ok := r.records[recordKey(userID, date)]
	if !ok {
		return attendance.Attendance{}, attendance.ErrRecordNotFound
	}
	return a, nil
}

func (r *fakeAttendanceRepo) SetCheckOut(_ context.Context, id string, checkOut time.Time, totalHours float64) (attendance.Attendance, error) {
	for key, a := range r.records {
		if a.ID == id {
			a.CheckOut = &checkOut
			a.TotalHours = &totalHours
			r.records[key] = a
			return a, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrRecordNotFound
}

func (r *fakeAttendanceRepo) List(_ context.Context, _ attendance.ListFilter) ([]attendance.Attendance, error) {
	return nil, nil
}

func (r *fakeAttendanceRepo) ListByUser(_ context.Context, userID string, from, to *time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, a := range r.records {
		if a.UserID != userID {
			continue
		}
		if from != nil && a.Date.Before(*from) {
			continue
		}
		if to != nil && a.Date.After(*to) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAttendanceRepo) ListPresentDates(_ context.Context, _ string, _, _ time.Time) ([]time.Time, error) {
	return nil, nil
}

func (r *fakeAttendanceRepo) CountByStatus(_ context.Context, _ string, _, _ time.Time) ([]attendance.StatusCount, error) {
	return nil, nil
}

func (r *fakeAttendanceRepo) MarkAbsentees(_ context.Context, _ time.Time) (int, error) {
	return 0, nil
}

func newTestService(repo *fakeAttendanceRepo, now time.Time) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		attendanceRepo: repo,
		now:            func() time.Time { return now },
	}
}

func TestPunchIn(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, time.Date(2026, time.January, 5, 9, 30, 0, 0, time.UTC))

	resp, err := svc.PunchIn(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, "2026-01-05", resp.Record.Date)
	assert.Equal(t, "PRESENT", resp.Record.Status)
	require.NotNil(t, resp.Record.CheckIn)
	assert.Nil(t, resp.Record.CheckOut)
}

func TestPunchInTwiceSameDay(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, time.Date(2026, time.January, 5, 9, 30, 0, 0, time.UTC))

	_, err := svc.PunchIn(context.Background(), "u1")
	require.NoError(t, err)

	_, err = svc.PunchIn(context.Background(), "u1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyPunchedIn)
}

func TestPunchOutComputesHours(t *testing.T) {
	repo := newFakeAttendanceRepo()
	morning := time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC)

	_, err := newTestService(repo, morning).PunchIn(context.Background(), "u1")
	require.NoError(t, err)

	evening := morning.Add(8*time.Hour + 30*time.Minute)
	resp, err := newTestService(repo, evening).PunchOut(context.Background(), "u1")
	require.NoError(t, err)

	require.NotNil(t, resp.Record.TotalHours)
	assert.InDelta(t, 8.5, *resp.Record.TotalHours, 0.001)
	require.NotNil(t, resp.Record.CheckOut)
}

func TestPunchOutWithoutPunchIn(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, time.Date(2026, time.January, 5, 18, 0, 0, 0, time.UTC))

	_, err := svc.PunchOut(context.Background(), "u1")
	assert.ErrorIs(t, err, attendance.ErrNoPunchInRecord)
}

func TestPunchOutTwice(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC))

	_, err := svc.PunchIn(context.Background(), "u1")
	require.NoError(t, err)
	_, err = svc.PunchOut(context.Background(), "u1")
	require.NoError(t, err)

	_, err = svc.PunchOut(context.Background(), "u1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyPunchedOut)
}

func TestMyAttendanceMonthFilter(t *testing.T) {
	repo := newFakeAttendanceRepo()

	for _, d := range []time.Time{
		time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC),
		time.Date(2026, time.January, 6, 9, 0, 0, 0, time.UTC),
		time.Date(2026, time.February, 2, 9, 0, 0, 0, time.UTC),
	} {
		_, err := newTestService(repo, d).PunchIn(context.Background(), "u1")
		require.NoError(t, err)
	}

	month, year := 1, 2026
	records, err := newTestService(repo, time.Now()).MyAttendance(context.Background(), "u1", &month, &year)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	all, err := newTestService(repo, time.Now()).MyAttendance(context.Background(), "u1", nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
