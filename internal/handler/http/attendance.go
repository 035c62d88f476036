package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/UserShri98/employee-system/internal/domain/attendance"
	"github.com/UserShri98/employee-system/internal/domain/auth"
	"github.com/UserShri98/employee-system/internal/handler/http/middleware"
	"github.com/UserShri98/employee-system/internal/handler/http/response"
)

type AttendanceHandler interface {
	PunchIn(w http.ResponseWriter, r *http.Request)
	PunchOut(w http.ResponseWriter, r *http.Request)
	MyAttendance(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// PunchIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) PunchIn(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.attendanceService.PunchIn(r.Context(), userID)
	if err != nil {
		slog.Error("PunchIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, result)
}

// PunchOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) PunchOut(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.attendanceService.PunchOut(r.Context(), userID)
	if err != nil {
		slog.Error("PunchOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, result)
}

// MyAttendance implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MyAttendance(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	month, ok := optionalIntQuery(r, "month")
	if !ok {
		response.BadRequest(w, "Invalid month")
		return
	}
	year, ok := optionalIntQuery(r, "year")
	if !ok {
		response.BadRequest(w, "Invalid year")
		return
	}

	records, err := h.attendanceService.MyAttendance(r.Context(), userID, month, year)
	if err != nil {
		slog.Error("MyAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, records)
}

// List implements AttendanceHandler.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter attendance.ListFilter

	if userID := r.URL.Query().Get("userId"); userID != "" {
		filter.UserID = &userID
	}

	month, ok := optionalIntQuery(r, "month")
	if !ok {
		response.BadRequest(w, "Invalid month")
		return
	}
	year, ok := optionalIntQuery(r, "year")
	if !ok {
		response.BadRequest(w, "Invalid year")
		return
	}
	filter.Month = month
	filter.Year = year

	records, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, records)
}

// Stats implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	if r.URL.Query().Get("month") == "" || r.URL.Query().Get("year") == "" {
		response.BadRequest(w, "Month and year are required")
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "Invalid month")
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "Invalid year")
		return
	}

	stats, err := h.attendanceService.Stats(r.Context(), userID, month, year)
	if err != nil {
		slog.Error("Attendance stats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, stats)
}

// optionalIntQuery parses an optional integer query parameter. The second
// return is false only when the parameter is present but not numeric.
func optionalIntQuery(r *http.Request, name string) (*int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}
	return &v, true
}
