package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/UserShri98/employee-system/internal/domain/auth"
	"github.com/UserShri98/employee-system/internal/domain/salary"
	"github.com/UserShri98/employee-system/internal/handler/http/middleware"
	"github.com/UserShri98/employee-system/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type SalaryHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
	MySalaries(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type SalaryHandlerImpl struct {
	salaryService salary.SalaryService
}

func NewSalaryHandler(salaryService salary.SalaryService) SalaryHandler {
	return &SalaryHandlerImpl{salaryService: salaryService}
}

// Calculate implements SalaryHandler.
func (h *SalaryHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		response.BadRequest(w, "Invalid month")
		return
	}
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		response.BadRequest(w, "Invalid year")
		return
	}

	record, err := h.salaryService.Calculate(r.Context(), userID, month, year)
	if err != nil {
		slog.Error("Calculate salary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, record)
}

// MySalaries implements SalaryHandler.
func (h *SalaryHandlerImpl) MySalaries(w http.ResponseWriter, r *http.Request) {
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

	records, err := h.salaryService.MySalaries(r.Context(), userID, month, year)
	if err != nil {
		slog.Error("MySalaries service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, records)
}

// ListAll implements SalaryHandler.
func (h *SalaryHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	var filter salary.ListFilter

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

	records, err := h.salaryService.ListAll(r.Context(), filter)
	if err != nil {
		slog.Error("ListAll salaries service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, records)
}

// UpdateStatus implements SalaryHandler.
func (h *SalaryHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		slog.Error("Update salary status decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	updated, err := h.salaryService.UpdateStatus(r.Context(), id, body.Status)
	if err != nil {
		slog.Error("Update salary status service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, updated)
}

// Stats implements SalaryHandler.
func (h *SalaryHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	year := time.Now().UTC().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "Invalid year")
			return
		}
		year = parsed
	}

	stats, err := h.salaryService.Stats(r.Context(), userID, year)
	if err != nil {
		slog.Error("Salary stats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, stats)
}
