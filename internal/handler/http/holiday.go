package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/UserShri98/employee-system/internal/domain/holiday"
	"github.com/UserShri98/employee-system/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type HolidayHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	holidayService holiday.HolidayService
}

func NewHolidayHandler(holidayService holiday.HolidayService) HolidayHandler {
	return &HolidayHandlerImpl{holidayService: holidayService}
}

// Create implements HolidayHandler.
func (h *HolidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq holiday.CreateHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create holiday decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	if err := createReq.Validate(); err != nil {
		slog.Error("Create holiday validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.holidayService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create holiday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, created)
}

// Get implements HolidayHandler.
func (h *HolidayHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.holidayService.Get(r.Context(), id)
	if err != nil {
		slog.Error("Get holiday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, result)
}

// List implements HolidayHandler.
func (h *HolidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var year *int
	if raw := r.URL.Query().Get("year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "Invalid year")
			return
		}
		year = &v
	}

	holidays, err := h.holidayService.List(r.Context(), year)
	if err != nil {
		slog.Error("List holidays service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, holidays)
}

// Update implements HolidayHandler.
func (h *HolidayHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq holiday.UpdateHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update holiday decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	updated, err := h.holidayService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update holiday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, updated)
}

// Delete implements HolidayHandler.
func (h *HolidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.holidayService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete holiday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, map[string]string{"message": "Holiday deleted successfully"})
}
