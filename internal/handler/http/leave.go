package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/UserShri98/employee-system/internal/domain/auth"
	"github.com/UserShri98/employee-system/internal/domain/leave"
	"github.com/UserShri98/employee-system/internal/handler/http/middleware"
	"github.com/UserShri98/employee-system/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	MyLeaves(w http.ResponseWriter, r *http.Request)
	TeamLeaves(w http.ResponseWriter, r *http.Request)
	AllLeaves(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Apply implements LeaveHandler.
func (h *LeaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var applyReq leave.ApplyLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&applyReq); err != nil {
		slog.Error("Apply leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	if err := applyReq.Validate(); err != nil {
		slog.Error("Apply leave validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	result, err := h.leaveService.Apply(r.Context(), userID, applyReq)
	if err != nil {
		slog.Error("Apply leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, result)
}

// MyLeaves implements LeaveHandler.
func (h *LeaveHandlerImpl) MyLeaves(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	leaves, err := h.leaveService.MyLeaves(r.Context(), userID)
	if err != nil {
		slog.Error("MyLeaves service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, leaves)
}

// TeamLeaves implements LeaveHandler.
func (h *LeaveHandlerImpl) TeamLeaves(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	leaves, err := h.leaveService.TeamLeaves(r.Context(), userID)
	if err != nil {
		slog.Error("TeamLeaves service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, leaves)
}

// AllLeaves implements LeaveHandler.
func (h *LeaveHandlerImpl) AllLeaves(w http.ResponseWriter, r *http.Request) {
	leaves, err := h.leaveService.AllLeaves(r.Context())
	if err != nil {
		slog.Error("AllLeaves service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, leaves)
}

// UpdateStatus implements LeaveHandler.
func (h *LeaveHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	approverID, ok := middleware.UserID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var updateReq leave.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update leave status decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		slog.Error("Update leave status validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	updated, err := h.leaveService.UpdateStatus(r.Context(), approverID, updateReq)
	if err != nil {
		slog.Error("Update leave status service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, updated)
}

// Stats implements LeaveHandler.
func (h *LeaveHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	stats, err := h.leaveService.Stats(r.Context(), userID)
	if err != nil {
		slog.Error("Leave stats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, stats)
}
