package http

import (
	"encoding/json"
	"net/http"

	"github.com/gilrsantana/pontolegal/internal/domain/timeclock"
	"github.com/gilrsantana/pontolegal/internal/handler/http/response"
	"github.com/gilrsantana/pontolegal/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

type TimeClockHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	ListForEmployeeOnDate(w http.ResponseWriter, r *http.Request)
}

type timeClockHandlerImpl struct {
	timeClockService timeclock.Service
}

func NewTimeClockHandler(timeClockService timeclock.Service) TimeClockHandler {
	return &timeClockHandlerImpl{
		timeClockService: timeClockService,
	}
}

// Register implements TimeClockHandler. A flagged punch is still a 201; the
// compliance block tells the caller it is awaiting review.
func (h *timeClockHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req timeclock.RegisterPunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	// Employees punching for themselves may omit employee_id
	if req.EmployeeID == "" {
		_, claims, _ := jwtauth.FromContext(r.Context())
		if employeeID, ok := claims["employee_id"].(string); ok {
			req.EmployeeID = employeeID
		}
	}

	result, err := h.timeClockService.RegisterPunch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := "Punch registered"
	if result.Compliance.Status == timeclock.ComplianceFlagged {
		message = "Punch registered and sent for review"
	}
	response.Created(w, message, result.ToResponse())
}

// Get implements TimeClockHandler.
func (h *timeClockHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.timeClockService.GetPunch(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateStatus implements TimeClockHandler.
func (h *timeClockHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req timeclock.UpdatePunchStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.timeClockService.SetPunchStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punch status updated", result)
}

// ListForEmployeeOnDate implements TimeClockHandler.
func (h *timeClockHandlerImpl) ListForEmployeeOnDate(w http.ResponseWriter, r *http.Request) {
	date, ok := validator.IsValidDate(r.URL.Query().Get("date"))
	if !ok {
		response.HandleError(w, timeclock.ErrInvalidDate)
		return
	}

	result, err := h.timeClockService.GetPunchesForEmployeeOnDate(r.Context(), chi.URLParam(r, "employeeID"), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
