package http

import (
	"encoding/json"
	"net/http"

	"github.com/gilrsantana/pontolegal/internal/domain/workingday"
	"github.com/gilrsantana/pontolegal/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type WorkingDayHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type workingDayHandlerImpl struct {
	workingDayService workingday.Service
}

func NewWorkingDayHandler(workingDayService workingday.Service) WorkingDayHandler {
	return &workingDayHandlerImpl{
		workingDayService: workingDayService,
	}
}

// Create implements WorkingDayHandler.
func (h *workingDayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req workingday.CreateWorkingDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.workingDayService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Working day created", result)
}

// Update implements WorkingDayHandler.
func (h *workingDayHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req workingday.UpdateWorkingDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.workingDayService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Working day updated", result)
}

// Get implements WorkingDayHandler.
func (h *workingDayHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.workingDayService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements WorkingDayHandler.
func (h *workingDayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.workingDayService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
