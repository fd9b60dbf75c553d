package http

import (
	"encoding/json"
	"net/http"

	"github.com/DeFacto365/Protip365-sub004/internal/domain/employer"
	"github.com/DeFacto365/Protip365-sub004/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployerHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type employerHandlerImpl struct {
	employerService employer.EmployerService
}

func NewEmployerHandler(employerService employer.EmployerService) EmployerHandler {
	return &employerHandlerImpl{employerService: employerService}
}

// List handles GET /employers?active=true
func (h *employerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	result, err := h.employerService.ListEmployers(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Create handles POST /employers
func (h *employerHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employer.CreateEmployerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.employerService.CreateEmployer(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employer created successfully", result)
}

// Get handles GET /employers/{id}
func (h *employerHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.employerService.GetEmployer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update handles PUT /employers/{id}
func (h *employerHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req employer.UpdateEmployerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.employerService.UpdateEmployer(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employer updated successfully", result)
}

// Deactivate handles DELETE /employers/{id}. Shifts keep their employer.
func (h *employerHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	if err := h.employerService.DeactivateEmployer(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employer deactivated successfully", nil)
}
